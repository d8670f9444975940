package cli

import (
	"github.com/spf13/cobra"

	"stocko/internal/ledger"
)

func newArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Display closed positions and realized gains",
		Long: `Display fully sold positions with their order ledgers and realized
gains. Runs entirely from the local data file; no quotes are fetched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			collections, err := app.Store.Load()
			if err != nil {
				output.Error("%v", err)
				return err
			}

			rep := &report{Archive: []archiveRow{}}
			var totalSpent, totalSell float64
			for _, symbol := range sortedKeys(collections.Archive) {
				position := collections.Archive[symbol]
				closed := ledger.Compute(position.Orders).Closed()
				totalSpent += closed.TotalSpent
				totalSell += closed.TotalSell
				rep.Archive = append(rep.Archive, archiveRow{
					Symbol:  symbol,
					Orders:  position.Orders,
					Gain:    closed.RealizedGain,
					GainPct: closed.RealizedGainPct,
				})
			}
			rep.TotalGain = totalSell - totalSpent
			if totalSpent != 0 {
				rep.TotalGainPct = rep.TotalGain / totalSpent
			}

			if output.IsJSON() {
				return output.JSON(rep.Archive)
			}
			renderArchive(output, rep)
			return nil
		},
	}
}
