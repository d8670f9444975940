package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"stocko/internal/ledger"
	"stocko/internal/models"
	"stocko/internal/quotes"
	"stocko/pkg/utils"
)

// portfolioRow is one open position with live-market metrics.
type portfolioRow struct {
	Symbol     string  `json:"symbol"`
	Price      float64 `json:"price"`
	Change     float64 `json:"change"`
	ChangePct  float64 `json:"change_percentage"`
	Shares     int     `json:"shares"`
	BookCost   float64 `json:"book_cost"`
	Gain       float64 `json:"gain"`
	GainPct    float64 `json:"gain_percentage"`
	changeInfo quotes.ChangeMetrics
}

// watchRow is one watch list symbol with its day change.
type watchRow struct {
	Symbol     string  `json:"symbol"`
	Price      float64 `json:"price"`
	Change     float64 `json:"change"`
	ChangePct  float64 `json:"change_percentage"`
	changeInfo quotes.ChangeMetrics
}

// archiveRow is one closed position with realized gains.
type archiveRow struct {
	Symbol  string         `json:"symbol"`
	Orders  []models.Order `json:"orders"`
	Gain    float64        `json:"gain"`
	GainPct float64        `json:"gain_percentage"`
}

// report is the full listing across all three collections.
type report struct {
	Portfolio    []portfolioRow `json:"portfolio"`
	Watchlist    []watchRow     `json:"watchlist"`
	Archive      []archiveRow   `json:"archive"`
	TotalGain    float64        `json:"archive_total_gain"`
	TotalGainPct float64        `json:"archive_total_gain_percentage"`
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "Display all stocks in the portfolio, watch list, and archive",
		Example: `  stocko list
  stocko list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			rep, err := buildReport(context.Background(), app)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(rep)
			}

			renderPortfolio(output, rep.Portfolio)
			renderWatchlist(output, rep.Watchlist)
			renderArchive(output, rep)
			return nil
		},
	}
}

// buildReport assembles all rows before anything is printed. Every row
// needs a successful quote fetch; the first failure aborts the whole
// listing.
func buildReport(ctx context.Context, app *App) (*report, error) {
	collections, err := app.Store.Load()
	if err != nil {
		return nil, err
	}

	rep := &report{
		Portfolio: []portfolioRow{},
		Watchlist: []watchRow{},
		Archive:   []archiveRow{},
	}

	for _, symbol := range sortedKeys(collections.Portfolio) {
		position := collections.Portfolio[symbol]

		change, err := fetchChange(ctx, app, symbol)
		if err != nil {
			return nil, err
		}

		open, ok := ledger.Compute(position.Orders).Open()
		if !ok {
			// A zero-share position cannot legally sit in the portfolio.
			return nil, fmt.Errorf("portfolio position %s has no net shares", symbol)
		}

		gain, gainPct := open.UnrealizedGain(change.CloseToday)
		rep.Portfolio = append(rep.Portfolio, portfolioRow{
			Symbol:     symbol,
			Price:      change.CloseToday,
			Change:     change.Change,
			ChangePct:  change.ChangePercentage,
			Shares:     open.TotalShares,
			BookCost:   float64(open.TotalShares) * open.AveragePrice,
			Gain:       gain,
			GainPct:    gainPct,
			changeInfo: change,
		})
	}

	for _, symbol := range sortedKeys(collections.Watchlist) {
		change, err := fetchChange(ctx, app, symbol)
		if err != nil {
			return nil, err
		}
		rep.Watchlist = append(rep.Watchlist, watchRow{
			Symbol:     symbol,
			Price:      change.CloseToday,
			Change:     change.Change,
			ChangePct:  change.ChangePercentage,
			changeInfo: change,
		})
	}

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

	return rep, nil
}

func fetchChange(ctx context.Context, app *App, symbol string) (quotes.ChangeMetrics, error) {
	series, err := app.Quotes.DailySeries(ctx, symbol)
	if err != nil {
		return quotes.ChangeMetrics{}, err
	}
	return quotes.ComputeChange(series)
}

func sortedKeys(m map[string]models.Position) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func renderPortfolio(o *Output, rows []portfolioRow) {
	o.Bold("Portfolio")
	table := NewTable(o, "Symbol", "Price", "Change", "Shares", "Book Cost", "Total Gain")
	for _, r := range rows {
		table.AddRow(
			r.Symbol,
			utils.FormatMoney(r.Price),
			changeString(o, r.changeInfo),
			fmt.Sprintf("%d", r.Shares),
			utils.FormatMoney(r.BookCost),
			gainString(o, r.Gain, r.GainPct),
		)
	}
	table.Render()
	o.Println()
}

func renderWatchlist(o *Output, rows []watchRow) {
	o.Bold("Watch List")
	table := NewTable(o, "Symbol", "Price", "Change")
	for _, r := range rows {
		table.AddRow(
			r.Symbol,
			utils.FormatMoney(r.Price),
			changeString(o, r.changeInfo),
		)
	}
	table.Render()
	o.Println()
}

func renderArchive(o *Output, rep *report) {
	o.Bold("Archive")
	table := NewTable(o, "Symbol", "Orders", "Gain")
	for _, r := range rep.Archive {
		var lines []string
		for _, order := range r.Orders {
			lines = append(lines, fmt.Sprintf("%d @ %g", order.Shares, order.SharePrice))
		}
		table.AddRow(r.Symbol, strings.Join(lines, "\n"), gainString(o, r.Gain, r.GainPct))
	}
	if len(rep.Archive) > 0 {
		table.AddRow("Total Gain", "", gainString(o, rep.TotalGain, rep.TotalGainPct))
	}
	table.Render()
}
