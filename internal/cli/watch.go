package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "watch <symbol> [exchange]",
		Aliases: []string{"w"},
		Short:   "Add a symbol to the watch list",
		Long: `Add a symbol to the watch list.

A live quote is fetched first to confirm the symbol is valid; if the
fetch fails the symbol is not added.`,
		Example: `  stocko watch AAPL
  stocko watch SHOP tsx`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			exchange := ""
			if len(args) == 2 {
				exchange = args[1]
			}

			if err := app.Portfolio.Watch(context.Background(), args[0], exchange); err != nil {
				output.Error("%v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]string{"symbol": args[0], "status": "watching"})
			}
			output.Success("✓ Watching %s", args[0])
			return nil
		},
	}
}
