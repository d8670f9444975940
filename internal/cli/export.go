package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	stockoerrors "stocko/internal/errors"
	"stocko/internal/store"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data to CSV or JSON",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "orders",
		Short: "Export the order journal",
		Example: `  stocko export orders
  stocko export orders --symbol AAPL --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			format, _ := cmd.Flags().GetString("format")
			outFile, _ := cmd.Flags().GetString("output")
			symbol, _ := cmd.Flags().GetString("symbol")
			limit, _ := cmd.Flags().GetInt("limit")

			if outFile == "" {
				outFile = fmt.Sprintf("orders.%s", format)
			}

			if app.Journal == nil {
				output.Error("Order journal is disabled")
				return stockoerrors.ErrJournalDisabled
			}

			records, err := app.Journal.Orders(context.Background(), store.OrderFilter{
				Symbol: symbol,
				Limit:  limit,
			})
			if err != nil {
				output.Error("Failed to read journal: %v", err)
				return err
			}

			if len(records) == 0 {
				output.Warning("No journaled orders found")
				return nil
			}

			switch format {
			case "csv":
				if err := writeOrdersCSV(outFile, records); err != nil {
					output.Error("Failed to write file: %v", err)
					return err
				}
			case "json":
				data, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return err
				}
				if err := os.WriteFile(outFile, data, 0644); err != nil {
					output.Error("Failed to write file: %v", err)
					return err
				}
			default:
				output.Error("Unknown format: %s", format)
				return fmt.Errorf("unknown format %q", format)
			}

			output.Success("✓ Exported %d orders to %s", len(records), outFile)
			return nil
		},
	})

	cmd.PersistentFlags().String("format", "csv", "Output format (csv, json)")
	cmd.PersistentFlags().String("output", "", "Output file (default: orders.<format>)")
	cmd.PersistentFlags().String("symbol", "", "Only export orders for this symbol")
	cmd.PersistentFlags().Int("limit", 0, "Maximum number of orders (0 for all)")

	return cmd
}

func writeOrdersCSV(path string, records []store.OrderRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"timestamp", "symbol", "exchange", "shares", "share_price", "net_shares", "archived"})
	for _, r := range records {
		writer.Write([]string{
			r.Timestamp.Format(time.RFC3339),
			r.Symbol,
			string(r.Exchange),
			fmt.Sprintf("%d", r.Shares),
			fmt.Sprintf("%.2f", r.SharePrice),
			fmt.Sprintf("%d", r.NetShares),
			fmt.Sprintf("%t", r.Archived),
		})
	}

	return writer.Error()
}
