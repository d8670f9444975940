package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"stocko/pkg/utils"
)

// addOrderFlags registers the flags shared by buy and sell.
func addOrderFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("shares", "s", 0, "Number of shares")
	cmd.Flags().Float64P("price", "p", 0, "Share price")
	cmd.Flags().StringP("exchange", "e", "", "Exchange symbol (tsx, tsxv, nyse)")
	cmd.MarkFlagRequired("shares")
	cmd.MarkFlagRequired("price")
}

func newBuyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "buy <symbol>",
		Aliases: []string{"b"},
		Short:   "Add shares to your portfolio",
		Example: `  stocko buy AAPL -s 10 -p 150.25
  stocko buy SHOP -s 5 -p 95.00 -e tsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd, app, args[0], 1)
		},
	}
	addOrderFlags(cmd)
	return cmd
}

func newSellCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sell <symbol>",
		Aliases: []string{"s"},
		Short:   "Remove shares from your portfolio",
		Long: `Remove shares from your portfolio.

Selling the full held quantity closes the position and moves it, with
its complete order history, into the archive.`,
		Example: `  stocko sell AAPL -s 10 -p 180.00
  stocko sell SHOP -s 5 -p 110.00 -e tsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd, app, args[0], -1)
		},
	}
	addOrderFlags(cmd)
	return cmd
}

func runOrder(cmd *cobra.Command, app *App, symbol string, sign int) error {
	output := NewOutput(cmd)

	shares, _ := cmd.Flags().GetInt("shares")
	price, _ := cmd.Flags().GetFloat64("price")
	exchange, _ := cmd.Flags().GetString("exchange")

	if shares <= 0 {
		output.Error("Invalid share quantity: %d", shares)
		return fmt.Errorf("share quantity must be positive")
	}
	if price <= 0 {
		output.Error("Invalid share price: %g", price)
		return fmt.Errorf("share price must be positive")
	}

	if err := app.Portfolio.ApplyOrder(context.Background(), symbol, exchange, sign*shares, price); err != nil {
		output.Error("%v", err)
		return err
	}

	side := "Bought"
	if sign < 0 {
		side = "Sold"
	}
	if output.IsJSON() {
		return output.JSON(map[string]interface{}{
			"symbol": symbol,
			"shares": sign * shares,
			"price":  price,
		})
	}
	output.Success("✓ %s %d shares of %s @ %s", side, shares, symbol, utils.FormatMoney(price))
	return nil
}
