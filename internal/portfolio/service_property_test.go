package portfolio

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"

	"stocko/internal/ledger"
	"stocko/internal/store"
)

// Property: after any sequence of buy/sell commands, every position in
// the portfolio has a positive net holding, every archived position
// nets to exactly zero, and rejected commands change nothing.
func TestProperty_LifecycleInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	symbols := []string{"AAPL", "MSFT", "GME"}

	properties.Property("portfolio nets positive, archive nets zero", prop.ForAll(
		func(symbolIdx []int, shareCounts []int, priceSeeds []int) bool {
			dir := t.TempDir()
			fs := store.NewFileStore(filepath.Join(dir, store.DefaultFileName))
			svc := NewService(fs, &fakeQuotes{}, nil, zerolog.Nop())
			ctx := context.Background()

			n := len(symbolIdx)
			if len(shareCounts) < n {
				n = len(shareCounts)
			}
			if len(priceSeeds) < n {
				n = len(priceSeeds)
			}

			for i := 0; i < n; i++ {
				symbol := symbols[((symbolIdx[i]%len(symbols))+len(symbols))%len(symbols)]
				shares := shareCounts[i]
				if shares == 0 {
					continue
				}
				price := float64(((priceSeeds[i]%10000)+10000)%10000)/100 + 0.01

				// Rejections are expected for oversells; the invariant
				// check below confirms they had no effect.
				_ = svc.ApplyOrder(ctx, symbol, "", shares, price)
			}

			c, err := fs.Load()
			if err != nil {
				return false
			}

			for _, pos := range c.Portfolio {
				if ledger.Compute(pos.Orders).TotalShares <= 0 {
					return false
				}
			}
			for _, pos := range c.Archive {
				m := ledger.Compute(pos.Orders)
				if m.TotalShares != 0 {
					return false
				}
				// Realized percentages stay finite because spent > 0
				// for anything that reached the archive.
				if math.IsNaN(m.Closed().RealizedGainPct) || math.IsInf(m.Closed().RealizedGainPct, 0) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(12, gen.IntRange(0, 2)),
		gen.SliceOfN(12, gen.IntRange(-15, 15)),
		gen.SliceOfN(12, gen.IntRange(1, 1_000_000)),
	))

	properties.TestingRun(t)
}
