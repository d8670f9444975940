package ledger

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"stocko/internal/models"
)

// Property: for any order sequence, TotalShares equals the arithmetic
// sum of signed share counts, independent of order.
func TestProperty_TotalSharesIsOrderIndependentSum(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	sharesGen := gen.SliceOf(gen.IntRange(-50, 50))
	priceSeed := gen.Int64Range(1, math.MaxInt32)

	properties.Property("net shares equal the signed sum, in any order", prop.ForAll(
		func(shares []int, seed int64) bool {
			rng := rand.New(rand.NewSource(seed))

			orders := make([]models.Order, len(shares))
			want := 0
			for i, s := range shares {
				orders[i] = models.Order{Shares: s, SharePrice: rng.Float64()*1000 + 0.01}
				want += s
			}

			if Compute(orders).TotalShares != want {
				return false
			}

			shuffled := make([]models.Order, len(orders))
			copy(shuffled, orders)
			rng.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			return Compute(shuffled).TotalShares == want
		},
		sharesGen,
		priceSeed,
	))

	properties.TestingRun(t)
}

// Property: for buy-only ledgers, average price equals
// sum(s_i*p_i) / sum(s_i).
func TestProperty_BuyOnlyAveragePrice(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("average price is the share-weighted mean of buy prices", prop.ForAll(
		func(shares []int, seed int64) bool {
			if len(shares) == 0 {
				return true
			}
			rng := rand.New(rand.NewSource(seed))

			orders := make([]models.Order, len(shares))
			var spent float64
			var total int
			for i, s := range shares {
				price := rng.Float64()*500 + 0.01
				orders[i] = models.Order{Shares: s, SharePrice: price}
				spent += float64(s) * price
				total += s
			}

			open, ok := Compute(orders).Open()
			if !ok {
				return false
			}
			want := spent / float64(total)
			return math.Abs(open.AveragePrice-want) < 1e-9
		},
		gen.SliceOfN(5, gen.IntRange(1, 100)),
		gen.Int64Range(1, math.MaxInt32),
	))

	properties.TestingRun(t)
}

// Property: buys and sells partition the cash flows; realized gain is
// always TotalSell minus TotalSpent.
func TestProperty_RealizedGainIsSellMinusSpent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("realized gain equals sell total minus buy total", prop.ForAll(
		func(shares []int, seed int64) bool {
			rng := rand.New(rand.NewSource(seed))

			orders := make([]models.Order, len(shares))
			var spent, sold float64
			for i, s := range shares {
				price := rng.Float64()*500 + 0.01
				orders[i] = models.Order{Shares: s, SharePrice: price}
				if s > 0 {
					spent += float64(s) * price
				} else if s < 0 {
					sold += float64(-s) * price
				}
			}

			closed := Compute(orders).Closed()
			return math.Abs(closed.RealizedGain-(sold-spent)) < 1e-9
		},
		gen.SliceOf(gen.IntRange(-100, 100)),
		gen.Int64Range(1, math.MaxInt32),
	))

	properties.TestingRun(t)
}
