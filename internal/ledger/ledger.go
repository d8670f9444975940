// Package ledger computes aggregate position metrics from order history.
package ledger

import "stocko/internal/models"

// Metrics holds the raw aggregates of a position's order ledger.
// TotalShares is the signed net holding; TotalSpent sums buys and
// TotalSell sums sells, both as positive amounts.
type Metrics struct {
	TotalSpent  float64
	TotalSell   float64
	TotalShares int
}

// OpenMetrics describes a position with a positive net holding.
type OpenMetrics struct {
	TotalSpent   float64
	TotalShares  int
	AveragePrice float64
}

// ClosedMetrics describes a fully sold position. Average price is
// undefined at zero net shares, so closed reporting is derived from the
// buy and sell totals alone.
type ClosedMetrics struct {
	TotalSpent      float64
	TotalSell       float64
	RealizedGain    float64
	RealizedGainPct float64
}

// Compute aggregates an order ledger into Metrics. It is a pure function
// of the order list and never fails; empty input yields zero values.
func Compute(orders []models.Order) Metrics {
	var m Metrics
	for _, o := range orders {
		if o.Shares > 0 {
			m.TotalSpent += float64(o.Shares) * o.SharePrice
		} else if o.Shares < 0 {
			m.TotalSell += float64(-o.Shares) * o.SharePrice
		}
		m.TotalShares += o.Shares
	}
	return m
}

// Open returns the open-position view of the metrics. The second return
// is false when the net holding is not positive, in which case average
// price is undefined and the closed view must be used instead.
func (m Metrics) Open() (OpenMetrics, bool) {
	if m.TotalShares <= 0 {
		return OpenMetrics{}, false
	}
	return OpenMetrics{
		TotalSpent:   m.TotalSpent,
		TotalShares:  m.TotalShares,
		AveragePrice: m.TotalSpent / float64(m.TotalShares),
	}, true
}

// Closed returns the realized-gain view of the metrics.
func (m Metrics) Closed() ClosedMetrics {
	c := ClosedMetrics{
		TotalSpent:   m.TotalSpent,
		TotalSell:    m.TotalSell,
		RealizedGain: m.TotalSell - m.TotalSpent,
	}
	if m.TotalSpent != 0 {
		c.RealizedGainPct = c.RealizedGain / m.TotalSpent
	}
	return c
}

// BookCost returns the cost basis of the current net holding
// (net shares times average price). Zero for non-open positions.
func (m Metrics) BookCost() float64 {
	open, ok := m.Open()
	if !ok {
		return 0
	}
	return float64(open.TotalShares) * open.AveragePrice
}

// UnrealizedGain returns the absolute and fractional gain of an open
// position against the given market price, measured from average cost.
func (o OpenMetrics) UnrealizedGain(price float64) (gain, pct float64) {
	if o.AveragePrice == 0 {
		return 0, 0
	}
	pct = (price - o.AveragePrice) / o.AveragePrice
	gain = o.TotalSpent * pct
	return gain, pct
}
