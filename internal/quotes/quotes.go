// Package quotes provides market data access and derived quote metrics.
package quotes

import (
	"context"
	"time"
)

// Entry is one day of closing-price history.
type Entry struct {
	Date  time.Time
	Close float64
}

// Client defines the interface for fetching price history for a symbol.
// Implementations return the daily close series ordered oldest to newest.
type Client interface {
	DailySeries(ctx context.Context, symbol string) ([]Entry, error)
}
