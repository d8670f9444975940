package store

import (
	"context"
	"time"

	"stocko/internal/quotes"
)

// CachedQuotes wraps a quotes.Client with the journal's daily close
// cache. A symbol already cached for today's date is served locally;
// anything else goes to the provider and the result is cached on the
// way back. Cache failures are ignored so a broken journal never blocks
// a live fetch.
type CachedQuotes struct {
	client  quotes.Client
	journal *Journal
	now     func() time.Time
}

// NewCachedQuotes creates a caching quote client. journal may be nil,
// in which case every call passes straight through.
func NewCachedQuotes(client quotes.Client, journal *Journal) *CachedQuotes {
	return &CachedQuotes{
		client:  client,
		journal: journal,
		now:     time.Now,
	}
}

// DailySeries implements quotes.Client.
func (c *CachedQuotes) DailySeries(ctx context.Context, symbol string) ([]quotes.Entry, error) {
	if c.journal != nil {
		if entries, ok, err := c.journal.CachedSeries(ctx, symbol, c.now()); err == nil && ok {
			return entries, nil
		}
	}

	entries, err := c.client.DailySeries(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if c.journal != nil {
		_ = c.journal.CacheSeries(ctx, symbol, entries)
	}

	return entries, nil
}
