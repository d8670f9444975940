package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"stocko/internal/models"
	"stocko/internal/quotes"
)

func tempJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := NewJournal(filepath.Join(t.TempDir(), "stocko.db"))
	if err != nil {
		t.Fatalf("NewJournal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournalLogAndQuery(t *testing.T) {
	j := tempJournal(t)
	ctx := context.Background()

	records := []*OrderRecord{
		{Timestamp: time.Now().Add(-2 * time.Hour), Symbol: "AAPL", Exchange: models.NYSE, Shares: 10, SharePrice: 150.0, NetShares: 10},
		{Timestamp: time.Now().Add(-1 * time.Hour), Symbol: "SHOP.TO", Exchange: models.TSX, Shares: 5, SharePrice: 95.0, NetShares: 5},
		{Timestamp: time.Now(), Symbol: "AAPL", Exchange: models.NYSE, Shares: -10, SharePrice: 180.0, NetShares: 0, Archived: true},
	}
	for _, rec := range records {
		if err := j.LogOrder(ctx, rec); err != nil {
			t.Fatalf("LogOrder: %v", err)
		}
	}

	all, err := j.Orders(ctx, OrderFilter{})
	if err != nil {
		t.Fatalf("Orders: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d orders, want 3", len(all))
	}
	// Newest first
	if all[0].Symbol != "AAPL" || !all[0].Archived {
		t.Errorf("newest order = %+v, want archived AAPL sell", all[0])
	}

	aapl, err := j.Orders(ctx, OrderFilter{Symbol: "AAPL"})
	if err != nil {
		t.Fatalf("Orders(AAPL): %v", err)
	}
	if len(aapl) != 2 {
		t.Errorf("got %d AAPL orders, want 2", len(aapl))
	}

	limited, err := j.Orders(ctx, OrderFilter{Limit: 1})
	if err != nil {
		t.Fatalf("Orders(limit): %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d orders with limit 1", len(limited))
	}
}

func TestJournalQuoteCache(t *testing.T) {
	j := tempJournal(t)
	ctx := context.Background()

	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)
	entries := []quotes.Entry{
		{Date: yesterday, Close: 100.0},
		{Date: today, Close: 110.0},
	}

	if _, ok, err := j.CachedSeries(ctx, "AAPL", today); err != nil || ok {
		t.Fatalf("empty cache should miss: ok=%v err=%v", ok, err)
	}

	if err := j.CacheSeries(ctx, "AAPL", entries); err != nil {
		t.Fatalf("CacheSeries: %v", err)
	}

	cached, ok, err := j.CachedSeries(ctx, "AAPL", today)
	if err != nil {
		t.Fatalf("CachedSeries: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit for today")
	}
	if len(cached) != 2 || cached[0].Close != 100.0 || cached[1].Close != 110.0 {
		t.Errorf("cached series = %+v", cached)
	}

	// A cache that has no entry for the requested day must miss, even
	// when older rows exist.
	tomorrow := today.AddDate(0, 0, 1)
	if _, ok, err := j.CachedSeries(ctx, "AAPL", tomorrow); err != nil || ok {
		t.Errorf("stale cache should miss: ok=%v err=%v", ok, err)
	}
}

// fakeQuotes counts provider calls behind the cache.
type fakeQuotes struct {
	calls   int
	entries []quotes.Entry
	err     error
}

func (f *fakeQuotes) DailySeries(ctx context.Context, symbol string) ([]quotes.Entry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

func TestCachedQuotesServesSameDayFromJournal(t *testing.T) {
	j := tempJournal(t)

	today := time.Now()
	fake := &fakeQuotes{entries: []quotes.Entry{
		{Date: today.AddDate(0, 0, -1), Close: 100.0},
		{Date: today, Close: 110.0},
	}}

	cached := NewCachedQuotes(fake, j)

	for i := 0; i < 3; i++ {
		entries, err := cached.DailySeries(context.Background(), "AAPL")
		if err != nil {
			t.Fatalf("DailySeries: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("got %d entries", len(entries))
		}
	}

	if fake.calls != 1 {
		t.Errorf("provider called %d times, want 1", fake.calls)
	}
}

func TestCachedQuotesNilJournalPassesThrough(t *testing.T) {
	fake := &fakeQuotes{entries: []quotes.Entry{
		{Date: time.Now(), Close: 1.0},
		{Date: time.Now(), Close: 2.0},
	}}
	cached := NewCachedQuotes(fake, nil)

	for i := 0; i < 2; i++ {
		if _, err := cached.DailySeries(context.Background(), "AAPL"); err != nil {
			t.Fatal(err)
		}
	}
	if fake.calls != 2 {
		t.Errorf("provider called %d times, want 2", fake.calls)
	}
}
