package cli

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	stockoerrors "stocko/internal/errors"
	"stocko/internal/models"
	"stocko/internal/quotes"
	"stocko/internal/store"
)

// seriesBySymbol stubs the quote client with per-symbol histories.
type seriesBySymbol map[string][]quotes.Entry

func (s seriesBySymbol) DailySeries(ctx context.Context, symbol string) ([]quotes.Entry, error) {
	entries, ok := s[symbol]
	if !ok {
		return nil, stockoerrors.NewProviderError(symbol, errors.New("unknown symbol"))
	}
	return entries, nil
}

func series(closes ...float64) []quotes.Entry {
	entries := make([]quotes.Entry, len(closes))
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		entries[i] = quotes.Entry{Date: base.AddDate(0, 0, i), Close: c}
	}
	return entries
}

func testApp(t *testing.T, q quotes.Client) *App {
	t.Helper()
	return &App{
		Store:  store.NewFileStore(filepath.Join(t.TempDir(), store.DefaultFileName)),
		Quotes: q,
	}
}

func seedCollections(t *testing.T, app *App) {
	t.Helper()
	c := models.NewCollections()
	c.Portfolio["AAPL"] = models.Position{
		Symbol:   "AAPL",
		Exchange: models.NYSE,
		Orders: []models.Order{
			{Shares: 10, SharePrice: 5.00},
			{Shares: 10, SharePrice: 7.00},
		},
	}
	c.Watchlist["MSFT"] = models.Position{Symbol: "MSFT", Exchange: models.NYSE}
	c.Archive["GME"] = models.Position{
		Symbol:   "GME",
		Exchange: models.NYSE,
		Orders: []models.Order{
			{Shares: 10, SharePrice: 5.00},
			{Shares: -10, SharePrice: 8.00},
		},
	}
	if err := app.Store.Save(c); err != nil {
		t.Fatal(err)
	}
}

func TestBuildReport(t *testing.T) {
	app := testApp(t, seriesBySymbol{
		"AAPL": series(100.0, 110.0, 9.0),
		"MSFT": series(200.0, 190.0),
	})
	seedCollections(t, app)

	rep, err := buildReport(context.Background(), app)
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}

	if len(rep.Portfolio) != 1 {
		t.Fatalf("portfolio rows = %d, want 1", len(rep.Portfolio))
	}
	row := rep.Portfolio[0]
	if row.Symbol != "AAPL" || row.Shares != 20 {
		t.Errorf("row = %+v", row)
	}
	if row.BookCost != 120 {
		t.Errorf("BookCost = %v, want 120", row.BookCost)
	}
	// avg 6.00, close 9.00: +50% on 120 spent
	if math.Abs(row.GainPct-0.5) > 1e-9 || math.Abs(row.Gain-60) > 1e-9 {
		t.Errorf("gain = %v (%v), want 60 (0.5)", row.Gain, row.GainPct)
	}

	if len(rep.Watchlist) != 1 || rep.Watchlist[0].Change != -10.0 {
		t.Errorf("watchlist = %+v", rep.Watchlist)
	}

	if len(rep.Archive) != 1 {
		t.Fatalf("archive rows = %d, want 1", len(rep.Archive))
	}
	if rep.Archive[0].Gain != 30 {
		t.Errorf("archive gain = %v, want 30", rep.Archive[0].Gain)
	}
	if math.Abs(rep.TotalGainPct-0.6) > 1e-9 {
		t.Errorf("TotalGainPct = %v, want 0.6", rep.TotalGainPct)
	}
}

func TestBuildReportFetchFailureAborts(t *testing.T) {
	// MSFT is missing from the stub: the watch list fetch fails and the
	// whole listing aborts.
	app := testApp(t, seriesBySymbol{
		"AAPL": series(100.0, 110.0),
	})
	seedCollections(t, app)

	_, err := buildReport(context.Background(), app)
	var provErr *stockoerrors.ProviderError
	if !stockoerrors.As(err, &provErr) {
		t.Fatalf("error = %v, want *ProviderError", err)
	}
}

func TestBuildReportShortHistoryAborts(t *testing.T) {
	app := testApp(t, seriesBySymbol{
		"AAPL": series(110.0),
		"MSFT": series(200.0, 190.0),
	})
	seedCollections(t, app)

	_, err := buildReport(context.Background(), app)
	if !stockoerrors.Is(err, stockoerrors.ErrHistoryTooShort) {
		t.Fatalf("error = %v, want ErrHistoryTooShort", err)
	}
}
