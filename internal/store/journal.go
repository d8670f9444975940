package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"stocko/internal/models"
	"stocko/internal/quotes"
)

// OrderRecord is one applied buy or sell as written to the journal.
// The journal is additive history; the JSON data file remains the single
// source of truth for positions.
type OrderRecord struct {
	ID         int64
	Timestamp  time.Time
	Symbol     string
	Exchange   models.Exchange
	Shares     int
	SharePrice float64
	NetShares  int
	Archived   bool
}

// OrderFilter narrows journal queries.
type OrderFilter struct {
	Symbol string
	Limit  int
}

// Journal records applied orders and caches daily closes in SQLite.
type Journal struct {
	db *sql.DB
}

// NewJournal opens (or creates) the journal database at dbPath.
func NewJournal(dbPath string) (*Journal, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}

	return j, nil
}

func (j *Journal) initSchema() error {
	schema := `
	-- Applied buy/sell orders, one row per command
	CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		symbol TEXT NOT NULL,
		exchange TEXT NOT NULL,
		shares INTEGER NOT NULL,
		share_price REAL NOT NULL,
		net_shares INTEGER NOT NULL,
		archived INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_orders_symbol ON orders(symbol);

	-- Daily close cache keyed by symbol and date
	CREATE TABLE IF NOT EXISTS quote_cache (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		symbol TEXT NOT NULL,
		date TEXT NOT NULL,
		close REAL NOT NULL,
		fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(symbol, date)
	);
	`
	_, err := j.db.Exec(schema)
	return err
}

// LogOrder appends one applied order to the journal.
func (j *Journal) LogOrder(ctx context.Context, rec *OrderRecord) error {
	archived := 0
	if rec.Archived {
		archived = 1
	}
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO orders (timestamp, symbol, exchange, shares, share_price, net_shares, archived)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Timestamp, rec.Symbol, string(rec.Exchange), rec.Shares, rec.SharePrice, rec.NetShares, archived,
	)
	if err != nil {
		return fmt.Errorf("logging order: %w", err)
	}
	return nil
}

// Orders returns journal entries, newest first.
func (j *Journal) Orders(ctx context.Context, filter OrderFilter) ([]OrderRecord, error) {
	query := "SELECT id, timestamp, symbol, exchange, shares, share_price, net_shares, archived FROM orders"
	var conds []string
	var args []interface{}

	if filter.Symbol != "" {
		conds = append(conds, "symbol = ?")
		args = append(args, filter.Symbol)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY timestamp DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var records []OrderRecord
	for rows.Next() {
		var rec OrderRecord
		var exchange string
		var archived int
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.Symbol, &exchange, &rec.Shares, &rec.SharePrice, &rec.NetShares, &archived); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		rec.Exchange = models.Exchange(exchange)
		rec.Archived = archived != 0
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CacheSeries stores a daily close series for a symbol, replacing any
// rows already cached for the same dates.
func (j *Journal) CacheSeries(ctx context.Context, symbol string, entries []quotes.Entry) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("caching series: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO quote_cache (symbol, date, close) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("caching series: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, symbol, e.Date.Format("2006-01-02"), e.Close); err != nil {
			return fmt.Errorf("caching series: %w", err)
		}
	}

	return tx.Commit()
}

// CachedSeries returns the cached close series for a symbol ordered
// oldest to newest, but only when the cache already holds an entry for
// asOf (so stale data never silently substitutes a live fetch).
func (j *Journal) CachedSeries(ctx context.Context, symbol string, asOf time.Time) ([]quotes.Entry, bool, error) {
	day := asOf.Format("2006-01-02")

	var n int
	if err := j.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM quote_cache WHERE symbol = ? AND date = ?", symbol, day,
	).Scan(&n); err != nil {
		return nil, false, fmt.Errorf("checking quote cache: %w", err)
	}
	if n == 0 {
		return nil, false, nil
	}

	rows, err := j.db.QueryContext(ctx,
		"SELECT date, close FROM quote_cache WHERE symbol = ? ORDER BY date ASC", symbol)
	if err != nil {
		return nil, false, fmt.Errorf("reading quote cache: %w", err)
	}
	defer rows.Close()

	var entries []quotes.Entry
	for rows.Next() {
		var dateStr string
		var e quotes.Entry
		if err := rows.Scan(&dateStr, &e.Close); err != nil {
			return nil, false, fmt.Errorf("scanning cached quote: %w", err)
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, false, fmt.Errorf("bad cached date %q: %w", dateStr, err)
		}
		e.Date = date
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	if len(entries) < 2 {
		return nil, false, nil
	}

	return entries, true, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}
