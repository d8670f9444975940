// Package models provides domain models for the portfolio tracker.
package models

import "strings"

// Exchange represents a stock listing venue.
type Exchange string

const (
	TSX  Exchange = "TSX"
	TSXV Exchange = "TSXV"
	NYSE Exchange = "NYSE"
)

// DefaultExchange is the venue assumed when no hint is given.
const DefaultExchange = NYSE

// ParseExchange resolves a short venue code to an Exchange.
// An empty hint resolves to the default venue.
func ParseExchange(hint string) (Exchange, bool) {
	switch strings.ToLower(hint) {
	case "":
		return DefaultExchange, true
	case "tsx":
		return TSX, true
	case "tsxv":
		return TSXV, true
	case "nyse":
		return NYSE, true
	}
	return "", false
}

// Suffix returns the ticker suffix appended before quote lookups.
func (e Exchange) Suffix() string {
	switch e {
	case TSX:
		return ".TO"
	case TSXV:
		return ".V"
	}
	return ""
}

// Currency returns the trading currency of the venue. It is a display
// label only; no conversion is performed anywhere.
func (e Exchange) Currency() Currency {
	switch e {
	case TSX, TSXV:
		return CAD
	}
	return USD
}

// Currency represents a trading currency.
type Currency string

const (
	CAD Currency = "CAD"
	USD Currency = "USD"
)

// Order is an immutable record of one trade. Positive shares are a buy,
// negative shares a sell. Orders are appended to a position's ledger and
// never mutated or removed.
type Order struct {
	Shares     int     `json:"shares"`
	SharePrice float64 `json:"share_price"`
}

// Position represents one tradable instrument and its full order ledger.
// Price is refreshed from a live quote on read paths and never persisted.
type Position struct {
	Symbol   string   `json:"symbol"`
	Exchange Exchange `json:"exchange"`
	Orders   []Order  `json:"orders"`

	Price float64 `json:"-"`
}

// Collections holds the three disjoint symbol-keyed buckets that make up
// the persisted store: open positions, tracked-only symbols, and fully
// closed positions retained for realized-gain reporting.
type Collections struct {
	Portfolio map[string]Position `json:"portfolio"`
	Watchlist map[string]Position `json:"watchlist"`
	Archive   map[string]Position `json:"archive"`
}

// NewCollections returns an empty but initialized Collections.
func NewCollections() *Collections {
	return &Collections{
		Portfolio: make(map[string]Position),
		Watchlist: make(map[string]Position),
		Archive:   make(map[string]Position),
	}
}
