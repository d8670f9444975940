// Package portfolio applies buy, sell, and watch commands against the
// persisted store and owns the position lifecycle invariants.
package portfolio

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	stockoerrors "stocko/internal/errors"
	"stocko/internal/ledger"
	"stocko/internal/models"
	"stocko/internal/quotes"
	"stocko/internal/store"
)

// Service runs one command against the store: load, validate, mutate in
// memory, save. The store is passed in explicitly at construction; there
// is no ambient global state.
type Service struct {
	store   *store.FileStore
	quotes  quotes.Client
	journal *store.Journal
	logger  zerolog.Logger
}

// NewService creates a portfolio service. journal may be nil; journaling
// is best-effort history and never blocks a command.
func NewService(fs *store.FileStore, qc quotes.Client, journal *store.Journal, logger zerolog.Logger) *Service {
	return &Service{
		store:   fs,
		quotes:  qc,
		journal: journal,
		logger:  logger,
	}
}

// ResolveSymbol normalizes a raw symbol and exchange hint into the
// uppercased, venue-suffixed key used across all three collections.
func ResolveSymbol(symbol, exchangeHint string) (string, models.Exchange, error) {
	exchange, ok := models.ParseExchange(exchangeHint)
	if !ok {
		return "", "", stockoerrors.ErrInvalidExchange
	}
	return strings.ToUpper(symbol) + exchange.Suffix(), exchange, nil
}

// ApplyOrder validates and applies one buy (positive shares) or sell
// (negative shares) against the portfolio. A sell that exactly zeroes
// the position moves it, full ledger included, into the archive. Any
// validation failure returns before the store is touched on disk.
func (s *Service) ApplyOrder(ctx context.Context, symbol, exchangeHint string, shares int, price float64) error {
	key, exchange, err := ResolveSymbol(symbol, exchangeHint)
	if err != nil {
		return err
	}

	collections, err := s.store.Load()
	if err != nil {
		return err
	}

	position, ok := collections.Portfolio[key]
	if !ok {
		if shares <= 0 {
			return stockoerrors.NewInvalidShareQuantityError(key, -shares)
		}
		position = models.Position{
			Symbol:   key,
			Exchange: exchange,
			Orders:   nil,
		}
	}

	// The oversell boundary is evaluated against the ledger before the
	// pending order: you cannot sell more than you currently hold.
	held := ledger.Compute(position.Orders).TotalShares
	if shares < 0 && -shares > held {
		return stockoerrors.NewInvalidShareQuantityError(key, -shares)
	}

	position.Orders = append(position.Orders, models.Order{Shares: shares, SharePrice: price})

	archived := shares < 0 && -shares == held
	if archived {
		delete(collections.Portfolio, key)
		collections.Archive[key] = position
	} else {
		collections.Portfolio[key] = position
	}

	if err := s.store.Save(collections); err != nil {
		return err
	}

	s.logger.Info().
		Str("event", "order").
		Str("symbol", key).
		Int("shares", shares).
		Float64("price", price).
		Int("net_shares", held+shares).
		Bool("archived", archived).
		Msg("Order applied")

	if s.journal != nil {
		rec := &store.OrderRecord{
			Timestamp:  time.Now(),
			Symbol:     key,
			Exchange:   exchange,
			Shares:     shares,
			SharePrice: price,
			NetShares:  held + shares,
			Archived:   archived,
		}
		if err := s.journal.LogOrder(ctx, rec); err != nil {
			s.logger.Warn().Err(err).Str("symbol", key).Msg("Failed to journal order")
		}
	}

	return nil
}

// Watch adds a symbol to the watch list. A live quote fetch runs first
// as a connectivity and validity probe; on fetch failure the watch is
// not added. Re-watching a symbol overwrites the existing entry.
func (s *Service) Watch(ctx context.Context, symbol, exchangeHint string) error {
	key, exchange, err := ResolveSymbol(symbol, exchangeHint)
	if err != nil {
		return err
	}

	if _, err := s.quotes.DailySeries(ctx, key); err != nil {
		return err
	}

	collections, err := s.store.Load()
	if err != nil {
		return err
	}

	collections.Watchlist[key] = models.Position{
		Symbol:   key,
		Exchange: exchange,
		Orders:   nil,
	}

	if err := s.store.Save(collections); err != nil {
		return err
	}

	s.logger.Info().
		Str("event", "watch").
		Str("symbol", key).
		Str("exchange", string(exchange)).
		Msg("Symbol added to watch list")

	return nil
}
