// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrInvalidExchange = errors.New("invalid exchange symbol")
	ErrHistoryTooShort = errors.New("price history has fewer than two entries")
	ErrAPIKeyMissing   = errors.New("alpha vantage api key not configured")
	ErrJournalDisabled = errors.New("order journal not initialized")
)

// SaveDataError indicates the persisted data file could not be written.
type SaveDataError struct {
	Path string
	Err  error
}

func (e *SaveDataError) Error() string {
	return fmt.Sprintf("failed to save %s: %v", e.Path, e.Err)
}

func (e *SaveDataError) Unwrap() error {
	return e.Err
}

// NewSaveDataError creates a new SaveDataError.
func NewSaveDataError(path string, err error) *SaveDataError {
	return &SaveDataError{Path: path, Err: err}
}

// ReadDataError indicates the persisted data file could not be read or parsed.
type ReadDataError struct {
	Path string
	Err  error
}

func (e *ReadDataError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadDataError) Unwrap() error {
	return e.Err
}

// NewReadDataError creates a new ReadDataError.
func NewReadDataError(path string, err error) *ReadDataError {
	return &ReadDataError{Path: path, Err: err}
}

// ProviderError indicates a quote fetch from the market-data provider failed.
type ProviderError struct {
	Symbol string
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("fetching quote for %s from alpha vantage: %v", e.Symbol, e.Err)
	}
	return fmt.Sprintf("fetching quote from alpha vantage: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a new ProviderError.
func NewProviderError(symbol string, err error) *ProviderError {
	return &ProviderError{Symbol: symbol, Err: err}
}

// InvalidShareQuantityError indicates an attempt to sell shares that are
// not held: either more than the current net holding, or a sell against a
// symbol with no open position.
type InvalidShareQuantityError struct {
	Symbol string
	Shares int
}

func (e *InvalidShareQuantityError) Error() string {
	return fmt.Sprintf("you do not have %d shares of %s in your portfolio", e.Shares, e.Symbol)
}

// NewInvalidShareQuantityError creates a new InvalidShareQuantityError.
func NewInvalidShareQuantityError(symbol string, shares int) *InvalidShareQuantityError {
	return &InvalidShareQuantityError{Symbol: symbol, Shares: shares}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
