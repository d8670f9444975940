package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	stockoerrors "stocko/internal/errors"
)

const defaultBaseURL = "https://www.alphavantage.co"

// AlphaVantageConfig holds configuration for the Alpha Vantage client.
type AlphaVantageConfig struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// AlphaVantage implements Client against the Alpha Vantage
// TIME_SERIES_DAILY endpoint.
type AlphaVantage struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewAlphaVantage creates a new Alpha Vantage client.
func NewAlphaVantage(cfg AlphaVantageConfig) *AlphaVantage {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &AlphaVantage{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// dailyResponse mirrors the TIME_SERIES_DAILY payload. Error conditions
// arrive as 200 responses carrying one of the message fields.
type dailyResponse struct {
	ErrorMessage string               `json:"Error Message"`
	Note         string               `json:"Note"`
	Information  string               `json:"Information"`
	Series       map[string]dailyBars `json:"Time Series (Daily)"`
}

type dailyBars struct {
	Close string `json:"4. close"`
}

// DailySeries fetches the daily close history for a symbol, ordered
// oldest to newest. The call blocks until the provider responds; there
// are no retries, and any failure aborts the caller's command.
func (c *AlphaVantage) DailySeries(ctx context.Context, symbol string) ([]Entry, error) {
	if c.apiKey == "" {
		return nil, stockoerrors.NewProviderError(symbol, stockoerrors.ErrAPIKeyMissing)
	}

	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", symbol)
	q.Set("apikey", c.apiKey)
	endpoint := fmt.Sprintf("%s/query?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, stockoerrors.NewProviderError(symbol, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, stockoerrors.NewProviderError(symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, stockoerrors.NewProviderError(symbol, fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, stockoerrors.NewProviderError(symbol, err)
	}

	var payload dailyResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, stockoerrors.NewProviderError(symbol, err)
	}
	if payload.ErrorMessage != "" {
		return nil, stockoerrors.NewProviderError(symbol, fmt.Errorf("%s", payload.ErrorMessage))
	}
	if payload.Note != "" {
		return nil, stockoerrors.NewProviderError(symbol, fmt.Errorf("%s", payload.Note))
	}
	if payload.Information != "" {
		return nil, stockoerrors.NewProviderError(symbol, fmt.Errorf("%s", payload.Information))
	}
	if len(payload.Series) == 0 {
		return nil, stockoerrors.NewProviderError(symbol, fmt.Errorf("empty time series"))
	}

	entries := make([]Entry, 0, len(payload.Series))
	for day, bar := range payload.Series {
		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			return nil, stockoerrors.NewProviderError(symbol, fmt.Errorf("bad date %q: %w", day, err))
		}
		closePrice, err := strconv.ParseFloat(bar.Close, 64)
		if err != nil {
			return nil, stockoerrors.NewProviderError(symbol, fmt.Errorf("bad close %q: %w", bar.Close, err))
		}
		entries = append(entries, Entry{Date: date, Close: closePrice})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	return entries, nil
}
