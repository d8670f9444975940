package quotes

import stockoerrors "stocko/internal/errors"

// ChangeMetrics holds the day-over-day change derived from the last two
// entries of a close-price history.
type ChangeMetrics struct {
	Change           float64
	ChangePercentage float64
	CloseToday       float64
	CloseYesterday   float64
}

// ComputeChange derives day-over-day change from a chronologically
// ordered close series. A history shorter than two entries is an error;
// callers treat it as fatal for the symbol's report row.
func ComputeChange(entries []Entry) (ChangeMetrics, error) {
	if len(entries) < 2 {
		return ChangeMetrics{}, stockoerrors.ErrHistoryTooShort
	}

	yesterday := entries[len(entries)-2]
	today := entries[len(entries)-1]

	change := today.Close - yesterday.Close
	return ChangeMetrics{
		Change:           change,
		ChangePercentage: 100 * change / yesterday.Close,
		CloseToday:       today.Close,
		CloseYesterday:   yesterday.Close,
	}, nil
}
