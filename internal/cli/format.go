package cli

import (
	"fmt"

	"stocko/internal/quotes"
	"stocko/pkg/utils"
)

// changeString renders a day change as "+1.23 (+4.56%)", green for gains
// and red for losses.
func changeString(o *Output, m quotes.ChangeMetrics) string {
	s := fmt.Sprintf("%s (%s)", utils.FormatSigned(m.Change), utils.FormatPercent(m.ChangePercentage))
	if m.Change >= 0 {
		return o.Green(s)
	}
	return o.Red(s)
}

// gainString renders an absolute gain and its fraction (0.60 -> +60.00%).
func gainString(o *Output, gain, gainPct float64) string {
	s := fmt.Sprintf("%s (%s)", utils.FormatSigned(gain), utils.FormatPercent(gainPct*100))
	if gain >= 0 {
		return o.Green(s)
	}
	return o.Red(s)
}
