package montepi

import (
	"math"

	"github.com/dustin/go-humanize"
)

// estimateFormat renders eight digits after the decimal point with "." as the
// decimal separator and "," grouping the integer part.
const estimateFormat = "#,###.########"

// FormatEstimate renders a π estimate for the on-screen label. Undefined
// estimates (NaN, from an empty state) render as an em dash so the label
// stays visually inert before the first sample arrives.
func FormatEstimate(v float64) string {
	if math.IsNaN(v) {
		return "—"
	}
	return humanize.FormatFloat(estimateFormat, v)
}
