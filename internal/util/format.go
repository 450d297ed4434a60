package util

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// NoData is shown in place of an aggregate that has no valid inputs.
const NoData = "-"

// FormatNumber formats an int64 with K/M suffix for readability.
// Examples: 500 -> "500", 1500 -> "1.5K", 1500000 -> "1.5M"
func FormatNumber(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}

// FormatKRW formats a won amount rounded to the unit with thousands
// separators. Example: 1234567.6 -> "₩1,234,568"
func FormatKRW(v float64) string {
	return "₩" + humanize.Comma(int64(math.Round(v)))
}

// FormatPercent formats a ratio as a percentage with one decimal.
// Example: 0.1234 -> "12.3%"
func FormatPercent(r float64) string {
	return fmt.Sprintf("%.1f%%", r*100)
}

// FormatCountPtr formats an optional count, NoData when nil.
func FormatCountPtr(n *int) string {
	if n == nil {
		return NoData
	}
	return fmt.Sprintf("%d", *n)
}

// FormatPercentPtr formats an optional ratio, NoData when nil.
func FormatPercentPtr(r *float64) string {
	if r == nil {
		return NoData
	}
	return FormatPercent(*r)
}

// FormatKRWPtr formats an optional amount, NoData when nil.
func FormatKRWPtr(v *float64) string {
	if v == nil {
		return NoData
	}
	return FormatKRW(*v)
}
