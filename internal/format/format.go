// ABOUTME: Display formatting for numbers, percentages, dates and long text
// ABOUTME: Shared by the CLI tables and the TUI screens

package format

import (
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	dateLayout     = "Jan 02, 2006"
	dateTimeLayout = "Jan 02, 2006 15:04"

	// Placeholder is shown for absent values
	Placeholder = "-"
)

// Percent renders a 0..1 ratio as a whole percentage, 0.73 -> "73%"
func Percent(ratio float64) string {
	return strconv.Itoa(int(math.Round(ratio*100))) + "%"
}

// Number renders n with Indonesian thousands separators, 1234 -> "1.234"
func Number(n int) string {
	return humanize.FormatInteger("#.###,", n)
}

// Date renders t as "Mar 05, 2026"
func Date(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Local().Format(dateLayout)
}

// DateTime renders t as "Mar 05, 2026 14:30"
func DateTime(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Local().Format(dateTimeLayout)
}

// OptionalDateTime renders a possibly absent timestamp
func OptionalDateTime(t *time.Time) string {
	if t == nil {
		return Placeholder
	}
	return DateTime(*t)
}

// Relative renders t relative to now, "3 days ago"
func Relative(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return humanize.Time(t)
}

// Truncate shortens s to at most n runes, ending in "..." when cut
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// OrPlaceholder returns s, or Placeholder when s is empty
func OrPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

// Bytes renders a file size, 2048 -> "2.0 kB"
func Bytes(n int64) string {
	if n < 0 {
		return Placeholder
	}
	return humanize.Bytes(uint64(n))
}
