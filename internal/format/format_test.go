// ABOUTME: Tests for display formatting helpers
// ABOUTME: Table-driven like the rest of the CLI formatters

package format

import (
	"testing"
	"time"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.73, "73%"},
		{0, "0%"},
		{1, "100%"},
		{0.999, "100%"},
		{0.284, "28%"},
	}
	for _, tt := range tests {
		if got := Percent(tt.in); got != tt.want {
			t.Errorf("Percent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1234, "1.234"},
		{1234567, "1.234.567"},
	}
	for _, tt := range tests {
		if got := Number(tt.in); got != tt.want {
			t.Errorf("Number(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDate(t *testing.T) {
	ts := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.Local)
	if got := Date(ts); got != "Mar 05, 2026" {
		t.Errorf("Date = %q", got)
	}
	if got := DateTime(ts); got != "Mar 05, 2026 14:30" {
		t.Errorf("DateTime = %q", got)
	}
	if got := Date(time.Time{}); got != Placeholder {
		t.Errorf("expected placeholder for zero time, got %q", got)
	}
	if got := OptionalDateTime(nil); got != Placeholder {
		t.Errorf("expected placeholder for nil time, got %q", got)
	}
	if got := OptionalDateTime(&ts); got != "Mar 05, 2026 14:30" {
		t.Errorf("OptionalDateTime = %q", got)
	}
}

func TestRelative(t *testing.T) {
	got := Relative(time.Now().Add(-72 * time.Hour))
	if got != "3 days ago" {
		t.Errorf("expected '3 days ago', got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is far too long", 10, "this is..."},
		{"jalan berlubang", 2, "ja"},
		{"Kabupaten Bandung Barat", 12, "Kabupaten..."},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestOrPlaceholder(t *testing.T) {
	if got := OrPlaceholder(""); got != "-" {
		t.Errorf("expected '-', got %q", got)
	}
	if got := OrPlaceholder("x"); got != "x" {
		t.Errorf("expected 'x', got %q", got)
	}
}

func TestBytes(t *testing.T) {
	if got := Bytes(2048); got != "2.0 kB" {
		t.Errorf("expected '2.0 kB', got %q", got)
	}
}
