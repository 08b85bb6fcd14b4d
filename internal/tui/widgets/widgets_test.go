// ABOUTME: Tests for the dashboard widgets
// ABOUTME: Covers status tones, progress bars and metric block layout

package widgets

import (
	"strings"
	"testing"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/tui/icons"
	"github.com/charmbracelet/lipgloss"
)

func TestReportStatusLevel(t *testing.T) {
	tests := []struct {
		status   client.ReportStatus
		expected StatusLevel
	}{
		{client.ReportResolved, StatusOK},
		{client.ReportPending, StatusWarning},
		{client.ReportRejected, StatusCritical},
		{client.ReportVerified, StatusInfo},
		{client.ReportInProgress, StatusInfo},
		{client.ReportDraft, StatusNeutral},
		{client.ReportStatus("archived"), StatusNeutral},
	}
	for _, tt := range tests {
		if got := ReportStatusLevel(tt.status); got != tt.expected {
			t.Errorf("expected %d for %q, got %d", tt.expected, tt.status, got)
		}
	}
}

func TestTicketAndSeverityLevels(t *testing.T) {
	if got := TicketStatusLevel(client.TicketFailed); got != StatusCritical {
		t.Errorf("expected failed ticket to be critical, got %d", got)
	}
	if got := TicketStatusLevel(client.TicketSubmitted); got != StatusNeutral {
		t.Errorf("expected submitted ticket to be neutral, got %d", got)
	}
	if got := SeverityLevel(client.SeverityHigh); got != StatusWarning {
		t.Errorf("expected high severity to be a warning, got %d", got)
	}
	if got := SeverityLevel(client.SeverityLow); got != StatusNeutral {
		t.Errorf("expected low severity to be neutral, got %d", got)
	}
}

func TestConfidenceLevel(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected StatusLevel
	}{
		{0.95, StatusOK},
		{0.8, StatusOK},
		{0.6, StatusWarning},
		{0.2, StatusCritical},
	}
	for _, tt := range tests {
		if got := ConfidenceLevel(tt.ratio); got != tt.expected {
			t.Errorf("expected %d for %.2f, got %d", tt.expected, tt.ratio, got)
		}
	}
}

func TestBadgeContainsLabel(t *testing.T) {
	badge := ReportStatusBadge(client.ReportInProgress)
	if !strings.Contains(badge, "In Progress") {
		t.Errorf("expected badge label, got %q", badge)
	}
}

func TestCompactProgressBar(t *testing.T) {
	tests := []struct {
		ratio  float64
		filled int
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		{1.7, 10},
		{-0.3, 0},
	}
	for _, tt := range tests {
		bar := CompactProgressBar(tt.ratio, 10, lipgloss.Color("#10B981"))
		if got := strings.Count(bar, "▓"); got != tt.filled {
			t.Errorf("expected %d filled cells for %.1f, got %d", tt.filled, tt.ratio, got)
		}
		if got := lipgloss.Width(bar); got != 10 {
			t.Errorf("expected width 10, got %d", got)
		}
	}
}

func TestShareBar(t *testing.T) {
	if bar := ShareBar(1, 4, 8, lipgloss.Color("#3B82F6")); !strings.HasSuffix(bar, " 25%") {
		t.Errorf("expected 25%% suffix, got %q", bar)
	}
	if bar := ShareBar(3, 0, 8, lipgloss.Color("#3B82F6")); !strings.HasSuffix(bar, " 0%") {
		t.Errorf("expected 0%% for an empty total, got %q", bar)
	}
}

func TestConfidenceBar(t *testing.T) {
	bar := ConfidenceBar(0.73, 10)
	if !strings.HasSuffix(bar, " 73%") {
		t.Errorf("expected 73%% suffix, got %q", bar)
	}
	if got := strings.Count(bar, "▓"); got != 7 {
		t.Errorf("expected 7 filled cells, got %d", got)
	}
}

func TestMetricBlockLayout(t *testing.T) {
	cfg := DefaultMetricBlockConfig()
	block := MetricBlock(icons.Report, "Reports", "1.234", "200 pending", cfg)

	lines := strings.Split(block, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != cfg.Width {
			t.Errorf("line %d: expected width %d, got %d (%q)", i, cfg.Width, w, line)
		}
	}
	if !strings.Contains(block, "1.234") || !strings.Contains(block, "200 pending") {
		t.Errorf("expected value and subtitle in block, got:\n%s", block)
	}
}
