// ABOUTME: Overview screen showing headline report counts and breakdowns
// ABOUTME: Metric blocks for totals, share bars for distribution, recent reports list

package dashboard

import (
	"fmt"
	"strings"

	"github.com/balungpisah/balungpisah-admin/internal/format"
	"github.com/balungpisah/balungpisah-admin/internal/overview"
	"github.com/balungpisah/balungpisah-admin/internal/tui/icons"
	"github.com/balungpisah/balungpisah-admin/internal/tui/styles"
	"github.com/balungpisah/balungpisah-admin/internal/tui/widgets"
	"github.com/charmbracelet/lipgloss"
)

const (
	barWidth       = 20
	maxCategories  = 5
	titleWidth     = 44
	narrowBlockMin = 60
)

// Dashboard displays the overview
type Dashboard struct {
	data   *overview.Overview
	width  int
	height int
}

// New creates a dashboard, optionally with data already loaded
func New(data *overview.Overview, width, height int) *Dashboard {
	return &Dashboard{
		data:   data,
		width:  width,
		height: height,
	}
}

// Update replaces the overview data
func (d *Dashboard) Update(data *overview.Overview) {
	d.data = data
}

// SetSize updates the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the dashboard
func (d *Dashboard) View() string {
	if d.data == nil {
		return styles.Panel.Width(max(d.width, 20)).Render("Loading overview...")
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Overview"))
	sb.WriteString("\n")

	if d.data.HasSummary {
		sb.WriteString(d.renderBlocks())
		sb.WriteString("\n\n")
		sb.WriteString(d.renderDistribution())
		sb.WriteString("\n")
	} else {
		sb.WriteString(styles.Subtitle.Render("Summary unavailable"))
		sb.WriteString("\n")
	}

	sb.WriteString(d.renderRecent())
	sb.WriteString(d.renderCategories())
	sb.WriteString(d.renderTags())

	return lipgloss.NewStyle().
		Width(max(d.width, 0)).
		MaxHeight(max(d.height, 0)).
		Render(strings.TrimRight(sb.String(), "\n"))
}

func (d *Dashboard) renderBlocks() string {
	s := d.data.Summary
	cfg := widgets.DefaultMetricBlockConfig()
	blocks := []string{
		widgets.MetricBlock(icons.Report, "Reports", format.Number(s.TotalReports), "all time", cfg),
		widgets.MetricBlock(icons.Pending, "This week", format.Number(s.ReportsThisWeek), "new reports", cfg),
		widgets.MetricBlock(icons.Expectation, "This month", format.Number(s.ReportsThisMonth), "new reports", cfg),
	}
	if d.width > 0 && d.width < narrowBlockMin {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (d *Dashboard) renderDistribution() string {
	colors := map[string]lipgloss.Color{
		"Pending":  styles.Warning,
		"Resolved": styles.Secondary,
		"Others":   styles.Info,
	}
	total := d.data.Summary.TotalReports

	var sb strings.Builder
	sb.WriteString(styles.Label.Render("Status distribution"))
	sb.WriteString("\n")
	for _, slice := range d.data.Distribution() {
		fmt.Fprintf(&sb, "  %-9s %7s  %s\n", slice.Name, format.Number(slice.Value),
			widgets.ShareBar(slice.Value, total, barWidth, colors[slice.Name]))
	}
	return sb.String()
}

func (d *Dashboard) renderRecent() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(styles.Label.Render("Recent reports (7 days)"))
	sb.WriteString("\n")
	if len(d.data.Recent) == 0 {
		sb.WriteString("  No recent reports\n")
		return sb.String()
	}
	for _, r := range d.data.Recent {
		fmt.Fprintf(&sb, "  %s %s  %s\n",
			widgets.ReportStatusBadge(r.Status),
			format.Truncate(r.Title, titleWidth),
			styles.Subtitle.UnsetMarginBottom().Render(format.Relative(r.CreatedAt)))
	}
	return sb.String()
}

func (d *Dashboard) renderCategories() string {
	if len(d.data.Categories) == 0 {
		return ""
	}
	total := 0
	for _, c := range d.data.Categories {
		total += c.ReportCount
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(styles.Label.Render("Top categories"))
	sb.WriteString("\n")
	for i, c := range d.data.Categories {
		if i == maxCategories {
			break
		}
		fmt.Fprintf(&sb, "  %-20s %7s  %s\n", format.Truncate(c.Name, 20), format.Number(c.ReportCount),
			widgets.ShareBar(c.ReportCount, total, barWidth, styles.Primary))
	}
	return sb.String()
}

func (d *Dashboard) renderTags() string {
	if len(d.data.Tags) == 0 {
		return ""
	}
	parts := make([]string, 0, len(d.data.Tags))
	for _, t := range d.data.Tags {
		label := t.Label
		if label == "" {
			label = t.TagType.Label()
		}
		parts = append(parts, fmt.Sprintf("%s %s", label, styles.ValueStyle.Render(format.Number(t.ReportCount))))
	}
	return "\n" + styles.Label.Render("Tags") + "\n  " + strings.Join(parts, "  ·  ") + "\n"
}
