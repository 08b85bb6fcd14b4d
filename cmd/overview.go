// ABOUTME: Overview command for balungpisah-admin CLI
// ABOUTME: Shows headline report counts, status split, recent reports, categories and tags

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/format"
	"github.com/balungpisah/balungpisah-admin/internal/overview"
	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show the dashboard overview",
	Long:  `Display report totals, the pending/resolved split, reports from the last 7 days, and the busiest categories and tags.`,
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runOverview(ctx, c, w)
	}),
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

// runOverview loads the overview and returns exit code
func runOverview(ctx context.Context, src overview.Source, w io.Writer) int {
	o, err := overview.Load(ctx, src)
	if err != nil {
		_, code := resolve[client.DashboardSummary](w, nil, err)
		return code
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatOverviewJSON(o))
	} else {
		fmt.Fprintln(w, formatOverviewHuman(o))
	}
	return exitOK
}

type overviewJSON struct {
	Summary      *client.DashboardSummary       `json:"summary"`
	Distribution []overview.StatusSlice         `json:"distribution"`
	Recent       []client.DashboardReport       `json:"recent_reports"`
	Categories   []client.CategoryReportSummary `json:"categories"`
	Tags         []client.TagReportSummary      `json:"tags"`
}

// formatOverviewJSON formats the overview as JSON
func formatOverviewJSON(o *overview.Overview) string {
	out := overviewJSON{
		Distribution: o.Distribution(),
		Recent:       o.Recent,
		Categories:   o.Categories,
		Tags:         o.Tags,
	}
	if o.HasSummary {
		out.Summary = &o.Summary
	}
	return formatJSON(out)
}

// formatOverviewHuman formats the overview for human readability
func formatOverviewHuman(o *overview.Overview) string {
	var b strings.Builder

	if o.HasSummary {
		s := o.Summary
		fmt.Fprintf(&b, `Total Reports:  %s
Pending:        %s
Resolved:       %s
This Week:      %s
This Month:     %s
`,
			format.Number(s.TotalReports),
			format.Number(s.PendingCount),
			format.Number(s.ResolvedCount),
			format.Number(s.ReportsThisWeek),
			format.Number(s.ReportsThisMonth))

		if s.TotalReports > 0 {
			b.WriteString("\nStatus Distribution\n")
			for _, slice := range o.Distribution() {
				fmt.Fprintf(&b, "  %-9s %6s  %s\n", slice.Name, format.Number(slice.Value),
					format.Percent(float64(slice.Value)/float64(s.TotalReports)))
			}
		}
	} else {
		b.WriteString("Summary unavailable.\n")
	}

	b.WriteString("\nRecent Reports (last 7 days)\n")
	if len(o.Recent) == 0 {
		b.WriteString("  No recent reports\n")
	} else {
		rows := make([][]string, 0, len(o.Recent))
		for _, r := range o.Recent {
			rows = append(rows, []string{format.Truncate(r.Title, 48), r.Status.Label(), format.Date(r.CreatedAt)})
		}
		b.WriteString(renderTable([]string{"Title", "Status", "Created"}, rows))
		b.WriteString("\n")
	}

	if len(o.Categories) > 0 {
		b.WriteString("\nTop Categories\n")
		rows := make([][]string, 0, len(o.Categories))
		for _, c := range o.Categories {
			rows = append(rows, []string{c.Name, format.Number(c.ReportCount)})
		}
		b.WriteString(renderTable([]string{"Category", "Reports"}, rows))
		b.WriteString("\n")
	}

	if len(o.Tags) > 0 {
		b.WriteString("\nReports by Tag\n")
		for _, tag := range o.Tags {
			label := tag.Label
			if label == "" {
				label = tag.TagType.Label()
			}
			fmt.Fprintf(&b, "  %-14s %s\n", label, format.Number(tag.ReportCount))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
