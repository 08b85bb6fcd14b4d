// ABOUTME: Report commands for balungpisah-admin CLI
// ABOUTME: List and inspect reports and change their status

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/format"
	"github.com/balungpisah/balungpisah-admin/internal/listing"
	"github.com/spf13/cobra"
)

var (
	reportFilter      client.ReportFilter
	reportStatus      string
	reportSort        string
	reportAttachments bool
	resolutionNotes   string
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Browse and manage citizen reports",
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reports",
	Run: func(cmd *cobra.Command, args []string) {
		f := reportFilter
		f.Status = client.ReportStatus(reportStatus)
		f.Sort = client.SortOrder(reportSort)
		f.HasAttachments = triState(cmd, "has-attachments", reportAttachments)
		clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
			return runReports(ctx, c, w, f)
		})(cmd, args)
	},
}

var reportsShowCmd = &cobra.Command{
	Use:   "show REPORT_ID",
	Short: "Show a report with its categories, location and attachments",
	Args:  cobra.ExactArgs(1),
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runReportShow(ctx, c, w, args[0])
	}),
}

var reportsSetStatusCmd = &cobra.Command{
	Use:   "set-status REPORT_ID STATUS",
	Short: "Change a report's status",
	Long: `Change a report's status, optionally recording resolution notes.

Valid statuses: ` + statusList(),
	Args: cobra.ExactArgs(2),
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runReportSetStatus(ctx, c, w, args[0], client.ReportStatus(args[1]), resolutionNotes)
	}),
}

func init() {
	rootCmd.AddCommand(reportsCmd)
	reportsCmd.AddCommand(reportsListCmd, reportsShowCmd, reportsSetStatusCmd)

	flags := reportsListCmd.Flags()
	flags.IntVar(&reportFilter.Page, "page", 1, "Page number")
	flags.IntVar(&reportFilter.PageSize, "page-size", 20, "Reports per page")
	flags.StringVar(&reportStatus, "status", "", "Filter by status ("+statusList()+")")
	flags.StringVar(&reportFilter.Search, "search", "", "Search title and description")
	flags.StringVar(&reportFilter.FromDate, "from", "", "Created on or after (YYYY-MM-DD)")
	flags.StringVar(&reportFilter.ToDate, "to", "", "Created on or before (YYYY-MM-DD)")
	flags.StringVar(&reportFilter.UserID, "user-id", "", "Filter by reporter")
	flags.StringVar(&reportFilter.Platform, "platform", "", "Filter by platform")
	flags.BoolVar(&reportAttachments, "has-attachments", false, "Only reports with (or, =false, without) attachments")
	flags.StringVar(&reportFilter.SortBy, "sort-by", "", "Sort field")
	flags.StringVar(&reportSort, "sort", "", "Sort order (asc, desc)")

	reportsSetStatusCmd.Flags().StringVar(&resolutionNotes, "notes", "", "Resolution notes")
}

func statusList() string {
	names := make([]string, len(client.ReportStatuses))
	for i, s := range client.ReportStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// triState reads a boolean flag as unset unless the user passed it
func triState(cmd *cobra.Command, name string, value bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return client.Bool(value)
}

// runReports lists one page of reports and returns exit code
func runReports(ctx context.Context, c *client.Client, w io.Writer, f client.ReportFilter) int {
	l := listing.New[client.ReportFilter, client.AdminReport](f.PageSize, f)
	l.SetPage(f.Page)

	v, code, ok := loadPage(ctx, w, l, func(ctx context.Context, req listing.Request[client.ReportFilter]) (*client.Envelope[[]client.AdminReport], error) {
		q := req.Filter
		q.Page, q.PageSize = req.Page, req.PageSize
		return c.Reports(ctx, q)
	})
	if !ok {
		return code
	}

	printPage(w, v, "No reports found",
		[]string{"ID", "Reference", "Title", "Status", "Category", "Location", "Created"},
		func(r client.AdminReport) []string {
			return []string{
				r.ID,
				format.OrPlaceholder(r.ReferenceNumber),
				format.Truncate(format.OrPlaceholder(r.Title), 40),
				r.Status.Label(),
				format.OrPlaceholder(r.PrimaryCategory),
				format.Truncate(format.OrPlaceholder(r.LocationSummary), 30),
				format.Date(r.CreatedAt),
			}
		})
	return exitOK
}

// runReportShow prints a single report and returns exit code
func runReportShow(ctx context.Context, c *client.Client, w io.Writer, id string) int {
	env, err := c.Report(ctx, id)
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if !r.HasValue {
		fmt.Fprintln(w, "Report not found")
		return exitFailure
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(r.Value))
	} else {
		fmt.Fprintln(w, formatReportHuman(r.Value))
	}
	return exitOK
}

// runReportSetStatus changes a report's status and returns exit code
func runReportSetStatus(ctx context.Context, c *client.Client, w io.Writer, id string, status client.ReportStatus, notes string) int {
	if !status.Valid() {
		fmt.Fprintf(w, "Error: unknown status %q (valid: %s)\n", status, statusList())
		return exitError
	}

	env, err := c.Report(ctx, id)
	current, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if current.HasValue && current.Value.Status == status {
		fmt.Fprintf(w, "Report %s is already %s; nothing to update\n", id, status.Label())
		return exitOK
	}

	updEnv, err := c.UpdateReportStatus(ctx, id, status, notes)
	if _, code := resolve(w, updEnv, err); code != exitOK {
		return code
	}

	if !IsJSONOutput() {
		fmt.Fprintf(w, "Status updated to %s\n", status.Label())
	}
	return runReportShow(ctx, c, w, id)
}

// formatReportHuman formats a report detail for human readability
func formatReportHuman(r client.AdminReportDetail) string {
	var b strings.Builder

	fields := [][2]string{
		{"ID", r.ID},
		{"Reference", format.OrPlaceholder(r.ReferenceNumber)},
		{"Title", format.OrPlaceholder(r.Title)},
		{"Status", r.Status.Label()},
		{"Platform", format.OrPlaceholder(r.Platform)},
		{"Created", format.DateTime(r.CreatedAt)},
		{"Updated", format.DateTime(r.UpdatedAt)},
		{"Verified", format.OptionalDateTime(r.VerifiedAt)},
		{"Resolved", format.OptionalDateTime(r.ResolvedAt)},
	}
	if r.TicketID != "" {
		fields = append(fields, [2]string{"Ticket", r.TicketID})
	}
	if r.Location != nil {
		fields = append(fields, [2]string{"Location", locationLine(r.Location)})
	}
	if len(r.Tags) > 0 {
		tags := make([]string, len(r.Tags))
		for i, t := range r.Tags {
			tags[i] = t.Label()
		}
		fields = append(fields, [2]string{"Tags", strings.Join(tags, ", ")})
	}
	printFields(&b, fields)

	for _, section := range []struct{ title, body string }{
		{"Description", r.Description},
		{"Impact", r.Impact},
		{"Timeline", r.Timeline},
		{"Resolution Notes", r.ResolutionNotes},
	} {
		if section.body != "" {
			fmt.Fprintf(&b, "\n%s\n  %s\n", section.title, section.body)
		}
	}

	if len(r.Categories) > 0 {
		rows := make([][]string, 0, len(r.Categories))
		for _, cat := range r.Categories {
			rows = append(rows, []string{cat.CategoryName, cat.Severity.Label()})
		}
		b.WriteString("\nCategories\n")
		b.WriteString(renderTable([]string{"Category", "Severity"}, rows))
		b.WriteString("\n")
	}

	if len(r.Attachments) > 0 {
		rows := make([][]string, 0, len(r.Attachments))
		for _, a := range r.Attachments {
			rows = append(rows, []string{a.OriginalFilename, a.ContentType, format.Bytes(a.FileSize), a.URL})
		}
		b.WriteString("\nAttachments\n")
		b.WriteString(renderTable([]string{"File", "Type", "Size", "URL"}, rows))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func locationLine(l *client.AdminReportLocation) string {
	parts := []string{}
	for _, p := range []string{l.DisplayName, l.RegencyName, l.ProvinceName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		parts = append(parts, l.RawInput)
	}
	line := strings.Join(parts, ", ")
	if l.Lat != nil && l.Lon != nil {
		line += " (" + strconv.FormatFloat(*l.Lat, 'f', 5, 64) + ", " + strconv.FormatFloat(*l.Lon, 'f', 5, 64) + ")"
	}
	return line
}
