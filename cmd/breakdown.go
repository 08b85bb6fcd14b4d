// ABOUTME: Dashboard breakdown and map commands for balungpisah-admin CLI
// ABOUTME: Report counts per category, location and tag, plus map markers

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/format"
	"github.com/balungpisah/balungpisah-admin/internal/listing"
	"github.com/spf13/cobra"
)

var (
	breakdownFilter client.BreakdownFilter
	breakdownTag    string
	mapFilter       client.MapFilter
	mapStatus       string
	dashboardPage   int
	dashboardSize   int
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Report counts grouped by category, location or tag",
}

var breakdownCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Report counts per category (--slug lists that category's reports)",
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runCategoryBreakdown(ctx, c, w, breakdownFilter)
	}),
}

var breakdownLocationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Report counts per province and regency",
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runLocationBreakdown(ctx, c, w, breakdownFilter)
	}),
}

var breakdownTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Report counts per tag type",
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		f := breakdownFilter
		f.TagType = client.ReportTagType(breakdownTag)
		return runTagBreakdown(ctx, c, w, f)
	}),
}

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "List geolocated reports",
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		f := mapFilter
		f.Status = client.ReportStatus(mapStatus)
		return runMap(ctx, c, w, f)
	}),
}

var markersCmd = &cobra.Command{
	Use:   "markers",
	Short: "List every map marker",
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runMarkers(ctx, c, w)
	}),
}

var dashboardReportsCmd = &cobra.Command{
	Use:   "dashboard-reports",
	Short: "Page through reports as shown on the public dashboard",
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runDashboardReports(ctx, c, w, dashboardPage, dashboardSize)
	}),
}

func init() {
	rootCmd.AddCommand(breakdownCmd, mapCmd, markersCmd, dashboardReportsCmd)
	breakdownCmd.AddCommand(breakdownCategoriesCmd, breakdownLocationsCmd, breakdownTagsCmd)

	pf := breakdownCmd.PersistentFlags()
	pf.IntVar(&breakdownFilter.Page, "page", 1, "Page of reports when drilling down")
	pf.IntVar(&breakdownFilter.PageSize, "page-size", 10, "Reports per page when drilling down")
	breakdownCategoriesCmd.Flags().StringVar(&breakdownFilter.Slug, "slug", "", "Category slug to drill into")
	breakdownLocationsCmd.Flags().StringVar(&breakdownFilter.ProvinceID, "province-id", "", "Province to drill into")
	breakdownLocationsCmd.Flags().StringVar(&breakdownFilter.RegencyID, "regency-id", "", "Regency to drill into")
	breakdownTagsCmd.Flags().StringVar(&breakdownTag, "tag-type", "", "Tag type to drill into")

	mf := mapCmd.Flags()
	mf.StringVar(&mapStatus, "status", "", "Filter by report status")
	mf.StringVar(&mapFilter.ProvinceID, "province-id", "", "Filter by province")
	mf.StringVar(&mapFilter.RegencyID, "regency-id", "", "Filter by regency")
	mf.StringVar(&mapFilter.Category, "category", "", "Filter by category slug")
	mf.IntVar(&mapFilter.Limit, "limit", 0, "Maximum markers to return")

	dashboardReportsCmd.Flags().IntVar(&dashboardPage, "page", 1, "Page number")
	dashboardReportsCmd.Flags().IntVar(&dashboardSize, "page-size", 10, "Reports per page")
}

func runCategoryBreakdown(ctx context.Context, c *client.Client, w io.Writer, f client.BreakdownFilter) int {
	env, err := c.ReportsByCategory(ctx, f)
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(r.Value))
		return exitOK
	}
	if len(r.Value.Categories) == 0 {
		fmt.Fprintln(w, "No categories found")
	} else {
		rows := make([][]string, 0, len(r.Value.Categories))
		for _, cat := range r.Value.Categories {
			rows = append(rows, []string{cat.Name, cat.Slug, format.Number(cat.ReportCount)})
		}
		fmt.Fprintln(w, renderTable([]string{"Category", "Slug", "Reports"}, rows))
	}
	printDrillDown(w, f.Slug, r.Value.Reports)
	return exitOK
}

func runLocationBreakdown(ctx context.Context, c *client.Client, w io.Writer, f client.BreakdownFilter) int {
	env, err := c.ReportsByLocation(ctx, f)
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(r.Value))
		return exitOK
	}
	if len(r.Value.Provinces) == 0 {
		fmt.Fprintln(w, "No provinces found")
	} else {
		rows := make([][]string, 0, len(r.Value.Provinces))
		for _, p := range r.Value.Provinces {
			rows = append(rows, []string{p.Name, p.Code, format.Number(p.ReportCount)})
		}
		fmt.Fprintln(w, renderTable([]string{"Province", "Code", "Reports"}, rows))
	}
	if len(r.Value.Regencies) > 0 {
		rows := make([][]string, 0, len(r.Value.Regencies))
		for _, rg := range r.Value.Regencies {
			rows = append(rows, []string{rg.Name, rg.Code, format.Number(rg.ReportCount)})
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, renderTable([]string{"Regency", "Code", "Reports"}, rows))
	}
	scope := f.RegencyID
	if scope == "" {
		scope = f.ProvinceID
	}
	printDrillDown(w, scope, r.Value.Reports)
	return exitOK
}

func runTagBreakdown(ctx context.Context, c *client.Client, w io.Writer, f client.BreakdownFilter) int {
	env, err := c.ReportsByTag(ctx, f)
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(r.Value))
		return exitOK
	}
	if len(r.Value.Tags) == 0 {
		fmt.Fprintln(w, "No tags found")
	} else {
		rows := make([][]string, 0, len(r.Value.Tags))
		for _, t := range r.Value.Tags {
			label := t.Label
			if label == "" {
				label = t.TagType.Label()
			}
			rows = append(rows, []string{label, string(t.TagType), format.Number(t.ReportCount)})
		}
		fmt.Fprintln(w, renderTable([]string{"Tag", "Type", "Reports"}, rows))
	}
	printDrillDown(w, string(f.TagType), r.Value.Reports)
	return exitOK
}

// printDrillDown lists the reports returned when a breakdown is narrowed
func printDrillDown(w io.Writer, scope string, reports []client.DashboardReport) {
	if scope == "" {
		return
	}
	fmt.Fprintf(w, "\nReports in %s\n", scope)
	if len(reports) == 0 {
		fmt.Fprintln(w, "No reports found")
		return
	}
	fmt.Fprintln(w, dashboardReportTable(reports))
}

func dashboardReportTable(reports []client.DashboardReport) string {
	rows := make([][]string, 0, len(reports))
	for _, rp := range reports {
		location := format.Placeholder
		if rp.Location != nil {
			location = firstNonEmpty(rp.Location.DisplayName, rp.Location.RegencyName, rp.Location.RawInput)
		}
		rows = append(rows, []string{
			format.Truncate(rp.Title, 40),
			rp.Status.Label(),
			location,
			format.Date(rp.CreatedAt),
		})
	}
	return renderTable([]string{"Title", "Status", "Location", "Created"}, rows)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return format.Placeholder
}

func runMap(ctx context.Context, c *client.Client, w io.Writer, f client.MapFilter) int {
	env, err := c.MapData(ctx, f)
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(r.Value))
		return exitOK
	}
	printMarkers(w, r.Value.Markers)
	if r.Value.Total > len(r.Value.Markers) {
		fmt.Fprintf(w, "Showing %d of %s markers\n", len(r.Value.Markers), format.Number(r.Value.Total))
	}
	return exitOK
}

func runMarkers(ctx context.Context, c *client.Client, w io.Writer) int {
	env, err := c.MapMarkers(ctx)
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(orEmpty(r.Value)))
		return exitOK
	}
	printMarkers(w, r.Value)
	return exitOK
}

func printMarkers(w io.Writer, markers []client.MapReportMarker) {
	if len(markers) == 0 {
		fmt.Fprintln(w, "No markers found")
		return
	}
	rows := make([][]string, 0, len(markers))
	for _, m := range markers {
		rows = append(rows, []string{
			format.Truncate(m.Title, 40),
			m.Status.Label(),
			strconv.FormatFloat(m.Lat, 'f', 5, 64) + ", " + strconv.FormatFloat(m.Lon, 'f', 5, 64),
			format.OrPlaceholder(m.CategorySlug),
			format.Date(m.CreatedAt),
		})
	}
	fmt.Fprintln(w, renderTable([]string{"Title", "Status", "Coordinates", "Category", "Created"}, rows))
}

func runDashboardReports(ctx context.Context, c *client.Client, w io.Writer, page, pageSize int) int {
	l := listing.New[struct{}, client.DashboardReport](pageSize, struct{}{})
	l.SetPage(page)

	v, code, ok := loadPage(ctx, w, l, func(ctx context.Context, req listing.Request[struct{}]) (*client.Envelope[[]client.DashboardReport], error) {
		return c.DashboardReports(ctx, req.Page, req.PageSize)
	})
	if !ok {
		return code
	}
	if IsJSONOutput() || v.State == listing.Empty {
		printPage(w, v, "No reports found", nil, nil)
		return exitOK
	}
	fmt.Fprintln(w, dashboardReportTable(v.Items))
	fmt.Fprintln(w, pageFooter(v))
	return exitOK
}
