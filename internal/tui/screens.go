// ABOUTME: List screens for each admin section
// ABOUTME: Binds client endpoints to listview columns, selection and extra keys

package tui

import (
	"context"
	"strconv"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/format"
	"github.com/balungpisah/balungpisah-admin/internal/listing"
	"github.com/balungpisah/balungpisah-admin/internal/tui/listview"
	"github.com/balungpisah/balungpisah-admin/internal/tui/widgets"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	listPageSize       = 20
	unpaged            = 0
	confidenceBarCells = 6
)

// page is a screen the app can stack and route messages to
type page interface {
	Title() string
	Init() tea.Cmd
	Reload() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Help() []string
}

// entry is a stacked list screen with its selection handlers
type entry struct {
	page   page
	open   func(id string) tea.Cmd
	action func(key, id string) tea.Cmd
}

// project re-wraps a breakdown envelope as a list envelope
func project[A, T any](env *client.Envelope[A], err error, keepMeta bool, pick func(A) []T) (*client.Envelope[[]T], error) {
	if env == nil {
		return nil, err
	}
	out := &client.Envelope[[]T]{
		Success:    env.Success,
		Message:    env.Message,
		Errors:     env.Errors,
		StatusCode: env.StatusCode,
	}
	if keepMeta {
		out.Meta = env.Meta
	}
	if v, ok := env.Value(); ok {
		items := pick(v)
		out.Data = &items
	}
	return out, err
}

func (a *App) reportsEntry() entry {
	lv := listview.New(listview.Config[client.ReportFilter, client.AdminReport]{
		Title: "Reports",
		Empty: "No reports found.",
		Columns: []listview.Column[client.AdminReport]{
			{Title: "Reference", Width: 16, Value: func(r client.AdminReport) string { return format.OrPlaceholder(r.ReferenceNumber) }},
			{Title: "Title", Width: 32, Value: func(r client.AdminReport) string { return format.Truncate(format.OrPlaceholder(r.Title), 32) }},
			{Title: "Status", Width: 12, Value: func(r client.AdminReport) string { return r.Status.Label() }},
			{Title: "Category", Width: 18, Value: func(r client.AdminReport) string { return format.OrPlaceholder(r.PrimaryCategory) }},
			{Title: "Location", Width: 22, Value: func(r client.AdminReport) string { return format.OrPlaceholder(r.LocationSummary) }},
			{Title: "Created", Width: 14, Value: func(r client.AdminReport) string { return format.Relative(r.CreatedAt) }},
		},
		ID: func(r client.AdminReport) string { return r.ID },
		Fetch: func(ctx context.Context, req listing.Request[client.ReportFilter]) (*client.Envelope[[]client.AdminReport], error) {
			f := req.Filter
			f.Page, f.PageSize = req.Page, req.PageSize
			return a.client.Reports(ctx, f)
		},
		Search: func(f client.ReportFilter, s string) client.ReportFilter { f.Search = s; return f },
	}, listPageSize, client.ReportFilter{})

	return entry{page: lv, open: a.openReport}
}

func (a *App) ticketsEntry() entry {
	lv := listview.New(listview.Config[client.TicketFilter, client.AdminTicket]{
		Title: "Tickets",
		Empty: "No tickets found.",
		Columns: []listview.Column[client.AdminTicket]{
			{Title: "Reference", Width: 16, Value: func(t client.AdminTicket) string { return t.ReferenceNumber }},
			{Title: "Platform", Width: 10, Value: func(t client.AdminTicket) string { return format.OrPlaceholder(t.Platform) }},
			{Title: "Status", Width: 12, Value: func(t client.AdminTicket) string { return t.Status.Label() }},
			{Title: "Confidence", Width: 12, Value: func(t client.AdminTicket) string {
				return widgets.ConfidenceBar(t.ConfidenceScore, confidenceBarCells)
			}},
			{Title: "Retries", Width: 8, Value: func(t client.AdminTicket) string { return strconv.Itoa(t.RetryCount) }},
			{Title: "Submitted", Width: 14, Value: func(t client.AdminTicket) string { return format.Relative(t.SubmittedAt) }},
		},
		ID: func(t client.AdminTicket) string { return t.ID },
		Fetch: func(ctx context.Context, req listing.Request[client.TicketFilter]) (*client.Envelope[[]client.AdminTicket], error) {
			f := req.Filter
			f.Page, f.PageSize = req.Page, req.PageSize
			return a.client.Tickets(ctx, f)
		},
		Search: func(f client.TicketFilter, s string) client.TicketFilter { f.Search = s; return f },
	}, listPageSize, client.TicketFilter{})

	return entry{page: lv, open: a.openTicket}
}

func (a *App) contributorsEntry() entry {
	lv := listview.New(listview.Config[client.ContributorFilter, client.AdminContributor]{
		Title: "Contributors",
		Empty: "No contributors found.",
		Columns: []listview.Column[client.AdminContributor]{
			{Title: "Type", Width: 14, Value: func(c client.AdminContributor) string { return c.SubmissionType }},
			{Title: "Name", Width: 24, Value: func(c client.AdminContributor) string {
				return format.OrPlaceholder(firstNonEmpty(c.Name, c.OrganizationName))
			}},
			{Title: "Email", Width: 28, Value: func(c client.AdminContributor) string { return format.OrPlaceholder(c.Email) }},
			{Title: "City", Width: 16, Value: func(c client.AdminContributor) string { return format.OrPlaceholder(c.City) }},
			{Title: "Joined", Width: 14, Value: func(c client.AdminContributor) string { return format.Date(c.CreatedAt) }},
		},
		ID: func(c client.AdminContributor) string { return c.ID },
		Fetch: func(ctx context.Context, req listing.Request[client.ContributorFilter]) (*client.Envelope[[]client.AdminContributor], error) {
			f := req.Filter
			f.Page, f.PageSize = req.Page, req.PageSize
			return a.client.Contributors(ctx, f)
		},
		Search: func(f client.ContributorFilter, s string) client.ContributorFilter { f.Search = s; return f },
	}, listPageSize, client.ContributorFilter{})

	return entry{page: lv, open: a.openContributor}
}

func (a *App) expectationsEntry() entry {
	lv := listview.New(listview.Config[client.ExpectationFilter, client.AdminExpectation]{
		Title: "Expectations",
		Empty: "No expectations found.",
		Columns: []listview.Column[client.AdminExpectation]{
			{Title: "Name", Width: 20, Value: func(e client.AdminExpectation) string { return format.OrPlaceholder(e.Name) }},
			{Title: "Email", Width: 26, Value: func(e client.AdminExpectation) string { return format.OrPlaceholder(e.Email) }},
			{Title: "Expectation", Width: 50, Value: func(e client.AdminExpectation) string { return format.Truncate(e.Expectation, 50) }},
			{Title: "Submitted", Width: 14, Value: func(e client.AdminExpectation) string { return format.Date(e.CreatedAt) }},
		},
		ID: func(e client.AdminExpectation) string { return e.ID },
		Fetch: func(ctx context.Context, req listing.Request[client.ExpectationFilter]) (*client.Envelope[[]client.AdminExpectation], error) {
			f := req.Filter
			f.Page, f.PageSize = req.Page, req.PageSize
			return a.client.Expectations(ctx, f)
		},
		Search: func(f client.ExpectationFilter, s string) client.ExpectationFilter { f.Search = s; return f },
	}, listPageSize, client.ExpectationFilter{})

	return entry{page: lv, open: a.openExpectation}
}

func (a *App) promptsEntry() entry {
	lv := listview.New(listview.Config[client.PromptFilter, client.Prompt]{
		Title: "Prompts",
		Empty: "No prompts found.",
		Columns: []listview.Column[client.Prompt]{
			{Title: "Key", Width: 24, Value: func(p client.Prompt) string { return p.Key }},
			{Title: "Name", Width: 30, Value: func(p client.Prompt) string { return format.Truncate(p.Name, 30) }},
			{Title: "Version", Width: 8, Value: func(p client.Prompt) string { return strconv.Itoa(p.Version) }},
			{Title: "State", Width: 8, Value: func(p client.Prompt) string {
				if p.IsActive {
					return "active"
				}
				return "deleted"
			}},
			{Title: "Updated", Width: 14, Value: func(p client.Prompt) string { return format.Relative(p.UpdatedAt) }},
		},
		ID: func(p client.Prompt) string { return p.ID },
		Fetch: func(ctx context.Context, req listing.Request[client.PromptFilter]) (*client.Envelope[[]client.Prompt], error) {
			f := req.Filter
			f.Page, f.PageSize = req.Page, req.PageSize
			return a.client.Prompts(ctx, f)
		},
		Search:  func(f client.PromptFilter, s string) client.PromptFilter { f.Search = s; return f },
		Actions: map[string]string{"c": "Create", "a": "Active/Deleted"},
	}, listPageSize, client.PromptFilter{IsActive: client.Bool(true)})

	action := func(key, _ string) tea.Cmd {
		switch key {
		case "c":
			return a.loadPromptKeys()
		case "a":
			f := lv.Filter()
			f.IsActive = client.Bool(f.IsActive == nil || !*f.IsActive)
			return lv.SetFilter(f)
		}
		return nil
	}
	return entry{page: lv, open: a.openPrompt, action: action}
}

func (a *App) settingsEntry() entry {
	lv := listview.New(listview.Config[struct{}, client.RateLimitConfig]{
		Title: "Rate limits",
		Empty: "No rate-limit settings.",
		Columns: []listview.Column[client.RateLimitConfig]{
			{Title: "Key", Width: 28, Value: func(r client.RateLimitConfig) string { return r.Key }},
			{Title: "Value", Width: 8, Value: func(r client.RateLimitConfig) string { return strconv.Itoa(r.Value) }},
			{Title: "Description", Width: 40, Value: func(r client.RateLimitConfig) string {
				return format.Truncate(format.OrPlaceholder(r.Description), 40)
			}},
			{Title: "Updated", Width: 14, Value: func(r client.RateLimitConfig) string { return format.Relative(r.UpdatedAt) }},
		},
		ID: func(r client.RateLimitConfig) string { return r.Key },
		Fetch: func(ctx context.Context, _ listing.Request[struct{}]) (*client.Envelope[[]client.RateLimitConfig], error) {
			return a.client.RateLimits(ctx)
		},
	}, unpaged, struct{}{})

	return entry{page: lv, open: a.openRateLimit}
}

func (a *App) categoriesEntry() entry {
	lv := listview.New(listview.Config[struct{}, client.CategoryReportSummary]{
		Title: "Reports by category",
		Empty: "No categories.",
		Columns: []listview.Column[client.CategoryReportSummary]{
			{Title: "Category", Width: 28, Value: func(c client.CategoryReportSummary) string { return c.Name }},
			{Title: "Reports", Width: 10, Value: func(c client.CategoryReportSummary) string { return format.Number(c.ReportCount) }},
			{Title: "Description", Width: 44, Value: func(c client.CategoryReportSummary) string {
				return format.Truncate(format.OrPlaceholder(c.Description), 44)
			}},
		},
		ID: func(c client.CategoryReportSummary) string { return c.Slug },
		Fetch: func(ctx context.Context, _ listing.Request[struct{}]) (*client.Envelope[[]client.CategoryReportSummary], error) {
			env, err := a.client.ReportsByCategory(ctx, client.BreakdownFilter{})
			return project(env, err, false, func(b client.CategoryBreakdown) []client.CategoryReportSummary { return b.Categories })
		},
	}, unpaged, struct{}{})

	open := func(slug string) tea.Cmd {
		return a.push(a.drillDownEntry("Reports in "+slug, client.BreakdownFilter{Slug: slug},
			func(ctx context.Context, f client.BreakdownFilter) (*client.Envelope[[]client.DashboardReport], error) {
				env, err := a.client.ReportsByCategory(ctx, f)
				return project(env, err, true, func(b client.CategoryBreakdown) []client.DashboardReport { return b.Reports })
			}))
	}
	return entry{page: lv, open: open}
}

func (a *App) locationsEntry() entry {
	lv := listview.New(listview.Config[struct{}, client.ProvinceReportSummary]{
		Title: "Reports by province",
		Empty: "No provinces.",
		Columns: []listview.Column[client.ProvinceReportSummary]{
			{Title: "Province", Width: 28, Value: func(p client.ProvinceReportSummary) string { return p.Name }},
			{Title: "Code", Width: 8, Value: func(p client.ProvinceReportSummary) string { return p.Code }},
			{Title: "Reports", Width: 10, Value: func(p client.ProvinceReportSummary) string { return format.Number(p.ReportCount) }},
		},
		ID: func(p client.ProvinceReportSummary) string { return p.ID },
		Fetch: func(ctx context.Context, _ listing.Request[struct{}]) (*client.Envelope[[]client.ProvinceReportSummary], error) {
			env, err := a.client.ReportsByLocation(ctx, client.BreakdownFilter{})
			return project(env, err, false, func(b client.LocationBreakdown) []client.ProvinceReportSummary { return b.Provinces })
		},
	}, unpaged, struct{}{})

	open := func(provinceID string) tea.Cmd {
		return a.push(a.drillDownEntry("Reports in province", client.BreakdownFilter{ProvinceID: provinceID},
			func(ctx context.Context, f client.BreakdownFilter) (*client.Envelope[[]client.DashboardReport], error) {
				env, err := a.client.ReportsByLocation(ctx, f)
				return project(env, err, true, func(b client.LocationBreakdown) []client.DashboardReport { return b.Reports })
			}))
	}
	return entry{page: lv, open: open}
}

// drillDownEntry lists the reports behind one breakdown row
func (a *App) drillDownEntry(title string, scope client.BreakdownFilter,
	fetch func(ctx context.Context, f client.BreakdownFilter) (*client.Envelope[[]client.DashboardReport], error)) entry {
	lv := listview.New(listview.Config[client.BreakdownFilter, client.DashboardReport]{
		Title: title,
		Empty: "No reports in this scope.",
		Columns: []listview.Column[client.DashboardReport]{
			{Title: "Title", Width: 36, Value: func(r client.DashboardReport) string { return format.Truncate(r.Title, 36) }},
			{Title: "Status", Width: 12, Value: func(r client.DashboardReport) string { return r.Status.Label() }},
			{Title: "Location", Width: 24, Value: func(r client.DashboardReport) string {
				if r.Location == nil {
					return format.Placeholder
				}
				return format.OrPlaceholder(firstNonEmpty(r.Location.DisplayName, r.Location.RegencyName, r.Location.RawInput))
			}},
			{Title: "Created", Width: 14, Value: func(r client.DashboardReport) string { return format.Relative(r.CreatedAt) }},
		},
		ID: func(r client.DashboardReport) string { return r.ID },
		Fetch: func(ctx context.Context, req listing.Request[client.BreakdownFilter]) (*client.Envelope[[]client.DashboardReport], error) {
			f := req.Filter
			f.Page, f.PageSize = req.Page, req.PageSize
			return fetch(ctx, f)
		},
	}, listPageSize, scope)

	return entry{page: lv, open: a.openReport}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
