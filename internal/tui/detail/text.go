// ABOUTME: Record text for the detail screens
// ABOUTME: Label/value blocks followed by long-form sections

package detail

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/format"
	"github.com/balungpisah/balungpisah-admin/internal/tui/styles"
	"github.com/balungpisah/balungpisah-admin/internal/tui/widgets"
	"github.com/charmbracelet/lipgloss"
)

const confidenceBarWidth = 10

func writeFields(sb *strings.Builder, fields [][2]string) {
	width := 0
	for _, f := range fields {
		width = max(width, lipgloss.Width(f[0]))
	}
	label := styles.Label.Width(width + 2)
	for _, f := range fields {
		sb.WriteString(label.Render(f[0]+":") + f[1] + "\n")
	}
}

func writeSection(sb *strings.Builder, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	fmt.Fprintf(sb, "\n%s\n%s\n", styles.Label.Render(title), body)
}

func nonEmpty(fields [][2]string) [][2]string {
	out := fields[:0:0]
	for _, f := range fields {
		if f[1] != "" {
			out = append(out, f)
		}
	}
	return out
}

// Location joins the most specific known place names of a report location
func Location(l *client.AdminReportLocation) string {
	if l == nil {
		return format.Placeholder
	}
	var parts []string
	for _, p := range []string{l.DisplayName, l.RegencyName, l.ProvinceName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return format.OrPlaceholder(l.RawInput)
	}
	return strings.Join(parts, ", ")
}

// Report renders a report detail
func Report(r client.AdminReportDetail) string {
	var sb strings.Builder
	fields := [][2]string{
		{"Reference", format.OrPlaceholder(r.ReferenceNumber)},
		{"Title", format.OrPlaceholder(r.Title)},
		{"Status", widgets.ReportStatusBadge(r.Status)},
		{"Platform", format.OrPlaceholder(r.Platform)},
		{"Location", Location(r.Location)},
		{"Created", format.DateTime(r.CreatedAt)},
		{"Verified", format.OptionalDateTime(r.VerifiedAt)},
		{"Resolved", format.OptionalDateTime(r.ResolvedAt)},
	}
	if len(r.Tags) > 0 {
		tags := make([]string, len(r.Tags))
		for i, t := range r.Tags {
			tags[i] = t.Label()
		}
		fields = append(fields, [2]string{"Tags", strings.Join(tags, ", ")})
	}
	writeFields(&sb, fields)

	writeSection(&sb, "Description", r.Description)
	writeSection(&sb, "Impact", r.Impact)
	writeSection(&sb, "Timeline", r.Timeline)
	writeSection(&sb, "Resolution Notes", r.ResolutionNotes)

	if len(r.Categories) > 0 {
		lines := make([]string, len(r.Categories))
		for i, c := range r.Categories {
			sev := lipgloss.NewStyle().Foreground(styles.SeverityColor(c.Severity)).Render(c.Severity.Label())
			lines[i] = fmt.Sprintf("  %s (%s)", c.CategoryName, sev)
		}
		writeSection(&sb, "Categories", strings.Join(lines, "\n"))
	}
	if len(r.Attachments) > 0 {
		lines := make([]string, len(r.Attachments))
		for i, a := range r.Attachments {
			lines[i] = fmt.Sprintf("  %s  %s  %s", a.OriginalFilename, format.Bytes(a.FileSize), a.URL)
		}
		writeSection(&sb, "Attachments", strings.Join(lines, "\n"))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Ticket renders a ticket detail
func Ticket(t client.AdminTicketDetail) string {
	var sb strings.Builder
	completeness := format.Placeholder
	if t.CompletenessScore != nil {
		completeness = widgets.ConfidenceBar(*t.CompletenessScore, confidenceBarWidth)
	}
	writeFields(&sb, [][2]string{
		{"Reference", t.ReferenceNumber},
		{"Status", widgets.TicketStatusBadge(t.Status)},
		{"Platform", format.OrPlaceholder(t.Platform)},
		{"User", format.OrPlaceholder(t.UserID)},
		{"Confidence", widgets.ConfidenceBar(t.ConfidenceScore, confidenceBarWidth)},
		{"Completeness", completeness},
		{"Retries", strconv.Itoa(t.RetryCount)},
		{"Report", format.OrPlaceholder(t.ReportID)},
		{"Submitted", format.DateTime(t.SubmittedAt)},
		{"Processed", format.OptionalDateTime(t.ProcessedAt)},
		{"Last Attempt", format.OptionalDateTime(t.LastAttemptAt)},
	})
	if t.ErrorMessage != "" {
		fmt.Fprintf(&sb, "\n%s\n%s\n", styles.Label.Render("Error"), styles.StatusCritical.Render(t.ErrorMessage))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Contributor renders a contributor sign-up with only the fields it filled
func Contributor(c client.AdminContributorDetail) string {
	var sb strings.Builder
	writeFields(&sb, append([][2]string{
		{"Type", c.SubmissionType},
		{"Joined", format.DateTime(c.CreatedAt)},
	}, nonEmpty([][2]string{
		{"Name", c.Name},
		{"Email", c.Email},
		{"WhatsApp", c.Whatsapp},
		{"City", c.City},
		{"Organization", c.OrganizationName},
		{"Org Type", c.OrganizationType},
		{"Contact", c.ContactName},
		{"Contact Email", c.ContactEmail},
		{"Contact WhatsApp", c.ContactWhatsapp},
		{"Contact Position", c.ContactPosition},
		{"Role", c.Role},
		{"Skills", c.Skills},
		{"Portfolio", c.PortfolioURL},
	})...))
	writeSection(&sb, "Offer", c.ContributionOffer)
	writeSection(&sb, "Aspiration", c.Aspiration)
	writeSection(&sb, "Bio", c.Bio)
	return strings.TrimRight(sb.String(), "\n")
}

// Expectation renders a citizen expectation
func Expectation(e client.AdminExpectation) string {
	var sb strings.Builder
	writeFields(&sb, [][2]string{
		{"Name", format.OrPlaceholder(e.Name)},
		{"Email", format.OrPlaceholder(e.Email)},
		{"Submitted", format.DateTime(e.CreatedAt)},
	})
	writeSection(&sb, "Expectation", e.Expectation)
	return strings.TrimRight(sb.String(), "\n")
}

// Prompt renders a prompt template
func Prompt(p client.Prompt) string {
	var sb strings.Builder
	active := widgets.Badge("active", widgets.StatusOK)
	if !p.IsActive {
		active = widgets.Badge("deleted", widgets.StatusNeutral)
	}
	writeFields(&sb, [][2]string{
		{"Key", p.Key},
		{"Name", p.Name},
		{"Description", format.OrPlaceholder(p.Description)},
		{"Version", strconv.Itoa(p.Version)},
		{"State", active},
		{"Updated", format.DateTime(p.UpdatedAt)},
	})
	writeSection(&sb, "Template", p.TemplateContent)
	writeSection(&sb, "Variables", client.FormatVariables(p.Variables))
	return strings.TrimRight(sb.String(), "\n")
}
