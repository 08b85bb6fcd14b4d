// ABOUTME: Report status form with optional resolution notes
// ABOUTME: Confirming the current status sends nothing

package forms

import (
	"fmt"
	"strings"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type statusValues struct {
	reportID string
	current  client.ReportStatus
	status   client.ReportStatus
	notes    string
}

func (v *statusValues) submit() tea.Msg {
	if v.status == v.current {
		return UnchangedMsg{Notice: fmt.Sprintf("Report is already %s", v.current.Label())}
	}
	return StatusSubmittedMsg{
		ReportID: v.reportID,
		Status:   v.status,
		Notes:    strings.TrimSpace(v.notes),
	}
}

// NewReportStatus creates the status form for a report currently in current
func NewReportStatus(reportID string, current client.ReportStatus) *Form {
	v := &statusValues{reportID: reportID, current: current, status: current}

	options := make([]huh.Option[client.ReportStatus], 0, len(client.ReportStatuses))
	for _, s := range client.ReportStatuses {
		options = append(options, huh.NewOption(s.Label(), s))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[client.ReportStatus]().
				Title("Status").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(options...).
				Value(&v.status),
			huh.NewText().
				Title("Resolution notes").
				Description("Optional").
				Lines(4).
				Value(&v.notes),
		).Title("Update status").
			Description("Currently " + current.Label()),
	)
	return newForm("Update status", form, v.submit)
}
