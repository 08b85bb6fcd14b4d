// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Colored inline badges for report, ticket and severity values

package widgets

import (
	"fmt"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/tui/icons"
	"github.com/charmbracelet/lipgloss"
)

// StatusLevel represents the tone of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// Badge colors
var (
	BadgeOKBg      = lipgloss.Color("#10B981")
	BadgeOKFg      = lipgloss.Color("#FFFFFF")
	BadgeWarnBg    = lipgloss.Color("#F59E0B")
	BadgeWarnFg    = lipgloss.Color("#000000")
	BadgeCritBg    = lipgloss.Color("#EF4444")
	BadgeCritFg    = lipgloss.Color("#FFFFFF")
	BadgeInfoBg    = lipgloss.Color("#3B82F6")
	BadgeInfoFg    = lipgloss.Color("#FFFFFF")
	BadgeNeutralBg = lipgloss.Color("#6B7280")
	BadgeNeutralFg = lipgloss.Color("#FFFFFF")
)

func levelColors(level StatusLevel) (bg, fg lipgloss.Color) {
	switch level {
	case StatusOK:
		return BadgeOKBg, BadgeOKFg
	case StatusWarning:
		return BadgeWarnBg, BadgeWarnFg
	case StatusCritical:
		return BadgeCritBg, BadgeCritFg
	case StatusInfo:
		return BadgeInfoBg, BadgeInfoFg
	default:
		return BadgeNeutralBg, BadgeNeutralFg
	}
}

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	bg, fg := levelColors(level)
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true).
		Render(text)
}

// ReportStatusLevel maps a report status to a badge tone
func ReportStatusLevel(s client.ReportStatus) StatusLevel {
	switch s {
	case client.ReportResolved:
		return StatusOK
	case client.ReportPending:
		return StatusWarning
	case client.ReportRejected:
		return StatusCritical
	case client.ReportVerified, client.ReportInProgress:
		return StatusInfo
	default:
		return StatusNeutral
	}
}

// TicketStatusLevel maps a ticket status to a badge tone
func TicketStatusLevel(s client.TicketStatus) StatusLevel {
	switch s {
	case client.TicketCompleted:
		return StatusOK
	case client.TicketFailed:
		return StatusCritical
	case client.TicketProcessing:
		return StatusInfo
	default:
		return StatusNeutral
	}
}

// SeverityLevel maps a category severity to a badge tone
func SeverityLevel(s client.ReportSeverity) StatusLevel {
	switch s {
	case client.SeverityCritical:
		return StatusCritical
	case client.SeverityHigh:
		return StatusWarning
	case client.SeverityMedium:
		return StatusInfo
	default:
		return StatusNeutral
	}
}

// ReportStatusBadge renders a report status badge
func ReportStatusBadge(s client.ReportStatus) string {
	return Badge(s.Label(), ReportStatusLevel(s))
}

// TicketStatusBadge renders a ticket status badge
func TicketStatusBadge(s client.TicketStatus) string {
	return Badge(s.Label(), TicketStatusLevel(s))
}

// StatusIcon returns the appropriate icon for a status level
func StatusIcon(level StatusLevel) string {
	bg, _ := levelColors(level)
	style := lipgloss.NewStyle().Foreground(bg)
	switch level {
	case StatusOK:
		return style.Render(icons.CheckOK.String())
	case StatusWarning:
		return style.Render(icons.Warning.String())
	case StatusCritical:
		return style.Render(icons.Critical.String())
	case StatusInfo:
		return style.Render(icons.Info.String())
	default:
		return style.Render("•")
	}
}

// StatusText returns styled status text with icon
func StatusText(text string, level StatusLevel) string {
	bg, _ := levelColors(level)
	return fmt.Sprintf("%s %s", StatusIcon(level), lipgloss.NewStyle().Foreground(bg).Render(text))
}

// ConfidenceLevel grades an extraction confidence ratio; low confidence is
// the problem case
func ConfidenceLevel(ratio float64) StatusLevel {
	switch {
	case ratio >= 0.8:
		return StatusOK
	case ratio >= 0.5:
		return StatusWarning
	default:
		return StatusCritical
	}
}
