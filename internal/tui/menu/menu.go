// ABOUTME: Main navigation menu shown after login
// ABOUTME: Lists every admin view and emits the selected one

package menu

import (
	"strings"

	"github.com/balungpisah/balungpisah-admin/internal/tui/icons"
	"github.com/balungpisah/balungpisah-admin/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View identifies a destination in the admin console
type View int

const (
	ViewOverview View = iota
	ViewReports
	ViewTickets
	ViewCategories
	ViewLocations
	ViewContributors
	ViewExpectations
	ViewPrompts
	ViewSettings
	ViewLogout
)

// SelectedMsg is sent when the user picks a view
type SelectedMsg struct {
	View View
}

// CancelledMsg is sent when the user leaves the menu
type CancelledMsg struct{}

type option struct {
	label string
	icon  icons.Icon
	view  View
}

// Menu is the navigation list
type Menu struct {
	options []option
	cursor  int
}

var (
	selectedStyle = lipgloss.NewStyle().Foreground(styles.Accent).Bold(true)
	normalStyle   = lipgloss.NewStyle().Foreground(styles.Text)
)

// New creates the navigation menu
func New() *Menu {
	return &Menu{
		options: []option{
			{label: "Overview", icon: icons.Overview, view: ViewOverview},
			{label: "Reports", icon: icons.Report, view: ViewReports},
			{label: "Tickets", icon: icons.Ticket, view: ViewTickets},
			{label: "Categories", icon: icons.Category, view: ViewCategories},
			{label: "Locations", icon: icons.Location, view: ViewLocations},
			{label: "Contributors", icon: icons.Contributor, view: ViewContributors},
			{label: "Expectations", icon: icons.Expectation, view: ViewExpectations},
			{label: "Prompts", icon: icons.Prompt, view: ViewPrompts},
			{label: "Settings", icon: icons.Settings, view: ViewSettings},
			{label: "Log out", icon: icons.Logout, view: ViewLogout},
		},
	}
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		selected := m.options[m.cursor].view
		return m, func() tea.Msg { return SelectedMsg{View: selected} }
	case "q", "esc":
		return m, func() tea.Msg { return CancelledMsg{} }
	}
	return m, nil
}

// Selected returns the highlighted view
func (m *Menu) Selected() View {
	return m.options[m.cursor].view
}

// View implements tea.Model
func (m *Menu) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Balungpisah Admin"))
	sb.WriteString("\n")
	for i, opt := range m.options {
		line := opt.icon.String() + " " + opt.label
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("> " + line))
		} else {
			sb.WriteString(normalStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// String returns the name of a view
func (v View) String() string {
	switch v {
	case ViewOverview:
		return "overview"
	case ViewReports:
		return "reports"
	case ViewTickets:
		return "tickets"
	case ViewCategories:
		return "categories"
	case ViewLocations:
		return "locations"
	case ViewContributors:
		return "contributors"
	case ViewExpectations:
		return "expectations"
	case ViewPrompts:
		return "prompts"
	case ViewSettings:
		return "settings"
	case ViewLogout:
		return "logout"
	default:
		return "unknown"
	}
}
