// ABOUTME: Scrollable record screen for a single report, ticket or other item
// ABOUTME: Wraps a viewport and turns screen-specific keys into action messages

package detail

import (
	"maps"
	"slices"
	"strings"

	"github.com/balungpisah/balungpisah-admin/internal/tui/styles"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// BackMsg is sent when the user leaves the screen
type BackMsg struct{}

// ActionMsg is sent for a screen-specific key such as s for status
type ActionMsg struct {
	Key string
}

// Model shows one record
type Model struct {
	title    string
	notice   string
	actions  map[string]string
	viewport viewport.Model
}

// New creates a detail screen. actions maps keys to footer labels.
func New(title, body string, actions map[string]string) *Model {
	vp := viewport.New(80, 20)
	vp.SetContent(body)
	return &Model{
		title:    title,
		actions:  actions,
		viewport: vp,
	}
}

// Title returns the screen title
func (m *Model) Title() string {
	return m.title
}

// SetNotice shows a one-line message above the record
func (m *Model) SetNotice(notice string) {
	m.notice = notice
}

// SetSize updates the viewport dimensions
func (m *Model) SetSize(width, height int) {
	m.viewport.Width = max(width, 20)
	m.viewport.Height = max(height-3, 3)
}

// Update handles a message and returns any follow-up command
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		k := key.String()
		if _, ok := m.actions[k]; ok {
			return func() tea.Msg { return ActionMsg{Key: k} }
		}
		switch k {
		case "esc", "b":
			return func() tea.Msg { return BackMsg{} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// Help returns the footer shortcuts for this screen
func (m *Model) Help() []string {
	help := []string{"↑↓ Scroll"}
	for _, key := range slices.Sorted(maps.Keys(m.actions)) {
		help = append(help, key+" "+m.actions[key])
	}
	return append(help, "b Back")
}

// View renders the screen
func (m *Model) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(m.title))
	sb.WriteString("\n")
	if m.notice != "" {
		sb.WriteString(styles.StatusOK.Render(m.notice))
		sb.WriteString("\n")
	}
	sb.WriteString(m.viewport.View())
	return sb.String()
}
