// ABOUTME: Paginated table screen backed by a listing.List
// ABOUTME: Handles paging, search, reload and row selection for every admin list

package listview

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/format"
	"github.com/balungpisah/balungpisah-admin/internal/listing"
	"github.com/balungpisah/balungpisah-admin/internal/tui/styles"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chromeLines is the height taken by title, search line and footer
const chromeLines = 6

// OpenMsg is sent when a row is chosen with enter
type OpenMsg struct {
	ID string
}

// ActionMsg is sent for a screen-specific key such as create
type ActionMsg struct {
	Key string
	ID  string
}

// BackMsg is sent when the user leaves the list
type BackMsg struct{}

// Column describes one table column
type Column[T any] struct {
	Title string
	Width int
	Value func(T) string
}

// Config describes a list screen
type Config[F, T any] struct {
	Title   string
	Empty   string
	Columns []Column[T]
	ID      func(T) string
	Fetch   listing.FetchFunc[F, T]

	// Search applies the search text to the filter. Nil disables "/".
	Search func(F, string) F

	// Actions maps extra keys to their footer label, "c" -> "Create"
	Actions map[string]string
}

// loadedMsg carries the outcome of one fetch back to the model that issued it
type loadedMsg[F, T any] struct {
	owner *Model[F, T]
	req   listing.Request[F]
	env   *client.Envelope[[]T]
	err   error
}

// Model is a paginated list screen
type Model[F, T any] struct {
	cfg       Config[F, T]
	list      *listing.List[F, T]
	view      listing.View[T]
	failure   string
	table     table.Model
	spinner   spinner.Model
	search    textinput.Model
	searching bool
	width     int
	height    int
}

// New creates a list screen with the given page size and starting filter.
// A page size of zero or less shows the whole collection on one screen.
func New[F, T any](cfg Config[F, T], pageSize int, filter F) *Model[F, T] {
	cols := make([]table.Column, len(cfg.Columns))
	for i, c := range cfg.Columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}

	t := table.New(table.WithColumns(cols), table.WithFocused(true))
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(styles.Text).
		Background(styles.Primary).
		Bold(false)
	t.SetStyles(ts)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "search"
	in.CharLimit = 100

	list := listing.NewUnpaged[F, T](filter)
	if pageSize > 0 {
		list = listing.New[F, T](pageSize, filter)
	}

	m := &Model[F, T]{
		cfg:     cfg,
		list:    list,
		table:   t,
		spinner: s,
		search:  in,
	}
	m.view = m.list.View()
	return m
}

// Init starts the first load
func (m *Model[F, T]) Init() tea.Cmd {
	return m.Reload()
}

// Reload fetches the current page again
func (m *Model[F, T]) Reload() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

// fetch begins a load and returns the command that performs it
func (m *Model[F, T]) fetch() tea.Cmd {
	req := m.list.Begin()
	m.view = m.list.View()
	fetch := m.cfg.Fetch
	return func() tea.Msg {
		env, err := fetch(context.Background(), req)
		return loadedMsg[F, T]{owner: m, req: req, env: env, err: err}
	}
}

// Filter returns the current filter
func (m *Model[F, T]) Filter() F {
	return m.list.Filter()
}

// SetFilter replaces the filter and reloads from the first page
func (m *Model[F, T]) SetFilter(f F) tea.Cmd {
	m.list.SetFilter(f)
	return m.Reload()
}

// SetSize updates the table dimensions
func (m *Model[F, T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetWidth(width)
	m.table.SetHeight(max(height-chromeLines, 3))
}

// Title returns the screen title
func (m *Model[F, T]) Title() string {
	return m.cfg.Title
}

// State returns the current list snapshot
func (m *Model[F, T]) State() listing.View[T] {
	return m.view
}

// Selected returns the highlighted item
func (m *Model[F, T]) Selected() (T, bool) {
	var zero T
	i := m.table.Cursor()
	if i < 0 || i >= len(m.view.Items) {
		return zero, false
	}
	return m.view.Items[i], true
}

func (m *Model[F, T]) selectedID() string {
	item, ok := m.Selected()
	if !ok || m.cfg.ID == nil {
		return ""
	}
	return m.cfg.ID(item)
}

// Searching reports whether the search input has focus
func (m *Model[F, T]) Searching() bool {
	return m.searching
}

// Update handles a message and returns any follow-up command
func (m *Model[F, T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loadedMsg[F, T]:
		if msg.owner != m {
			return nil
		}
		if !m.list.Apply(msg.req, msg.env, msg.err) {
			return nil
		}
		m.view = m.list.View()
		m.failure = ""
		if msg.err == nil && msg.env != nil && !msg.env.Success {
			m.failure = client.Resolve(msg.env, nil).FailureMessage("Request failed")
		}
		m.refreshRows()
		return nil

	case spinner.TickMsg:
		if m.view.State != listing.Loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return nil
}

func (m *Model[F, T]) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return nil
	case "enter":
		m.searching = false
		m.search.Blur()
		m.list.SetFilter(m.cfg.Search(m.list.Filter(), strings.TrimSpace(m.search.Value())))
		return m.Reload()
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}

func (m *Model[F, T]) updateKeys(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if label, ok := m.cfg.Actions[key]; ok && label != "" {
		id := m.selectedID()
		return func() tea.Msg { return ActionMsg{Key: key, ID: id} }
	}

	switch key {
	case "esc", "b":
		return func() tea.Msg { return BackMsg{} }
	case "r":
		return m.Reload()
	case "n", "right":
		if m.list.NextPage() {
			return m.Reload()
		}
		return nil
	case "p", "left":
		if m.list.PrevPage() {
			return m.Reload()
		}
		return nil
	case "/":
		if m.cfg.Search == nil {
			return nil
		}
		m.searching = true
		return m.search.Focus()
	case "enter":
		id := m.selectedID()
		if id == "" {
			return nil
		}
		return func() tea.Msg { return OpenMsg{ID: id} }
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

func (m *Model[F, T]) refreshRows() {
	rows := make([]table.Row, 0, len(m.view.Items))
	for _, item := range m.view.Items {
		row := make(table.Row, len(m.cfg.Columns))
		for i, c := range m.cfg.Columns {
			row[i] = c.Value(item)
		}
		rows = append(rows, row)
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// Help returns the footer shortcuts for this screen
func (m *Model[F, T]) Help() []string {
	if m.searching {
		return []string{"Enter Search", "Esc Cancel"}
	}
	help := []string{"↑↓ Navigate", "Enter Open"}
	if m.view.HasPrev() || m.view.HasNext() {
		help = append(help, "n/p Page")
	}
	help = append(help, "r Reload")
	if m.cfg.Search != nil {
		help = append(help, "/ Search")
	}
	for _, key := range slices.Sorted(maps.Keys(m.cfg.Actions)) {
		help = append(help, key+" "+m.cfg.Actions[key])
	}
	return append(help, "b Back")
}

// View renders the list
func (m *Model[F, T]) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(m.cfg.Title))
	sb.WriteString("\n")

	if m.searching {
		sb.WriteString(m.search.View())
		sb.WriteString("\n")
	}

	switch {
	case m.view.State == listing.Errored:
		sb.WriteString(styles.StatusCritical.Render("Error: " + m.view.Err.Error()))
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render("Press r to retry"))
		return sb.String()
	case m.failure != "":
		sb.WriteString(styles.StatusWarning.Render(m.failure))
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render("Press r to retry"))
		return sb.String()
	case m.view.State == listing.Empty:
		empty := m.cfg.Empty
		if empty == "" {
			empty = "Nothing found."
		}
		sb.WriteString(styles.Subtitle.Render(empty))
		return sb.String()
	case m.view.State == listing.Loading && len(m.view.Items) == 0:
		sb.WriteString(m.spinner.View() + " Loading...")
		return sb.String()
	}

	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	sb.WriteString(m.footer())
	return sb.String()
}

func (m *Model[F, T]) footer() string {
	var line string
	if m.list.Unpaged() {
		line = format.Number(len(m.view.Items)) + " items"
	} else {
		line = fmt.Sprintf("Page %d of %d", m.view.Page, max(m.view.TotalPages, 1))
		if m.view.Total > 0 {
			line += fmt.Sprintf(" (%s total)", format.Number(m.view.Total))
		}
	}
	if m.view.State == listing.Loading {
		line = m.spinner.View() + " " + line
	}
	return styles.Subtitle.Render(line)
}
