// ABOUTME: Root bubbletea model for the admin console
// ABOUTME: Manages screen state and routes keyboard input to child components

package tui

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/tui/dashboard"
	"github.com/balungpisah/balungpisah-admin/internal/tui/detail"
	"github.com/balungpisah/balungpisah-admin/internal/tui/forms"
	"github.com/balungpisah/balungpisah-admin/internal/tui/icons"
	"github.com/balungpisah/balungpisah-admin/internal/tui/listview"
	"github.com/balungpisah/balungpisah-admin/internal/tui/menu"
	"github.com/balungpisah/balungpisah-admin/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenMenu
	ScreenOverview
	ScreenList
	ScreenDetail
	ScreenForm
)

// Layout constants
const (
	minTerminalWidth = 80 // Frame never renders narrower than this
	frameLines       = 4  // Header, footer and the notice line
)

// App is the root model for the TUI
type App struct {
	client     *client.Client
	screen     Screen
	width      int
	height     int
	err        error
	notice     string
	noticeErr  bool
	user       string
	lastUpdate time.Time

	// Child models
	menu       *menu.Menu
	dashboard  *dashboard.Dashboard
	lists      []entry
	detail     *detail.Model
	record     *record
	form       *forms.Form
	formReturn Screen
}

// New creates a new TUI application. Without a stored session it opens on
// the login screen.
func New(apiClient *client.Client) *App {
	a := &App{
		client: apiClient,
		screen: ScreenMenu,
		menu:   menu.New(),
	}
	if apiClient == nil || !apiClient.LoggedIn() {
		a.showLogin("")
	}
	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	if a.screen == ScreenLogin {
		return a.form.Init()
	}
	return a.loadUser()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.updateKeys(msg)

	case SessionExpiredMsg:
		return a, a.expire()

	case forms.LoginSubmittedMsg:
		a.setNotice("Signing in...", false)
		return a, a.login(msg.Email, msg.Password)

	case loginDoneMsg:
		if msg.err != nil {
			cmd := a.showLogin(msg.email)
			a.setNotice(msg.err.Error(), true)
			return a, cmd
		}
		a.form = nil
		a.user = msg.email
		a.screen = ScreenMenu
		a.setNotice("Signed in as "+msg.email, false)
		return a, a.loadUser()

	case userLoadedMsg:
		switch {
		case msg.err == nil:
			a.user = firstNonEmpty(msg.user.Sub, msg.user.AccountID, a.user)
			return a, nil
		case errors.Is(msg.err, client.ErrUnauthorized):
			return a, nil
		case client.IsTransport(msg.err):
			a.fail(msg.err)
			return a, nil
		}
		return a, a.reject(msg.err)

	case menu.SelectedMsg:
		return a, a.open(msg.View)

	case menu.CancelledMsg:
		return a, tea.Quit

	case overviewLoadedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.lastUpdate = time.Now()
		if a.dashboard != nil {
			a.dashboard.Update(msg.data)
		}
		return a, nil

	case listview.OpenMsg:
		if top := a.top(); top != nil && top.open != nil {
			return a, top.open(msg.ID)
		}
		return a, nil

	case listview.ActionMsg:
		if top := a.top(); top != nil && top.action != nil {
			return a, top.action(msg.Key, msg.ID)
		}
		return a, nil

	case listview.BackMsg:
		a.pop()
		return a, nil

	case recordLoadedMsg:
		if msg.err != nil {
			a.fail(msg.err)
			return a, nil
		}
		if a.screen == ScreenList || a.screen == ScreenDetail {
			a.showRecord(msg.rec, msg.notice)
		}
		return a, nil

	case detail.ActionMsg:
		return a, a.detailAction(msg.Key)

	case detail.BackMsg:
		return a, a.leaveDetail()

	case rateLimitLoadedMsg:
		if msg.err != nil {
			a.fail(msg.err)
			return a, nil
		}
		if a.screen != ScreenList {
			return a, nil
		}
		return a, a.openForm(forms.NewRateLimit(msg.cfg))

	case promptKeysLoadedMsg:
		if errors.Is(msg.err, client.ErrUnauthorized) || a.screen != ScreenList {
			return a, nil
		}
		return a, a.openForm(forms.NewPromptCreate(msg.keys))

	case forms.StatusSubmittedMsg:
		a.closeForm()
		a.setNotice("Saving...", false)
		return a, a.updateReportStatus(msg.ReportID, msg.Status, msg.Notes)

	case forms.RateLimitSubmittedMsg:
		a.closeForm()
		a.setNotice("Saving...", false)
		return a, a.updateRateLimit(msg.Key, msg.Value)

	case forms.PromptSubmittedMsg:
		a.closeForm()
		a.setNotice("Saving...", false)
		return a, a.savePrompt(msg.ID, msg.Create, msg.Update)

	case forms.UnchangedMsg:
		a.closeForm()
		a.setNotice(msg.Notice, false)
		return a, nil

	case forms.CancelledMsg:
		if a.screen == ScreenForm {
			a.closeForm()
		}
		return a, nil

	case mutationDoneMsg:
		if msg.err != nil {
			a.fail(msg.err)
			return a, nil
		}
		a.setNotice(msg.notice, false)
		if msg.next != nil {
			return a, msg.next()
		}
		return a, nil
	}

	// Everything else belongs to a child: form internals, list loads, spinner ticks
	var cmds []tea.Cmd
	if a.form != nil {
		cmds = append(cmds, a.form.Update(msg))
	}
	for _, e := range a.lists {
		cmds = append(cmds, e.page.Update(msg))
	}
	return a, tea.Batch(cmds...)
}

func (a *App) updateKeys(msg tea.KeyMsg) tea.Cmd {
	switch a.screen {
	case ScreenLogin, ScreenForm:
		if a.form != nil {
			return a.form.Update(msg)
		}
	case ScreenMenu:
		a.notice = ""
		model, cmd := a.menu.Update(msg)
		a.menu = model.(*menu.Menu)
		return cmd
	case ScreenOverview:
		a.notice = ""
		switch msg.String() {
		case "q":
			return tea.Quit
		case "r":
			return a.loadOverview()
		case "b", "esc":
			a.screen = ScreenMenu
			a.dashboard = nil
			a.err = nil
		}
	case ScreenList:
		if top := a.top(); top != nil {
			return top.page.Update(msg)
		}
	case ScreenDetail:
		if a.detail != nil {
			return a.detail.Update(msg)
		}
	}
	return nil
}

// open switches to the section chosen on the menu
func (a *App) open(view menu.View) tea.Cmd {
	a.notice = ""
	a.lists = nil

	switch view {
	case menu.ViewOverview:
		a.screen = ScreenOverview
		a.err = nil
		a.dashboard = dashboard.New(nil, a.contentWidth(), a.contentHeight())
		return a.loadOverview()
	case menu.ViewReports:
		return a.push(a.reportsEntry())
	case menu.ViewTickets:
		return a.push(a.ticketsEntry())
	case menu.ViewCategories:
		return a.push(a.categoriesEntry())
	case menu.ViewLocations:
		return a.push(a.locationsEntry())
	case menu.ViewContributors:
		return a.push(a.contributorsEntry())
	case menu.ViewExpectations:
		return a.push(a.expectationsEntry())
	case menu.ViewPrompts:
		return a.push(a.promptsEntry())
	case menu.ViewSettings:
		return a.push(a.settingsEntry())
	case menu.ViewLogout:
		if err := a.client.Logout(); err != nil {
			a.fail(err)
			return nil
		}
		cmd := a.showLogin("")
		a.setNotice("Signed out", false)
		return cmd
	}
	return nil
}

// expire drops every authenticated screen and returns to login
func (a *App) expire() tea.Cmd {
	if a.screen == ScreenLogin {
		return nil
	}
	cmd := a.showLogin("")
	a.setNotice("Session expired. Please sign in again.", true)
	return cmd
}

// reject forgets a token the backend refuses to accept
func (a *App) reject(err error) tea.Cmd {
	if clearErr := a.client.Logout(); clearErr != nil {
		a.fail(clearErr)
		return nil
	}
	cmd := a.showLogin("")
	a.setNotice("Signed out: "+err.Error(), true)
	return cmd
}

// showLogin resets to the login screen with a fresh form
func (a *App) showLogin(email string) tea.Cmd {
	a.lists = nil
	a.detail = nil
	a.record = nil
	a.dashboard = nil
	a.user = ""
	a.err = nil
	a.notice = ""
	a.form = forms.NewLogin(email)
	a.form.SetWidth(a.contentWidth())
	a.screen = ScreenLogin
	return a.form.Init()
}

func (a *App) top() *entry {
	if len(a.lists) == 0 {
		return nil
	}
	return &a.lists[len(a.lists)-1]
}

func (a *App) push(e entry) tea.Cmd {
	a.lists = append(a.lists, e)
	e.page.SetSize(a.contentWidth(), a.contentHeight())
	a.screen = ScreenList
	return e.page.Init()
}

func (a *App) pop() {
	a.notice = ""
	if len(a.lists) > 0 {
		a.lists = a.lists[:len(a.lists)-1]
	}
	if len(a.lists) == 0 {
		a.screen = ScreenMenu
	}
}

func (a *App) reloadList() tea.Cmd {
	if top := a.top(); top != nil {
		return top.page.Reload()
	}
	return nil
}

// leaveDetail returns to the list the record was opened from and refreshes it
func (a *App) leaveDetail() tea.Cmd {
	a.detail = nil
	a.record = nil
	if len(a.lists) == 0 {
		a.screen = ScreenMenu
		return nil
	}
	a.screen = ScreenList
	return a.reloadList()
}

func (a *App) showRecord(rec *record, notice string) {
	a.record = rec
	a.detail = detail.New(rec.title, rec.body, rec.actions)
	a.detail.SetSize(a.contentWidth(), a.contentHeight())
	a.detail.SetNotice(notice)
	a.notice = ""
	a.screen = ScreenDetail
}

func (a *App) detailAction(key string) tea.Cmd {
	rec := a.record
	if rec == nil {
		return nil
	}
	switch key {
	case "r":
		return rec.reload()
	case "s":
		return a.openForm(forms.NewReportStatus(rec.id, rec.status))
	case "e":
		if rec.prompt != nil {
			return a.openForm(forms.NewPromptEdit(*rec.prompt))
		}
	case "d":
		return a.deletePrompt(rec.id)
	case "u":
		return a.restorePrompt(rec.id)
	}
	return nil
}

func (a *App) openForm(f *forms.Form) tea.Cmd {
	a.formReturn = a.screen
	a.form = f
	a.form.SetWidth(a.contentWidth())
	a.screen = ScreenForm
	a.notice = ""
	return a.form.Init()
}

func (a *App) closeForm() {
	a.form = nil
	a.screen = a.formReturn
}

func (a *App) setNotice(text string, isErr bool) {
	a.notice = text
	a.noticeErr = isErr
}

// fail shows err unless it is an expired session, which has its own flow
func (a *App) fail(err error) {
	if errors.Is(err, client.ErrUnauthorized) {
		return
	}
	a.setNotice("Error: "+err.Error(), true)
}

func (a *App) resize() {
	w, h := a.contentWidth(), a.contentHeight()
	if a.dashboard != nil {
		a.dashboard.SetSize(w, h)
	}
	for _, e := range a.lists {
		e.page.SetSize(w, h)
	}
	if a.detail != nil {
		a.detail.SetSize(w, h)
	}
	if a.form != nil {
		a.form.SetWidth(w)
	}
}

// frameWidth is one column short of the terminal to avoid wrapping
func (a *App) frameWidth() int {
	return max(a.width-1, minTerminalWidth)
}

func (a *App) contentWidth() int {
	return a.frameWidth() - 2
}

func (a *App) contentHeight() int {
	return max(a.height-frameLines, 5)
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenLogin, ScreenForm:
		if a.form != nil {
			content = a.form.View()
		}
	case ScreenMenu:
		content = a.menu.View()
	case ScreenOverview:
		content = a.viewOverview()
	case ScreenList:
		if top := a.top(); top != nil {
			content = top.page.View()
		}
	case ScreenDetail:
		if a.detail != nil {
			content = a.detail.View()
		}
	}

	if a.notice != "" {
		style := styles.StatusOK
		if a.noticeErr {
			style = styles.StatusCritical
		}
		content = style.Render(a.notice) + "\n" + content
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewOverview() string {
	if a.err != nil {
		return styles.StatusCritical.Render("Error: "+a.err.Error()) + "\n" +
			styles.Help.Render("Press r to retry")
	}
	if a.dashboard == nil {
		return ""
	}
	return a.dashboard.View()
}

// contextLabel names where the user is for the header
func (a *App) contextLabel() string {
	var parts []string
	switch a.screen {
	case ScreenOverview:
		parts = append(parts, "Overview")
	case ScreenList, ScreenDetail, ScreenForm:
		if top := a.top(); top != nil {
			parts = append(parts, top.page.Title())
		}
	}
	if a.user != "" && a.screen != ScreenLogin {
		parts = append(parts, a.user)
	}
	return strings.Join(parts, " · ")
}

// renderHeader creates the header bar with app branding and context
func (a *App) renderHeader() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s ", icons.App.String(), titleStyle.Render("Balungpisah Admin"))

	rightText := ""
	if label := a.contextLabel(); label != "" {
		rightText = " " + contextStyle.Render(label) + " "
	}

	fillWidth := max(width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText), 0)
	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"

	return borderStyle.Render(header)
}

// shortcuts lists the keys available on the current screen
func (a *App) shortcuts() []string {
	switch a.screen {
	case ScreenLogin:
		return []string{"Tab Next", "Enter Sign in", "Ctrl+C Quit"}
	case ScreenMenu:
		return []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	case ScreenOverview:
		return []string{"r Refresh", "b Back", "q Quit"}
	case ScreenList:
		if top := a.top(); top != nil {
			return top.page.Help()
		}
	case ScreenDetail:
		if a.detail != nil {
			return a.detail.Help()
		}
	case ScreenForm:
		if a.form != nil {
			return a.form.Help()
		}
	}
	return nil
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var styled []string
	for _, s := range a.shortcuts() {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styled = append(styled, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styled = append(styled, s)
		}
	}
	leftText := " " + strings.Join(styled, "  ") + " "

	rightText := ""
	if a.screen == ScreenOverview && !a.lastUpdate.IsZero() {
		rightText = " " + statusStyle.Render("Updated "+formatTimeSince(a.lastUpdate)) + " "
	}

	fillWidth := max(width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText), 0)
	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"

	return borderStyle.Render(footer)
}

// formatTimeSince formats a duration since the given time in human-readable form
func formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh ago", int(d.Hours()))
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Navigator sends the running program back to login when the session
// expires. It is handed to the client before the program exists.
type Navigator struct {
	mu      sync.Mutex
	program *tea.Program
}

// NewNavigator creates a navigator with no program attached yet
func NewNavigator() *Navigator {
	return &Navigator{}
}

// ToLogin implements session.Navigator
func (n *Navigator) ToLogin() {
	n.mu.Lock()
	p := n.program
	n.mu.Unlock()
	if p != nil {
		p.Send(SessionExpiredMsg{})
	}
}

func (n *Navigator) attach(p *tea.Program) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.program = p
}

// Run starts the TUI. nav should be the navigator the client was built with.
func Run(apiClient *client.Client, nav *Navigator) error {
	app := New(apiClient)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	if nav != nil {
		nav.attach(p)
	}
	_, err := p.Run()
	return err
}
