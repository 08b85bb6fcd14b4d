// ABOUTME: Input forms as bubbletea models built on huh
// ABOUTME: Login, report status, rate-limit and prompt editing with local validation

package forms

import (
	"fmt"
	"strings"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// LoginSubmittedMsg carries the credentials entered on the login form
type LoginSubmittedMsg struct {
	Email    string
	Password string
}

// StatusSubmittedMsg asks for a report status change
type StatusSubmittedMsg struct {
	ReportID string
	Status   client.ReportStatus
	Notes    string
}

// RateLimitSubmittedMsg asks for a rate-limit change
type RateLimitSubmittedMsg struct {
	Key   string
	Value int
}

// PromptSubmittedMsg asks for a prompt create (ID empty) or update
type PromptSubmittedMsg struct {
	ID     string
	Create client.CreatePromptInput
	Update client.UpdatePromptInput
}

// UnchangedMsg is sent when a form was confirmed without changing anything
type UnchangedMsg struct {
	Notice string
}

// CancelledMsg is sent when the form is dismissed with esc
type CancelledMsg struct{}

// Form wraps a huh form and turns its completion into a message
type Form struct {
	title  string
	form   *huh.Form
	width  int
	done   bool
	result func() tea.Msg
}

func newForm(title string, form *huh.Form, result func() tea.Msg) *Form {
	return &Form{
		title:  title,
		form:   form.WithTheme(createTheme()).WithShowHelp(true),
		result: result,
	}
}

// Title returns the form heading
func (f *Form) Title() string {
	return f.title
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update forwards msg to the form and reports completion once
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return func() tea.Msg { return CancelledMsg{} }
	}
	if f.done {
		return nil
	}

	model, cmd := f.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		f.form = form
	}

	if f.form.State == huh.StateCompleted {
		f.done = true
		return f.result
	}
	return cmd
}

// SetWidth sets the form width
func (f *Form) SetWidth(width int) {
	f.width = width
	f.form = f.form.WithWidth(max(width, 40))
}

// View renders the form
func (f *Form) View() string {
	return f.form.View()
}

// Help returns the footer shortcuts for the form
func (f *Form) Help() []string {
	return []string{"Tab Next", "Enter Confirm", "Esc Cancel"}
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateRateLimit(s string) error {
	_, err := client.ParseRateLimitValue(strings.TrimSpace(s))
	return err
}

func validateVariables(s string) error {
	_, err := client.ParseVariables(s)
	return err
}
