// ABOUTME: Sign-in form collecting email and password
// ABOUTME: Both fields are required before the form completes

package forms

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type loginValues struct {
	email    string
	password string
}

func (v *loginValues) submit() tea.Msg {
	return LoginSubmittedMsg{Email: strings.TrimSpace(v.email), Password: v.password}
}

// NewLogin creates the sign-in form, prefilled with email when known
func NewLogin(email string) *Form {
	v := &loginValues{email: email}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("admin@example.com").
				Value(&v.email).
				Validate(validateRequired("Email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&v.password).
				Validate(validateRequired("Password")),
		).Title("Sign in").
			Description("Use your Balungpisah admin account"),
	)
	return newForm("Sign in", form, v.submit)
}
