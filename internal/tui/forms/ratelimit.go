// ABOUTME: Rate-limit value form
// ABOUTME: Accepts non-negative integers only and skips unchanged values

package forms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type rateLimitValues struct {
	key     string
	current int
	value   string
}

func (v *rateLimitValues) submit() tea.Msg {
	value, err := client.ParseRateLimitValue(strings.TrimSpace(v.value))
	if err != nil {
		return UnchangedMsg{Notice: err.Error()}
	}
	if value == v.current {
		return UnchangedMsg{Notice: fmt.Sprintf("%s is already %d", v.key, value)}
	}
	return RateLimitSubmittedMsg{Key: v.key, Value: value}
}

// NewRateLimit creates the edit form for one rate-limit setting
func NewRateLimit(cfg client.RateLimitConfig) *Form {
	v := &rateLimitValues{key: cfg.Key, current: cfg.Value, value: strconv.Itoa(cfg.Value)}

	description := cfg.Description
	if description == "" {
		description = "Non-negative integer"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Value").
				Description("Type a number and press Enter to save").
				CharLimit(9).
				Value(&v.value).
				Validate(validateRateLimit),
		).Title(cfg.Key).
			Description(description),
	)
	return newForm("Edit "+cfg.Key, form, v.submit)
}
