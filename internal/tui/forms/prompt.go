// ABOUTME: Prompt template create and edit forms
// ABOUTME: Variables must be a JSON object; blank means none

package forms

import (
	"strings"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type promptValues struct {
	id          string
	key         string
	name        string
	description string
	template    string
	variables   string
}

func (v *promptValues) submit() tea.Msg {
	vars, err := client.ParseVariables(v.variables)
	if err != nil {
		return UnchangedMsg{Notice: err.Error()}
	}
	if v.id == "" {
		return PromptSubmittedMsg{Create: client.CreatePromptInput{
			Key:             strings.TrimSpace(v.key),
			Name:            strings.TrimSpace(v.name),
			Description:     strings.TrimSpace(v.description),
			TemplateContent: v.template,
			Variables:       vars,
		}}
	}
	return PromptSubmittedMsg{ID: v.id, Update: client.UpdatePromptInput{
		Name:            strings.TrimSpace(v.name),
		Description:     strings.TrimSpace(v.description),
		TemplateContent: v.template,
		Variables:       vars,
	}}
}

func (v *promptValues) fields() []huh.Field {
	return []huh.Field{
		huh.NewInput().
			Title("Name").
			Value(&v.name).
			Validate(validateRequired("Name")),
		huh.NewInput().
			Title("Description").
			Value(&v.description),
		huh.NewText().
			Title("Template").
			Lines(8).
			Value(&v.template).
			Validate(validateRequired("Template content")),
		huh.NewText().
			Title("Variables").
			Description(`JSON object, e.g. {"name": "string"}`).
			Lines(4).
			Value(&v.variables).
			Validate(validateVariables),
	}
}

// NewPromptCreate creates the form for a new prompt. Known keys are offered
// as a list; without them the key is typed in.
func NewPromptCreate(keys []client.PromptKeyDefinition) *Form {
	v := &promptValues{}

	var keyField huh.Field
	if len(keys) > 0 {
		options := make([]huh.Option[string], 0, len(keys))
		for _, k := range keys {
			label := k.Key
			if k.Description != "" {
				label += " - " + k.Description
			}
			options = append(options, huh.NewOption(label, k.Key))
		}
		v.key = keys[0].Key
		keyField = huh.NewSelect[string]().
			Title("Key").
			Options(options...).
			Value(&v.key)
	} else {
		keyField = huh.NewInput().
			Title("Key").
			Value(&v.key).
			Validate(validateRequired("Key"))
	}

	form := huh.NewForm(
		huh.NewGroup(append([]huh.Field{keyField}, v.fields()...)...).
			Title("New prompt"),
	)
	return newForm("New prompt", form, v.submit)
}

// NewPromptEdit creates the form for changing an existing prompt
func NewPromptEdit(p client.Prompt) *Form {
	v := &promptValues{
		id:          p.ID,
		key:         p.Key,
		name:        p.Name,
		description: p.Description,
		template:    p.TemplateContent,
		variables:   client.FormatVariables(p.Variables),
	}
	form := huh.NewForm(
		huh.NewGroup(v.fields()...).
			Title("Edit " + p.Key),
	)
	return newForm("Edit prompt", form, v.submit)
}
