// ABOUTME: Prompt template administration endpoints
// ABOUTME: Variables are validated as a JSON object before any request is sent

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// InvalidVariablesMessage is shown when prompt variables are not a JSON object
const InvalidVariablesMessage = "Invalid JSON in variables field"

// ParseVariables parses the free-text variables field of a prompt form.
// Blank text means no variables.
func ParseVariables(text string) (map[string]any, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var vars map[string]any
	if err := json.Unmarshal([]byte(text), &vars); err != nil || vars == nil {
		return nil, &ValidationError{Field: "variables", Message: InvalidVariablesMessage}
	}
	return vars, nil
}

// FormatVariables renders stored variables for editing
func FormatVariables(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var out bytes.Buffer
	if err := json.Indent(&out, trimmed, "", "  "); err != nil {
		return string(trimmed)
	}
	return out.String()
}

// Prompts lists prompt templates matching f
func (c *Client) Prompts(ctx context.Context, f PromptFilter) (*Envelope[[]Prompt], error) {
	return do[[]Prompt](ctx, c, get("/api/admin/prompts", "/api/admin/prompts", f.values()))
}

// PromptKeys returns the prompt slots the backend recognises
func (c *Client) PromptKeys(ctx context.Context) (*Envelope[[]PromptKeyDefinition], error) {
	return do[[]PromptKeyDefinition](ctx, c, get("/api/admin/prompts/keys", "/api/admin/prompts/keys", nil))
}

// Prompt returns a single prompt template
func (c *Client) Prompt(ctx context.Context, id string) (*Envelope[Prompt], error) {
	return do[Prompt](ctx, c, get("/api/admin/prompts/{id}", pathID("/api/admin/prompts", id), nil))
}

// CreatePrompt adds a new prompt template. Key, name and content are required.
func (c *Client) CreatePrompt(ctx context.Context, in CreatePromptInput) (*Envelope[Prompt], error) {
	switch {
	case strings.TrimSpace(in.Key) == "":
		return nil, &ValidationError{Field: "key", Message: "Prompt key is required"}
	case strings.TrimSpace(in.Name) == "":
		return nil, &ValidationError{Field: "name", Message: "Prompt name is required"}
	case strings.TrimSpace(in.TemplateContent) == "":
		return nil, &ValidationError{Field: "template_content", Message: "Template content is required"}
	}
	return do[Prompt](ctx, c, send(http.MethodPost, "/api/admin/prompts", "/api/admin/prompts", in))
}

// UpdatePrompt changes an existing prompt template
func (c *Client) UpdatePrompt(ctx context.Context, id string, in UpdatePromptInput) (*Envelope[Prompt], error) {
	return do[Prompt](ctx, c, send(http.MethodPut, "/api/admin/prompts/{id}", pathID("/api/admin/prompts", id), in))
}

// DeletePrompt soft-deletes a prompt template
func (c *Client) DeletePrompt(ctx context.Context, id string) (*Envelope[json.RawMessage], error) {
	return do[json.RawMessage](ctx, c, send(http.MethodDelete, "/api/admin/prompts/{id}", pathID("/api/admin/prompts", id), nil))
}

// RestorePrompt undoes a soft delete
func (c *Client) RestorePrompt(ctx context.Context, id string) (*Envelope[Prompt], error) {
	return do[Prompt](ctx, c, send(http.MethodPost, "/api/admin/prompts/{id}/restore", pathID("/api/admin/prompts", id)+"/restore", nil))
}
