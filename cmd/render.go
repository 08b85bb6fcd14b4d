// ABOUTME: Shared output helpers for human and JSON command output
// ABOUTME: Tables use lipgloss; failures map to the CLI exit codes

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/listing"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Exit codes
const (
	exitOK      = 0
	exitFailure = 1 // backend answered success:false
	exitError   = 2 // transport, validation or session problem
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderTable formats rows as a bordered table
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}

// formatJSON marshals v with the indentation every command uses
func formatJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data)
}

// pageJSON is the machine-readable shape of one listing page
type pageJSON[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func formatPageJSON[T any](v listing.View[T]) string {
	items := v.Items
	if items == nil {
		items = []T{}
	}
	return formatJSON(pageJSON[T]{
		Items:      items,
		Page:       v.Page,
		PageSize:   v.PageSize,
		Total:      v.Total,
		TotalPages: v.TotalPages,
	})
}

// pageFooter summarises pagination under a table
func pageFooter[T any](v listing.View[T]) string {
	return fmt.Sprintf("Page %d of %d (%d total)", v.Page, max(v.TotalPages, 1), v.Total)
}

// resolve prints the failure for anything but KindOK and returns the exit code
func resolve[T any](w io.Writer, env *client.Envelope[T], err error) (client.Result[T], int) {
	r := client.Resolve(env, err)
	switch r.Kind {
	case client.KindOK:
		return r, exitOK
	case client.KindApplicationError:
		fmt.Fprintf(w, "Error: %s\n", r.FailureMessage("request failed"))
		return r, exitFailure
	case client.KindUnauthorized:
		fmt.Fprintf(w, "Error: %v\n", r.Err)
		return r, exitError
	default:
		fmt.Fprintf(w, "Error: %v\n", r.Err)
		return r, exitError
	}
}

// loadPage runs a listing load and reports failures. ok is false when the
// caller should stop and return code.
func loadPage[F, T any](ctx context.Context, w io.Writer, l *listing.List[F, T], fetch listing.FetchFunc[F, T]) (v listing.View[T], code int, ok bool) {
	var last *client.Envelope[[]T]
	v, err := l.Load(ctx, func(ctx context.Context, req listing.Request[F]) (*client.Envelope[[]T], error) {
		env, err := fetch(ctx, req)
		last = env
		return env, err
	})

	if err != nil {
		_, code = resolve(w, last, err)
		return v, code, false
	}
	if last != nil && !last.Success {
		_, code = resolve(w, last, nil)
		return v, code, false
	}
	return v, exitOK, true
}

// printPage renders a loaded listing page in the selected format
func printPage[T any](w io.Writer, v listing.View[T], empty string, headers []string, row func(T) []string) {
	if IsJSONOutput() {
		fmt.Fprintln(w, formatPageJSON(v))
		return
	}
	if v.State == listing.Empty {
		fmt.Fprintln(w, empty)
		return
	}
	rows := make([][]string, 0, len(v.Items))
	for _, item := range v.Items {
		rows = append(rows, row(item))
	}
	fmt.Fprintln(w, renderTable(headers, rows))
	fmt.Fprintln(w, pageFooter(v))
}

// printFields renders label/value pairs for detail views
func printFields(w io.Writer, fields [][2]string) {
	width := 0
	for _, f := range fields {
		width = max(width, len(f[0]))
	}
	label := lipgloss.NewStyle().Bold(true).Width(width + 2)
	for _, f := range fields {
		fmt.Fprintln(w, label.Render(f[0]+":")+f[1])
	}
}
