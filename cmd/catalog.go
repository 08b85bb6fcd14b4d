// ABOUTME: Reference data commands for balungpisah-admin CLI
// ABOUTME: Category taxonomy and administrative regions

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/format"
	"github.com/spf13/cobra"
)

var (
	categoriesFlat bool
	regionSearch   string
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the report category taxonomy",
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runCategories(ctx, c, w, !categoriesFlat)
	}),
}

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Look up provinces and regencies",
}

var provincesCmd = &cobra.Command{
	Use:   "provinces",
	Short: "List provinces",
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runProvinces(ctx, c, w, regionSearch)
	}),
}

var regenciesCmd = &cobra.Command{
	Use:   "regencies",
	Short: "List regencies",
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runRegencies(ctx, c, w, regionSearch)
	}),
}

func init() {
	rootCmd.AddCommand(categoriesCmd, regionsCmd)
	regionsCmd.AddCommand(provincesCmd, regenciesCmd)

	categoriesCmd.Flags().BoolVar(&categoriesFlat, "flat", false, "List categories without nesting")
	regionsCmd.PersistentFlags().StringVar(&regionSearch, "search", "", "Filter by name")
}

func runCategories(ctx context.Context, c *client.Client, w io.Writer, tree bool) int {
	env, err := c.Categories(ctx, tree)
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(orEmpty(r.Value)))
		return exitOK
	}
	if len(r.Value) == 0 {
		fmt.Fprintln(w, "No categories found")
		return exitOK
	}
	fmt.Fprint(w, formatCategoryTree(r.Value, 0))
	return exitOK
}

// formatCategoryTree indents children two spaces per level
func formatCategoryTree(cats []client.Category, depth int) string {
	var sb strings.Builder
	for _, cat := range cats {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(fmt.Sprintf("%s (%s)\n", cat.Name, cat.Slug))
		sb.WriteString(formatCategoryTree(cat.Children, depth+1))
	}
	return sb.String()
}

func runProvinces(ctx context.Context, c *client.Client, w io.Writer, search string) int {
	env, err := c.Provinces(ctx, search)
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(orEmpty(r.Value)))
		return exitOK
	}
	if len(r.Value) == 0 {
		fmt.Fprintln(w, "No provinces found")
		return exitOK
	}
	rows := make([][]string, 0, len(r.Value))
	for _, p := range r.Value {
		rows = append(rows, []string{p.ID, p.Code, p.Name})
	}
	fmt.Fprintln(w, renderTable([]string{"ID", "Code", "Name"}, rows))
	return exitOK
}

func runRegencies(ctx context.Context, c *client.Client, w io.Writer, search string) int {
	env, err := c.Regencies(ctx, search)
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(orEmpty(r.Value)))
		return exitOK
	}
	if len(r.Value) == 0 {
		fmt.Fprintln(w, "No regencies found")
		return exitOK
	}
	rows := make([][]string, 0, len(r.Value))
	for _, rg := range r.Value {
		rows = append(rows, []string{rg.ID, rg.Code, rg.Name, format.OrPlaceholder(rg.ProvinceID)})
	}
	fmt.Fprintln(w, renderTable([]string{"ID", "Code", "Name", "Province"}, rows))
	return exitOK
}

// orEmpty keeps JSON output an array when the backend sent no data
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
