// ABOUTME: Expectation commands for balungpisah-admin CLI
// ABOUTME: Lists what citizens expect from the platform

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/format"
	"github.com/balungpisah/balungpisah-admin/internal/listing"
	"github.com/spf13/cobra"
)

var (
	expectationFilter   client.ExpectationFilter
	expectationSort     string
	expectationHasEmail bool
)

var expectationsCmd = &cobra.Command{
	Use:   "expectations",
	Short: "Browse citizen expectations",
}

var expectationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expectations",
	Run: func(cmd *cobra.Command, args []string) {
		f := expectationFilter
		f.Sort = client.SortOrder(expectationSort)
		f.HasEmail = triState(cmd, "has-email", expectationHasEmail)
		clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
			return runExpectations(ctx, c, w, f)
		})(cmd, args)
	},
}

var expectationsShowCmd = &cobra.Command{
	Use:   "show EXPECTATION_ID",
	Short: "Show an expectation",
	Args:  cobra.ExactArgs(1),
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runExpectationShow(ctx, c, w, args[0])
	}),
}

func init() {
	rootCmd.AddCommand(expectationsCmd)
	expectationsCmd.AddCommand(expectationsListCmd, expectationsShowCmd)

	flags := expectationsListCmd.Flags()
	flags.IntVar(&expectationFilter.Page, "page", 1, "Page number")
	flags.IntVar(&expectationFilter.PageSize, "page-size", 20, "Expectations per page")
	flags.BoolVar(&expectationHasEmail, "has-email", false, "Only entries with (or, =false, without) an email")
	flags.StringVar(&expectationFilter.Search, "search", "", "Search expectation text")
	flags.StringVar(&expectationFilter.FromDate, "from", "", "Submitted on or after (YYYY-MM-DD)")
	flags.StringVar(&expectationFilter.ToDate, "to", "", "Submitted on or before (YYYY-MM-DD)")
	flags.StringVar(&expectationSort, "sort", "", "Sort order (asc, desc)")
}

// runExpectations lists one page of expectations and returns exit code
func runExpectations(ctx context.Context, c *client.Client, w io.Writer, f client.ExpectationFilter) int {
	l := listing.New[client.ExpectationFilter, client.AdminExpectation](f.PageSize, f)
	l.SetPage(f.Page)

	v, code, ok := loadPage(ctx, w, l, func(ctx context.Context, req listing.Request[client.ExpectationFilter]) (*client.Envelope[[]client.AdminExpectation], error) {
		q := req.Filter
		q.Page, q.PageSize = req.Page, req.PageSize
		return c.Expectations(ctx, q)
	})
	if !ok {
		return code
	}

	printPage(w, v, "No expectations found",
		[]string{"ID", "Name", "Email", "Expectation", "Submitted"},
		func(e client.AdminExpectation) []string {
			return []string{
				e.ID,
				format.OrPlaceholder(e.Name),
				format.OrPlaceholder(e.Email),
				format.Truncate(e.Expectation, 60),
				format.Date(e.CreatedAt),
			}
		})
	return exitOK
}

// runExpectationShow prints a single expectation and returns exit code
func runExpectationShow(ctx context.Context, c *client.Client, w io.Writer, id string) int {
	env, err := c.Expectation(ctx, id)
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if !r.HasValue {
		fmt.Fprintln(w, "Expectation not found")
		return exitFailure
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(r.Value))
		return exitOK
	}
	e := r.Value
	printFields(w, [][2]string{
		{"ID", e.ID},
		{"Name", format.OrPlaceholder(e.Name)},
		{"Email", format.OrPlaceholder(e.Email)},
		{"Submitted", format.DateTime(e.CreatedAt)},
	})
	fmt.Fprintf(w, "\n%s\n", e.Expectation)
	return exitOK
}
