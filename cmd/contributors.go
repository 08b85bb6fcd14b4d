// ABOUTME: Contributor commands for balungpisah-admin CLI
// ABOUTME: Lists and inspects volunteer and organisation sign-ups

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
	contributorFilter client.ContributorFilter
	contributorSort   string
)

var contributorsCmd = &cobra.Command{
	Use:   "contributors",
	Short: "Browse contributor sign-ups",
}

var contributorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contributors",
	Run: func(cmd *cobra.Command, args []string) {
		f := contributorFilter
		f.Sort = client.SortOrder(contributorSort)
		clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
			return runContributors(ctx, c, w, f)
		})(cmd, args)
	},
}

var contributorsShowCmd = &cobra.Command{
	Use:   "show CONTRIBUTOR_ID",
	Short: "Show a contributor sign-up",
	Args:  cobra.ExactArgs(1),
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runContributorShow(ctx, c, w, args[0])
	}),
}

func init() {
	rootCmd.AddCommand(contributorsCmd)
	contributorsCmd.AddCommand(contributorsListCmd, contributorsShowCmd)

	flags := contributorsListCmd.Flags()
	flags.IntVar(&contributorFilter.Page, "page", 1, "Page number")
	flags.IntVar(&contributorFilter.PageSize, "page-size", 20, "Contributors per page")
	flags.StringVar(&contributorFilter.SubmissionType, "type", "", "Filter by submission type (personal, organization)")
	flags.StringVar(&contributorFilter.Search, "search", "", "Search name, email or organization")
	flags.StringVar(&contributorFilter.City, "city", "", "Filter by city")
	flags.StringVar(&contributorFilter.FromDate, "from", "", "Signed up on or after (YYYY-MM-DD)")
	flags.StringVar(&contributorFilter.ToDate, "to", "", "Signed up on or before (YYYY-MM-DD)")
	flags.StringVar(&contributorSort, "sort", "", "Sort order (asc, desc)")
}

// runContributors lists one page of contributors and returns exit code
func runContributors(ctx context.Context, c *client.Client, w io.Writer, f client.ContributorFilter) int {
	l := listing.New[client.ContributorFilter, client.AdminContributor](f.PageSize, f)
	l.SetPage(f.Page)

	v, code, ok := loadPage(ctx, w, l, func(ctx context.Context, req listing.Request[client.ContributorFilter]) (*client.Envelope[[]client.AdminContributor], error) {
		q := req.Filter
		q.Page, q.PageSize = req.Page, req.PageSize
		return c.Contributors(ctx, q)
	})
	if !ok {
		return code
	}

	printPage(w, v, "No contributors found",
		[]string{"ID", "Type", "Name", "Organization", "Email", "City", "Joined"},
		func(ct client.AdminContributor) []string {
			return []string{
				ct.ID,
				ct.SubmissionType,
				format.OrPlaceholder(ct.Name),
				format.OrPlaceholder(ct.OrganizationName),
				format.OrPlaceholder(ct.Email),
				format.OrPlaceholder(ct.City),
				format.Date(ct.CreatedAt),
			}
		})
	return exitOK
}

// runContributorShow prints a single contributor and returns exit code
func runContributorShow(ctx context.Context, c *client.Client, w io.Writer, id string) int {
	env, err := c.Contributor(ctx, id)
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if !r.HasValue {
		fmt.Fprintln(w, "Contributor not found")
		return exitFailure
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(r.Value))
		return exitOK
	}

	ct := r.Value
	fields := [][2]string{
		{"ID", ct.ID},
		{"Type", ct.SubmissionType},
		{"Joined", format.DateTime(ct.CreatedAt)},
	}
	// Personal and organisation sign-ups fill different fields
	for _, f := range [][2]string{
		{"Name", ct.Name},
		{"Email", ct.Email},
		{"WhatsApp", ct.Whatsapp},
		{"City", ct.City},
		{"Organization", ct.OrganizationName},
		{"Org Type", ct.OrganizationType},
		{"Contact", ct.ContactName},
		{"Contact Email", ct.ContactEmail},
		{"Contact WhatsApp", ct.ContactWhatsapp},
		{"Contact Position", ct.ContactPosition},
		{"Role", ct.Role},
		{"Skills", ct.Skills},
		{"Portfolio", ct.PortfolioURL},
		{"Offer", ct.ContributionOffer},
		{"Aspiration", ct.Aspiration},
		{"Bio", ct.Bio},
	} {
		if f[1] != "" {
			fields = append(fields, f)
		}
	}
	printFields(w, fields)
	return exitOK
}
