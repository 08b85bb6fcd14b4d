// ABOUTME: Ticket commands for balungpisah-admin CLI
// ABOUTME: Lists intake tickets with their extraction confidence

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/format"
	"github.com/balungpisah/balungpisah-admin/internal/listing"
	"github.com/spf13/cobra"
)

var (
	ticketFilter   client.TicketFilter
	ticketStatus   string
	ticketSort     string
	ticketHasError bool
)

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "Browse intake tickets",
}

var ticketsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tickets",
	Run: func(cmd *cobra.Command, args []string) {
		f := ticketFilter
		f.Status = client.TicketStatus(ticketStatus)
		f.Sort = client.SortOrder(ticketSort)
		f.HasError = triState(cmd, "has-error", ticketHasError)
		clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
			return runTickets(ctx, c, w, f)
		})(cmd, args)
	},
}

var ticketsShowCmd = &cobra.Command{
	Use:   "show TICKET_ID",
	Short: "Show a ticket including its processing error",
	Args:  cobra.ExactArgs(1),
	Run: clientRun(func(ctx context.Context, c *client.Client, w io.Writer, args []string) int {
		return runTicketShow(ctx, c, w, args[0])
	}),
}

func init() {
	rootCmd.AddCommand(ticketsCmd)
	ticketsCmd.AddCommand(ticketsListCmd, ticketsShowCmd)

	flags := ticketsListCmd.Flags()
	flags.IntVar(&ticketFilter.Page, "page", 1, "Page number")
	flags.IntVar(&ticketFilter.PageSize, "page-size", 20, "Tickets per page")
	flags.StringVar(&ticketStatus, "status", "", "Filter by status (submitted, processing, completed, failed)")
	flags.StringVar(&ticketFilter.Search, "search", "", "Search reference number")
	flags.StringVar(&ticketFilter.FromDate, "from", "", "Submitted on or after (YYYY-MM-DD)")
	flags.StringVar(&ticketFilter.ToDate, "to", "", "Submitted on or before (YYYY-MM-DD)")
	flags.StringVar(&ticketFilter.UserID, "user-id", "", "Filter by submitter")
	flags.StringVar(&ticketFilter.Platform, "platform", "", "Filter by platform")
	flags.BoolVar(&ticketHasError, "has-error", false, "Only tickets with (or, =false, without) errors")
	flags.StringVar(&ticketFilter.SortBy, "sort-by", "", "Sort field")
	flags.StringVar(&ticketSort, "sort", "", "Sort order (asc, desc)")
}

// runTickets lists one page of tickets and returns exit code
func runTickets(ctx context.Context, c *client.Client, w io.Writer, f client.TicketFilter) int {
	l := listing.New[client.TicketFilter, client.AdminTicket](f.PageSize, f)
	l.SetPage(f.Page)

	v, code, ok := loadPage(ctx, w, l, func(ctx context.Context, req listing.Request[client.TicketFilter]) (*client.Envelope[[]client.AdminTicket], error) {
		q := req.Filter
		q.Page, q.PageSize = req.Page, req.PageSize
		return c.Tickets(ctx, q)
	})
	if !ok {
		return code
	}

	printPage(w, v, "No tickets found",
		[]string{"ID", "Reference", "Platform", "Status", "Confidence", "Submitted", "Processed"},
		func(t client.AdminTicket) []string {
			return []string{
				t.ID,
				t.ReferenceNumber,
				format.OrPlaceholder(t.Platform),
				t.Status.Label(),
				format.Percent(t.ConfidenceScore),
				format.DateTime(t.SubmittedAt),
				format.OptionalDateTime(t.ProcessedAt),
			}
		})
	return exitOK
}

// runTicketShow prints a single ticket and returns exit code
func runTicketShow(ctx context.Context, c *client.Client, w io.Writer, id string) int {
	env, err := c.Ticket(ctx, id)
	r, code := resolve(w, env, err)
	if code != exitOK {
		return code
	}
	if !r.HasValue {
		fmt.Fprintln(w, "Ticket not found")
		return exitFailure
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatJSON(r.Value))
		return exitOK
	}

	t := r.Value
	completeness := format.Placeholder
	if t.CompletenessScore != nil {
		completeness = format.Percent(*t.CompletenessScore)
	}
	printFields(w, [][2]string{
		{"ID", t.ID},
		{"Reference", t.ReferenceNumber},
		{"Status", t.Status.Label()},
		{"Platform", format.OrPlaceholder(t.Platform)},
		{"User", format.OrPlaceholder(t.UserID)},
		{"Confidence", format.Percent(t.ConfidenceScore)},
		{"Completeness", completeness},
		{"Retries", strconv.Itoa(t.RetryCount)},
		{"Report", format.OrPlaceholder(t.ReportID)},
		{"Submitted", format.DateTime(t.SubmittedAt)},
		{"Processed", format.OptionalDateTime(t.ProcessedAt)},
		{"Last Attempt", format.OptionalDateTime(t.LastAttemptAt)},
		{"Error", format.OrPlaceholder(t.ErrorMessage)},
	})
	return exitOK
}
