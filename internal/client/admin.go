// ABOUTME: Admin listing and detail endpoints for reports, tickets, contributors and expectations
// ABOUTME: Listings accept optional filters; unset fields never reach the query string

package client

import (
	"context"
	"fmt"
	"net/http"
)

// Reports lists reports matching f
func (c *Client) Reports(ctx context.Context, f ReportFilter) (*Envelope[[]AdminReport], error) {
	return do[[]AdminReport](ctx, c, get("/api/admin/reports", "/api/admin/reports", f.values()))
}

// Report returns a single report with categories, location and attachments
func (c *Client) Report(ctx context.Context, id string) (*Envelope[AdminReportDetail], error) {
	return do[AdminReportDetail](ctx, c, get("/api/admin/reports/{id}", pathID("/api/admin/reports", id), nil))
}

// UpdateReportStatus moves a report to status, recording optional notes.
// Transition legality is left to the backend.
func (c *Client) UpdateReportStatus(ctx context.Context, id string, status ReportStatus, notes string) (*Envelope[AdminReportDetail], error) {
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown report status %q", status)}
	}
	body := UpdateReportStatusInput{Status: status, ResolutionNotes: notes}
	return do[AdminReportDetail](ctx, c, send(http.MethodPatch, "/api/reports/{id}/status",
		pathID("/api/reports", id)+"/status", body))
}

// Tickets lists intake tickets matching f
func (c *Client) Tickets(ctx context.Context, f TicketFilter) (*Envelope[[]AdminTicket], error) {
	return do[[]AdminTicket](ctx, c, get("/api/admin/tickets", "/api/admin/tickets", f.values()))
}

// Ticket returns a single ticket including its processing error, if any
func (c *Client) Ticket(ctx context.Context, id string) (*Envelope[AdminTicketDetail], error) {
	return do[AdminTicketDetail](ctx, c, get("/api/admin/tickets/{id}", pathID("/api/admin/tickets", id), nil))
}

// Contributors lists contributor sign-ups matching f
func (c *Client) Contributors(ctx context.Context, f ContributorFilter) (*Envelope[[]AdminContributor], error) {
	return do[[]AdminContributor](ctx, c, get("/api/admin/contributors", "/api/admin/contributors", f.values()))
}

// Contributor returns a single contributor sign-up
func (c *Client) Contributor(ctx context.Context, id string) (*Envelope[AdminContributorDetail], error) {
	return do[AdminContributorDetail](ctx, c, get("/api/admin/contributors/{id}", pathID("/api/admin/contributors", id), nil))
}

// Expectations lists citizen expectations matching f
func (c *Client) Expectations(ctx context.Context, f ExpectationFilter) (*Envelope[[]AdminExpectation], error) {
	return do[[]AdminExpectation](ctx, c, get("/api/admin/expectations", "/api/admin/expectations", f.values()))
}

// Expectation returns a single expectation
func (c *Client) Expectation(ctx context.Context, id string) (*Envelope[AdminExpectation], error) {
	return do[AdminExpectation](ctx, c, get("/api/admin/expectations/{id}", pathID("/api/admin/expectations", id), nil))
}
