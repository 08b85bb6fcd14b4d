// ABOUTME: Dashboard overview assembled from four independent API calls
// ABOUTME: Fetches run concurrently; any transport failure fails the whole load

package overview

import (
	"context"
	"time"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"golang.org/x/sync/errgroup"
)

const (
	recentDays  = 7
	recentLimit = 5
	topN        = 10
)

// Source is the subset of the API client the overview needs
type Source interface {
	DashboardSummary(ctx context.Context) (*client.Envelope[client.DashboardSummary], error)
	RecentReports(ctx context.Context, days, limit int) (*client.Envelope[client.RecentReports], error)
	ReportsByCategory(ctx context.Context, f client.BreakdownFilter) (*client.Envelope[client.CategoryBreakdown], error)
	ReportsByTag(ctx context.Context, f client.BreakdownFilter) (*client.Envelope[client.TagBreakdown], error)
}

// StatusSlice is one segment of the status distribution
type StatusSlice struct {
	Name  string
	Value int
}

// Overview is everything the landing screen shows. A section whose call
// came back with success false is left empty; HasSummary tells a missing
// summary apart from an all-zero one.
type Overview struct {
	Summary    client.DashboardSummary
	HasSummary bool
	Recent     []client.DashboardReport
	Categories []client.CategoryReportSummary
	Tags       []client.TagReportSummary
	FetchedAt  time.Time
}

// Distribution splits the summary into pending, resolved and everything else
func (o *Overview) Distribution() []StatusSlice {
	if !o.HasSummary {
		return nil
	}
	return []StatusSlice{
		{Name: "Pending", Value: o.Summary.PendingCount},
		{Name: "Resolved", Value: o.Summary.ResolvedCount},
		{Name: "Others", Value: o.Summary.OtherCount()},
	}
}

// Load fetches all sections in parallel. Each goroutine writes only its own
// local, and the result is assembled after Wait.
func Load(ctx context.Context, src Source) (*Overview, error) {
	g, ctx := errgroup.WithContext(ctx)

	var (
		summary    *client.Envelope[client.DashboardSummary]
		recent     *client.Envelope[client.RecentReports]
		categories *client.Envelope[client.CategoryBreakdown]
		tags       *client.Envelope[client.TagBreakdown]
	)

	g.Go(func() error {
		var err error
		summary, err = src.DashboardSummary(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = src.RecentReports(ctx, recentDays, recentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = src.ReportsByCategory(ctx, client.BreakdownFilter{Page: 1, PageSize: topN})
		return err
	})
	g.Go(func() error {
		var err error
		tags, err = src.ReportsByTag(ctx, client.BreakdownFilter{Page: 1, PageSize: topN})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	o := &Overview{FetchedAt: time.Now()}
	if v, ok := summary.Value(); ok {
		o.Summary = v
		o.HasSummary = true
	}
	if v, ok := recent.Value(); ok {
		o.Recent = v.Reports
	}
	if v, ok := categories.Value(); ok {
		o.Categories = v.Categories
	}
	if v, ok := tags.Value(); ok {
		o.Tags = v.Tags
	}
	return o, nil
}
