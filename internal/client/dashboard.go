// ABOUTME: Dashboard aggregate endpoints
// ABOUTME: Summary counts, recent reports, breakdowns and map markers

package client

import (
	"context"
	"net/url"
	"strconv"
)

// DashboardSummary returns the headline report counts
func (c *Client) DashboardSummary(ctx context.Context) (*Envelope[DashboardSummary], error) {
	return do[DashboardSummary](ctx, c, get("/api/dashboard/summary", "/api/dashboard/summary", nil))
}

// RecentReports returns up to limit reports submitted in the last days days.
// Zero values fall back to 7 days and 10 reports.
func (c *Client) RecentReports(ctx context.Context, days, limit int) (*Envelope[RecentReports], error) {
	if days < 1 {
		days = 7
	}
	if limit < 1 {
		limit = 10
	}
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))
	q.Set("limit", strconv.Itoa(limit))
	return do[RecentReports](ctx, c, get("/api/dashboard/recent", "/api/dashboard/recent", q))
}

// ReportsByCategory returns report counts per category, optionally the
// reports of the category named by f.Slug
func (c *Client) ReportsByCategory(ctx context.Context, f BreakdownFilter) (*Envelope[CategoryBreakdown], error) {
	q := newQuery().str("slug", f.Slug).paging(f.Page, f.PageSize).values()
	return do[CategoryBreakdown](ctx, c, get("/api/dashboard/by-category", "/api/dashboard/by-category", q))
}

// ReportsByLocation returns report counts per province
func (c *Client) ReportsByLocation(ctx context.Context, f BreakdownFilter) (*Envelope[LocationBreakdown], error) {
	q := newQuery().
		str("province_id", f.ProvinceID).
		str("regency_id", f.RegencyID).
		paging(f.Page, f.PageSize).
		values()
	return do[LocationBreakdown](ctx, c, get("/api/dashboard/by-location", "/api/dashboard/by-location", q))
}

// ReportsByTag returns report counts per tag type
func (c *Client) ReportsByTag(ctx context.Context, f BreakdownFilter) (*Envelope[TagBreakdown], error) {
	q := newQuery().str("tag_type", string(f.TagType)).paging(f.Page, f.PageSize).values()
	return do[TagBreakdown](ctx, c, get("/api/dashboard/by-tag", "/api/dashboard/by-tag", q))
}

// MapData returns filtered geolocated reports
func (c *Client) MapData(ctx context.Context, f MapFilter) (*Envelope[MapData], error) {
	return do[MapData](ctx, c, get("/api/dashboard/map", "/api/dashboard/map", f.values()))
}

// MapMarkers returns every geolocated report marker
func (c *Client) MapMarkers(ctx context.Context) (*Envelope[[]MapReportMarker], error) {
	return do[[]MapReportMarker](ctx, c, get("/api/dashboard/map-data", "/api/dashboard/map-data", nil))
}

// DashboardReports returns a page of dashboard reports. This endpoint
// reports its total as meta.total_items, which Meta folds into Total.
func (c *Client) DashboardReports(ctx context.Context, page, pageSize int) (*Envelope[[]DashboardReport], error) {
	q := newQuery().paging(page, pageSize).values()
	return do[[]DashboardReport](ctx, c, get("/api/dashboard/reports", "/api/dashboard/reports", q))
}
