// ABOUTME: Filter structs for list endpoints and their query-string encoding
// ABOUTME: Unset fields are omitted entirely rather than sent empty

package client

import (
	"net/url"
	"strconv"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// SortOrder is the direction of a sorted listing
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Bool returns a pointer to b for tri-state filter fields
func Bool(b bool) *bool {
	return &b
}

type query struct {
	v url.Values
}

func newQuery() *query {
	return &query{v: url.Values{}}
}

func (q *query) str(key, value string) *query {
	if value != "" {
		q.v.Set(key, value)
	}
	return q
}

func (q *query) int(key string, value int) *query {
	if value > 0 {
		q.v.Set(key, strconv.Itoa(value))
	}
	return q
}

func (q *query) bool(key string, value *bool) *query {
	if value != nil {
		q.v.Set(key, strconv.FormatBool(*value))
	}
	return q
}

func (q *query) paging(page, pageSize int) *query {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return q.int("page", page).int("page_size", pageSize)
}

func (q *query) values() url.Values {
	return q.v
}

// ReportFilter narrows the admin report listing
type ReportFilter struct {
	Page           int
	PageSize       int
	Status         ReportStatus
	FromDate       string
	ToDate         string
	Search         string
	UserID         string
	Platform       string
	HasAttachments *bool
	SortBy         string
	Sort           SortOrder
}

func (f ReportFilter) values() url.Values {
	return newQuery().
		paging(f.Page, f.PageSize).
		str("status", string(f.Status)).
		str("from_date", f.FromDate).
		str("to_date", f.ToDate).
		str("search", f.Search).
		str("user_id", f.UserID).
		str("platform", f.Platform).
		bool("has_attachments", f.HasAttachments).
		str("sort_by", f.SortBy).
		str("sort", string(f.Sort)).
		values()
}

// TicketFilter narrows the admin ticket listing
type TicketFilter struct {
	Page     int
	PageSize int
	Status   TicketStatus
	FromDate string
	ToDate   string
	Search   string
	UserID   string
	Platform string
	HasError *bool
	SortBy   string
	Sort     SortOrder
}

func (f TicketFilter) values() url.Values {
	return newQuery().
		paging(f.Page, f.PageSize).
		str("status", string(f.Status)).
		str("from_date", f.FromDate).
		str("to_date", f.ToDate).
		str("search", f.Search).
		str("user_id", f.UserID).
		str("platform", f.Platform).
		bool("has_error", f.HasError).
		str("sort_by", f.SortBy).
		str("sort", string(f.Sort)).
		values()
}

// ContributorFilter narrows the contributor listing
type ContributorFilter struct {
	Page           int
	PageSize       int
	SubmissionType string
	FromDate       string
	ToDate         string
	Search         string
	City           string
	Sort           SortOrder
}

func (f ContributorFilter) values() url.Values {
	return newQuery().
		paging(f.Page, f.PageSize).
		str("submission_type", f.SubmissionType).
		str("from_date", f.FromDate).
		str("to_date", f.ToDate).
		str("search", f.Search).
		str("city", f.City).
		str("sort", string(f.Sort)).
		values()
}

// ExpectationFilter narrows the expectation listing
type ExpectationFilter struct {
	Page     int
	PageSize int
	HasEmail *bool
	FromDate string
	ToDate   string
	Search   string
	Sort     SortOrder
}

func (f ExpectationFilter) values() url.Values {
	return newQuery().
		paging(f.Page, f.PageSize).
		bool("has_email", f.HasEmail).
		str("from_date", f.FromDate).
		str("to_date", f.ToDate).
		str("search", f.Search).
		str("sort", string(f.Sort)).
		values()
}

// PromptFilter narrows the prompt listing
type PromptFilter struct {
	Page     int
	PageSize int
	Search   string
	IsActive *bool
}

func (f PromptFilter) values() url.Values {
	return newQuery().
		paging(f.Page, f.PageSize).
		str("search", f.Search).
		bool("is_active", f.IsActive).
		values()
}

// BreakdownFilter narrows the dashboard breakdown endpoints. Only the fields
// relevant to the endpoint are sent.
type BreakdownFilter struct {
	Page       int
	PageSize   int
	Slug       string
	ProvinceID string
	RegencyID  string
	TagType    ReportTagType
}

// MapFilter narrows the map endpoint
type MapFilter struct {
	Status     ReportStatus
	ProvinceID string
	RegencyID  string
	Category   string
	Limit      int
}

func (f MapFilter) values() url.Values {
	return newQuery().
		str("province_id", f.ProvinceID).
		str("regency_id", f.RegencyID).
		str("category", f.Category).
		str("status", string(f.Status)).
		int("limit", f.Limit).
		values()
}
