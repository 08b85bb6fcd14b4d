// ABOUTME: Domain DTOs returned by the Balungpisah REST API
// ABOUTME: Shapes are decoded structurally and never validated semantically

package client

import (
	"encoding/json"
	"time"
)

// ReportStatus is the lifecycle state of a citizen report
type ReportStatus string

const (
	ReportDraft      ReportStatus = "draft"
	ReportPending    ReportStatus = "pending"
	ReportVerified   ReportStatus = "verified"
	ReportInProgress ReportStatus = "in_progress"
	ReportResolved   ReportStatus = "resolved"
	ReportRejected   ReportStatus = "rejected"
)

// ReportStatuses lists every status an admin can assign, in workflow order
var ReportStatuses = []ReportStatus{
	ReportDraft, ReportPending, ReportVerified, ReportInProgress, ReportResolved, ReportRejected,
}

// Label returns the display name for the status
func (s ReportStatus) Label() string {
	switch s {
	case ReportDraft:
		return "Draft"
	case ReportPending:
		return "Pending"
	case ReportVerified:
		return "Verified"
	case ReportInProgress:
		return "In Progress"
	case ReportResolved:
		return "Resolved"
	case ReportRejected:
		return "Rejected"
	default:
		return string(s)
	}
}

// Valid reports whether s is one of ReportStatuses
func (s ReportStatus) Valid() bool {
	for _, known := range ReportStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ReportSeverity grades a report category assignment
type ReportSeverity string

const (
	SeverityLow      ReportSeverity = "low"
	SeverityMedium   ReportSeverity = "medium"
	SeverityHigh     ReportSeverity = "high"
	SeverityCritical ReportSeverity = "critical"
)

// Label returns the display name for the severity
func (s ReportSeverity) Label() string {
	switch s {
	case SeverityLow:
		return "Low"
	case SeverityMedium:
		return "Medium"
	case SeverityHigh:
		return "High"
	case SeverityCritical:
		return "Critical"
	default:
		return string(s)
	}
}

// ReportTagType classifies the intent of a report
type ReportTagType string

const (
	TagReport       ReportTagType = "report"
	TagProposal     ReportTagType = "proposal"
	TagComplaint    ReportTagType = "complaint"
	TagInquiry      ReportTagType = "inquiry"
	TagAppreciation ReportTagType = "appreciation"
)

// Label returns the display name for the tag type
func (t ReportTagType) Label() string {
	switch t {
	case TagReport:
		return "Report"
	case TagProposal:
		return "Proposal"
	case TagComplaint:
		return "Complaint"
	case TagInquiry:
		return "Inquiry"
	case TagAppreciation:
		return "Appreciation"
	default:
		return string(t)
	}
}

// TicketStatus is the processing state of an intake ticket
type TicketStatus string

const (
	TicketSubmitted  TicketStatus = "submitted"
	TicketProcessing TicketStatus = "processing"
	TicketCompleted  TicketStatus = "completed"
	TicketFailed     TicketStatus = "failed"
)

// Label returns the display name for the ticket status
func (s TicketStatus) Label() string {
	switch s {
	case TicketSubmitted:
		return "Submitted"
	case TicketProcessing:
		return "Processing"
	case TicketCompleted:
		return "Completed"
	case TicketFailed:
		return "Failed"
	default:
		return string(s)
	}
}

// LoginResult is the data payload of a successful login
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
}

// User is the identity behind the current session
type User struct {
	AccountID  string   `json:"account_id"`
	Sub        string   `json:"sub"`
	Roles      []string `json:"roles"`
	SessionUID string   `json:"session_uid,omitempty"`
}

// DashboardSummary holds the headline report counts
type DashboardSummary struct {
	TotalReports     int `json:"total_reports"`
	PendingCount     int `json:"pending_count"`
	ResolvedCount    int `json:"resolved_count"`
	ReportsThisWeek  int `json:"reports_this_week"`
	ReportsThisMonth int `json:"reports_this_month"`
}

// OtherCount is the number of reports neither pending nor resolved
func (s DashboardSummary) OtherCount() int {
	n := s.TotalReports - s.PendingCount - s.ResolvedCount
	if n < 0 {
		return 0
	}
	return n
}

// ReportCategoryInfo is a category attached to a dashboard report
type ReportCategoryInfo struct {
	CategoryID string         `json:"category_id"`
	Name       string         `json:"name"`
	Slug       string         `json:"slug"`
	Severity   ReportSeverity `json:"severity"`
	Color      string         `json:"color,omitempty"`
	Icon       string         `json:"icon,omitempty"`
}

// ReportLocationInfo is the resolved location of a dashboard report
type ReportLocationInfo struct {
	RawInput     string   `json:"raw_input"`
	DisplayName  string   `json:"display_name,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lon          *float64 `json:"lon,omitempty"`
	ProvinceID   string   `json:"province_id,omitempty"`
	ProvinceName string   `json:"province_name,omitempty"`
	RegencyID    string   `json:"regency_id,omitempty"`
	RegencyName  string   `json:"regency_name,omitempty"`
	City         string   `json:"city,omitempty"`
	Road         string   `json:"road,omitempty"`
	State        string   `json:"state,omitempty"`
}

// DashboardReport is a report as shown on the overview and breakdown pages
type DashboardReport struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      ReportStatus         `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
	Categories  []ReportCategoryInfo `json:"categories"`
	Location    *ReportLocationInfo  `json:"location,omitempty"`
	Impact      string               `json:"impact,omitempty"`
	Timeline    string               `json:"timeline,omitempty"`
	TagType     ReportTagType        `json:"tag_type,omitempty"`
}

// RecentReports is the payload of /api/dashboard/recent
type RecentReports struct {
	Reports []DashboardReport `json:"reports"`
}

// CategoryReportSummary is a report count per category
type CategoryReportSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	ReportCount int    `json:"report_count"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// ProvinceReportSummary is a report count per province
type ProvinceReportSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	ReportCount int      `json:"report_count"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// RegencyReportSummary is a report count per regency
type RegencyReportSummary struct {
	ID          string   `json:"id"`
	ProvinceID  string   `json:"province_id"`
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	ReportCount int      `json:"report_count"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// TagReportSummary is a report count per tag type
type TagReportSummary struct {
	TagType     ReportTagType `json:"tag_type"`
	Label       string        `json:"label"`
	ReportCount int           `json:"report_count"`
}

// CategoryBreakdown is the payload of /api/dashboard/by-category
type CategoryBreakdown struct {
	Categories []CategoryReportSummary `json:"categories"`
	Reports    []DashboardReport       `json:"reports,omitempty"`
}

// LocationBreakdown is the payload of /api/dashboard/by-location
type LocationBreakdown struct {
	Provinces []ProvinceReportSummary `json:"provinces"`
	Regencies []RegencyReportSummary  `json:"regencies,omitempty"`
	Reports   []DashboardReport       `json:"reports,omitempty"`
}

// TagBreakdown is the payload of /api/dashboard/by-tag
type TagBreakdown struct {
	Tags    []TagReportSummary `json:"tags"`
	Reports []DashboardReport  `json:"reports,omitempty"`
}

// MapReportMarker is a geolocated report for the map view
type MapReportMarker struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Lat           float64      `json:"lat"`
	Lon           float64      `json:"lon"`
	Status        ReportStatus `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	CategorySlug  string       `json:"category_slug,omitempty"`
	CategoryColor string       `json:"category_color,omitempty"`
}

// MapData is the payload of /api/dashboard/map
type MapData struct {
	Markers []MapReportMarker `json:"markers"`
	Total   int               `json:"total,omitempty"`
}

// Category is a node of the report category taxonomy
type Category struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	DisplayOrder int        `json:"display_order"`
	ParentID     string     `json:"parent_id,omitempty"`
	Color        string     `json:"color,omitempty"`
	Description  string     `json:"description,omitempty"`
	Icon         string     `json:"icon,omitempty"`
	Children     []Category `json:"children,omitempty"`
}

// Province is an administrative region
type Province struct {
	ID   string   `json:"id"`
	Code string   `json:"code"`
	Name string   `json:"name"`
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
}

// Regency is an administrative region below a province
type Regency struct {
	ID         string   `json:"id"`
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	ProvinceID string   `json:"provinceId"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
}

// RateLimitConfig is an adjustable rate-limit setting
type RateLimitConfig struct {
	Key         string    `json:"key"`
	Value       int       `json:"value"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AdminReport is a row of the admin report listing
type AdminReport struct {
	ID              string       `json:"id"`
	ReferenceNumber string       `json:"reference_number,omitempty"`
	Title           string       `json:"title,omitempty"`
	Status          ReportStatus `json:"status"`
	Platform        string       `json:"platform,omitempty"`
	UserID          string       `json:"user_id,omitempty"`
	PrimaryCategory string       `json:"primary_category,omitempty"`
	CategoryCount   int          `json:"category_count"`
	AttachmentCount int          `json:"attachment_count"`
	LocationSummary string       `json:"location_summary,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// AdminReportCategory is a category assignment in the report detail
type AdminReportCategory struct {
	CategoryID   string         `json:"category_id"`
	CategoryName string         `json:"category_name"`
	CategorySlug string         `json:"category_slug"`
	Severity     ReportSeverity `json:"severity"`
}

// AdminReportLocation is the location block of the report detail
type AdminReportLocation struct {
	RawInput     string   `json:"raw_input"`
	DisplayName  string   `json:"display_name,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lon          *float64 `json:"lon,omitempty"`
	ProvinceName string   `json:"province_name,omitempty"`
	RegencyName  string   `json:"regency_name,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
}

// AdminReportAttachment is a file uploaded with a report
type AdminReportAttachment struct {
	FileID           string `json:"file_id"`
	OriginalFilename string `json:"original_filename"`
	ContentType      string `json:"content_type"`
	FileSize         int64  `json:"file_size"`
	URL              string `json:"url"`
}

// AdminReportDetail is the full record behind /api/admin/reports/{id}
type AdminReportDetail struct {
	ID              string                  `json:"id"`
	ReferenceNumber string                  `json:"reference_number,omitempty"`
	Title           string                  `json:"title,omitempty"`
	Description     string                  `json:"description,omitempty"`
	Status          ReportStatus            `json:"status"`
	Platform        string                  `json:"platform,omitempty"`
	UserID          string                  `json:"user_id,omitempty"`
	TicketID        string                  `json:"ticket_id,omitempty"`
	AdkThreadID     string                  `json:"adk_thread_id,omitempty"`
	ClusterID       string                  `json:"cluster_id,omitempty"`
	Impact          string                  `json:"impact,omitempty"`
	Timeline        string                  `json:"timeline,omitempty"`
	ResolutionNotes string                  `json:"resolution_notes,omitempty"`
	VerifiedAt      *time.Time              `json:"verified_at,omitempty"`
	VerifiedBy      string                  `json:"verified_by,omitempty"`
	ResolvedAt      *time.Time              `json:"resolved_at,omitempty"`
	ResolvedBy      string                  `json:"resolved_by,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
	Categories      []AdminReportCategory   `json:"categories"`
	Tags            []ReportTagType         `json:"tags"`
	Location        *AdminReportLocation    `json:"location,omitempty"`
	Attachments     []AdminReportAttachment `json:"attachments"`
}

// AdminTicket is a row of the admin ticket listing
type AdminTicket struct {
	ID              string       `json:"id"`
	ReferenceNumber string       `json:"reference_number"`
	UserID          string       `json:"user_id"`
	Platform        string       `json:"platform"`
	Status          TicketStatus `json:"status"`
	ConfidenceScore float64      `json:"confidence_score"`
	RetryCount      int          `json:"retry_count"`
	HasError        bool         `json:"has_error"`
	ReportID        string       `json:"report_id,omitempty"`
	SubmittedAt     time.Time    `json:"submitted_at"`
	ProcessedAt     *time.Time   `json:"processed_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// AdminTicketDetail is the full record behind /api/admin/tickets/{id}
type AdminTicketDetail struct {
	ID                string       `json:"id"`
	ReferenceNumber   string       `json:"reference_number"`
	AdkThreadID       string       `json:"adk_thread_id"`
	UserID            string       `json:"user_id"`
	Platform          string       `json:"platform"`
	Status            TicketStatus `json:"status"`
	ConfidenceScore   float64      `json:"confidence_score"`
	CompletenessScore *float64     `json:"completeness_score,omitempty"`
	RetryCount        int          `json:"retry_count"`
	ReportID          string       `json:"report_id,omitempty"`
	ErrorMessage      string       `json:"error_message,omitempty"`
	SubmittedAt       time.Time    `json:"submitted_at"`
	ProcessedAt       *time.Time   `json:"processed_at,omitempty"`
	LastAttemptAt     *time.Time   `json:"last_attempt_at,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// AdminContributor is a row of the contributor listing
type AdminContributor struct {
	ID               string    `json:"id"`
	SubmissionType   string    `json:"submission_type"`
	Name             string    `json:"name,omitempty"`
	Email            string    `json:"email,omitempty"`
	OrganizationName string    `json:"organization_name,omitempty"`
	City             string    `json:"city,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// AdminContributorDetail is the full contributor sign-up
type AdminContributorDetail struct {
	ID                string    `json:"id"`
	SubmissionType    string    `json:"submission_type"`
	Name              string    `json:"name,omitempty"`
	Email             string    `json:"email,omitempty"`
	Whatsapp          string    `json:"whatsapp,omitempty"`
	City              string    `json:"city,omitempty"`
	OrganizationName  string    `json:"organization_name,omitempty"`
	OrganizationType  string    `json:"organization_type,omitempty"`
	ContactName       string    `json:"contact_name,omitempty"`
	ContactEmail      string    `json:"contact_email,omitempty"`
	ContactWhatsapp   string    `json:"contact_whatsapp,omitempty"`
	ContactPosition   string    `json:"contact_position,omitempty"`
	Role              string    `json:"role,omitempty"`
	Skills            string    `json:"skills,omitempty"`
	Bio               string    `json:"bio,omitempty"`
	PortfolioURL      string    `json:"portfolio_url,omitempty"`
	ContributionOffer string    `json:"contribution_offer,omitempty"`
	Aspiration        string    `json:"aspiration,omitempty"`
	Agreed            bool      `json:"agreed"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// AdminExpectation is a citizen's stated expectation of the platform
type AdminExpectation struct {
	ID          string    `json:"id"`
	Name        string    `json:"name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Expectation string    `json:"expectation"`
	CreatedAt   time.Time `json:"created_at"`
}

// Prompt is an LLM prompt template managed by admins
type Prompt struct {
	ID              string          `json:"id"`
	Key             string          `json:"key"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	TemplateContent string          `json:"template_content"`
	Variables       json.RawMessage `json:"variables,omitempty"`
	IsActive        bool            `json:"is_active"`
	Version         int             `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// PromptKeyDefinition describes a prompt slot the backend knows about
type PromptKeyDefinition struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}

// CreatePromptInput is the body of a prompt creation
type CreatePromptInput struct {
	Key             string         `json:"key"`
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	TemplateContent string         `json:"template_content"`
	Variables       map[string]any `json:"variables,omitempty"`
}

// UpdatePromptInput is the body of a prompt update
type UpdatePromptInput struct {
	Name            string         `json:"name,omitempty"`
	Description     string         `json:"description,omitempty"`
	TemplateContent string         `json:"template_content,omitempty"`
	Variables       map[string]any `json:"variables,omitempty"`
}

// UpdateReportStatusInput is the body of a report status change
type UpdateReportStatusInput struct {
	Status          ReportStatus `json:"status"`
	ResolutionNotes string       `json:"resolution_notes,omitempty"`
}

// UpdateRateLimitInput is the body of a rate-limit change
type UpdateRateLimitInput struct {
	Value int `json:"value"`
}
