// ABOUTME: Tests for individual endpoint wrappers
// ABOUTME: Covers paths, query encoding, request bodies and decoded payloads

package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/balungpisah/balungpisah-admin/internal/session"
)

type capturedRequest struct {
	method string
	path   string
	query  url.Values
	body   []byte
}

// newCaptureServer answers every request with body and records what it saw
func newCaptureServer(t *testing.T, body string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var seen []capturedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		seen = append(seen, capturedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			body:   data,
		})
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &seen
}

func TestLogin_StoresToken(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true,"data":{"access_token":"jwt-abc","token_type":"bearer"}}`)
	store := session.NewMemoryStore("")
	c := New(server.URL, WithStore(store))

	env, err := c.Login(context.Background(), "admin@balungpisah.id", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !env.Success {
		t.Error("expected success")
	}
	if token, _ := store.Token(); token != "jwt-abc" {
		t.Errorf("expected stored token jwt-abc, got %q", token)
	}

	req := (*seen)[0]
	if req.method != http.MethodPost || req.path != "/api/auth/login" {
		t.Errorf("expected POST /api/auth/login, got %s %s", req.method, req.path)
	}
	var body map[string]string
	if err := json.Unmarshal(req.body, &body); err != nil {
		t.Fatalf("invalid request body: %v", err)
	}
	if body["email"] != "admin@balungpisah.id" || body["password"] != "secret" {
		t.Errorf("unexpected login body %v", body)
	}
}

func TestLogin_FailureLeavesStoreEmpty(t *testing.T) {
	server, _ := newCaptureServer(t, `{"success":false,"message":"Invalid credentials"}`)
	store := session.NewMemoryStore("")
	c := New(server.URL, WithStore(store))

	env, err := c.Login(context.Background(), "a@b.c", "wrong")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Message != "Invalid credentials" {
		t.Errorf("expected message, got %q", env.Message)
	}
	if c.LoggedIn() {
		t.Error("expected no session after failed login")
	}
}

func TestLogin_RequiresCredentials(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true}`)
	c := New(server.URL)
	_, err := c.Login(context.Background(), "", "")
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(*seen) != 0 {
		t.Error("expected no request to be sent")
	}
}

func TestLogout_ClearsStore(t *testing.T) {
	store := session.NewMemoryStore("tok")
	c := New("http://unused.invalid", WithStore(store))
	if err := c.Logout(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.LoggedIn() {
		t.Error("expected logged out")
	}
}

func TestExpectations_OmitsUnsetHasEmail(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true,"data":[],"meta":{"total":0,"total_pages":1}}`)
	c := New(server.URL)

	_, err := c.Expectations(context.Background(), ExpectationFilter{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := (*seen)[0].query
	if _, ok := q["has_email"]; ok {
		t.Errorf("expected no has_email param, got %v", q["has_email"])
	}
	if q["page"][0] != "1" || q["page_size"][0] != "20" {
		t.Errorf("unexpected paging %v", q)
	}
	if len(q) != 2 {
		t.Errorf("expected only paging params, got %v", q)
	}
}

func TestExpectations_SendsExplicitFalse(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true,"data":[]}`)
	c := New(server.URL)

	_, err := c.Expectations(context.Background(), ExpectationFilter{HasEmail: Bool(false)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := (*seen)[0].query["has_email"]; len(got) != 1 || got[0] != "false" {
		t.Errorf("expected has_email=false, got %v", got)
	}
}

func TestReports_QueryEncoding(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true,"data":[]}`)
	c := New(server.URL)

	_, err := c.Reports(context.Background(), ReportFilter{
		Status:         ReportInProgress,
		Search:         "banjir",
		FromDate:       "2026-01-01",
		HasAttachments: Bool(true),
		SortBy:         "created_at",
		Sort:           SortDesc,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"page":            "1",
		"page_size":       "10",
		"status":          "in_progress",
		"search":          "banjir",
		"from_date":       "2026-01-01",
		"has_attachments": "true",
		"sort_by":         "created_at",
		"sort":            "desc",
	}
	q := (*seen)[0].query
	if len(q) != len(want) {
		t.Errorf("expected %d params, got %v", len(want), q)
	}
	for k, v := range want {
		if got := q[k]; len(got) != 1 || got[0] != v {
			t.Errorf("expected %s=%s, got %v", k, v, got)
		}
	}
}

func TestTickets_Decode(t *testing.T) {
	server, seen := newCaptureServer(t, `{
		"success": true,
		"data": [{"id":"t1","reference_number":"TCK-1","status":"failed","confidence_score":0.73,"has_error":true,"retry_count":2,"submitted_at":"2026-03-01T10:00:00Z","created_at":"2026-03-01T10:00:00Z"}],
		"meta": {"total": 41, "page": 1, "page_size": 20, "total_pages": 3}
	}`)
	c := New(server.URL)

	env, err := c.Tickets(context.Background(), TicketFilter{PageSize: 20, HasError: Bool(true)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tickets, ok := env.Value()
	if !ok || len(tickets) != 1 {
		t.Fatalf("expected 1 ticket, got %v", tickets)
	}
	if tickets[0].ConfidenceScore != 0.73 {
		t.Errorf("expected confidence 0.73, got %v", tickets[0].ConfidenceScore)
	}
	if tickets[0].ProcessedAt != nil {
		t.Error("expected nil processed_at")
	}
	if env.Meta.Total != 41 || env.Meta.TotalPages != 3 {
		t.Errorf("unexpected meta %+v", env.Meta)
	}
	if got := (*seen)[0].query["has_error"]; len(got) != 1 || got[0] != "true" {
		t.Errorf("expected has_error=true, got %v", got)
	}
}

func TestDashboardReports_TotalItems(t *testing.T) {
	server, _ := newCaptureServer(t, `{"success":true,"data":[],"meta":{"total_items":57,"page":2,"page_size":10,"total_pages":6}}`)
	c := New(server.URL)

	env, err := c.DashboardReports(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.Meta.Total != 57 {
		t.Errorf("expected total_items folded into Total 57, got %d", env.Meta.Total)
	}
}

func TestUpdateReportStatus(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true,"data":{"id":"r1","status":"resolved"}}`)
	c := New(server.URL)

	env, err := c.UpdateReportStatus(context.Background(), "r1", ReportResolved, "fixed by dinas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail, _ := env.Value(); detail.Status != ReportResolved {
		t.Errorf("expected resolved, got %s", detail.Status)
	}
	req := (*seen)[0]
	if req.method != http.MethodPatch || req.path != "/api/reports/r1/status" {
		t.Errorf("expected PATCH /api/reports/r1/status, got %s %s", req.method, req.path)
	}
	var body map[string]string
	json.Unmarshal(req.body, &body)
	if body["status"] != "resolved" || body["resolution_notes"] != "fixed by dinas" {
		t.Errorf("unexpected body %s", req.body)
	}
}

func TestUpdateReportStatus_RejectsUnknownStatus(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true}`)
	c := New(server.URL)

	_, err := c.UpdateReportStatus(context.Background(), "r1", ReportStatus("archived"), "")
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(*seen) != 0 {
		t.Error("expected no request to be sent")
	}
}

func TestUpdateRateLimit(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true,"data":{"key":"reports_per_day","value":25}}`)
	c := New(server.URL)

	if _, err := c.UpdateRateLimit(context.Background(), "reports_per_day", 25); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := (*seen)[0]
	if req.method != http.MethodPut || req.path != "/api/admin/rate-limits/reports_per_day" {
		t.Errorf("expected PUT /api/admin/rate-limits/reports_per_day, got %s %s", req.method, req.path)
	}
	if string(req.body) != `{"value":25}` {
		t.Errorf("unexpected body %s", req.body)
	}
}

func TestUpdateRateLimit_RejectsNegative(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true}`)
	c := New(server.URL)

	_, err := c.UpdateRateLimit(context.Background(), "k", -1)
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(*seen) != 0 {
		t.Error("expected no request to be sent")
	}
}

func TestParseRateLimitValue(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"120", 120, false},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"1.5", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseRateLimitValue(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRateLimitValue(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseRateLimitValue(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestCategories_SendsTree(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true,"data":[{"id":"c1","name":"Infrastruktur","slug":"infrastruktur","display_order":1,"children":[{"id":"c2","name":"Jalan","slug":"jalan","display_order":1}]}]}`)
	c := New(server.URL)

	env, err := c.Categories(context.Background(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cats, _ := env.Value()
	if len(cats) != 1 || len(cats[0].Children) != 1 {
		t.Errorf("expected nested categories, got %+v", cats)
	}
	if got := (*seen)[0].query["tree"]; len(got) != 1 || got[0] != "true" {
		t.Errorf("expected tree=true, got %v", got)
	}
}

func TestRegions_OmitEmptySearch(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true,"data":[]}`)
	c := New(server.URL)

	if _, err := c.Provinces(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Regencies(context.Background(), "bandung"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len((*seen)[0].query) != 0 {
		t.Errorf("expected no params, got %v", (*seen)[0].query)
	}
	if (*seen)[1].path != "/api/regions/regencies" || (*seen)[1].query.Get("search") != "bandung" {
		t.Errorf("unexpected regencies request %+v", (*seen)[1])
	}
}

func TestBreakdowns(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true,"data":{"categories":[{"id":"c1","name":"Jalan","slug":"jalan","report_count":12}],"provinces":[{"id":"p1","name":"Jawa Barat","code":"32","report_count":40}],"tags":[{"tag_type":"complaint","label":"Complaint","report_count":7}]}}`)
	c := New(server.URL)
	ctx := context.Background()

	byCat, err := c.ReportsByCategory(ctx, BreakdownFilter{Slug: "jalan"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cats := byCat.Data.Categories; len(cats) != 1 || cats[0].ReportCount != 12 {
		t.Errorf("unexpected categories %+v", cats)
	}
	byLoc, err := c.ReportsByLocation(ctx, BreakdownFilter{ProvinceID: "p1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provs := byLoc.Data.Provinces; len(provs) != 1 || provs[0].Name != "Jawa Barat" {
		t.Errorf("unexpected provinces %+v", provs)
	}
	byTag, err := c.ReportsByTag(ctx, BreakdownFilter{TagType: TagComplaint})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tags := byTag.Data.Tags; len(tags) != 1 || tags[0].TagType != TagComplaint {
		t.Errorf("unexpected tags %+v", tags)
	}

	if (*seen)[0].query.Get("slug") != "jalan" {
		t.Errorf("expected slug=jalan, got %v", (*seen)[0].query)
	}
	if _, ok := (*seen)[1].query["regency_id"]; ok {
		t.Error("expected regency_id omitted")
	}
	if (*seen)[2].query.Get("tag_type") != "complaint" {
		t.Errorf("expected tag_type=complaint, got %v", (*seen)[2].query)
	}
}

func TestRecentReports_Defaults(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true,"data":{"reports":[]}}`)
	c := New(server.URL)

	if _, err := c.RecentReports(context.Background(), 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := (*seen)[0].query
	if q.Get("days") != "7" || q.Get("limit") != "10" {
		t.Errorf("expected days=7 limit=10, got %v", q)
	}
}

func TestMapEndpoints(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true,"data":{"markers":[{"id":"r1","title":"Lampu mati","lat":-6.9,"lon":107.6,"status":"pending","created_at":"2026-02-01T00:00:00Z"}]}}`)
	c := New(server.URL)

	env, err := c.MapData(context.Background(), MapFilter{Status: ReportPending, Limit: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(env.Data.Markers) != 1 || env.Data.Markers[0].Lat != -6.9 {
		t.Errorf("unexpected markers %+v", env.Data)
	}
	q := (*seen)[0].query
	if q.Get("status") != "pending" || q.Get("limit") != "100" {
		t.Errorf("unexpected map query %v", q)
	}
	if _, ok := q["province_id"]; ok {
		t.Error("expected province_id omitted")
	}
}

func TestPrompts_CRUD(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true,"data":{"id":"p1","key":"report_extraction","name":"Extraction","template_content":"Hi {{name}}","is_active":true,"version":3}}`)
	c := New(server.URL)
	ctx := context.Background()

	vars, err := ParseVariables(`{"name":"warga"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.CreatePrompt(ctx, CreatePromptInput{Key: "report_extraction", Name: "Extraction", TemplateContent: "Hi {{name}}", Variables: vars}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := c.UpdatePrompt(ctx, "p1", UpdatePromptInput{Name: "Extraction v2"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := c.DeletePrompt(ctx, "p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := c.RestorePrompt(ctx, "p1"); err != nil {
		t.Fatalf("restore: %v", err)
	}

	want := []struct{ method, path string }{
		{http.MethodPost, "/api/admin/prompts"},
		{http.MethodPut, "/api/admin/prompts/p1"},
		{http.MethodDelete, "/api/admin/prompts/p1"},
		{http.MethodPost, "/api/admin/prompts/p1/restore"},
	}
	for i, w := range want {
		if (*seen)[i].method != w.method || (*seen)[i].path != w.path {
			t.Errorf("request %d: expected %s %s, got %s %s", i, w.method, w.path, (*seen)[i].method, (*seen)[i].path)
		}
	}

	var created map[string]any
	json.Unmarshal((*seen)[0].body, &created)
	if v, ok := created["variables"].(map[string]any); !ok || v["name"] != "warga" {
		t.Errorf("expected variables object in body, got %s", (*seen)[0].body)
	}
}

func TestPrompts_ListWithActiveFilter(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true,"data":[],"meta":{"total":0,"total_pages":0}}`)
	c := New(server.URL)

	if _, err := c.Prompts(context.Background(), PromptFilter{IsActive: Bool(true), Search: "extract"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := (*seen)[0].query
	if q.Get("is_active") != "true" || q.Get("search") != "extract" {
		t.Errorf("unexpected query %v", q)
	}
}

func TestCreatePrompt_RequiresKey(t *testing.T) {
	server, seen := newCaptureServer(t, `{"success":true}`)
	c := New(server.URL)

	_, err := c.CreatePrompt(context.Background(), CreatePromptInput{Name: "x", TemplateContent: "y"})
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "key" {
		t.Fatalf("expected key validation error, got %v", err)
	}
	if len(*seen) != 0 {
		t.Error("expected no request to be sent")
	}
}

func TestParseVariables(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantNil bool
		wantErr bool
	}{
		{"empty", "", true, false},
		{"whitespace", "  \n ", true, false},
		{"object", `{"a": 1}`, false, false},
		{"invalid", `{"a": }`, true, true},
		{"array", `[1,2]`, true, true},
		{"null", `null`, true, true},
		{"string", `"x"`, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVariables(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err.Error() != InvalidVariablesMessage {
				t.Errorf("expected %q, got %q", InvalidVariablesMessage, err.Error())
			}
			if (got == nil) != tt.wantNil {
				t.Errorf("expected nil=%v, got %v", tt.wantNil, got)
			}
		})
	}
}

func TestFormatVariables(t *testing.T) {
	if got := FormatVariables(nil); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	if got := FormatVariables(json.RawMessage("null")); got != "" {
		t.Errorf("expected empty for null, got %q", got)
	}
	if got := FormatVariables(json.RawMessage(`{"a":1}`)); got != "{\n  \"a\": 1\n}" {
		t.Errorf("unexpected indent %q", got)
	}
}
