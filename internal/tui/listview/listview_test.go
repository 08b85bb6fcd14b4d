// ABOUTME: Tests for the paginated list screen
// ABOUTME: Validates loading, paging, stale responses, search and selection

package listview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/listing"
	tea "github.com/charmbracelet/bubbletea"
)

type item struct {
	ID   string
	Name string
}

type filter struct {
	Search string
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pageOf(page int) []item {
	return []item{
		{ID: fmt.Sprintf("p%d-a", page), Name: fmt.Sprintf("Page %d first", page)},
		{ID: fmt.Sprintf("p%d-b", page), Name: fmt.Sprintf("Page %d second", page)},
	}
}

func newTestModel(fetch listing.FetchFunc[filter, item]) *Model[filter, item] {
	m := New(Config[filter, item]{
		Title: "Items",
		Empty: "No items.",
		Columns: []Column[item]{
			{Title: "ID", Width: 10, Value: func(i item) string { return i.ID }},
			{Title: "Name", Width: 20, Value: func(i item) string { return i.Name }},
		},
		ID:      func(i item) string { return i.ID },
		Fetch:   fetch,
		Search:  func(f filter, s string) filter { f.Search = s; return f },
		Actions: map[string]string{"c": "Create"},
	}, 2, filter{})
	m.SetSize(100, 30)
	return m
}

func pagedFetch(requests *[]listing.Request[filter]) listing.FetchFunc[filter, item] {
	return func(_ context.Context, req listing.Request[filter]) (*client.Envelope[[]item], error) {
		*requests = append(*requests, req)
		items := pageOf(req.Page)
		return &client.Envelope[[]item]{
			Success: true,
			Data:    &items,
			Meta:    &client.Meta{Total: 42, TotalPages: 21},
		}, nil
	}
}

func TestListLoads(t *testing.T) {
	var requests []listing.Request[filter]
	m := newTestModel(pagedFetch(&requests))

	m.Update(m.fetch()())

	if m.State().State != listing.Loaded {
		t.Fatalf("expected loaded, got %s", m.State().State)
	}
	view := m.View()
	for _, expected := range []string{"Items", "Page 1 first", "Page 1 of 21 (42 total)"} {
		if !strings.Contains(view, expected) {
			t.Errorf("expected view to contain %q\nView:\n%s", expected, view)
		}
	}
}

func TestListNextPage(t *testing.T) {
	var requests []listing.Request[filter]
	m := newTestModel(pagedFetch(&requests))
	m.Update(m.fetch()())

	if cmd := m.Update(key("n")); cmd == nil {
		t.Fatal("expected a reload command on next page")
	}
	if m.State().Page != 2 {
		t.Errorf("expected page 2, got %d", m.State().Page)
	}
	if m.State().State != listing.Loading {
		t.Errorf("expected loading after paging, got %s", m.State().State)
	}

	m.Update(key("p"))
	if m.State().Page != 1 {
		t.Errorf("expected page 1 after prev, got %d", m.State().Page)
	}
	if cmd := m.Update(key("p")); cmd != nil {
		t.Error("expected no command before the first page")
	}
}

func TestListIgnoresStaleResponse(t *testing.T) {
	var requests []listing.Request[filter]
	m := newTestModel(pagedFetch(&requests))

	first := m.fetch()
	m.list.SetPage(3)
	second := m.fetch()

	m.Update(second())
	m.Update(first())

	got, _ := m.Selected()
	if got.ID != "p3-a" {
		t.Errorf("expected page 3 items to survive a stale response, got %s", got.ID)
	}
}

func TestListIgnoresOtherOwner(t *testing.T) {
	var requests []listing.Request[filter]
	m := newTestModel(pagedFetch(&requests))
	other := newTestModel(pagedFetch(&requests))

	m.fetch()
	other.Update(m.fetch()())

	if other.State().State == listing.Loaded {
		t.Error("expected another list's response to be ignored")
	}
}

func TestListUnauthorizedLeavesState(t *testing.T) {
	m := newTestModel(func(context.Context, listing.Request[filter]) (*client.Envelope[[]item], error) {
		return nil, client.ErrUnauthorized
	})

	m.Update(m.fetch()())

	if m.State().State != listing.Loading {
		t.Errorf("expected state untouched on expired session, got %s", m.State().State)
	}
	if strings.Contains(m.View(), "Error") {
		t.Error("expected no error shown for an expired session")
	}
}

func TestListTransportError(t *testing.T) {
	m := newTestModel(func(context.Context, listing.Request[filter]) (*client.Envelope[[]item], error) {
		return nil, errors.New("connection refused")
	})

	m.Update(m.fetch()())

	view := m.View()
	if !strings.Contains(view, "connection refused") {
		t.Errorf("expected transport error in view\nView:\n%s", view)
	}
}

func TestListApplicationFailure(t *testing.T) {
	m := newTestModel(func(context.Context, listing.Request[filter]) (*client.Envelope[[]item], error) {
		return &client.Envelope[[]item]{Success: false, Message: "Forbidden"}, nil
	})

	m.Update(m.fetch()())

	if !strings.Contains(m.View(), "Forbidden") {
		t.Errorf("expected backend message in view\nView:\n%s", m.View())
	}
}

func TestListEmpty(t *testing.T) {
	m := newTestModel(func(context.Context, listing.Request[filter]) (*client.Envelope[[]item], error) {
		items := []item{}
		return &client.Envelope[[]item]{Success: true, Data: &items}, nil
	})

	m.Update(m.fetch()())

	if !strings.Contains(m.View(), "No items.") {
		t.Errorf("expected empty message\nView:\n%s", m.View())
	}
}

func TestListOpenAndBack(t *testing.T) {
	var requests []listing.Request[filter]
	m := newTestModel(pagedFetch(&requests))
	m.Update(m.fetch()())

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	open, ok := cmd().(OpenMsg)
	if !ok {
		t.Fatalf("expected OpenMsg, got %T", cmd())
	}
	if open.ID != "p1-a" {
		t.Errorf("expected p1-a, got %s", open.ID)
	}

	cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(BackMsg); !ok {
		t.Error("expected BackMsg on esc")
	}
}

func TestListAction(t *testing.T) {
	var requests []listing.Request[filter]
	m := newTestModel(pagedFetch(&requests))
	m.Update(m.fetch()())

	cmd := m.Update(key("c"))
	if cmd == nil {
		t.Fatal("expected a command for action key")
	}
	action, ok := cmd().(ActionMsg)
	if !ok {
		t.Fatalf("expected ActionMsg, got %T", cmd())
	}
	if action.Key != "c" || action.ID != "p1-a" {
		t.Errorf("expected c on p1-a, got %s on %s", action.Key, action.ID)
	}
}

func TestListSearch(t *testing.T) {
	var requests []listing.Request[filter]
	m := newTestModel(pagedFetch(&requests))
	m.list.SetPage(4)

	m.Update(key("/"))
	if !m.Searching() {
		t.Fatal("expected search mode after /")
	}
	m.Update(key("jalan"))
	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Fatal("expected a reload after search")
	}

	if m.Searching() {
		t.Error("expected search mode to end on enter")
	}
	if m.list.Filter().Search != "jalan" {
		t.Errorf("expected search filter jalan, got %q", m.list.Filter().Search)
	}
	if m.State().Page != 1 {
		t.Errorf("expected search to reset to page 1, got %d", m.State().Page)
	}
}

func TestListHelp(t *testing.T) {
	var requests []listing.Request[filter]
	m := newTestModel(pagedFetch(&requests))

	help := strings.Join(m.Help(), " ")
	for _, expected := range []string{"/ Search", "c Create", "b Back"} {
		if !strings.Contains(help, expected) {
			t.Errorf("expected help to contain %q, got %s", expected, help)
		}
	}
}

func TestListHelp_PagingOnlyWithMorePages(t *testing.T) {
	var requests []listing.Request[filter]
	m := newTestModel(pagedFetch(&requests))
	m.Update(m.fetch()())

	if help := strings.Join(m.Help(), " "); !strings.Contains(help, "n/p Page") {
		t.Errorf("expected paging help on page 1 of 21, got %s", help)
	}
}

func TestListUnpaged(t *testing.T) {
	items := make([]item, 38)
	for i := range items {
		items[i] = item{ID: fmt.Sprintf("i%02d", i), Name: fmt.Sprintf("Item %02d", i)}
	}
	var requests []listing.Request[filter]
	m := New(Config[filter, item]{
		Title:   "Everything",
		Columns: []Column[item]{{Title: "Name", Width: 20, Value: func(i item) string { return i.Name }}},
		ID:      func(i item) string { return i.ID },
		Fetch: func(_ context.Context, req listing.Request[filter]) (*client.Envelope[[]item], error) {
			requests = append(requests, req)
			return &client.Envelope[[]item]{Success: true, Data: &items}, nil
		},
	}, 0, filter{})
	m.SetSize(100, 60)

	m.Update(m.fetch()())

	if got := len(m.State().Items); got != 38 {
		t.Fatalf("expected 38 items, got %d", got)
	}
	if view := m.View(); !strings.Contains(view, "38 items") || strings.Contains(view, "Page 1 of 1") {
		t.Errorf("expected item count footer without page line\nView:\n%s", view)
	}
	if help := strings.Join(m.Help(), " "); strings.Contains(help, "n/p Page") {
		t.Errorf("expected no paging help, got %s", help)
	}
	if cmd := m.Update(key("n")); cmd != nil {
		t.Error("expected no reload for next page")
	}
	if len(requests) != 1 {
		t.Errorf("expected 1 request, got %d", len(requests))
	}
}

func TestListSetFilter(t *testing.T) {
	var requests []listing.Request[filter]
	m := newTestModel(pagedFetch(&requests))
	m.list.SetPage(5)

	if cmd := m.SetFilter(filter{Search: "banjir"}); cmd == nil {
		t.Fatal("expected a reload command")
	}
	if m.Filter().Search != "banjir" {
		t.Errorf("expected filter banjir, got %q", m.Filter().Search)
	}
	if m.State().Page != 1 {
		t.Errorf("expected page 1 after filter change, got %d", m.State().Page)
	}
}
