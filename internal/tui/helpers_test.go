// ABOUTME: Shared test helpers for the TUI app
// ABOUTME: A fake backend plus a message pump standing in for the program loop

package tui

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeRoute struct {
	status int
	body   string
}

func ok(body string) fakeRoute {
	return fakeRoute{status: http.StatusOK, body: body}
}

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

type fakeBackend struct {
	*httptest.Server
	mu       sync.Mutex
	requests []recordedRequest
}

// newFakeBackend answers "METHOD /path" keys with canned responses
func newFakeBackend(t *testing.T, routes map[string]fakeRoute) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{}
	fb.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fb.mu.Lock()
		fb.requests = append(fb.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Body: string(body)})
		fb.mu.Unlock()

		route, found := routes[r.Method+" "+r.URL.Path]
		if !found {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(route.status)
		w.Write([]byte(route.body))
	}))
	t.Cleanup(fb.Close)
	return fb
}

func (fb *fakeBackend) calls(method, path string) []recordedRequest {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	var out []recordedRequest
	for _, r := range fb.requests {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// newTestApp builds an app against fb with the given stored token
func newTestApp(fb *fakeBackend, token string) (*App, *session.MemoryStore) {
	store := session.NewMemoryStore(token)
	c := client.New(fb.URL, client.WithStore(store))
	app := New(c)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app, store
}

// pump runs cmd and feeds every resulting message back into the app until
// nothing arrives for a short while. Spinner ticks are dropped.
func pump(app *App, cmd tea.Cmd) {
	msgs := make(chan tea.Msg, 64)
	pending := 0
	launch := func(c tea.Cmd) {
		if c == nil {
			return
		}
		pending++
		go func() { msgs <- c() }()
	}
	launch(cmd)

	for pending > 0 {
		select {
		case msg := <-msgs:
			pending--
			switch m := msg.(type) {
			case nil, spinner.TickMsg:
			case tea.BatchMsg:
				for _, c := range m {
					launch(c)
				}
			default:
				_, next := app.Update(m)
				launch(next)
			}
		case <-time.After(300 * time.Millisecond):
			return
		}
	}
}

// send delivers msg as if it came from a command
func send(app *App, msg tea.Msg) {
	pump(app, func() tea.Msg { return msg })
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press types one key and runs whatever it triggers
func press(app *App, s string) {
	_, cmd := app.Update(keyPress(s))
	pump(app, cmd)
}
