// ABOUTME: Commands that load single records and apply admin changes
// ABOUTME: Each command resolves its envelope into a message for the app

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/overview"
	"github.com/balungpisah/balungpisah-admin/internal/tui/detail"
	tea "github.com/charmbracelet/bubbletea"
)

// SessionExpiredMsg is sent when the backend rejects the session token
type SessionExpiredMsg struct{}

// overviewLoadedMsg is sent when the overview sections are loaded
type overviewLoadedMsg struct {
	data *overview.Overview
	err  error
}

// loginDoneMsg is sent when a sign-in attempt finishes
type loginDoneMsg struct {
	email string
	err   error
}

// userLoadedMsg is sent when /api/auth/me answers. err is set when the
// backend did not confirm the session.
type userLoadedMsg struct {
	user client.User
	err  error
}

// record is the item shown on the detail screen
type record struct {
	id      string
	title   string
	body    string
	actions map[string]string
	status  client.ReportStatus
	prompt  *client.Prompt
	reload  func() tea.Cmd
}

// recordLoadedMsg is sent when a detail fetch finishes
type recordLoadedMsg struct {
	rec    *record
	notice string
	err    error
}

// rateLimitLoadedMsg is sent when a single setting is fetched for editing
type rateLimitLoadedMsg struct {
	cfg client.RateLimitConfig
	err error
}

// promptKeysLoadedMsg is sent before the create prompt form opens
type promptKeysLoadedMsg struct {
	keys []client.PromptKeyDefinition
	err  error
}

// mutationDoneMsg is sent when a write finishes. next runs on success.
type mutationDoneMsg struct {
	notice string
	err    error
	next   func() tea.Cmd
}

// outcome turns an envelope into a value or an error worth showing
func outcome[T any](env *client.Envelope[T], err error, notFound string) (T, error) {
	r := client.Resolve(env, err)
	switch r.Kind {
	case client.KindOK:
		if !r.HasValue {
			return r.Value, errors.New(notFound)
		}
		return r.Value, nil
	case client.KindApplicationError:
		return r.Value, errors.New(r.FailureMessage("Request failed"))
	default:
		return r.Value, r.Err
	}
}

// succeeded is outcome for writes whose payload is not needed
func succeeded[T any](env *client.Envelope[T], err error) error {
	r := client.Resolve(env, err)
	switch r.Kind {
	case client.KindOK:
		return nil
	case client.KindApplicationError:
		return errors.New(r.FailureMessage("Request failed"))
	default:
		return r.Err
	}
}

func (a *App) loadOverview() tea.Cmd {
	return func() tea.Msg {
		data, err := overview.Load(context.Background(), a.client)
		return overviewLoadedMsg{data: data, err: err}
	}
}

func (a *App) login(email, password string) tea.Cmd {
	return func() tea.Msg {
		env, err := a.client.Login(context.Background(), email, password)
		if errors.Is(err, client.ErrUnauthorized) {
			return loginDoneMsg{email: email, err: errors.New("invalid email or password")}
		}
		if _, err := outcome(env, err, "Login failed"); err != nil {
			return loginDoneMsg{email: email, err: err}
		}
		return loginDoneMsg{email: email}
	}
}

func (a *App) loadUser() tea.Cmd {
	return func() tea.Msg {
		env, err := a.client.Me(context.Background())
		user, err := outcome(env, err, "Not signed in")
		return userLoadedMsg{user: user, err: err}
	}
}

func (a *App) loadRecord(notice string, fetch func(ctx context.Context) (*record, error)) tea.Cmd {
	return func() tea.Msg {
		rec, err := fetch(context.Background())
		return recordLoadedMsg{rec: rec, notice: notice, err: err}
	}
}

func (a *App) reportRecord(id, notice string) tea.Cmd {
	return a.loadRecord(notice, func(ctx context.Context) (*record, error) {
		env, err := a.client.Report(ctx, id)
		r, err := outcome(env, err, "Report not found")
		if err != nil {
			return nil, err
		}
		return &record{
			id:      r.ID,
			title:   "Report " + firstNonEmpty(r.ReferenceNumber, r.ID),
			body:    detail.Report(r),
			actions: map[string]string{"s": "Status", "r": "Reload"},
			status:  r.Status,
			reload:  func() tea.Cmd { return a.reportRecord(id, "") },
		}, nil
	})
}

func (a *App) openReport(id string) tea.Cmd {
	return a.reportRecord(id, "")
}

func (a *App) openTicket(id string) tea.Cmd {
	return a.loadRecord("", func(ctx context.Context) (*record, error) {
		env, err := a.client.Ticket(ctx, id)
		t, err := outcome(env, err, "Ticket not found")
		if err != nil {
			return nil, err
		}
		return &record{
			id:      t.ID,
			title:   "Ticket " + t.ReferenceNumber,
			body:    detail.Ticket(t),
			actions: map[string]string{"r": "Reload"},
			reload:  func() tea.Cmd { return a.openTicket(id) },
		}, nil
	})
}

func (a *App) openContributor(id string) tea.Cmd {
	return a.loadRecord("", func(ctx context.Context) (*record, error) {
		env, err := a.client.Contributor(ctx, id)
		c, err := outcome(env, err, "Contributor not found")
		if err != nil {
			return nil, err
		}
		return &record{
			id:      c.ID,
			title:   "Contributor " + firstNonEmpty(c.Name, c.OrganizationName, c.ID),
			body:    detail.Contributor(c),
			actions: map[string]string{"r": "Reload"},
			reload:  func() tea.Cmd { return a.openContributor(id) },
		}, nil
	})
}

func (a *App) openExpectation(id string) tea.Cmd {
	return a.loadRecord("", func(ctx context.Context) (*record, error) {
		env, err := a.client.Expectation(ctx, id)
		e, err := outcome(env, err, "Expectation not found")
		if err != nil {
			return nil, err
		}
		return &record{
			id:      e.ID,
			title:   "Expectation",
			body:    detail.Expectation(e),
			actions: map[string]string{"r": "Reload"},
			reload:  func() tea.Cmd { return a.openExpectation(id) },
		}, nil
	})
}

func (a *App) promptRecord(id, notice string) tea.Cmd {
	return a.loadRecord(notice, func(ctx context.Context) (*record, error) {
		env, err := a.client.Prompt(ctx, id)
		p, err := outcome(env, err, "Prompt not found")
		if err != nil {
			return nil, err
		}
		actions := map[string]string{"e": "Edit", "d": "Delete", "r": "Reload"}
		if !p.IsActive {
			actions = map[string]string{"u": "Restore", "r": "Reload"}
		}
		return &record{
			id:      p.ID,
			title:   "Prompt " + p.Key,
			body:    detail.Prompt(p),
			actions: actions,
			prompt:  &p,
			reload:  func() tea.Cmd { return a.promptRecord(id, "") },
		}, nil
	})
}

func (a *App) openPrompt(id string) tea.Cmd {
	return a.promptRecord(id, "")
}

func (a *App) openRateLimit(key string) tea.Cmd {
	return func() tea.Msg {
		env, err := a.client.RateLimit(context.Background(), key)
		cfg, err := outcome(env, err, "Setting not found")
		return rateLimitLoadedMsg{cfg: cfg, err: err}
	}
}

func (a *App) loadPromptKeys() tea.Cmd {
	return func() tea.Msg {
		env, err := a.client.PromptKeys(context.Background())
		keys, err := outcome(env, err, "No prompt keys")
		return promptKeysLoadedMsg{keys: keys, err: err}
	}
}

func (a *App) updateReportStatus(id string, status client.ReportStatus, notes string) tea.Cmd {
	return func() tea.Msg {
		err := succeeded(a.client.UpdateReportStatus(context.Background(), id, status, notes))
		return mutationDoneMsg{
			notice: "Status updated to " + status.Label(),
			err:    err,
			next:   func() tea.Cmd { return a.reportRecord(id, "Status updated to "+status.Label()) },
		}
	}
}

func (a *App) updateRateLimit(key string, value int) tea.Cmd {
	return func() tea.Msg {
		err := succeeded(a.client.UpdateRateLimit(context.Background(), key, value))
		return mutationDoneMsg{
			notice: fmt.Sprintf("Updated %s to %d", key, value),
			err:    err,
			next:   a.reloadList,
		}
	}
}

func (a *App) savePrompt(id string, create client.CreatePromptInput, update client.UpdatePromptInput) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if id == "" {
			env, err := a.client.CreatePrompt(ctx, create)
			p, err := outcome(env, err, "Prompt not returned")
			if err != nil {
				return mutationDoneMsg{err: err}
			}
			return mutationDoneMsg{
				notice: "Created prompt " + p.Key,
				next:   func() tea.Cmd { return a.promptRecord(p.ID, "Created prompt "+p.Key) },
			}
		}
		err := succeeded(a.client.UpdatePrompt(ctx, id, update))
		return mutationDoneMsg{
			notice: "Saved prompt",
			err:    err,
			next:   func() tea.Cmd { return a.promptRecord(id, "Saved prompt") },
		}
	}
}

func (a *App) deletePrompt(id string) tea.Cmd {
	return func() tea.Msg {
		err := succeeded(a.client.DeletePrompt(context.Background(), id))
		return mutationDoneMsg{
			notice: "Deleted prompt",
			err:    err,
			next:   a.leaveDetail,
		}
	}
}

func (a *App) restorePrompt(id string) tea.Cmd {
	return func() tea.Msg {
		err := succeeded(a.client.RestorePrompt(context.Background(), id))
		return mutationDoneMsg{
			notice: "Restored prompt",
			err:    err,
			next:   func() tea.Cmd { return a.promptRecord(id, "Restored prompt") },
		}
	}
}
