// ABOUTME: Tests for login, logout and whoami
// ABOUTME: Verifies token persistence and unauthorized handling

package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/session"
)

func TestLogin_Success(t *testing.T) {
	fb := newFakeBackend(t, map[string]string{
		"POST /api/auth/login": `{"success":true,"data":{"access_token":"tok-123","token_type":"Bearer"}}`,
	})
	store := session.NewMemoryStore("")
	c := client.New(fb.URL, client.WithStore(store))

	var buf bytes.Buffer
	exitCode := runLogin(context.Background(), c, &buf, "admin@balungpisah.id", "secret")
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if tok, _ := store.Token(); tok != "tok-123" {
		t.Errorf("expected stored token tok-123, got %q", tok)
	}
	if !strings.Contains(buf.String(), "Logged in to "+fb.URL) {
		t.Errorf("unexpected output %s", buf.String())
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()
	store := session.NewMemoryStore("")

	var buf bytes.Buffer
	exitCode := runLogin(context.Background(), client.New(server.URL, client.WithStore(store)), &buf, "admin@balungpisah.id", "wrong")
	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "invalid email or password") {
		t.Errorf("unexpected output %s", buf.String())
	}
	if tok, _ := store.Token(); tok != "" {
		t.Errorf("expected no token, got %q", tok)
	}
}

func TestLogin_InvalidCredentialsPrintsNoSessionHint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	var hint, buf bytes.Buffer
	c := client.New(server.URL,
		client.WithStore(session.NewMemoryStore("")),
		client.WithNavigator(loginHint(&hint)),
		loginQuiet,
	)
	if exitCode := runLogin(context.Background(), c, &buf, "admin@balungpisah.id", "wrong"); exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if hint.Len() != 0 {
		t.Errorf("expected no session hint, got %q", hint.String())
	}
	if !strings.Contains(buf.String(), "invalid email or password") {
		t.Errorf("unexpected output %s", buf.String())
	}
}

func TestLoginHint(t *testing.T) {
	var hint bytes.Buffer
	loginHint(&hint).ToLogin()
	if !strings.Contains(hint.String(), "balungpisah-admin login") {
		t.Errorf("expected login hint, got %q", hint.String())
	}
}

func TestLogin_MissingPassword(t *testing.T) {
	fb := newFakeBackend(t, map[string]string{})

	var buf bytes.Buffer
	exitCode := runLogin(context.Background(), client.New(fb.URL), &buf, "admin@balungpisah.id", "")
	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if fb.count() != 0 {
		t.Error("expected no request without a password")
	}
}

func TestLogout(t *testing.T) {
	store := session.NewMemoryStore("tok")

	var buf bytes.Buffer
	if exitCode := runLogout(client.New("http://unused", client.WithStore(store)), &buf); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if tok, _ := store.Token(); tok != "" {
		t.Errorf("expected token cleared, got %q", tok)
	}
}

func TestWhoami(t *testing.T) {
	fb := newFakeBackend(t, map[string]string{
		"GET /api/auth/me": `{"success":true,"data":{"account_id":"acc-1","sub":"admin@balungpisah.id","roles":["admin"]}}`,
	})
	c := client.New(fb.URL, client.WithStore(session.NewMemoryStore("tok")))

	var buf bytes.Buffer
	if exitCode := runWhoami(context.Background(), c, &buf); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	for _, want := range []string{"acc-1", "admin@balungpisah.id", "admin"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestWhoami_NotLoggedIn(t *testing.T) {
	fb := newFakeBackend(t, map[string]string{})

	var buf bytes.Buffer
	exitCode := runWhoami(context.Background(), client.New(fb.URL, client.WithStore(session.NewMemoryStore(""))), &buf)
	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if fb.count() != 0 {
		t.Error("expected no request without a session")
	}
}

func TestWhoami_SessionExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()
	store := session.NewMemoryStore("stale")
	navigated := 0
	c := client.New(server.URL, client.WithStore(store), client.WithNavigator(session.NavigatorFunc(func() { navigated++ })))

	var buf bytes.Buffer
	if exitCode := runWhoami(context.Background(), c, &buf); exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if navigated != 1 {
		t.Errorf("expected 1 navigation, got %d", navigated)
	}
	if tok, _ := store.Token(); tok != "" {
		t.Errorf("expected token cleared, got %q", tok)
	}
}
