// ABOUTME: Tests for the file and memory session stores
// ABOUTME: Uses temp directories to isolate from the user's real config

package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_MissingFileMeansNoSession(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	token, err := store.Token()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "" {
		t.Errorf("expected empty token, got %q", token)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	if err := store.SetToken("abc123"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	token, err := store.Token()
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}
	if token != "abc123" {
		t.Errorf("expected abc123, got %q", token)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected mode 0600, got %o", perm)
	}
}

func TestFileStore_TightensExistingFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"access_token":"old"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := NewFileStore(path).SetToken("new"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected mode 0600, got %o", perm)
	}
}

func TestFileStore_UsesAccessTokenKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"access_token":"from-disk"}`), 0600); err != nil {
		t.Fatal(err)
	}

	token, _ := NewFileStore(path).Token()
	if token != "from-disk" {
		t.Errorf("expected from-disk, got %q", token)
	}
}

func TestFileStore_CorruptFileMeansNoSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	token, err := NewFileStore(path).Token()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "" {
		t.Errorf("expected empty token, got %q", token)
	}
}

func TestFileStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	if err := store.Clear(); err != nil {
		t.Errorf("clearing missing session should not fail: %v", err)
	}

	store.SetToken("abc")
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected session file to be removed")
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	if got := DefaultConfigDir(); got != "/tmp/xdg-test/balungpisah" {
		t.Errorf("expected /tmp/xdg-test/balungpisah, got %s", got)
	}
	if got := DefaultPath(); got != "/tmp/xdg-test/balungpisah/session.json" {
		t.Errorf("unexpected default path %s", got)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore("seed")

	if token, _ := store.Token(); token != "seed" {
		t.Errorf("expected seed, got %q", token)
	}
	store.SetToken("next")
	if token, _ := store.Token(); token != "next" {
		t.Errorf("expected next, got %q", token)
	}
	store.Clear()
	if token, _ := store.Token(); token != "" {
		t.Errorf("expected empty after clear, got %q", token)
	}
}

func TestNavigatorFunc(t *testing.T) {
	called := 0
	nav := NavigatorFunc(func() { called++ })
	nav.ToLogin()
	if called != 1 {
		t.Errorf("expected navigator to be called once, got %d", called)
	}

	// Discard must be safe to call
	Discard.ToLogin()
}
