// ABOUTME: Tests for SSH+SOCKS5 proxy URL handling
// ABOUTME: Only covers parsing; no tunnel is opened

package client

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewProxyTransport_MissingKey(t *testing.T) {
	_, err := NewProxyTransport("ssh+socks5://jumpbox@10.0.0.5:22")
	if !errors.Is(err, ErrProxyKeyMissing) {
		t.Errorf("expected ErrProxyKeyMissing, got %v", err)
	}
}

func TestNewProxyTransport_UnreadableKey(t *testing.T) {
	_, err := NewProxyTransport("ssh+socks5://jumpbox@10.0.0.5:22?private-key=/nonexistent/key")
	if err == nil {
		t.Error("expected error for unreadable key")
	}
}

func TestNewProxyTransport_NoHost(t *testing.T) {
	_, err := NewProxyTransport("ssh+socks5://?private-key=/tmp/key")
	if err == nil {
		t.Error("expected error for missing host")
	}
}

func TestNewProxyTransport_Valid(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "id_rsa")
	if err := os.WriteFile(keyPath, []byte("not-a-real-key"), 0o600); err != nil {
		t.Fatal(err)
	}
	transport, err := NewProxyTransport("ssh+socks5://jumpbox@10.0.0.5:22?private-key=" + keyPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transport.DialContext == nil {
		t.Error("expected a proxy dialer")
	}
	if transport.Proxy != nil {
		t.Error("expected environment proxy disabled")
	}
}
