// ABOUTME: Tests for the tui command
// ABOUTME: Verifies registration and the Prometheus metrics listener

package cmd

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/balungpisah/balungpisah-admin/internal/metrics"
)

func TestTUICommandRegistered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"tui"})
	if err != nil {
		t.Fatalf("expected tui command, got error %v", err)
	}
	if cmd.Flags().Lookup("metrics-addr") == nil {
		t.Error("expected --metrics-addr flag")
	}
}

func TestServeMetricsExposesCounters(t *testing.T) {
	m := metrics.New()
	m.IncrementSessionExpired()

	addr, stop, err := serveMetrics("127.0.0.1:0", m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer stop()

	resp, err := http.Get("http://" + addr + "/metrics")
	if err != nil {
		t.Fatalf("failed to scrape: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if !strings.Contains(string(body), "balungpisah_admin_session_expirations_total 1") {
		t.Errorf("expected session expiration counter, got:\n%s", body)
	}
}

func TestServeMetricsInvalidAddress(t *testing.T) {
	if _, _, err := serveMetrics("not-an-address", metrics.New()); err == nil {
		t.Error("expected error for invalid address")
	}
}
