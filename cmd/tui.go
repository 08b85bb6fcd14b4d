// ABOUTME: TUI command for balungpisah-admin CLI
// ABOUTME: Launches the interactive console with optional Prometheus metrics

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/metrics"
	"github.com/balungpisah/balungpisah-admin/internal/session"
	"github.com/balungpisah/balungpisah-admin/internal/tui"
	"github.com/balungpisah/balungpisah-admin/internal/tui/debuglog"
	"github.com/spf13/cobra"
)

var metricsAddr string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive admin console",
	Long: `Open the full-screen admin console. Without a stored session it starts
on the sign-in form, and an expired session returns there.

Request diagnostics go to debug.log in the config directory. With
--metrics-addr (or BALUNGPISAH_METRICS_ADDR) request counters are served
at /metrics while the console runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTUI(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	tuiCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI() error {
	cfg := currentConfig()

	if err := debuglog.Init(session.DefaultConfigDir()); err != nil {
		slog.Warn("debug log disabled", "error", err)
	}
	defer debuglog.Close()

	m := metrics.New()
	addr := metricsAddr
	if addr == "" {
		addr = cfg.MetricsAddr
	}
	if addr != "" {
		_, stop, err := serveMetrics(addr, m)
		if err != nil {
			return err
		}
		defer stop()
	}

	nav := tui.NewNavigator()
	c, err := newClient(
		client.WithNavigator(nav),
		client.WithLogger(debuglog.Logger(cfg.LogLevel)),
		client.WithMetrics(m),
	)
	if err != nil {
		return err
	}
	return tui.Run(c, nav)
}

// serveMetrics exposes m on addr until the returned stop func is called.
// It returns the bound address.
func serveMetrics(addr string, m *metrics.Metrics) (string, func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			debuglog.Error("metrics server", err)
		}
	}()
	debuglog.Log("serving metrics on %s", ln.Addr())

	return ln.Addr().String(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}, nil
}
