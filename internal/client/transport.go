// ABOUTME: RoundTrippers wrapped around every outgoing API request
// ABOUTME: Attaches the bearer token and request id, and expires the session on 401

package client

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/balungpisah/balungpisah-admin/internal/metrics"
	"github.com/balungpisah/balungpisah-admin/internal/session"
	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request correlation id
const RequestIDHeader = "X-Request-ID"

type routeKey struct{}

// withRoute tags ctx with the templated path used for metric labels
func withRoute(ctx context.Context, route string) context.Context {
	return context.WithValue(ctx, routeKey{}, route)
}

func routeFrom(req *http.Request) string {
	if route, ok := req.Context().Value(routeKey{}).(string); ok {
		return route
	}
	return req.URL.Path
}

// authTransport is the single interception point for session handling.
// Every request the client makes passes through it.
type authTransport struct {
	base      http.RoundTripper
	store     session.Store
	navigator session.Navigator
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request
	req = req.Clone(req.Context())

	token, err := t.store.Token()
	if err != nil {
		t.logger.Warn("failed to read session token", "error", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		t.expire(req)
	}
	return resp, nil
}

func (t *authTransport) expire(req *http.Request) {
	t.logger.Info("session expired",
		"method", req.Method,
		"path", req.URL.Path,
		"request_id", req.Header.Get(RequestIDHeader),
	)
	if err := t.store.Clear(); err != nil {
		t.logger.Warn("failed to clear session token", "error", err)
	}
	t.metrics.IncrementSessionExpired()
	t.navigator.ToLogin()
}

// instrumentedTransport records request metrics and a debug log line per call
type instrumentedTransport struct {
	base    http.RoundTripper
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func (t *instrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	route := routeFrom(req)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.metrics.ObserveTransportError(req.Method, route)
		t.logger.Debug("request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"request_id", req.Header.Get(RequestIDHeader),
			"duration", time.Since(start),
			"error", err,
		)
		return nil, err
	}

	t.metrics.ObserveRequest(req.Method, route, resp.StatusCode, start)
	t.logger.Debug("request completed",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"request_id", req.Header.Get(RequestIDHeader),
		"duration", time.Since(start),
	)
	return resp, nil
}
