// ABOUTME: HTTP client for the Balungpisah admin API
// ABOUTME: Shared request plumbing; endpoint methods live in the per-area files

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/balungpisah/balungpisah-admin/internal/metrics"
	"github.com/balungpisah/balungpisah-admin/internal/session"
)

// DefaultTimeout applies to every request unless overridden
const DefaultTimeout = 30 * time.Second

const contentType = "application/json"

// Client is the typed façade over the Balungpisah REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      session.Store
	logger     *slog.Logger
}

type options struct {
	store      session.Store
	navigator  session.Navigator
	httpClient *http.Client
	transport  http.RoundTripper
	timeout    time.Duration
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*options)

// WithStore sets where the session token is read from and written to
func WithStore(store session.Store) Option {
	return func(o *options) { o.store = store }
}

// WithNavigator sets what happens after the backend rejects the session
func WithNavigator(nav session.Navigator) Option {
	return func(o *options) { o.navigator = nav }
}

// WithHTTPClient uses hc's timeout and transport as the starting point.
// The session interceptor is always layered on top.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithTransport sets the innermost round tripper
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// WithTimeout overrides DefaultTimeout
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithMetrics records request metrics into m
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithLogger sets the logger used for request tracing
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a new API client with the given base URL
func New(baseURL string, opts ...Option) *Client {
	o := options{
		navigator: session.Discard,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = session.NewMemoryStore("")
	}
	if o.navigator == nil {
		o.navigator = session.Discard
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	hc := &http.Client{Timeout: o.timeout}
	if o.httpClient != nil {
		copied := *o.httpClient
		hc = &copied
		if hc.Timeout == 0 {
			hc.Timeout = o.timeout
		}
	}

	base := o.transport
	if base == nil {
		base = hc.Transport
	}
	if base == nil {
		base = http.DefaultTransport
	}

	hc.Transport = &authTransport{
		base: &instrumentedTransport{
			base:    base,
			metrics: o.metrics,
			logger:  o.logger,
		},
		store:     o.store,
		navigator: o.navigator,
		metrics:   o.metrics,
		logger:    o.logger,
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
		store:      o.store,
		logger:     o.logger,
	}
}

// BaseURL returns the backend address requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Store returns the session store the client authenticates from
func (c *Client) Store() session.Store {
	return c.store
}

// call describes one request. route is the templated path used for metric
// labels so record ids do not explode label cardinality.
type call struct {
	method string
	route  string
	path   string
	query  url.Values
	body   any
}

func get(route, path string, query url.Values) call {
	return call{method: http.MethodGet, route: route, path: path, query: query}
}

func send(method, route, path string, body any) call {
	return call{method: method, route: route, path: path, body: body}
}

// do performs c and decodes the envelope. Methods cannot carry type
// parameters, so endpoint methods call this generic helper.
func do[T any](ctx context.Context, c *Client, cl call) (*Envelope[T], error) {
	var body io.Reader
	if cl.body != nil {
		data, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal input: %w", err)
		}
		body = bytes.NewReader(data)
	}

	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	req, err := http.NewRequestWithContext(withRoute(ctx, cl.route), cl.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.handleRequestError(ctx, req, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}

	return decodeEnvelope[T](req, resp)
}

func decodeEnvelope[T any](req *http.Request, resp *http.Response) (*Envelope[T], error) {
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	var env Envelope[T]
	err := json.NewDecoder(resp.Body).Decode(&env)
	switch {
	case err == nil:
		env.StatusCode = resp.StatusCode
		return &env, nil
	case !ok:
		return &Envelope[T]{
			Success:    false,
			Message:    fmt.Sprintf("backend returned status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}, nil
	case errors.Is(err, io.EOF):
		// An empty 2xx body carries no success flag; report it as such
		return &Envelope[T]{StatusCode: resp.StatusCode}, nil
	default:
		return nil, &TransportError{
			Method:  req.Method,
			URL:     req.URL.String(),
			Message: "invalid response from backend",
			Err:     err,
		}
	}
}

// handleRequestError converts transport failures to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, req *http.Request, err error) error {
	te := &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}

	var netErr net.Error
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		te.Message = "request canceled"
		te.Err = context.Canceled
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		te.Message = "request timed out"
		te.Err = context.DeadlineExceeded
	case errors.As(err, &netErr) && netErr.Timeout():
		te.Message = "request timed out"
	default:
		te.Message = fmt.Sprintf("cannot connect to backend at %s", c.baseURL)
	}
	return te
}

func pathID(prefix, id string) string {
	return prefix + "/" + url.PathEscape(id)
}
