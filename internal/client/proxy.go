// ABOUTME: SSH+SOCKS5 tunnelled transport for backends only reachable via a jumpbox
// ABOUTME: Accepts ssh+socks5://user@host:port?private-key=/path/to/key

package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	proxy "github.com/cloudfoundry/socks5-proxy"
)

// ErrProxyKeyMissing is returned when the proxy URL has no private-key param
var ErrProxyKeyMissing = errors.New("proxy URL missing required 'private-key' query param")

// NewProxyTransport builds an HTTP transport that dials every connection
// through an SSH tunnel described by allProxy
func NewProxyTransport(allProxy string) (*http.Transport, error) {
	dial, err := socks5DialContext(allProxy)
	if err != nil {
		return nil, err
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	transport.DialContext = dial
	return transport, nil
}

func socks5DialContext(allProxy string) (func(ctx context.Context, network, address string) (net.Conn, error), error) {
	proxyURL, err := url.Parse(strings.TrimPrefix(allProxy, "ssh+"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse proxy URL: %w", err)
	}
	if proxyURL.Host == "" {
		return nil, fmt.Errorf("proxy URL %q has no host", allProxy)
	}

	keyPath := proxyURL.Query().Get("private-key")
	if keyPath == "" {
		return nil, ErrProxyKeyMissing
	}
	key, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read SSH private key %s: %w", keyPath, err)
	}

	username := ""
	if proxyURL.User != nil {
		username = proxyURL.User.Username()
	}

	socks5Proxy := proxy.NewSocks5Proxy(proxy.NewHostKey(), log.Default(), time.Minute)

	var (
		dialer proxy.DialFunc
		mu     sync.Mutex
	)

	// The tunnel is opened lazily on first dial and then shared
	return func(ctx context.Context, network, address string) (net.Conn, error) {
		mu.Lock()
		if dialer == nil {
			d, err := socks5Proxy.Dialer(username, string(key), proxyURL.Host)
			if err != nil {
				mu.Unlock()
				return nil, fmt.Errorf("error creating SOCKS5 dialer: %w", err)
			}
			dialer = d
		}
		dial := dialer
		mu.Unlock()
		return dial(network, address)
	}, nil
}
