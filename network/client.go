// Package network retrieves the site's pages, directly or through a CORS proxy.
package network

import (
	"context"
	"net"
	"net/http"
	"time"
)

// Client is the shared HTTP client used when none is configured.
var Client = NewClient(time.Minute, false)

// NewClient returns a client with a tuned transport. With impersonate set,
// TLS connections carry a Chrome client hello.
func NewClient(timeout time.Duration, impersonate bool) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: newTransport(timeout, impersonate),
	}
}

func newTransport(timeout time.Duration, impersonate bool) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second

	if impersonate {
		t.ForceAttemptHTTP2 = false
		t.DialTLSContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialChrome(ctx, network, addr, timeout)
		}
	}
	return t
}
