package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/anisan-cli/anitaku/constant"
	"github.com/anisan-cli/anitaku/key"
	"github.com/anisan-cli/anitaku/log"
	"github.com/anisan-cli/anitaku/util"
	"github.com/spf13/viper"
)

// maxBody caps how much of a page is read.
const maxBody = 10 << 20

// FetchError reports a page that could not be retrieved.
// StatusCode is zero when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher retrieves page HTML. With a Proxy set, the target URL is
// escaped and appended to it.
type Fetcher struct {
	Client    *http.Client
	Proxy     string
	UserAgent string
}

// NewFetcher builds a Fetcher from the fetch.* configuration.
func NewFetcher() *Fetcher {
	timeout := time.Duration(viper.GetInt(key.FetchTimeout)) * time.Second
	if timeout <= 0 {
		timeout = time.Minute
	}

	client := NewClient(timeout, viper.GetBool(key.FetchImpersonateTLS))
	if viper.GetBool(key.FetchCloudflareBypass) {
		client = BypassCloudflare(client)
	}

	return &Fetcher{
		Client:    client,
		Proxy:     viper.GetString(key.FetchProxy),
		UserAgent: viper.GetString(key.FetchUserAgent),
	}
}

// ProxyURL wraps target in the proxy prefix. An empty proxy returns target.
func ProxyURL(proxy, target string) string {
	if proxy == "" {
		return target
	}
	return proxy + util.EscapeComponent(target)
}

// Fetch returns the body of target as text. Any transport failure or
// non-2xx response is a *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, target string) (string, error) {
	client := f.Client
	if client == nil {
		client = Client
	}

	userAgent := f.UserAgent
	if userAgent == "" {
		userAgent = constant.UserAgent
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ProxyURL(f.Proxy, target), nil)
	if err != nil {
		return "", &FetchError{URL: target, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	log.Debugf("fetching %s", req.URL)
	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{
			URL:        target,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", &FetchError{URL: target, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	log.Debugf("fetched %s (%d bytes)", target, len(body))
	return string(body), nil
}
