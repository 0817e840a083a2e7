// Package net holds the shared HTTP client used to reach the remote
// spell checkers. Requests go through tls-client with a desktop Chrome
// fingerprint; both services sit behind bot filters.
package net

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// maxBody caps how much of a response is read.
const maxBody = 8 << 20

// Client posts forms and returns response bodies.
type Client struct {
	hc tls_client.HttpClient
}

var (
	sharedOnce sync.Once
	shared     *Client
	sharedErr  error
)

// Default returns the process-wide client (keep-alive, TLS session reuse).
func Default() (*Client, error) {
	sharedOnce.Do(func() { shared, sharedErr = New(30) })
	return shared, sharedErr
}

// New builds a client whose transport gives up after timeoutSec seconds.
// Per-request deadlines come from the request context.
func New(timeoutSec int) (*Client, error) {
	hc, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(),
		tls_client.WithTimeoutSeconds(timeoutSec),
		tls_client.WithClientProfile(profiles.Chrome_131),
		tls_client.WithCookieJar(tls_client.NewCookieJar()),
	)
	if err != nil {
		return nil, fmt.Errorf("net: tls client: %w", err)
	}
	return &Client{hc: hc}, nil
}

// NewPOST builds a pre-populated form request.
func NewPOST(ctx context.Context, rawURL string, form url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", ua)
	req.Header.Set("X-Forwarded-For", RandV4())
	return req, nil
}

// PostForm submits form to rawURL and returns the body of a 2xx answer.
func (c *Client) PostForm(ctx context.Context, rawURL string, form url.Values) ([]byte, error) {
	req, err := NewPOST(ctx, rawURL, form)
	if err != nil {
		return nil, err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("net: %s: unexpected status %d", rawURL, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBody))
}

const ua = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"
