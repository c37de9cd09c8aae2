// Package scrape fetches The Hickory Kampala website, extracts text blocks
// per page, filters navigation and placeholder noise, merges the result
// with the curated seed records, and produces the labeled corpus.
package scrape

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the site the corpus is built from.
const DefaultBaseURL = "https://thehickorykampala.com"

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// ClientConfig holds HTTP fetch settings.
type ClientConfig struct {
	Timeout      time.Duration
	DialTimeout  time.Duration
	MaxBodyBytes int64
}

// ApplyDefaults fills zero fields with default values.
func (c *ClientConfig) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	if c.DialTimeout <= 0 {
		c.DialTimeout = 5 * time.Second
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = 2 << 20 // 2 MiB
	}
}

// Client fetches HTML pages with a tuned transport, gzip support, a
// response size cap and a content-type gate.
type Client struct {
	client    *http.Client
	sizeCap   int64
	userAgent string
}

// NewClient creates a fetch client.
func NewClient(cfg ClientConfig) *Client {
	cfg.ApplyDefaults()
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.DialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Client{
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		sizeCap:   cfg.MaxBodyBytes,
		userAgent: defaultUserAgent,
	}
}

// Fetch retrieves one page and returns its body (capped at the configured
// size) and content type. Non-2xx/3xx statuses and non-HTML content types
// are errors.
func (c *Client) Fetch(ctx context.Context, rawURL string) (io.ReadCloser, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, "", fmt.Errorf("invalid url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, "", fmt.Errorf("fetch %s: http status %d", rawURL, resp.StatusCode)
	}

	var body io.ReadCloser = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, "", fmt.Errorf("gzip reader: %w", err)
		}
		body = gz
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType != "" && !strings.Contains(mediaType, "text/html") &&
		!strings.Contains(mediaType, "application/xhtml+xml") {
		body.Close()
		return nil, "", errors.New("non-html content")
	}

	return readCloser{Reader: io.LimitReader(body, c.sizeCap), closer: body}, contentType, nil
}

// readCloser caps reads but still closes the underlying body.
type readCloser struct {
	io.Reader
	closer io.Closer
}

func (r readCloser) Close() error { return r.closer.Close() }
