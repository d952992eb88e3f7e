// Package client performs the HTTP round trip to the zoekt webserver
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "github.com/kentzhang-geek/zoekt.nvim/internal/platform/errors"
	"github.com/kentzhang-geek/zoekt.nvim/internal/platform/logger"
	"github.com/kentzhang-geek/zoekt.nvim/internal/search/wire"
)

const (
	searchPath     = "/api/search"
	defaultTimeout = 10 * time.Second
	defaultUA      = "zoekt-nvim"

	// non-200 bodies are read only for diagnostics; cap them
	errBodyCap = 2048
)

// Options configures the Client
type Options struct {
	UserAgent string

	// Timeout bounds the whole local round trip. The server-side wall time
	// limit travels inside the request body; this is the local bound
	Timeout time.Duration
}

// Client posts search requests. One Client serves any number of concurrent
// searches; per-search state lives on the Handle
type Client struct {
	http *http.Client
	opts Options
	now  func() time.Time
}

// New creates a Client with sane defaults
func New(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		now:  time.Now,
	}
}

// Search posts req to {serverURL}/api/search and returns the raw response
// body on HTTP 200. Exactly one attempt: retry policy belongs to the editor
// layer. Non-200 statuses and connection failures both come back as
// transport errors (perr.ErrorCodeTransport); the status rides on the error,
// 0 when no response arrived
func (c *Client) Search(ctx context.Context, serverURL string, req wire.Request) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "search request marshal failed")
	}

	url := serverURL + searchPath
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "search new request failed")
	}
	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("User-Agent", c.opts.UserAgent)

	log := logger.C(ctx)
	start := c.now()
	resp, err := c.http.Do(hreq)
	lat := c.now().Sub(start)

	if err != nil {
		log.Warn().Str("url", url).Dur("latency", lat).Err(err).Msg("search transport error")
		return nil, perr.TransportWrap(err, "search dispatch failed")
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("search http response")

	if resp.StatusCode != http.StatusOK {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyCap))
		return nil, perr.Transportf(resp.StatusCode, "search server status %d: %s", resp.StatusCode, string(tail))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, perr.TransportWrap(err, "search response read failed")
	}
	return body, nil
}
