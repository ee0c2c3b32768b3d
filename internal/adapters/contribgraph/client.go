// Package contribgraph fetches per-day contribution history from a
// github-contributions-api style proxy. GitHub has no public REST endpoint
// for the contribution graph, so a proxy service supplies the flat
// {date,count,level} records the calendar normalizer consumes.
package contribgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gitfolio/internal/core/calendar"
	perr "gitfolio/internal/platform/errors"
	"gitfolio/internal/platform/logger"
)

const (
	baseURLDefault = "https://github-contributions-api.jogruber.de"
	defaultTimeout = 10 * time.Second
	defaultUA      = "gitfolio-api"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client is a minimal proxy client; failures here are recovered by the
// caller's synthesize fallback, so there is no retry machinery
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("contribgraph"),
	}
}

// Ping reports whether the proxy is reachable; used by readiness checks.
// Any response below 500 counts as reachable, the root path is not an API.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"/", nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "contribgraph new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "contribgraph unreachable")
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
	_ = resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return perr.Upstreamf("contribgraph status %d", resp.StatusCode)
	}
	return nil
}

// payload is the proxy wire format: a totals map keyed by year (or the
// literal "lastYear"), flat daily records, and an optional error field
type payload struct {
	Total         map[string]float64 `json:"total"`
	Contributions []calendar.Record  `json:"contributions"`
	Error         string             `json:"error"`
}

// LastYear returns the user's daily records for the trailing year plus the
// proxy's total figure. The total prefers the lastYear key and otherwise
// sums whatever year totals the proxy returned.
func (c *Client) LastYear(ctx context.Context, login string) ([]calendar.Record, int, error) {
	url := fmt.Sprintf("%s/v4/%s?y=last", c.opts.BaseURL, login)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, perr.Wrapf(err, perr.ErrorCodeUnknown, "contribgraph new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, perr.Wrapf(err, perr.ErrorCodeUnavailable, "contribgraph do failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("login", login).Msg("contribgraph close body failed")
		}
	}()

	c.log.Debug().
		Str("login", login).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("contribgraph http response")

	if resp.StatusCode != http.StatusOK {
		return nil, 0, perr.Upstreamf("contribgraph unexpected status %d", resp.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, 0, perr.Wrapf(err, perr.ErrorCodeUpstream, "contribgraph read body failed")
	}
	var out payload
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, 0, perr.Wrapf(err, perr.ErrorCodeUpstream, "contribgraph decode failed")
	}
	if out.Error != "" {
		return nil, 0, perr.Upstreamf("contribgraph error: %s", out.Error)
	}

	total := 0
	if v, ok := out.Total["lastYear"]; ok {
		total = int(v)
	} else {
		for _, v := range out.Total {
			total += int(v)
		}
	}
	return out.Contributions, total, nil
}
