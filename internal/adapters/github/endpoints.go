package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	perr "gitfolio/internal/platform/errors"
)

// fetch GETs a path and decodes the JSON body into T with a bounded reader
func fetch[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	resp, err := c.Do(ctx, http.MethodGet, path)
	if err != nil {
		return out, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return out, perr.Wrapf(err, perr.ErrorCodeUpstream, "github read body failed")
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, perr.Wrapf(err, perr.ErrorCodeUpstream, "github decode failed")
	}
	return out, nil
}

// Ping reports whether the API is reachable; used by readiness checks.
// The rate_limit endpoint answers even for unauthenticated clients.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.Do(ctx, http.MethodGet, "/rate_limit")
	if err != nil {
		return err
	}
	return drainAndClose(resp.Body)
}

// UserByLogin fetches a user's public profile
func (c *Client) UserByLogin(ctx context.Context, login string) (User, error) {
	return fetch[User](ctx, c, fmt.Sprintf("/users/%s", login))
}

// ListRepos returns a page of the user's public repositories, most recently
// updated first
func (c *Client) ListRepos(ctx context.Context, login string, page, perPage int) ([]Repo, error) {
	return fetch[[]Repo](ctx, c, fmt.Sprintf("/users/%s/repos?page=%d&per_page=%d&sort=updated", login, page, perPage))
}

// ListStarred returns a page of repositories the user has starred
func (c *Client) ListStarred(ctx context.Context, login string, page, perPage int) ([]Repo, error) {
	return fetch[[]Repo](ctx, c, fmt.Sprintf("/users/%s/starred?page=%d&per_page=%d", login, page, perPage))
}

// ListOrgs returns the user's public organizations
func (c *Client) ListOrgs(ctx context.Context, login string) ([]Org, error) {
	return fetch[[]Org](ctx, c, fmt.Sprintf("/users/%s/orgs", login))
}

// ListPublicEvents returns a page of the user's recent public events.
// This is a single recent window, not the full history; derived counters
// are approximate by nature.
func (c *Client) ListPublicEvents(ctx context.Context, login string, page, perPage int) ([]Event, error) {
	return fetch[[]Event](ctx, c, fmt.Sprintf("/users/%s/events/public?page=%d&per_page=%d", login, page, perPage))
}
