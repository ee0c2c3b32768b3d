// Package http provides http transport for repos
package http

import (
	stdhttp "net/http"

	"gitfolio/internal/modkit/httpkit"
	svc "gitfolio/internal/services/api/repos/service"
)

const (
	defaultPerPage      = 30
	defaultPopularLimit = 6
	maxPopularLimit     = 100
)

// Register mounts repo endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/{username}", h.list)
	httpkit.Get(r, "/{username}/popular", h.popular)
	httpkit.Get(r, "/{username}/starred", h.starred)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /repos/{username} Repos reposList
// @Summary Public repositories, most recently updated first
// @Tags Repos
// @Produce json
// @Param username path string true "GitHub username"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size 1..100" default(30)
// @Success 200 {array} domain.Repo "ok"
// @Router /repos/{username} [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	username, err := httpkit.Username(r)
	if err != nil {
		return nil, err
	}
	page, err := httpkit.Paging(r, defaultPerPage)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), username, page.Page, page.PerPage)
}

// swagger:route GET /repos/{username}/popular Repos reposPopular
// @Summary Top repositories by stars
// @Tags Repos
// @Produce json
// @Param username path string true "GitHub username"
// @Param limit query int false "How many repos 1..100" default(6)
// @Success 200 {array} domain.Repo "ok"
// @Router /repos/{username}/popular [get]
func (h *handlers) popular(r *stdhttp.Request) (any, error) {
	username, err := httpkit.Username(r)
	if err != nil {
		return nil, err
	}
	limit, err := httpkit.Limit(r, defaultPopularLimit, maxPopularLimit)
	if err != nil {
		return nil, err
	}
	return h.svc.Popular(r.Context(), username, limit)
}

// swagger:route GET /repos/{username}/starred Repos reposStarred
// @Summary Repositories the user has starred
// @Tags Repos
// @Produce json
// @Param username path string true "GitHub username"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size 1..100" default(30)
// @Success 200 {object} domain.StarredPage "ok"
// @Router /repos/{username}/starred [get]
func (h *handlers) starred(r *stdhttp.Request) (any, error) {
	username, err := httpkit.Username(r)
	if err != nil {
		return nil, err
	}
	page, err := httpkit.Paging(r, defaultPerPage)
	if err != nil {
		return nil, err
	}
	return h.svc.Starred(r.Context(), username, page.Page, page.PerPage)
}
