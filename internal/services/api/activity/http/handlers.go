// Package http provides http transport for activity
package http

import (
	stdhttp "net/http"

	"gitfolio/internal/modkit/httpkit"
	svc "gitfolio/internal/services/api/activity/service"
)

const defaultPerPage = 30

// Register mounts activity endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/{username}/stats", h.stats)
	httpkit.Get(r, "/{username}/overview", h.overview)
	httpkit.Get(r, "/{username}/timeline", h.timeline)
	httpkit.Get(r, "/{username}/events", h.events)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /activity/{username}/stats Activity activityStats
// @Summary Event-derived contribution tallies
// @Tags Activity
// @Produce json
// @Param username path string true "GitHub username"
// @Success 200 {object} domain.Stats "ok"
// @Router /activity/{username}/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	username, err := httpkit.Username(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Stats(r.Context(), username)
}

// swagger:route GET /activity/{username}/overview Activity activityOverview
// @Summary Repository footprint summary
// @Tags Activity
// @Produce json
// @Param username path string true "GitHub username"
// @Success 200 {object} domain.Overview "ok"
// @Router /activity/{username}/overview [get]
func (h *handlers) overview(r *stdhttp.Request) (any, error) {
	username, err := httpkit.Username(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Overview(r.Context(), username)
}

// swagger:route GET /activity/{username}/timeline Activity activityTimeline
// @Summary Recent activity feed, newest first
// @Tags Activity
// @Produce json
// @Param username path string true "GitHub username"
// @Success 200 {array} domain.TimelineEntry "ok"
// @Router /activity/{username}/timeline [get]
func (h *handlers) timeline(r *stdhttp.Request) (any, error) {
	username, err := httpkit.Username(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Timeline(r.Context(), username)
}

// swagger:route GET /activity/{username}/events Activity activityEvents
// @Summary Passthrough page of public events
// @Tags Activity
// @Produce json
// @Param username path string true "GitHub username"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size 1..100" default(30)
// @Success 200 {array} domain.Event "ok"
// @Router /activity/{username}/events [get]
func (h *handlers) events(r *stdhttp.Request) (any, error) {
	username, err := httpkit.Username(r)
	if err != nil {
		return nil, err
	}
	page, err := httpkit.Paging(r, defaultPerPage)
	if err != nil {
		return nil, err
	}
	return h.svc.Events(r.Context(), username, page.Page, page.PerPage)
}
