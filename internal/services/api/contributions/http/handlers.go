// Package http provides http transport for contributions
package http

import (
	stdhttp "net/http"

	"gitfolio/internal/modkit/httpkit"
	svc "gitfolio/internal/services/api/contributions/service"
)

// Register mounts contribution endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// render-ready calendar, synthetic fallback included
	httpkit.Get(r, "/{username}", h.graph)

	// color scale for the same dataset
	httpkit.Get(r, "/{username}/legend", h.legend)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /contributions/{username} Contributions contributionsGraph
// @Summary Contribution calendar for a user
// @Tags Contributions
// @Produce json
// @Param username path string true "GitHub username"
// @Success 200 {object} domain.Graph "ok"
// @Router /contributions/{username} [get]
func (h *handlers) graph(r *stdhttp.Request) (any, error) {
	username, err := httpkit.Username(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Graph(r.Context(), username)
}

// swagger:route GET /contributions/{username}/legend Contributions contributionsLegend
// @Summary Contribution color legend for a user
// @Tags Contributions
// @Produce json
// @Param username path string true "GitHub username"
// @Success 200 {object} domain.Legend "ok"
// @Router /contributions/{username}/legend [get]
func (h *handlers) legend(r *stdhttp.Request) (any, error) {
	username, err := httpkit.Username(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Legend(r.Context(), username)
}
