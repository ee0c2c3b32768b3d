// Package http provides http transport for profiles
package http

import (
	stdhttp "net/http"

	"gitfolio/internal/modkit/httpkit"
	svc "gitfolio/internal/services/api/profile/service"
)

// Register mounts profile endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// the configured identity, mounted before the wildcard
	httpkit.Get(r, "/default", h.defaultUser)

	httpkit.Get(r, "/{username}", h.user)
	httpkit.Get(r, "/{username}/organizations", h.organizations)
	httpkit.Get(r, "/{username}/achievements", h.achievements)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /users/default Profile profileDefault
// @Summary Profile of the configured default user
// @Tags Profile
// @Produce json
// @Success 200 {object} domain.Profile "ok"
// @Router /users/default [get]
func (h *handlers) defaultUser(r *stdhttp.Request) (any, error) {
	return h.svc.DefaultUser(r.Context())
}

// swagger:route GET /users/{username} Profile profileUser
// @Summary Public profile merged with extension data
// @Tags Profile
// @Produce json
// @Param username path string true "GitHub username"
// @Success 200 {object} domain.Profile "ok"
// @Router /users/{username} [get]
func (h *handlers) user(r *stdhttp.Request) (any, error) {
	username, err := httpkit.Username(r)
	if err != nil {
		return nil, err
	}
	return h.svc.User(r.Context(), username)
}

// swagger:route GET /users/{username}/organizations Profile profileOrgs
// @Summary Public organization memberships
// @Tags Profile
// @Produce json
// @Param username path string true "GitHub username"
// @Success 200 {array} domain.Org "ok"
// @Router /users/{username}/organizations [get]
func (h *handlers) organizations(r *stdhttp.Request) (any, error) {
	username, err := httpkit.Username(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Organizations(r.Context(), username)
}

// swagger:route GET /users/{username}/achievements Profile profileAchievements
// @Summary Earned profile achievements
// @Tags Profile
// @Produce json
// @Param username path string true "GitHub username"
// @Success 200 {array} domain.Achievement "ok"
// @Router /users/{username}/achievements [get]
func (h *handlers) achievements(r *stdhttp.Request) (any, error) {
	username, err := httpkit.Username(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Achievements(r.Context(), username)
}
