package module

import (
	"context"

	"gitfolio/internal/services/api/contributions/domain"
	contribsvc "gitfolio/internal/services/api/contributions/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return adaptContribPort{svc: m.svc} }

type adaptContribPort struct{ svc contribsvc.Service }

// Graph returns the render-ready calendar for a user
func (a adaptContribPort) Graph(ctx context.Context, username string) (domain.Graph, error) {
	return a.svc.Graph(ctx, username)
}

// Legend returns the color scale for a user's calendar
func (a adaptContribPort) Legend(ctx context.Context, username string) (domain.Legend, error) {
	return a.svc.Legend(ctx, username)
}
