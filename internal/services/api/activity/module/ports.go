package module

import (
	"context"

	"gitfolio/internal/services/api/activity/domain"
	activitysvc "gitfolio/internal/services/api/activity/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return adaptActivityPort{svc: m.svc} }

type adaptActivityPort struct{ svc activitysvc.Service }

// Stats returns event-derived contribution tallies
func (a adaptActivityPort) Stats(ctx context.Context, username string) (domain.Stats, error) {
	return a.svc.Stats(ctx, username)
}

// Overview summarizes the user's repository footprint
func (a adaptActivityPort) Overview(ctx context.Context, username string) (domain.Overview, error) {
	return a.svc.Overview(ctx, username)
}

// Timeline returns the recent activity feed
func (a adaptActivityPort) Timeline(ctx context.Context, username string) ([]domain.TimelineEntry, error) {
	return a.svc.Timeline(ctx, username)
}

// Events returns a passthrough page of public events
func (a adaptActivityPort) Events(ctx context.Context, username string, page, perPage int) ([]domain.Event, error) {
	return a.svc.Events(ctx, username, page, perPage)
}
