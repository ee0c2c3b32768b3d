package module

import (
	"context"

	"gitfolio/internal/services/api/profile/domain"
	profilesvc "gitfolio/internal/services/api/profile/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return adaptProfilePort{svc: m.svc} }

type adaptProfilePort struct{ svc profilesvc.Service }

// User returns the merged profile for a username
func (a adaptProfilePort) User(ctx context.Context, username string) (domain.Profile, error) {
	return a.svc.User(ctx, username)
}

// DefaultUser resolves the configured identity's profile
func (a adaptProfilePort) DefaultUser(ctx context.Context) (domain.Profile, error) {
	return a.svc.DefaultUser(ctx)
}

// Organizations returns the user's public organizations
func (a adaptProfilePort) Organizations(ctx context.Context, username string) ([]domain.Org, error) {
	return a.svc.Organizations(ctx, username)
}

// Achievements returns the user's earned achievements
func (a adaptProfilePort) Achievements(ctx context.Context, username string) ([]domain.Achievement, error) {
	return a.svc.Achievements(ctx, username)
}
