package module

import (
	"context"

	"gitfolio/internal/services/api/repos/domain"
	repossvc "gitfolio/internal/services/api/repos/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return adaptReposPort{svc: m.svc} }

type adaptReposPort struct{ svc repossvc.Service }

// List returns a page of the user's public repos
func (a adaptReposPort) List(ctx context.Context, username string, page, perPage int) ([]domain.Repo, error) {
	return a.svc.List(ctx, username, page, perPage)
}

// Popular returns the user's top repos by stars
func (a adaptReposPort) Popular(ctx context.Context, username string, limit int) ([]domain.Repo, error) {
	return a.svc.Popular(ctx, username, limit)
}

// Starred returns a page of repos the user has starred
func (a adaptReposPort) Starred(ctx context.Context, username string, page, perPage int) (domain.StarredPage, error) {
	return a.svc.Starred(ctx, username, page, perPage)
}
