package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context, username string, page, perPage int) ([]Repo, error)
	Popular(ctx context.Context, username string, limit int) ([]Repo, error)
	Starred(ctx context.Context, username string, page, perPage int) (StarredPage, error)
}
