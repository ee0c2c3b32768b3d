package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Graph(ctx context.Context, username string) (Graph, error)
	Legend(ctx context.Context, username string) (Legend, error)
}
