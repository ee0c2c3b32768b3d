package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Stats(ctx context.Context, username string) (Stats, error)
	Overview(ctx context.Context, username string) (Overview, error)
	Timeline(ctx context.Context, username string) ([]TimelineEntry, error)
	Events(ctx context.Context, username string, page, perPage int) ([]Event, error)
}
