package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	User(ctx context.Context, username string) (Profile, error)
	DefaultUser(ctx context.Context) (Profile, error)
	Organizations(ctx context.Context, username string) ([]Org, error)
	Achievements(ctx context.Context, username string) ([]Achievement, error)
}
