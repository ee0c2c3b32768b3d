// Package service contains profile workflows
package service

import (
	"context"

	"gitfolio/internal/adapters/assets"
	"gitfolio/internal/adapters/github"
	perr "gitfolio/internal/platform/errors"
	"gitfolio/internal/platform/logger"
	"gitfolio/internal/services/api/profile/domain"
)

// GitHub is the REST client subset the profile service consumes
type GitHub interface {
	UserByLogin(ctx context.Context, login string) (github.User, error)
	ListOrgs(ctx context.Context, login string) ([]github.Org, error)
}

// Extras supplies the file-backed profile documents
type Extras interface {
	Extension(username string) assets.Extension
	Achievements(username string) []assets.Achievement
}

// Service defines the profile service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the profile service
type Svc struct {
	gh          GitHub
	extras      Extras
	defaultUser string
	log         logger.Logger
}

// New constructs a profile service
func New(gh GitHub, extras Extras, defaultUser string) *Svc {
	if gh == nil {
		panic("profile.Service requires a non nil GitHub client")
	}
	if extras == nil {
		panic("profile.Service requires a non nil extras store")
	}
	return &Svc{gh: gh, extras: extras, defaultUser: defaultUser, log: *logger.Named("profile")}
}

// User returns the GitHub profile merged with the extension record
func (s *Svc) User(ctx context.Context, username string) (domain.Profile, error) {
	u, err := s.gh.UserByLogin(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}

	p := domain.Profile{
		ID:          u.ID,
		Login:       u.Login,
		Name:        u.Name,
		Company:     u.Company,
		Location:    u.Location,
		Email:       u.Email,
		Bio:         u.Bio,
		Blog:        u.Blog,
		Twitter:     u.Twitter,
		AvatarURL:   u.AvatarURL,
		Followers:   u.Followers,
		Following:   u.Following,
		PublicRepos: u.PublicRepos,
		PublicGists: u.PublicGists,
		CreatedAt:   u.CreatedAt,
		URL:         u.HTMLURL,
	}
	if ext := s.extras.Extension(username); ext.LinkedIn != "" {
		li := ext.LinkedIn
		p.LinkedIn = &li
	}
	return p, nil
}

// DefaultUser resolves the configured identity's profile
func (s *Svc) DefaultUser(ctx context.Context) (domain.Profile, error) {
	if s.defaultUser == "" {
		return domain.Profile{}, perr.Unavailablef("no default user configured")
	}
	return s.User(ctx, s.defaultUser)
}

// Organizations returns the user's public organizations. A failure here
// degrades to an empty list so the profile page still renders.
func (s *Svc) Organizations(ctx context.Context, username string) ([]domain.Org, error) {
	rows, err := s.gh.ListOrgs(ctx, username)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("org listing failed, returning empty")
		return []domain.Org{}, nil
	}
	out := make([]domain.Org, 0, len(rows))
	for _, o := range rows {
		out = append(out, domain.Org{
			Login:       o.Login,
			AvatarURL:   o.AvatarURL,
			Description: o.Description,
		})
	}
	return out, nil
}

// Achievements returns the user's file-backed achievements, empty when absent
func (s *Svc) Achievements(_ context.Context, username string) ([]domain.Achievement, error) {
	rows := s.extras.Achievements(username)
	out := make([]domain.Achievement, 0, len(rows))
	for _, a := range rows {
		out = append(out, domain.Achievement{
			ID:    a.ID,
			Name:  a.Name,
			Icon:  a.Icon,
			Count: a.Count,
		})
	}
	return out, nil
}
