// Package service contains repository listing workflows
package service

import (
	"context"
	"sort"

	"gitfolio/internal/adapters/github"
	perr "gitfolio/internal/platform/errors"
	"gitfolio/internal/platform/logger"
	"gitfolio/internal/services/api/repos/domain"
)

// popularWindow is how many recently-updated repos the popularity cut
// considers; GitHub caps per_page at 100 anyway
const popularWindow = 100

// GitHub is the REST client subset the repos service consumes
type GitHub interface {
	ListRepos(ctx context.Context, login string, page, perPage int) ([]github.Repo, error)
	ListStarred(ctx context.Context, login string, page, perPage int) ([]github.Repo, error)
}

// Service defines the repos service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the repos service
type Svc struct {
	gh  GitHub
	log logger.Logger
}

// New constructs a repos service
func New(gh GitHub) *Svc {
	if gh == nil {
		panic("repos.Service requires a non nil GitHub client")
	}
	return &Svc{gh: gh, log: *logger.Named("repos")}
}

// List returns a page of the user's public repos, most recently updated
// first. Rate limits surface; other upstream failures degrade to empty.
func (s *Svc) List(ctx context.Context, username string, page, perPage int) ([]domain.Repo, error) {
	rows, err := s.gh.ListRepos(ctx, username, page, perPage)
	if err != nil {
		if perr.IsRateLimited(err) {
			return nil, err
		}
		s.log.Warn().Err(err).Str("username", username).Msg("repo listing failed, returning empty")
		return []domain.Repo{}, nil
	}
	return mapRepos(rows), nil
}

// Popular returns the user's top repos by stars, drawn from the most
// recently updated window
func (s *Svc) Popular(ctx context.Context, username string, limit int) ([]domain.Repo, error) {
	rows, err := s.gh.ListRepos(ctx, username, 1, popularWindow)
	if err != nil {
		if perr.IsRateLimited(err) {
			return nil, err
		}
		s.log.Warn().Err(err).Str("username", username).Msg("popular listing failed, returning empty")
		return []domain.Repo{}, nil
	}

	out := mapRepos(rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Stars > out[j].Stars })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Starred returns a page of repos the user has starred plus its size
func (s *Svc) Starred(ctx context.Context, username string, page, perPage int) (domain.StarredPage, error) {
	rows, err := s.gh.ListStarred(ctx, username, page, perPage)
	if err != nil {
		if perr.IsRateLimited(err) {
			return domain.StarredPage{}, err
		}
		s.log.Warn().Err(err).Str("username", username).Msg("starred listing failed, returning empty")
		return domain.StarredPage{Items: []domain.Repo{}}, nil
	}
	items := mapRepos(rows)
	return domain.StarredPage{Count: len(items), Items: items}, nil
}

func mapRepos(rows []github.Repo) []domain.Repo {
	out := make([]domain.Repo, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Repo{
			Name:        r.Name,
			FullName:    r.FullName,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.Stargazers,
			Forks:       r.ForksCount,
			Fork:        r.Fork,
			UpdatedAt:   r.UpdatedAt,
			URL:         r.HTMLURL,
		})
	}
	return out
}
