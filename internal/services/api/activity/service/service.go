// Package service derives activity summaries from public GitHub events
package service

import (
	"context"
	"fmt"
	"sort"

	"gitfolio/internal/adapters/github"
	"gitfolio/internal/core/calendar"
	"gitfolio/internal/platform/logger"
	"gitfolio/internal/services/api/activity/domain"
)

const (
	// eventWindow is the single recent-events page all derivations read;
	// GitHub only exposes ~90 days of public events anyway
	eventWindow = 100

	// repoWindow is the recently-updated repos page the overview reads
	repoWindow = 100

	// timelineCap bounds the feed length
	timelineCap = 20
)

// GitHub is the REST client subset the activity service consumes
type GitHub interface {
	ListPublicEvents(ctx context.Context, login string, page, perPage int) ([]github.Event, error)
	ListRepos(ctx context.Context, login string, page, perPage int) ([]github.Repo, error)
}

// Service defines the activity service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the activity service
type Svc struct {
	gh  GitHub
	log logger.Logger
}

// New constructs an activity service
func New(gh GitHub) *Svc {
	if gh == nil {
		panic("activity.Service requires a non nil GitHub client")
	}
	return &Svc{gh: gh, log: *logger.Named("activity")}
}

// Stats tallies commits, pull requests, issues, and reviews from the
// recent public events window
func (s *Svc) Stats(ctx context.Context, username string) (domain.Stats, error) {
	events, err := s.gh.ListPublicEvents(ctx, username, 1, eventWindow)
	if err != nil {
		return domain.Stats{}, err
	}

	var out domain.Stats
	for _, ev := range events {
		switch ev.Type {
		case "PushEvent":
			out.Commits += len(ev.Payload.Commits)
		case "PullRequestEvent":
			if ev.Payload.Action == "opened" || ev.Payload.Action == "closed" {
				out.PullRequests++
			}
		case "IssuesEvent":
			if ev.Payload.Action == "opened" {
				out.Issues++
			}
		case "PullRequestReviewEvent":
			out.Reviews++
		}
	}
	out.Total = out.Commits + out.PullRequests + out.Issues + out.Reviews
	return out, nil
}

// Overview summarizes the user's repository footprint from the most
// recently updated repos page
func (s *Svc) Overview(ctx context.Context, username string) (domain.Overview, error) {
	repos, err := s.gh.ListRepos(ctx, username, 1, repoWindow)
	if err != nil {
		return domain.Overview{}, err
	}

	out := domain.Overview{
		TotalRepos: len(repos),
		Recent:     []domain.RepoRef{},
	}
	for i, r := range repos {
		if i < 3 {
			out.Recent = append(out.Recent, domain.RepoRef{
				Name:     r.Name,
				FullName: r.FullName,
				URL:      r.HTMLURL,
			})
		}
		if r.Fork {
			out.ContributedRepos++
		}
	}
	return out, nil
}

// Timeline builds the recent activity feed: pushes collapsed into one
// per-day entry, opened pull requests and issues kept individually,
// newest first, capped
func (s *Svc) Timeline(ctx context.Context, username string) ([]domain.TimelineEntry, error) {
	events, err := s.gh.ListPublicEvents(ctx, username, 1, eventWindow)
	if err != nil {
		return nil, err
	}

	type dayPush struct {
		commits int
		repos   []string
		seen    map[string]bool
	}
	pushes := map[string]*dayPush{}
	entries := []domain.TimelineEntry{}

	for _, ev := range events {
		day := ev.CreatedAt.UTC().Format(calendar.DayFormat)
		switch ev.Type {
		case "PushEvent":
			p := pushes[day]
			if p == nil {
				p = &dayPush{seen: map[string]bool{}}
				pushes[day] = p
			}
			p.commits += len(ev.Payload.Commits)
			if !p.seen[ev.Repo.Name] {
				p.seen[ev.Repo.Name] = true
				p.repos = append(p.repos, ev.Repo.Name)
			}
		case "PullRequestEvent":
			if ev.Payload.Action == "opened" && ev.Payload.PullRequest != nil {
				entries = append(entries, domain.TimelineEntry{
					Kind:     "pull_request",
					Date:     day,
					Title:    fmt.Sprintf("Opened pull request %q", ev.Payload.PullRequest.Title),
					Repos:    []string{ev.Repo.Name},
					URL:      ev.Payload.PullRequest.HTMLURL,
					Comments: ev.Payload.PullRequest.Comments,
				})
			}
		case "IssuesEvent":
			if ev.Payload.Action == "opened" && ev.Payload.Issue != nil {
				entries = append(entries, domain.TimelineEntry{
					Kind:  "issue",
					Date:  day,
					Title: fmt.Sprintf("Opened issue %q", ev.Payload.Issue.Title),
					Repos: []string{ev.Repo.Name},
					URL:   ev.Payload.Issue.HTMLURL,
				})
			}
		}
	}

	for day, p := range pushes {
		if p.commits == 0 {
			continue
		}
		entries = append(entries, domain.TimelineEntry{
			Kind:    "commits",
			Date:    day,
			Title:   fmt.Sprintf("%s in %s", plural(p.commits, "commit"), plural(len(p.repos), "repository")),
			Repos:   p.repos,
			Commits: p.commits,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date > entries[j].Date })
	if len(entries) > timelineCap {
		entries = entries[:timelineCap]
	}
	return entries, nil
}

// Events returns a passthrough page of typed public events
func (s *Svc) Events(ctx context.Context, username string, page, perPage int) ([]domain.Event, error) {
	events, err := s.gh.ListPublicEvents(ctx, username, page, perPage)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		out = append(out, domain.Event{
			ID:        ev.ID,
			Type:      ev.Type,
			Repo:      ev.Repo.Name,
			Action:    ev.Payload.Action,
			CreatedAt: ev.CreatedAt,
		})
	}
	return out, nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	if noun == "repository" {
		return fmt.Sprintf("%d repositories", n)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
