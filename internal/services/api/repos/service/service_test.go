package service

import (
	"context"
	"errors"
	"testing"

	"gitfolio/internal/adapters/github"
	perr "gitfolio/internal/platform/errors"
)

type fakeGitHub struct {
	repos      []github.Repo
	reposErr   error
	starred    []github.Repo
	starredErr error

	gotPage    int
	gotPerPage int
}

func (f *fakeGitHub) ListRepos(_ context.Context, _ string, page, perPage int) ([]github.Repo, error) {
	f.gotPage, f.gotPerPage = page, perPage
	return f.repos, f.reposErr
}

func (f *fakeGitHub) ListStarred(_ context.Context, _ string, page, perPage int) ([]github.Repo, error) {
	f.gotPage, f.gotPerPage = page, perPage
	return f.starred, f.starredErr
}

func TestList_MapsAndPaginates(t *testing.T) {
	t.Parallel()

	gh := &fakeGitHub{repos: []github.Repo{
		{Name: "hello", FullName: "octocat/hello", Stargazers: 3, ForksCount: 1},
	}}
	s := New(gh)

	out, err := s.List(context.Background(), "octocat", 2, 50)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if gh.gotPage != 2 || gh.gotPerPage != 50 {
		t.Fatalf("pagination not forwarded: page=%d per_page=%d", gh.gotPage, gh.gotPerPage)
	}
	if len(out) != 1 || out[0].FullName != "octocat/hello" || out[0].Stars != 3 {
		t.Fatalf("repos not mapped: %+v", out)
	}
}

func TestList_RateLimitSurfaces(t *testing.T) {
	t.Parallel()

	s := New(&fakeGitHub{reposErr: perr.TooManyRequestsf("github rate limited")})
	_, err := s.List(context.Background(), "octocat", 1, 30)
	if !perr.IsRateLimited(err) {
		t.Fatalf("expected rate limit passthrough, got %v", err)
	}
}

func TestList_OtherFailuresDegrade(t *testing.T) {
	t.Parallel()

	s := New(&fakeGitHub{reposErr: errors.New("boom")})
	out, err := s.List(context.Background(), "octocat", 1, 30)
	if err != nil {
		t.Fatalf("non-ratelimit failure must degrade, got %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("want empty list, got %+v", out)
	}
}

func TestPopular_SortsByStarsAndCuts(t *testing.T) {
	t.Parallel()

	gh := &fakeGitHub{repos: []github.Repo{
		{Name: "a", Stargazers: 2},
		{Name: "b", Stargazers: 9},
		{Name: "c", Stargazers: 5},
	}}
	s := New(gh)

	out, err := s.Popular(context.Background(), "octocat", 2)
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if gh.gotPage != 1 || gh.gotPerPage != popularWindow {
		t.Fatalf("popular must scan the first window: page=%d per_page=%d", gh.gotPage, gh.gotPerPage)
	}
	if len(out) != 2 || out[0].Name != "b" || out[1].Name != "c" {
		t.Fatalf("star ordering wrong: %+v", out)
	}
}

func TestPopular_LimitLargerThanSet(t *testing.T) {
	t.Parallel()

	s := New(&fakeGitHub{repos: []github.Repo{{Name: "only", Stargazers: 1}}})
	out, err := s.Popular(context.Background(), "octocat", 10)
	if err != nil || len(out) != 1 {
		t.Fatalf("Popular: %+v err=%v", out, err)
	}
}

func TestStarred(t *testing.T) {
	t.Parallel()

	s := New(&fakeGitHub{starred: []github.Repo{{Name: "x"}, {Name: "y"}}})
	page, err := s.Starred(context.Background(), "octocat", 1, 30)
	if err != nil {
		t.Fatalf("Starred: %v", err)
	}
	if page.Count != 2 || len(page.Items) != 2 {
		t.Fatalf("starred page wrong: %+v", page)
	}

	deg := New(&fakeGitHub{starredErr: errors.New("boom")})
	page, err = deg.Starred(context.Background(), "octocat", 1, 30)
	if err != nil || page.Count != 0 || page.Items == nil {
		t.Fatalf("starred failure must degrade: %+v err=%v", page, err)
	}
}
