package service

import (
	"context"
	"errors"
	"testing"

	"gitfolio/internal/adapters/assets"
	"gitfolio/internal/adapters/github"
	perr "gitfolio/internal/platform/errors"
)

type fakeGitHub struct {
	user    github.User
	userErr error
	orgs    []github.Org
	orgsErr error
}

func (f fakeGitHub) UserByLogin(context.Context, string) (github.User, error) {
	return f.user, f.userErr
}

func (f fakeGitHub) ListOrgs(context.Context, string) ([]github.Org, error) {
	return f.orgs, f.orgsErr
}

type fakeExtras struct {
	ext          assets.Extension
	achievements []assets.Achievement
}

func (f fakeExtras) Extension(string) assets.Extension        { return f.ext }
func (f fakeExtras) Achievements(string) []assets.Achievement { return f.achievements }

func strptr(s string) *string { return &s }

func TestUser_MergesExtension(t *testing.T) {
	t.Parallel()

	s := New(
		fakeGitHub{user: github.User{ID: 583231, Login: "octocat", Name: strptr("The Octocat"), Followers: 9001}},
		fakeExtras{ext: assets.Extension{LinkedIn: "the-octocat"}},
		"",
	)

	p, err := s.User(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	if p.Login != "octocat" || p.Followers != 9001 {
		t.Fatalf("profile not mapped: %+v", p)
	}
	if p.LinkedIn == nil || *p.LinkedIn != "the-octocat" {
		t.Fatalf("linkedin not merged: %v", p.LinkedIn)
	}
}

func TestUser_LinkedInStaysNullWithoutExtension(t *testing.T) {
	t.Parallel()

	s := New(fakeGitHub{user: github.User{Login: "ghost"}}, fakeExtras{}, "")
	p, err := s.User(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	if p.LinkedIn != nil {
		t.Fatalf("linkedin should stay null, got %q", *p.LinkedIn)
	}
}

func TestUser_PropagatesUpstreamError(t *testing.T) {
	t.Parallel()

	s := New(fakeGitHub{userErr: perr.TooManyRequestsf("github rate limited")}, fakeExtras{}, "")
	_, err := s.User(context.Background(), "octocat")
	if !perr.IsRateLimited(err) {
		t.Fatalf("expected rate-limit passthrough, got %v", err)
	}
}

func TestDefaultUser(t *testing.T) {
	t.Parallel()

	s := New(fakeGitHub{user: github.User{Login: "octocat"}}, fakeExtras{}, "octocat")
	p, err := s.DefaultUser(context.Background())
	if err != nil || p.Login != "octocat" {
		t.Fatalf("DefaultUser: %+v err=%v", p, err)
	}

	unset := New(fakeGitHub{}, fakeExtras{}, "")
	if _, err := unset.DefaultUser(context.Background()); err == nil {
		t.Fatal("expected error when no default user is configured")
	}
}

func TestOrganizations_DegradesToEmpty(t *testing.T) {
	t.Parallel()

	s := New(fakeGitHub{orgsErr: errors.New("boom")}, fakeExtras{}, "")
	orgs, err := s.Organizations(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("org failure must degrade, got %v", err)
	}
	if orgs == nil || len(orgs) != 0 {
		t.Fatalf("want empty list, got %+v", orgs)
	}
}

func TestOrganizations_Maps(t *testing.T) {
	t.Parallel()

	s := New(fakeGitHub{orgs: []github.Org{{Login: "github", AvatarURL: "a", Description: strptr("d")}}}, fakeExtras{}, "")
	orgs, err := s.Organizations(context.Background(), "octocat")
	if err != nil || len(orgs) != 1 {
		t.Fatalf("Organizations: %+v err=%v", orgs, err)
	}
	if orgs[0].Login != "github" || orgs[0].Description == nil || *orgs[0].Description != "d" {
		t.Fatalf("org not mapped: %+v", orgs[0])
	}
}

func TestAchievements(t *testing.T) {
	t.Parallel()

	s := New(fakeGitHub{}, fakeExtras{achievements: []assets.Achievement{
		{ID: "pair-extraordinaire", Name: "Pair Extraordinaire", Icon: "p.png", Count: 2},
	}}, "")

	got, err := s.Achievements(context.Background(), "octocat")
	if err != nil || len(got) != 1 || got[0].Count != 2 {
		t.Fatalf("Achievements: %+v err=%v", got, err)
	}

	bare := New(fakeGitHub{}, fakeExtras{}, "")
	empty, err := bare.Achievements(context.Background(), "ghost")
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("missing achievements should be an empty list, got %+v err=%v", empty, err)
	}
}
