// Package domain holds DTOs for activity http and service contracts
package domain

import "time"

// Stats are event-derived tallies. They come from a single recent-events
// page, so they are approximate by nature and documented as such.
type Stats struct {
	Commits      int `json:"commits" example:"41"`
	PullRequests int `json:"pull_requests" example:"6"`
	Issues       int `json:"issues" example:"3"`
	Reviews      int `json:"reviews" example:"5"`
	Total        int `json:"total" example:"55"`
}

// RepoRef is a lightweight repository pointer
type RepoRef struct {
	Name     string `json:"name" example:"hello-world"`
	FullName string `json:"full_name" example:"octocat/hello-world"`
	URL      string `json:"url" example:"https://github.com/octocat/hello-world"`
}

// Overview summarizes the user's repository footprint
type Overview struct {
	TotalRepos       int       `json:"total_repos" example:"27"`
	Recent           []RepoRef `json:"recent"`
	ContributedRepos int       `json:"contributed_repos" example:"4"`
}

// TimelineEntry is one row of the recent activity feed. Commits are
// grouped per day; pull requests and issues appear individually.
type TimelineEntry struct {
	Kind     string   `json:"kind" example:"commits"` // commits pull_request issue
	Date     string   `json:"date" example:"2026-08-27"`
	Title    string   `json:"title" example:"5 commits in 2 repositories"`
	Repos    []string `json:"repos,omitempty"`
	Commits  int      `json:"commits,omitempty" example:"5"`
	URL      string   `json:"url,omitempty"`
	Comments int      `json:"comments,omitempty" example:"3"`
}

// Event is a passthrough public event row
type Event struct {
	ID        string    `json:"id" example:"44251716732"`
	Type      string    `json:"type" example:"PushEvent"`
	Repo      string    `json:"repo" example:"octocat/hello-world"`
	Action    string    `json:"action,omitempty" example:"opened"`
	CreatedAt time.Time `json:"created_at"`
}
