package github

import "time"

// User is a partial GitHub user document with fields we use
type User struct {
	ID          int64     `json:"id"`
	Login       string    `json:"login"`
	Type        string    `json:"type"`
	Name        *string   `json:"name"`
	Company     *string   `json:"company"`
	Location    *string   `json:"location"`
	Email       *string   `json:"email"`
	Bio         *string   `json:"bio"`
	Blog        *string   `json:"blog"`
	Twitter     *string   `json:"twitter_username"`
	AvatarURL   string    `json:"avatar_url"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	HTMLURL     string    `json:"html_url"`
}

// Repo is a partial GitHub repository document with fields we use
type Repo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description *string   `json:"description"`
	Private     bool      `json:"private"`
	Fork        bool      `json:"fork"`
	Language    *string   `json:"language"`
	ForksCount  int       `json:"forks_count"`
	Stargazers  int       `json:"stargazers_count"`
	UpdatedAt   time.Time `json:"updated_at"`
	HTMLURL     string    `json:"html_url"`
}

// Org is a partial GitHub organization document
type Org struct {
	ID          int64   `json:"id"`
	Login       string  `json:"login"`
	AvatarURL   string  `json:"avatar_url"`
	Description *string `json:"description"`
}

// Event is a public timeline event with the typed payload subset we consume
type Event struct {
	ID        string       `json:"id"`
	Type      string       `json:"type"`
	Actor     EventActor   `json:"actor"`
	Repo      EventRepo    `json:"repo"`
	Payload   EventPayload `json:"payload"`
	CreatedAt time.Time    `json:"created_at"`
}

// EventActor identifies who triggered an event
type EventActor struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// EventRepo identifies the repository an event happened in
type EventRepo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// EventPayload carries the per-type fields we derive activity from.
// GitHub sends many more; anything not listed is ignored on decode.
type EventPayload struct {
	Action      string         `json:"action,omitempty"`
	Ref         string         `json:"ref,omitempty"`
	RefType     string         `json:"ref_type,omitempty"`
	Commits     []EventCommit  `json:"commits,omitempty"`
	PullRequest *EventPullReq  `json:"pull_request,omitempty"`
	Issue       *EventIssueRef `json:"issue,omitempty"`
}

// EventCommit is one commit inside a PushEvent payload
type EventCommit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

// EventPullReq is the pull request subset inside a PullRequestEvent payload
type EventPullReq struct {
	Title    string `json:"title"`
	HTMLURL  string `json:"html_url"`
	Comments int    `json:"comments"`
}

// EventIssueRef is the issue subset inside an IssuesEvent payload
type EventIssueRef struct {
	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
}
