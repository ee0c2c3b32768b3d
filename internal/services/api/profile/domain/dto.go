// Package domain holds DTOs for profile http and service contracts
package domain

import "time"

// Profile is a GitHub user merged with the file-backed extension record.
// Pointer fields mirror GitHub's nullable profile attributes.
type Profile struct {
	ID          int64     `json:"id" example:"583231"`
	Login       string    `json:"login" example:"octocat"`
	Name        *string   `json:"name" example:"The Octocat"`
	Company     *string   `json:"company" example:"@github"`
	Location    *string   `json:"location" example:"San Francisco"`
	Email       *string   `json:"email"`
	Bio         *string   `json:"bio"`
	Blog        *string   `json:"blog" example:"https://github.blog"`
	Twitter     *string   `json:"twitter_username"`
	LinkedIn    *string   `json:"linkedin_username"`
	AvatarURL   string    `json:"avatar_url" example:"https://avatars.githubusercontent.com/u/583231"`
	Followers   int       `json:"followers" example:"9001"`
	Following   int       `json:"following" example:"9"`
	PublicRepos int       `json:"public_repos" example:"8"`
	PublicGists int       `json:"public_gists" example:"8"`
	CreatedAt   time.Time `json:"created_at"`
	URL         string    `json:"html_url" example:"https://github.com/octocat"`
}

// Org is one public organization membership
type Org struct {
	Login       string  `json:"login" example:"github"`
	AvatarURL   string  `json:"avatar_url"`
	Description *string `json:"description"`
}

// Achievement is one earned profile badge
type Achievement struct {
	ID    string `json:"id" example:"pair-extraordinaire"`
	Name  string `json:"name" example:"Pair Extraordinaire"`
	Icon  string `json:"icon" example:"pair-extraordinaire.png"`
	Count int    `json:"count,omitempty" example:"2"`
}
