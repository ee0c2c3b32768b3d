// Package domain holds DTOs for repos http and service contracts
package domain

import "time"

// Repo is a public repository summary
type Repo struct {
	Name        string    `json:"name" example:"hello-world"`
	FullName    string    `json:"full_name" example:"octocat/hello-world"`
	Description *string   `json:"description"`
	Language    *string   `json:"language" example:"Go"`
	Stars       int       `json:"stargazers_count" example:"42"`
	Forks       int       `json:"forks_count" example:"7"`
	Fork        bool      `json:"fork" example:"false"`
	UpdatedAt   time.Time `json:"updated_at"`
	URL         string    `json:"html_url" example:"https://github.com/octocat/hello-world"`
}

// StarredPage is one page of starred repositories plus its size
type StarredPage struct {
	Count int    `json:"count" example:"30"`
	Items []Repo `json:"items"`
}
