// Package github has a minimal client for the subset of the GitHub REST API
// used by ghbrowse.
//
// The endpoints are documented at
// https://docs.github.com/en/rest/users/users?apiVersion=2022-11-28
package github

// UserSummary is a user object as returned by the /users list endpoint.
type UserSummary struct {
	Login     string `json:"login"`
	ID        int64  `json:"id"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
	ReposURL  string `json:"repos_url"`
}

// UserDetail is the extended user object from the /users/{login} endpoint.
type UserDetail struct {
	Login     string `json:"login"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Company   string `json:"company"`
}
