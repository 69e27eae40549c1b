package browser

import (
	"strings"

	"ghbrowse/internal/github"
)

// Filter returns the subsequence of users whose login starts with term,
// case-insensitively, preserving order. The term is trimmed first; an
// empty term returns users unchanged.
func Filter(users []github.UserSummary, term string) []github.UserSummary {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return users
	}

	var out []github.UserSummary
	for _, u := range users {
		if strings.HasPrefix(strings.ToLower(u.Login), needle) {
			out = append(out, u)
		}
	}
	return out
}
