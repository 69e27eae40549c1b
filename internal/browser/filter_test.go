package browser

import (
	"testing"

	"ghbrowse/internal/github"
)

func usersFromLogins(logins ...string) []github.UserSummary {
	users := make([]github.UserSummary, len(logins))
	for i, l := range logins {
		users[i] = github.UserSummary{Login: l, ID: int64(i + 1)}
	}
	return users
}

func logins(users []github.UserSummary) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Login
	}
	return out
}

func TestFilter(t *testing.T) {
	base := usersFromLogins("octocat", "torvalds", "mojombo")

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "prefix", term: "to", want: []string{"torvalds"}},
		{name: "interior occurrence does not match", term: "cat", want: nil},
		{name: "empty returns all in order", term: "", want: []string{"octocat", "torvalds", "mojombo"}},
		{name: "whitespace trimmed to empty", term: "   ", want: []string{"octocat", "torvalds", "mojombo"}},
		{name: "case insensitive", term: "TORV", want: []string{"torvalds"}},
		{name: "trimmed term", term: " mo ", want: []string{"mojombo"}},
		{name: "single letter", term: "o", want: []string{"octocat"}},
		{name: "no match", term: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logins(Filter(base, tt.term))
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) = %v, want %v", tt.term, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Filter(%q)[%d] = %q, want %q", tt.term, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	base := usersFromLogins("octocat", "torvalds", "mojombo")
	Filter(base, "to")
	if base[0].Login != "octocat" || base[1].Login != "torvalds" || base[2].Login != "mojombo" {
		t.Error("Filter mutated its input")
	}
}
