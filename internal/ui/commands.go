package ui

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"ghbrowse/internal/github"
)

const statusTTL = 3 * time.Second

// loadUsersCmd runs a list fetch against an already-created context so the
// model can cancel it when a newer load supersedes this one.
func loadUsersCmd(ctx context.Context, fetcher Fetcher, gen int, mode loadMode, since, perPage int) tea.Cmd {
	return func() tea.Msg {
		users, err := fetcher.ListUsers(ctx, since, perPage)
		if err != nil {
			return usersErrMsg{gen: gen, mode: mode, err: err}
		}
		return usersLoadedMsg{gen: gen, mode: mode, users: users}
	}
}

// loadDetailCmd fetches extended fields for one login. Detail fetches are
// independent of each other and of list fetches; each gets its own context.
func loadDetailCmd(fetcher Fetcher, login string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		detail, err := fetcher.GetUser(ctx, login)
		if err != nil {
			return detailErrMsg{login: login, err: err}
		}
		return detailLoadedMsg{login: login, detail: *detail}
	}
}

func searchTickCmd(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq}
	})
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func openURLCmd(url string, openFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if err := openFn(url); err != nil {
			return actionResultMsg{err: fmt.Errorf("could not open %s: %w", url, err)}
		}
		return actionResultMsg{status: "Opened " + url}
	}
}

func copyLoginCmd(login string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if err := copyFn(login); err != nil {
			return actionResultMsg{err: fmt.Errorf("could not copy username: %w", err)}
		}
		return actionResultMsg{status: "Copied " + login}
	}
}

func openURLInBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Run()
}

func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}

	// Fall back to whatever clipboard command the system has
	commands := [][]string{
		{"pbcopy"},
		{"xclip", "-selection", "clipboard"},
		{"wl-copy"},
	}
	for _, c := range commands {
		if _, err := exec.LookPath(c[0]); err != nil {
			continue
		}
		cmd := exec.Command(c[0], c[1:]...)
		cmd.Stdin = bytes.NewBufferString(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return fmt.Errorf("no clipboard available")
}

// Fetcher is the slice of the GitHub client the UI depends on.
type Fetcher interface {
	ListUsers(ctx context.Context, since, perPage int) ([]github.UserSummary, error)
	GetUser(ctx context.Context, login string) (*github.UserDetail, error)
}
