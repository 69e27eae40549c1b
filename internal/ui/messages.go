package ui

import (
	"ghbrowse/internal/config"
	"ghbrowse/internal/github"
)

// loadMode distinguishes a replace load from an append ("load more") load.
type loadMode int

const (
	modeReplace loadMode = iota
	modeAppend
)

// usersLoadedMsg carries a successful list fetch. gen ties the result to the
// fetch that produced it; stale generations are dropped.
type usersLoadedMsg struct {
	gen   int
	mode  loadMode
	users []github.UserSummary
}

type usersErrMsg struct {
	gen  int
	mode loadMode
	err  error
}

type detailLoadedMsg struct {
	login  string
	detail github.UserDetail
}

type detailErrMsg struct {
	login string
	err   error
}

// searchTickMsg fires when the debounce interval elapses; only the tick
// carrying the current sequence applies the filter term.
type searchTickMsg struct {
	seq int
}

type clearStatusMsg struct {
	id int
}

type actionResultMsg struct {
	status string
	err    error
}

// ConfigReloadedMsg is sent from outside the event loop when the config file
// changes on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}
