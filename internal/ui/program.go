package ui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"ghbrowse/internal/config"
)

// ProgramOptions contains options for creating a Program
type ProgramOptions struct {
	Plain bool // Use plain text output instead of TUI
}

// Program manages the TUI program
type Program struct {
	teaProgram *tea.Program
}

// NewProgram creates a new TUI program for the given model
func NewProgram(model Model, opts ProgramOptions) *Program {
	// Check if stdout is a terminal
	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))

	var teaProgram *tea.Program
	if opts.Plain || !isTerminal {
		// Plain mode or non-terminal mode - disable TUI rendering
		teaProgram = tea.NewProgram(model, tea.WithInput(nil), tea.WithoutRenderer())
	} else {
		teaProgram = tea.NewProgram(model, tea.WithAltScreen())
	}

	return &Program{teaProgram: teaProgram}
}

// Run starts the program and blocks until it quits
func (p *Program) Run() error {
	_, err := p.teaProgram.Run()
	return err
}

// ReloadConfig forwards a changed configuration into the running event loop
func (p *Program) ReloadConfig(cfg *config.Config) {
	p.teaProgram.Send(ConfigReloadedMsg{Config: cfg})
}

// Quit stops the running event loop from outside, used for signal-driven
// shutdown.
func (p *Program) Quit() {
	p.teaProgram.Quit()
}
