package ui

import (
	"testing"
	"time"

	"ghbrowse/internal/config"
)

func TestQuitStopsRunningProgram(t *testing.T) {
	p := NewProgram(NewModel(&fakeFetcher{}, config.Default()), ProgramOptions{Plain: true})

	done := make(chan error, 1)
	go func() { done <- p.Run() }()

	// Give the event loop a moment to start before signalling it
	time.Sleep(50 * time.Millisecond)
	p.Quit()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error after Quit: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
}
