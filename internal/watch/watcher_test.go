package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestConfigWatcherCoalescesWriteBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ghbrowse.toml")
	if err := os.WriteFile(path, []byte("per_page = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	fired := 0
	cw, err := NewConfigWatcher(path, func() {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("NewConfigWatcher: %v", err)
	}
	defer cw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cw.Start(ctx)

	// A burst of writes well inside the debounce window
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte(fmt.Sprintf("per_page = %d\n", i+1)), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	time.Sleep(500 * time.Millisecond)

	mu.Lock()
	got := fired
	mu.Unlock()
	if got != 1 {
		t.Errorf("burst of writes fired %d reloads, want 1", got)
	}
}

func TestConfigWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ghbrowse.toml")
	if err := os.WriteFile(path, []byte("per_page = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	fired := 0
	cw, err := NewConfigWatcher(path, func() {
		mu.Lock()
		fired++
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("NewConfigWatcher: %v", err)
	}
	defer cw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cw.Start(ctx)

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	got := fired
	mu.Unlock()
	if got != 0 {
		t.Errorf("sibling file write fired %d reloads, want 0", got)
	}
}

func TestConfigWatcherMissingFile(t *testing.T) {
	if _, err := NewConfigWatcher(filepath.Join(t.TempDir(), "nope.toml"), func() {}); err == nil {
		t.Error("NewConfigWatcher should fail for a missing file")
	}
}
