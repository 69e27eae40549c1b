package browser

import (
	"testing"

	"ghbrowse/internal/github"
)

func TestCursorReplaceSeedRange(t *testing.T) {
	c := NewCursor()
	for i := 0; i < 100; i++ {
		seed := c.ReplaceSeed()
		if seed < 1 || seed > maxRandomSeed {
			t.Fatalf("ReplaceSeed() = %d, outside [1,%d]", seed, maxRandomSeed)
		}
	}
}

func TestCursorAppendUsesStoredHint(t *testing.T) {
	c := NewCursor()
	c.Advance([]github.UserSummary{{Login: "a", ID: 40}, {Login: "b", ID: 41}})

	if got := c.AppendSeed(); got != 42 {
		t.Errorf("AppendSeed() = %d, want 42 (last id + 1)", got)
	}
}

func TestCursorAppendWithoutHintFallsBackToRandom(t *testing.T) {
	c := NewCursor()
	c.randInt = func(n int) int { return 6 }

	if got := c.AppendSeed(); got != 7 {
		t.Errorf("AppendSeed() = %d, want 7", got)
	}
}

func TestCursorEmptyResponseKeepsHint(t *testing.T) {
	c := NewCursor()
	c.Advance([]github.UserSummary{{Login: "a", ID: 100}})
	c.Advance(nil)

	if got := c.AppendSeed(); got != 101 {
		t.Errorf("AppendSeed() = %d, want 101 after empty advance", got)
	}
}

func TestCursorReplaceDiscardsHint(t *testing.T) {
	c := NewCursor()
	c.randInt = func(n int) int { return 0 }
	c.Advance([]github.UserSummary{{Login: "a", ID: 100}})

	c.ReplaceSeed()

	if got := c.AppendSeed(); got != 1 {
		t.Errorf("AppendSeed() = %d, want random fallback after replace", got)
	}
}
