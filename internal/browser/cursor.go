package browser

import (
	"math/rand"

	"ghbrowse/internal/github"
)

// maxRandomSeed bounds the random "since" seed used by replace loads.
const maxRandomSeed = 10000

// Cursor tracks the best-effort "since" hint for append loads. It is only a
// bias for where the next page starts; the endpoint gives no guarantees.
type Cursor struct {
	next    int
	set     bool
	randInt func(n int) int // swappable for tests
}

// NewCursor creates an unset cursor.
func NewCursor() *Cursor {
	return &Cursor{randInt: rand.Intn}
}

// ReplaceSeed returns a fresh random seed in [1, maxRandomSeed] and discards
// any stored cursor, as a replace load starts over.
func (c *Cursor) ReplaceSeed() int {
	c.set = false
	return c.randInt(maxRandomSeed) + 1
}

// AppendSeed returns the stored cursor when present, otherwise a fresh
// random seed.
func (c *Cursor) AppendSeed() int {
	if c.set {
		return c.next
	}
	return c.randInt(maxRandomSeed) + 1
}

// Advance stores last-seen id + 1 from a non-empty response. Empty responses
// leave the cursor untouched.
func (c *Cursor) Advance(users []github.UserSummary) {
	if len(users) == 0 {
		return
	}
	c.next = int(users[len(users)-1].ID) + 1
	c.set = true
}
