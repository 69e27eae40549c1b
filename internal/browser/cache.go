package browser

import (
	"time"

	"ghbrowse/internal/github"
)

// DetailStatus is the lifecycle state of a cached detail entry.
type DetailStatus int

const (
	StatusLoading DetailStatus = iota
	StatusReady
	StatusError
)

// DetailEntry holds the extended fields for one login plus fetch metadata.
type DetailEntry struct {
	Detail    github.UserDetail
	FetchedAt time.Time
	Status    DetailStatus
}

// DetailCache stores detail entries keyed by login with a freshness window.
// It is not safe for concurrent use; access is confined to the Bubble Tea
// update loop.
type DetailCache struct {
	entries map[string]*DetailEntry
	ttl     time.Duration
	nowFn   func() time.Time
}

// NewDetailCache creates an empty cache with the given freshness window.
func NewDetailCache(ttl time.Duration) *DetailCache {
	return &DetailCache{
		entries: make(map[string]*DetailEntry),
		ttl:     ttl,
		nowFn:   time.Now,
	}
}

// Get returns the cached entry for the login, or nil on miss.
func (c *DetailCache) Get(login string) *DetailEntry {
	return c.entries[login]
}

// Start records that a fetch for login should begin. It returns false when no
// network call is needed: either a ready entry is still fresh, or a fetch for
// the same login is already in flight (the loading marker doubles as the
// in-flight guard). Otherwise the entry is marked loading and true is
// returned.
func (c *DetailCache) Start(login string) bool {
	if e, ok := c.entries[login]; ok {
		switch e.Status {
		case StatusLoading:
			return false
		case StatusReady:
			if c.nowFn().Sub(e.FetchedAt) < c.ttl {
				return false
			}
		}
	}

	c.entries[login] = &DetailEntry{Status: StatusLoading}
	return true
}

// Resolve stores a successful fetch result with a fresh timestamp.
func (c *DetailCache) Resolve(login string, detail github.UserDetail) {
	c.entries[login] = &DetailEntry{
		Detail:    detail,
		FetchedAt: c.nowFn(),
		Status:    StatusReady,
	}
}

// Fail marks the entry for login as errored. Other entries are untouched.
func (c *DetailCache) Fail(login string) {
	c.entries[login] = &DetailEntry{
		FetchedAt: c.nowFn(),
		Status:    StatusError,
	}
}
