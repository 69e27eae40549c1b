// Package browser holds the view-independent browsing logic: input
// normalization, the pagination cursor, local filtering, and the per-login
// detail cache.
package browser

import (
	"math"
	"strconv"
	"strings"

	"ghbrowse/internal/config"
)

// NormalizeCount converts free-text count input into a page size in
// [config.MinPerPage, config.MaxPerPage]. Fractional values are floored.
// Empty, non-numeric, or zero input yields config.DefaultPerPage.
// Total for any string input.
func NormalizeCount(raw string) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return config.DefaultPerPage
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) {
		return config.DefaultPerPage
	}

	// Clamp before converting so infinities stay in range
	f = math.Floor(f)
	if f == 0 {
		return config.DefaultPerPage
	}
	if f < config.MinPerPage {
		return config.MinPerPage
	}
	if f > config.MaxPerPage {
		return config.MaxPerPage
	}
	return int(f)
}
