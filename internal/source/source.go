// Package source discovers candidate event pages from the two content
// sources.
//
// Each adapter turns a date window into a sequence of candidates — yet
// unfetched references to remote pages with provisional metadata. Network
// and parse failures degrade to fewer candidates, never to an error: a
// discovery call always returns whatever it could find.
package source

import (
	"context"

	"github.com/pfrederiksen/pogo-library/internal/daterange"
)

// Source names, also used as the per-source folder names in the library.
const (
	Niantic  = "niantic"
	Leekduck = "leekduck"
)

// Candidate is a discovered, not-yet-fetched reference to a remote page.
// Date is an ISO date and may be empty when nothing was resolvable.
type Candidate struct {
	Title  string `json:"title"`
	Date   string `json:"date"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

// Adapter discovers candidates for one source within a date window.
// maxPages bounds listing pagination for adapters that paginate.
type Adapter interface {
	Name() string
	Discover(ctx context.Context, window daterange.Range, maxPages int) []Candidate
}

// Dedup removes candidates with repeated URLs, keeping the first
// occurrence. Order is otherwise preserved, so callers control
// precedence by concatenation order.
func Dedup(candidates []Candidate) []Candidate {
	seen := make(map[string]bool, len(candidates))
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.URL] {
			continue
		}
		seen[c.URL] = true
		out = append(out, c)
	}
	return out
}
