// Package slug encodes arbitrary titles as filesystem-safe filename
// tokens.
package slug

import (
	"regexp"
	"strings"
)

// MaxLen is the default length cap for generated slugs.
const MaxLen = 120

// fallback is returned when normalization leaves nothing usable.
const fallback = "untitled"

var (
	whitespace = regexp.MustCompile(`\s+`)
	disallowed = regexp.MustCompile(`[^a-z0-9-]+`)
)

// Make encodes text with the default length cap.
func Make(text string) string {
	return MakeN(text, MaxLen)
}

// MakeN lowercases text, collapses whitespace runs to single hyphens,
// strips every character outside [a-z0-9-], and truncates to maxLen.
// The result is never empty. Distinct titles can still collide after
// truncation; callers accept that.
func MakeN(text string, maxLen int) string {
	t := strings.ToLower(strings.TrimSpace(text))
	t = whitespace.ReplaceAllString(t, "-")
	t = disallowed.ReplaceAllString(t, "")
	if maxLen > 0 && len(t) > maxLen {
		t = t[:maxLen]
	}
	if t == "" {
		return fallback
	}
	return t
}
