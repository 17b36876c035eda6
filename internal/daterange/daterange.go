// Package daterange resolves free-text event dates and date ranges.
//
// Source pages express dates in many shapes: "September 10, 2025",
// "Sept. 10-13, 2025", "March 1 - April 2, 2025", or machine timestamps
// inside a feed. Resolve turns any of those into an inclusive start/end
// pair and degrades to nil on anything unparseable. The same resolver is
// used by the discovery-time window filter and the digest-time extractor
// so the two stages can never disagree about what a date string means.
package daterange

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ISODate is the layout used for all dates persisted in index files.
const ISODate = "2006-01-02"

// Range is an inclusive span of calendar days. Start equals End for a
// single-day range.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the range, inclusive on both
// ends.
func (r Range) Contains(d time.Time) bool {
	day := Day(d)
	return !day.Before(Day(r.Start)) && !day.After(Day(r.End))
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var (
	// Unicode dash variants (en dash, em dash, minus sign) normalized
	// before matching.
	dashes = regexp.MustCompile(`[\x{2013}\x{2014}\x{2212}]`)

	// "<Month D>[-<Month D>], <Year>" with an optional abbreviation
	// period after the month, anywhere in the text.
	spanPattern = regexp.MustCompile(`([A-Za-z]{3,9})\.?\s+(\d{1,2})(?:\s*-\s*([A-Za-z]{3,9})\.?\s+(\d{1,2}))?,?\s*(\d{4})`)
)

// Resolve parses text into a Range. A structured "<Month D>[-<Month D>],
// <Year>" match wins; otherwise the whole string is tried as a single
// date. Returns nil when nothing resolvable is found. Resolve never
// panics, for any input.
func Resolve(text string) *Range {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	t := dashes.ReplaceAllString(text, "-")

	if m := spanPattern.FindStringSubmatch(t); m != nil {
		m1, d1, m2, d2, year := m[1], m[2], m[3], m[4], m[5]
		if m2 == "" {
			m2, d2 = m1, d1
		}
		start, ok1 := parseFuzzy(monthToken(m1) + " " + d1 + " " + year)
		end, ok2 := parseFuzzy(monthToken(m2) + " " + d2 + " " + year)
		if ok1 && ok2 {
			if end.Before(start) {
				// Cross-year spans carry no second year; collapse to
				// the start day rather than emit an inverted range.
				end = start
			}
			return &Range{Start: start, End: end}
		}
	}

	if d, ok := parseFuzzy(t); ok {
		return &Range{Start: d, End: d}
	}
	return nil
}

// parseFuzzy parses a date string leniently, truncated to the day.
// dateparse is known to panic on some exotic inputs, so the never-fails
// contract is enforced here.
func parseFuzzy(s string) (d time.Time, ok bool) {
	defer func() {
		if recover() != nil {
			d, ok = time.Time{}, false
		}
	}()
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return Day(t), true
}

var fullMonths = map[string]bool{
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
}

// monthToken canonicalizes a month word for parsing. Full names pass
// through; anything else ("Sept", "Octo") is cut to the three-letter
// abbreviation the parser accepts.
func monthToken(m string) string {
	if fullMonths[strings.ToLower(m)] || len(m) <= 3 {
		return m
	}
	return m[:3]
}

// MonthWindow returns the whole-month range for a "YYYY-MM" string.
func MonthWindow(s string) (Range, error) {
	start, err := time.Parse("2006-01", s)
	if err != nil {
		return Range{}, fmt.Errorf("invalid month %q (want YYYY-MM)", s)
	}
	start = Day(start)
	end := start.AddDate(0, 1, -1)
	return Range{Start: start, End: end}, nil
}

// Window builds a range from two "YYYY-MM-DD" strings and requires
// start <= end.
func Window(startStr, endStr string) (Range, error) {
	start, err := time.Parse(ISODate, startStr)
	if err != nil {
		return Range{}, fmt.Errorf("invalid start date %q (want YYYY-MM-DD)", startStr)
	}
	end, err := time.Parse(ISODate, endStr)
	if err != nil {
		return Range{}, fmt.Errorf("invalid end date %q (want YYYY-MM-DD)", endStr)
	}
	if start.After(end) {
		return Range{}, fmt.Errorf("start must be <= end")
	}
	return Range{Start: Day(start), End: Day(end)}, nil
}
