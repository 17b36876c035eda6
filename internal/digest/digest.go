// Package digest turns an archived library back into tabular event
// data: every saved page is re-parsed into categorized, date-resolved
// rows ready for spreadsheet and calendar export.
package digest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pfrederiksen/pogo-library/internal/library"
	"github.com/pfrederiksen/pogo-library/internal/logger"
	"github.com/pfrederiksen/pogo-library/internal/source"
)

// sourceLabels maps on-disk source folders to the display names used in
// digest rows, in the order their rows appear before sorting.
var sourceLabels = []struct {
	folder string
	label  string
}{
	{source.Niantic, "Niantic"},
	{source.Leekduck, "Leek Duck"},
}

// FromLibrary reads every indexed page under libDir and extracts its
// event rows. Sources without an index and index entries whose file is
// missing are skipped; the digest covers whatever the library holds.
func FromLibrary(libDir string) ([]Record, error) {
	var rows []Record
	for _, src := range sourceLabels {
		dir := filepath.Join(libDir, src.folder)
		entries, err := library.LoadSourceIndex(dir)
		if err != nil {
			return nil, fmt.Errorf("loading %s index: %w", src.folder, err)
		}
		for _, e := range entries {
			if e.File == "" {
				continue
			}
			content, err := os.ReadFile(filepath.Join(dir, e.File))
			if err != nil {
				logger.Warn("skipping missing archive file", logger.Fields{"source": src.folder, "file": e.File}, err)
				continue
			}
			rows = append(rows, Extract(content, src.label, e.File)...)
		}
	}
	Sort(rows)
	return rows, nil
}

// Sort orders rows by start date then source name. Rows without a
// resolved start date sort last.
func Sort(rows []Record) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := sortKey(rows[i].StartDate), sortKey(rows[j].StartDate)
		if a != b {
			return a < b
		}
		return rows[i].Source < rows[j].Source
	})
}

func sortKey(startDate string) string {
	if startDate == "" {
		return "9999-99-99"
	}
	return startDate
}

// Months returns the distinct non-empty months across rows, sorted.
func Months(rows []Record) []string {
	seen := make(map[string]bool)
	var months []string
	for _, r := range rows {
		if r.Month == "" || seen[r.Month] {
			continue
		}
		seen[r.Month] = true
		months = append(months, r.Month)
	}
	sort.Strings(months)
	return months
}
