package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/pfrederiksen/pogo-library/internal/library"
)

// OutputFormat specifies the build summary format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteBuildSummary writes the library index in the specified format
func WriteBuildSummary(w io.Writer, index *library.Index, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, index)
	case FormatText:
		return writeText(w, index)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the index as indented JSON
func writeJSON(w io.Writer, index *library.Index) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(index)
}

// writeText outputs the index as human-readable text
func writeText(w io.Writer, index *library.Index) error {
	fmt.Fprintf(w, "Library window: %s to %s\n", index.Range.Start, index.Range.End)

	names := make([]string, 0, len(index.Counts))
	for name := range index.Counts {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 0
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %d pages -> %s\n", name, index.Counts[name], index.Folders[name])
		total += index.Counts[name]
	}
	fmt.Fprintf(w, "Total: %d pages archived\n", total)
	return nil
}
