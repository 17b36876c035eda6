// Package library persists fetched pages and their JSON indexes under
// the archive root.
//
// The on-disk layout is a contract shared with the digest stage:
//
//	<root>/<source>/<YYYY-MM-DD>_<slug>.html
//	<root>/<source>/index.json
//	<root>/library_index.json
//
// Index files are always written via a temp-file-and-rename protocol, so
// no reader ever observes a partially written index and an interrupted
// run leaves the previous index intact.
package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Index file names within the archive.
const (
	SourceIndexFile  = "index.json"
	LibraryIndexFile = "library_index.json"
)

// Entry is one archived page in a per-source index. Entries are unique
// by URL within an index and immutable once written; a re-run replaces
// the whole index rather than mutating entries.
type Entry struct {
	Title  string `json:"title"`
	Date   string `json:"date"`
	URL    string `json:"url"`
	Source string `json:"source"`
	File   string `json:"file"`
	SHA256 string `json:"sha256"`
}

// IndexRange is the date window a library run covered.
type IndexRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Index is the top-level library summary, regenerated wholesale on every
// run.
type Index struct {
	GeneratedAt string            `json:"generated_at"`
	Range       IndexRange        `json:"range"`
	Counts      map[string]int    `json:"counts"`
	Folders     map[string]string `json:"folders"`
}

// LoadSourceIndex reads a per-source index.json from dir. A missing
// index returns an empty slice, not an error; the digest stage treats
// absent sources as empty.
func LoadSourceIndex(dir string) ([]Entry, error) {
	data, err := os.ReadFile(filepath.Join(dir, SourceIndexFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading index: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing index: %w", err)
	}
	return entries, nil
}
