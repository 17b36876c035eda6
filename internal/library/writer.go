package library

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pfrederiksen/pogo-library/internal/daterange"
	"github.com/pfrederiksen/pogo-library/internal/fetch"
	"github.com/pfrederiksen/pogo-library/internal/fingerprint"
	"github.com/pfrederiksen/pogo-library/internal/logger"
	"github.com/pfrederiksen/pogo-library/internal/slug"
	"github.com/pfrederiksen/pogo-library/internal/source"
)

// Writer archives candidate pages under per-source folders and maintains
// the JSON indexes.
type Writer struct {
	root    string
	fetcher fetch.Getter
}

// NewWriter creates a Writer rooted at root, creating the directory if
// needed.
func NewWriter(root string, fetcher fetch.Getter) (*Writer, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating library root: %w", err)
	}
	return &Writer{root: root, fetcher: fetcher}, nil
}

// Root returns the archive root directory.
func (w *Writer) Root() string { return w.root }

// sourceDir returns the folder for one source, creating it if needed.
func (w *Writer) sourceDir(sourceName string) (string, error) {
	dir := filepath.Join(w.root, sourceName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating source folder: %w", err)
	}
	return dir, nil
}

// Persist fetches each candidate in input order and writes its content
// under the source folder as <date-or-today>_<slug>.html. Candidates
// whose fetch fails are skipped and leave no trace; the returned entries
// cover only successful saves.
func (w *Writer) Persist(ctx context.Context, candidates []source.Candidate, sourceName string) ([]Entry, error) {
	dir, err := w.sourceDir(sourceName)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(candidates))
	for _, c := range candidates {
		body, err := w.fetcher.Get(ctx, c.URL)
		if err != nil {
			logger.Warn("skipping candidate", logger.Fields{"url": c.URL, "source": sourceName}, err)
			logger.IncrCounter("library.skipped")
			continue
		}

		date := c.Date
		if date == "" {
			date = time.Now().UTC().Format(daterange.ISODate)
		}
		name := c.Title
		if name == "" {
			name = c.URL
		}
		file := date + "_" + slug.Make(name) + ".html"

		if err := os.WriteFile(filepath.Join(dir, file), body, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", file, err)
		}

		entries = append(entries, Entry{
			Title:  c.Title,
			Date:   c.Date,
			URL:    c.URL,
			Source: c.Source,
			File:   file,
			SHA256: fingerprint.Sum(body),
		})
		logger.IncrCounter("library.saved")
	}
	return entries, nil
}

// WriteSourceIndex atomically rewrites a source folder's index.json.
func (w *Writer) WriteSourceIndex(sourceName string, entries []Entry) error {
	dir, err := w.sourceDir(sourceName)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	return writeFileAtomic(filepath.Join(dir, SourceIndexFile), data)
}

// WriteLibraryIndex atomically rewrites the top-level summary and
// returns it for reporting.
func (w *Writer) WriteLibraryIndex(window daterange.Range, counts map[string]int) (*Index, error) {
	folders := make(map[string]string, len(counts))
	for name := range counts {
		folders[name] = filepath.Join(w.root, name)
	}

	idx := &Index{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Range: IndexRange{
			Start: window.Start.Format(daterange.ISODate),
			End:   window.End.Format(daterange.ISODate),
		},
		Counts:  counts,
		Folders: folders,
	}

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding library index: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(w.root, LibraryIndexFile), data); err != nil {
		return nil, err
	}
	return idx, nil
}

// writeFileAtomic writes data to path via a temporary sibling file and
// an atomic rename. A crash anywhere before the rename leaves a previous
// file at path intact.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".index-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	success = true
	return nil
}
