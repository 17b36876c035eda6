package source

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pfrederiksen/pogo-library/internal/daterange"
)

// fakeGetter serves canned bodies by URL and fails everything else.
type fakeGetter struct {
	pages map[string][]byte
}

func (f *fakeGetter) Get(_ context.Context, url string) ([]byte, error) {
	if body, ok := f.pages[url]; ok {
		return body, nil
	}
	return nil, fmt.Errorf("unavailable: %s", url)
}

func septemberWindow() daterange.Range {
	return daterange.Range{
		Start: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestDedup(t *testing.T) {
	in := []Candidate{
		{Title: "first", URL: "https://a.example/1"},
		{Title: "second", URL: "https://a.example/2"},
		{Title: "repeat of first", URL: "https://a.example/1"},
		{Title: "third", URL: "https://a.example/3"},
		{Title: "repeat of second", URL: "https://a.example/2"},
	}

	got := Dedup(in)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Title != "first" || got[1].Title != "second" || got[2].Title != "third" {
		t.Errorf("unexpected order or precedence: %+v", got)
	}
}

func TestDedup_Empty(t *testing.T) {
	if got := Dedup(nil); len(got) != 0 {
		t.Errorf("Dedup(nil) = %v, want empty", got)
	}
}
