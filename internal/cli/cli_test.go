package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/pogo-library/internal/library"
)

func TestResolveWindow(t *testing.T) {
	tests := []struct {
		name      string
		month     string
		start     string
		end       string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{
			name:      "month",
			month:     "2025-09",
			wantStart: "2025-09-01",
			wantEnd:   "2025-09-30",
		},
		{
			name:      "leap february",
			month:     "2024-02",
			wantStart: "2024-02-01",
			wantEnd:   "2024-02-29",
		},
		{
			name:      "explicit span",
			start:     "2025-09-05",
			end:       "2025-09-20",
			wantStart: "2025-09-05",
			wantEnd:   "2025-09-20",
		},
		{
			name:    "nothing given",
			wantErr: true,
		},
		{
			name:    "start without end",
			start:   "2025-09-05",
			wantErr: true,
		},
		{
			name:    "month and span together",
			month:   "2025-09",
			start:   "2025-09-05",
			end:     "2025-09-20",
			wantErr: true,
		},
		{
			name:    "bad month format",
			month:   "September 2025",
			wantErr: true,
		},
		{
			name:    "end before start",
			start:   "2025-09-20",
			end:     "2025-09-05",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveWindow(tt.month, tt.start, tt.end)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveWindow() error = %v", err)
			}
			const iso = "2006-01-02"
			if got.Start.Format(iso) != tt.wantStart || got.End.Format(iso) != tt.wantEnd {
				t.Errorf("window = %s..%s, want %s..%s",
					got.Start.Format(iso), got.End.Format(iso), tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func summaryIndex() *library.Index {
	return &library.Index{
		GeneratedAt: time.Date(2025, 9, 30, 12, 0, 0, 0, time.UTC).Format(time.RFC3339),
		Range:       library.IndexRange{Start: "2025-09-01", End: "2025-09-30"},
		Counts:      map[string]int{"niantic": 3, "leekduck": 7},
		Folders: map[string]string{
			"niantic":  "pogo_library/niantic",
			"leekduck": "pogo_library/leekduck",
		},
	}
}

func TestWriteBuildSummary_Text(t *testing.T) {
	var sb strings.Builder
	if err := WriteBuildSummary(&sb, summaryIndex(), FormatText); err != nil {
		t.Fatalf("WriteBuildSummary() error = %v", err)
	}
	out := sb.String()
	for _, want := range []string{
		"2025-09-01 to 2025-09-30",
		"niantic: 3 pages",
		"leekduck: 7 pages",
		"Total: 10 pages archived",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q in:\n%s", want, out)
		}
	}
}

func TestWriteBuildSummary_JSON(t *testing.T) {
	var sb strings.Builder
	if err := WriteBuildSummary(&sb, summaryIndex(), FormatJSON); err != nil {
		t.Fatalf("WriteBuildSummary() error = %v", err)
	}
	out := sb.String()
	for _, want := range []string{`"generated_at"`, `"range"`, `"counts"`, `"folders"`, `"2025-09-01"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestWriteBuildSummary_UnknownFormat(t *testing.T) {
	var sb strings.Builder
	if err := WriteBuildSummary(&sb, summaryIndex(), OutputFormat("yaml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
