package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/pogo-library/internal/config"
	"github.com/pfrederiksen/pogo-library/internal/daterange"
	"github.com/pfrederiksen/pogo-library/internal/fetch"
	"github.com/pfrederiksen/pogo-library/internal/library"
	"github.com/pfrederiksen/pogo-library/internal/logger"
	"github.com/pfrederiksen/pogo-library/internal/source"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagMonth   string
	flagStart   string
	flagEnd     string
	flagOut     string
	flagMax     int
	flagPages   int
	flagFormat  string
	flagConfig  string
	flagVerbose bool
)

// NewBuildCmd creates the library build command
func NewBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pogo-library",
		Short: "Archive Pokémon GO event announcements for a date window",
		Long: `Discovers event announcements from the official news feed and the
Leek Duck event hubs, fetches each page, and saves it into a local
library folder with per-source JSON indexes.`,
		RunE: runBuild,
	}

	cmd.Flags().StringVar(&flagMonth, "month", "", "Target month as YYYY-MM")
	cmd.Flags().StringVar(&flagStart, "start", "", "Window start as YYYY-MM-DD (with --end)")
	cmd.Flags().StringVar(&flagEnd, "end", "", "Window end as YYYY-MM-DD (with --start)")
	cmd.Flags().StringVar(&flagOut, "out", "pogo_library", "Library output folder")
	cmd.Flags().IntVar(&flagMax, "max", 500, "Maximum pages to archive per source")
	cmd.Flags().IntVar(&flagPages, "pages", config.DefaultMaxPages, "Maximum listing pages to walk")
	cmd.Flags().StringVar(&flagFormat, "format", "json", "Summary format: text or json")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Optional YAML config file")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runBuild is the main command logic
func runBuild(cmd *cobra.Command, args []string) error {
	window, err := resolveWindow(flagMonth, flagStart, flagEnd)
	if err != nil {
		return err
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	pages := flagPages
	if !cmd.Flags().Changed("pages") {
		pages = cfg.Fetch.MaxPages
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
		logger.Debug("starting build", logger.Fields{
			"window_start": window.Start.Format(daterange.ISODate),
			"window_end":   window.End.Format(daterange.ISODate),
			"out":          flagOut,
		})
	}

	fetcher := fetch.New(cfg.Fetch.UserAgent, cfg.Fetch.Timeout(), cfg.Fetch.Delay())
	writer, err := library.NewWriter(flagOut, fetcher)
	if err != nil {
		return err
	}

	adapters := []source.Adapter{
		source.NewNewsFeed(cfg.Sources.FeedURL, cfg.Sources.NewsURL, fetcher),
		source.NewEventHub([]string{cfg.Sources.EventsURL, cfg.Sources.CalendarURL}, fetcher),
	}

	ctx := cmd.Context()
	counts := make(map[string]int, len(adapters))
	for _, adapter := range adapters {
		candidates := adapter.Discover(ctx, window, pages)
		if len(candidates) > flagMax {
			candidates = candidates[:flagMax]
		}
		entries, err := writer.Persist(ctx, candidates, adapter.Name())
		if err != nil {
			return fmt.Errorf("archiving %s: %w", adapter.Name(), err)
		}
		if err := writer.WriteSourceIndex(adapter.Name(), entries); err != nil {
			return fmt.Errorf("indexing %s: %w", adapter.Name(), err)
		}
		counts[adapter.Name()] = len(entries)
	}

	index, err := writer.WriteLibraryIndex(window, counts)
	if err != nil {
		return err
	}

	if flagVerbose {
		logger.Debug("build metrics", logger.Fields(logger.GetMetricsSnapshot()))
	}
	return WriteBuildSummary(os.Stdout, index, format)
}

// resolveWindow turns the window flags into an inclusive date range.
// Either --month or the --start/--end pair must be given, not both.
func resolveWindow(month, start, end string) (daterange.Range, error) {
	hasMonth := month != ""
	hasSpan := start != "" || end != ""

	switch {
	case hasMonth && hasSpan:
		return daterange.Range{}, fmt.Errorf("--month cannot be combined with --start/--end")
	case hasMonth:
		return daterange.MonthWindow(month)
	case start != "" && end != "":
		return daterange.Window(start, end)
	default:
		return daterange.Range{}, fmt.Errorf("provide either --month YYYY-MM or --start/--end YYYY-MM-DD")
	}
}

// ExecuteBuild runs the build CLI
func ExecuteBuild() {
	if err := NewBuildCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
