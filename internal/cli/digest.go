package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/pogo-library/internal/calendar"
	"github.com/pfrederiksen/pogo-library/internal/config"
	"github.com/pfrederiksen/pogo-library/internal/digest"
)

var (
	flagLib  string
	flagXlsx string
	flagICS  string
)

// NewDigestCmd creates the digest command
func NewDigestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pogo-digest",
		Short: "Create an events digest from a local library",
		Long: `Re-parses every archived page in a library folder produced by
pogo-library and writes an Excel workbook of categorized event rows,
optionally with an iCalendar export.`,
		RunE: runDigest,
	}

	cmd.Flags().StringVar(&flagLib, "lib", "", "Library folder produced by pogo-library (required)")
	cmd.Flags().StringVar(&flagXlsx, "out", "POGO_Digest.xlsx", "Output Excel path")
	cmd.Flags().StringVar(&flagICS, "ics", "", "Optional ICS path to export calendar")

	cmd.MarkFlagRequired("lib")

	return cmd
}

// runDigest is the main command logic
func runDigest(cmd *cobra.Command, args []string) error {
	rows, err := digest.FromLibrary(flagLib)
	if err != nil {
		return err
	}

	if err := digest.WriteWorkbook(rows, flagXlsx, config.DefaultNewsURL, config.DefaultEventsURL); err != nil {
		return err
	}
	fmt.Printf("Wrote %s with %d events\n", flagXlsx, len(rows))

	if flagICS != "" {
		if err := calendar.WriteFile(flagICS, rows); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (calendar)\n", flagICS)
	}
	return nil
}

// ExecuteDigest runs the digest CLI
func ExecuteDigest() {
	if err := NewDigestCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
