// Package cli implements the command-line interface for pogo-library.
//
// The cli package provides the Cobra-based commands for the two stages:
// building a local archive of event announcements for a date window, and
// digesting an existing archive into spreadsheet and calendar exports.
// It coordinates the source, fetch, library, and digest packages.
package cli
