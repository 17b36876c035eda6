package digest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// categoryColumn spells out the taxonomy so the sheet is self-describing
// for analysts filling in the manual columns.
const categoryColumn = "Category (CD / CD Classic / Raid / Mega / Shadow Raid / Spotlight / Research / Other)"

// eventColumns is the Events sheet header. The columns after Category
// are left blank for manual research notes.
var eventColumns = []string{
	"Source",
	"Month",
	"Start Date",
	"End Date",
	"Event Name",
	categoryColumn,
	"Featured Pokémon",
	"Exclusive/Legacy Move (Yes/No)",
	"Move Name",
	"League/Use Impact (PvP/Raids)",
	"Bonuses (XP/Candy/Stardust/etc.)",
	"Shiny Released (Yes/No/Already in Game)",
	"Top Counters / Prep Notes",
	"Recommended Actions (e.g., Elite TM, Evolve Window)",
	"Source URL(s)",
	"Raw Summary",
	"File",
}

var sourceColumns = []string{
	"Month",
	"Niantic News URL",
	"Leek Duck URL",
	"Other source(s)",
	"Notes",
}

// WriteWorkbook writes rows to an Excel workbook at path with an Events
// sheet and a per-month Sources sheet pointing back at the feeds.
func WriteWorkbook(rows []Record, path, newsURL, eventsURL string) error {
	f := excelize.NewFile()
	defer f.Close()

	const eventsSheet = "Events"
	if err := f.SetSheetName("Sheet1", eventsSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if err := writeRow(f, eventsSheet, 1, toCells(eventColumns)); err != nil {
		return err
	}
	for i, r := range rows {
		cells := []interface{}{
			r.Source,
			r.Month,
			r.StartDate,
			r.EndDate,
			r.EventName,
			string(r.Category),
			"", "", "", "", "", "", "", "", "",
			r.RawSummary,
			r.File,
		}
		if err := writeRow(f, eventsSheet, i+2, cells); err != nil {
			return err
		}
	}

	const sourcesSheet = "Sources"
	if _, err := f.NewSheet(sourcesSheet); err != nil {
		return fmt.Errorf("adding sheet: %w", err)
	}
	if err := writeRow(f, sourcesSheet, 1, toCells(sourceColumns)); err != nil {
		return err
	}
	for i, month := range Months(rows) {
		cells := []interface{}{month, newsURL, eventsURL, "", ""}
		if err := writeRow(f, sourcesSheet, i+2, cells); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("addressing row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
