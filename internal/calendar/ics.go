// Package calendar exports digest rows as an iCalendar feed of all-day
// events, one VEVENT per dated row.
package calendar

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/pfrederiksen/pogo-library/internal/daterange"
	"github.com/pfrederiksen/pogo-library/internal/digest"
)

const productID = "-//POGO Digest//pogo-library//EN"

// Write serializes rows to w as a VCALENDAR. Rows without a resolved
// start date have nothing to place on a calendar and are skipped.
func Write(w io.Writer, rows []digest.Record) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	now := time.Now().UTC()
	for _, r := range rows {
		if r.StartDate == "" {
			continue
		}
		start, err := time.Parse(daterange.ISODate, r.StartDate)
		if err != nil {
			continue
		}
		end := start
		if r.EndDate != "" {
			if e, err := time.Parse(daterange.ISODate, r.EndDate); err == nil && !e.Before(start) {
				end = e
			}
		}

		event := cal.AddEvent(eventUID(r))
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(end)
		event.SetSummary(r.EventName)
		event.SetDescription(string(r.Category))
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}

// WriteFile writes the calendar for rows to path.
func WriteFile(path string, rows []digest.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating calendar file: %w", err)
	}
	if err := Write(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing calendar file: %w", err)
	}
	return nil
}

// eventUID derives a stable identifier from the fields that make a row
// unique, so re-exports update events instead of duplicating them.
func eventUID(r digest.Record) string {
	sum := sha1.Sum([]byte(r.EventName + "|" + r.StartDate))
	return fmt.Sprintf("%x@pogo-digest", sum)
}
