package digest

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/pogo-library/internal/daterange"
	"github.com/pfrederiksen/pogo-library/internal/markup"
)

// rawSummaryLimit caps how much block text one record carries. Archived
// pages include navigation and boilerplate; the summary is a reading
// aid, not the page.
const rawSummaryLimit = 1200

// Record is one event row in the digest.
type Record struct {
	Source     string
	Month      string
	StartDate  string
	EndDate    string
	EventName  string
	Category   Category
	RawSummary string
	File       string
}

// Extract re-parses one archived page and returns a record per card
// block that carries a title. Blocks without a heading or titled element
// are navigation noise and are dropped; blocks whose date text does not
// resolve still yield a record with empty date fields.
func Extract(content []byte, sourceLabel, fileName string) []Record {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil
	}

	var records []Record
	for _, block := range markup.DigestRule.Blocks(doc) {
		title := markup.Heading(block, "h1", "h2", "h3")
		if title == "" {
			title = markup.Text(block.Find(`[class*=title]`).First())
		}
		if title == "" {
			continue
		}

		var start, end, month string
		if r := daterange.Resolve(markup.DateText(block)); r != nil {
			start = r.Start.Format(daterange.ISODate)
			end = r.End.Format(daterange.ISODate)
			month = r.Start.Format("2006-01")
		}

		records = append(records, Record{
			Source:     sourceLabel,
			Month:      month,
			StartDate:  start,
			EndDate:    end,
			EventName:  title,
			Category:   Classify(title),
			RawSummary: truncateRunes(markup.Text(block), rawSummaryLimit),
			File:       fileName,
		})
	}
	return records
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
