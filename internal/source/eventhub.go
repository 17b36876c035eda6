package source

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/pogo-library/internal/daterange"
	"github.com/pfrederiksen/pogo-library/internal/fetch"
	"github.com/pfrederiksen/pogo-library/internal/logger"
	"github.com/pfrederiksen/pogo-library/internal/markup"
)

// hubPathMarkers identify same-site links worth archiving from a hub
// page. Anything else on the page (navigation, ads, socials) is ignored.
var hubPathMarkers = []string{
	"/event/", "/events/", "/calendar", "/raid", "/community", "/research", "/hour",
}

// EventHub discovers pages from the secondary source's hub pages. The
// hubs aggregate many events; linked pages carry the window start as a
// placeholder date because their true dates only become known at digest
// time, from the archived content itself.
type EventHub struct {
	hubURLs []string
	fetcher fetch.Getter
}

// NewEventHub creates the adapter for the secondary source.
func NewEventHub(hubURLs []string, fetcher fetch.Getter) *EventHub {
	return &EventHub{hubURLs: hubURLs, fetcher: fetcher}
}

// Name returns the source folder name.
func (h *EventHub) Name() string { return Leekduck }

// Discover returns the hub pages themselves plus every same-site link
// matching a hub path marker, deduplicated by URL across both hubs. An
// unavailable hub contributes only its own URL.
func (h *EventHub) Discover(ctx context.Context, window daterange.Range, _ int) []Candidate {
	pinned := window.Start.Format(daterange.ISODate)

	var out []Candidate
	for _, hub := range h.hubURLs {
		// The hub pages are archived too; their month cards matter to
		// the digest even though the pages themselves are undated.
		out = append(out, Candidate{
			Title:  hubTitle(hub),
			Date:   pinned,
			URL:    hub,
			Source: Leekduck,
		})

		body, err := h.fetcher.Get(ctx, hub)
		if err != nil {
			logger.Warn("hub page unavailable", logger.Fields{"url": hub}, err)
			continue
		}
		out = append(out, parseHub(body, hub, pinned)...)
	}
	return Dedup(out)
}

// hubTitle strips the scheme so hub pages get readable slugs like
// "leekduck.com/events/".
func hubTitle(raw string) string {
	if i := strings.Index(raw, "//"); i >= 0 {
		return raw[i+2:]
	}
	return raw
}

// parseHub collects candidate links from one hub page. Parse failures
// degrade to no candidates.
func parseHub(body []byte, hubURL, pinnedDate string) []Candidate {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		logger.Warn("hub page unparseable", logger.Fields{"url": hubURL}, err)
		return nil
	}
	base, err := url.Parse(hubURL)
	if err != nil {
		return nil
	}

	var out []Candidate
	doc.Find("a[href]").Each(func(_ int, anchor *goquery.Selection) {
		href, _ := anchor.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		if !strings.HasSuffix(resolved.Hostname(), base.Hostname()) {
			return
		}
		link := resolved.String()
		if !hasHubMarker(link) {
			return
		}

		title := markup.Text(anchor)
		if title == "" {
			title = link
		}
		out = append(out, Candidate{
			Title:  title,
			Date:   pinnedDate,
			URL:    link,
			Source: Leekduck,
		})
	})
	return out
}

func hasHubMarker(link string) bool {
	for _, marker := range hubPathMarkers {
		if strings.Contains(link, marker) {
			return true
		}
	}
	return false
}
