package source

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/pfrederiksen/pogo-library/internal/daterange"
	"github.com/pfrederiksen/pogo-library/internal/fetch"
	"github.com/pfrederiksen/pogo-library/internal/logger"
	"github.com/pfrederiksen/pogo-library/internal/markup"
)

// NewsFeed discovers posts from the primary news source by merging a
// syndication feed with heuristic extraction from the paginated listing.
// Feed entries come first in the merged result, so the feed's title and
// date win when both phases find the same URL.
type NewsFeed struct {
	feedURL    string
	listingURL string
	fetcher    fetch.Getter
	parser     *gofeed.Parser
}

// NewNewsFeed creates the adapter for the primary source.
func NewNewsFeed(feedURL, listingURL string, fetcher fetch.Getter) *NewsFeed {
	return &NewsFeed{
		feedURL:    feedURL,
		listingURL: listingURL,
		fetcher:    fetcher,
		parser:     gofeed.NewParser(),
	}
}

// Name returns the source folder name.
func (n *NewsFeed) Name() string { return Niantic }

// Discover runs the feed phase and the listing phase, then deduplicates
// by URL with feed entries taking precedence.
func (n *NewsFeed) Discover(ctx context.Context, window daterange.Range, maxPages int) []Candidate {
	items := n.fromFeed(ctx, window)
	items = append(items, n.fromListing(ctx, window, maxPages)...)
	return Dedup(items)
}

// fromFeed parses the syndication feed and keeps entries whose publish
// date falls inside the window. Entries with no resolvable date are
// dropped silently.
func (n *NewsFeed) fromFeed(ctx context.Context, window daterange.Range) []Candidate {
	feed, err := n.parser.ParseURLWithContext(n.feedURL, ctx)
	if err != nil {
		logger.Warn("feed unavailable", logger.Fields{"url": n.feedURL}, err)
		return nil
	}

	var out []Candidate
	for _, item := range feed.Items {
		var pub time.Time
		switch {
		case item.PublishedParsed != nil:
			pub = *item.PublishedParsed
		case item.UpdatedParsed != nil:
			pub = *item.UpdatedParsed
		default:
			raw := item.Published
			if raw == "" {
				raw = item.Updated
			}
			r := daterange.Resolve(raw)
			if r == nil {
				continue
			}
			pub = r.Start
		}
		if !window.Contains(pub) {
			continue
		}
		out = append(out, Candidate{
			Title:  strings.TrimSpace(item.Title),
			Date:   daterange.Day(pub).Format(daterange.ISODate),
			URL:    strings.TrimSpace(item.Link),
			Source: Niantic,
		})
	}
	return out
}

// fromListing paginates the news listing (page 0 is the base URL, page n
// appends ?page=n) and extracts dated card candidates. The phase stops at
// the first unavailable or unparseable page and returns what it has.
func (n *NewsFeed) fromListing(ctx context.Context, window daterange.Range, maxPages int) []Candidate {
	var out []Candidate
	for page := 0; page < maxPages; page++ {
		pageURL := n.listingURL
		if page > 0 {
			pageURL = fmt.Sprintf("%s?page=%d", n.listingURL, page)
		}
		body, err := n.fetcher.Get(ctx, pageURL)
		if err != nil {
			logger.Warn("listing page unavailable", logger.Fields{"url": pageURL}, err)
			return out
		}
		items, err := parseListing(body, pageURL, window)
		if err != nil {
			logger.Warn("listing page unparseable", logger.Fields{"url": pageURL}, err)
			return out
		}
		out = append(out, items...)
	}
	return out
}

// parseListing extracts dated card candidates from one listing page.
// Cards without a link or a resolvable in-window date are skipped.
func parseListing(body []byte, pageURL string, window daterange.Range) ([]Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parsing page URL: %w", err)
	}

	var out []Candidate
	for _, block := range markup.ListingRule.Blocks(doc) {
		anchor := block.Find("a[href]").First()
		if anchor.Length() == 0 {
			continue
		}
		href, _ := anchor.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			continue
		}
		link := base.ResolveReference(ref).String()

		title := markup.Heading(block, "h2", "h3")
		if title == "" {
			title = markup.Text(anchor)
		}

		r := daterange.Resolve(markup.DateText(block))
		if r == nil {
			continue
		}
		if !window.Contains(r.Start) {
			continue
		}

		out = append(out, Candidate{
			Title:  title,
			Date:   r.Start.Format(daterange.ISODate),
			URL:    link,
			Source: Niantic,
		})
	}
	return out, nil
}
