package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>News</title>
<link>https://news.example/news/</link>
<description>Event announcements</description>
<item>
  <title>Community Day: Solosis</title>
  <link>https://news.example/post/solosis</link>
  <pubDate>Wed, 10 Sep 2025 10:00:00 GMT</pubDate>
</item>
<item>
  <title>August leftovers</title>
  <link>https://news.example/post/old</link>
  <pubDate>Mon, 04 Aug 2025 10:00:00 GMT</pubDate>
</item>
<item>
  <title>Undated entry</title>
  <link>https://news.example/post/undated</link>
</item>
<item>
  <title>On the boundary</title>
  <link>https://news.example/post/boundary</link>
  <pubDate>Tue, 30 Sep 2025 23:00:00 GMT</pubDate>
</item>
<item>
  <title>October preview</title>
  <link>https://news.example/post/next</link>
  <pubDate>Wed, 01 Oct 2025 00:30:00 GMT</pubDate>
</item>
</channel>
</rss>`

const listingPage0 = `<html><body>
<article class="post">
  <a href="/post/solosis"><h2>Solosis Community Day (listing copy)</h2></a>
  <time>September 10, 2025</time>
</article>
<div class="card">
  <a href="/post/raid-hour">Raid Hour</a>
  <p>September 17, 2025</p>
</div>
<div class="card">
  <a href="/post/out-of-window"><h3>October Event</h3></a>
  <time>October 5, 2025</time>
</div>
<div class="card">
  <a href="/post/undatable"><h3>No date anywhere</h3></a>
</div>
</body></html>`

const listingPage1 = `<html><body>
<article class="article-item">
  <a href="/post/fashion-week"><h2>Fashion Week</h2></a>
  <time>September 26, 2025</time>
</article>
</body></html>`

func TestNewsFeed_Discover(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testRSS))
	}))
	defer srv.Close()

	fetcher := &fakeGetter{pages: map[string][]byte{
		"https://news.example/news/":        []byte(listingPage0),
		"https://news.example/news/?page=1": []byte(listingPage1),
		// page 2 is unavailable, which ends the listing phase.
	}}

	adapter := NewNewsFeed(srv.URL, "https://news.example/news/", fetcher)
	got := adapter.Discover(context.Background(), septemberWindow(), 5)

	want := map[string]Candidate{
		"https://news.example/post/solosis":      {Title: "Community Day: Solosis", Date: "2025-09-10"},
		"https://news.example/post/boundary":     {Title: "On the boundary", Date: "2025-09-30"},
		"https://news.example/post/raid-hour":    {Title: "Raid Hour", Date: "2025-09-17"},
		"https://news.example/post/fashion-week": {Title: "Fashion Week", Date: "2025-09-26"},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d: %+v", len(got), len(want), got)
	}
	for _, c := range got {
		w, ok := want[c.URL]
		if !ok {
			t.Errorf("unexpected candidate %q", c.URL)
			continue
		}
		if c.Title != w.Title {
			t.Errorf("title for %s = %q, want %q", c.URL, c.Title, w.Title)
		}
		if c.Date != w.Date {
			t.Errorf("date for %s = %q, want %q", c.URL, c.Date, w.Date)
		}
		if c.Source != Niantic {
			t.Errorf("source for %s = %q", c.URL, c.Source)
		}
	}
}

func TestNewsFeed_FeedWinsOverListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testRSS))
	}))
	defer srv.Close()

	fetcher := &fakeGetter{pages: map[string][]byte{
		"https://news.example/news/": []byte(listingPage0),
	}}
	adapter := NewNewsFeed(srv.URL, "https://news.example/news/", fetcher)

	got := adapter.Discover(context.Background(), septemberWindow(), 1)
	for _, c := range got {
		if c.URL == "https://news.example/post/solosis" && c.Title != "Community Day: Solosis" {
			t.Errorf("feed title should win, got %q", c.Title)
		}
	}
}

func TestNewsFeed_BothPhasesUnavailable(t *testing.T) {
	adapter := NewNewsFeed("http://127.0.0.1:1/rss", "http://127.0.0.1:1/news/", &fakeGetter{})

	got := adapter.Discover(context.Background(), septemberWindow(), 3)
	if len(got) != 0 {
		t.Errorf("expected no candidates when both phases fail, got %+v", got)
	}
}

func TestParseListing_TitleFallsBackToAnchor(t *testing.T) {
	page := []byte(`<div class="card"><a href="/post/x">Anchor Text Only</a><time>September 5, 2025</time></div>`)

	got, err := parseListing(page, "https://news.example/news/", septemberWindow())
	if err != nil {
		t.Fatalf("parseListing error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].Title != "Anchor Text Only" {
		t.Errorf("title = %q", got[0].Title)
	}
	if got[0].URL != "https://news.example/post/x" {
		t.Errorf("url = %q, want absolute resolution", got[0].URL)
	}
}

func TestParseListing_SkipsCardsWithoutAnchor(t *testing.T) {
	page := []byte(`<div class="card"><h2>All text, no link</h2><time>September 5, 2025</time></div>`)

	got, err := parseListing(page, "https://news.example/news/", septemberWindow())
	if err != nil {
		t.Fatalf("parseListing error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d candidates, want 0", len(got))
	}
}
