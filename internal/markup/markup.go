// Package markup locates card-like blocks in event page HTML.
//
// Source pages carry no stable schema, so extraction is a best-effort
// class-pattern heuristic: elements whose tag and class attribute look
// like a post, card, or listing item. The rule is data, not code, so the
// discovery adapters and the digest extractor can widen or narrow the net
// without duplicating traversal logic.
package markup

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BlockRule describes which elements count as card blocks.
type BlockRule struct {
	Tags  []string
	Class *regexp.Regexp
}

// ListingRule matches the card blocks on news listing pages.
var ListingRule = BlockRule{
	Tags:  []string{"article", "div"},
	Class: regexp.MustCompile(`(?i)(post|article|card|list)`),
}

// DigestRule is the wider net used when re-parsing archived pages, which
// include hub and calendar markup the listing rule would miss.
var DigestRule = BlockRule{
	Tags:  []string{"article", "div", "li", "section"},
	Class: regexp.MustCompile(`(?i)(post|article|card|event|calendar|list)`),
}

// Blocks returns every element in doc matching the rule, in document
// order.
func (r BlockRule) Blocks(doc *goquery.Document) []*goquery.Selection {
	var out []*goquery.Selection
	doc.Find(strings.Join(r.Tags, ", ")).Each(func(_ int, sel *goquery.Selection) {
		class, ok := sel.Attr("class")
		if !ok {
			return
		}
		if r.Class.MatchString(class) {
			out = append(out, sel)
		}
	})
	return out
}

// Text returns sel's text content with whitespace runs collapsed to
// single spaces.
func Text(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// Heading returns the text of the first of the given tags found inside
// sel, or "" when none match.
func Heading(sel *goquery.Selection, tags ...string) string {
	h := sel.Find(strings.Join(tags, ", ")).First()
	if h.Length() == 0 {
		return ""
	}
	return Text(h)
}

// datePattern matches "<Month Day[-Month Day], Year>" anywhere in block
// text, with optional abbreviation periods and an optional second leg.
var datePattern = regexp.MustCompile(`[A-Za-z]{3,9}\.?\s+\d{1,2}(?:\s*[-\x{2013}\x{2014}\x{2212}]\s*[A-Za-z]{3,9}\.?\s+\d{1,2})?,?\s*\d{4}`)

// DateText finds the free-text date for a block: an explicit <time>
// marker wins, else a Month-Day-Year substring anywhere in the block
// text. Returns "" when neither is present.
func DateText(sel *goquery.Selection) string {
	t := sel.Find("time").First()
	if t.Length() > 0 {
		if s := Text(t); s != "" {
			return s
		}
	}
	return datePattern.FindString(Text(sel))
}
