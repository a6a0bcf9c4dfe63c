// Package htmltext turns an HTML document into the plain text the metrics
// engine scores. Extraction prefers the page's semantic main content: an
// <article> element first, then <main>, then the whole <body>.
package htmltext

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Extract returns the visible text of the document's main content area,
// with text nodes joined by single spaces and the result trimmed. An empty
// return with nil error means the page had no extractable text; the caller
// decides whether that is fatal.
func Extract(html []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	sel := doc.Find("article").First()
	if sel.Length() == 0 {
		sel = doc.Find("main").First()
	}
	if sel.Length() == 0 {
		sel = doc.Find("body").First()
	}
	if sel.Length() == 0 {
		return "", nil
	}

	// Joining per text node keeps adjacent block elements from running
	// their words together; Fields collapses internal whitespace.
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " "), nil
}

// collectText appends the whitespace-normalized content of every visible
// text node under n, skipping script and style elements.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// Meta is best-effort article metadata used only for logging.
type Meta struct {
	Title    string
	Byline   string
	SiteName string
}

// ArticleMeta runs the readability parser over the page for diagnostics.
// Failures are not interesting to callers; they just get an empty Meta.
func ArticleMeta(rawURL string, html []byte) Meta {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return Meta{}
	}
	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(html), parsedURL)
	if err != nil {
		return Meta{}
	}
	return Meta{
		Title:    article.Title,
		Byline:   article.Byline,
		SiteName: article.SiteName,
	}
}
