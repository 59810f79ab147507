package fetch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

// headingLevels are the heading tags captured into the record.
var headingLevels = []string{"h1", "h2", "h3"}

// extractRecord parses an HTML document into a page record. Paragraph
// text is scoped to <article> when present, then <body>, then the
// whole document, so boilerplate outside the main content is skipped
// when the page marks it up properly.
func extractRecord(pageURL string, doc *goquery.Document) *domain.PageRecord {
	rec := &domain.PageRecord{
		URL:   pageURL,
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	headings := make(map[string][]string)
	for _, level := range headingLevels {
		doc.Find(level).Each(func(_ int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" {
				headings[level] = append(headings[level], text)
			}
		})
	}
	if len(headings) > 0 {
		rec.Headings = headings
	}

	rec.Content = extractParagraphs(doc)
	return rec
}

// extractParagraphs collects paragraph text, one paragraph per line.
func extractParagraphs(doc *goquery.Document) string {
	scope := doc.Find("article").First()
	if scope.Length() == 0 {
		scope = doc.Find("body").First()
	}

	var paragraphs []string
	collect := func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}

	if scope.Length() > 0 {
		scope.Find("p").Each(collect)
	} else {
		doc.Find("p").Each(collect)
	}
	return strings.Join(paragraphs, "\n")
}
