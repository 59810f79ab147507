package domain

import (
	"net/url"
	"strings"
)

// PageRecord is the structured result of extracting one URL.
// Records form a tree rooted at a seed URL; SubPages holds the
// same-origin pages discovered on this page.
type PageRecord struct {
	// URL is the absolute URL this record was extracted from.
	URL string `json:"url"`

	// Title is the page <title> text, empty if absent.
	Title string `json:"title,omitempty"`

	// Content is the concatenated paragraph text, one paragraph per line.
	// OCR-recovered image text is appended under a delimited section.
	Content string `json:"content,omitempty"`

	// Headings maps heading level ("h1".."h3") to the heading texts in
	// document order.
	Headings map[string][]string `json:"headings,omitempty"`

	// SubPages are same-origin pages reached from this page.
	// Only populated while the crawl depth budget remains.
	SubPages []*PageRecord `json:"sub_pages,omitempty"`

	// Error holds the fetch failure for error leaves. A record with a
	// non-empty Error has no extracted fields and no sub-pages.
	Error string `json:"error,omitempty"`
}

// IsError reports whether this record is an error leaf.
func (p *PageRecord) IsError() bool {
	return p.Error != ""
}

// Depth returns the height of the record tree. A leaf has depth 0.
func (p *PageRecord) Depth() int {
	max := -1
	for _, sub := range p.SubPages {
		if d := sub.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// Flatten returns the record and all descendants in pre-order.
func (p *PageRecord) Flatten() []*PageRecord {
	out := []*PageRecord{p}
	for _, sub := range p.SubPages {
		out = append(out, sub.Flatten()...)
	}
	return out
}

// Text aggregates the textual content of the whole tree, each page
// prefixed by its URL. This is the corpus handed to the retriever.
func (p *PageRecord) Text() string {
	var b strings.Builder
	for _, rec := range p.Flatten() {
		b.WriteString("URL: ")
		b.WriteString(rec.URL)
		b.WriteString("\n")
		if rec.IsError() {
			b.WriteString("Error: ")
			b.WriteString(rec.Error)
		} else {
			if rec.Title != "" {
				b.WriteString(rec.Title)
				b.WriteString("\n")
			}
			b.WriteString(rec.Content)
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

// NormalizeURL ensures a URL carries a scheme, assuming HTTPS when
// none is present. An http scheme is upgraded to https. Empty input
// returns an empty string.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") {
		return "https://" + strings.TrimPrefix(raw, "http://")
	}
	if !strings.HasPrefix(raw, "https://") {
		return "https://" + raw
	}
	return raw
}

// SameOrigin reports whether two URLs share a network authority (host).
// Unparseable URLs are never same-origin.
func SameOrigin(a, b string) bool {
	ua, err := url.Parse(a)
	if err != nil {
		return false
	}
	ub, err := url.Parse(b)
	if err != nil {
		return false
	}
	return ua.Host != "" && ua.Host == ub.Host
}

// Host extracts the network authority of a URL, empty on parse failure.
func Host(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}
