// Package chunker provides a paragraph-aware text splitter.
package chunker

import "strings"

// DefaultBudget is the default maximum chunk size in characters.
const DefaultBudget = 2000

// Splitter splits large text into bounded chunks at paragraph
// boundaries. Splitting is lossless: concatenating the produced chunks
// in order reproduces the input exactly.
type Splitter struct {
	budget int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithBudget sets the chunk budget in characters.
func WithBudget(budget int) Option {
	return func(s *Splitter) {
		if budget > 0 {
			s.budget = budget
		}
	}
}

// New creates a new splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{budget: DefaultBudget}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Budget returns the configured chunk budget.
func (s *Splitter) Budget() int {
	return s.budget
}

// Split breaks text into chunks of at most the budget.
//
// Paragraphs (blank-line separated, delimiters kept with the preceding
// paragraph) accumulate into a running chunk until the next paragraph
// would exceed the budget. A single paragraph over budget is
// hard-split, preferring the nearest newline within the budget window
// to avoid mid-sentence cuts, falling back to a cut at the budget.
func (s *Splitter) Split(text string) []string {
	if text == "" {
		return nil
	}

	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}

	for _, para := range splitParagraphs(text) {
		if current.Len() > 0 && current.Len()+len(para) > s.budget {
			flush()
		}
		if len(para) > s.budget {
			flush()
			for _, piece := range s.hardSplit(para) {
				chunks = append(chunks, piece)
			}
			continue
		}
		current.WriteString(para)
	}
	flush()

	return chunks
}

// hardSplit cuts an oversized paragraph into budget-sized pieces,
// preferring the nearest newline within each budget window.
func (s *Splitter) hardSplit(para string) []string {
	var pieces []string
	for len(para) > s.budget {
		cut := strings.LastIndexByte(para[:s.budget], '\n')
		if cut < 0 {
			cut = s.budget
		} else {
			cut++ // keep the newline with the preceding piece
		}
		pieces = append(pieces, para[:cut])
		para = para[cut:]
	}
	if para != "" {
		pieces = append(pieces, para)
	}
	return pieces
}

// splitParagraphs slices text at blank-line boundaries, keeping every
// delimiter attached to the paragraph it follows so the pieces
// concatenate back to the input.
func splitParagraphs(text string) []string {
	var paras []string
	for {
		idx := strings.Index(text, "\n\n")
		if idx < 0 {
			if text != "" {
				paras = append(paras, text)
			}
			return paras
		}
		end := idx + 2
		// Absorb any further blank lines into the same delimiter run.
		for end < len(text) && text[end] == '\n' {
			end++
		}
		paras = append(paras, text[:end])
		text = text[end:]
	}
}
