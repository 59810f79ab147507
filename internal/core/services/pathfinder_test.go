package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
)

func TestParseSuggestedPaths(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{
			name:  "plain path list",
			reply: "/about\n/team\n/contact",
			want:  []string{"/about", "/team", "/contact"},
		},
		{
			name:  "strips enumeration markers",
			reply: "1. /about\n2) /team\n- /contact\n* /people",
			want:  []string{"/about", "/team", "/contact", "/people"},
		},
		{
			name:  "strips explanation suffixes",
			reply: "/about - the company overview\n/team - leadership bios",
			want:  []string{"/about", "/team"},
		},
		{
			name:  "drops prose lines",
			reply: "Here are the most promising paths to crawl first:\n/about\nThank you for asking",
			want:  []string{"/about"},
		},
		{
			name:  "drops full URLs",
			reply: "https://example.com/about\n/team",
			want:  []string{"/team"},
		},
		{
			name:  "normalizes missing leading slash",
			reply: "about\nteam/leadership",
			want:  []string{"/about", "/team/leadership"},
		},
		{
			name:  "drops blank lines and bare markers",
			reply: "\n\n1.\n/about\n   ",
			want:  []string{"/about"},
		},
		{
			name:  "empty reply yields nothing",
			reply: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSuggestedPaths(tt.reply))
		})
	}
}

func TestPathFinderPrioritize(t *testing.T) {
	discovered := []driven.DiscoveredLink{
		{URL: "https://example.com/about", Text: "about us"},
		{URL: "https://example.com/products", Text: "products"},
		{URL: "https://example.com/team", Text: "our team"},
		{URL: "https://example.com/blog", Text: "blog"},
	}

	t.Run("keyword paths precede model suggestions", func(t *testing.T) {
		llm := &mockLLM{replies: []string{
			"The about and team pages are most likely to list leadership.",
			"/about\n/team\n/blog",
		}}
		finder := NewPathFinder(&mockDiscoverer{links: discovered}, llm)

		suggestions, err := finder.Prioritize(context.Background(),
			[]string{"https://example.com"}, "company leadership")

		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		s := suggestions[0]
		assert.Equal(t, "https://example.com", s.SiteURL)
		require.True(t, len(s.URLs) >= 3)
		assert.Equal(t, "https://example.com/about", s.URLs[0])
		assert.Equal(t, "https://example.com/team", s.URLs[1])
		assert.Contains(t, s.URLs, "https://example.com/blog")
		assert.NotEmpty(t, s.Analysis)
		assert.Len(t, llm.calls, 2)
	})

	t.Run("analysis and listing use bounded options", func(t *testing.T) {
		llm := &mockLLM{replies: []string{"analysis", "/about"}}
		finder := NewPathFinder(&mockDiscoverer{links: discovered}, llm)

		_, err := finder.Prioritize(context.Background(), []string{"https://example.com"}, "leads")
		require.NoError(t, err)

		require.Len(t, llm.opts, 2)
		assert.Equal(t, 500, llm.opts[0].MaxTokens)
		assert.Equal(t, 200, llm.opts[1].MaxTokens)
		for _, o := range llm.opts {
			assert.InDelta(t, 0.3, o.Temperature, 1e-9)
		}
	})

	t.Run("nil model falls back to seed plus keyword paths", func(t *testing.T) {
		finder := NewPathFinder(&mockDiscoverer{links: discovered}, nil)

		suggestions, err := finder.Prioritize(context.Background(),
			[]string{"https://example.com"}, "leadership")

		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		s := suggestions[0]
		assert.Equal(t, "https://example.com", s.URLs[0])
		assert.Contains(t, s.URLs, "https://example.com/about")
		assert.Contains(t, s.URLs, "https://example.com/team")
		assert.NotContains(t, s.URLs, "https://example.com/products")
		assert.Empty(t, s.Analysis)
	})

	t.Run("model failure falls back to heuristics", func(t *testing.T) {
		llm := &mockLLM{err: errors.New("model offline")}
		finder := NewPathFinder(&mockDiscoverer{links: discovered}, llm)

		suggestions, err := finder.Prioritize(context.Background(),
			[]string{"https://example.com"}, "leadership")

		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "https://example.com", suggestions[0].URLs[0])
		assert.Contains(t, suggestions[0].URLs, "https://example.com/about")
	})

	t.Run("fallback caps keyword paths at five", func(t *testing.T) {
		var many []driven.DiscoveredLink
		for i := 0; i < 12; i++ {
			many = append(many, driven.DiscoveredLink{
				URL:  fmt.Sprintf("https://example.com/team-%d", i),
				Text: "team",
			})
		}
		finder := NewPathFinder(&mockDiscoverer{links: many}, nil)

		suggestions, err := finder.Prioritize(context.Background(),
			[]string{"https://example.com"}, "leadership")

		require.NoError(t, err)
		assert.Len(t, suggestions[0].URLs, 6) // seed + 5
	})

	t.Run("suggestions are capped", func(t *testing.T) {
		var lines string
		for i := 0; i < 40; i++ {
			lines += fmt.Sprintf("/page-%d\n", i)
		}
		llm := &mockLLM{replies: []string{"analysis", lines}}
		finder := NewPathFinder(&mockDiscoverer{links: discovered}, llm)

		suggestions, err := finder.Prioritize(context.Background(),
			[]string{"https://example.com"}, "everything")

		require.NoError(t, err)
		assert.LessOrEqual(t, len(suggestions[0].URLs), domain.MaxSuggestedURLs)
	})

	t.Run("one suggestion per site", func(t *testing.T) {
		llm := &mockLLM{replies: []string{"a1", "/about", "a2", "/team"}}
		finder := NewPathFinder(&mockDiscoverer{links: discovered}, llm)

		suggestions, err := finder.Prioritize(context.Background(),
			[]string{"https://one.com", "https://two.com"}, "leads")

		require.NoError(t, err)
		require.Len(t, suggestions, 2)
		assert.Equal(t, "https://one.com", suggestions[0].SiteURL)
		assert.Equal(t, "https://two.com", suggestions[1].SiteURL)
	})
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "https://example.com/about", resolvePath("https://example.com", "/about"))
	assert.Equal(t, "https://example.com/a/b", resolvePath("https://example.com", "/a/b"))
}

func TestOrigin(t *testing.T) {
	assert.Equal(t, "https://example.com", origin("https://example.com/deep/path?q=1"))
}
