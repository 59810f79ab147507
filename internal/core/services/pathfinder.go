package services

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driving"
	"github.com/custodia-labs/scrawl-cli/internal/logger"
)

// Ensure PathFinder implements the interface.
var _ driving.PathService = (*PathFinder)(nil)

// leadershipTerms flag paths or anchor texts that usually lead to
// organisational information.
var leadershipTerms = []string{
	"about", "team", "leadership", "management", "board", "director",
	"executive", "contact", "people", "who we are",
}

// enumMarker strips leading list numbering from model output lines.
var enumMarker = regexp.MustCompile(`^[\d.)\-*]+\s*`)

// PathFinder reduces a site's reachable link set to a short,
// relevance-ranked URL list before the expensive recursive crawl runs.
// The result is a best-effort heuristic filter, never authoritative.
type PathFinder struct {
	discoverer driven.LinkDiscoverer
	llm        driven.LLMService
}

// NewPathFinder creates a path finder. The LLM service is optional;
// when nil every site degrades to heuristics-only suggestions.
func NewPathFinder(discoverer driven.LinkDiscoverer, llm driven.LLMService) *PathFinder {
	return &PathFinder{discoverer: discoverer, llm: llm}
}

// Prioritize suggests up to domain.MaxSuggestedURLs crawl targets per
// site for the given information need.
func (p *PathFinder) Prioritize(ctx context.Context, siteURLs []string, need string) ([]domain.PathSuggestion, error) {
	suggestions := make([]domain.PathSuggestion, 0, len(siteURLs))
	for _, site := range siteURLs {
		site = domain.NormalizeURL(site)
		if domain.Host(site) == "" {
			logger.Warn("Skipping invalid site URL %q", site)
			continue
		}
		suggestions = append(suggestions, p.prioritizeSite(ctx, site, need))
	}
	return suggestions, ctx.Err()
}

// prioritizeSite handles one site: discover, ask the model, parse
// defensively, fall back to heuristics on any model failure.
func (p *PathFinder) prioritizeSite(ctx context.Context, site, need string) domain.PathSuggestion {
	base := origin(site)
	allPaths, leadershipPaths := p.discoverPaths(ctx, site)

	logger.Debug("Discovered %d paths (%d leadership-related) on %s",
		len(allPaths), len(leadershipPaths), site)

	chosen := make(map[string]struct{})
	var urls []string
	add := func(u string) {
		if _, ok := chosen[u]; ok || len(urls) >= domain.MaxSuggestedURLs {
			return
		}
		chosen[u] = struct{}{}
		urls = append(urls, u)
	}

	// Keyword-matched paths go in first.
	for _, path := range cap10(leadershipPaths) {
		add(resolvePath(base, path))
	}

	if p.llm == nil {
		return p.fallback(site, leadershipPaths)
	}

	analysis, err := p.askAnalysis(ctx, base, allPaths, leadershipPaths, need)
	if err != nil {
		logger.Warn("Path analysis failed for %s: %v", site, err)
		return p.fallback(site, leadershipPaths)
	}

	listing, err := p.askPathList(ctx, base, allPaths, leadershipPaths, need)
	if err != nil {
		logger.Warn("Path listing failed for %s: %v", site, err)
		return p.fallback(site, leadershipPaths)
	}

	for _, path := range ParseSuggestedPaths(listing) {
		add(resolvePath(base, path))
	}

	return domain.PathSuggestion{SiteURL: site, URLs: urls, Analysis: analysis}
}

// fallback returns the seed URL plus up to 5 keyword-matched paths.
func (p *PathFinder) fallback(site string, leadershipPaths []string) domain.PathSuggestion {
	base := origin(site)
	out := []string{site}
	seen := map[string]struct{}{site: {}}
	n := 0
	for _, path := range leadershipPaths {
		if n >= 5 {
			break
		}
		u := resolvePath(base, path)
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
		n++
	}
	return domain.PathSuggestion{SiteURL: site, URLs: out}
}

// discoverPaths crawls only the seed page and collects every
// same-origin path, plus the leadership-keyword subset.
func (p *PathFinder) discoverPaths(ctx context.Context, site string) (all, leadership []string) {
	links, err := p.discoverer.Discover(ctx, site)
	if err != nil {
		logger.Warn("Link discovery failed for %s: %v", site, err)
		return nil, nil
	}

	seen := make(map[string]struct{})
	for _, link := range links {
		u, err := url.Parse(link.URL)
		if err != nil || u.Path == "" || u.Path == "/" {
			continue
		}
		if _, ok := seen[u.Path]; ok {
			continue
		}
		seen[u.Path] = struct{}{}
		all = append(all, u.Path)

		pathLower := strings.ToLower(u.Path)
		for _, term := range leadershipTerms {
			if strings.Contains(pathLower, term) || strings.Contains(link.Text, term) {
				leadership = append(leadership, u.Path)
				break
			}
		}
	}
	return all, leadership
}

// askAnalysis requests the prose rationale.
func (p *PathFinder) askAnalysis(ctx context.Context, base string, all, leadership []string, need string) (string, error) {
	prompt := fmt.Sprintf(
		"For the website %s\n\n"+
			"I've discovered these paths on the site:\n%s\n\n"+
			"These paths seem particularly relevant to leadership information:\n%s\n\n"+
			"Given the user's request:\n%s\n\n"+
			"Provide a brief analysis of which paths are most likely to contain the requested information. "+
			"Format your response as a clear explanation without repeating the full URLs.",
		base, strings.Join(cap50(all), ", "), strings.Join(leadership, ", "), need)

	return p.llm.Complete(ctx, []domain.ChatTurn{
		{Role: domain.RoleSystem, Content: "You are an assistant that analyzes website structure and suggests the most relevant paths for finding specific information."},
		{Role: domain.RoleUser, Content: prompt},
	}, driven.CompleteOptions{Temperature: 0.3, MaxTokens: 500})
}

// askPathList requests the bare path list, one per line.
func (p *PathFinder) askPathList(ctx context.Context, base string, all, leadership []string, need string) (string, error) {
	prompt := fmt.Sprintf(
		"For the website %s\n\n"+
			"I've discovered these paths on the site:\n%s\n\n"+
			"These paths seem particularly relevant to leadership information:\n%s\n\n"+
			"Given the user's request:\n%s\n\n"+
			"List ONLY the specific path components (e.g., '/about-us', '/contact') that are most likely to contain the requested information. "+
			"One path per line. No explanations or full URLs.",
		base, strings.Join(cap50(all), ", "), strings.Join(leadership, ", "), need)

	return p.llm.Complete(ctx, []domain.ChatTurn{
		{Role: domain.RoleSystem, Content: "You provide only path components, one per line, with no explanations or full URLs."},
		{Role: domain.RoleUser, Content: prompt},
	}, driven.CompleteOptions{Temperature: 0.3, MaxTokens: 200})
}

// ParseSuggestedPaths extracts usable path components from a model's
// free-form line reply. Lines that are empty, longer than 3 words or
// carrying a scheme are dropped; enumeration markers and trailing
// " - explanation" suffixes are stripped; every survivor is normalized
// to a leading slash. This is heuristic text scraping of model output
// and must be treated as best-effort, not a contract.
func ParseSuggestedPaths(reply string) []string {
	var paths []string
	for _, line := range strings.Split(reply, "\n") {
		path := strings.TrimSpace(line)
		if idx := strings.Index(path, " - "); idx >= 0 {
			path = strings.TrimSpace(path[:idx])
		}
		if path == "" || len(strings.Fields(path)) > 3 || strings.HasPrefix(path, "http") {
			continue
		}
		path = enumMarker.ReplaceAllString(path, "")
		if path == "" {
			continue
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		paths = append(paths, path)
	}
	return paths
}

// origin returns scheme://host of a URL.
func origin(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Scheme + "://" + u.Host
}

// resolvePath joins a path component onto a site origin.
func resolvePath(base, path string) string {
	b, err := url.Parse(base)
	if err != nil {
		return base + path
	}
	ref, err := url.Parse(path)
	if err != nil {
		return base + path
	}
	return b.ResolveReference(ref).String()
}

func cap10(paths []string) []string {
	if len(paths) > 10 {
		return paths[:10]
	}
	return paths
}

func cap50(paths []string) []string {
	if len(paths) > 50 {
		return paths[:50]
	}
	return paths
}
