package services

import "strings"

// acronymExpansion maps an ambiguous role acronym to its candidate
// expansions, each guarded by hint words. When a hint co-occurs with
// the acronym only its expansion is appended; with no disambiguating
// hint, every candidate is appended.
type acronymExpansion struct {
	acronym    string
	candidates []expansionCandidate
}

type expansionCandidate struct {
	expansion string
	hints     []string
}

var roleExpansions = []acronymExpansion{
	{
		acronym: "CDO",
		candidates: []expansionCandidate{
			{expansion: "Chief Data Officer", hints: []string{"data", "analytics"}},
			{expansion: "Chief Diversity Officer", hints: []string{"diversity", "inclusion", "equity"}},
			{expansion: "Chief Digital Officer", hints: []string{"digital", "transformation"}},
		},
	},
	{
		acronym: "CIO",
		candidates: []expansionCandidate{
			{expansion: "Chief Information Officer", hints: []string{"information", "technology", "it"}},
			{expansion: "Chief Investment Officer", hints: []string{"investment", "fund", "capital"}},
		},
	},
	{
		acronym: "CPO",
		candidates: []expansionCandidate{
			{expansion: "Chief Product Officer", hints: []string{"product"}},
			{expansion: "Chief People Officer", hints: []string{"people", "hr", "talent"}},
			{expansion: "Chief Privacy Officer", hints: []string{"privacy"}},
		},
	},
}

// ExpandQuery appends alternate phrasings for known ambiguous role
// acronyms so retrieval matches chunks using the spelled-out title.
// The original query text is always preserved as a prefix.
func ExpandQuery(query string) string {
	words := strings.Fields(query)
	lower := strings.ToLower(query)

	var additions []string
	for _, exp := range roleExpansions {
		if !containsWord(words, exp.acronym) {
			continue
		}
		matched := false
		for _, cand := range exp.candidates {
			for _, hint := range cand.hints {
				if containsWord(strings.Fields(lower), hint) {
					additions = append(additions, cand.expansion)
					matched = true
					break
				}
			}
		}
		if !matched {
			// No disambiguating hint: append every candidate.
			for _, cand := range exp.candidates {
				additions = append(additions, cand.expansion)
			}
		}
	}

	if len(additions) == 0 {
		return query
	}
	return query + " " + strings.Join(additions, " ")
}

// containsWord reports whether words contains w exactly (case-sensitive
// for acronyms, callers lower-case hint lookups).
func containsWord(words []string, w string) bool {
	for _, word := range words {
		if strings.Trim(word, ",.;:?!()") == w {
			return true
		}
	}
	return false
}
