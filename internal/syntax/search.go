package syntax

import (
	"sort"
	"strings"

	cerr "github.com/barun-bash/uic/internal/errors"
)

const (
	scoreTemplate    = 1.0
	scoreTag         = 0.9
	scoreDescription = 0.8
	scoreFuzzyTag    = 0.7

	fuzzyThreshold = 0.6
)

// Search returns patterns matching the query, most relevant first.
// Templates, tags and descriptions are matched by substring; tags also
// match approximately. An empty query returns every pattern.
func Search(query string) []Pattern {
	if query == "" {
		return AllPatterns()
	}

	q := strings.ToLower(query)
	type hit struct {
		p     Pattern
		score float64
	}
	var hits []hit
	for _, p := range allPatterns {
		if s := score(p, q); s > 0 {
			hits = append(hits, hit{p, s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	out := make([]Pattern, len(hits))
	for i, h := range hits {
		out[i] = h.p
	}
	return out
}

// score rates p against a lowercase query; 0 means no match.
func score(p Pattern, q string) float64 {
	if strings.Contains(strings.ToLower(p.Template), q) {
		return scoreTemplate
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return scoreTag
		}
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return scoreDescription
	}
	for _, tag := range p.Tags {
		if cerr.Similarity(q, tag) > fuzzyThreshold {
			return scoreFuzzyTag
		}
	}
	return 0
}

// Lookup returns the category named by section, accepting either the
// category id or its label, case-insensitively.
func Lookup(section string) (Category, bool) {
	for _, cat := range AllCategories() {
		if strings.EqualFold(section, string(cat)) || strings.EqualFold(section, CategoryLabel(cat)) {
			return cat, true
		}
	}
	return "", false
}
