package errors

import "strings"

// editDistance returns the optimal string alignment distance between a
// and b: insertions, deletions, substitutions and swaps of adjacent
// runes each cost one.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	d := make([][]int, len(ra)+1)
	for i := range d {
		d[i] = make([]int, len(rb)+1)
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				d[i][j] = min(d[i][j], d[i-2][j-2]+1)
			}
		}
	}
	return d[len(ra)][len(rb)]
}

// Similarity returns a case-insensitive score between 0.0 (nothing in
// common) and 1.0 (identical).
func Similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1.0
	}
	longest := max(len([]rune(a)), len([]rune(b)))
	return 1.0 - float64(editDistance(a, b))/float64(longest)
}

// FindClosest returns the candidate most similar to target, or "" if
// none reaches threshold. Ties go to the earlier candidate.
func FindClosest(target string, candidates []string, threshold float64) string {
	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		if score := Similarity(target, c); score > bestScore {
			best, bestScore = c, score
		}
	}
	if bestScore >= threshold {
		return best
	}
	return ""
}

// DidYouMean formats a suggestion for target, or returns "" when no
// candidate is close enough.
func DidYouMean(target string, candidates []string) string {
	if closest := FindClosest(target, candidates, suggestionThreshold); closest != "" {
		return "Did you mean " + closest + "?"
	}
	return ""
}

const suggestionThreshold = 0.6
