// Package suggest proposes the likely intended key for a name that was not
// found in a source map, for "did you mean" diagnostics.
package suggest

import "strings"

// Distance computes the Levenshtein edit distance between a and b: the
// minimum number of single-character insertions, deletions and substitutions
// turning one into the other. Two rows instead of the full matrix.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Closest returns the candidate nearest to name when that distance is small
// enough to plausibly be a typo: at most 2 edits and less than half the
// name's length. Comparison is case-insensitive; ties go to the
// lexicographically smaller candidate so the answer is deterministic.
func Closest(name string, candidates []string) (string, bool) {
	folded := strings.ToLower(name)

	best := ""
	bestDist := len(name) + 1

	for _, c := range candidates {
		d := Distance(folded, strings.ToLower(c))
		if d < bestDist || (d == bestDist && best != "" && c < best) {
			best, bestDist = c, d
		}
	}

	if best == "" || bestDist > 2 || bestDist*2 >= len(name) {
		return "", false
	}

	return best, true
}
