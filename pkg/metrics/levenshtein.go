package metrics

import (
	"github.com/agnivade/levenshtein"
)

// Levenshtein returns the number of single rune insertions, deletions and
// substitutions needed to turn a into b.
func Levenshtein(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// similarity maps the edit distance into [0,100] relative to the longer operand.
// An empty reference scores 100 against an empty candidate and 0 otherwise.
func similarity(candidate, reference string) float64 {
	if reference == "" {
		if candidate == "" {
			return 100
		}
		return 0
	}

	maxLen := max(runeLen(candidate), runeLen(reference))
	if maxLen == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(candidate, reference)
	return 100 * (1 - float64(dist)/float64(maxLen))
}

func runeLen(s string) int {
	return len([]rune(s))
}
