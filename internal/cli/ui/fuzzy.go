package ui

import (
	"sort"
	"strings"
)

// DefaultMaxDistance is the largest edit distance still offered as a suggestion
const DefaultMaxDistance = 2

// FindSimilar returns the candidates within maxDistance edits of target,
// closest first. Matching is case-insensitive.
//
// Example:
//
//	FindSimilar("strr", []string{"str", "int", "bool"}, 0)
//	// Returns: ["str"]
func FindSimilar(target string, candidates []string, maxDistance int) []string {
	if maxDistance <= 0 {
		maxDistance = DefaultMaxDistance
	}

	type match struct {
		value    string
		distance int
	}

	var matches []match
	lowerTarget := strings.ToLower(target)
	for _, candidate := range candidates {
		dist := LevenshteinDistance(lowerTarget, strings.ToLower(candidate))
		if dist <= maxDistance {
			matches = append(matches, match{value: candidate, distance: dist})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.value
	}
	return result
}

// LevenshteinDistance calculates the minimum number of single-rune edits
// (insertions, deletions, or substitutions) that turn s1 into s2
func LevenshteinDistance(s1, s2 string) int {
	a, b := []rune(s1), []rune(s2)

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
