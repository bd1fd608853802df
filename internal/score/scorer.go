// Package score implements normalized fuzzy string similarity for name matching.
//
// The measure combines a token-set comparison (robust to word order and extra
// tokens) with character-level edit distance, scaled to [0,100]. Identical
// normalized strings always score exactly 100 and the measure is symmetric.
package score

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Similarity returns the fuzzy similarity between two name strings in [0,100].
func Similarity(a, b string) int {
	na := Normalize(a)
	nb := Normalize(b)

	if na == nb {
		return 100
	}
	if na == "" || nb == "" {
		return 0
	}

	best := indelRatio(na, nb)
	if ts := tokenSetRatio(na, nb); ts > best {
		best = ts
	}
	if lr := levenshteinRatio(na, nb); lr > best {
		best = lr
	}
	return best
}

// Normalize lowercases, strips non-alphanumeric runes to spaces and collapses
// whitespace, so that "O'Brien,  J." and "o brien j" compare equal.
func Normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// tokenSetRatio compares the token intersection against each full token set.
// A perfect subset (e.g. "john smith" vs "smith john") scores 100 regardless
// of word order.
func tokenSetRatio(a, b string) int {
	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)

	setA := make(map[string]bool, len(tokensA))
	for _, t := range tokensA {
		setA[t] = true
	}
	setB := make(map[string]bool, len(tokensB))
	for _, t := range tokensB {
		setB[t] = true
	}

	var common, onlyA, onlyB []string
	for t := range setA {
		if setB[t] {
			common = append(common, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range setB {
		if !setA[t] {
			onlyB = append(onlyB, t)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(common, " ")
	joinedA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	joinedB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	best := indelRatio(base, joinedA)
	if r := indelRatio(base, joinedB); r > best {
		best = r
	}
	if r := indelRatio(joinedA, joinedB); r > best {
		best = r
	}
	return best
}

// indelRatio is the insert/delete sequence ratio: 100*2*lcs/(la+lb), the
// share of runes covered by the longest common subsequence.
func indelRatio(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	la, lb := len(ra), len(rb)
	if la+lb == 0 {
		return 100
	}

	lcs := lcsLength(ra, rb)
	return int(math.Round(100 * float64(2*lcs) / float64(la+lb)))
}

// levenshteinRatio scales standard edit distance by the longer string
func levenshteinRatio(a, b string) int {
	la := len([]rune(a))
	lb := len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 100
	}

	d := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(d)/float64(maxLen))))
}

// lcsLength computes the longest common subsequence length with a rolling row
func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
