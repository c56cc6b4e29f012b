// Package fuzzy provides similarity scoring for approximate text matching.
// Scores are integers on a 0-100 scale computed from Levenshtein edit
// distance, mirroring the ratio / partial ratio / token set ratio family
// used for typo-tolerant lookups of names, rooms and scope keywords.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Scorer computes similarity scores between two strings.
// Implementations must be safe for concurrent use.
type Scorer interface {
	Ratio(a, b string) int
	PartialRatio(a, b string) int
	TokenSetRatio(a, b string) int
}

// LevenshteinScorer is the default Scorer, backed by edit distance.
type LevenshteinScorer struct{}

// NewScorer returns the default scorer.
func NewScorer() Scorer {
	return LevenshteinScorer{}
}

// Ratio returns the plain similarity of a and b on a 0-100 scale.
// Identical strings score 100; fully distinct strings score 0.
func (LevenshteinScorer) Ratio(a, b string) int {
	return ratio(a, b)
}

// PartialRatio returns the best Ratio of the shorter string against every
// equally long substring of the longer one. "joao" inside
// "professor joao da silva" scores 100.
func (LevenshteinScorer) PartialRatio(a, b string) int {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		if len(longer) == 0 {
			return 100
		}
		return 0
	}
	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := string(longer[i : i+len(shorter)])
		if r := ratio(string(shorter), window); r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

// TokenSetRatio tokenizes both strings, splits the tokens into the shared
// intersection and per-side remainders, and returns the best Ratio among
// the recombined forms. Word order and repeated words do not matter.
func (LevenshteinScorer) TokenSetRatio(a, b string) int {
	ta := tokenSet(a)
	tb := tokenSet(b)

	var inter, diffA, diffB []string
	for tok := range ta {
		if tb[tok] {
			inter = append(inter, tok)
		} else {
			diffA = append(diffA, tok)
		}
	}
	for tok := range tb {
		if !ta[tok] {
			diffB = append(diffB, tok)
		}
	}
	sort.Strings(inter)
	sort.Strings(diffA)
	sort.Strings(diffB)

	base := strings.Join(inter, " ")
	withA := strings.TrimSpace(base + " " + strings.Join(diffA, " "))
	withB := strings.TrimSpace(base + " " + strings.Join(diffB, " "))

	best := ratio(base, withA)
	if r := ratio(base, withB); r > best {
		best = r
	}
	if r := ratio(withA, withB); r > best {
		best = r
	}
	return best
}

// NoopScorer always scores 0, disabling every fuzzy path. Used as the
// degraded mode where only exact and substring matching survive.
type NoopScorer struct{}

func (NoopScorer) Ratio(_, _ string) int         { return 0 }
func (NoopScorer) PartialRatio(_, _ string) int  { return 0 }
func (NoopScorer) TokenSetRatio(_, _ string) int { return 0 }

// BestMatch returns the candidate with the highest score according to fn
// and that score. Ties keep the earliest candidate. Returns ("", 0) for an
// empty candidate list.
func BestMatch(query string, candidates []string, fn func(a, b string) int) (string, int) {
	best, bestScore := "", 0
	for _, c := range candidates {
		if s := fn(query, c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best, bestScore
}

func ratio(a, b string) int {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return int((1-float64(dist)/float64(longest))*100 + 0.5)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}
