package reconcile

import (
	"regexp"
	"strings"
)

// codeTokenPattern matches regulatory-code-like tokens: 2-3 letters, an
// optional hyphen, then digits (e.g. "nr-35", "sbv2").
var codeTokenPattern = regexp.MustCompile(`\b[a-z]{2,3}-?[0-9]+\b`)

// Scorer computes a bounded structural similarity between two free-text
// document names. It is deterministic: no randomness and no external calls,
// so tests can assert exact scores for fixed input pairs.
type Scorer struct {
	cfg Config
}

// NewScorer creates a Scorer closed over the given configuration.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score returns a similarity in [0,1] between two names. Rules are tried in
// order and the first that applies wins:
//  1. exact match after normalization
//  2. one normalized name contains the other
//  3. both names carry the same regulatory-code token
//  4. shared domain keywords (base score plus a step per extra keyword)
//  5. whitespace-token overlap ratio
func (s *Scorer) Score(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)
	if na == "" || nb == "" {
		return 0
	}

	if na == nb {
		return 1.0
	}

	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return s.cfg.ContainmentScore
	}

	codeA := codeTokenPattern.FindString(na)
	codeB := codeTokenPattern.FindString(nb)
	if codeA != "" && codeA == codeB {
		return s.cfg.CodeTokenScore
	}

	if shared := s.sharedKeywords(na, nb); shared > 0 {
		return clampScore(s.cfg.KeywordBaseScore + s.cfg.KeywordStepScore*float64(shared-1))
	}

	return clampScore(tokenOverlapRatio(na, nb))
}

// sharedKeywords counts domain keywords present in both normalized names.
func (s *Scorer) sharedKeywords(na, nb string) int {
	shared := 0
	for _, kw := range s.cfg.Keywords {
		if strings.Contains(na, kw) && strings.Contains(nb, kw) {
			shared++
		}
	}
	return shared
}

// tokenOverlapRatio is the fallback heuristic: the count of tokens from the
// first name that equal, contain, or are contained in some token of the
// second, divided by the longer token list's length.
func tokenOverlapRatio(na, nb string) float64 {
	tokensA := strings.Fields(na)
	tokensB := strings.Fields(nb)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	common := 0
	for _, ta := range tokensA {
		for _, tb := range tokensB {
			if ta == tb || strings.Contains(ta, tb) || strings.Contains(tb, ta) {
				common++
				break
			}
		}
	}
	if common == 0 {
		return 0
	}

	longer := len(tokensA)
	if len(tokensB) > longer {
		longer = len(tokensB)
	}
	return float64(common) / float64(longer)
}

// clampScore bounds a score to [0,1].
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
