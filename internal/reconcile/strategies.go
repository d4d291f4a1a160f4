package reconcile

import (
	"context"
	"strings"

	"github.com/gabriel/crewdocs/internal/hierarchy"
)

// Confidence assigned by each cascade strategy.
const (
	confidenceIdentity      = 1.0
	confidenceCodeHierarchy = 0.95
	confidenceCodeSubtype   = 0.95
	confidenceCodeEqual     = 0.9
	confidenceCodeInName    = 0.85
	confidenceAbbreviation  = 0.9
	confidenceExactName     = 0.95
)

// documentSet partitions a candidate's documents for one Resolve call.
// Declarations exist in the system but must never be treated as generic
// evidence, so only the identity strategy sees the full set.
type documentSet struct {
	all        []CandidateDocument
	comparable []CandidateDocument
}

// partitionDocuments splits documents into the full set and the comparable
// (non-declaration) subset. Recomputed per call; callers may mutate the list
// between calls.
func partitionDocuments(docs []CandidateDocument) documentSet {
	set := documentSet{all: docs}
	for i := range docs {
		if !docs[i].IsDeclaration {
			set.comparable = append(set.comparable, docs[i])
		}
	}
	return set
}

// matchStrategy is one step of the cascade. Returning nil means the strategy
// did not match and the resolver moves on to the next one.
type matchStrategy interface {
	tryMatch(ctx context.Context, req Requirement, docs documentSet) *MatchResult
}

// identityStrategy matches a document explicitly linked to the requirement's
// catalog identity. It is the only strategy that considers declarations.
type identityStrategy struct{}

func (identityStrategy) tryMatch(_ context.Context, req Requirement, docs documentSet) *MatchResult {
	for i := range docs.all {
		doc := &docs.all[i]
		if doc.CatalogID != nil && *doc.CatalogID == req.ID {
			return &MatchResult{Strategy: MatchIdentity, Confidence: confidenceIdentity, Document: doc}
		}
	}
	return nil
}

// codeStrategy matches on regulatory codes, trying sub-rules in order:
// hierarchy satisfaction, subtype equality, code equality, then the code
// appearing inside the document name.
type codeStrategy struct {
	hierarchy hierarchy.Validator
}

func (s codeStrategy) tryMatch(_ context.Context, req Requirement, docs documentSet) *MatchResult {
	reqCode := normalizePtr(req.Code)
	if reqCode == "" {
		return nil
	}

	if s.hierarchy != nil {
		for i := range docs.comparable {
			doc := &docs.comparable[i]
			if doc.CodeSubtype != nil && s.hierarchy.Satisfies(*req.Code, *doc.CodeSubtype) {
				return &MatchResult{Strategy: MatchCode, Confidence: confidenceCodeHierarchy, Document: doc, codeDetail: codeDetailHierarchy}
			}
		}
	}

	for i := range docs.comparable {
		doc := &docs.comparable[i]
		if normalizePtr(doc.CodeSubtype) == reqCode {
			return &MatchResult{Strategy: MatchCode, Confidence: confidenceCodeSubtype, Document: doc, codeDetail: codeDetailSubtypeEqual}
		}
	}

	for i := range docs.comparable {
		doc := &docs.comparable[i]
		if normalizePtr(doc.Code) == reqCode {
			return &MatchResult{Strategy: MatchCode, Confidence: confidenceCodeEqual, Document: doc, codeDetail: codeDetailCodeEqual}
		}
	}

	for i := range docs.comparable {
		doc := &docs.comparable[i]
		if strings.Contains(Normalize(doc.Name), reqCode) {
			return &MatchResult{Strategy: MatchCode, Confidence: confidenceCodeInName, Document: doc, codeDetail: codeDetailNameContains}
		}
	}

	return nil
}

// abbreviationStrategy matches on the document abbreviation (sigla).
type abbreviationStrategy struct{}

func (abbreviationStrategy) tryMatch(_ context.Context, req Requirement, docs documentSet) *MatchResult {
	reqAbbrev := normalizePtr(req.Abbreviation)
	if reqAbbrev == "" {
		return nil
	}
	for i := range docs.comparable {
		doc := &docs.comparable[i]
		if normalizePtr(doc.Abbreviation) == reqAbbrev {
			return &MatchResult{Strategy: MatchAbbreviation, Confidence: confidenceAbbreviation, Document: doc}
		}
	}
	return nil
}

// semanticNameStrategy keeps the best-scoring comparable document whose
// structural name similarity strictly exceeds the configured floor.
type semanticNameStrategy struct {
	scorer *Scorer
	floor  float64
}

func (s semanticNameStrategy) tryMatch(_ context.Context, req Requirement, docs documentSet) *MatchResult {
	var best *CandidateDocument
	bestScore := 0.0
	for i := range docs.comparable {
		doc := &docs.comparable[i]
		if score := s.scorer.Score(req.Name, doc.Name); score > bestScore {
			bestScore = score
			best = doc
		}
	}
	if best == nil || bestScore <= s.floor {
		return nil
	}
	return &MatchResult{Strategy: MatchSemanticName, Confidence: bestScore, Document: best}
}

// NameComparer is an optional external collaborator (AI-assisted semantic
// comparison) consulted between the structural name strategies and the
// exact-name fallback. It must be side-effect-free from the engine's view.
type NameComparer interface {
	Compare(ctx context.Context, requiredName, documentName string) (float64, error)
}

// aiNameStrategy consults the external comparer for each comparable document.
// Comparer errors skip the strategy entirely so a degraded collaborator never
// breaks the deterministic cascade.
type aiNameStrategy struct {
	comparer NameComparer
	floor    float64
}

func (s aiNameStrategy) tryMatch(ctx context.Context, req Requirement, docs documentSet) *MatchResult {
	var best *CandidateDocument
	bestScore := 0.0
	for i := range docs.comparable {
		doc := &docs.comparable[i]
		score, err := s.comparer.Compare(ctx, req.Name, doc.Name)
		if err != nil {
			return nil
		}
		if score > bestScore {
			bestScore = score
			best = doc
		}
	}
	if best == nil || bestScore <= s.floor {
		return nil
	}
	return &MatchResult{Strategy: MatchAISemantic, Confidence: clampScore(bestScore), Document: best}
}

// exactNameStrategy is the last-resort fallback: the normalized names must be
// exactly equal.
type exactNameStrategy struct{}

func (exactNameStrategy) tryMatch(_ context.Context, req Requirement, docs documentSet) *MatchResult {
	reqName := Normalize(req.Name)
	if reqName == "" {
		return nil
	}
	for i := range docs.comparable {
		doc := &docs.comparable[i]
		if Normalize(doc.Name) == reqName {
			return &MatchResult{Strategy: MatchExactName, Confidence: confidenceExactName, Document: doc}
		}
	}
	return nil
}
