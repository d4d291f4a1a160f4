package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gabriel/crewdocs/internal/hierarchy"
)

// Engine resolves matrix requirements against candidate document sets. It is
// synchronous and side-effect-free: it never mutates its inputs and holds no
// state between calls, so a single Engine may be shared across goroutines.
type Engine struct {
	cfg        Config
	scorer     *Scorer
	now        func() time.Time
	strategies []matchStrategy
}

// Option customizes an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	now      func() time.Time
	comparer NameComparer
}

// WithClock injects the wall clock used for validity evaluation. Tests use
// this to pin "now".
func WithClock(now func() time.Time) Option {
	return func(o *engineOptions) { o.now = now }
}

// WithNameComparer enables the optional AI-assisted comparison strategy,
// consulted after the structural name strategies and before the exact-name
// fallback.
func WithNameComparer(c NameComparer) Option {
	return func(o *engineOptions) { o.comparer = c }
}

// NewEngine builds an Engine with the given thresholds and regulatory
// hierarchy validator. A nil validator disables only the hierarchy sub-rule
// of the code strategy.
func NewEngine(cfg Config, hv hierarchy.Validator, opts ...Option) *Engine {
	options := engineOptions{now: time.Now}
	for _, opt := range opts {
		opt(&options)
	}

	scorer := NewScorer(cfg)
	strategies := []matchStrategy{
		identityStrategy{},
		codeStrategy{hierarchy: hv},
		abbreviationStrategy{},
		semanticNameStrategy{scorer: scorer, floor: cfg.SemanticFloor},
	}
	if options.comparer != nil {
		strategies = append(strategies, aiNameStrategy{comparer: options.comparer, floor: cfg.SemanticFloor})
	}
	strategies = append(strategies, exactNameStrategy{})

	return &Engine{
		cfg:        cfg,
		scorer:     scorer,
		now:        options.now,
		strategies: strategies,
	}
}

// Resolve computes the verdict for one requirement against the candidate's
// full document list. It never panics: a malformed requirement yields a
// terminal Pending verdict, and any internal failure is recovered into a
// Pending verdict carrying the error message, so one bad row can never abort
// a whole comparison run.
func (e *Engine) Resolve(ctx context.Context, req Requirement, docs []CandidateDocument) (verdict Verdict) {
	defer func() {
		if r := recover(); r != nil {
			verdict = pendingVerdict(req, fmt.Sprintf("comparison failed: %v", r))
		}
	}()

	if req.ID == uuid.Nil || req.Name == "" {
		return pendingVerdict(req, obsInvalidRequirement)
	}

	match := e.resolveMatch(ctx, req, docs)
	if !match.Found() {
		return pendingVerdict(req, obsNotFound)
	}

	gates := evaluateGates(req, match.Document, e.now())

	verdict = Verdict{
		RequirementID:   req.ID,
		DocumentID:      &match.Document.ID,
		Status:          decideStatus(e.cfg, match, gates),
		MatchType:       match.Strategy,
		SimilarityScore: match.Confidence,
		ValidityStatus:  gates.Validity,
		Observations:    composeObservation(match, gates),
	}
	if gates.Validity == ValidityValid || gates.Validity == ValidityExpired {
		verdict.ValidityDate = match.Document.ExpiryDate
	}
	return verdict
}

// ResolveAll resolves every requirement of a matrix in order. Requirement
// failures are independent: one verdict never affects another.
func (e *Engine) ResolveAll(ctx context.Context, reqs []Requirement, docs []CandidateDocument) []Verdict {
	verdicts := make([]Verdict, 0, len(reqs))
	for _, req := range reqs {
		verdicts = append(verdicts, e.Resolve(ctx, req, docs))
	}
	return verdicts
}

// resolveMatch runs the cascade: strategies in strict priority order, first
// success wins, no backtracking.
func (e *Engine) resolveMatch(ctx context.Context, req Requirement, docs []CandidateDocument) MatchResult {
	set := partitionDocuments(docs)
	for _, strategy := range e.strategies {
		if result := strategy.tryMatch(ctx, req, set); result != nil {
			return *result
		}
	}
	return MatchResult{Strategy: MatchNone}
}

// pendingVerdict is the terminal no-match verdict.
func pendingVerdict(req Requirement, observation string) Verdict {
	return Verdict{
		RequirementID:   req.ID,
		Status:          StatusPending,
		MatchType:       MatchNone,
		SimilarityScore: 0,
		ValidityStatus:  ValidityNotApplicable,
		Observations:    observation,
	}
}
