package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gabriel/crewdocs/internal/db"
	"github.com/gabriel/crewdocs/internal/export"
	"github.com/gabriel/crewdocs/internal/reconcile"
)

// comparisonRow pairs a matrix row with its verdict
type comparisonRow struct {
	Requirement db.MatrixRequirement `json:"requirement"`
	Verdict     reconcile.Verdict    `json:"verdict"`
}

// comparisonResult is the full screening of one candidate against one vacancy
type comparisonResult struct {
	Vacancy   *db.Vacancy       `json:"vacancy"`
	Candidate *db.Candidate     `json:"candidate"`
	Rows      []comparisonRow   `json:"rows"`
	Summary   reconcile.Summary `json:"summary"`
}

// maxConcurrentComparisons bounds the vacancy-wide fan-out so a large
// candidate pool does not flood the LLM backend.
const maxConcurrentComparisons = 4

// compareCandidate runs the reconciliation engine for one candidate against
// one vacancy's matrix. Verdicts come back in matrix order, so rows pair
// positionally with requirements.
func (s *Server) compareCandidate(ctx context.Context, vacancy *db.Vacancy, candidate *db.Candidate) (*comparisonResult, error) {
	reqs, err := s.db.ListMatrixRequirements(ctx, vacancy.ID)
	if err != nil {
		return nil, err
	}
	docs, err := s.db.ListCandidateDocuments(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}

	verdicts := s.engine.ResolveAll(ctx, db.EngineRequirements(reqs), db.EngineDocuments(docs))

	rows := make([]comparisonRow, 0, len(reqs))
	for i := range reqs {
		rows = append(rows, comparisonRow{Requirement: reqs[i], Verdict: verdicts[i]})
	}

	return &comparisonResult{
		Vacancy:   vacancy,
		Candidate: candidate,
		Rows:      rows,
		Summary:   reconcile.Aggregate(verdicts),
	}, nil
}

// loadComparisonPair resolves the vacancy and candidate path parameters
func (s *Server) loadComparisonPair(w http.ResponseWriter, r *http.Request) (*db.Vacancy, *db.Candidate, bool) {
	vacancyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid vacancy ID")
		return nil, nil, false
	}
	candidateID, err := uuid.Parse(r.PathValue("candidate_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return nil, nil, false
	}

	vacancy, err := s.db.GetVacancyByID(r.Context(), vacancyID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, nil, false
	}
	if vacancy == nil {
		s.errorResponse(w, http.StatusNotFound, "Vacancy not found")
		return nil, nil, false
	}

	candidate, err := s.db.GetCandidateByID(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, nil, false
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return nil, nil, false
	}

	return vacancy, candidate, true
}

// handleCandidateComparison screens one candidate against a vacancy's matrix
func (s *Server) handleCandidateComparison(w http.ResponseWriter, r *http.Request) {
	vacancy, candidate, ok := s.loadComparisonPair(w, r)
	if !ok {
		return
	}

	result, err := s.compareCandidate(r.Context(), vacancy, candidate)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Comparison failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleCandidateComparisonExcel returns the same screening as a spreadsheet
func (s *Server) handleCandidateComparisonExcel(w http.ResponseWriter, r *http.Request) {
	vacancy, candidate, ok := s.loadComparisonPair(w, r)
	if !ok {
		return
	}

	result, err := s.compareCandidate(r.Context(), vacancy, candidate)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Comparison failed: "+err.Error())
		return
	}

	cmp := export.Comparison{
		VacancyTitle:  vacancy.Title,
		CandidateName: candidate.Name,
		Summary:       result.Summary,
	}
	for _, row := range result.Rows {
		cmp.Rows = append(cmp.Rows, export.ComparisonRow{
			RequirementName: row.Requirement.Name,
			Obligation:      row.Requirement.Obligation,
			Verdict:         row.Verdict,
		})
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=comparison-%s.xlsx", candidate.ID))
	if err := export.WriteExcel(w, cmp); err != nil {
		// Headers are already out; nothing useful left to send
		log.Printf("Error writing spreadsheet: %v", err)
	}
}

// rankedCandidate is one entry of a vacancy-wide screening
type rankedCandidate struct {
	Candidate *db.Candidate     `json:"candidate"`
	Summary   reconcile.Summary `json:"summary"`
}

// handleVacancyComparison screens every candidate against a vacancy and
// returns them ranked by adherence
func (s *Server) handleVacancyComparison(w http.ResponseWriter, r *http.Request) {
	vacancyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid vacancy ID")
		return
	}

	vacancy, err := s.db.GetVacancyByID(r.Context(), vacancyID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if vacancy == nil {
		s.errorResponse(w, http.StatusNotFound, "Vacancy not found")
		return
	}

	limit := parseQueryInt(r, "limit", 200, 1000)
	candidates, err := s.db.ListCandidates(r.Context(), limit, 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	ranked := make([]rankedCandidate, len(candidates))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(maxConcurrentComparisons)
	for i := range candidates {
		g.Go(func() error {
			result, err := s.compareCandidate(ctx, vacancy, &candidates[i])
			if err != nil {
				return err
			}
			ranked[i] = rankedCandidate{Candidate: &candidates[i], Summary: result.Summary}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Comparison failed: "+err.Error())
		return
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Summary.AdherencePercent > ranked[j].Summary.AdherencePercent
	})

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"vacancy":    vacancy,
		"candidates": ranked,
		"count":      len(ranked),
	})
}
