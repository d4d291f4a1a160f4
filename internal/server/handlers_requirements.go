package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/gabriel/crewdocs/internal/db"
)

// requirementRequest is the create/update payload for a matrix row.
// A catalog_id alone is enough: name, code and abbreviation are then
// denormalized from the catalog entry.
type requirementRequest struct {
	CatalogID     *uuid.UUID `json:"catalog_id"`
	Name          string     `json:"name" validate:"omitempty,max=300"`
	Code          string     `json:"code" validate:"omitempty,max=40"`
	Abbreviation  string     `json:"abbreviation" validate:"omitempty,max=40"`
	Obligation    string     `json:"obligation" validate:"omitempty,oneof=eliminatory mandatory recommended client_required"`
	Modality      string     `json:"modality" validate:"omitempty,max=60"`
	RequiredHours *int       `json:"required_hours" validate:"omitempty,min=0"`
	ValidityRule  string     `json:"validity_rule" validate:"omitempty,max=120"`
	Position      int        `json:"position" validate:"min=0"`
}

// requirementInput resolves the payload against the catalog and builds a
// storage input. On failure it returns the status code to respond with.
func (s *Server) requirementInput(r *http.Request, req requirementRequest) (db.MatrixRequirementInput, int, string) {
	input := db.MatrixRequirementInput{
		CatalogID:     req.CatalogID,
		Name:          req.Name,
		Code:          req.Code,
		Abbreviation:  req.Abbreviation,
		Obligation:    req.Obligation,
		Modality:      req.Modality,
		RequiredHours: req.RequiredHours,
		ValidityRule:  req.ValidityRule,
		Position:      req.Position,
	}
	if input.Obligation == "" {
		input.Obligation = "mandatory"
	}

	if req.CatalogID != nil {
		entry, err := s.db.GetCatalogDocumentByID(r.Context(), *req.CatalogID)
		if err != nil {
			return input, http.StatusInternalServerError, "Database error: " + err.Error()
		}
		if entry == nil {
			return input, http.StatusNotFound, "Catalog document not found"
		}
		if input.Name == "" {
			input.Name = entry.Name
		}
		if input.Code == "" && entry.Code != nil {
			input.Code = *entry.Code
		}
		if input.Abbreviation == "" && entry.Abbreviation != nil {
			input.Abbreviation = *entry.Abbreviation
		}
	}

	if input.Name == "" {
		return input, http.StatusBadRequest, "A requirement needs a name or a catalog_id"
	}
	return input, 0, ""
}

// handleCreateRequirement adds a row to a vacancy's requirement matrix
func (s *Server) handleCreateRequirement(w http.ResponseWriter, r *http.Request) {
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

	var req requirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	input, status, msg := s.requirementInput(r, req)
	if msg != "" {
		s.errorResponse(w, status, msg)
		return
	}

	row, err := s.db.CreateMatrixRequirement(r.Context(), vacancyID, input)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, row)
}

// handleListRequirements lists a vacancy's requirement matrix in display order
func (s *Server) handleListRequirements(w http.ResponseWriter, r *http.Request) {
	vacancyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid vacancy ID")
		return
	}

	reqs, err := s.db.ListMatrixRequirements(r.Context(), vacancyID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"requirements": reqs,
		"count":        len(reqs),
	})
}

// handleUpdateRequirement updates a matrix row
func (s *Server) handleUpdateRequirement(w http.ResponseWriter, r *http.Request) {
	reqID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid requirement ID")
		return
	}

	var req requirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	input, status, msg := s.requirementInput(r, req)
	if msg != "" {
		s.errorResponse(w, status, msg)
		return
	}

	row, err := s.db.UpdateMatrixRequirement(r.Context(), reqID, input)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if row == nil {
		s.errorResponse(w, http.StatusNotFound, "Requirement not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, row)
}

// handleDeleteRequirement deletes a matrix row
func (s *Server) handleDeleteRequirement(w http.ResponseWriter, r *http.Request) {
	reqID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid requirement ID")
		return
	}

	if err := s.db.DeleteMatrixRequirement(r.Context(), reqID); err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
