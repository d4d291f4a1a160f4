package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/gabriel/crewdocs/internal/db"
)

// vacancyRequest is the create/update payload for a vacancy
type vacancyRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	ClientName  string `json:"client_name" validate:"omitempty,max=200"`
	Description string `json:"description" validate:"omitempty,max=5000"`
}

// handleCreateVacancy creates a new vacancy
func (s *Server) handleCreateVacancy(w http.ResponseWriter, r *http.Request) {
	var req vacancyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	vacancy, err := s.db.CreateVacancy(r.Context(), db.VacancyCreateInput{
		Title:       req.Title,
		ClientName:  req.ClientName,
		Description: req.Description,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, vacancy)
}

// handleListVacancies lists vacancies with pagination
func (s *Server) handleListVacancies(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 200)
	offset := parseQueryInt(r, "offset", 0, 0)

	vacancies, err := s.db.ListVacancies(r.Context(), limit, offset)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"vacancies": vacancies,
		"count":     len(vacancies),
		"limit":     limit,
		"offset":    offset,
	})
}

// handleGetVacancy retrieves a vacancy by ID
func (s *Server) handleGetVacancy(w http.ResponseWriter, r *http.Request) {
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

	s.jsonResponse(w, http.StatusOK, vacancy)
}

// handleUpdateVacancy updates a vacancy
func (s *Server) handleUpdateVacancy(w http.ResponseWriter, r *http.Request) {
	vacancyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid vacancy ID")
		return
	}

	var req vacancyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	vacancy, err := s.db.UpdateVacancy(r.Context(), vacancyID, db.VacancyCreateInput{
		Title:       req.Title,
		ClientName:  req.ClientName,
		Description: req.Description,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if vacancy == nil {
		s.errorResponse(w, http.StatusNotFound, "Vacancy not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, vacancy)
}

// handleDeleteVacancy deletes a vacancy and its requirement matrix
func (s *Server) handleDeleteVacancy(w http.ResponseWriter, r *http.Request) {
	vacancyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid vacancy ID")
		return
	}

	if err := s.db.DeleteVacancy(r.Context(), vacancyID); err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
