package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/gabriel/crewdocs/internal/db"
)

// catalogRequest is the create payload for a catalog entry
type catalogRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=300"`
	Code         string `json:"code" validate:"omitempty,max=40"`
	Abbreviation string `json:"abbreviation" validate:"omitempty,max=40"`
}

// handleCreateCatalogDocument creates a catalog entry
func (s *Server) handleCreateCatalogDocument(w http.ResponseWriter, r *http.Request) {
	var req catalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	doc, err := s.db.CreateCatalogDocument(r.Context(), db.CatalogDocumentCreateInput{
		Name:         req.Name,
		Code:         req.Code,
		Abbreviation: req.Abbreviation,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, doc)
}

// handleListCatalogDocuments lists catalog entries
func (s *Server) handleListCatalogDocuments(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 100, 500)
	offset := parseQueryInt(r, "offset", 0, 0)

	docs, err := s.db.ListCatalogDocuments(r.Context(), limit, offset)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"catalog": docs,
		"count":   len(docs),
		"limit":   limit,
		"offset":  offset,
	})
}

// handleGetCatalogDocument retrieves a catalog entry by ID
func (s *Server) handleGetCatalogDocument(w http.ResponseWriter, r *http.Request) {
	docID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid catalog document ID")
		return
	}

	doc, err := s.db.GetCatalogDocumentByID(r.Context(), docID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if doc == nil {
		s.errorResponse(w, http.StatusNotFound, "Catalog document not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, doc)
}

// handleDeleteCatalogDocument deletes a catalog entry
func (s *Server) handleDeleteCatalogDocument(w http.ResponseWriter, r *http.Request) {
	docID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid catalog document ID")
		return
	}

	if err := s.db.DeleteCatalogDocument(r.Context(), docID); err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
