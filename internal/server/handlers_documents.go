package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/gabriel/crewdocs/internal/reconcile"
)

// handleCreateDocuments ingests documents for a candidate. The body may be a
// single document object or an array, in any of the upstream payload shapes;
// legacy field aliases are collapsed by the reconcile adapter before storage.
func (s *Server) handleCreateDocuments(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.db.GetCandidateByID(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var records []reconcile.DocumentRecord
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &records); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
	} else {
		var rec reconcile.DocumentRecord
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		records = append(records, rec)
	}

	docs, err := reconcile.CanonicalDocuments(records)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	for _, doc := range docs {
		if doc.Name == "" {
			s.errorResponse(w, http.StatusBadRequest, "Document name is required")
			return
		}
	}

	stored := make([]any, 0, len(docs))
	for _, doc := range docs {
		row, err := s.db.CreateCandidateDocument(r.Context(), candidateID, doc)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		stored = append(stored, row)
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"documents": stored,
		"count":     len(stored),
	})
}

// handleListDocuments lists all documents for a candidate
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	docs, err := s.db.ListCandidateDocuments(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"documents": docs,
		"count":     len(docs),
	})
}

// handleGetDocument retrieves a document by ID
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	docID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document ID")
		return
	}

	doc, err := s.db.GetCandidateDocumentByID(r.Context(), docID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if doc == nil {
		s.errorResponse(w, http.StatusNotFound, "Document not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, doc)
}

// handleDeleteDocument deletes a document
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document ID")
		return
	}

	if err := s.db.DeleteCandidateDocument(r.Context(), docID); err != nil {
		s.errorResponse(w, httpStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
