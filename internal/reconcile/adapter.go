package reconcile

import (
	"fmt"

	"github.com/google/uuid"
)

// DocumentRecord is the loosely-shaped document payload accepted at the
// boundary. Several historical schemas coexist upstream (extraction webhook,
// spreadsheet import, legacy forms), each with its own field names for the
// same data; this record carries every known alias and CanonicalDocument
// collapses them once, so the engine only ever sees one shape.
type DocumentRecord struct {
	ID string `json:"id,omitempty"`

	Name          string `json:"name,omitempty"`
	NomeDocumento string `json:"nome_documento,omitempty"`

	Code   *string `json:"code,omitempty"`
	Codigo *string `json:"codigo,omitempty"`

	CodeSubtype   *string `json:"code_subtype,omitempty"`
	SubtipoCodigo *string `json:"subtipo_codigo,omitempty"`

	Abbreviation   *string `json:"abbreviation,omitempty"`
	Sigla          *string `json:"sigla,omitempty"`
	SiglaDocumento *string `json:"sigla_documento,omitempty"`

	CatalogID   *string `json:"catalog_id,omitempty"`
	DocumentoID *string `json:"documento_id,omitempty"`

	TotalHours   *int `json:"total_hours,omitempty"`
	CargaHoraria *int `json:"carga_horaria,omitempty"`

	TheoryHours         *int `json:"theory_hours,omitempty"`
	CargaHorariaTeorica *int `json:"carga_horaria_teorica,omitempty"`

	PracticeHours       *int `json:"practice_hours,omitempty"`
	CargaHorariaPratica *int `json:"carga_horaria_pratica,omitempty"`

	Modality   *string `json:"modality,omitempty"`
	Modalidade *string `json:"modalidade,omitempty"`

	ExpiryDate   *string `json:"expiry_date,omitempty"`
	DataValidade *string `json:"data_validade,omitempty"`

	IsDeclaration bool  `json:"is_declaration,omitempty"`
	Declaracao    *bool `json:"declaracao,omitempty"`
}

// CanonicalDocument maps a DocumentRecord into the canonical engine shape.
// When both an alias and its modern counterpart are set, the modern field
// wins. A missing ID gets a fresh one; a malformed ID or catalog link is an
// error.
func CanonicalDocument(rec DocumentRecord) (CandidateDocument, error) {
	doc := CandidateDocument{
		Name:          firstNonEmpty(rec.Name, rec.NomeDocumento),
		Code:          firstStringPtr(rec.Code, rec.Codigo),
		CodeSubtype:   firstStringPtr(rec.CodeSubtype, rec.SubtipoCodigo),
		Abbreviation:  firstStringPtr(rec.Abbreviation, rec.Sigla, rec.SiglaDocumento),
		TotalHours:    firstIntPtr(rec.TotalHours, rec.CargaHoraria),
		TheoryHours:   firstIntPtr(rec.TheoryHours, rec.CargaHorariaTeorica),
		PracticeHours: firstIntPtr(rec.PracticeHours, rec.CargaHorariaPratica),
		Modality:      firstStringPtr(rec.Modality, rec.Modalidade),
		ExpiryDate:    firstStringPtr(rec.ExpiryDate, rec.DataValidade),
		IsDeclaration: rec.IsDeclaration,
	}
	if rec.Declaracao != nil {
		doc.IsDeclaration = doc.IsDeclaration || *rec.Declaracao
	}

	if rec.ID == "" {
		doc.ID = uuid.New()
	} else {
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			return CandidateDocument{}, fmt.Errorf("invalid document id %q: %w", rec.ID, err)
		}
		doc.ID = id
	}

	if link := firstStringPtr(rec.CatalogID, rec.DocumentoID); link != nil {
		id, err := uuid.Parse(*link)
		if err != nil {
			return CandidateDocument{}, fmt.Errorf("invalid catalog link %q: %w", *link, err)
		}
		doc.CatalogID = &id
	}

	return doc, nil
}

// CanonicalDocuments maps a batch of records, failing on the first bad one.
func CanonicalDocuments(recs []DocumentRecord) ([]CandidateDocument, error) {
	docs := make([]CandidateDocument, 0, len(recs))
	for i, rec := range recs {
		doc, err := CanonicalDocument(rec)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstStringPtr(values ...*string) *string {
	for _, v := range values {
		if v != nil && *v != "" {
			return v
		}
	}
	return nil
}

func firstIntPtr(values ...*int) *int {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
