package reconcile

import (
	"fmt"
	"time"
)

// modalityClasses groups modality spellings into equivalence classes. Two
// modalities are compatible when they normalize equal or fall in the same
// class.
var modalityClasses = [][]string{
	{"presencial", "in-person", "in person", "classroom"},
	{"ead", "a distancia", "distancia", "online", "e-learning", "elearning", "remoto", "virtual"},
	{"hibrido", "hibrida", "hybrid", "misto", "blended"},
	{"semipresencial", "semi-presencial", "semi presencial"},
}

// inPersonClass is the index of the in-person equivalence class, which gets a
// dedicated mismatch note.
const inPersonClass = 0

// notApplicableModalities are values treated as "no modality constraint".
var notApplicableModalities = map[string]bool{
	"":               true,
	"n/a":            true,
	"na":             true,
	"nao aplicavel":  true,
	"not applicable": true,
}

// gateReport is the structured fact record produced by the quality gates.
// The status decider and the observation composer both consume it, so the
// displayed text can never contradict the computed status.
type gateReport struct {
	HoursSufficient bool
	ActualHours     int
	RequiredHours   int

	Validity ValidityStatus

	ModalityCompatible bool
	ModalityNote       string
}

// evaluateGates runs the hard gates (hours, validity) and the informational
// modality gate against a matched document.
func evaluateGates(req Requirement, doc *CandidateDocument, now time.Time) gateReport {
	report := gateReport{
		HoursSufficient:    true,
		ModalityCompatible: true,
		Validity:           EvaluateValidity(doc.ExpiryDate, now),
	}

	if req.RequiredHours != nil && *req.RequiredHours > 0 {
		report.RequiredHours = *req.RequiredHours
		if doc.TotalHours != nil {
			report.ActualHours = *doc.TotalHours
		}
		report.HoursSufficient = report.ActualHours >= report.RequiredHours
	}

	evaluateModality(req, doc, &report)
	return report
}

// evaluateModality fills the soft modality gate. A mismatch never changes the
// verdict on its own; it only produces a note.
func evaluateModality(req Requirement, doc *CandidateDocument, report *gateReport) {
	reqModality := normalizePtr(req.Modality)
	docModality := normalizePtr(doc.Modality)
	if notApplicableModalities[reqModality] || notApplicableModalities[docModality] {
		return
	}
	if reqModality == docModality {
		return
	}

	reqClass := modalityClass(reqModality)
	docClass := modalityClass(docModality)
	if reqClass >= 0 && reqClass == docClass {
		return
	}

	report.ModalityCompatible = false
	if reqClass == inPersonClass {
		report.ModalityNote = fmt.Sprintf("Requires in-person training; document modality is %q", *doc.Modality)
		return
	}
	report.ModalityNote = fmt.Sprintf("Different modality: required %q, document %q", *req.Modality, *doc.Modality)
}

// modalityClass returns the equivalence class index of a normalized modality,
// or -1 when it belongs to none.
func modalityClass(modality string) int {
	for class, variants := range modalityClasses {
		for _, v := range variants {
			if modality == v {
				return class
			}
		}
	}
	return -1
}
