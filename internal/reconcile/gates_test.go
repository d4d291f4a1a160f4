package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateGates_HoursSufficient(t *testing.T) {
	req := Requirement{RequiredHours: intPtr(8)}
	doc := &CandidateDocument{TotalHours: intPtr(8)}

	report := evaluateGates(req, doc, testNow)

	assert.True(t, report.HoursSufficient)
}

func TestEvaluateGates_HoursInsufficient(t *testing.T) {
	req := Requirement{RequiredHours: intPtr(8)}
	doc := &CandidateDocument{TotalHours: intPtr(4)}

	report := evaluateGates(req, doc, testNow)

	assert.False(t, report.HoursSufficient)
	assert.Equal(t, 4, report.ActualHours)
	assert.Equal(t, 8, report.RequiredHours)
}

func TestEvaluateGates_NoRequiredHoursAlwaysSufficient(t *testing.T) {
	doc := &CandidateDocument{TotalHours: intPtr(0)}

	assert.True(t, evaluateGates(Requirement{}, doc, testNow).HoursSufficient)
	assert.True(t, evaluateGates(Requirement{RequiredHours: intPtr(0)}, doc, testNow).HoursSufficient)
}

func TestEvaluateGates_MissingDocumentHoursFailsGate(t *testing.T) {
	req := Requirement{RequiredHours: intPtr(8)}
	doc := &CandidateDocument{}

	report := evaluateGates(req, doc, testNow)

	assert.False(t, report.HoursSufficient)
	assert.Equal(t, 0, report.ActualHours)
}

func TestEvaluateGates_ValidityDelegated(t *testing.T) {
	doc := &CandidateDocument{ExpiryDate: strPtr("2020-01-01")}
	assert.Equal(t, ValidityExpired, evaluateGates(Requirement{}, doc, testNow).Validity)

	doc = &CandidateDocument{ExpiryDate: strPtr("2030-01-01")}
	assert.Equal(t, ValidityValid, evaluateGates(Requirement{}, doc, testNow).Validity)

	doc = &CandidateDocument{}
	assert.Equal(t, ValidityNotApplicable, evaluateGates(Requirement{}, doc, testNow).Validity)
}

func TestEvaluateGates_ModalityEqual(t *testing.T) {
	req := Requirement{Modality: strPtr("Presencial")}
	doc := &CandidateDocument{Modality: strPtr("presencial")}

	report := evaluateGates(req, doc, testNow)

	assert.True(t, report.ModalityCompatible)
	assert.Empty(t, report.ModalityNote)
}

func TestEvaluateGates_ModalitySameEquivalenceClass(t *testing.T) {
	req := Requirement{Modality: strPtr("EAD")}
	doc := &CandidateDocument{Modality: strPtr("Online")}

	report := evaluateGates(req, doc, testNow)

	assert.True(t, report.ModalityCompatible)
}

func TestEvaluateGates_ModalityInPersonMismatchNote(t *testing.T) {
	req := Requirement{Modality: strPtr("Presencial")}
	doc := &CandidateDocument{Modality: strPtr("EAD")}

	report := evaluateGates(req, doc, testNow)

	assert.False(t, report.ModalityCompatible)
	assert.Contains(t, report.ModalityNote, "in-person")
	assert.Contains(t, report.ModalityNote, "EAD")
}

func TestEvaluateGates_ModalityGenericMismatchNote(t *testing.T) {
	req := Requirement{Modality: strPtr("EAD")}
	doc := &CandidateDocument{Modality: strPtr("Presencial")}

	report := evaluateGates(req, doc, testNow)

	assert.False(t, report.ModalityCompatible)
	assert.Contains(t, report.ModalityNote, "Different modality")
	assert.Contains(t, report.ModalityNote, "EAD")
	assert.Contains(t, report.ModalityNote, "Presencial")
}

func TestEvaluateGates_ModalityNotApplicableSkipsGate(t *testing.T) {
	doc := &CandidateDocument{Modality: strPtr("EAD")}

	for _, modality := range []*string{nil, strPtr("N/A"), strPtr("Não Aplicável"), strPtr("not applicable")} {
		report := evaluateGates(Requirement{Modality: modality}, doc, testNow)
		assert.True(t, report.ModalityCompatible)
	}
}

func TestEvaluateGates_DocumentWithoutModalitySkipsGate(t *testing.T) {
	req := Requirement{Modality: strPtr("Presencial")}
	doc := &CandidateDocument{}

	assert.True(t, evaluateGates(req, doc, testNow).ModalityCompatible)
}
