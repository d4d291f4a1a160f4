package export

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gabriel/crewdocs/internal/reconcile"
)

func TestWriteExcel(t *testing.T) {
	docID := uuid.New()
	validUntil := "2027-01-31"
	cmp := Comparison{
		VacancyTitle:  "Offshore Rigger",
		CandidateName: "Maria Souza",
		Rows: []ComparisonRow{
			{
				RequirementName: "NR-35 Trabalho em Altura",
				Obligation:      "mandatory",
				Verdict: reconcile.Verdict{
					RequirementID:   uuid.New(),
					DocumentID:      &docID,
					Status:          reconcile.StatusSatisfied,
					MatchType:       reconcile.MatchCode,
					SimilarityScore: 0.9,
					ValidityStatus:  reconcile.ValidityValid,
					ValidityDate:    &validUntil,
					Observations:    "Code match | Document valid",
				},
			},
			{
				RequirementName: "Curso de Salvatagem",
				Obligation:      "mandatory",
				Verdict: reconcile.Verdict{
					RequirementID:  uuid.New(),
					Status:         reconcile.StatusPending,
					MatchType:      reconcile.MatchNone,
					ValidityStatus: reconcile.ValidityNotApplicable,
					Observations:   "No matching document found",
				},
			},
		},
		Summary: reconcile.Summary{Total: 2, Satisfied: 1, Pending: 1, AdherencePercent: 50},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, cmp))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Offshore Rigger", title)

	header, err := f.GetCellValue(sheetName, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Requirement", header)

	firstReq, err := f.GetCellValue(sheetName, "A4")
	require.NoError(t, err)
	assert.Equal(t, "NR-35 Trabalho em Altura", firstReq)

	firstStatus, err := f.GetCellValue(sheetName, "C4")
	require.NoError(t, err)
	assert.Equal(t, string(reconcile.StatusSatisfied), firstStatus)

	secondObs, err := f.GetCellValue(sheetName, "H5")
	require.NoError(t, err)
	assert.Equal(t, "No matching document found", secondObs)

	summary, err := f.GetCellValue(sheetName, "A7")
	require.NoError(t, err)
	assert.Equal(t, "Adherence: 50%", summary)
}
