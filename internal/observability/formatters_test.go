package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gabriel/crewdocs/internal/reconcile"
)

func TestPrintVerdict(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	docID := uuid.New()
	validUntil := "2027-01-31"
	p.PrintVerdict("NR-35 Trabalho em Altura", reconcile.Verdict{
		DocumentID:      &docID,
		Status:          reconcile.StatusSatisfied,
		MatchType:       reconcile.MatchCode,
		SimilarityScore: 0.9,
		ValidityStatus:  reconcile.ValidityValid,
		ValidityDate:    &validUntil,
		Observations:    "Code match | Document valid",
	})
	output := buf.String()

	assert.Contains(t, output, "NR-35 Trabalho em Altura")
	assert.Contains(t, output, "satisfied")
	assert.Contains(t, output, "code")
	assert.Contains(t, output, "90%")
	assert.Contains(t, output, "2027-01-31")
	assert.Contains(t, output, "• Code match")
	assert.Contains(t, output, "• Document valid")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary(reconcile.Summary{
		Total:            4,
		Satisfied:        2,
		Partial:          1,
		Pending:          1,
		AdherencePercent: 63,
	})
	output := buf.String()

	assert.Contains(t, output, "COMPARISON SUMMARY")
	assert.Contains(t, output, "Requirements: 4")
	assert.Contains(t, output, "Adherence:    63%")
}

func TestPrintPendingRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	names := []string{"NR-35", "CBSP", "HUET"}
	verdicts := []reconcile.Verdict{
		{Status: reconcile.StatusSatisfied},
		{Status: reconcile.StatusPending},
		{Status: reconcile.StatusPending},
	}

	p.PrintPendingRequirements(names, verdicts)
	output := buf.String()

	assert.Contains(t, output, "MISSING DOCUMENTS")
	assert.Contains(t, output, "CBSP")
	assert.Contains(t, output, "HUET")
	assert.NotContains(t, output, "NR-35")
}

func TestPrintPendingRequirements_NonePending(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPendingRequirements([]string{"NR-35"}, []reconcile.Verdict{
		{Status: reconcile.StatusSatisfied},
	})

	assert.Empty(t, buf.String())
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	longLine := strings.Repeat("x", 100)
	p.printBox("TITLE", longLine)
	output := buf.String()

	assert.Contains(t, output, "TITLE")
	assert.Contains(t, output, "...")
}
