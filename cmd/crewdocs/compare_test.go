package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabriel/crewdocs/internal/reconcile"
)

func TestLoadMatrix(t *testing.T) {
	content := `[
		{
			"id": "0b9f1c3e-8a11-4a5b-9b84-000000000001",
			"name": "NR-35 Trabalho em Altura",
			"code": "NR-35",
			"obligation": "mandatory",
			"required_hours": 8
		},
		{
			"name": "Curso de Salvatagem",
			"abbreviation": "CBSP"
		}
	]`
	path := filepath.Join(t.TempDir(), "matrix.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m, err := loadMatrix(path)
	require.NoError(t, err)
	require.Len(t, m.engine, 2)

	assert.Equal(t, "0b9f1c3e-8a11-4a5b-9b84-000000000001", m.engine[0].ID.String())
	assert.Equal(t, "NR-35 Trabalho em Altura", m.engine[0].Name)
	require.NotNil(t, m.engine[0].RequiredHours)
	assert.Equal(t, 8, *m.engine[0].RequiredHours)

	// A missing id gets generated so the row is still addressable
	assert.NotEqual(t, m.engine[0].ID, m.engine[1].ID)
	assert.Equal(t, "mandatory", m.obligations[1], "obligation defaults to mandatory")
}

func TestLoadMatrix_InvalidID(t *testing.T) {
	content := `[{"id": "not-a-uuid", "name": "NR-35"}]`
	path := filepath.Join(t.TempDir(), "matrix.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := loadMatrix(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id")
}

func TestLoadDocuments_LegacyAliases(t *testing.T) {
	content := `[
		{
			"nome_documento": "Certificado CBSP",
			"sigla": "CBSP",
			"carga_horaria": 40,
			"data_validade": "2027-06-30"
		}
	]`
	path := filepath.Join(t.TempDir(), "documents.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	docs, err := loadDocuments(path)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, "Certificado CBSP", docs[0].Name)
	require.NotNil(t, docs[0].Abbreviation)
	assert.Equal(t, "CBSP", *docs[0].Abbreviation)
	require.NotNil(t, docs[0].TotalHours)
	assert.Equal(t, 40, *docs[0].TotalHours)
}

func TestWriteReport(t *testing.T) {
	m := &loadedMatrix{
		names:       []string{"NR-35 Trabalho em Altura"},
		obligations: []string{"mandatory"},
	}
	verdicts := []reconcile.Verdict{
		{
			Status:         reconcile.StatusPending,
			MatchType:      reconcile.MatchNone,
			ValidityStatus: reconcile.ValidityNotApplicable,
			Observations:   "No matching document found",
		},
	}
	summary := reconcile.Aggregate(verdicts)

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, writeReport(path, m, verdicts, summary))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
