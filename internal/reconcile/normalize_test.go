package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Lowercases(t *testing.T) {
	assert.Equal(t, "nr-35 trabalho em altura", Normalize("NR-35 Trabalho em Altura"))
}

func TestNormalize_StripsAccents(t *testing.T) {
	assert.Equal(t, "treinamento basico de seguranca", Normalize("Treinamento Básico de Segurança"))
	assert.Equal(t, "espaco confinado", Normalize("Espaço Confinado"))
}

func TestNormalize_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, "cbsp", Normalize("  CBSP  "))
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
}

func TestNormalizePtr_Nil(t *testing.T) {
	assert.Equal(t, "", normalizePtr(nil))
	assert.Equal(t, "nr-10", normalizePtr(strPtr("NR-10")))
}
