package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorer_ExactMatchAfterNormalization(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	assert.Equal(t, 1.0, scorer.Score("NR-35 Trabalho em Altura", "nr-35 trabalho em altura"))
	assert.Equal(t, 1.0, scorer.Score("Segurança", "seguranca"))
}

func TestScorer_Containment(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	score := scorer.Score("Trabalho em Altura", "NR-35 Trabalho em Altura Supervisor")
	assert.Equal(t, 0.8, score)
}

func TestScorer_SharedCodeToken(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	score := scorer.Score("NR-33 Espaços Confinados Vigia", "Certificado NR-33 Autorizado")
	assert.Equal(t, 0.85, score)
}

func TestScorer_DifferentCodeTokensFallThrough(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	// Codes differ, so the code rule does not apply; the shared keyword rule
	// fires on "seguranca".
	score := scorer.Score("NR-10 Segurança Elétrica", "NR-12 Segurança de Máquinas")
	assert.Equal(t, 0.7, score)
}

func TestScorer_SharedKeywordsBaseScore(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	// One shared keyword ("salvatagem") -> base 0.7.
	score := scorer.Score("Equipamentos de Salvatagem", "Manutencao Salvatagem Nivel 1")
	assert.Equal(t, 0.7, score)
}

func TestScorer_SharedKeywordsStep(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	// Two shared keywords ("primeiros", "socorros") -> 0.7 + 0.1.
	score := scorer.Score("Curso de Primeiros Socorros", "Treinamento de Primeiros Socorros Básico")
	assert.InDelta(t, 0.8, score, 1e-9)
}

func TestScorer_TokenOverlapFallback(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	// No containment, no codes, no domain keywords. Tokens: "operador de
	// guindaste" vs "guindaste torre": 1 common token over the longer
	// list (3).
	score := scorer.Score("Operador de Guindaste", "Guindaste Torre")
	assert.InDelta(t, 1.0/3.0, score, 1e-9)
}

func TestScorer_NoCommonTokens(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	assert.Equal(t, 0.0, scorer.Score("Direção Defensiva", "Culinária"))
}

func TestScorer_EmptyInputs(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	assert.Equal(t, 0.0, scorer.Score("", "anything"))
	assert.Equal(t, 0.0, scorer.Score("anything", ""))
}

func TestScorer_DeterministicForFixedInputs(t *testing.T) {
	scorer := NewScorer(DefaultConfig())
	a, b := "Curso de Primeiros Socorros", "Treinamento de Primeiros Socorros Básico"
	first := scorer.Score(a, b)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scorer.Score(a, b))
	}
}

func TestScorer_CustomThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContainmentScore = 0.75
	scorer := NewScorer(cfg)
	assert.Equal(t, 0.75, scorer.Score("Altura", "Trabalho em Altura"))
}
