package reconcile

// Default similarity thresholds. These cutoffs are a behavioral contract
// shared with every consumer of the engine; changing them changes verdicts.
const (
	defaultContainmentScore  = 0.8
	defaultCodeTokenScore    = 0.85
	defaultKeywordBaseScore  = 0.7
	defaultKeywordStepScore  = 0.1
	defaultSemanticFloor     = 0.7
	defaultSemanticSatisfied = 0.9
	defaultSemanticPartial   = 0.8
)

// Config carries the similarity thresholds and the domain keyword list as an
// explicit value, so tests can substitute them without touching package state.
type Config struct {
	// ContainmentScore is returned when one normalized name contains the other.
	ContainmentScore float64
	// CodeTokenScore is returned when both names carry the same regulatory-code token.
	CodeTokenScore float64
	// KeywordBaseScore is the score for one shared domain keyword;
	// KeywordStepScore is added per additional shared keyword.
	KeywordBaseScore float64
	KeywordStepScore float64
	// SemanticFloor is the strict lower bound a similarity score must exceed
	// for the semantic-name strategy to accept a document.
	SemanticFloor float64
	// SemanticSatisfied and SemanticPartial bound the decision table for
	// semantic-name matches: >= Satisfied is trusted outright, >= Partial is
	// downgraded to a partial verdict.
	SemanticSatisfied float64
	SemanticPartial   float64
	// Keywords is the domain vocabulary (already normalized) used by the
	// shared-keyword similarity rule.
	Keywords []string
}

// defaultKeywords is the safety / occupational-health / maritime vocabulary
// used by the keyword-overlap similarity rule. Terms are stored normalized.
var defaultKeywords = []string{
	"seguranca",
	"trabalho",
	"altura",
	"espaco",
	"confinado",
	"primeiros",
	"socorros",
	"incendio",
	"combate",
	"salvatagem",
	"sobrevivencia",
	"resgate",
	"emergencia",
	"offshore",
	"maritimo",
	"embarcacao",
	"plataforma",
	"eletricidade",
	"quimicos",
	"movimentacao",
	"cargas",
	"mergulho",
}

// DefaultConfig returns the production thresholds and keyword list.
func DefaultConfig() Config {
	keywords := make([]string, len(defaultKeywords))
	copy(keywords, defaultKeywords)
	return Config{
		ContainmentScore:  defaultContainmentScore,
		CodeTokenScore:    defaultCodeTokenScore,
		KeywordBaseScore:  defaultKeywordBaseScore,
		KeywordStepScore:  defaultKeywordStepScore,
		SemanticFloor:     defaultSemanticFloor,
		SemanticSatisfied: defaultSemanticSatisfied,
		SemanticPartial:   defaultSemanticPartial,
		Keywords:          keywords,
	}
}
