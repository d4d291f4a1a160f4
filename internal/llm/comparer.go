package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// comparePromptTemplate asks for a single bounded score so the response can
// be parsed without free-text handling.
const comparePromptTemplate = `You compare occupational training document names.
Required document: %q
Candidate document: %q
Do these names refer to the same training/certification? Respond with JSON:
{"score": <number between 0 and 1, where 1 means certainly the same document>}`

// compareResponse is the expected JSON reply shape.
type compareResponse struct {
	Score float64 `json:"score"`
}

// Comparer implements the reconcile engine's NameComparer interface on top of
// the Gemini client.
type Comparer struct {
	client *Client
}

// NewComparer wraps a Client as a name comparer.
func NewComparer(client *Client) *Comparer {
	return &Comparer{client: client}
}

// Compare returns the model's similarity score in [0,1] for two document
// names. Out-of-range replies are clamped; malformed replies are errors so
// the cascade can fall through to its deterministic strategies.
func (c *Comparer) Compare(ctx context.Context, requiredName, documentName string) (float64, error) {
	prompt := fmt.Sprintf(comparePromptTemplate, requiredName, documentName)

	raw, err := c.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return 0, fmt.Errorf("failed to compare names: %w", err)
	}

	var resp compareResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return 0, fmt.Errorf("failed to parse comparison response: %w", err)
	}

	score := resp.Score
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, nil
}
