package report

import (
	"encoding/json"
	"io"

	"github.com/hariharan346/security-guardian/internal/types"
)

// Envelope is the structured output consumed by CI and hook integrations.
type Envelope struct {
	Blocking bool            `json:"blocking"`
	Hygiene  []string        `json:"hygiene,omitempty"`
	Issues   []types.Finding `json:"issues"`
}

// WriteJSON emits the scan envelope. Issues is never null in the output.
func WriteJSON(w io.Writer, env Envelope) error {
	if env.Issues == nil {
		env.Issues = []types.Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}
