package output

import (
	"encoding/json"
	"io"

	"github.com/resights/ownercalc/internal/ownership"
)

// JSONFormatter emits machine-readable results for tooling and AI
// assistants. The payloads are plain serializable values with no engine
// internals.
type JSONFormatter struct{}

type calculationPayload struct {
	*ownership.CalculationResult
	Warnings []string `json:"warnings,omitempty"`
}

func (f *JSONFormatter) Calculation(res *ownership.CalculationResult, warnings []string, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(calculationPayload{CalculationResult: res, Warnings: warnings})
}

func (f *JSONFormatter) EntityList(list *EntityList, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
