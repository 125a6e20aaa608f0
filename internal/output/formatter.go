package output

import (
	"io"

	"github.com/resights/ownercalc/internal/entity"
	"github.com/resights/ownercalc/internal/ownership"
)

// Format determines output detail
type Format string

const (
	FormatText  Format = "text"  // Human-readable, paths spelled out
	FormatQuiet Format = "quiet" // One-line answers, for scripting
	FormatJSON  Format = "json"  // Machine-readable JSON
)

// EntityList is a set-valued query result prepared for presentation.
type EntityList struct {
	Subject  entity.Entity   `json:"subject"`
	Relation string          `json:"relation"` // "all owners", "direct owners", "owned"
	Entities []entity.Entity `json:"entities"`
}

// Formatter defines output formatting interface
type Formatter interface {
	Calculation(res *ownership.CalculationResult, warnings []string, w io.Writer) error
	EntityList(list *EntityList, w io.Writer) error
}

// NewFormatter creates the appropriate formatter for a format name; unknown
// names fall back to text.
func NewFormatter(format string) Formatter {
	switch Format(format) {
	case FormatQuiet:
		return &QuietFormatter{}
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &TextFormatter{}
	}
}
