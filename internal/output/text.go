package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/resights/ownercalc/internal/ownership"
)

// TextFormatter renders results the way the CLI has always printed them:
// every contributing path spelled out hop by hop, then the total.
type TextFormatter struct{}

func (f *TextFormatter) Calculation(res *ownership.CalculationResult, warnings []string, w io.Writer) error {
	for _, warning := range warnings {
		if _, err := fmt.Fprintf(w, "Warning: %s\n", warning); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Ownership paths from %s to %s:\n", res.Source.Name, res.Target.Name); err != nil {
		return err
	}

	if len(res.Paths) == 0 {
		if _, err := fmt.Fprintln(w, "  (none)"); err != nil {
			return err
		}
	}
	for _, p := range res.Paths {
		names := make([]string, 0, len(p.Entities))
		for _, e := range p.Entities {
			names = append(names, e.Name)
		}
		if _, err := fmt.Fprintf(w, "  %s (%s)\n", strings.Join(names, " -> "), formatPercent(p.Weight)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Total ownership: %s\n", formatPercent(res.Fraction))
	return err
}

func (f *TextFormatter) EntityList(list *EntityList, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s of %s:\n", list.Relation, list.Subject.Name); err != nil {
		return err
	}
	for _, e := range list.Entities {
		if _, err := fmt.Fprintf(w, "  - %s (%s)\n", e.Name, e.ID); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total: %d\n", len(list.Entities))
	return err
}

// QuietFormatter prints one-line answers for pipelines and hooks.
type QuietFormatter struct{}

func (f *QuietFormatter) Calculation(res *ownership.CalculationResult, warnings []string, w io.Writer) error {
	_, err := fmt.Fprintln(w, formatPercent(res.Fraction))
	return err
}

func (f *QuietFormatter) EntityList(list *EntityList, w io.Writer) error {
	for _, e := range list.Entities {
		if _, err := fmt.Fprintln(w, e.Name); err != nil {
			return err
		}
	}
	return nil
}

// formatPercent renders a fraction as a percentage with two decimals. Values
// above 100% stay visible as-is; clamping for display is the caller's call.
func formatPercent(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}
