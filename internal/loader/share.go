package loader

import (
	"strconv"
	"strings"

	"github.com/resights/ownercalc/internal/errors"
)

// ShareRange is a parsed share string, converted from percentages to
// fractions. Raw data reports ownership as exact percentages ("100%"),
// ranges ("5-10%") or open lower bounds ("<5%"); the range keeps all three
// readings so the caller can pick which bound feeds the graph.
type ShareRange struct {
	Lower   float64
	Average float64
	Upper   float64
}

// Bound selects which reading of a ShareRange becomes the edge weight.
type Bound string

const (
	BoundLower   Bound = "lower"
	BoundAverage Bound = "average"
	BoundUpper   Bound = "upper"
)

// ParseBound validates a bound name from a flag or config value.
func ParseBound(s string) (Bound, error) {
	switch Bound(s) {
	case BoundLower, BoundAverage, BoundUpper:
		return Bound(s), nil
	case "":
		return BoundAverage, nil
	default:
		return "", errors.Validationf("unknown bound %q, expected lower, average or upper", s)
	}
}

// Select returns the fraction for the given bound.
func (r ShareRange) Select(b Bound) float64 {
	switch b {
	case BoundLower:
		return r.Lower
	case BoundUpper:
		return r.Upper
	default:
		return r.Average
	}
}

// ParseShare parses a share string into fractional bounds.
//
//	"100%"  -> {1, 1, 1}
//	"33%"   -> {0.33, 0.33, 0.33}
//	"5-10%" -> {0.05, 0.075, 0.10}
//	"<5%"   -> {0, 0.025, 0.05}
//
// Anything else fails validation; the engine never sees an unparsed share.
func ParseShare(s string) (ShareRange, error) {
	raw := strings.TrimSpace(s)
	if !strings.HasSuffix(raw, "%") {
		return ShareRange{}, errors.Validationf("share %q does not end in %%", s)
	}
	body := strings.TrimSuffix(raw, "%")

	switch {
	case strings.HasPrefix(body, "<"):
		upper, err := parsePercent(body[1:])
		if err != nil {
			return ShareRange{}, errors.Validationf("share %q: %v", s, err)
		}
		return ShareRange{Lower: 0, Average: upper / 2, Upper: upper}, nil

	case strings.Contains(body, "-"):
		parts := strings.SplitN(body, "-", 2)
		lower, err := parsePercent(parts[0])
		if err != nil {
			return ShareRange{}, errors.Validationf("share %q: %v", s, err)
		}
		upper, err := parsePercent(parts[1])
		if err != nil {
			return ShareRange{}, errors.Validationf("share %q: %v", s, err)
		}
		if lower > upper {
			return ShareRange{}, errors.Validationf("share %q: lower bound above upper bound", s)
		}
		return ShareRange{Lower: lower, Average: (lower + upper) / 2, Upper: upper}, nil

	default:
		exact, err := parsePercent(body)
		if err != nil {
			return ShareRange{}, errors.Validationf("share %q: %v", s, err)
		}
		return ShareRange{Lower: exact, Average: exact, Upper: exact}, nil
	}
}

// parsePercent converts a percentage literal to a fraction, rejecting values
// outside [0, 100].
func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Validationf("not a number: %q", s)
	}
	if v < 0 || v > 100 {
		return 0, errors.Validationf("percentage %v outside [0, 100]", v)
	}
	return v / 100, nil
}
