package loader

import (
	"testing"

	"github.com/resights/ownercalc/internal/errors"
)

func TestParseShare(t *testing.T) {
	tests := []struct {
		share       string
		wantLower   float64
		wantAverage float64
		wantUpper   float64
		wantErr     bool
	}{
		{share: "100%", wantLower: 1, wantAverage: 1, wantUpper: 1},
		{share: "50%", wantLower: 0.5, wantAverage: 0.5, wantUpper: 0.5},
		{share: "<5%", wantLower: 0, wantAverage: 0.025, wantUpper: 0.05},
		{share: "5-10%", wantLower: 0.05, wantAverage: 0.075, wantUpper: 0.10},
		{share: "33-50%", wantLower: 0.33, wantAverage: 0.415, wantUpper: 0.50},
		{share: " 20-25% ", wantLower: 0.20, wantAverage: 0.225, wantUpper: 0.25},
		{share: "0.5%", wantLower: 0.005, wantAverage: 0.005, wantUpper: 0.005},
		{share: "invalid%", wantErr: true},
		{share: "50", wantErr: true},
		{share: "", wantErr: true},
		{share: "150%", wantErr: true},
		{share: "10-5%", wantErr: true},
		{share: "-5%", wantErr: true},
		{share: "<abc%", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.share, func(t *testing.T) {
			got, err := ParseShare(tt.share)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseShare(%q) succeeded, want validation error", tt.share)
				}
				if !errors.IsKind(err, errors.KindValidation) {
					t.Errorf("ParseShare(%q) error kind = %v, want validation", tt.share, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseShare(%q) failed: %v", tt.share, err)
			}
			if !closeTo(got.Lower, tt.wantLower) || !closeTo(got.Average, tt.wantAverage) || !closeTo(got.Upper, tt.wantUpper) {
				t.Errorf("ParseShare(%q) = %+v, want {%v %v %v}",
					tt.share, got, tt.wantLower, tt.wantAverage, tt.wantUpper)
			}
		})
	}
}

func closeTo(a, b float64) bool {
	d := a - b
	return d < 1e-12 && d > -1e-12
}

func TestShareRangeSelect(t *testing.T) {
	r := ShareRange{Lower: 0.05, Average: 0.075, Upper: 0.10}

	if r.Select(BoundLower) != 0.05 {
		t.Error("lower bound not selected")
	}
	if r.Select(BoundAverage) != 0.075 {
		t.Error("average bound not selected")
	}
	if r.Select(BoundUpper) != 0.10 {
		t.Error("upper bound not selected")
	}
}

func TestParseBound(t *testing.T) {
	tests := []struct {
		in      string
		want    Bound
		wantErr bool
	}{
		{in: "", want: BoundAverage},
		{in: "lower", want: BoundLower},
		{in: "average", want: BoundAverage},
		{in: "upper", want: BoundUpper},
		{in: "middle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBound(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseBound(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBound(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseBound(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
