package lineage_test

import (
	"errors"
	"math"
	"testing"

	"github.com/scottgigante/prosstt/pkg/lineage"
)

type matrix struct{ rows, cols int }

func (m matrix) Dims() (int, int) { return m.rows, m.cols }

func TestDefaultDensity(t *testing.T) {
	tr := mustNew(t,
		[]lineage.Edge{{"A", "B"}, {"A", "C"}},
		map[lineage.Branch]int{"A": 2, "B": 3, "C": 5},
		"A",
	)
	d := tr.DefaultDensity()

	if err := tr.ValidateDensity(d); err != nil {
		t.Fatalf("ValidateDensity(DefaultDensity()) error: %v", err)
	}

	sum := 0.0
	for _, arr := range d {
		for _, p := range arr {
			if math.Abs(p-0.1) > 1e-12 {
				t.Errorf("density entry = %v, want 0.1", p)
			}
			sum += p
		}
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("density sums to %v, want 1", sum)
	}
}

func TestValidateDensity(t *testing.T) {
	tr := mustNew(t,
		[]lineage.Edge{{"A", "B"}},
		map[lineage.Branch]int{"A": 2, "B": 3},
		"A",
	)

	tests := []struct {
		name    string
		density lineage.Density
		wantErr error
	}{
		{"valid", lineage.Density{"A": {0.2, 0.2}, "B": {0.2, 0.2, 0.2}}, nil},
		{"missing branch", lineage.Density{"A": {0.5, 0.5}}, lineage.ErrDimensionMismatch},
		{"wrong length", lineage.Density{"A": {0.5}, "B": {0.2, 0.2, 0.1}}, lineage.ErrDimensionMismatch},
		{"unknown branch", lineage.Density{"A": {0.2, 0.2}, "Z": {0.2, 0.2, 0.2}}, lineage.ErrUnknownBranch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tr.ValidateDensity(tt.density)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDensity() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDensity() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateExpression(t *testing.T) {
	tr := mustNew(t,
		[]lineage.Edge{{"A", "B"}},
		map[lineage.Branch]int{"A": 4, "B": 6},
		"A",
	)

	tests := []struct {
		name     string
		payload  map[lineage.Branch]lineage.Shaper
		features int
		wantErr  error
	}{
		{"valid", map[lineage.Branch]lineage.Shaper{"A": matrix{4, 100}, "B": matrix{6, 100}}, 100, nil},
		{"wrong rows", map[lineage.Branch]lineage.Shaper{"A": matrix{4, 100}, "B": matrix{5, 100}}, 100, lineage.ErrDimensionMismatch},
		{"wrong cols", map[lineage.Branch]lineage.Shaper{"A": matrix{4, 99}, "B": matrix{6, 100}}, 100, lineage.ErrDimensionMismatch},
		{"missing branch", map[lineage.Branch]lineage.Shaper{"A": matrix{4, 100}}, 100, lineage.ErrDimensionMismatch},
		{"nil matrix", map[lineage.Branch]lineage.Shaper{"A": matrix{4, 100}, "B": nil}, 100, lineage.ErrDimensionMismatch},
		{"unknown branch", map[lineage.Branch]lineage.Shaper{"A": matrix{4, 100}, "Z": matrix{6, 100}}, 100, lineage.ErrUnknownBranch},
		{"zero features", map[lineage.Branch]lineage.Shaper{"A": matrix{4, 0}, "B": matrix{6, 0}}, 0, lineage.ErrDimensionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tr.ValidateExpression(tt.payload, tt.features)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateExpression() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExpression() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
