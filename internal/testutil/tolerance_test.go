package testutil

import (
	"math"
	"testing"
)

func TestMaxAbs(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"positive", []float64{1, 3, 2}, 3},
		{"negative dominates", []float64{1, -5, 2}, 5},
		{"zeros", []float64{0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxAbs(tt.in); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequireHelpers(t *testing.T) {
	RequireNear(t, 1.0000001, 1.0, 1e-5)
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2 + 1e-10}, 1e-9)
	RequireFinite(t, []float64{0, -1, math.SmallestNonzeroFloat64})
}
