package bspline

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spline/internal/testutil"
)

func denseDomain(t *testing.T) *Domain {
	t.Helper()
	d, err := NewDomain(testutil.Linspace(0, 20, 101), 2.0)
	if err != nil {
		t.Fatalf("NewDomain: %v", err)
	}
	return d
}

func TestBasis_InteriorPeak(t *testing.T) {
	d := denseDomain(t)
	for _, m := range []int{2, 3, d.m / 2, d.m - 2} {
		xm := d.xmin + float64(m)*d.dx
		testutil.RequireNear(t, d.basis(m, xm), 1.0, 1e-12)
	}
}

func TestBasis_BoundaryDiffersFromInterior(t *testing.T) {
	d := denseDomain(t)
	// Node 0 picks up the reflected virtual node -1 with coefficient 2,
	// value 0.25 at one node's distance.
	testutil.RequireNear(t, d.basis(0, d.xmin), 1.5, 1e-12)
	testutil.RequireNear(t, d.basis(d.m, d.xmax), 1.5, 1e-12)
	// At node 1's own abscissa the virtual node sits two intervals away,
	// outside its support, so the peak stays 1. At xmin the raw kernel and
	// the subtracted reflection cancel exactly.
	testutil.RequireNear(t, d.basis(1, d.xmin+d.dx), 1.0, 1e-12)
	testutil.RequireNear(t, d.basis(1, d.xmin), 0, 1e-12)
	testutil.RequireNear(t, d.basis(d.m-1, d.xmax), 0, 1e-12)
}

func TestBasis_CompactSupport(t *testing.T) {
	d := denseDomain(t)
	m := d.m / 2
	xm := d.xmin + float64(m)*d.dx
	for _, off := range []float64{2, 2.5, 3, 10} {
		if got := d.basis(m, xm+off*d.dx); got != 0 {
			t.Errorf("basis(%d, peak%+v*dx): got %v, want 0", m, off, got)
		}
		if got := d.basis(m, xm-off*d.dx); got != 0 {
			t.Errorf("basis(%d, peak%+v*dx): got %v, want 0", m, -off, got)
		}
	}
}

func TestBasis_PartitionOfUnity(t *testing.T) {
	// With the reflected boundary terms the basis functions sum to the
	// same constant everywhere on [xmin, xmax], including at the edges.
	d := denseDomain(t)
	for _, x := range []float64{d.xmin, d.xmin + 0.3*d.dx, 5.1, 10, 17.7, d.xmax} {
		sum := 0.0
		for m := 0; m <= d.m; m++ {
			sum += d.basis(m, x)
		}
		testutil.RequireNear(t, sum, 1.5, 1e-9)
	}
}

func TestBasis_Smoothness(t *testing.T) {
	// Value, first and second derivative are continuous across the two
	// breakpoints of the piecewise cubic.
	d := denseDomain(t)
	m := d.m / 2
	xm := d.xmin + float64(m)*d.dx

	f := func(x float64) float64 { return d.basis(m, x) }
	const h = 1e-5

	for _, off := range []float64{-2, -1, 1, 2} {
		xb := xm + off*d.dx

		left := f(xb - h)
		right := f(xb + h)
		if math.Abs(left-right) > 1e-4 {
			t.Errorf("value jump at offset %v: %v vs %v", off, left, right)
		}

		dLeft := (f(xb-h) - f(xb-3*h)) / (2 * h)
		dRight := (f(xb+3*h) - f(xb+h)) / (2 * h)
		if math.Abs(dLeft-dRight) > 5e-3 {
			t.Errorf("derivative jump at offset %v: %v vs %v", off, dLeft, dRight)
		}

		ddLeft := (f(xb-h) - 2*f(xb-2*h) + f(xb-3*h)) / (h * h)
		ddRight := (f(xb+3*h) - 2*f(xb+2*h) + f(xb+h)) / (h * h)
		if math.Abs(ddLeft-ddRight) > 1e-2 {
			t.Errorf("second-derivative jump at offset %v: %v vs %v", off, ddLeft, ddRight)
		}
	}
}

func TestBeta(t *testing.T) {
	d := denseDomain(t)
	tests := []struct {
		m    int
		want float64
	}{
		{0, 2},
		{1, -1},
		{2, 0},
		{d.m / 2, 0},
		{d.m - 2, 0},
		{d.m - 1, -1},
		{d.m, 2},
	}
	for _, tt := range tests {
		if got := d.beta(tt.m); got != tt.want {
			t.Errorf("beta(%d): got %v, want %v", tt.m, got, tt.want)
		}
	}
}
