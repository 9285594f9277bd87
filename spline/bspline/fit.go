package bspline

import "fmt"

// Spline is a curve fitted against one y-data vector. It shares the
// immutable Domain it was built from and owns only its coefficient vector
// and a lazily computed dense sampling of the curve.
type Spline struct {
	d     *Domain
	a     []float64
	curve []float64
}

// Fit solves for the spline coefficients of the given y-data vector, which
// must align with the domain's sample abscissas. The solve reuses the
// factorization cached at domain setup.
func (d *Domain) Fit(y []float64) (*Spline, error) {
	if len(y) != len(d.x) {
		return nil, ErrLengthMismatch
	}

	b := make([]float64, d.m+1)
	for m := range b {
		var sum float64
		for j, xj := range d.x {
			sum += y[j] * d.basis(m, xj)
		}
		b[m] = sum * d.dx
	}

	if err := d.lu.Solve(b); err != nil {
		return nil, fmt.Errorf("bspline: solving for coefficients: %w", err)
	}

	return &Spline{d: d, a: b}, nil
}

// Domain returns the domain the spline was fitted against.
func (s *Spline) Domain() *Domain { return s.d }

// Evaluate returns the fitted curve value at x: the weighted sum of every
// basis function. Outside [xmin, xmax] the compact support leaves only the
// reflected boundary terms, so values decay to zero within two node
// spacings.
func (s *Spline) Evaluate(x float64) float64 {
	var y float64
	for i := 0; i <= s.d.m; i++ {
		y += s.a[i] * s.d.basis(i, x)
	}
	return y
}

// Coefficient returns the fitted weight of basis function n, or 0 when n
// lies outside [0, M].
func (s *Spline) Coefficient(n int) float64 {
	if n < 0 || n > s.d.m {
		return 0
	}
	return s.a[n]
}

// Coefficients returns a copy of the coefficient vector.
func (s *Spline) Coefficients() []float64 {
	c := make([]float64, len(s.a))
	copy(c, s.a)
	return c
}

// Curve returns the fitted curve sampled at each node abscissa, computed
// once and cached. Callers must not modify the returned slice.
func (s *Spline) Curve() []float64 {
	if s.curve == nil {
		curve := make([]float64, s.d.m+1)
		for n := range curve {
			curve[n] = s.Evaluate(s.d.xmin + float64(n)*s.d.dx)
		}
		s.curve = curve
	}
	return s.curve
}
