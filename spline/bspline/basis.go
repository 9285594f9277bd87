package bspline

import "math"

// boundaryCoeffs holds the reflection coefficients for the three supported
// boundary-condition variants. Columns correspond to nodes 0, 1, M-1, M;
// the value multiplies the contribution of the matching virtual exterior
// node (-1 on the low side, M+1 on the high side).
var boundaryCoeffs = [3][4]float64{
	{-4, -1, -1, -4},
	{0, 1, 1, 0},
	{2, -1, -1, 2},
}

// beta returns the boundary reflection coefficient for node m: zero for
// interior nodes, otherwise the table entry for the active variant.
func (d *Domain) beta(m int) float64 {
	if m > 1 && m < d.m-1 {
		return 0
	}
	if m >= d.m-1 {
		m -= d.m - 3
	}
	return boundaryCoeffs[d.bc][m]
}

// basis evaluates the cubic B-spline kernel centered at node m, sampled at
// x. The kernel has compact support of two node intervals on either side
// and peaks at 1 over its own node. Near the domain edges the raw kernel is
// augmented by the reflected contribution of a virtual exterior node; the
// virtual indices -1 and M+1 exist only as arguments here, never as stored
// nodes.
func (d *Domain) basis(m int, x float64) float64 {
	var y float64
	xm := d.xmin + float64(m)*d.dx
	z := math.Abs((x - xm) / d.dx)
	if z < 2 {
		z = 2 - z
		y = 0.25 * z * z * z
		z--
		if z > 0 {
			y -= z * z * z
		}
	}

	if m == 0 || m == 1 {
		y += d.beta(m) * d.basis(-1, x)
	} else if m == d.m-1 || m == d.m {
		y += d.beta(m) * d.basis(d.m+1, x)
	}

	return y
}
