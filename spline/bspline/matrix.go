package bspline

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spline/spline/banded"
)

// qparts holds the integrals of products of first derivatives of the
// normalized basis kernel for node separations 0..3 (rows), split per unit
// interval of the support -2..2 (columns). qinterior holds the row sums,
// the full integrals for interior nodes where the domain does not clip the
// support.
var qparts = [4][4]float64{
	{0.11250, 0.63750, 0.63750, 0.11250},
	{0.00000, 0.13125, -0.54375, 0.13125},
	{0.00000, 0.00000, -0.22500, -0.22500},
	{0.00000, 0.00000, 0.00000, -0.01875},
}

var qinterior = [4]float64{1.5, -0.28125, -0.450, -0.01875}

// qDelta returns the integral over the node domain of the product of the
// first derivatives of the basis functions at nodes m1 and m2, scaled by
// DX and the roughness weight. Near either edge the integration domain
// clips the support, dropping the out-of-range unit intervals.
func (d *Domain) qDelta(m1, m2 int) float64 {
	if m1 > m2 {
		m1, m2 = m2, m1
	}
	if m2-m1 > 3 {
		return 0
	}

	var q float64
	for m := max(m1-2, 0); m < min(m1+2, d.m); m++ {
		q += qparts[m2-m1][m-m1+2]
	}
	return q * d.dx * d.alpha
}

// calculateQ assembles the roughness-penalty matrix: a symmetric matrix of
// bandwidth 3 whose interior entries are the clipped analytic integrals and
// whose 2x4 corner blocks fold in the boundary reflection terms. The two
// corners are mirror images of each other around the domain midpoint.
func (d *Domain) calculateQ() *banded.Matrix {
	q := banded.NewMatrix(d.m + 1)

	for i := 0; i <= d.m; i++ {
		q.Set(i, i, d.qDelta(i, i))
		for j := 1; j < 4 && i+j <= d.m; j++ {
			v := d.qDelta(i, i+j)
			q.Set(i, i+j, v)
			q.Set(i+j, i, v)
		}
	}

	// Upper-left corner: nodes 0 and 1 carry a reflected contribution of
	// the virtual node -1. The cross-terms are clipped to the node domain
	// exactly like the raw entries, so the reflected basis sums to a
	// constant and the roughness matrix annihilates constant curves. The
	// reflection terms add onto the clipped raw values.
	for i := 0; i <= 1; i++ {
		b1 := d.beta(i)
		for j := i; j < i+4; j++ {
			b2 := d.beta(j)
			corr := b2*d.qDelta(-1, i) + b1*d.qDelta(-1, j) + b1*b2*d.qDelta(-1, -1)
			v := q.At(i, j) + corr
			q.Set(i, j, v)
			q.Set(j, i, v)
		}
	}

	// Lower-right corner, the mirror image through the virtual node M+1.
	for i := d.m - 1; i <= d.m; i++ {
		b1 := d.beta(i)
		for j := i - 3; j <= i; j++ {
			var b2 float64
			if j >= d.m-1 {
				b2 = d.beta(j)
			}
			corr := b2*d.qDelta(d.m+1, i) + b1*d.qDelta(d.m+1, j) + b1*b2*d.qDelta(d.m+1, d.m+1)
			v := q.At(i, j) + corr
			q.Set(i, j, v)
			q.Set(j, i, v)
		}
	}

	return q
}

// addP accumulates the empirical data-fit matrix into q in place. Each
// sample contributes basis(m,x)*basis(n,x)*DX for every pair of basis
// functions whose support covers it, at most a 5-node neighborhood around
// the interval holding the sample.
func (d *Domain) addP(q *banded.Matrix) {
	n := d.m + 1
	p := banded.NewMatrix(n)

	for _, x := range d.x {
		mid := int((x - d.xmin) / d.dx)
		for m := max(0, mid-2); m <= min(d.m, mid+2); m++ {
			pm := d.basis(m, x)
			p.Add(m, m, pm*pm*d.dx)
			for nn := m + 1; nn <= min(d.m, m+3); nn++ {
				sum := pm * d.basis(nn, x) * d.dx
				p.Add(m, nn, sum)
				p.Add(nn, m, sum)
			}
		}
	}

	for i := 0; i < n; i++ {
		vecmath.AddBlockInPlace(q.Row(i), p.Row(i))
	}
}
