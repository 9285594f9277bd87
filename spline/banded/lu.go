package banded

import (
	"errors"
	"math"
)

// Errors returned by the factorization and solver.
var (
	ErrSingular       = errors.New("banded: zero pivot, matrix is singular")
	ErrLengthMismatch = errors.New("banded: right-hand side length does not match matrix size")
)

// LU holds the banded LU factorization of a square matrix together with its
// row-pivot permutation. Once computed it is immutable and may be reused for
// any number of solves.
type LU struct {
	lu    *Matrix
	pivot []int
	bands int
}

// Factor computes the LU factorization of m with partial pivoting limited to
// bands rows below the diagonal. The input matrix is copied, not modified.
//
// The pivot search window is correct only when m has no nonzero entries more
// than bands rows below the diagonal; callers are responsible for that
// structural guarantee. A pivot of exactly zero fails with [ErrSingular].
func Factor(m *Matrix, bands int) (*LU, error) {
	n := m.N
	lu := &LU{
		lu:    m.Copy(),
		pivot: make([]int, n),
		bands: bands,
	}
	a := lu.lu

	for j := 0; j < n; j++ {
		// Find the pivot in column j, searching the band only.
		jp := j
		t := math.Abs(a.At(j, j))
		iMax := j + bands
		if iMax > n-1 {
			iMax = n - 1
		}
		for i := j + 1; i <= iMax; i++ {
			if v := math.Abs(a.At(i, j)); v > t {
				jp = i
				t = v
			}
		}
		lu.pivot[j] = jp

		if a.At(jp, j) == 0 {
			return nil, ErrSingular
		}

		// Full-width row swap: elimination below touches the whole
		// trailing row, not just the band.
		if jp != j {
			rj, rp := a.Row(j), a.Row(jp)
			for k := 0; k < n; k++ {
				rj[k], rp[k] = rp[k], rj[k]
			}
		}

		// Scale the sub-diagonal entries of column j.
		if j < n-1 {
			recp := 1.0 / a.At(j, j)
			for k := j + 1; k < n; k++ {
				a.Set(k, j, a.At(k, j)*recp)
			}

			// Rank-one update of the trailing submatrix.
			for ii := j + 1; ii < n; ii++ {
				mult := a.At(ii, j)
				if mult == 0 {
					continue
				}
				rowJ := a.Row(j)
				rowI := a.Row(ii)
				for jj := j + 1; jj < n; jj++ {
					rowI[jj] -= mult * rowJ[jj]
				}
			}
		}
	}

	return lu, nil
}

// Solve solves A*x = b in place: on return b holds the solution vector.
// The right-hand side must have length N.
func (lu *LU) Solve(b []float64) error {
	if lu == nil || lu.lu == nil {
		return ErrSingular
	}

	n := lu.lu.N
	if len(b) != n {
		return ErrLengthMismatch
	}
	a := lu.lu

	// Apply the row permutation and forward-substitute the unit lower
	// factor.
	for i := 0; i < n; i++ {
		ip := lu.pivot[i]
		sum := b[ip]
		b[ip] = b[i]
		row := a.Row(i)
		for j := 0; j < i; j++ {
			sum -= row[j] * b[j]
		}
		b[i] = sum
	}

	// Back-substitute the upper factor.
	for i := n - 1; i >= 0; i-- {
		row := a.Row(i)
		sum := b[i]
		for j := i + 1; j < n; j++ {
			sum -= row[j] * b[j]
		}
		b[i] = sum / row[i]
	}

	return nil
}

// N returns the dimension of the factored matrix.
func (lu *LU) N() int {
	return lu.lu.N
}
