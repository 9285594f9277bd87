package bspline

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spline/spline/banded"
)

// Errors returned by domain setup and fitting.
var (
	ErrNoSamples         = errors.New("bspline: no sample abscissas")
	ErrInvalidWavelength = errors.New("bspline: cutoff wavelength must be positive")
	ErrWavelengthTooLong = errors.New("bspline: cutoff wavelength exceeds the sample domain span")
	ErrSampleDensity     = errors.New("bspline: too few samples to resolve the cutoff wavelength")
	ErrLengthMismatch    = errors.New("bspline: y-data length does not match sample count")
)

const (
	// derivativeOrder is the order of the derivative used in the
	// roughness penalty. The penalty tables in matrix.go are derived for
	// order 1; 2 and 3 only change the wavelength-to-alpha mapping.
	derivativeOrder = 1

	// boundaryVariant selects the active row of boundaryCoeffs.
	boundaryVariant = 2

	// bandwidth of the assembled system matrix: basis functions more than
	// three nodes apart have disjoint support.
	bandwidth = 3
)

// Domain holds the node grid, sample abscissas, and factored system matrix
// for one set of x-samples and one cutoff wavelength. It is immutable after
// NewDomain apart from the lazily computed node cache.
type Domain struct {
	xmin, xmax float64
	dx         float64
	wl         float64
	alpha      float64
	m          int // number of node intervals; m+1 nodes
	k          int // derivative order of the roughness penalty
	bc         int // boundary-condition variant

	x  []float64
	q  *banded.Matrix
	lu *banded.LU

	nodes []float64
}

// NewDomain establishes the node grid for the given sample abscissas and
// cutoff wavelength, assembles the combined roughness and data-fit matrix,
// and factors it. The x slice is copied.
//
// It fails when the wavelength exceeds the span of the samples, when the
// sample density cannot support a grid that resolves the wavelength, or
// when the assembled matrix turns out singular.
func NewDomain(x []float64, waveLength float64) (*Domain, error) {
	if len(x) == 0 {
		return nil, ErrNoSamples
	}
	if waveLength <= 0 {
		return nil, ErrInvalidWavelength
	}

	d := &Domain{
		wl: waveLength,
		k:  derivativeOrder,
		bc: boundaryVariant,
		x:  append([]float64(nil), x...),
	}

	if err := d.setupGrid(); err != nil {
		return nil, err
	}
	d.alpha = alphaFor(waveLength, d.k)

	q := d.calculateQ()
	d.addP(q)

	lu, err := banded.Factor(q, bandwidth)
	if err != nil {
		return nil, fmt.Errorf("bspline: factoring system matrix: %w", err)
	}
	d.q = q
	d.lu = lu

	return d, nil
}

// setupGrid finds the node interval count M and spacing DX.
//
// The search is a deterministic local walk: starting from 9 intervals, grow
// one interval at a time until the cutoff wavelength spans at least 2 node
// intervals, then keep refining while the grid is coarser than 4 intervals
// per cutoff or carries more than 2 data points per interval. A refinement
// step that would exceed 15 intervals per cutoff, or drop below one data
// point per interval, is rejected and the walk stops one step back.
func (d *Domain) setupGrid() error {
	d.xmin, d.xmax = d.x[0], d.x[0]
	for _, xi := range d.x[1:] {
		if xi < d.xmin {
			d.xmin = xi
		} else if xi > d.xmax {
			d.xmax = xi
		}
	}

	if d.wl > d.xmax-d.xmin {
		return ErrWavelengthTooLong
	}

	const (
		minIntervalsPerCutoff    = 2.0
		targetIntervalsPerCutoff = 4.0
		maxIntervalsPerCutoff    = 15.0
		maxPointsPerInterval     = 2.0
	)

	ni := 9
	dx, rf, rd, ok := d.ratio(ni)
	for rf < minIntervalsPerCutoff {
		ni++
		dx, rf, rd, ok = d.ratio(ni)
		if !ok {
			return ErrSampleDensity
		}
	}
	if !ok {
		return ErrSampleDensity
	}

	for rf < targetIntervalsPerCutoff || rd > maxPointsPerInterval {
		dx2, rf2, rd2, ok2 := d.ratio(ni + 1)
		if !ok2 || rf2 > maxIntervalsPerCutoff {
			break
		}
		ni++
		dx, rf, rd = dx2, rf2, rd2
	}

	d.m = ni
	d.dx = dx
	return nil
}

// ratio probes a candidate interval count: the implied spacing, the number
// of node intervals per cutoff wavelength, and the number of data points
// per node interval. A candidate with fewer than one point per interval is
// not viable.
func (d *Domain) ratio(ni int) (dx, intervalsPerCutoff, pointsPerInterval float64, ok bool) {
	dx = (d.xmax - d.xmin) / float64(ni)
	intervalsPerCutoff = d.wl / dx
	pointsPerInterval = float64(len(d.x)) / float64(ni+1)
	return dx, intervalsPerCutoff, pointsPerInterval, pointsPerInterval >= 1.0
}

// alphaFor derives the roughness weight from the cutoff wavelength for the
// given derivative order.
func alphaFor(wl float64, k int) float64 {
	a := wl / (2 * math.Pi)
	a *= a
	switch k {
	case 2:
		a *= a
	case 3:
		a = a * a * a
	}
	return a
}

// M returns the number of node intervals; the grid has M+1 nodes.
func (d *Domain) M() int { return d.m }

// DX returns the node spacing.
func (d *Domain) DX() float64 { return d.dx }

// XMin returns the smallest sample abscissa.
func (d *Domain) XMin() float64 { return d.xmin }

// XMax returns the largest sample abscissa.
func (d *Domain) XMax() float64 { return d.xmax }

// WaveLength returns the cutoff wavelength the domain was built for.
func (d *Domain) WaveLength() float64 { return d.wl }

// Alpha returns the roughness weight derived from the cutoff wavelength.
func (d *Domain) Alpha() float64 { return d.alpha }

// NX returns the number of sample abscissas.
func (d *Domain) NX() int { return len(d.x) }

// Nodes returns the node abscissas, computed once and cached. Callers must
// not modify the returned slice.
func (d *Domain) Nodes() []float64 {
	if d.nodes == nil {
		nodes := make([]float64, d.m+1)
		for i := range nodes {
			nodes[i] = d.xmin + float64(i)*d.dx
		}
		d.nodes = nodes
	}
	return d.nodes
}
