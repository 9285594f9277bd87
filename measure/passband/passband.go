package passband

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spline/spline/bspline"
)

// Errors returned by passband measurements.
var (
	ErrInvalidProbe    = errors.New("passband: probe wavelength must be positive")
	ErrProbeUnresolved = errors.New("passband: probe wavelength below the node-grid resolution")
)

// Point is the measured amplitude transfer at one probe wavelength.
type Point struct {
	Wavelength float64
	Gain       float64
	GainDB     float64
}

// Response measures the smoother's amplitude transfer at each probe
// wavelength, for the given sample abscissas and cutoff. The spline domain
// is set up once and shared across all probes; only the fit is repeated.
func Response(x []float64, cutoff float64, probes []float64) ([]Point, error) {
	dom, err := bspline.NewDomain(x, cutoff)
	if err != nil {
		return nil, err
	}

	nodes := dom.Nodes()
	fftSize := nextPowerOf2(2 * len(nodes))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("passband: failed to create FFT plan: %w", err)
	}

	out := make([]Point, 0, len(probes))
	for _, probe := range probes {
		gain, err := measure(dom, x, nodes, plan, fftSize, probe)
		if err != nil {
			return nil, err
		}
		out = append(out, Point{
			Wavelength: probe,
			Gain:       gain,
			GainDB:     20 * math.Log10(gain),
		})
	}

	return out, nil
}

// Gain measures the amplitude transfer at a single probe wavelength.
func Gain(x []float64, cutoff, probe float64) (float64, error) {
	pts, err := Response(x, cutoff, []float64{probe})
	if err != nil {
		return 0, err
	}
	return pts[0].Gain, nil
}

// GainDB measures the amplitude transfer at a single probe wavelength,
// in dB.
func GainDB(x []float64, cutoff, probe float64) (float64, error) {
	pts, err := Response(x, cutoff, []float64{probe})
	if err != nil {
		return 0, err
	}
	return pts[0].GainDB, nil
}

// measure fits a unit probe sinusoid and compares its fitted curve against
// the ideal probe on the node grid, both via FFT magnitudes at the probe's
// dominant bin.
func measure(dom *bspline.Domain, x, nodes []float64, plan *algofft.Plan[complex128], fftSize int, probe float64) (float64, error) {
	if probe <= 0 {
		return 0, ErrInvalidProbe
	}
	if probe < 2*dom.DX() {
		return 0, ErrProbeUnresolved
	}

	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = math.Sin(2 * math.Pi * xi / probe)
	}

	sp, err := dom.Fit(y)
	if err != nil {
		return 0, err
	}

	ref := make([]float64, len(nodes))
	for i, xn := range nodes {
		ref[i] = math.Sin(2 * math.Pi * xn / probe)
	}

	outMag, err := halfSpectrum(plan, fftSize, sp.Curve())
	if err != nil {
		return 0, err
	}
	refMag, err := halfSpectrum(plan, fftSize, ref)
	if err != nil {
		return 0, err
	}

	// Dominant bin of the reference probe, skipping DC.
	k := 1
	for i := 2; i < len(refMag); i++ {
		if refMag[i] > refMag[k] {
			k = i
		}
	}
	if refMag[k] == 0 {
		return 0, ErrProbeUnresolved
	}

	return outMag[k] / refMag[k], nil
}

// halfSpectrum zero-pads signal to fftSize, transforms it, and returns the
// magnitudes of the non-redundant half of the spectrum.
func halfSpectrum(plan *algofft.Plan[complex128], fftSize int, signal []float64) ([]float64, error) {
	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, in); err != nil {
		return nil, fmt.Errorf("passband: forward FFT failed: %w", err)
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for i := 0; i < half; i++ {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	mags := make([]float64, half)
	vecmath.Magnitude(mags, re, im)
	return mags, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
