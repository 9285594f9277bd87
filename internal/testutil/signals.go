package testutil

import (
	"math"
	"math/rand"
)

// Linspace generates n evenly spaced abscissas from x0 to x1 inclusive.
func Linspace(x0, x1 float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = x0
		return out
	}
	step := (x1 - x0) / float64(n-1)
	for i := range out {
		out[i] = x0 + float64(i)*step
	}
	return out
}

// Jitter perturbs interior abscissas by up to frac of the local spacing,
// using a fixed seed for reproducibility. The first and last values stay
// in place so the domain span is unchanged.
func Jitter(xs []float64, seed int64, frac float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	if len(xs) < 3 {
		return out
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 1; i < len(out)-1; i++ {
		spacing := math.Min(xs[i]-xs[i-1], xs[i+1]-xs[i])
		out[i] += (rng.Float64()*2 - 1) * frac * spacing
	}
	return out
}

// SineOver samples amplitude*sin(2*pi*x/waveLength) at every abscissa.
func SineOver(xs []float64, waveLength, amplitude float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = amplitude * math.Sin(2*math.Pi*x/waveLength)
	}
	return out
}

// CosineOver samples amplitude*cos(2*pi*x/waveLength) at every abscissa.
func CosineOver(xs []float64, waveLength, amplitude float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = amplitude * math.Cos(2*math.Pi*x/waveLength)
	}
	return out
}

// Constant returns a slice of length n filled with value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// NoiseOver adds deterministic white noise of the given amplitude to ys.
func NoiseOver(ys []float64, seed int64, amplitude float64) []float64 {
	out := make([]float64, len(ys))
	rng := rand.New(rand.NewSource(seed))
	for i, y := range ys {
		out[i] = y + (rng.Float64()*2-1)*amplitude
	}
	return out
}
