// Package passband measures the amplitude transfer of the smoothing spline
// in spline/bspline.
//
// A probe sinusoid of a known wavelength is sampled at the caller's
// abscissas, fitted with the cutoff under test, and the fitted curve is
// compared against the ideal probe on the node grid in the frequency
// domain. The reported gain is the magnitude ratio at the probe's dominant
// FFT bin: wavelengths well above the cutoff report gains near 1,
// wavelengths at or below the cutoff report the attenuation the smoother
// applies to them.
//
// Because fitted curve and reference are transformed with identical length
// and padding, spectral leakage affects both alike and largely cancels in
// the ratio.
package passband
