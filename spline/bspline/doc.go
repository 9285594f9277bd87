// Package bspline fits a smoothing cubic B-spline to irregularly spaced
// one-dimensional samples, suppressing variation below a caller-specified
// cutoff wavelength.
//
// A [Domain] is built once from the sample abscissas and the cutoff: it
// chooses a node grid that resolves the cutoff, assembles the combined
// roughness-penalty and data-fit matrix, and factors it. The factorization
// is cached, so any number of y-data vectors can then be fitted against the
// same abscissas cheaply via [Domain.Fit]. The resulting [Spline] exposes
// point evaluation, coefficient access, and a dense sampling of the fitted
// curve at the node grid.
//
// The roughness penalty integrates the squared first derivative of the
// curve; its weight is derived from the cutoff wavelength so that
// components much longer than the cutoff pass through nearly unchanged
// while shorter components are attenuated. Boundary behavior is constrained
// by mirroring virtual exterior basis functions back into the domain with
// fixed reflection coefficients.
//
// A Domain is immutable after construction apart from its lazily computed
// node cache, and is safe to share read-only across any number of fitted
// splines.
package bspline
