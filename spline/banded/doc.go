// Package banded provides an LU factorization and solver for square
// matrices whose nonzero entries lie within a fixed number of bands around
// the diagonal.
//
// The factorization restricts partial pivoting to the band below the
// diagonal. This is only valid for matrices that are provably banded by
// construction (such as the regularization-plus-data matrices assembled by
// spline/bspline): no entry of larger magnitude can exist outside the
// search window, so the restriction never skips a better pivot. It is not a
// general-purpose pivoting shortcut.
//
// Storage is a plain dense row-major [Matrix]; the band structure is a
// property of the values, not of the layout. For the small systems this
// module produces (one row per spline node) the dense representation keeps
// the elimination and substitution code straightforward.
package banded
