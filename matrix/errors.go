// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with
// call-site context) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Call sites wrap with fmt.Errorf("Square.<Op>: %w", ErrX); callers still
// match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// not allocated -> index/offset range -> input argument -> dimension mismatch.

var (
	// ErrInvalidArgument is returned for non-positive sizes, nil or wrongly
	// sized input slices, out-of-bounds diagonal offsets, a sparse-randomize
	// count outside [0, n*n], and non-finite fractional scalars.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNotAllocated indicates an operation on a matrix with no backing storage.
	ErrNotAllocated = errors.New("matrix: not allocated")

	// ErrDimensionMismatch indicates a binary operation between matrices of
	// unequal dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAllocationFailure indicates that backing storage for the requested
	// dimension could not be obtained.
	ErrAllocationFailure = errors.New("matrix: allocation failure")
)
