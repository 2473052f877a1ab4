// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for precondition checks.
//  - Keep operations minimal by delegating allocation/index/length checks here.
//  - Wrap sentinels with the caller's method tag so messages stay uniform.
//
// Determinism & Performance:
//  - All checks are pure, O(1), and allocate only on the error path.
//
// Note:
//  - Each operation runs its checks in a fixed sequence
//    (Allocated → Index/Offset → Argument → Dimension) before any mutation.

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxNew              = "New"
	ctxNewFromSlice     = "NewFromSlice"
	ctxAllocate         = "Allocate"
	ctxAssign           = "Assign"
	ctxValues           = "Values"
	ctxGet              = "Get"
	ctxInsert           = "Insert"
	ctxInsertMain       = "InsertMainDiagonal"
	ctxInsertDiagonal   = "InsertDiagonal"
	ctxInsertColumn     = "InsertColumn"
	ctxInsertRow        = "InsertRow"
	ctxFillDiagonal     = "FillDiagonal"
	ctxFillUnder        = "FillUnderDiagonal"
	ctxFillOver         = "FillOverDiagonal"
	ctxFillChessboard   = "FillChessboard"
	ctxRandomize        = "Randomize"
	ctxRandomizeSparse  = "RandomizeSparse"
	ctxTranspose        = "Transpose"
	ctxAdd              = "Add"
	ctxMul              = "Mul"
	ctxAddScalar        = "AddScalar"
	ctxSubScalar        = "SubScalar"
	ctxMulScalar        = "MulScalar"
	ctxScalarSub        = "ScalarSub"
	ctxAddAssign        = "AddAssign"
	ctxSubAssign        = "SubAssign"
	ctxMulAssign        = "MulAssign"
	ctxAddAssignFloat   = "AddAssignFloat"
	ctxIncrement        = "Increment"
	ctxDecrement        = "Decrement"
	ctxDisplayFull      = "DisplayFull"
	ctxDisplayTruncated = "DisplayTruncated"
	ctxPrint            = "Print"
	ctxWriteTo          = "WriteTo"
)

// squareErrorf wraps err with a uniform "Square.<method>" prefix.
// Use only when err != nil.
func squareErrorf(method string, err error) error {
	return fmt.Errorf("Square.%s: %w", method, err)
}

// squareIndexErrorf wraps err with the method tag and the offending coordinates.
func squareIndexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}

// squareLenErrorf reports a slice of the wrong length as ErrInvalidArgument.
func squareLenErrorf(method string, got, want int) error {
	return fmt.Errorf("Square.%s: %d values, want %d: %w", method, got, want, ErrInvalidArgument)
}

// requireAllocated returns ErrNotAllocated (tagged) unless m has storage.
// A nil m counts as unallocated.
func requireAllocated(method string, m *Square) error {
	if !m.IsAllocated() {
		return squareErrorf(method, ErrNotAllocated)
	}

	return nil
}

// requireIndex checks 0 ≤ row,col < n. Assumes m is allocated.
func requireIndex(method string, m *Square, row, col int) error {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return squareIndexErrorf(method, row, col, ErrOutOfRange)
	}

	return nil
}

// requireLine checks 0 ≤ idx < n for a whole row or column. Assumes m is allocated.
func requireLine(method string, m *Square, idx int) error {
	if idx < 0 || idx >= m.n {
		return fmt.Errorf("Square.%s(%d): %w", method, idx, ErrOutOfRange)
	}

	return nil
}

// requireValues checks that values is non-nil and holds exactly want entries.
func requireValues(method string, values []int, want int) error {
	if values == nil || len(values) != want {
		return squareLenErrorf(method, len(values), want)
	}

	return nil
}

// requireBinary runs the composite check for matrix-matrix operations:
// Allocated(a) → Allocated(b) → equal dimension.
func requireBinary(method string, a, b *Square) error {
	if err := requireAllocated(method, a); err != nil {
		return err
	}
	if err := requireAllocated(method, b); err != nil {
		return err
	}
	if a.n != b.n {
		return fmt.Errorf("Square.%s: %d vs %d: %w", method, a.n, b.n, ErrDimensionMismatch)
	}

	return nil
}

// sameShape reports whether a and b are both allocated with equal dimension.
// Used by the boolean comparisons, which never return errors.
func sameShape(a, b *Square) bool {
	return a.IsAllocated() && b.IsAllocated() && a.n == b.n
}
