// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise scalar kernels (ew*) shared by the
//     value-returning scalar operators and the compound (in-place) ones.
//   - Keep all loops deterministic: flat 0..n²-1 over the row-major buffer.
//
// Operator rule:
//   - A.AddScalar/SubScalar/MulScalar and ScalarAdd/ScalarSub/ScalarMul return
//     a new matrix and never touch A.
//   - AddAssign/SubAssign/MulAssign/AddAssignFloat/Increment/Decrement mutate
//     the receiver in place.
//
// Increment and Decrement add or subtract one on EVERY element. They are the
// bulk counterparts of "m += 1" / "m -= 1", not counters.

package matrix

import (
	"fmt"
	"math"
)

// ewScalar writes dst[k] = f(src[k]) for every k. dst may alias src.
func ewScalar(dst, src []int, f func(v int) int) {
	for k := range src {
		dst[k] = f(src[k])
	}
}

// scalarValue validates m and returns a new matrix with f applied per element.
func scalarValue(method string, m *Square, f func(v int) int) (*Square, error) {
	if err := requireAllocated(method, m); err != nil {
		return nil, err
	}
	out := m.blank()
	ewScalar(out.data, m.data, f)

	return out, nil
}

// scalarInPlace validates m and applies f to every element of m.
func scalarInPlace(method string, m *Square, f func(v int) int) error {
	if err := requireAllocated(method, m); err != nil {
		return err
	}
	ewScalar(m.data, m.data, f)

	return nil
}

// ---------- value-returning: matrix op scalar ----------

// AddScalar returns a new matrix with s added to every element.
// Errors: ErrNotAllocated.
func (m *Square) AddScalar(s int) (*Square, error) {
	return scalarValue(ctxAddScalar, m, func(v int) int { return v + s })
}

// SubScalar returns a new matrix with s subtracted from every element (A - s).
// Errors: ErrNotAllocated.
func (m *Square) SubScalar(s int) (*Square, error) {
	return scalarValue(ctxSubScalar, m, func(v int) int { return v - s })
}

// MulScalar returns a new matrix with every element multiplied by s.
// Errors: ErrNotAllocated.
func (m *Square) MulScalar(s int) (*Square, error) {
	return scalarValue(ctxMulScalar, m, func(v int) int { return v * s })
}

// ---------- value-returning: scalar op matrix ----------

// ScalarAdd returns s + m, identical to m.AddScalar(s).
func ScalarAdd(s int, m *Square) (*Square, error) { return m.AddScalar(s) }

// ScalarMul returns s · m, identical to m.MulScalar(s).
func ScalarMul(s int, m *Square) (*Square, error) { return m.MulScalar(s) }

// ScalarSub returns the element-wise s - m: out[i][j] = s - m[i][j].
// Note the operand order: this is NOT m.SubScalar(s).
// Errors: ErrNotAllocated.
func ScalarSub(s int, m *Square) (*Square, error) {
	return scalarValue(ctxScalarSub, m, func(v int) int { return s - v })
}

// ---------- compound assignment (in place) ----------

// AddAssign adds s to every element of m (m += s).
// Errors: ErrNotAllocated.
func (m *Square) AddAssign(s int) error {
	return scalarInPlace(ctxAddAssign, m, func(v int) int { return v + s })
}

// SubAssign subtracts s from every element of m (m -= s).
// Errors: ErrNotAllocated.
func (m *Square) SubAssign(s int) error {
	return scalarInPlace(ctxSubAssign, m, func(v int) int { return v - s })
}

// MulAssign multiplies every element of m by s (m *= s).
// Errors: ErrNotAllocated.
func (m *Square) MulAssign(s int) error {
	return scalarInPlace(ctxMulAssign, m, func(v int) int { return v * s })
}

// AddAssignFloat adds a fractional scalar to every element (m += f). Each sum
// is computed in float64 and truncated toward zero, so 3 += 1.5 gives 4 and
// -3 += 1.5 gives -1.
//
// All results are computed before any element is written: on error m is
// unchanged.
//
// Errors: ErrNotAllocated; ErrInvalidArgument for NaN/±Inf f or a result
// outside the int range.
func (m *Square) AddAssignFloat(f float64) error {
	if err := requireAllocated(ctxAddAssignFloat, m); err != nil {
		return err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("Square.%s(%g): %w", ctxAddAssignFloat, f, ErrInvalidArgument)
	}
	next := make([]int, len(m.data))
	var sum float64
	for k, v := range m.data {
		sum = math.Trunc(float64(v) + f)
		// float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive.
		if sum < math.MinInt || sum >= math.MaxInt {
			return fmt.Errorf("Square.%s(%g): element %d overflows int: %w",
				ctxAddAssignFloat, f, k, ErrInvalidArgument)
		}
		next[k] = int(sum)
	}
	copy(m.data, next)

	return nil
}

// Increment adds 1 to EVERY element of m (bulk m++, i.e. m += 1).
// Errors: ErrNotAllocated.
func (m *Square) Increment() error {
	return scalarInPlace(ctxIncrement, m, func(v int) int { return v + 1 })
}

// Decrement subtracts 1 from EVERY element of m (bulk m--, i.e. m -= 1).
// Errors: ErrNotAllocated.
func (m *Square) Decrement() error {
	return scalarInPlace(ctxDecrement, m, func(v int) int { return v - 1 })
}
