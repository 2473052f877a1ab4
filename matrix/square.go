// SPDX-License-Identifier: MIT

// Package matrix - Square storage (row-major) & lifecycle.
//
// Purpose:
//   - Provide an owned row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: every operation returns an error
//     instead of panicking.
//   - Make ownership explicit: constructors, Clone, Assign and Values copy;
//     no two live matrices ever share a buffer.
//
// Lifecycle:
//   - The zero value is an empty matrix (dimension 0, no storage).
//   - New/NewFromSlice/Allocate acquire storage; Release drops it.
//   - Allocate to the current size is a no-op that keeps contents.
//
// Complexity quicksheet:
//   - New/Allocate: O(n²) zero-init; Get/Insert: O(1); Clone/Assign: O(n²).
package matrix

import (
	"math"

	"go.uber.org/zap"
)

// Square is a square, integer-valued matrix owning its storage exclusively.
//   - n is the dimension (0 ⇔ unallocated).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//   - cfg holds collaborators (random source, writer, logger, layout).
//
// Square is not safe for concurrent use.
type Square struct {
	n    int     // dimension; 0 while unallocated
	data []int   // row-major storage; nil while unallocated
	cfg  options // collaborators, carried by Clone
}

// NewEmpty returns an unallocated matrix carrying opts.
// It is equivalent to a zero Square followed by Configure(opts...).
func NewEmpty(opts ...Option) *Square {
	return &Square{cfg: gatherOptions(options{}, opts...)}
}

// New creates an n×n zero matrix.
//
// Errors:
//   - ErrInvalidArgument when n <= 0.
//   - ErrAllocationFailure when n*n elements cannot be stored.
//
// Complexity: O(n²).
func New(n int, opts ...Option) (*Square, error) {
	m := NewEmpty(opts...)
	if err := m.Allocate(n); err != nil {
		return nil, squareErrorf(ctxNew, err)
	}

	return m, nil
}

// NewFromSlice creates an n×n matrix populated row-major from flat:
// element(i,j) = flat[i*n+j]. The slice is copied, never retained.
//
// Errors:
//   - ErrInvalidArgument when n <= 0, flat is nil, or len(flat) != n*n.
//   - ErrAllocationFailure as for New.
//
// Complexity: O(n²).
func NewFromSlice(n int, flat []int, opts ...Option) (*Square, error) {
	if n <= 0 {
		return nil, squareErrorf(ctxNewFromSlice, ErrInvalidArgument)
	}
	if flat == nil {
		return nil, squareErrorf(ctxNewFromSlice, ErrInvalidArgument)
	}
	if n > math.MaxInt/n {
		return nil, squareErrorf(ctxNewFromSlice, ErrAllocationFailure)
	}
	if len(flat) != n*n {
		return nil, squareLenErrorf(ctxNewFromSlice, len(flat), n*n)
	}
	m, err := New(n, opts...)
	if err != nil {
		return nil, err
	}
	copy(m.data, flat)

	return m, nil
}

// Dimension returns n (0 when unallocated). Nil-safe.
func (m *Square) Dimension() int {
	if m == nil {
		return 0
	}

	return m.n
}

// IsAllocated reports whether storage is present and sized n×n. Nil-safe.
func (m *Square) IsAllocated() bool {
	return m != nil && m.n > 0 && m.data != nil && len(m.data) == m.n*m.n
}

// Allocate (re)sizes m to n×n.
//   - Same size while allocated: no-op, contents are kept.
//   - Different size: old storage is dropped, fresh zero storage is acquired.
//
// On error m is left unchanged.
//
// Errors: ErrInvalidArgument (n <= 0), ErrAllocationFailure,
// ErrNotAllocated on a nil receiver.
func (m *Square) Allocate(n int) error {
	if m == nil {
		return squareErrorf(ctxAllocate, ErrNotAllocated)
	}
	if n <= 0 {
		return squareErrorf(ctxAllocate, ErrInvalidArgument)
	}
	if m.IsAllocated() && m.n == n {
		return nil
	}
	buf, err := allocBuffer(n)
	if err != nil {
		return squareErrorf(ctxAllocate, err)
	}
	if m.IsAllocated() {
		m.logger().Debug("matrix reallocated", zap.Int("from", m.n), zap.Int("to", n))
	} else {
		m.logger().Debug("matrix allocated", zap.Int("dimension", n))
	}
	m.n, m.data = n, buf

	return nil
}

// Release drops the storage and resets the dimension to 0.
// Safe on an unallocated matrix and on a nil receiver.
func (m *Square) Release() {
	if !m.IsAllocated() {
		return
	}
	m.logger().Debug("matrix released", zap.Int("dimension", m.n))
	m.n, m.data = 0, nil
}

// Clone returns a deep copy: same dimension, elements and collaborators.
// Cloning an unallocated matrix yields an unallocated matrix.
//
// Complexity: O(n²).
func (m *Square) Clone() *Square {
	if m == nil {
		return &Square{}
	}
	out := &Square{cfg: m.cfg}
	if m.IsAllocated() {
		out.n = m.n
		out.data = make([]int, len(m.data))
		copy(out.data, m.data)
	}

	return out
}

// Assign copies src's dimension and elements into m (copy assignment).
//   - m == src: no-op.
//   - Unallocated src: m is released.
//   - Different dimension: m is reallocated to src's dimension first.
//
// Collaborators of m are kept.
func (m *Square) Assign(src *Square) error {
	if m == src {
		return nil
	}
	if !src.IsAllocated() {
		m.Release()
		return nil
	}
	if err := m.Allocate(src.n); err != nil {
		return squareErrorf(ctxAssign, err)
	}
	copy(m.data, src.data)
	m.logger().Debug("matrix assigned", zap.Int("dimension", m.n))

	return nil
}

// Values returns a row-major copy of every element.
//
// Errors: ErrNotAllocated.
func (m *Square) Values() ([]int, error) {
	if err := requireAllocated(ctxValues, m); err != nil {
		return nil, err
	}
	out := make([]int, len(m.data))
	copy(out, m.data)

	return out, nil
}

// allocBuffer returns a zeroed n*n buffer or ErrAllocationFailure when the
// element count overflows int or the runtime refuses the length.
// Exhausting memory outright is fatal in Go and cannot be reported.
func allocBuffer(n int) (buf []int, err error) {
	if n > math.MaxInt/n {
		return nil, ErrAllocationFailure
	}
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, ErrAllocationFailure
		}
	}()

	return make([]int, n*n), nil
}
