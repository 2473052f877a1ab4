// SPDX-License-Identifier: MIT

// Package matrix - element access and targeted mutation.
//
// All writers here validate every precondition before the first write, so a
// failed call leaves the matrix untouched.

package matrix

import "fmt"

// Get returns element (row, col).
//
// Errors: ErrNotAllocated, ErrOutOfRange.
// Complexity: O(1).
func (m *Square) Get(row, col int) (int, error) {
	if err := requireAllocated(ctxGet, m); err != nil {
		return 0, err
	}
	if err := requireIndex(ctxGet, m, row, col); err != nil {
		return 0, err
	}

	return m.data[row*m.n+col], nil
}

// Insert stores value at (row, col).
//
// Errors: ErrNotAllocated, ErrOutOfRange.
// Complexity: O(1).
func (m *Square) Insert(row, col, value int) error {
	if err := requireAllocated(ctxInsert, m); err != nil {
		return err
	}
	if err := requireIndex(ctxInsert, m, row, col); err != nil {
		return err
	}
	m.data[row*m.n+col] = value

	return nil
}

// InsertMainDiagonal sets element(i,i) = values[i] for every i.
//
// Errors: ErrNotAllocated; ErrInvalidArgument unless len(values) == n.
func (m *Square) InsertMainDiagonal(values []int) error {
	if err := requireAllocated(ctxInsertMain, m); err != nil {
		return err
	}
	if err := requireValues(ctxInsertMain, values, m.n); err != nil {
		return err
	}
	for i := 0; i < m.n; i++ {
		m.data[i*m.n+i] = values[i]
	}

	return nil
}

// InsertDiagonal writes values along the diagonal at signed offset from the
// main one: offset 0 is the main diagonal, offset > 0 a super-diagonal
// (element(i, i+offset)), offset < 0 a sub-diagonal (element(i-offset, i)).
// The diagonal holds n-|offset| cells and values must match that length.
//
// Errors:
//   - ErrNotAllocated.
//   - ErrInvalidArgument when offset >= n, offset <= -n, or the length is wrong.
func (m *Square) InsertDiagonal(offset int, values []int) error {
	if err := requireAllocated(ctxInsertDiagonal, m); err != nil {
		return err
	}
	if offset >= m.n || offset <= -m.n {
		return fmt.Errorf("Square.%s(%d): offset outside (-%d,%d): %w",
			ctxInsertDiagonal, offset, m.n, m.n, ErrInvalidArgument)
	}
	span := m.n - abs(offset)
	if err := requireValues(ctxInsertDiagonal, values, span); err != nil {
		return err
	}
	// Start cell and stride: moving one step down the diagonal is +n+1.
	start := offset
	if offset < 0 {
		start = -offset * m.n
	}
	for i := 0; i < span; i++ {
		m.data[start+i*(m.n+1)] = values[i]
	}

	return nil
}

// InsertColumn overwrites column col with values.
//
// Errors: ErrNotAllocated, ErrOutOfRange, ErrInvalidArgument (len != n).
func (m *Square) InsertColumn(col int, values []int) error {
	if err := requireAllocated(ctxInsertColumn, m); err != nil {
		return err
	}
	if err := requireLine(ctxInsertColumn, m, col); err != nil {
		return err
	}
	if err := requireValues(ctxInsertColumn, values, m.n); err != nil {
		return err
	}
	for i := 0; i < m.n; i++ {
		m.data[i*m.n+col] = values[i]
	}

	return nil
}

// InsertRow overwrites row row with values.
//
// Errors: ErrNotAllocated, ErrOutOfRange, ErrInvalidArgument (len != n).
func (m *Square) InsertRow(row int, values []int) error {
	if err := requireAllocated(ctxInsertRow, m); err != nil {
		return err
	}
	if err := requireLine(ctxInsertRow, m, row); err != nil {
		return err
	}
	if err := requireValues(ctxInsertRow, values, m.n); err != nil {
		return err
	}
	copy(m.data[row*m.n:(row+1)*m.n], values)

	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
