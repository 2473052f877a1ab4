// SPDX-License-Identifier: MIT

// Package matrix - pattern fills, random fills and in-place transpose.
//
// Every fill overwrites all n² cells. Pattern fills share one i→j kernel
// (fillPattern) so loop order and validation live in a single place.
//
// Random fills draw from the matrix's random.Source (see WithSource/WithSeed);
// with no source configured a deterministic default generator is created on
// first use, so identical programs produce identical matrices.

package matrix

import (
	"fmt"

	"go.uber.org/zap"
)

// fillPattern sets element(i,j) = f(i,j) in row-major order.
// Complexity: O(n²).
func (m *Square) fillPattern(method string, f func(i, j int) int) error {
	if err := requireAllocated(method, m); err != nil {
		return err
	}
	var i, j, base int
	for i = 0; i < m.n; i++ {
		base = i * m.n
		for j = 0; j < m.n; j++ {
			m.data[base+j] = f(i, j)
		}
	}

	return nil
}

// FillDiagonal makes m the identity pattern: 1 where i == j, else 0.
func (m *Square) FillDiagonal() error {
	return m.fillPattern(ctxFillDiagonal, func(i, j int) int { return boolToInt(i == j) })
}

// FillUnderDiagonal sets 1 strictly below the main diagonal (i > j), else 0.
func (m *Square) FillUnderDiagonal() error {
	return m.fillPattern(ctxFillUnder, func(i, j int) int { return boolToInt(i > j) })
}

// FillOverDiagonal sets 1 strictly above the main diagonal (i < j), else 0.
func (m *Square) FillOverDiagonal() error {
	return m.fillPattern(ctxFillOver, func(i, j int) int { return boolToInt(i < j) })
}

// FillChessboard sets element(i,j) = (i+j) mod 2, so (0,0) is 0.
func (m *Square) FillChessboard() error {
	return m.fillPattern(ctxFillChessboard, func(i, j int) int { return (i + j) % 2 })
}

// Randomize sets every element to an independent draw in [RandomMin, RandomMax].
// Draws happen in row-major order.
//
// Errors: ErrNotAllocated.
func (m *Square) Randomize() error {
	if err := requireAllocated(ctxRandomize, m); err != nil {
		return err
	}
	src := m.source()
	for k := range m.data {
		m.data[k] = src.Number(RandomMin, RandomMax)
	}
	m.logger().Debug("matrix randomized", zap.Int("dimension", m.n), zap.Int("draws", len(m.data)))

	return nil
}

// RandomizeSparse zeroes m and then performs count draws. Each draw picks a
// row, then a column, then a value in [RandomMin, RandomMax] and writes it.
// Positions may repeat, so fewer than count cells can end up non-zero, and a
// drawn value may itself be 0.
//
// Errors: ErrNotAllocated; ErrInvalidArgument when count < 0 or count > n².
func (m *Square) RandomizeSparse(count int) error {
	if err := requireAllocated(ctxRandomizeSparse, m); err != nil {
		return err
	}
	if count < 0 || count > len(m.data) {
		return fmt.Errorf("Square.%s(%d): capacity %d: %w",
			ctxRandomizeSparse, count, len(m.data), ErrInvalidArgument)
	}
	clear(m.data)
	src := m.source()
	var row, col int
	for k := 0; k < count; k++ {
		row = src.Number(0, m.n-1)
		col = src.Number(0, m.n-1)
		m.data[row*m.n+col] = src.Number(RandomMin, RandomMax)
	}
	m.logger().Debug("matrix sparsely randomized", zap.Int("dimension", m.n), zap.Int("draws", count))

	return nil
}

// Transpose swaps element(i,j) with element(j,i) for all i < j, in place.
// The diagonal is untouched. Use Transposed for a non-mutating copy.
//
// Errors: ErrNotAllocated.
// Complexity: O(n²), no allocation.
func (m *Square) Transpose() error {
	if err := requireAllocated(ctxTranspose, m); err != nil {
		return err
	}
	n := m.n
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			m.data[i*n+j], m.data[j*n+i] = m.data[j*n+i], m.data[i*n+j]
		}
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
