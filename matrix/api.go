// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.

package matrix

// NewIdentity returns I_n: ones on the main diagonal, zeros elsewhere.
// Composition: New → FillDiagonal.
// Complexity: O(n²).
func NewIdentity(n int, opts ...Option) (*Square, error) {
	m, err := New(n, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.FillDiagonal(); err != nil {
		return nil, err
	}

	return m, nil
}

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b *Square) (*Square, error) { return Add(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Square) (*Square, error) { return Mul(a, b) }

// Transposed returns mᵀ as a new matrix; m is not modified.
// Composition: Clone → Transpose.
func Transposed(m *Square) (*Square, error) {
	out := m.Clone()
	if err := out.Transpose(); err != nil {
		return nil, err
	}

	return out, nil
}
