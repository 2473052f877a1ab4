// SPDX-License-Identifier: MIT
// Package matrix provides matrix-matrix arithmetic on Square values:
// element-wise addition and the standard matrix product.
//
// Purpose:
//   - Binary operators never mutate their operands; they return a freshly
//     allocated *Square owned by the caller.
//   - Strict fail-fast validation: both operands allocated, equal dimension.
//
// Notes:
//   - The result inherits the collaborators (source, writer, logger, layout)
//     of the left operand.
//   - int arithmetic wraps on overflow; no saturation is attempted.

package matrix

// blank returns an n×n zero matrix sharing m's collaborators.
// Assumes m is allocated, so the allocation size is already known to fit.
func (m *Square) blank() *Square {
	return &Square{n: m.n, data: make([]int, len(m.data)), cfg: m.cfg}
}

// Add returns C with C[i][j] = a[i][j] + b[i][j].
//
// Errors: ErrNotAllocated (either operand), ErrDimensionMismatch.
// Complexity: O(n²).
func Add(a, b *Square) (*Square, error) {
	if err := requireBinary(ctxAdd, a, b); err != nil {
		return nil, err
	}
	out := a.blank()
	for k := range out.data {
		out.data[k] = a.data[k] + b.data[k]
	}

	return out, nil
}

// Mul returns the matrix product C with C[i][j] = Σ_k a[i][k]·b[k][j].
//
// Implementation:
//   - Stage 1: validate via requireBinary.
//   - Stage 2: i→k→j loop over flat buffers; a zero a[i][k] skips its row of b.
//
// Errors: ErrNotAllocated (either operand), ErrDimensionMismatch.
// Complexity: O(n³).
func Mul(a, b *Square) (*Square, error) {
	if err := requireBinary(ctxMul, a, b); err != nil {
		return nil, err
	}
	n := a.n
	out := a.blank()
	var (
		i, j, k    int
		av         int
		rowA, rowB int
	)
	for i = 0; i < n; i++ {
		rowA = i * n
		for k = 0; k < n; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB = k * n
			for j = 0; j < n; j++ {
				out.data[rowA+j] += av * b.data[rowB+j]
			}
		}
	}

	return out, nil
}
