// SPDX-License-Identifier: MIT

// Package matrix - element-wise comparisons.
//
// Policy:
//   - Comparisons never return errors: any shape problem (nil, unallocated,
//     unequal dimension) simply makes the relation false.
//   - Two unallocated matrices are NOT equal; Equal is true only between
//     allocated matrices with identical contents. NotEqual is its negation,
//     so NotEqual is true for two empty matrices.
//   - Greater/Less are total dominance tests: every cell must satisfy the
//     strict relation. They are not orderings; A and B can be neither.

package matrix

// Equal reports whether m and other are allocated, of equal dimension, and
// equal element-by-element.
// Complexity: O(n²), stops at the first difference.
func (m *Square) Equal(other *Square) bool {
	if !sameShape(m, other) {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// NotEqual is !m.Equal(other).
func (m *Square) NotEqual(other *Square) bool { return !m.Equal(other) }

// Greater reports whether every element of m strictly exceeds the
// corresponding element of other. False on any shape problem.
func (m *Square) Greater(other *Square) bool {
	return dominates(m, other)
}

// Less reports whether every element of m is strictly below the
// corresponding element of other. False on any shape problem.
func (m *Square) Less(other *Square) bool {
	return dominates(other, m)
}

// dominates reports a[k] > b[k] for all k, requiring equal allocated shapes.
func dominates(a, b *Square) bool {
	if !sameShape(a, b) {
		return false
	}
	for k := range a.data {
		if a.data[k] <= b.data[k] {
			return false
		}
	}

	return true
}
