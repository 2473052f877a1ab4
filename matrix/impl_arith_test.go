// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/Me-Phew/square-matrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Parallel()

	a := MustGrid(t, [][]int{{1, 2}, {3, 4}})
	b := MustGrid(t, [][]int{{10, 20}, {30, -40}})
	c, err := matrix.Add(a, b)
	require.NoError(t, err)
	RequireGrid(t, [][]int{{11, 22}, {33, -36}}, c)

	// Operands untouched.
	RequireGrid(t, [][]int{{1, 2}, {3, 4}}, a)
	RequireGrid(t, [][]int{{10, 20}, {30, -40}}, b)
}

// TestAdd_Commutative checks A+B == B+A on seeded data.
func TestAdd_Commutative(t *testing.T) {
	t.Parallel()

	a, b := Seeded(t, 5, 1), Seeded(t, 5, 2)
	ab, err := matrix.Sum(a, b)
	require.NoError(t, err)
	ba, err := matrix.Sum(b, a)
	require.NoError(t, err)
	require.True(t, ab.Equal(ba))
}

func TestMul(t *testing.T) {
	t.Parallel()

	a := MustGrid(t, [][]int{{1, 2}, {3, 4}})
	b := MustGrid(t, [][]int{{5, 6}, {7, 8}})
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireGrid(t, [][]int{{19, 22}, {43, 50}}, c)

	// Not commutative.
	d, err := matrix.Product(b, a)
	require.NoError(t, err)
	RequireGrid(t, [][]int{{23, 34}, {31, 46}}, d)
}

// TestMul_Identity checks A·I == I·A == A.
func TestMul_Identity(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3, 10} {
		a := Seeded(t, n, int64(n))
		id, err := matrix.NewIdentity(n)
		require.NoError(t, err)

		left, err := matrix.Mul(a, id)
		require.NoError(t, err)
		right, err := matrix.Mul(id, a)
		require.NoError(t, err)
		require.True(t, left.Equal(a), "A·I n=%d", n)
		require.True(t, right.Equal(a), "I·A n=%d", n)
	}
}

func TestMul_ZeroRows(t *testing.T) {
	t.Parallel()

	a := MustGrid(t, [][]int{{0, 0, 0}, {0, 2, 0}, {1, 0, 0}})
	b := MustGrid(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireGrid(t, [][]int{{0, 0, 0}, {8, 10, 12}, {1, 2, 3}}, c)
}

func TestBinary_Errors(t *testing.T) {
	t.Parallel()

	two, three := MustSquare(t, 2), MustSquare(t, 3)
	var empty matrix.Square

	for name, op := range map[string]func(a, b *matrix.Square) (*matrix.Square, error){
		"Add": matrix.Add,
		"Mul": matrix.Mul,
	} {
		_, err := op(two, three)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch, name)
		_, err = op(&empty, two)
		require.ErrorIs(t, err, matrix.ErrNotAllocated, name)
		_, err = op(two, &empty)
		require.ErrorIs(t, err, matrix.ErrNotAllocated, name)
		_, err = op(nil, nil)
		require.ErrorIs(t, err, matrix.ErrNotAllocated, name)
	}
}

// TestBinary_InheritsLeftOptions shows the result keeps the left operand's layout.
func TestBinary_InheritsLeftOptions(t *testing.T) {
	t.Parallel()

	narrow := matrix.Layout{CellWidth: 2, Edge: 8, Ellipsis: ".."}
	a := MustGrid(t, [][]int{{1, 2}, {3, 4}}, matrix.WithLayout(narrow))
	b := MustGrid(t, [][]int{{1, 1}, {1, 1}})
	c, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, " 2 3\n 4 5\n", c.String())
}

func TestIdentityAndTransposed(t *testing.T) {
	t.Parallel()

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	RequireGrid(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	a := MustGrid(t, [][]int{{1, 2}, {3, 4}})
	at, err := matrix.Transposed(a)
	require.NoError(t, err)
	RequireGrid(t, [][]int{{1, 3}, {2, 4}}, at)
	RequireGrid(t, [][]int{{1, 2}, {3, 4}}, a)

	_, err = matrix.Transposed(&matrix.Square{})
	require.ErrorIs(t, err, matrix.ErrNotAllocated)
}
