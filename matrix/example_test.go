// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"os"

	"github.com/Me-Phew/square-matrix/matrix"
)

// ExampleSquare_DisplayFull prints a labelled 2×2 matrix.
func ExampleSquare_DisplayFull() {
	m, _ := matrix.NewFromSlice(2, []int{1, 2, 3, 4})
	_ = m.DisplayFull()

	// Output:
	//      |   0   1
	// -----+--------
	//    0 |   1   2
	//    1 |   3   4
}

// ExampleSquare_InsertDiagonal writes the first super-diagonal.
func ExampleSquare_InsertDiagonal() {
	m, _ := matrix.New(4)
	_ = m.InsertDiagonal(1, []int{9, 9, 9})
	_ = m.Print()

	// Output:
	//    0   9   0   0
	//    0   0   9   0
	//    0   0   0   9
	//    0   0   0   0
}

// ExampleSquare_FillChessboard shows the (i+j) mod 2 pattern.
func ExampleSquare_FillChessboard() {
	m, _ := matrix.New(3)
	_ = m.FillChessboard()
	fmt.Print(m)

	// Output:
	//    0   1   0
	//    1   0   1
	//    0   1   0
}

// ExampleScalarSub contrasts s - A with A - s.
func ExampleScalarSub() {
	a, _ := matrix.NewFromSlice(2, []int{1, 2, 3, 4})
	left, _ := matrix.ScalarSub(10, a)
	right, _ := a.SubScalar(10)
	_, _ = left.WriteTo(os.Stdout)
	_, _ = right.WriteTo(os.Stdout)

	// Output:
	//    9   8
	//    7   6
	//   -9  -8
	//   -7  -6
}

// ExampleSquare_Increment adds one to every element.
func ExampleSquare_Increment() {
	m, _ := matrix.NewIdentity(2)
	_ = m.Increment()
	fmt.Print(m)

	// Output:
	//    2   1
	//    1   2
}

// ExampleMul multiplies two matrices; operands are left intact.
func ExampleMul() {
	a, _ := matrix.NewFromSlice(2, []int{1, 2, 3, 4})
	b, _ := matrix.NewFromSlice(2, []int{5, 6, 7, 8})
	c, _ := matrix.Mul(a, b)
	fmt.Print(c)
	fmt.Println(a.Equal(b), c.Greater(a))

	// Output:
	//   19  22
	//   43  50
	// false true
}

// ExampleSquare_DisplayTruncated shrinks a 5×5 matrix with a tiny layout.
func ExampleSquare_DisplayTruncated() {
	layout, _ := matrix.ParseLayout([]byte("cell_width: 3\nedge: 2\nellipsis: \"..\"\n"))
	m, _ := matrix.New(5, matrix.WithLayout(layout))
	_ = m.FillDiagonal()
	_ = m.DisplayTruncated()

	// Output:
	//     |  0  1 ..  4
	// ----+------------
	//   0 |  1  0 ..  0
	//   1 |  0  1 ..  0
	//  .. |
	//   3 |  0  0 ..  0
	//   4 |  0  0 ..  1
}
