// Package squarematrix is a small, teaching-oriented integer matrix library:
// one square matrix type with explicit storage management and a complete
// operator suite.
//
// What is inside?
//
//	• Lifecycle: create, allocate, release, clone and copy-assign matrices
//	• Access: bounds-checked Get/Insert plus diagonal, row and column writers
//	• Fills: identity, under/over diagonal, chessboard, uniform and sparse random
//	• Operators: +, × between matrices; scalar broadcast in both operand orders;
//	  compound +=, -=, *=; bulk increment/decrement
//	• Comparisons: equality and strict element-wise dominance
//	• Display: labelled full and truncated console views, bare io.WriterTo form
//
// Everything is organized under two subpackages:
//
//	matrix/  the Square type, its options, layout and operators
//	random/  the Source interface and the seeded default generator
//
// Quick example:
//
//	m, _ := matrix.New(3, matrix.WithSeed(7))
//	_ = m.Randomize()
//	_ = m.DisplayFull()
//
// Every operation reports failures as wrapped sentinel errors (see
// matrix.ErrNotAllocated and friends); nothing panics on user input.
//
//	go get github.com/Me-Phew/square-matrix/matrix
package squarematrix
