// Package matrix offers Square, a fixed-size, integer-valued square matrix
// that owns its storage.
//
// The matrix package provides:
//
//   - Lifecycle: New, NewFromSlice, NewEmpty (or the zero value), Allocate,
//     Release, Clone and Assign. Every constructor and copy owns a fresh
//     buffer; no two matrices share storage.
//   - Access: Get/Insert with bounds checks, plus whole-diagonal, row and
//     column writers.
//   - Fills: identity, strictly-under/over diagonal, chessboard, and
//     randomized fills drawing from a random.Source.
//   - Operators: Add and Mul between matrices; scalar +, -, · in both operand
//     orders; compound +=, -=, *=; bulk Increment/Decrement; Equal and the
//     dominance tests Greater/Less.
//   - Display: labelled full and truncated console renderings and a bare
//     streaming form (io.WriterTo, fmt.Stringer).
//
// Operator rule: functions and methods that "produce" a matrix (Add, Mul,
// AddScalar, ScalarSub, ...) never mutate their operands and return a new
// value; compound forms (AddAssign, Increment, ...) mutate the receiver.
//
// Increment and Decrement change EVERY element by one. They mirror "m += 1"
// and "m -= 1" on the whole matrix and are not counters.
//
// Errors are sentinels (ErrInvalidArgument, ErrOutOfRange, ErrNotAllocated,
// ErrDimensionMismatch, ErrAllocationFailure) wrapped with call-site context;
// match them with errors.Is. No operation panics on user input, and every
// operation validates before it mutates.
//
// Square is not safe for concurrent use.
package matrix
