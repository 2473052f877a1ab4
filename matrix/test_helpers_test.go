// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions for Square tests.
//   • Compare whole grids with cmp.Diff so failures show the differing cells.

package matrix_test

//go:generate mockgen -destination mock_source_test.go -package matrix_test -write_package_comment=false github.com/Me-Phew/square-matrix/random Source

import (
	"testing"

	"github.com/Me-Phew/square-matrix/matrix"
	"github.com/google/go-cmp/cmp"
)

// MustSquare ALLOCATES an n×n zero matrix or fails the test.
func MustSquare(t testing.TB, n int, opts ...matrix.Option) *matrix.Square {
	t.Helper()
	m, err := matrix.New(n, opts...)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}

	return m
}

// MustGrid BUILDS a matrix from row literals; every row must have len(rows) cells.
func MustGrid(t testing.TB, rows [][]int, opts ...matrix.Option) *matrix.Square {
	t.Helper()
	n := len(rows)
	flat := make([]int, 0, n*n)
	for i, r := range rows {
		if len(r) != n {
			t.Fatalf("MustGrid: row %d has %d cells, want %d", i, len(r), n)
		}
		flat = append(flat, r...)
	}
	m, err := matrix.NewFromSlice(n, flat, opts...)
	if err != nil {
		t.Fatalf("NewFromSlice(%d): %v", n, err)
	}

	return m
}

// Grid READS m back into row slices via Get.
func Grid(t testing.TB, m *matrix.Square) [][]int {
	t.Helper()
	n := m.Dimension()
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		out[i] = make([]int, n)
		for j := 0; j < n; j++ {
			v, err := m.Get(i, j)
			if err != nil {
				t.Fatalf("Get(%d,%d): %v", i, j, err)
			}
			out[i][j] = v
		}
	}

	return out
}

// RequireGrid fails with a cell diff when m's contents differ from want.
func RequireGrid(t testing.TB, want [][]int, m *matrix.Square) {
	t.Helper()
	if diff := cmp.Diff(want, Grid(t, m)); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

// Seeded BUILDS an n×n matrix randomized from a fixed seed.
func Seeded(t testing.TB, n int, seed int64) *matrix.Square {
	t.Helper()
	m := MustSquare(t, n, matrix.WithSeed(seed))
	if err := m.Randomize(); err != nil {
		t.Fatalf("Randomize: %v", err)
	}

	return m
}

// Constant BUILDS an n×n matrix with every cell equal to v.
func Constant(t testing.TB, n, v int) [][]int {
	t.Helper()
	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, n)
		for j := range out[i] {
			out[i][j] = v
		}
	}

	return out
}
