// SPDX-License-Identifier: MIT

// Package matrix - console rendering.
//
// Three renderings share one Layout (cell width, edge, ellipsis):
//   - DisplayFull: column header, rule, every row prefixed with its index.
//   - DisplayTruncated: like DisplayFull for n <= edge; otherwise only the
//     first edge columns plus the last one, and (for n > 2·edge) the first and
//     last edge rows around a single ellipsis line.
//   - Print / WriteTo / String: bare rows of right-justified cells.
//
// DisplayFull of a 2×2 matrix with the default layout:
//
//	     |   0   1
//	-----+--------
//	   0 |   1   2
//	   1 |   3   4
//
// Each rendering is built in memory and written with one Write call, so a
// writer error never leaves half a matrix on the stream.

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// notAllocatedMarker is what String prints for an empty matrix.
const notAllocatedMarker = "matrix: not allocated"

// elided marks an ellipsis slot in a row/column plan.
const elided = -1

// DisplayFull writes the labelled full rendering to the configured output.
// Errors: ErrNotAllocated; writer errors are wrapped.
func (m *Square) DisplayFull() error {
	if err := requireAllocated(ctxDisplayFull, m); err != nil {
		return err
	}
	plan := fullPlan(m.n)

	return m.emit(ctxDisplayFull, m.renderLabelled(plan, plan))
}

// DisplayTruncated writes the labelled, edge-truncated rendering to the
// configured output.
// Errors: ErrNotAllocated; writer errors are wrapped.
func (m *Square) DisplayTruncated() error {
	if err := requireAllocated(ctxDisplayTruncated, m); err != nil {
		return err
	}
	edge := m.geometry().Edge

	return m.emit(ctxDisplayTruncated, m.renderLabelled(rowPlan(m.n, edge), colPlan(m.n, edge)))
}

// Print writes the bare rendering (see WriteTo) to the configured output.
// Errors: ErrNotAllocated; writer errors are wrapped.
func (m *Square) Print() error {
	if err := requireAllocated(ctxPrint, m); err != nil {
		return err
	}

	return m.emit(ctxPrint, m.renderBare())
}

// WriteTo implements io.WriterTo with the bare rendering: one line per row,
// every cell right-justified in the layout's cell width.
// Errors: ErrNotAllocated; writer errors are wrapped.
func (m *Square) WriteTo(w io.Writer) (int64, error) {
	if err := requireAllocated(ctxWriteTo, m); err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, m.renderBare())
	if err != nil {
		return int64(n), squareErrorf(ctxWriteTo, err)
	}

	return int64(n), nil
}

// String implements fmt.Stringer for diagnostics. It never fails: an empty
// matrix renders as "matrix: not allocated".
func (m *Square) String() string {
	if !m.IsAllocated() {
		return notAllocatedMarker
	}

	return m.renderBare()
}

// emit writes s to the configured output in a single call.
func (m *Square) emit(method, s string) error {
	if _, err := io.WriteString(m.output(), s); err != nil {
		return squareErrorf(method, err)
	}

	return nil
}

// renderBare builds the unlabelled rows.
// Complexity: O(n²).
func (m *Square) renderBare() string {
	w := m.geometry().CellWidth
	var b strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			fmt.Fprintf(&b, "%*d", w, m.data[i*m.n+j])
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// renderLabelled builds header, rule and the planned rows/columns.
// An elided entry in rows yields one ellipsis line; in cols, one ellipsis cell.
func (m *Square) renderLabelled(rows, cols []int) string {
	l := m.geometry()
	w := l.CellWidth
	var b strings.Builder

	// Header: blank label slot, then column indices.
	fmt.Fprintf(&b, "%*s |", w, "")
	for _, j := range cols {
		if j == elided {
			fmt.Fprintf(&b, "%*s", w, l.Ellipsis)
			continue
		}
		fmt.Fprintf(&b, "%*d", w, j)
	}
	b.WriteByte('\n')

	// Rule: dashes under the label slot, a cross under the bar, dashes under cells.
	b.WriteString(strings.Repeat("-", w+1))
	b.WriteByte('+')
	b.WriteString(strings.Repeat("-", w*len(cols)))
	b.WriteByte('\n')

	for _, i := range rows {
		if i == elided {
			fmt.Fprintf(&b, "%*s |\n", w, l.Ellipsis)
			continue
		}
		fmt.Fprintf(&b, "%*d |", w, i)
		base := i * m.n
		for _, j := range cols {
			if j == elided {
				fmt.Fprintf(&b, "%*s", w, l.Ellipsis)
				continue
			}
			fmt.Fprintf(&b, "%*d", w, m.data[base+j])
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// fullPlan lists 0..n-1.
func fullPlan(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// rowPlan keeps every row while n <= 2·edge; beyond that the first and last
// edge rows with one elided marker between them.
func rowPlan(n, edge int) []int {
	if n <= 2*edge {
		return fullPlan(n)
	}
	p := make([]int, 0, 2*edge+1)
	for i := 0; i < edge; i++ {
		p = append(p, i)
	}
	p = append(p, elided)
	for i := n - edge; i < n; i++ {
		p = append(p, i)
	}

	return p
}

// colPlan keeps every column while n <= edge; beyond that the first edge
// columns and the last one, with an elided marker only when something
// actually lies between them (n > edge+1).
func colPlan(n, edge int) []int {
	if n <= edge {
		return fullPlan(n)
	}
	p := make([]int, 0, edge+2)
	for j := 0; j < edge; j++ {
		p = append(p, j)
	}
	if n > edge+1 {
		p = append(p, elided)
	}

	return append(p, n-1)
}
