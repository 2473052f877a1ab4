// SPDX-License-Identifier: MIT

// Package matrix - display geometry and its YAML form.
//
// Purpose:
//   - Keep cell width, truncation edge and ellipsis marker in one value so the
//     three display routines agree on geometry.
//   - Allow classroom setups to tune the console layout from a small YAML
//     document without recompiling.
//
// YAML shape (all keys optional; missing keys keep defaults):
//
//	cell_width: 4
//	edge: 8
//	ellipsis: "..."
package matrix

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Layout describes how matrices are rendered as text.
type Layout struct {
	CellWidth int    `yaml:"cell_width"` // right-justified field width, 1..MaxCellWidth
	Edge      int    `yaml:"edge"`       // rows/cols kept at each end by DisplayTruncated, >= 1
	Ellipsis  string `yaml:"ellipsis"`   // marker for elided rows/cols, non-empty
}

// DefaultLayout returns the documented defaults (4 / 8 / "...").
func DefaultLayout() Layout {
	return Layout{
		CellWidth: DefaultCellWidth,
		Edge:      DefaultEdge,
		Ellipsis:  DefaultEllipsis,
	}
}

// Validate reports ErrInvalidArgument for an unusable layout.
// The ellipsis must fit inside one cell so truncated rows stay aligned.
func (l Layout) Validate() error {
	if l.CellWidth < 1 || l.CellWidth > MaxCellWidth {
		return fmt.Errorf("Layout.Validate: cell_width %d outside [1,%d]: %w",
			l.CellWidth, MaxCellWidth, ErrInvalidArgument)
	}
	if l.Edge < 1 {
		return fmt.Errorf("Layout.Validate: edge %d: %w", l.Edge, ErrInvalidArgument)
	}
	if l.Ellipsis == "" {
		return fmt.Errorf("Layout.Validate: empty ellipsis: %w", ErrInvalidArgument)
	}
	if len([]rune(l.Ellipsis)) > l.CellWidth {
		return fmt.Errorf("Layout.Validate: ellipsis %q wider than cell_width %d: %w",
			l.Ellipsis, l.CellWidth, ErrInvalidArgument)
	}

	return nil
}

// ParseLayout decodes a YAML document over DefaultLayout and validates it.
// Unknown keys are rejected. An empty document yields DefaultLayout.
func ParseLayout(doc []byte) (Layout, error) {
	return LoadLayout(bytes.NewReader(doc))
}

// LoadLayout is ParseLayout over an io.Reader.
func LoadLayout(r io.Reader) (Layout, error) {
	l := DefaultLayout()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil && !errors.Is(err, io.EOF) {
		return Layout{}, fmt.Errorf("LoadLayout: %v: %w", err, ErrInvalidArgument)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("LoadLayout: %w", err)
	}

	return l, nil
}
