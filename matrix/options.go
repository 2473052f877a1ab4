// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Square collaborators.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit time-based seeding.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options are carried by Clone and preserved by Allocate/Release/Assign;
//     they describe collaborators, not contents.
//   - The random source is resolved lazily: a matrix that is never randomized
//     never builds a generator.
package matrix

import (
	"io"
	"os"

	"github.com/Me-Phew/square-matrix/random"
	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCellWidth is the right-justified field width of one printed cell.
	DefaultCellWidth = 4

	// DefaultEdge is the number of leading rows/columns kept by DisplayTruncated.
	// Matrices with n <= DefaultEdge are printed in full.
	DefaultEdge = 8

	// MaxCellWidth caps Layout.CellWidth; wider cells are rejected.
	MaxCellWidth = 64

	// DefaultEllipsis stands in for elided rows and columns.
	DefaultEllipsis = "..."

	// RandomMin and RandomMax bound the values drawn by Randomize/RandomizeSparse.
	RandomMin = 0
	RandomMax = 9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilSource = "matrix: WithSource: source must be non-nil"
	panicNilOutput = "matrix: WithOutput: writer must be non-nil"
	panicNilLogger = "matrix: WithLogger: logger must be non-nil"
	panicLayout    = "matrix: WithLayout: "
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective collaborators of a Square.
// Zero fields mean "use the default" and are resolved on access.
type options struct {
	src    random.Source // nil ⇒ lazily random.NewGenerator(0)
	out    io.Writer     // nil ⇒ os.Stdout
	log    *zap.Logger   // nil ⇒ zap.NewNop()
	layout Layout        // zero ⇒ DefaultLayout()
}

// WithSource sets the random source used by Randomize and RandomizeSparse.
// Panics on nil (programmer error).
func WithSource(src random.Source) Option {
	if src == nil {
		panic(panicNilSource)
	}

	return func(o *options) { o.src = src }
}

// WithSeed installs a fresh deterministic generator seeded with seed
// (seed==0 ⇒ random.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *options) { o.src = random.NewGenerator(seed) }
}

// WithOutput sets the writer used by DisplayFull, DisplayTruncated and Print.
// Panics on nil (programmer error).
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic(panicNilOutput)
	}

	return func(o *options) { o.out = w }
}

// WithLogger sets the structured logger for lifecycle events.
// Panics on nil; pass zap.NewNop() to silence explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.log = l }
}

// WithLayout sets the display geometry. The layout is validated eagerly and
// the constructor panics on an invalid one; use Layout.Validate (or
// ParseLayout, which validates) to check untrusted input first.
func WithLayout(l Layout) Option {
	if err := l.Validate(); err != nil {
		panic(panicLayout + err.Error())
	}

	return func(o *options) { o.layout = l }
}

// gatherOptions applies setters over a copy of base.
// Complexity: O(len(opts)).
func gatherOptions(base options, opts ...Option) options {
	o := base
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Configure applies opts to m in place. Works on the zero value; a nil
// receiver is a no-op.
func (m *Square) Configure(opts ...Option) {
	if m == nil {
		return
	}
	m.cfg = gatherOptions(m.cfg, opts...)
}

// source resolves the random source, building the default one on first use.
func (m *Square) source() random.Source {
	if m.cfg.src == nil {
		m.cfg.src = random.NewGenerator(0)
	}

	return m.cfg.src
}

// output resolves the display writer.
func (m *Square) output() io.Writer {
	if m.cfg.out == nil {
		return os.Stdout
	}

	return m.cfg.out
}

// logger resolves the lifecycle logger.
func (m *Square) logger() *zap.Logger {
	if m.cfg.log == nil {
		return zap.NewNop()
	}

	return m.cfg.log
}

// geometry resolves the display layout.
func (m *Square) geometry() Layout {
	if m.cfg.layout == (Layout{}) {
		return DefaultLayout()
	}

	return m.cfg.layout
}
