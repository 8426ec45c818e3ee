// Package geom provides points and axis-aligned rectangles over
// bounded numeric domains.
//
// It is patterned after image.Point and image.Rectangle, but every
// coordinate is treated as a member of a fixed range, the Domain of
// its type, and every operation that could leave that range comes in
// up to three flavors:
//
//   - Checked operations fail with ErrOverflow and leave their
//     receiver untouched.
//   - Saturating operations clamp into the domain, keeping the length
//     of a rectangle intact wherever that is possible.
//   - Wrapping operations treat the domain as a ring.
//
// Unlike image.Rectangle, a Rect is inclusive on both corners: a Rect
// whose Min and Max are equal covers exactly one point. Rects are
// expected to satisfy Min.X <= Max.X and Min.Y <= Max.Y. That is not
// enforced on construction; see [Rect.Valid] and [Rect.Canon].
//
// Floating-point coordinates are supported only as integer-exact
// values in the range ±2^24 for float32 and ±2^53 for float64.
// Fractional parts are truncated by every arithmetic operation.
package geom

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Edges is a bitmask representing zero or more edges of a rectangle.
// Top and Bottom refer to Min.Y and Max.Y respectively, and Left and
// Right to Min.X and Max.X.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Has reports whether all of the edges in e2 are set in e.
func (e Edges) Has(e2 Edges) bool {
	return e&e2 == e2
}

var (
	// ErrOverflow is returned by checked operations when the result
	// would not be representable in the domain.
	ErrOverflow = errors.New("overflow")

	// ErrNoop is the parent of the errors returned by operations that
	// refuse to change a rectangle. Use errors.Is to detect it.
	ErrNoop = errors.New("no-op")

	// ErrTooSmall indicates that a rectangle, or a requested size, is
	// below the minimum an operation allows.
	ErrTooSmall = fmt.Errorf("%w: too small", ErrNoop)

	// ErrPinned indicates that a rectangle already spans the entire
	// domain along an axis and so cannot grow any further.
	ErrPinned = fmt.Errorf("%w: pinned to both domain bounds", ErrNoop)
)

const (
	// MinResize is the smallest length that Resize will produce.
	MinResize = 3

	// MinDeflateDelta is the smallest delta, along both axes, that a
	// rectangle must have for Deflate to shrink it.
	MinDeflateDelta = 3
)
