package geom

import "iter"

// Rect is an axis-aligned rectangle whose corners, Min and Max, are
// both inside of it.
//
// Operations on a Rect assume that Min.X <= Max.X and Min.Y <= Max.Y.
// The results of calling them on a Rect for which that does not hold
// are unspecified, though none of them will panic.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect[T]{Pt(x0, y0), Pt(x1, y1)}. Unlike
// image.Rect, it does not reorder its arguments.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Pt(x0, y0), Pt(x1, y1)}
}

// Valid reports whether the corners of r are correctly ordered.
func (r Rect[T]) Valid() bool {
	return r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}

// Canon returns the canonical version of r. The returned rectangle
// has minimum and maximum coordinates swapped if necessary so that it
// is well-formed.
func (r Rect[T]) Canon() Rect[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

func (r Rect[T]) String() string {
	return "(" + r.Min.String() + ", " + r.Max.String() + ")"
}

// Contains reports whether s is entirely inside of r.
func (r Rect[T]) Contains(s Rect[T]) bool {
	return s.Min.In(r) && s.Max.In(r)
}

// DeltaX returns Max.X - Min.X.
func (r Rect[T]) DeltaX() uint64 {
	return delta(r.Min.X, r.Max.X).uint64()
}

// DeltaY returns Max.Y - Min.Y.
func (r Rect[T]) DeltaY() uint64 {
	return delta(r.Min.Y, r.Max.Y).uint64()
}

// Delta returns the deltas of both axes.
func (r Rect[T]) Delta() Point[uint64] {
	return Pt(r.DeltaX(), r.DeltaY())
}

// MaxDelta returns the larger of DeltaX and DeltaY.
func (r Rect[T]) MaxDelta() uint64 {
	return max(r.DeltaX(), r.DeltaY())
}

// LenX returns the number of points that r covers along the X axis.
// An axis that spans an entire 64-bit domain has a length of 2^64,
// which wraps around to 0.
func (r Rect[T]) LenX() uint64 {
	return r.DeltaX() + 1
}

// LenY returns the number of points that r covers along the Y axis.
// See LenX for the caveat about 64-bit domains.
func (r Rect[T]) LenY() uint64 {
	return r.DeltaY() + 1
}

// Len returns the lengths of both axes.
func (r Rect[T]) Len() Point[uint64] {
	return Pt(r.LenX(), r.LenY())
}

// MaxLen returns the larger of LenX and LenY.
func (r Rect[T]) MaxLen() uint64 {
	return r.MaxDelta() + 1
}

// Pinned returns the edges of r that lie on the bounds of the domain.
func (r Rect[T]) Pinned() Edges {
	d := DomainOf[T]()

	var e Edges
	if r.Min.X == d.Min {
		e |= EdgeLeft
	}
	if r.Max.X == d.Max {
		e |= EdgeRight
	}
	if r.Min.Y == d.Min {
		e |= EdgeTop
	}
	if r.Max.Y == d.Max {
		e |= EdgeBottom
	}
	return e
}

// Center returns the point in the middle of r. When an axis has an
// even length, the coordinate closer to Min is chosen.
func (r Rect[T]) Center() Point[T] {
	return Point[T]{
		narrow[T](widen(r.Min.X).add(delta(r.Min.X, r.Max.X).half())),
		narrow[T](widen(r.Min.Y).add(delta(r.Min.Y, r.Max.Y).half())),
	}
}

// Points returns an iterator over every point in r, row by row.
func (r Rect[T]) Points() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		if !r.Valid() {
			return
		}

		for y := r.Min.Y; ; y++ {
			for x := r.Min.X; ; x++ {
				if !yield(Pt(x, y)) {
					return
				}
				if x >= r.Max.X {
					break
				}
			}
			if y >= r.Max.Y {
				return
			}
		}
	}
}

// ConvRect converts r into the domain of Out. It returns ErrOverflow
// if any coordinate does not fit.
func ConvRect[Out, In Scalar](r Rect[In]) (Rect[Out], error) {
	p0, err := ConvPoint[Out](r.Min)
	if err != nil {
		return Rect[Out]{}, err
	}
	p1, err := ConvPoint[Out](r.Max)
	if err != nil {
		return Rect[Out]{}, err
	}
	return Rect[Out]{p0, p1}, nil
}

func delta[T Scalar](lo, hi T) wide {
	return widen(hi).sub(widen(lo))
}
