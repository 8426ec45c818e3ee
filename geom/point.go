package geom

import "strconv"

// Point is a point in 2-space with coordinates in the domain of T.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X, Y}.
func Pt[T Scalar](X, Y T) Point[T] {
	return Point[T]{X, Y}
}

// Offset is the amount by which points and rectangles are moved. It
// is wide enough to express any signed delta in any domain.
type Offset = Point[int64]

// Off is shorthand for Offset{X, Y}.
func Off(X, Y int64) Offset {
	return Offset{X, Y}
}

// Neg returns -p. It is intended for offsets; negating the minimum
// value of a signed type wraps, exactly as it does in Go.
func (p Point[T]) Neg() Point[T] {
	return Point[T]{-p.X, -p.Y}
}

func (p Point[T]) String() string {
	return "(" + formatScalar(p.X) + ", " + formatScalar(p.Y) + ")"
}

func formatScalar[T Scalar](v T) string {
	switch {
	case isFloat[T]():
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	case isSigned[T]():
		return strconv.FormatInt(int64(v), 10)
	default:
		return strconv.FormatUint(uint64(v), 10)
	}
}

// In reports whether p is inside of r, including its edges.
func (p Point[T]) In(r Rect[T]) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// CheckedTranslate returns p moved by d, or ErrOverflow if either
// coordinate would leave the domain.
func (p Point[T]) CheckedTranslate(d Offset) (Point[T], error) {
	b := boundsOf[T]()
	x, okx := b.checked(widen(p.X), d.X)
	y, oky := b.checked(widen(p.Y), d.Y)
	if !okx || !oky {
		return p, ErrOverflow
	}
	return Point[T]{narrow[T](x), narrow[T](y)}, nil
}

// CheckedTranslateInPlace is like CheckedTranslate but modifies p.
// On failure, p is left as it was.
func (p *Point[T]) CheckedTranslateInPlace(d Offset) error {
	q, err := p.CheckedTranslate(d)
	if err != nil {
		return err
	}
	*p = q
	return nil
}

// SaturatingTranslate returns p moved by d with each coordinate
// clamped into the domain.
func (p Point[T]) SaturatingTranslate(d Offset) Point[T] {
	b := boundsOf[T]()
	return Point[T]{
		narrow[T](b.saturating(widen(p.X), d.X)),
		narrow[T](b.saturating(widen(p.Y), d.Y)),
	}
}

// SaturatingTranslateInPlace is like SaturatingTranslate but modifies
// p.
func (p *Point[T]) SaturatingTranslateInPlace(d Offset) {
	*p = p.SaturatingTranslate(d)
}

// WrappingTranslate returns p moved by d with each coordinate wrapped
// around the domain.
//
// Moving by d and then by d.Neg() returns to p for every d except
// one with a math.MinInt64 coordinate, whose negation wraps back to
// itself. The two moves then cancel only in domains with a span that
// is a power of two.
func (p Point[T]) WrappingTranslate(d Offset) Point[T] {
	b := boundsOf[T]()
	return Point[T]{
		narrow[T](b.wrapping(widen(p.X), d.X)),
		narrow[T](b.wrapping(widen(p.Y), d.Y)),
	}
}

// WrappingTranslateInPlace is like WrappingTranslate but modifies p.
func (p *Point[T]) WrappingTranslateInPlace(d Offset) {
	*p = p.WrappingTranslate(d)
}

// ConvPoint converts p into the domain of Out. It returns ErrOverflow
// if either coordinate does not fit. Conversions into a domain that
// is a superset of In's never fail.
func ConvPoint[Out, In Scalar](p Point[In]) (Point[Out], error) {
	b := boundsOf[Out]()
	x, y := widen(p.X), widen(p.Y)
	if !b.contains(x) || !b.contains(y) {
		return Point[Out]{}, ErrOverflow
	}
	return Point[Out]{narrow[Out](x), narrow[Out](y)}, nil
}
