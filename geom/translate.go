package geom

// CheckedTranslate returns r moved by d. If either corner would leave
// the domain, it returns r unchanged and ErrOverflow.
func (r Rect[T]) CheckedTranslate(d Offset) (Rect[T], error) {
	return r.CheckedAdd(Rect[int64]{d, d})
}

// CheckedTranslateInPlace is like CheckedTranslate but modifies r. On
// failure, r is left as it was.
func (r *Rect[T]) CheckedTranslateInPlace(d Offset) error {
	s, err := r.CheckedTranslate(d)
	if err != nil {
		return err
	}
	*r = s
	return nil
}

// SaturatingTranslate returns r moved by d, stopping at the bounds of
// the domain. Unlike clamping each corner separately, the length of
// both axes is preserved: Min is clamped to the range of positions at
// which all of r still fits, and Max is derived from it.
func (r Rect[T]) SaturatingTranslate(d Offset) Rect[T] {
	b := boundsOf[T]()
	x0, x1 := b.saturatingSpan(widen(r.Min.X), widen(r.Max.X), d.X)
	y0, y1 := b.saturatingSpan(widen(r.Min.Y), widen(r.Max.Y), d.Y)
	return Rect[T]{
		Min: Point[T]{narrow[T](x0), narrow[T](y0)},
		Max: Point[T]{narrow[T](x1), narrow[T](y1)},
	}
}

// SaturatingTranslateInPlace is like SaturatingTranslate but modifies
// r.
func (r *Rect[T]) SaturatingTranslateInPlace(d Offset) {
	*r = r.SaturatingTranslate(d)
}

// WrappingTranslate returns r with each of its coordinates moved by d
// and wrapped around the domain. Since both corners move by the same
// amount around the same ring, the distance between them is kept,
// though the corners may end up in the opposite order.
//
// See [Point.WrappingTranslate] for the one offset that d.Neg() does
// not undo.
func (r Rect[T]) WrappingTranslate(d Offset) Rect[T] {
	return Rect[T]{
		Min: r.Min.WrappingTranslate(d),
		Max: r.Max.WrappingTranslate(d),
	}
}

// WrappingTranslateInPlace is like WrappingTranslate but modifies r.
func (r *Rect[T]) WrappingTranslateInPlace(d Offset) {
	*r = r.WrappingTranslate(d)
}

// saturatingSpan moves the inclusive span [lo, hi] by d, keeping its
// length and keeping it inside of b. A span longer than b is pinned
// to b.lo and cut off at b.hi.
func (b bounds) saturatingSpan(lo, hi wide, d int64) (wide, wide) {
	length := hi.sub(lo).add(wideOne)
	top := b.hi.sub(length).add(wideOne)

	anchor := lo.add(wideInt(d)).clamp(b.lo, top)
	end := anchor.add(length).sub(wideOne)
	if b.hi.less(end) {
		end = b.hi
	}
	return anchor, end
}
