package geom

// Resize returns a rectangle that is exactly size long along both
// axes, centered as closely as possible on r and moved as little as
// necessary to fit inside of the domain. When the difference in
// length is odd, the result leans towards Min: a shrinking rectangle
// loses one more point from its Max side than from its Min side, and
// a growing one gains one more point on its Min side.
//
// A size less than MinResize results in ErrTooSmall, and a size
// larger than the domain results in ErrOverflow. In both cases r is
// returned unchanged.
func (r Rect[T]) Resize(size uint64) (Rect[T], error) {
	return r.ResizeXY(size, size)
}

// ResizeInPlace is like Resize but modifies r. On failure, r is left
// as it was.
func (r *Rect[T]) ResizeInPlace(size uint64) error {
	return r.ResizeXYInPlace(size, size)
}

// ResizeXY is like Resize but with separate lengths for each axis.
func (r Rect[T]) ResizeXY(w, h uint64) (Rect[T], error) {
	if w < MinResize || h < MinResize {
		return r, ErrTooSmall
	}

	b := boundsOf[T]()
	ww, hw := wideUint(w), wideUint(h)
	if span := b.span(); span.less(ww) || span.less(hw) {
		return r, ErrOverflow
	}

	x0, x1 := b.resizeSpan(widen(r.Min.X), widen(r.Max.X), ww)
	y0, y1 := b.resizeSpan(widen(r.Min.Y), widen(r.Max.Y), hw)
	return Rect[T]{
		Min: Point[T]{narrow[T](x0), narrow[T](y0)},
		Max: Point[T]{narrow[T](x1), narrow[T](y1)},
	}, nil
}

// ResizeXYInPlace is like ResizeXY but modifies r. On failure, r is
// left as it was.
func (r *Rect[T]) ResizeXYInPlace(w, h uint64) error {
	s, err := r.ResizeXY(w, h)
	if err != nil {
		return err
	}
	*r = s
	return nil
}

// resizeSpan returns the span of the given size centered on [lo, hi]
// and clamped into b. size must not exceed the span of b.
func (b bounds) resizeSpan(lo, hi, size wide) (wide, wide) {
	length := hi.sub(lo).add(wideOne)
	anchor := lo.add(length.sub(size).half())
	anchor = anchor.clamp(b.lo, b.hi.sub(size).add(wideOne))
	return anchor, anchor.add(size).sub(wideOne)
}
