package geom

// Inflate returns r grown by one on every side. If any side would
// leave the domain, it returns r unchanged and ErrOverflow.
func (r Rect[T]) Inflate() (Rect[T], error) {
	return r.CheckedAdd(Rect[int64]{Min: Off(-1, -1), Max: Off(1, 1)})
}

// InflateInPlace is like Inflate but modifies r. On failure, r is
// left as it was.
func (r *Rect[T]) InflateInPlace() error {
	s, err := r.Inflate()
	if err != nil {
		return err
	}
	*r = s
	return nil
}

// SaturatingInflate returns r grown so that each axis is two longer
// than before. Normally that means one on each side, but if a side is
// already on the bound of the domain, the other side grows by two
// instead, as far as the domain allows.
//
// If either axis already spans the whole domain, r can not grow and
// SaturatingInflate returns r unchanged and ErrPinned.
func (r Rect[T]) SaturatingInflate() (Rect[T], error) {
	pinned := r.Pinned()
	if pinned.Has(EdgeLeft|EdgeRight) || pinned.Has(EdgeTop|EdgeBottom) {
		return r, ErrPinned
	}

	dx0, dx1 := inflateModifiers(pinned.Has(EdgeLeft), pinned.Has(EdgeRight))
	dy0, dy1 := inflateModifiers(pinned.Has(EdgeTop), pinned.Has(EdgeBottom))
	return r.SaturatingAdd(Rect[int64]{
		Min: Off(-dx0, -dy0),
		Max: Off(dx1, dy1),
	}), nil
}

// SaturatingInflateInPlace is like SaturatingInflate but modifies r.
// On failure, r is left as it was.
func (r *Rect[T]) SaturatingInflateInPlace() error {
	s, err := r.SaturatingInflate()
	if err != nil {
		return err
	}
	*r = s
	return nil
}

// inflateModifiers returns how far the low and high sides of an axis
// should move outwards given which of them are pinned. At most one of
// lo and hi may be true.
func inflateModifiers(lo, hi bool) (int64, int64) {
	switch {
	case lo:
		return 0, 2
	case hi:
		return 2, 0
	default:
		return 1, 1
	}
}

// Deflate returns r shrunk by one on every side. Rectangles with a
// delta of less than MinDeflateDelta along either axis are not
// shrunk; for those, Deflate returns r unchanged and ErrTooSmall.
func (r Rect[T]) Deflate() (Rect[T], error) {
	if r.DeltaX() < MinDeflateDelta || r.DeltaY() < MinDeflateDelta {
		return r, ErrTooSmall
	}

	r.Min.X++
	r.Min.Y++
	r.Max.X--
	r.Max.Y--
	return r, nil
}

// DeflateInPlace is like Deflate but modifies r. On failure, r is left
// as it was.
func (r *Rect[T]) DeflateInPlace() error {
	s, err := r.Deflate()
	if err != nil {
		return err
	}
	*r = s
	return nil
}
