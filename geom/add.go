package geom

// CheckedAdd returns r with d.Min added to its Min corner and d.Max
// added to its Max corner. If any coordinate would leave the domain,
// it returns r unchanged and ErrOverflow.
//
// The corners of the result are not reordered, so it is up to the
// caller to pick a d that keeps them in order.
func (r Rect[T]) CheckedAdd(d Rect[int64]) (Rect[T], error) {
	p0, err := r.Min.CheckedTranslate(d.Min)
	if err != nil {
		return r, err
	}
	p1, err := r.Max.CheckedTranslate(d.Max)
	if err != nil {
		return r, err
	}
	return Rect[T]{p0, p1}, nil
}

// CheckedAddInPlace is like CheckedAdd but modifies r. On failure, r
// is left as it was.
func (r *Rect[T]) CheckedAddInPlace(d Rect[int64]) error {
	s, err := r.CheckedAdd(d)
	if err != nil {
		return err
	}
	*r = s
	return nil
}

// SaturatingAdd is like CheckedAdd, but clamps each coordinate into
// the domain instead of failing. The corners are clamped
// independently, so the length of r is not preserved.
func (r Rect[T]) SaturatingAdd(d Rect[int64]) Rect[T] {
	return Rect[T]{
		Min: r.Min.SaturatingTranslate(d.Min),
		Max: r.Max.SaturatingTranslate(d.Max),
	}
}

// SaturatingAddInPlace is like SaturatingAdd but modifies r.
func (r *Rect[T]) SaturatingAddInPlace(d Rect[int64]) {
	*r = r.SaturatingAdd(d)
}

// WrappingAdd is like CheckedAdd, but wraps each coordinate around
// the domain instead of failing.
func (r Rect[T]) WrappingAdd(d Rect[int64]) Rect[T] {
	return Rect[T]{
		Min: r.Min.WrappingTranslate(d.Min),
		Max: r.Max.WrappingTranslate(d.Max),
	}
}

// WrappingAddInPlace is like WrappingAdd but modifies r.
func (r *Rect[T]) WrappingAddInPlace(d Rect[int64]) {
	*r = r.WrappingAdd(d)
}
