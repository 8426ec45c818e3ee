package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// SplitX splits r into two rectangles arranged horizontally, the
// first of which is w long. Both halves must be at least one long, or
// ErrTooSmall is returned.
func SplitX[T Scalar](r Rect[T], w uint64) (left, right Rect[T], err error) {
	x0, x1, ok := splitSpan(r.Min.X, r.Max.X, w)
	if !ok {
		return r, r, ErrTooSmall
	}

	left, right = r, r
	left.Max.X, right.Min.X = x0, x1
	return left, right, nil
}

// SplitY splits r into two rectangles arranged vertically, the first
// of which is h long. Both halves must be at least one long, or
// ErrTooSmall is returned.
func SplitY[T Scalar](r Rect[T], h uint64) (top, bottom Rect[T], err error) {
	y0, y1, ok := splitSpan(r.Min.Y, r.Max.Y, h)
	if !ok {
		return r, r, ErrTooSmall
	}

	top, bottom = r, r
	top.Max.Y, bottom.Min.Y = y0, y1
	return top, bottom, nil
}

// splitSpan returns the last coordinate of the first n positions of
// [lo, hi] and the first coordinate of the rest.
func splitSpan[T Scalar](lo, hi T, n uint64) (end, start T, ok bool) {
	length := delta(lo, hi).add(wideOne)
	nw := wideUint(n)
	if n == 0 || !nw.less(length) {
		return lo, hi, false
	}

	cut := widen(lo).add(nw)
	return narrow[T](cut.sub(wideOne)), narrow[T](cut), true
}

func splitHalfX[T Scalar](r Rect[T]) (left, right Rect[T], err error) {
	return SplitX(r, halfLen(r.DeltaX()))
}

func splitHalfY[T Scalar](r Rect[T]) (top, bottom Rect[T], err error) {
	return SplitY(r, halfLen(r.DeltaY()))
}

// halfLen returns half of the length of an axis with the given delta,
// rounded down.
func halfLen(d uint64) uint64 {
	return d/2 + d%2
}

// evenSpans yields n consecutive spans that exactly cover [lo, hi].
// When the length is not divisible by n, the leading spans are one
// longer than the rest. If n is larger than the length, only as many
// spans as there are positions are yielded. Nothing is yielded if
// hi < lo.
func evenSpans[T Scalar](n int, lo, hi T) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		switch {
		case n <= 0, hi < lo:
			return
		case n == 1:
			yield(lo, hi)
			return
		}

		q, rem := delta(lo, hi).add(wideOne).divmod(uint64(n))
		start := widen(lo)
		for i := range uint64(n) {
			size := q
			if i < rem {
				size++
			}
			if size == 0 {
				return
			}

			end := start.add(wideUint(size)).sub(wideOne)
			if !yield(narrow[T](start), narrow[T](end)) {
				return
			}
			start = end.add(wideOne)
		}
	}
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split r into a series of rectangles that recursively split
// each section halfway to the right and then downwards. In other
// words,
//
//	tiles := make([]geom.Rect[uint16], 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an interator instead of inserting them
// into a slice. If a section becomes too small to split, it is
// yielded as the last tile.
func TiledRightThenDown[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		split, next := splitHalfX[T], splitHalfY[T]
		n := r
		for range numtiles - 1 {
			c, rest, err := split(n)
			if err != nil {
				break
			}
			if !yield(c) {
				return
			}

			n = rest
			split, next = next, split
		}

		yield(n)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of rectangles where the first is
// two-thirds the width of r and the rest are arranged vertically in
// an even split in the remaining space.
func TileTwoThirdsSidebar[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rectangles from an iterator instead
// of inserting them into a slice.
func TiledTwoThirdsSidebar[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 || !r.Valid() {
			return
		}
		if numtiles == 1 {
			yield(r)
			return
		}

		q, rem := delta(r.Min.X, r.Max.X).add(wideOne).divmod(3)
		first, rest, err := SplitX(r, 2*q+2*rem/3)
		if err != nil {
			yield(r)
			return
		}
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rest) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// vertical splitting of r. In other words,
//
//	tiles := make([]geom.Rect[int32], 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator. The tiles exactly cover r,
// with any remainder going to the topmost tiles.
func TiledEvenVertically[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		for y0, y1 := range evenSpans(numtiles, r.Min.Y, r.Max.Y) {
			if !yield(Rt(r.Min.X, y0, r.Max.X, y1)) {
				return
			}
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// horizontal splitting of r. In other words,
//
//	tiles := make([]geom.Rect[int32], 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

// TiledEvenHorizontally is the same as [TileEvenHorizontally] except
// that it yields the tiles from an iterator. The tiles exactly cover
// r, with any remainder going to the leftmost tiles.
func TiledEvenHorizontally[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		for x0, x1 := range evenSpans(numtiles, r.Min.X, r.Max.X) {
			if !yield(Rt(x0, r.Min.Y, x1, r.Max.Y)) {
				return
			}
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows[T Scalar](tiles []Rect[T], r Rect[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T Scalar](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 || cols <= 0 {
			return
		}

		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, r)

		for row := range rows {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the rectangle
// provided and then identical copies shifted downwards by its height
// repeatedly, thus producing a vertical stack of rectangles below the
// first. The stack ends with the last copy that fits in the domain.
func VerticalStack[T Scalar](first Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		r := first.Canon()
		h := delta(r.Min.Y, r.Max.Y).add(wideOne)
		if !h.fitsInt64() {
			yield(r)
			return
		}

		shift := Off(0, h.int64())
		for {
			if !yield(r) {
				return
			}
			if r.CheckedTranslateInPlace(shift) != nil {
				return
			}
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rectangles of rects
// underneath the first vertically, expanding all for which it is
// necessary so that they are all the same width including the first.
// If the stack would not fit in the domain, rects is left untouched
// and ErrOverflow is returned.
func ArrangeVerticalStack[T Scalar](rects []Rect[T]) error {
	if len(rects) <= 1 {
		return nil
	}

	b := boundsOf[T]()
	prev := rects[0].Canon()
	width := delta(prev.Min.X, prev.Max.X)
	for _, rect := range rects[1:] {
		if d := delta(rect.Min.X, rect.Max.X); width.less(d) {
			width = d
		}
	}
	x1, ok := b.checkedWide(widen(prev.Min.X), width)
	if !ok {
		return ErrOverflow
	}
	prev.Max.X = narrow[T](x1)

	arranged := make([]Rect[T], len(rects))
	arranged[0] = prev
	for i := 1; i < len(rects); i++ {
		y0, ok := b.checkedWide(widen(prev.Max.Y), wideOne)
		if !ok {
			return ErrOverflow
		}
		y1, ok := b.checkedWide(y0, delta(rects[i].Min.Y, rects[i].Max.Y))
		if !ok {
			return ErrOverflow
		}

		arranged[i] = Rect[T]{
			Min: Pt(prev.Min.X, narrow[T](y0)),
			Max: Pt(prev.Max.X, narrow[T](y1)),
		}
		prev = arranged[i]
	}

	copy(rects, arranged)
	return nil
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified. Axes with no edges
// specified are centered the same way as Resize centers them. The
// result is moved as little as necessary to stay inside of the
// domain.
func Align[T Scalar](outer, inner Rect[T], edges Edges) Rect[T] {
	b := boundsOf[T]()
	x0, x1 := b.alignSpan(
		widen(outer.Min.X), widen(outer.Max.X),
		widen(inner.Min.X), widen(inner.Max.X),
		edges.Has(EdgeLeft), edges.Has(EdgeRight),
	)
	y0, y1 := b.alignSpan(
		widen(outer.Min.Y), widen(outer.Max.Y),
		widen(inner.Min.Y), widen(inner.Max.Y),
		edges.Has(EdgeTop), edges.Has(EdgeBottom),
	)
	return Rect[T]{
		Min: Point[T]{narrow[T](x0), narrow[T](y0)},
		Max: Point[T]{narrow[T](x1), narrow[T](y1)},
	}
}

func (b bounds) alignSpan(olo, ohi, ilo, ihi wide, lo, hi bool) (wide, wide) {
	length := ihi.sub(ilo).add(wideOne)

	var start wide
	switch {
	case lo && hi:
		return olo, ohi
	case lo:
		start = olo
	case hi:
		start = ohi.sub(length).add(wideOne)
	default:
		olen := ohi.sub(olo).add(wideOne)
		start = olo.add(olen.sub(length).half())
	}

	return b.saturatingSpan(start, start.add(length).sub(wideOne), 0)
}

func insertTilesFromSeq[T Scalar](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		if i >= len(tiles) {
			return
		}
		tiles[i] = t
	}
}
