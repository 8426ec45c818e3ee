package geom

import (
	"math"
	"unsafe"
)

// Float domains are limited to the range in which every integer is
// exactly representable.
const (
	Float32Limit = 1 << 24
	Float64Limit = 1 << 53
)

// Domain describes the range of values that a Scalar type can hold.
type Domain[T Scalar] struct {
	Min, Max T

	// Signed is true for signed integer types and for floats.
	Signed bool

	// Float is true for float32 and float64 based types.
	Float bool

	// Bits is the size of the type in bits.
	Bits int
}

// DomainOf returns the Domain of T.
func DomainOf[T Scalar]() Domain[T] {
	b := boundsOf[T]()
	return Domain[T]{
		Min:    narrow[T](b.lo),
		Max:    narrow[T](b.hi),
		Signed: isSigned[T](),
		Float:  isFloat[T](),
		Bits:   bitSize[T](),
	}
}

// Span returns the number of distinct values in the domain. For
// 64-bit integer domains this is 2^64, which does not fit, and so
// Span returns 0 for them.
func (d Domain[T]) Span() uint64 {
	return widen(d.Max).sub(widen(d.Min)).add(wideOne).uint64()
}

// Contains reports whether v is inside of the domain.
func (d Domain[T]) Contains(v T) bool {
	return d.Min <= v && v <= d.Max
}

// bounds is a Domain in terms of the wide accumulator.
type bounds struct {
	lo, hi wide
}

// span returns hi - lo + 1.
func (b bounds) span() wide {
	return b.hi.sub(b.lo).add(wideOne)
}

func (b bounds) contains(v wide) bool {
	return !v.less(b.lo) && !b.hi.less(v)
}

func boundsOf[T Scalar]() bounds {
	switch n := bitSize[T](); {
	case isFloat[T]():
		lim := int64(Float32Limit)
		if n == 64 {
			lim = Float64Limit
		}
		return bounds{lo: wideInt(-lim), hi: wideInt(lim)}

	case isSigned[T]():
		shift := uint(64 - n)
		return bounds{
			lo: wideInt(math.MinInt64 >> shift),
			hi: wideInt(math.MaxInt64 >> shift),
		}

	default:
		return bounds{hi: wideUint(math.MaxUint64 >> uint(64-n))}
	}
}

func bitSize[T Scalar]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

func isFloat[T Scalar]() bool {
	one := T(1)
	return one/2 != 0
}

func isSigned[T Scalar]() bool {
	var z T
	z--
	return z < 0
}

// widen converts v to the wide accumulator. Float values are
// truncated towards zero.
func widen[T Scalar](v T) wide {
	if isSigned[T]() {
		return wideInt(int64(v))
	}
	return wideUint(uint64(v))
}

// narrow converts w back into T. w must already be inside of T's
// domain.
func narrow[T Scalar](w wide) T {
	if isSigned[T]() {
		return T(w.int64())
	}
	return T(w.uint64())
}

// checked returns v + d and whether the result is inside of b.
func (b bounds) checked(v wide, d int64) (wide, bool) {
	return b.checkedWide(v, wideInt(d))
}

func (b bounds) checkedWide(v, d wide) (wide, bool) {
	s := v.add(d)
	return s, b.contains(s)
}

// saturating returns v + d clamped into b.
func (b bounds) saturating(v wide, d int64) wide {
	return v.add(wideInt(d)).clamp(b.lo, b.hi)
}

// wrapping returns v + d reduced into b as if b were a ring. When
// |d| is smaller than the span this is
//
//	lo + (d - (hi - v) - 1)  if v + d > hi
//	hi + (d - (lo - v) + 1)  if v + d < lo
//
// and larger offsets are first reduced modulo the span.
func (b bounds) wrapping(v wide, d int64) wide {
	span := b.span()
	dw := wideInt(d)
	if span.fitsInt64() {
		dw = wideInt(d % span.int64())
	}

	off := v.sub(b.lo).add(dw)
	switch {
	case off.isNeg():
		off = off.add(span)
	case !off.less(span):
		off = off.sub(span)
	}
	return b.lo.add(off)
}
