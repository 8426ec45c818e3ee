package geom

import (
	"cmp"
	"math/bits"
)

// wide is a 128-bit two's complement integer. It is large enough to
// hold any value of any domain, any offset, and any sum or difference
// of those, so arithmetic done in it never overflows.
type wide struct {
	hi int64
	lo uint64
}

var wideOne = wideInt(1)

func wideInt(v int64) wide {
	return wide{hi: v >> 63, lo: uint64(v)}
}

func wideUint(v uint64) wide {
	return wide{lo: v}
}

func (w wide) add(o wide) wide {
	lo, carry := bits.Add64(w.lo, o.lo, 0)
	return wide{hi: w.hi + o.hi + int64(carry), lo: lo}
}

func (w wide) sub(o wide) wide {
	lo, borrow := bits.Sub64(w.lo, o.lo, 0)
	return wide{hi: w.hi - o.hi - int64(borrow), lo: lo}
}

func (w wide) cmp(o wide) int {
	if c := cmp.Compare(w.hi, o.hi); c != 0 {
		return c
	}
	return cmp.Compare(w.lo, o.lo)
}

func (w wide) less(o wide) bool { return w.cmp(o) < 0 }

func (w wide) isNeg() bool { return w.hi < 0 }

// half divides w by two, rounding towards negative infinity.
func (w wide) half() wide {
	return wide{
		hi: w.hi >> 1,
		lo: w.lo>>1 | uint64(w.hi)<<63,
	}
}

// int64 returns the low 64 bits of w as a signed integer.
func (w wide) int64() int64 { return int64(w.lo) }

// uint64 returns the low 64 bits of w.
func (w wide) uint64() uint64 { return w.lo }

// fitsInt64 reports whether w can be represented as an int64.
func (w wide) fitsInt64() bool {
	return w.hi == int64(w.lo)>>63
}

// clamp limits w to [lo, hi]. If hi < lo, lo wins.
func (w wide) clamp(lo, hi wide) wide {
	if hi.less(w) {
		w = hi
	}
	if w.less(lo) {
		w = lo
	}
	return w
}

// divmod divides a non-negative w by n. The high half of w must be
// less than n.
func (w wide) divmod(n uint64) (q, r uint64) {
	return bits.Div64(uint64(w.hi), w.lo, n)
}
