package geom_test

import (
	"math"
	"testing"

	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
)

// sampleRects returns rectangles along the edges and in the middle of
// T's domain.
func sampleRects[T geom.Scalar]() []geom.Rect[T] {
	d := geom.DomainOf[T]()
	return []geom.Rect[T]{
		geom.Rt[T](0, 0, 0, 0),
		geom.Rt[T](10, 10, 20, 15),
		geom.Rt(d.Min, d.Min, d.Min+10, d.Min+3),
		geom.Rt(d.Max-20, d.Max-5, d.Max, d.Max),
		geom.Rt(d.Min, 0, d.Max, 0),
		geom.Rt(d.Min, d.Min, d.Max, d.Max),
		geom.Rt(d.Min+1, d.Max-3, d.Max-1, d.Max-1),
	}
}

var sampleOffsets = []geom.Offset{
	geom.Off(0, 0),
	geom.Off(1, -1),
	geom.Off(-10, 10),
	geom.Off(127, -128),
	geom.Off(1000, -1000),
	geom.Off(1<<40, -1<<40),
	geom.Off(math.MaxInt64, math.MinInt64+1),
}

func testTranslateProperties[T geom.Scalar](t *testing.T) {
	for _, r := range sampleRects[T]() {
		for _, d := range sampleOffsets {
			checked, err := r.CheckedTranslate(d)
			if err == nil {
				require.Equal(t, r.Delta(), checked.Delta(), "checked %v by %v", r, d)
			} else {
				require.ErrorIs(t, err, geom.ErrOverflow)
				require.Equal(t, r, checked)

				inplace := r
				require.ErrorIs(t, inplace.CheckedTranslateInPlace(d), geom.ErrOverflow)
				require.Equal(t, r, inplace)
			}

			sat := r.SaturatingTranslate(d)
			require.Equal(t, r.Len(), sat.Len(), "saturating %v by %v", r, d)
			require.True(t, sat.Valid())

			wrapped := r.WrappingTranslate(d)
			require.Equal(t, r, wrapped.WrappingTranslate(d.Neg()), "wrapping %v by %v", r, d)

			inplace := r
			inplace.SaturatingTranslateInPlace(d)
			require.Equal(t, sat, inplace)

			inplace = r
			inplace.WrappingTranslateInPlace(d)
			require.Equal(t, wrapped, inplace)
		}
	}
}

func TestTranslateProperties(t *testing.T) {
	t.Run("uint8", testTranslateProperties[uint8])
	t.Run("int8", testTranslateProperties[int8])
	t.Run("int16", testTranslateProperties[int16])
	t.Run("uint32", testTranslateProperties[uint32])
	t.Run("int64", testTranslateProperties[int64])
	t.Run("uint64", testTranslateProperties[uint64])
	t.Run("float32", testTranslateProperties[float32])
	t.Run("float64", testTranslateProperties[float64])
}

func TestSaturatingTranslate(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   geom.Rect[uint8]
		by   geom.Offset
		out  geom.Rect[uint8]
	}{
		{
			name: "anchor clamped to zero",
			in:   geom.Rt[uint8](2, 5, 12, 15),
			by:   geom.Off(-10, -10),
			out:  geom.Rt[uint8](0, 0, 10, 10),
		},
		{
			name: "anchor clamped to fit below max",
			in:   geom.Rt[uint8](240, 0, 250, 10),
			by:   geom.Off(100, 0),
			out:  geom.Rt[uint8](245, 0, 255, 10),
		},
		{
			name: "in range",
			in:   geom.Rt[uint8](20, 20, 30, 30),
			by:   geom.Off(-5, 5),
			out:  geom.Rt[uint8](15, 25, 25, 35),
		},
		{
			name: "full span",
			in:   geom.Rt[uint8](0, 0, 255, 0),
			by:   geom.Off(7, 300),
			out:  geom.Rt[uint8](0, 255, 255, 255),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.out, tc.in.SaturatingTranslate(tc.by))
		})
	}
}

func TestCheckedTranslate(t *testing.T) {
	r := geom.Rt[int8](math.MinInt8+1, math.MinInt8+1, math.MinInt8+10, math.MinInt8+10)
	orig := r

	_, err := r.CheckedTranslate(geom.Off(math.MinInt8, math.MinInt8))
	require.ErrorIs(t, err, geom.ErrOverflow)
	require.ErrorIs(t, r.CheckedTranslateInPlace(geom.Off(math.MinInt8, math.MinInt8)), geom.ErrOverflow)
	require.Equal(t, orig, r)

	// Only the max corner overflows.
	s := geom.Rt[uint8](10, 10, 250, 20)
	require.ErrorIs(t, s.CheckedTranslateInPlace(geom.Off(10, 0)), geom.ErrOverflow)
	require.Equal(t, geom.Rt[uint8](10, 10, 250, 20), s)

	require.Nil(t, s.CheckedTranslateInPlace(geom.Off(5, -10)))
	require.Equal(t, geom.Rt[uint8](15, 0, 255, 10), s)
}

func TestWrappingTranslate(t *testing.T) {
	r := geom.Rt[uint8](250, 0, 255, 5)
	w := r.WrappingTranslate(geom.Off(3, -1))
	require.Equal(t, geom.Rt[uint8](253, 255, 2, 4), w)
	require.Equal(t, r, w.WrappingTranslate(geom.Off(-3, 1)))

	s := geom.Rt[int8](-128, 120, -120, 127)
	require.Equal(t, geom.Rt[int8](127, -128, -121, -121), s.WrappingTranslate(geom.Off(-1, 8)))
}
