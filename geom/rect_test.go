package geom_test

import (
	"math"
	"slices"
	"testing"

	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
)

func TestRectDeltaLen(t *testing.T) {
	r := geom.Rt[int8](-128, 0, 127, 10)
	require.Equal(t, uint64(255), r.DeltaX())
	require.Equal(t, uint64(10), r.DeltaY())
	require.Equal(t, geom.Pt[uint64](255, 10), r.Delta())
	require.Equal(t, uint64(255), r.MaxDelta())
	require.Equal(t, uint64(256), r.LenX())
	require.Equal(t, uint64(11), r.LenY())
	require.Equal(t, geom.Pt[uint64](256, 11), r.Len())
	require.Equal(t, uint64(256), r.MaxLen())

	full := geom.Rt[uint64](0, 0, math.MaxUint64, 1)
	require.Equal(t, uint64(math.MaxUint64), full.DeltaX())
	require.Zero(t, full.LenX())
	require.Equal(t, uint64(2), full.LenY())

	f := geom.Rt[float32](-geom.Float32Limit, 0, geom.Float32Limit, 3)
	require.Equal(t, uint64(1<<25), f.DeltaX())
}

func TestRectValidCanon(t *testing.T) {
	r := geom.Rt(5, 0, 1, 3)
	require.False(t, r.Valid())
	require.Equal(t, geom.Rt(1, 0, 5, 3), r.Canon())
	require.True(t, r.Canon().Valid())
	require.True(t, geom.Rt(1, 1, 1, 1).Valid())
}

func TestRectPinned(t *testing.T) {
	require.Equal(t, geom.EdgeLeft|geom.EdgeRight, geom.Rt[uint8](0, 10, 255, 50).Pinned())
	require.Equal(t, geom.EdgeLeft|geom.EdgeTop|geom.EdgeBottom, geom.Rt[int8](-128, -128, 0, 127).Pinned())
	require.Equal(t, geom.EdgeNone, geom.Rt[int8](-127, -127, 126, 126).Pinned())
	require.Equal(t, geom.EdgeRight, geom.Rt[float32](0, 0, geom.Float32Limit, 5).Pinned())
}

func TestRectCenter(t *testing.T) {
	require.Equal(t, geom.Pt[uint8](4, 4), geom.Rt[uint8](0, 0, 9, 9).Center())
	require.Equal(t, geom.Pt[int8](-1, 0), geom.Rt[int8](-128, 0, 127, 0).Center())
	require.Equal(
		t,
		geom.Pt[uint64](math.MaxInt64, 1),
		geom.Rt[uint64](0, 0, math.MaxUint64, 2).Center(),
	)
}

func TestRectPoints(t *testing.T) {
	r := geom.Rt[uint8](254, 0, 255, 1)
	require.Equal(t, []geom.Point[uint8]{
		geom.Pt[uint8](254, 0),
		geom.Pt[uint8](255, 0),
		geom.Pt[uint8](254, 1),
		geom.Pt[uint8](255, 1),
	}, slices.Collect(r.Points()))

	require.Empty(t, slices.Collect(geom.Rt(1, 0, 0, 0).Points()))

	var n int
	for range geom.Rt[int8](-128, -128, 127, 127).Points() {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

func TestRectContains(t *testing.T) {
	r := geom.Rt(0, 0, 10, 10)
	require.True(t, r.Contains(r))
	require.True(t, r.Contains(geom.Rt(2, 2, 3, 3)))
	require.False(t, r.Contains(geom.Rt(2, 2, 11, 3)))
}

func TestRectString(t *testing.T) {
	require.Equal(t, "((1, 2), (3, 4))", geom.Rt[int8](1, 2, 3, 4).String())
	require.Equal(t, "((-1.5, 0), (2, 3))", geom.Rt[float64](-1.5, 0, 2, 3).String())
}

func TestConvRect(t *testing.T) {
	r, err := geom.ConvRect[int16](geom.Rt[uint8](0, 1, 254, 255))
	require.Nil(t, err)
	require.Equal(t, geom.Rt[int16](0, 1, 254, 255), r)

	_, err = geom.ConvRect[uint8](geom.Rt[int16](0, 0, 256, 1))
	require.ErrorIs(t, err, geom.ErrOverflow)
}
