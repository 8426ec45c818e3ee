package geom_test

import (
	"errors"
	"fmt"
	"math"

	"deedles.dev/xgeom/geom"
)

func ExampleRect_SaturatingTranslate() {
	r := geom.Rt[uint8](2, 5, 12, 15)
	fmt.Println(r.SaturatingTranslate(geom.Off(-10, -10)))
	// Output: ((0, 0), (10, 10))
}

func ExampleErrOverflow() {
	r := geom.Rt[int8](math.MinInt8+1, math.MinInt8+1, math.MinInt8+10, math.MinInt8+10)
	err := r.CheckedTranslateInPlace(geom.Off(math.MinInt8, math.MinInt8))
	fmt.Println(err)
	fmt.Println(r)
	// Output:
	// overflow
	// ((-127, -127), (-118, -118))
}

func ExampleRect_WrappingTranslate() {
	r := geom.Rt[uint8](250, 0, 255, 5)
	fmt.Println(r.WrappingTranslate(geom.Off(10, 0)))
	// Output: ((4, 0), (9, 5))
}

func ExampleRect_SaturatingInflate() {
	_, err := geom.Rt[uint8](0, 10, 255, 50).SaturatingInflate()
	fmt.Println(errors.Is(err, geom.ErrNoop))

	r, _ := geom.Rt[uint8](0, 10, 20, 50).SaturatingInflate()
	fmt.Println(r)
	// Output:
	// true
	// ((0, 9), (22, 51))
}

func ExampleRect_Resize() {
	r, _ := geom.Rt[uint8](0, 0, 9, 9).Resize(5)
	fmt.Println(r, r.Len())
	// Output: ((2, 2), (6, 6)) (5, 5)
}
