package matrix

import "testing"

func TestScaleStrideI16(t *testing.T) {
	// 2x3 matrix embedded in rows of stride 4.
	src := []int16{
		1, 2, 3, 0,
		4, 5, 6, 0,
	}
	dst := make([]int16, 8)

	ScaleStrideI16(dst, src, 2, 3, 4, 4, 10, 1)

	// (v*10)>>1 = v*5
	want := []int16{
		5, 10, 15, 0,
		20, 25, 30, 0,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestScaleStrideI16DifferentStrides(t *testing.T) {
	// Compact a 2x2 sub-matrix from stride-3 rows into stride-2 rows.
	src := []int16{
		100, 200, -1,
		300, 400, -1,
	}
	dst := make([]int16, 4)

	ScaleStrideI16(dst, src, 2, 2, 2, 3, 1, 2)

	want := []int16{25, 50, 75, 100}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestScaleStrideI16NegativeValues(t *testing.T) {
	src := []int16{-7}
	dst := make([]int16, 1)

	// (-7*2)>>2 = -14>>2 = -4 (arithmetic shift, toward negative infinity)
	ScaleStrideI16(dst, src, 1, 1, 1, 1, 2, 2)

	if dst[0] != -4 {
		t.Errorf("dst[0] = %d, want -4", dst[0])
	}
}
