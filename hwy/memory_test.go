package hwy

import "testing"

func TestBlendedStore(t *testing.T) {
	v := Vec[float32]{data: []float32{1, 2, 3, 4}}
	mask := Mask[float32]{bits: []bool{true, false, false, true}}

	dst := []float32{90, 91, 92, 93}
	BlendedStore(v, mask, dst)

	want := []float32{1, 91, 92, 4}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d]: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestBlendedStoreShortDst(t *testing.T) {
	v := Vec[int32]{data: []int32{1, 2, 3, 4}}
	mask := Mask[int32]{bits: []bool{true, true, true, true}}

	dst := []int32{0, 0}
	BlendedStore(v, mask, dst)

	if dst[0] != 1 || dst[1] != 2 {
		t.Errorf("short dst: got %v, want [1 2]", dst)
	}
}
