package hwy

import "testing"

func TestTailMask(t *testing.T) {
	maxLanes := MaxLanes[float32]()

	mask := TailMask[float32](2)
	if mask.NumLanes() != maxLanes {
		t.Fatalf("NumLanes: got %d, want %d", mask.NumLanes(), maxLanes)
	}
	for i := 0; i < maxLanes; i++ {
		want := i < 2
		if mask.GetBit(i) != want {
			t.Errorf("lane %d: got %v, want %v", i, mask.GetBit(i), want)
		}
	}

	if got := TailMask[float32](-1).CountTrue(); got != 0 {
		t.Errorf("negative count: got %d true lanes", got)
	}
	if got := TailMask[float32](maxLanes + 5).CountTrue(); got != maxLanes {
		t.Errorf("clamped count: got %d, want %d", got, maxLanes)
	}
}

func TestProcessWithTailCompaction(t *testing.T) {
	// Filter a slice whose length is not a multiple of the vector width.
	maxLanes := MaxLanes[int32]()
	size := maxLanes*2 + 3

	input := make([]int32, size)
	var want []int32
	for i := range input {
		input[i] = int32(i - size/2)
		if input[i] > 0 {
			want = append(want, input[i])
		}
	}

	output := make([]int32, size)
	threshold := Zero[int32]()

	kept := 0
	ProcessWithTail[int32](size,
		func(offset int) {
			v := Load(input[offset:])
			keep := GreaterThan(v, threshold)
			kept += CompressBlendedStore(v, keep, output[kept:])
		},
		func(offset, n int) {
			tail := TailMask[int32](n)
			v := MaskLoad(tail, input[offset:])
			keep := MaskAnd(GreaterThan(v, threshold), tail)
			kept += CompressBlendedStore(v, keep, output[kept:])
		},
	)

	if kept != len(want) {
		t.Fatalf("kept: got %d, want %d", kept, len(want))
	}
	for i := range want {
		if output[i] != want[i] {
			t.Errorf("output[%d]: got %v, want %v", i, output[i], want[i])
		}
	}
}
