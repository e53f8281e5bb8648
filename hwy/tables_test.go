package hwy

import (
	"math/bits"
	"testing"
)

func TestCompressIndexTable8(t *testing.T) {
	// Every row must list the ascending indices of the pattern's set bits.
	for pattern := 0; pattern < 256; pattern++ {
		row := compressIndexTable8[pattern]
		pos := 0
		for i := 0; i < 8; i++ {
			if pattern&(1<<i) != 0 {
				if row[pos] != uint8(i) {
					t.Fatalf("pattern %#x slot %d: got %d, want %d", pattern, pos, row[pos], i)
				}
				pos++
			}
		}
		if pos != bits.OnesCount8(uint8(pattern)) {
			t.Fatalf("pattern %#x: %d indices, want %d", pattern, pos, bits.OnesCount8(uint8(pattern)))
		}
		for ; pos < 8; pos++ {
			if row[pos] != 0 {
				t.Fatalf("pattern %#x slot %d: trailing slot not zero", pattern, pos)
			}
		}
	}
}

func TestCompressIndicesInto(t *testing.T) {
	cases := []struct {
		name string
		mask uint64
		n    int
		want []uint8
	}{
		{"empty", 0, 8, nil},
		{"full byte", 0xFF, 8, []uint8{0, 1, 2, 3, 4, 5, 6, 7}},
		{"scenario", 0b1101, 4, []uint8{0, 2, 3}},
		{"partial lanes trim high bits", 0xFF, 5, []uint8{0, 1, 2, 3, 4}},
		{"two blocks", 0x0101, 16, []uint8{0, 8}},
		{"block boundary", 0x8001, 16, []uint8{0, 15}},
		{"odd lane count across blocks", 0x7FF, 11, []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"all 64", ^uint64(0) & (1<<63 | 1), 64, []uint8{0, 63}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			idx := make([]uint8, 64)
			got := compressIndicesInto(tt.mask, tt.n, idx)
			if got != len(tt.want) {
				t.Fatalf("count: got %d, want %d", got, len(tt.want))
			}
			for i, want := range tt.want {
				if idx[i] != want {
					t.Errorf("idx[%d]: got %d, want %d", i, idx[i], want)
				}
			}
		})
	}
}

func TestCompressIndicesMatchScan(t *testing.T) {
	// The table-driven kernel must agree with a direct bit scan for every
	// pattern over a couple of block-spanning lane counts.
	for _, n := range []int{8, 12, 16} {
		limit := 1 << n
		idx := make([]uint8, n)
		for mask := 0; mask < limit; mask++ {
			got := compressIndicesInto(uint64(mask), n, idx)
			pos := 0
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					if idx[pos] != uint8(i) {
						t.Fatalf("n=%d mask %#x slot %d: got %d, want %d", n, mask, pos, idx[pos], i)
					}
					pos++
				}
			}
			if got != pos {
				t.Fatalf("n=%d mask %#x: count %d, want %d", n, mask, got, pos)
			}
		}
	}
}
