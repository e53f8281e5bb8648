package hwy

import "math/bits"

//go:generate go run ../cmd/tablegen -output tables_gen.go

// compressIndicesInto writes the stable left-compaction permutation for
// mask: the ascending lane indices i in [0, n) with bit i set. The
// permutation is looked up per 8-lane block in the generated index table
// and recombined with the block offset, so the cost is bounded by n/8 table
// rows regardless of the bit pattern. Returns the number of indices
// written, which equals the popcount of the first n bits.
//
// idx must have room for at least n entries.
func compressIndicesInto(mask uint64, n int, idx []uint8) int {
	if n < 64 {
		mask &= uint64(1)<<n - 1
	}
	pos := 0
	for block := 0; block < n; block += 8 {
		b := uint8(mask >> block)
		row := &compressIndexTable8[b]
		cnt := bits.OnesCount8(b)
		for j := 0; j < cnt; j++ {
			idx[pos] = row[j] + uint8(block)
			pos++
		}
	}
	return pos
}
