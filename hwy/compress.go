package hwy

import "math/bits"

// This file provides the compress (stream compaction) operation family and
// the mask helpers it builds on. Compress packs elements where the mask is
// true into a contiguous, order-preserving prefix; Expand is its inverse.
//
// Two store policies are exposed:
//   - CompressStore / CompressBitsStore: overwriting. A full-width store of
//     the compacted vector, so dst[count:N) may be clobbered. The caller
//     must provide N lanes of writable slack.
//   - CompressBlendedStore: preserving. Exactly count lanes are written;
//     dst[count:N) keeps its pre-call contents.

// compressLanes is the shared kernel behind all Compress entry points.
// It computes the stable left-compaction permutation via the generated
// 8-lane index table (recombined per block) and gathers the active lanes.
// Lanes [count, N) of the result are zero; callers must not rely on that.
func compressLanes[T Lanes](v Vec[T], mask Mask[T]) (Vec[T], int) {
	n := min(len(v.data), len(mask.bits))
	result := make([]T, len(v.data))

	if n > 64 {
		// No packed-bit fast path; scan the lanes directly.
		count := 0
		for i := 0; i < n; i++ {
			if mask.bits[i] {
				result[count] = v.data[i]
				count++
			}
		}
		return Vec[T]{data: result}, count
	}

	m := maskBits64(mask.bits[:n])
	count := bits.OnesCount64(m)

	var idx [64]uint8
	written := compressIndicesInto(m, n, idx[:])
	if written != count {
		Abort("compress index count %d != popcount %d (mask %#x, lanes %d)",
			written, count, m, n)
	}
	for j := 0; j < count; j++ {
		result[j] = v.data[idx[j]]
	}
	return Vec[T]{data: result}, count
}

// maskBits64 packs up to 64 lane flags into an integer, lowest lane first.
func maskBits64(lanes []bool) uint64 {
	var m uint64
	for i, bit := range lanes {
		if bit {
			m |= 1 << i
		}
	}
	return m
}

// Compress packs elements where mask is true to the front.
// Returns the compacted vector and the count of valid elements.
// For example: v=[1,2,3,4], mask=[T,F,T,F] -> result=[1,3,_,_], count=2.
// Lanes at positions >= count are unspecified (currently zero).
func Compress[T Lanes](v Vec[T], mask Mask[T]) (Vec[T], int) {
	return compressLanes(v, mask)
}

// CompressStore compresses and stores to dst with the overwriting policy:
// the entire compacted vector is written, so dst[count:N) may receive
// unspecified values. dst should have at least N lanes of writable slack
// even though only count of them are meaningful. Any element offset of dst
// is supported. Returns the number of meaningful elements.
func CompressStore[T Lanes](v Vec[T], mask Mask[T], dst []T) int {
	compressed, count := compressLanes(v, mask)
	Store(compressed, dst)
	return count
}

// CompressBlendedStore compresses and stores exactly the active lanes to
// dst[0:count); dst[count:N) is guaranteed unmodified. This costs a blended
// (read-modify-write) store but allows dst to alias adjacent live data or
// to have no slack beyond count. Returns the number of elements stored.
func CompressBlendedStore[T Lanes](v Vec[T], mask Mask[T], dst []T) int {
	compressed, count := compressLanes(v, mask)
	blend := make([]bool, len(compressed.data))
	for i := 0; i < count && i < len(blend); i++ {
		blend[i] = true
	}
	BlendedStore(compressed, Mask[T]{bits: blend}, dst)
	return count
}

// CompressBits is Compress with a pre-packed mask: bit i%8 of bits[i/8]
// selects lane i, lowest bit first. Bits at indices >= NumLanes are
// ignored. See LoadMaskBits for the buffer layout.
func CompressBits[T Lanes](v Vec[T], bits []byte) (Vec[T], int) {
	return compressLanes(v, LoadMaskBits[T](bits, len(v.data)))
}

// CompressBitsStore is CompressStore with a pre-packed mask. It shares the
// overwriting policy: dst[count:N) may be clobbered.
func CompressBitsStore[T Lanes](v Vec[T], bits []byte, dst []T) int {
	return CompressStore(v, LoadMaskBits[T](bits, len(v.data)), dst)
}

// Expand unpacks elements into positions where mask is true.
// Elements from v fill true positions, false positions get zero.
// For example: v=[1,2,0,0], mask=[T,F,T,F] -> result=[1,0,2,0]
func Expand[T Lanes](v Vec[T], mask Mask[T]) Vec[T] {
	n := len(mask.bits)
	result := make([]T, n)

	srcIdx := 0
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			if srcIdx < len(v.data) {
				result[i] = v.data[srcIdx]
				srcIdx++
			}
		}
		// else: leave as zero value
	}
	return Vec[T]{data: result}
}

// CountTrue counts true lanes in mask.
// This is a function wrapper around Mask.CountTrue() for consistency.
func CountTrue[T Lanes](mask Mask[T]) int {
	return mask.CountTrue()
}

// AllTrue returns true if all lanes are true.
// This is a function wrapper around Mask.AllTrue() for consistency.
func AllTrue[T Lanes](mask Mask[T]) bool {
	return mask.AllTrue()
}

// AllFalse returns true if all lanes are false.
func AllFalse[T Lanes](mask Mask[T]) bool {
	for _, bit := range mask.bits {
		if bit {
			return false
		}
	}
	return true
}

// FindFirstTrue returns index of first true lane, or -1 if none.
func FindFirstTrue[T Lanes](mask Mask[T]) int {
	for i, bit := range mask.bits {
		if bit {
			return i
		}
	}
	return -1
}

// FindLastTrue returns index of last true lane, or -1 if none.
func FindLastTrue[T Lanes](mask Mask[T]) int {
	for i := len(mask.bits) - 1; i >= 0; i-- {
		if mask.bits[i] {
			return i
		}
	}
	return -1
}

// FirstN creates a mask with the first n lanes set to true.
// This is similar to TailMask but more explicit in naming.
func FirstN[T Lanes](n int) Mask[T] {
	maxLanes := MaxLanes[T]()
	if n < 0 {
		n = 0
	}
	if n > maxLanes {
		n = maxLanes
	}

	bits := make([]bool, maxLanes)
	for i := 0; i < n; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// LastN creates a mask with the last n lanes set to true.
func LastN[T Lanes](n int) Mask[T] {
	maxLanes := MaxLanes[T]()
	if n < 0 {
		n = 0
	}
	if n > maxLanes {
		n = maxLanes
	}

	bits := make([]bool, maxLanes)
	start := maxLanes - n
	for i := start; i < maxLanes; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// MaskFromBits creates a mask from a bitmask integer.
// Bit i of bits corresponds to lane i.
func MaskFromBits[T Lanes](bits uint64) Mask[T] {
	maxLanes := MaxLanes[T]()
	result := make([]bool, maxLanes)
	for i := 0; i < maxLanes && i < 64; i++ {
		result[i] = (bits & (1 << i)) != 0
	}
	return Mask[T]{bits: result}
}

// BitsFromMask converts mask to a bitmask integer.
// Lane i corresponds to bit i of the result; lanes >= 64 are ignored.
func BitsFromMask[T Lanes](mask Mask[T]) uint64 {
	var result uint64
	for i, bit := range mask.bits {
		if bit && i < 64 {
			result |= 1 << i
		}
	}
	return result
}

// MaskAnd performs bitwise AND on two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	result := make([]bool, n)
	for i := range n {
		result[i] = a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: result}
}

// MaskOr performs bitwise OR on two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	result := make([]bool, n)
	for i := range n {
		result[i] = a.bits[i] || b.bits[i]
	}
	return Mask[T]{bits: result}
}

// MaskXor performs bitwise XOR on two masks.
func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	result := make([]bool, n)
	for i := range n {
		result[i] = a.bits[i] != b.bits[i]
	}
	return Mask[T]{bits: result}
}

// MaskNot inverts all bits in a mask.
func MaskNot[T Lanes](mask Mask[T]) Mask[T] {
	result := make([]bool, len(mask.bits))
	for i, bit := range mask.bits {
		result[i] = !bit
	}
	return Mask[T]{bits: result}
}

// MaskAndNot performs (~a) & b on masks.
func MaskAndNot[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	result := make([]bool, n)
	for i := range n {
		result[i] = !a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: result}
}
