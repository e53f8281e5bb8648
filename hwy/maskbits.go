package hwy

// This file provides the packed-bit mask representation: one bit per lane,
// lowest bit first within each byte. The buffer layout matches Highway's
// StoreMaskBits/LoadMaskBits so packed masks are interchangeable with
// bitmaps produced by other columnar tooling.

// MaskBitsSize returns the packed-bit buffer length for an n-lane mask:
// ceil(n/8) bytes, rounded up to a multiple of 8 bytes for caller
// convenience. Bytes beyond ceil(n/8) are padding.
func MaskBitsSize(n int) int {
	if n <= 0 {
		return 0
	}
	return roundUpTo((n+7)/8, 8)
}

func roundUpTo(v, multiple int) int {
	return (v + multiple - 1) / multiple * multiple
}

// StoreMaskBits packs mask into bits: bit i%8 of bits[i/8] holds lane i,
// lowest bit first. Padding bits (indices >= NumLanes) within the
// MaskBitsSize window are zeroed, though callers must not depend on their
// contents. Never writes past len(bits). Returns the number of meaningful
// bytes, ceil(NumLanes/8).
func StoreMaskBits[T Lanes](mask Mask[T], bits []byte) int {
	n := len(mask.bits)
	writable := min(len(bits), MaskBitsSize(n))
	for i := range writable {
		bits[i] = 0
	}
	for i := 0; i < n; i++ {
		if mask.bits[i] && i/8 < len(bits) {
			bits[i/8] |= 1 << (i % 8)
		}
	}
	return (n + 7) / 8
}

// LoadMaskBits unpacks the first n lanes from bits, the inverse of
// StoreMaskBits. Bits at indices >= n are ignored and bytes past len(bits)
// are never read; missing bytes decode as inactive lanes.
func LoadMaskBits[T Lanes](bits []byte, n int) Mask[T] {
	if n < 0 {
		n = 0
	}
	lanes := make([]bool, n)
	for i := 0; i < n; i++ {
		byteIdx := i / 8
		if byteIdx >= len(bits) {
			break
		}
		lanes[i] = bits[byteIdx]&(1<<(i%8)) != 0
	}
	return Mask[T]{bits: lanes}
}
