package hwy

// This file provides the memory-write policies layered on top of the
// compress kernel. BlendedStore is the read-preserving counterpart of a
// plain Store: lanes outside the mask keep their previous destination
// contents.

// BlendedStore stores elements from v to dst only where mask is true.
// Unlike some SIMD implementations of masked stores, this explicitly
// preserves existing values in dst where mask is false.
//
// This is useful when you want conditional updates without affecting
// the non-selected lanes in the destination.
func BlendedStore[T Lanes](v Vec[T], mask Mask[T], dst []T) {
	n := min(len(dst), min(len(mask.bits), len(v.data)))
	for i := range n {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
		// else: dst[i] unchanged (the "blend" part)
	}
}
