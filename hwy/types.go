// Package hwy provides a portable stream-compaction (compress) primitive
// with runtime CPU dispatch.
//
// It follows the Highway C++ library's design philosophy: write once,
// run optimally everywhere. The lane count of a vector is derived from the
// widest SIMD register of the running CPU (AVX2, AVX-512, NEON) or a
// 128-bit fallback in scalar mode.
//
// Basic usage:
//
//	import "github.com/lsrcz/highway/hwy"
//
//	v := hwy.Load(data)
//	mask := hwy.GreaterThan(v, hwy.Zero[float32]())
//
//	// Pack the lanes selected by mask to the front.
//	packed, count := hwy.Compress(v, mask)
//
//	// Or store them directly, preserving the destination tail.
//	n := hwy.CompressBlendedStore(v, mask, out)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle. It holds a fixed number of lanes
// determined by the SIMD width at the time of construction.
//
// Vec instances should not be created directly; use Load, Set, Zero or
// Iota instead. The package never retains a reference to a Vec across
// calls; all operations are value-in, value-out.
type Vec[T Lanes] struct {
	// data holds the vector elements.
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}

// Mask represents the result of a comparison operation, one boolean per
// lane. It selects the "active" lanes for Compress, IfThenElse, MaskLoad
// and MaskStore.
//
// Mask instances should not be created directly; use comparison operations
// like Equal or GreaterThan, or constructors like FirstN and MaskFromBits.
type Mask[T Lanes] struct {
	// bits stores which lanes are active (true).
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
