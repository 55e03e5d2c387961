// Package hwy provides a portable vector register type for elementwise
// numeric code, sized to the widest SIMD register detected at runtime.
//
// It follows the Highway C++ library's design philosophy: write the kernel
// once against Vec[T], and let the register width follow the CPU
// (AVX-512, AVX2, SSE2, NEON) or fall back to 16-byte registers.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-vecmap/hwy"
//
//	// Load data into vectors
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//
//	// Perform lane-wise operations
//	result := hwy.Add(a, b)
//
//	// Store results
//	hwy.Store(result, output)
package hwy

import "unsafe"

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

// MaxBytes is the largest register width, in bytes, a Vec can hold.
// It matches a 512-bit AVX-512 register.
const MaxBytes = 64

// Vec is a portable vector register holding MaxLanes[T]() lanes of T.
//
// A Vec is a plain value: it contains no pointers, so copying, passing and
// returning one never touches the heap. The lane count is fixed when the
// Vec is built and always equals MaxLanes[T]() for the current process.
//
// Vec instances should not be created directly; use Load, Set or Zero instead.
type Vec[T Lanes] struct {
	// raw is the register storage. uint64 words keep every lane type aligned.
	raw [MaxBytes / 8]uint64
	n   int
}

// lanes returns a slice aliasing the active lanes of v.
func (v *Vec[T]) lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.raw[0])), v.n)
}

// newVec returns a zeroed register with the current lane count for T.
func newVec[T Lanes]() Vec[T] {
	return Vec[T]{n: MaxLanes[T]()}
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Lane returns the value held in lane i. It panics if i is out of range.
func (v Vec[T]) Lane(i int) T {
	return v.lanes()[i]
}

// Data returns a copy of the vector's lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.lanes())
	return out
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation.
// It can be used with IfThenElse to perform conditional operations.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, LessThan, or GreaterThan instead.
type Mask[T Lanes] struct {
	// bits stores which lanes are active; bit i is set if lane i is active.
	bits uint64
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	return m.CountTrue() == m.n
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	return m.bits != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for bits := m.bits; bits != 0; bits &= bits - 1 {
		count++
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits&(1<<uint(i)) != 0
}

func (m *Mask[T]) set(i int, on bool) {
	if on {
		m.bits |= 1 << uint(i)
	}
}
