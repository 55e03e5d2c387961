// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import "math"

// This file provides the pure Go lane-wise operations on Vec. Every
// operation works on a copy of its operands held in the register value
// itself, so none of them allocate.

// Load creates a vector by loading data from a slice.
// If src is shorter than the register, the remaining lanes are zero.
func Load[T Lanes](src []T) Vec[T] {
	v := newVec[T]()
	copy(v.lanes(), src)
	return v
}

// LoadFull loads exactly NumLanes elements from src.
// It panics if len(src) < MaxLanes[T](), like any out-of-range slice expression.
func LoadFull[T Lanes](src []T) Vec[T] {
	v := newVec[T]()
	lanes := v.lanes()
	copy(lanes, src[:len(lanes)])
	return v
}

// Store writes a vector's data to a slice.
// At most min(len(dst), NumLanes) elements are written.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.lanes())
}

// StoreFull writes all NumLanes lanes to dst.
// It panics if len(dst) < NumLanes.
func StoreFull[T Lanes](v Vec[T], dst []T) {
	lanes := v.lanes()
	copy(dst[:len(lanes)], lanes)
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	v := newVec[T]()
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return newVec[T]()
}

// Iota returns a vector with lane i set to i.
func Iota[T Lanes]() Vec[T] {
	v := newVec[T]()
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] = T(i)
	}
	return v
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	ra, rb := a.lanes(), b.lanes()
	for i := 0; i < min(len(ra), len(rb)); i++ {
		ra[i] += rb[i]
	}
	return a
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	ra, rb := a.lanes(), b.lanes()
	for i := 0; i < min(len(ra), len(rb)); i++ {
		ra[i] -= rb[i]
	}
	return a
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	ra, rb := a.lanes(), b.lanes()
	for i := 0; i < min(len(ra), len(rb)); i++ {
		ra[i] *= rb[i]
	}
	return a
}

// Div performs element-wise division.
// For integer lanes it truncates toward zero and panics on a zero divisor,
// exactly as the scalar Go expression a / b does.
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	ra, rb := a.lanes(), b.lanes()
	for i := 0; i < min(len(ra), len(rb)); i++ {
		ra[i] /= rb[i]
	}
	return a
}

// Neg negates all lanes. Unsigned lanes wrap modulo 2^n.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] = -lanes[i]
	}
	return v
}

// Abs computes absolute value. Unsigned lanes are returned unchanged and
// the most negative signed integer stays negative, as in two's complement.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	lanes := v.lanes()
	for i := range lanes {
		if lanes[i] < 0 {
			lanes[i] = -lanes[i]
		}
	}
	return v
}

// Min returns element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	ra, rb := a.lanes(), b.lanes()
	for i := 0; i < min(len(ra), len(rb)); i++ {
		if rb[i] < ra[i] {
			ra[i] = rb[i]
		}
	}
	return a
}

// Max returns element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	ra, rb := a.lanes(), b.lanes()
	for i := 0; i < min(len(ra), len(rb)); i++ {
		if rb[i] > ra[i] {
			ra[i] = rb[i]
		}
	}
	return a
}

// Sqrt computes square root.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] = T(math.Sqrt(float64(lanes[i])))
	}
	return v
}

// MulAdd computes a*b + c element-wise.
// The product is rounded before the addition; use FMA for a single rounding.
func MulAdd[T Lanes](a, b, c Vec[T]) Vec[T] {
	ra, rb, rc := a.lanes(), b.lanes(), c.lanes()
	for i := 0; i < min(len(ra), len(rb), len(rc)); i++ {
		ra[i] = ra[i]*rb[i] + rc[i]
	}
	return a
}

// FMA computes a*b + c with a single rounding.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	ra, rb, rc := a.lanes(), b.lanes(), c.lanes()
	for i := 0; i < min(len(ra), len(rb), len(rc)); i++ {
		ra[i] = T(math.FMA(float64(ra[i]), float64(rb[i]), float64(rc[i])))
	}
	return a
}

// Unary applies a scalar function to every lane.
// It is the fallback for operations that have no dedicated vector form.
func Unary[T Lanes](v Vec[T], fn func(T) T) Vec[T] {
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] = fn(lanes[i])
	}
	return v
}

// compare builds a mask from a lane-wise predicate.
func compare[T Lanes](a, b Vec[T], pred func(x, y T) bool) Mask[T] {
	ra, rb := a.lanes(), b.lanes()
	m := Mask[T]{n: a.n}
	for i := 0; i < min(len(ra), len(rb)); i++ {
		m.set(i, pred(ra[i], rb[i]))
	}
	return m
}

// Equal returns a mask of lanes where a == b.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// NotEqual returns a mask of lanes where a != b.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x != y })
}

// LessThan returns a mask of lanes where a < b.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// GreaterThan returns a mask of lanes where a > b.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// LessEqual returns a mask of lanes where a <= b.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// GreaterEqual returns a mask of lanes where a >= b.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

// IsNaN returns a mask of lanes holding NaN.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	return compare(v, v, func(x, y T) bool { return x != y })
}

// IfThenElse selects a where mask is set and b elsewhere.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	ra, rb := a.lanes(), b.lanes()
	for i := 0; i < min(len(ra), len(rb)); i++ {
		if !mask.GetBit(i) {
			ra[i] = rb[i]
		}
	}
	return a
}

// IfThenElseZero selects a where mask is set and zero elsewhere.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	return IfThenElse(mask, a, Zero[T]())
}

// ZeroIfNegative sets negative lanes to zero.
func ZeroIfNegative[T Lanes](v Vec[T]) Vec[T] {
	return IfThenElseZero(GreaterEqual(v, Zero[T]()), v)
}

// And performs bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	ra, rb := a.lanes(), b.lanes()
	for i := 0; i < min(len(ra), len(rb)); i++ {
		ra[i] &= rb[i]
	}
	return a
}

// Or performs bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	ra, rb := a.lanes(), b.lanes()
	for i := 0; i < min(len(ra), len(rb)); i++ {
		ra[i] |= rb[i]
	}
	return a
}

// Xor performs bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	ra, rb := a.lanes(), b.lanes()
	for i := 0; i < min(len(ra), len(rb)); i++ {
		ra[i] ^= rb[i]
	}
	return a
}

// Not performs bitwise NOT.
func Not[T Integers](v Vec[T]) Vec[T] {
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] = ^lanes[i]
	}
	return v
}

// AndNot computes ^a & b.
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	return And(Not(a), b)
}

// ShiftLeft shifts every lane left by bits.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] <<= uint(bits)
	}
	return v
}

// ShiftRight shifts every lane right by bits (arithmetic for signed types).
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] >>= uint(bits)
	}
	return v
}
