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

package algo

import (
	"math"

	"github.com/ajroetker/go-vecmap/hwy"
)

// The Funcs below hold their broadcast constants as fields, built once by
// the constructor. Use the constructors: a zero-value Func with constant
// fields has empty registers and is not usable.

// IdentityFunc returns its input unchanged.
type IdentityFunc[T hwy.Lanes] struct{}

// Identity returns a Func that leaves every lane unchanged.
func Identity[T hwy.Lanes]() IdentityFunc[T] { return IdentityFunc[T]{} }

func (IdentityFunc[T]) Apply(v hwy.Vec[T]) hwy.Vec[T] { return v }
func (IdentityFunc[T]) Scalar(x T) T                  { return x }

// NegateFunc computes -x.
type NegateFunc[T hwy.Lanes] struct{}

// Negate returns a Func computing -x. Applying it twice is the identity.
func Negate[T hwy.Lanes]() NegateFunc[T] { return NegateFunc[T]{} }

func (NegateFunc[T]) Apply(v hwy.Vec[T]) hwy.Vec[T] { return hwy.Neg(v) }
func (NegateFunc[T]) Scalar(x T) T                  { return -x }

// AbsFunc computes |x|.
type AbsFunc[T hwy.Lanes] struct{}

// Abs returns a Func computing |x|.
func Abs[T hwy.Lanes]() AbsFunc[T] { return AbsFunc[T]{} }

func (AbsFunc[T]) Apply(v hwy.Vec[T]) hwy.Vec[T] { return hwy.Abs(v) }

func (AbsFunc[T]) Scalar(x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// ScaleFunc computes x * k.
type ScaleFunc[T hwy.Lanes] struct {
	k    T
	kVec hwy.Vec[T]
}

// Scale returns a Func computing x * k.
func Scale[T hwy.Lanes](k T) ScaleFunc[T] {
	return ScaleFunc[T]{k: k, kVec: hwy.Set(k)}
}

func (f ScaleFunc[T]) Apply(v hwy.Vec[T]) hwy.Vec[T] { return hwy.Mul(v, f.kVec) }
func (f ScaleFunc[T]) Scalar(x T) T                  { return x * f.k }

// OffsetFunc computes x + c.
type OffsetFunc[T hwy.Lanes] struct {
	c    T
	cVec hwy.Vec[T]
}

// Offset returns a Func computing x + c.
func Offset[T hwy.Lanes](c T) OffsetFunc[T] {
	return OffsetFunc[T]{c: c, cVec: hwy.Set(c)}
}

func (f OffsetFunc[T]) Apply(v hwy.Vec[T]) hwy.Vec[T] { return hwy.Add(v, f.cVec) }
func (f OffsetFunc[T]) Scalar(x T) T                  { return x + f.c }

// DivByFunc computes x / d.
type DivByFunc[T hwy.Lanes] struct {
	d    T
	dVec hwy.Vec[T]
}

// DivBy returns a Func computing x / d. For integer T, d must not be zero.
func DivBy[T hwy.Lanes](d T) DivByFunc[T] {
	return DivByFunc[T]{d: d, dVec: hwy.Set(d)}
}

func (f DivByFunc[T]) Apply(v hwy.Vec[T]) hwy.Vec[T] { return hwy.Div(v, f.dVec) }
func (f DivByFunc[T]) Scalar(x T) T                  { return x / f.d }

// MulAddFunc computes x*m + a.
type MulAddFunc[T hwy.Lanes] struct {
	m, a       T
	mVec, aVec hwy.Vec[T]
}

// MulAdd returns a Func computing x*m + a.
func MulAdd[T hwy.Lanes](m, a T) MulAddFunc[T] {
	return MulAddFunc[T]{m: m, a: a, mVec: hwy.Set(m), aVec: hwy.Set(a)}
}

func (f MulAddFunc[T]) Apply(v hwy.Vec[T]) hwy.Vec[T] { return hwy.MulAdd(v, f.mVec, f.aVec) }
func (f MulAddFunc[T]) Scalar(x T) T                  { return x*f.m + f.a }

// AffineFunc computes (x*m + a) / d.
type AffineFunc[T hwy.Lanes] struct {
	m, a, d          T
	mVec, aVec, dVec hwy.Vec[T]
}

// Affine returns a Func computing (x*m + a) / d in one stage.
// Affine(5, 5, 5) maps x to x+1 under exact arithmetic.
func Affine[T hwy.Lanes](m, a, d T) AffineFunc[T] {
	return AffineFunc[T]{
		m: m, a: a, d: d,
		mVec: hwy.Set(m), aVec: hwy.Set(a), dVec: hwy.Set(d),
	}
}

func (f AffineFunc[T]) Apply(v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Div(hwy.MulAdd(v, f.mVec, f.aVec), f.dVec)
}

func (f AffineFunc[T]) Scalar(x T) T { return (x*f.m + f.a) / f.d }

// ClampFunc limits x to [lo, hi].
type ClampFunc[T hwy.Lanes] struct {
	lo, hi       T
	loVec, hiVec hwy.Vec[T]
}

// Clamp returns a Func computing min(max(x, lo), hi).
func Clamp[T hwy.Lanes](lo, hi T) ClampFunc[T] {
	return ClampFunc[T]{lo: lo, hi: hi, loVec: hwy.Set(lo), hiVec: hwy.Set(hi)}
}

func (f ClampFunc[T]) Apply(v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Min(hwy.Max(v, f.loVec), f.hiVec)
}

func (f ClampFunc[T]) Scalar(x T) T {
	if f.lo > x {
		x = f.lo
	}
	if f.hi < x {
		x = f.hi
	}
	return x
}

// ReLUFunc computes max(x, 0).
type ReLUFunc[T hwy.Lanes] struct{}

// ReLU returns a Func that zeroes negative lanes.
func ReLU[T hwy.Lanes]() ReLUFunc[T] { return ReLUFunc[T]{} }

func (ReLUFunc[T]) Apply(v hwy.Vec[T]) hwy.Vec[T] { return hwy.ZeroIfNegative(v) }

func (ReLUFunc[T]) Scalar(x T) T {
	if x >= 0 {
		return x
	}
	return 0
}

// SqrtFunc computes the square root of each lane.
type SqrtFunc[T hwy.Floats] struct{}

// Sqrt returns a Func computing sqrt(x).
func Sqrt[T hwy.Floats]() SqrtFunc[T] { return SqrtFunc[T]{} }

func (SqrtFunc[T]) Apply(v hwy.Vec[T]) hwy.Vec[T] { return hwy.Sqrt(v) }
func (SqrtFunc[T]) Scalar(x T) T                  { return T(math.Sqrt(float64(x))) }
