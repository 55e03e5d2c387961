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

// MathFunc applies a float64 math routine lane by lane.
// The routines have no dedicated register form, so each lane is widened,
// evaluated, and narrowed back to T.
type MathFunc[T hwy.Floats] struct {
	fn func(float64) float64
}

// Math wraps fn as a Func over T.
func Math[T hwy.Floats](fn func(float64) float64) MathFunc[T] {
	return MathFunc[T]{fn: fn}
}

func (f MathFunc[T]) Apply(v hwy.Vec[T]) hwy.Vec[T] { return hwy.Unary(v, f.Scalar) }
func (f MathFunc[T]) Scalar(x T) T                  { return T(f.fn(float64(x))) }

func sigmoid(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) }

func Exp[T hwy.Floats]() MathFunc[T]     { return Math[T](math.Exp) }
func Exp2[T hwy.Floats]() MathFunc[T]    { return Math[T](math.Exp2) }
func Log[T hwy.Floats]() MathFunc[T]     { return Math[T](math.Log) }
func Log2[T hwy.Floats]() MathFunc[T]    { return Math[T](math.Log2) }
func Log10[T hwy.Floats]() MathFunc[T]   { return Math[T](math.Log10) }
func Sin[T hwy.Floats]() MathFunc[T]     { return Math[T](math.Sin) }
func Cos[T hwy.Floats]() MathFunc[T]     { return Math[T](math.Cos) }
func Tanh[T hwy.Floats]() MathFunc[T]    { return Math[T](math.Tanh) }
func Sinh[T hwy.Floats]() MathFunc[T]    { return Math[T](math.Sinh) }
func Cosh[T hwy.Floats]() MathFunc[T]    { return Math[T](math.Cosh) }
func Erf[T hwy.Floats]() MathFunc[T]     { return Math[T](math.Erf) }
func Sigmoid[T hwy.Floats]() MathFunc[T] { return Math[T](sigmoid) }

// scalarOp lifts a plain scalar function to a Func.
type scalarOp[T hwy.Lanes] struct {
	fn func(T) T
}

func (f scalarOp[T]) Apply(v hwy.Vec[T]) hwy.Vec[T] { return hwy.Unary(v, f.fn) }
func (f scalarOp[T]) Scalar(x T) T                  { return f.fn(x) }

// Transform applies a scalar operation to each element of input, storing
// results in output. It processes min(len(input), len(output)) elements.
//
// Example usage:
//
//	Transform(input, output, func(x float32) float32 { return x*x + x })
func Transform[T hwy.Lanes](input, output []T, scalar func(T) T) {
	MapTo(input, output, scalarOp[T]{fn: scalar})
}

// ExpTransform applies exp(x) to each element.
// Caller must ensure len(output) >= len(input).
func ExpTransform[T hwy.Floats](input, output []T) { MapTo(input, output, Exp[T]()) }

// Exp2Transform applies 2^x to each element.
func Exp2Transform[T hwy.Floats](input, output []T) { MapTo(input, output, Exp2[T]()) }

// LogTransform applies ln(x) to each element.
func LogTransform[T hwy.Floats](input, output []T) { MapTo(input, output, Log[T]()) }

// Log2Transform applies log2(x) to each element.
func Log2Transform[T hwy.Floats](input, output []T) { MapTo(input, output, Log2[T]()) }

// Log10Transform applies log10(x) to each element.
func Log10Transform[T hwy.Floats](input, output []T) { MapTo(input, output, Log10[T]()) }

// SinTransform applies sin(x) to each element.
func SinTransform[T hwy.Floats](input, output []T) { MapTo(input, output, Sin[T]()) }

// CosTransform applies cos(x) to each element.
func CosTransform[T hwy.Floats](input, output []T) { MapTo(input, output, Cos[T]()) }

// TanhTransform applies tanh(x) to each element.
func TanhTransform[T hwy.Floats](input, output []T) { MapTo(input, output, Tanh[T]()) }

// SinhTransform applies sinh(x) to each element.
func SinhTransform[T hwy.Floats](input, output []T) { MapTo(input, output, Sinh[T]()) }

// CoshTransform applies cosh(x) to each element.
func CoshTransform[T hwy.Floats](input, output []T) { MapTo(input, output, Cosh[T]()) }

// SqrtTransform applies sqrt(x) to each element.
func SqrtTransform[T hwy.Floats](input, output []T) { MapTo(input, output, Sqrt[T]()) }

// SigmoidTransform applies 1/(1+exp(-x)) to each element.
func SigmoidTransform[T hwy.Floats](input, output []T) { MapTo(input, output, Sigmoid[T]()) }

// ErfTransform applies erf(x) to each element.
func ErfTransform[T hwy.Floats](input, output []T) { MapTo(input, output, Erf[T]()) }
