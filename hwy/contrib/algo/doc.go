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

// Package algo applies elementwise register transforms to whole slices.
// This package corresponds to Google Highway's hwy/contrib/algo directory.
//
// # Map API
//
// A Func transforms one hwy.Vec at a time. The map functions walk a slice
// in register-sized chunks and handle the remainder with one padded
// register on the stack, so they never allocate and never touch memory
// past the end of the slice:
//   - Map(data, fn): in place
//   - MapNew(src, fn): into a new slice
//   - MapTo(src, dst, fn): into a caller-provided slice
//   - MapFunc(data, fn): in place, with a plain function value
//
// The Func is a type parameter. Pass a concrete struct such as
// Scale[float32](5) and each chunk calls its Apply method directly; pass a
// closure through FuncOf or MapFunc and each chunk makes an indirect call.
//
// # Pipelines
//
// Pipeline chains several Funcs into one pass over the data. Then builds
// the same kind of chain with static types when the stages are known at
// compile time.
//
// # Transforms
//
// ExpTransform, LogTransform, SinTransform and friends apply a math
// routine to every element of a float slice. They are thin wrappers over
// MapTo with the matching MathFunc, so the same Funcs (Exp, Log, Tanh,
// Sigmoid, ...) can also be used as Pipeline stages.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-vecmap/hwy/contrib/algo"
//
//	// (x*5 + 5) / 5 as one fused pass
//	p := algo.NewPipeline[float32]().
//	    Append(algo.Scale[float32](5)).
//	    Append(algo.Offset[float32](5)).
//	    Append(algo.DivBy[float32](5))
//	out := p.Run(input)
//
//	// Custom operation, in place
//	algo.MapFunc(data, func(x hwy.Vec[float32]) hwy.Vec[float32] {
//	    return hwy.Add(hwy.Mul(x, x), x) // x² + x
//	})
package algo
