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

import "github.com/ajroetker/go-vecmap/hwy"

// Func is an elementwise transform of one register.
//
// Implementations must be pure: Apply may read its argument and the
// receiver's own constants, and nothing else. Each output lane must depend
// only on the same input lane, because tail registers carry padding lanes
// whose results are discarded.
//
// The map functions take the Func as a type parameter, so passing a
// concrete struct (not a Func interface value) lets the compiler resolve
// Apply statically for every call in the chunk loop.
type Func[T hwy.Lanes] interface {
	Apply(v hwy.Vec[T]) hwy.Vec[T]
}

// ScalarFunc is an optional interface for Funcs that can also transform a
// single value. Scalar(x) must equal lane i of Apply for any register whose
// lane i holds x.
type ScalarFunc[T hwy.Lanes] interface {
	Func[T]
	Scalar(x T) T
}

// VecFunc adapts a plain function to the Func interface.
//
// Calls through a VecFunc are indirect and cannot be inlined; prefer a
// struct Func in hot loops.
type VecFunc[T hwy.Lanes] func(hwy.Vec[T]) hwy.Vec[T]

// Apply calls f(v).
func (f VecFunc[T]) Apply(v hwy.Vec[T]) hwy.Vec[T] {
	return f(v)
}

// FuncOf wraps fn as a Func.
func FuncOf[T hwy.Lanes](fn func(hwy.Vec[T]) hwy.Vec[T]) VecFunc[T] {
	return VecFunc[T](fn)
}

// Chain applies First and then Second. Both stages are type parameters,
// so a Chain of struct Funcs is itself fully statically dispatched.
type Chain[T hwy.Lanes, F Func[T], G Func[T]] struct {
	First  F
	Second G
}

// Apply returns Second.Apply(First.Apply(v)).
func (c Chain[T, F, G]) Apply(v hwy.Vec[T]) hwy.Vec[T] {
	return c.Second.Apply(c.First.Apply(v))
}

// Then composes f and g into a single Func that applies f first.
//
//	fn := algo.Then[float32](algo.Scale[float32](5), algo.Offset[float32](5))
func Then[T hwy.Lanes, F Func[T], G Func[T]](f F, g G) Chain[T, F, G] {
	return Chain[T, F, G]{First: f, Second: g}
}
