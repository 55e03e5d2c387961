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

// MapTo transforms src into dst one register at a time.
// It processes min(len(src), len(dst)) elements; src and dst may be the
// same slice.
//
// Full registers are loaded straight from src. The remaining
// len % MaxLanes elements are copied into a stack register padded with
// the last tail element, transformed once, and only the real lanes are
// stored. Nothing outside [0, n) of either slice is read or written, and
// no memory is allocated.
func MapTo[T hwy.Lanes, F Func[T]](src, dst []T, fn F) {
	n := min(len(src), len(dst))
	lanes := hwy.MaxLanes[T]()
	tail := n % lanes
	full := n - tail

	// Process full vectors
	for i := 0; i < full; i += lanes {
		hwy.StoreFull(fn.Apply(hwy.LoadFull(src[i:])), dst[i:])
	}

	// Buffer-based tail handling
	if tail > 0 {
		hwy.StoreTail(fn.Apply(hwy.LoadTail(src[full:], tail)), dst[full:], tail)
	}
}

// Map transforms data in place.
//
// Example usage:
//
//	algo.Map(values, algo.Affine[float32](5, 5, 5))
func Map[T hwy.Lanes, F Func[T]](data []T, fn F) {
	MapTo(data, data, fn)
}

// MapNew returns a new slice holding fn applied to every element of src.
// src is not modified. An empty src yields an empty, non-nil slice.
func MapNew[T hwy.Lanes, F Func[T]](src []T, fn F) []T {
	out := make([]T, len(src))
	MapTo(src, out, fn)
	return out
}

// MapFunc transforms data in place with a plain function value.
// It behaves exactly like Map, but every chunk pays for an indirect call.
func MapFunc[T hwy.Lanes](data []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	MapTo(data, data, FuncOf(fn))
}
