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

// LoadTail loads the first count elements of src into a register and fills
// the remaining lanes by repeating src[count-1]. Repeating a real element
// keeps the padding inside the value domain of the data, so a kernel that
// divides by its input cannot fault on padding the data itself would not
// fault on. With count <= 0 the register is zero.
//
// Only src[:count] is read; count is clamped to the register width and len(src).
func LoadTail[T Lanes](src []T, count int) Vec[T] {
	v := newVec[T]()
	lanes := v.lanes()
	count = max(0, min(count, len(lanes), len(src)))
	if count == 0 {
		return v
	}
	copy(lanes, src[:count])
	last := lanes[count-1]
	for i := count; i < len(lanes); i++ {
		lanes[i] = last
	}
	return v
}

// StoreTail writes the first count lanes of v to dst. Lanes past count are
// discarded, and dst[count:] is never touched.
func StoreTail[T Lanes](v Vec[T], dst []T, count int) {
	lanes := v.lanes()
	count = max(0, min(count, len(lanes), len(dst)))
	copy(dst[:count], lanes[:count])
}
