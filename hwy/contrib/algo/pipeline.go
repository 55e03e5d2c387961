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
	"slices"

	"github.com/ajroetker/go-vecmap/hwy"
)

// Pipeline is an ordered list of Funcs applied as one fused pass.
//
// Run loads each chunk once, pushes the register through every stage in
// append order, and stores it once, so K stages cost K register operations
// per chunk instead of K passes over memory.
//
// A Pipeline holds no per-run state. Build it with Append, then call Run
// from any number of goroutines; Append must not race with Run.
//
// Example:
//
//	p := algo.NewPipeline[float32]().
//	    Append(algo.Scale[float32](5)).
//	    Append(algo.Offset[float32](5)).
//	    Append(algo.DivBy[float32](5))
//	out := p.Run([]float32{1, 2, 3, 4, 5}) // [2 3 4 5 6]
type Pipeline[T hwy.Lanes] struct {
	stages []Func[T]
}

// NewPipeline returns a pipeline with the given initial stages.
func NewPipeline[T hwy.Lanes](stages ...Func[T]) *Pipeline[T] {
	return &Pipeline[T]{stages: slices.Clone(stages)}
}

// Append adds fn as the last stage and returns p for chaining.
func (p *Pipeline[T]) Append(fn Func[T]) *Pipeline[T] {
	p.stages = append(p.stages, fn)
	return p
}

// Len returns the number of stages.
func (p *Pipeline[T]) Len() int {
	return len(p.stages)
}

// Apply pushes v through every stage in order. It makes a Pipeline usable
// wherever a Func is, including as a stage of another Pipeline.
func (p *Pipeline[T]) Apply(v hwy.Vec[T]) hwy.Vec[T] {
	for _, stage := range p.stages {
		v = stage.Apply(v)
	}
	return v
}

// Run returns a new slice holding every element of src passed through all
// stages. With no stages it returns a copy of src.
func (p *Pipeline[T]) Run(src []T) []T {
	out := make([]T, len(src))
	p.RunTo(src, out)
	return out
}

// RunTo writes the pipeline's output for src into dst, processing
// min(len(src), len(dst)) elements.
func (p *Pipeline[T]) RunTo(src, dst []T) {
	if len(p.stages) == 0 {
		copy(dst, src)
		return
	}
	MapTo(src, dst, p)
}

// RunInPlace replaces every element of data with its pipeline output.
func (p *Pipeline[T]) RunInPlace(data []T) {
	if len(p.stages) == 0 {
		return
	}
	MapTo(data, data, p)
}

// Compose folds the current stages into a single Func, built ahead of time
// instead of walking the stage list on every chunk. Stages appended to p
// afterwards do not affect the returned Func.
func (p *Pipeline[T]) Compose() Func[T] {
	stages := slices.Clone(p.stages)
	switch len(stages) {
	case 0:
		return Identity[T]()
	case 1:
		return stages[0]
	}
	fn := stages[0].Apply
	for _, stage := range stages[1:] {
		prev, next := fn, stage.Apply
		fn = func(v hwy.Vec[T]) hwy.Vec[T] { return next(prev(v)) }
	}
	return VecFunc[T](fn)
}
