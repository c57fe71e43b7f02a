// Copyright 2025 go-linalg Authors
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

// Package lin provides the shared foundation for dense numeric
// linear-algebra kernels: element-type constraints, a row-addressable
// matrix store, and the block partitioner used by the parallel kernels
// in lin/contrib.
//
// The library operates on caller-owned raw buffers. Vectors are plain
// slices; matrices are slices of row slices, so exchanging two rows is a
// constant-time slice-header swap rather than an element copy. Element
// types are fixed per call and selected at compile time through the
// Element constraint:
//
//	var acc float64
//	dot.Dot(pool, v, w, &acc, 256)   // float64 kernel
//
//	var iacc int64
//	dot.Dot(pool, iv, iw, &iacc, 256) // int64 kernel, exact arithmetic
package lin

// Floats is the constraint for floating-point element types.
// Kernels instantiated with a Floats type use IEEE double arithmetic;
// results of parallel reductions may differ in low-order bits between
// runs because merge order is unspecified.
type Floats interface {
	~float64
}

// Ints is the constraint for integer element types.
// Kernels instantiated with an Ints type are exact and order-independent.
type Ints interface {
	~int64
}

// Element is the constraint for all supported matrix/vector element types.
type Element interface {
	Floats | Ints
}
