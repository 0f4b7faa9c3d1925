// Copyright 2025 Mosaic ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API of the mosaic sparse/dense tensor
// storage engine.
//
// # Overview
//
// A tensor's storage strategy is chosen per mode: dense modes are stored
// implicitly by size, compressed modes store only the coordinates that are
// present (CSR/CSF-style position and coordinate arrays). The Format also
// carries a mode ordering, so classical layouts like CSR and CSC are just
// two points in the same design space.
//
// Entries are accumulated with Insert in any order, compiled into the
// chosen layout with Pack, and recovered in mode-ordering order with an
// Iterator.
//
// # Basic Usage
//
//	A := tensor.New[float64]("A", tensor.Shape{3, 3}, tensor.CSR)
//	A.Insert([]int{0, 0}, 5)
//	A.Insert([]int{2, 2}, 9)
//	A.Pack()
//
//	it := A.Iterator()
//	for it.Next() {
//	    fmt.Println(it.Coordinate(), it.Value())
//	}
//
// # Zero-copy interop
//
// Storage can borrow caller-owned arrays without copying:
//
//	m := tensor.MakeCSR("m", tensor.Shape{3, 4}, rowptr, colidx, vals)
//
// The engine never frees or reallocates borrowed memory, and mutations
// through the caller's slices stay visible through the tensor.
package tensor
