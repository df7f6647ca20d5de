// Copyright 2025 The matcast Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array exposes the public API for the host-side dynamic
// N-dimensional array object and the buffer bridge.
//
// An Array pairs reference-counted element storage with shape,
// per-axis element strides, an element-type tag, and a contiguity
// flag. Arrays are produced and consumed by the cast package; host
// code retains and releases them, and the owner capsule attached by an
// ownership-transferring conversion is released exactly once when the
// last reference drops.
//
// Example:
//
//	a, _ := array.FromSlice([]float32{1, 2, 3, 4}, array.Shape{2, 2})
//	fmt.Println(a) // Array(float32, shape=[2 2], ...)
//	a.Release()
package array

import (
	"github.com/matcast-go/matcast/internal/array"
)

// Scalar is the constraint for bridgeable element types.
type Scalar = array.Scalar

// DataType is the runtime element-type tag carried by an Array.
type DataType = array.DataType

// Element type tags.
const (
	Float16  DataType = array.Float16
	BFloat16 DataType = array.BFloat16
	Float32  DataType = array.Float32
	Float64  DataType = array.Float64
	Int8     DataType = array.Int8
	Int16    DataType = array.Int16
	Int32    DataType = array.Int32
	Int64    DataType = array.Int64
	Uint8    DataType = array.Uint8
	Uint16   DataType = array.Uint16
	Uint32   DataType = array.Uint32
	Uint64   DataType = array.Uint64
)

// Shape represents the extents of an array, one entry per axis.
type Shape = array.Shape

// Array is the dynamically-typed N-dimensional array object.
type Array = array.Array

// Capsule is the opaque owner token keeping a heap allocation alive.
type Capsule = array.Capsule

// Buffer is the flat descriptor exchanged across the bridge.
type Buffer = array.Buffer

// BufferPolicy tells FromBuffer how to treat the provided memory.
type BufferPolicy = array.BufferPolicy

// Buffer policies.
const (
	BufferReference BufferPolicy = array.BufferReference
	BufferCopy      BufferPolicy = array.BufferCopy
)

// ErrBadBuffer signals a buffer descriptor the bridge cannot represent.
var ErrBadBuffer = array.ErrBadBuffer

// TypeOf maps a Go scalar type to its DataType tag.
func TypeOf[T Scalar]() DataType {
	return array.TypeOf[T]()
}

// NewCapsule wraps a release callback into an owner token.
func NewCapsule(release func()) *Capsule {
	return array.NewCapsule(release)
}

// FromBuffer constructs a host array from a buffer descriptor.
func FromBuffer(buf Buffer, owner *Capsule, policy BufferPolicy) (*Array, error) {
	return array.FromBuffer(buf, owner, policy)
}

// AsBuffer exposes an array as a buffer descriptor without copying.
func AsBuffer(a *Array) (Buffer, error) {
	return array.AsBuffer(a)
}

// FromSlice builds a fresh packed array by copying a typed slice.
func FromSlice[T Scalar](data []T, shape Shape) (*Array, error) {
	return array.FromSlice(data, shape)
}

// Values reinterprets an array's storage as a []T without copying.
func Values[T Scalar](a *Array) []T {
	return array.Values[T](a)
}
