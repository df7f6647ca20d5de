// Copyright 2025 The matcast Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mat exposes the public API for the strongly-typed native
// value types the bridge converts: owning matrices and vectors, strided
// non-owning views, restricted views, and lazy expressions.
//
// Example:
//
//	a := mat.NewDense[float32](2, 3, mat.RowMajor)
//	b := mat.NewDense[float32](2, 3, mat.RowMajor)
//	sum := mat.Add[float32](a, b)          // lazy, no storage
//	c := mat.Materialize(sum, mat.RowMajor) // forced into a Dense
package mat

import (
	"github.com/matcast-go/matcast/internal/array"
	"github.com/matcast-go/matcast/internal/mat"
)

// Scalar is the constraint for bridgeable element types.
type Scalar = array.Scalar

// Order is the element storage order of a Dense matrix.
type Order = mat.Order

// Storage orders.
const (
	RowMajor Order = mat.RowMajor
	ColMajor Order = mat.ColMajor
)

// ErrFixedSize is returned when resizing a fixed-extent value.
var ErrFixedSize = mat.ErrFixedSize

// ErrBadView is returned when a view cannot be laid over its storage.
var ErrBadView = mat.ErrBadView

// Dense is a concrete, owning matrix.
type Dense[T Scalar] = mat.Dense[T]

// Vec is a concrete, owning vector.
type Vec[T Scalar] = mat.Vec[T]

// Map is a non-owning strided matrix view.
type Map[T Scalar] = mat.Map[T]

// VecMap is a non-owning strided vector view.
type VecMap[T Scalar] = mat.VecMap[T]

// Ref is a restricted non-owning view with a packed inner axis.
type Ref[T Scalar] = mat.Ref[T]

// Expr is a lazy algebraic value over matrices.
type Expr[T Scalar] = mat.Expr[T]

// NewDense creates a zeroed rows×cols matrix.
func NewDense[T Scalar](rows, cols int, order Order) *Dense[T] {
	return mat.NewDense[T](rows, cols, order)
}

// NewDenseFixed creates a zeroed matrix whose extents cannot change.
func NewDenseFixed[T Scalar](rows, cols int, order Order) *Dense[T] {
	return mat.NewDenseFixed[T](rows, cols, order)
}

// DenseOf wraps an existing element slice as a matrix, taking
// ownership of the slice.
func DenseOf[T Scalar](rows, cols int, order Order, data []T) *Dense[T] {
	return mat.DenseOf(rows, cols, order, data)
}

// NewVec creates a zeroed vector of n elements.
func NewVec[T Scalar](n int) *Vec[T] {
	return mat.NewVec[T](n)
}

// NewVecFixed creates a zeroed vector whose length cannot change.
func NewVecFixed[T Scalar](n int) *Vec[T] {
	return mat.NewVecFixed[T](n)
}

// VecOf wraps an existing element slice as a vector, taking ownership.
func VecOf[T Scalar](data []T) *Vec[T] {
	return mat.VecOf(data)
}

// NewMap lays a strided matrix view over existing storage.
func NewMap[T Scalar](data []T, rows, cols, rowStride, colStride int) (*Map[T], error) {
	return mat.NewMap(data, rows, cols, rowStride, colStride)
}

// MapOf views the full extent of a Dense matrix.
func MapOf[T Scalar](m *Dense[T]) *Map[T] {
	return mat.MapOf(m)
}

// NewVecMap lays a strided vector view over existing storage.
func NewVecMap[T Scalar](data []T, n, inc int) (*VecMap[T], error) {
	return mat.NewVecMap(data, n, inc)
}

// VecMapOf views the full extent of a Vec.
func VecMapOf[T Scalar](v *Vec[T]) *VecMap[T] {
	return mat.VecMapOf(v)
}

// NewRef wraps a Map whose inner stride is 1.
func NewRef[T Scalar](m *Map[T]) (*Ref[T], error) {
	return mat.NewRef(m)
}

// RefOf views a row-major Dense matrix as a restricted view.
func RefOf[T Scalar](m *Dense[T]) *Ref[T] {
	return mat.RefOf(m)
}

// Add returns the lazy element-wise sum a + b.
func Add[T Scalar](a, b Expr[T]) Expr[T] {
	return mat.Add(a, b)
}

// Sub returns the lazy element-wise difference a - b.
func Sub[T Scalar](a, b Expr[T]) Expr[T] {
	return mat.Sub(a, b)
}

// MulElem returns the lazy element-wise product.
func MulElem[T Scalar](a, b Expr[T]) Expr[T] {
	return mat.MulElem(a, b)
}

// Scale returns the lazy scalar product a * s.
func Scale[T Scalar](a Expr[T], s T) Expr[T] {
	return mat.Scale(a, s)
}

// Transpose returns the lazy transpose of a.
func Transpose[T Scalar](a Expr[T]) Expr[T] {
	return mat.Transpose(a)
}

// Materialize forces an expression into a freshly allocated Dense.
func Materialize[T Scalar](e Expr[T], order Order) *Dense[T] {
	return mat.Materialize(e, order)
}
