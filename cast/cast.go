// Copyright 2025 The matcast Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cast exposes the public conversion API between native mat
// values and host arrays.
//
// Outbound conversions resolve a requested ownership policy into the
// effective one before touching memory: Automatic duplicates,
// AutomaticReference shares, Move transfers ownership through a
// capsule unless the value is small or fixed-size, in which case it
// copies. Inbound conversions either copy into a fresh owning value
// (Dense, Vec) or borrow the host storage zero-copy (Map, VecMap,
// Ref). Expressions convert outbound only, through materialization.
//
// Example:
//
//	m := mat.NewDense[float32](64, 64, mat.RowMajor)
//	a, err := cast.DenseToHost(m, cast.Automatic) // host gets a copy
//	...
//	back, err := cast.DenseFromHost[float32](a)
package cast

import (
	"github.com/matcast-go/matcast/internal/array"
	"github.com/matcast-go/matcast/internal/cast"
	"github.com/matcast-go/matcast/internal/mat"
)

// Policy is the requested ownership contract for an outbound
// conversion.
type Policy = cast.Policy

// Ownership policies.
const (
	Automatic          Policy = cast.Automatic
	AutomaticReference Policy = cast.AutomaticReference
	Copy               Policy = cast.Copy
	Move               Policy = cast.Move
	Reference          Policy = cast.Reference
	ReferenceParent    Policy = cast.ReferenceParent
)

// MoveThresholdBytes is the footprint below which Move downgrades to
// Copy.
const MoveThresholdBytes = cast.MoveThresholdBytes

// Flags adjust inbound conversion behavior.
type Flags = cast.Flags

// Inbound flags.
const (
	FlagNone          Flags = cast.FlagNone
	FlagRequirePacked Flags = cast.FlagRequirePacked
)

// Conversion failure conditions.
var (
	ErrTypeMismatch             = cast.ErrTypeMismatch
	ErrLayoutMismatch           = cast.ErrLayoutMismatch
	ErrAllocationFailure        = cast.ErrAllocationFailure
	ErrExpressionNotConvertible = cast.ErrExpressionNotConvertible
)

// Descriptor pairs a native value's axis count with extents, strides,
// and packing.
type Descriptor = cast.Descriptor

// InboundCaster is the host-to-native half of the per-type contract.
type InboundCaster = cast.InboundCaster

// OutboundCaster is the native-to-host half of the per-type contract.
type OutboundCaster = cast.OutboundCaster

// Per-type conversion units.
type (
	// DenseCaster converts owning matrices in both directions.
	DenseCaster[T array.Scalar] = cast.DenseCaster[T]
	// VecCaster converts owning vectors in both directions.
	VecCaster[T array.Scalar] = cast.VecCaster[T]
	// MapCaster converts strided matrix views in both directions.
	MapCaster[T array.Scalar] = cast.MapCaster[T]
	// VecMapCaster converts strided vector views in both directions.
	VecMapCaster[T array.Scalar] = cast.VecMapCaster[T]
	// RefCaster converts restricted views, inbound only.
	RefCaster[T array.Scalar] = cast.RefCaster[T]
	// ExprCaster converts lazy expressions, outbound only.
	ExprCaster[T array.Scalar] = cast.ExprCaster[T]
)

// Resolve turns a requested policy into the effective one.
func Resolve(requested Policy, fixedSize bool, elemCount, elemSize int) Policy {
	return cast.Resolve(requested, fixedSize, elemCount, elemSize)
}

// DescribeDense derives the shape/stride descriptor for a matrix.
func DescribeDense[T array.Scalar](m *mat.Dense[T]) Descriptor {
	return cast.DescribeDense(m)
}

// DescribeVec derives the shape/stride descriptor for a vector.
func DescribeVec[T array.Scalar](v *mat.Vec[T]) Descriptor {
	return cast.DescribeVec(v)
}

// DenseFromHost copies a host array into a fresh native matrix.
func DenseFromHost[T array.Scalar](obj *array.Array) (*mat.Dense[T], error) {
	return cast.DenseFromHost[T](obj)
}

// VecFromHost copies a 1-axis host array into a fresh native vector.
func VecFromHost[T array.Scalar](obj *array.Array) (*mat.Vec[T], error) {
	return cast.VecFromHost[T](obj)
}

// DenseToHost converts a native matrix under the requested policy.
func DenseToHost[T array.Scalar](m *mat.Dense[T], policy Policy) (*array.Array, error) {
	return cast.DenseToHost(m, policy)
}

// DenseToHostOwned converts a matrix the caller hands over for good.
func DenseToHostOwned[T array.Scalar](m *mat.Dense[T], policy Policy) (*array.Array, error) {
	return cast.DenseToHostOwned(m, policy)
}

// DenseToHostBound shares a matrix's storage bound to a parent owner.
func DenseToHostBound[T array.Scalar](m *mat.Dense[T], parent *array.Capsule) (*array.Array, error) {
	return cast.DenseToHostBound(m, parent)
}

// VecToHost converts a native vector under the requested policy.
func VecToHost[T array.Scalar](v *mat.Vec[T], policy Policy) (*array.Array, error) {
	return cast.VecToHost(v, policy)
}

// VecToHostOwned converts a vector the caller hands over for good.
func VecToHostOwned[T array.Scalar](v *mat.Vec[T], policy Policy) (*array.Array, error) {
	return cast.VecToHostOwned(v, policy)
}

// VecToHostBound shares a vector's storage bound to a parent owner.
func VecToHostBound[T array.Scalar](v *mat.Vec[T], parent *array.Capsule) (*array.Array, error) {
	return cast.VecToHostBound(v, parent)
}

// ExprToHost materializes a lazy expression and converts the result.
func ExprToHost[T array.Scalar](e mat.Expr[T], policy Policy) (*array.Array, error) {
	return cast.ExprToHost(e, policy)
}

// MapFromHost borrows a host array as a strided matrix view.
func MapFromHost[T array.Scalar](obj *array.Array, flags Flags) (*mat.Map[T], error) {
	return cast.MapFromHost[T](obj, flags)
}

// VecMapFromHost borrows a host array as a strided vector view.
func VecMapFromHost[T array.Scalar](obj *array.Array, flags Flags) (*mat.VecMap[T], error) {
	return cast.VecMapFromHost[T](obj, flags)
}

// RefFromHost borrows a host array as a restricted view.
func RefFromHost[T array.Scalar](obj *array.Array, flags Flags) (*mat.Ref[T], error) {
	return cast.RefFromHost[T](obj, flags)
}

// MapToHost exposes a strided matrix view to the host by Reference.
func MapToHost[T array.Scalar](m *mat.Map[T]) (*array.Array, error) {
	return cast.MapToHost(m)
}

// VecMapToHost exposes a strided vector view to the host by Reference.
func VecMapToHost[T array.Scalar](v *mat.VecMap[T]) (*array.Array, error) {
	return cast.VecMapToHost(v)
}

// Register installs an inbound caster factory under a kind name.
func Register(kind string, factory func() InboundCaster) {
	cast.Register(kind, factory)
}

// RegisterOutboundOnly records a kind that can never be constructed
// from host data.
func RegisterOutboundOnly(kind string) {
	cast.RegisterOutboundOnly(kind)
}

// NewInbound returns a fresh inbound caster for a registered kind.
func NewInbound(kind string) (InboundCaster, error) {
	return cast.NewInbound(kind)
}

// Kinds returns all registered kind names, sorted.
func Kinds() []string {
	return cast.Kinds()
}
