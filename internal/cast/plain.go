package cast

import (
	"fmt"

	"github.com/matcast-go/matcast/internal/array"
	"github.com/matcast-go/matcast/internal/mat"
)

// DenseFromHost copies a host array into a freshly constructed native
// matrix. The inbound path always copies: the host's alignment,
// lifetime, and mutability guarantees are not trusted, so the native
// value never aliases host-owned memory. The host array may be
// strided; elements are gathered one by one.
//
// Fails with ErrTypeMismatch when the dtype or rank does not match.
func DenseFromHost[T array.Scalar](obj *array.Array) (*mat.Dense[T], error) {
	buf, err := array.AsBuffer(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}
	if buf.DType != array.TypeOf[T]() {
		return nil, fmt.Errorf("%w: host dtype %s, native %s", ErrTypeMismatch, buf.DType, array.TypeOf[T]())
	}
	if len(buf.Shape) != 2 {
		return nil, fmt.Errorf("%w: rank %d host array for a matrix", ErrTypeMismatch, len(buf.Shape))
	}

	rows, cols := buf.Shape[0], buf.Shape[1]
	src := array.ValuesOf[T](buf.Data)
	dst := mat.NewDense[T](rows, cols, mat.RowMajor)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst.Set(i, j, src[i*buf.Strides[0]+j*buf.Strides[1]])
		}
	}
	return dst, nil
}

// VecFromHost copies a 1-axis host array into a freshly constructed
// native vector. Same contract as DenseFromHost.
func VecFromHost[T array.Scalar](obj *array.Array) (*mat.Vec[T], error) {
	buf, err := array.AsBuffer(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}
	if buf.DType != array.TypeOf[T]() {
		return nil, fmt.Errorf("%w: host dtype %s, native %s", ErrTypeMismatch, buf.DType, array.TypeOf[T]())
	}
	if len(buf.Shape) != 1 {
		return nil, fmt.Errorf("%w: rank %d host array for a vector", ErrTypeMismatch, len(buf.Shape))
	}

	n := buf.Shape[0]
	src := array.ValuesOf[T](buf.Data)
	dst := mat.NewVec[T](n)
	for i := 0; i < n; i++ {
		dst.Set(i, src[i*buf.Strides[0]])
	}
	return dst, nil
}

// DenseToHost converts a native matrix to a host array under the
// requested ownership policy. With an effective Move the native
// storage is re-housed in a heap value owned by a capsule, the host
// array's owner is bound to that capsule, and the buffer bridge is
// handed a Reference: the capsule now supplies the "someone owns this"
// contract. With Copy the bridge duplicates the elements itself. With
// Reference the host aliases the caller's storage with no owner.
func DenseToHost[T array.Scalar](m *mat.Dense[T], policy Policy) (*array.Array, error) {
	return denseOut(m, policy, nil)
}

// DenseToHostOwned is the outbound entry for a matrix the caller hands
// over for good: Automatic and AutomaticReference upgrade to Move
// before resolution, so large temporaries transfer instead of copying.
func DenseToHostOwned[T array.Scalar](m *mat.Dense[T], policy Policy) (*array.Array, error) {
	return denseOut(m, upgradeOwned(policy), nil)
}

// DenseToHostBound shares a matrix's storage with the host and binds
// the host array's owner to the parent capsule that keeps the storage
// alive.
func DenseToHostBound[T array.Scalar](m *mat.Dense[T], parent *array.Capsule) (*array.Array, error) {
	return denseOut(m, ReferenceParent, parent)
}

// VecToHost converts a native vector to a host array under the
// requested ownership policy. See DenseToHost for the policy contract.
func VecToHost[T array.Scalar](v *mat.Vec[T], policy Policy) (*array.Array, error) {
	return vecOut(v, policy, nil)
}

// VecToHostOwned is the owned-value outbound entry for vectors.
func VecToHostOwned[T array.Scalar](v *mat.Vec[T], policy Policy) (*array.Array, error) {
	return vecOut(v, upgradeOwned(policy), nil)
}

// VecToHostBound shares a vector's storage with the host, bound to a
// parent capsule.
func VecToHostBound[T array.Scalar](v *mat.Vec[T], parent *array.Capsule) (*array.Array, error) {
	return vecOut(v, ReferenceParent, parent)
}

func upgradeOwned(policy Policy) Policy {
	if policy == Automatic || policy == AutomaticReference {
		return Move
	}
	return policy
}

func denseOut[T array.Scalar](m *mat.Dense[T], policy Policy, parent *array.Capsule) (*array.Array, error) {
	d := DescribeDense(m)
	dtype := array.TypeOf[T]()
	eff := Resolve(policy, m.Fixed(), m.Len(), dtype.Size())

	data := m.Data()
	var boxed *mat.Dense[T]
	if eff == Move {
		boxed = m.Move()
		data = boxed.Data()
	}
	return emit(d, dtype, array.BytesOf(data), eff, parent, func() *array.Capsule {
		return array.NewCapsule(boxed.Reset)
	})
}

func vecOut[T array.Scalar](v *mat.Vec[T], policy Policy, parent *array.Capsule) (*array.Array, error) {
	d := DescribeVec(v)
	dtype := array.TypeOf[T]()
	eff := Resolve(policy, v.Fixed(), v.Len(), dtype.Size())

	data := v.Data()
	var boxed *mat.Vec[T]
	if eff == Move {
		boxed = v.Move()
		data = boxed.Data()
	}
	return emit(d, dtype, array.BytesOf(data), eff, parent, func() *array.Capsule {
		return array.NewCapsule(boxed.Reset)
	})
}

// emit hands a resolved conversion to the buffer bridge. For Move the
// capsule is created first and attached atomically with the array, so
// the host never sees the array without its owner; if the bridge
// rejects the buffer the capsule is released here and no host object
// exists.
func emit(d Descriptor, dtype array.DataType, data []byte, eff Policy,
	parent *array.Capsule, newCapsule func() *array.Capsule) (*array.Array, error) {

	var owner *array.Capsule
	bufPolicy := array.BufferReference

	switch eff {
	case Copy:
		bufPolicy = array.BufferCopy
	case Move:
		owner = newCapsule()
	case Reference:
	case ReferenceParent:
		if parent == nil {
			return nil, fmt.Errorf("%w: reference-bound conversion without a parent owner", ErrAllocationFailure)
		}
		owner = parent
	}

	arr, err := array.FromBuffer(array.Buffer{
		Data:    data,
		DType:   dtype,
		Shape:   d.Shape(),
		Strides: d.ElemStrides(),
	}, owner, bufPolicy)
	if err != nil {
		if eff == Move {
			owner.Release()
		}
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailure, err)
	}
	return arr, nil
}

// DenseCaster is the per-type conversion unit for owning matrices,
// satisfying both halves of the caster contract.
type DenseCaster[T array.Scalar] struct {
	Value *mat.Dense[T]
}

// TryFromHost populates Value from a host array. A false result
// leaves Value untouched.
func (c *DenseCaster[T]) TryFromHost(obj *array.Array, _ Flags) bool {
	v, err := DenseFromHost[T](obj)
	if err != nil {
		return false
	}
	c.Value = v
	return true
}

// ToHost converts Value under the requested policy.
func (c *DenseCaster[T]) ToHost(policy Policy) (*array.Array, error) {
	return DenseToHost(c.Value, policy)
}

// VecCaster is the per-type conversion unit for owning vectors.
type VecCaster[T array.Scalar] struct {
	Value *mat.Vec[T]
}

// TryFromHost populates Value from a host array. A false result
// leaves Value untouched.
func (c *VecCaster[T]) TryFromHost(obj *array.Array, _ Flags) bool {
	v, err := VecFromHost[T](obj)
	if err != nil {
		return false
	}
	c.Value = v
	return true
}

// ToHost converts Value under the requested policy.
func (c *VecCaster[T]) ToHost(policy Policy) (*array.Array, error) {
	return VecToHost(c.Value, policy)
}
