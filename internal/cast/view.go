package cast

import (
	"fmt"

	"github.com/matcast-go/matcast/internal/array"
	"github.com/matcast-go/matcast/internal/mat"
)

// MapFromHost borrows a host array's storage as a strided native
// matrix view. Zero-copy: the view addresses the host's elements
// directly, so writes on either side are visible on the other.
//
// Fails with ErrTypeMismatch for a dtype mismatch and with
// ErrLayoutMismatch when the rank or stride pattern cannot be
// represented by the view (including FlagRequirePacked demanding a
// unit inner stride).
func MapFromHost[T array.Scalar](obj *array.Array, flags Flags) (*mat.Map[T], error) {
	buf, err := viewBuffer[T](obj)
	if err != nil {
		return nil, err
	}
	if len(buf.Shape) != 2 {
		return nil, fmt.Errorf("%w: rank %d host array for a matrix view", ErrLayoutMismatch, len(buf.Shape))
	}
	if flags&FlagRequirePacked != 0 && buf.Strides[1] != 1 {
		return nil, fmt.Errorf("%w: inner stride %d, need 1", ErrLayoutMismatch, buf.Strides[1])
	}
	view, err := mat.NewMap(array.ValuesOf[T](buf.Data),
		buf.Shape[0], buf.Shape[1], buf.Strides[0], buf.Strides[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLayoutMismatch, err)
	}
	return view, nil
}

// VecMapFromHost borrows a 1-axis host array's storage as a strided
// native vector view. Same contract as MapFromHost.
func VecMapFromHost[T array.Scalar](obj *array.Array, flags Flags) (*mat.VecMap[T], error) {
	buf, err := viewBuffer[T](obj)
	if err != nil {
		return nil, err
	}
	if len(buf.Shape) != 1 {
		return nil, fmt.Errorf("%w: rank %d host array for a vector view", ErrLayoutMismatch, len(buf.Shape))
	}
	if flags&FlagRequirePacked != 0 && buf.Strides[0] != 1 {
		return nil, fmt.Errorf("%w: inner stride %d, need 1", ErrLayoutMismatch, buf.Strides[0])
	}
	view, err := mat.NewVecMap(array.ValuesOf[T](buf.Data), buf.Shape[0], buf.Strides[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLayoutMismatch, err)
	}
	return view, nil
}

// RefFromHost borrows a host array as a restricted view. The inbound
// work is delegated to the strided view marshaller with a packed inner
// axis required, then rewrapped into the restricted type. There is no
// outbound counterpart: a Ref is only produced on the native side.
func RefFromHost[T array.Scalar](obj *array.Array, flags Flags) (*mat.Ref[T], error) {
	view, err := MapFromHost[T](obj, flags|FlagRequirePacked)
	if err != nil {
		return nil, err
	}
	ref, err := mat.NewRef(view)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLayoutMismatch, err)
	}
	return ref, nil
}

// MapToHost exposes a strided native view as a host array. Views never
// own their storage, so the emitted policy is always Reference: no
// copy, no capsule, regardless of what the caller requested.
func MapToHost[T array.Scalar](m *mat.Map[T]) (*array.Array, error) {
	d := DescribeMap(m)
	return emit(d, array.TypeOf[T](), array.BytesOf(m.Data()), Reference, nil, nil)
}

// VecMapToHost exposes a strided native vector view as a host array,
// always by Reference.
func VecMapToHost[T array.Scalar](v *mat.VecMap[T]) (*array.Array, error) {
	d := DescribeVecMap(v)
	return emit(d, array.TypeOf[T](), array.BytesOf(v.Data()), Reference, nil, nil)
}

func viewBuffer[T array.Scalar](obj *array.Array) (array.Buffer, error) {
	buf, err := array.AsBuffer(obj)
	if err != nil {
		return array.Buffer{}, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}
	if buf.DType != array.TypeOf[T]() {
		return array.Buffer{}, fmt.Errorf("%w: host dtype %s, native %s",
			ErrTypeMismatch, buf.DType, array.TypeOf[T]())
	}
	return buf, nil
}

// MapCaster is the per-type conversion unit for strided matrix views.
type MapCaster[T array.Scalar] struct {
	Value *mat.Map[T]
}

// TryFromHost borrows a host array into Value. A false result leaves
// Value untouched.
func (c *MapCaster[T]) TryFromHost(obj *array.Array, flags Flags) bool {
	v, err := MapFromHost[T](obj, flags)
	if err != nil {
		return false
	}
	c.Value = v
	return true
}

// ToHost exposes Value to the host. The policy argument is accepted
// for contract uniformity and ignored: views always emit Reference.
func (c *MapCaster[T]) ToHost(Policy) (*array.Array, error) {
	return MapToHost(c.Value)
}

// VecMapCaster is the per-type conversion unit for strided vector views.
type VecMapCaster[T array.Scalar] struct {
	Value *mat.VecMap[T]
}

// TryFromHost borrows a host array into Value. A false result leaves
// Value untouched.
func (c *VecMapCaster[T]) TryFromHost(obj *array.Array, flags Flags) bool {
	v, err := VecMapFromHost[T](obj, flags)
	if err != nil {
		return false
	}
	c.Value = v
	return true
}

// ToHost exposes Value to the host, always by Reference.
func (c *VecMapCaster[T]) ToHost(Policy) (*array.Array, error) {
	return VecMapToHost(c.Value)
}

// RefCaster is the per-type conversion unit for restricted views. It
// implements only the inbound half of the contract: the restricted
// type has no outbound conversion by design of the dispatch set.
type RefCaster[T array.Scalar] struct {
	Value *mat.Ref[T]
}

// TryFromHost borrows a host array into Value via the strided view
// marshaller with a packed inner axis required.
func (c *RefCaster[T]) TryFromHost(obj *array.Array, flags Flags) bool {
	v, err := RefFromHost[T](obj, flags)
	if err != nil {
		return false
	}
	c.Value = v
	return true
}
