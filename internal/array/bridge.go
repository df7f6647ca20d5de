package array

import (
	"errors"
	"fmt"
)

// ErrBadBuffer signals a buffer descriptor the bridge cannot represent.
var ErrBadBuffer = errors.New("array: invalid buffer descriptor")

// BufferPolicy tells FromBuffer how to treat the provided memory.
type BufferPolicy int

const (
	// BufferReference wraps the provided memory without copying. The
	// optional owner capsule keeps it alive for the array's lifetime.
	BufferReference BufferPolicy = iota
	// BufferCopy duplicates the elements into fresh packed storage.
	BufferCopy
)

// Buffer is the flat descriptor exchanged across the bridge: raw
// storage plus the metadata needed to interpret it. Strides are in
// elements, not bytes.
type Buffer struct {
	Data       []byte
	DType      DataType
	Shape      Shape
	Strides    []int
	Contiguous bool
}

// FromBuffer constructs a host array from a buffer descriptor.
//
// With BufferReference the array aliases buf.Data and the owner capsule
// is attached before the array becomes visible, so there is no window
// where the host can observe the array without its owner. With
// BufferCopy the elements are duplicated into fresh row-major packed
// storage, the owner is not attached, and buf.Data is left untouched.
func FromBuffer(buf Buffer, owner *Capsule, policy BufferPolicy) (*Array, error) {
	if err := buf.Shape.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadBuffer, err)
	}
	if len(buf.Strides) != len(buf.Shape) {
		return nil, fmt.Errorf("%w: %d strides for rank %d", ErrBadBuffer, len(buf.Strides), len(buf.Shape))
	}
	elemSize := buf.DType.Size()
	span := 1
	for i, extent := range buf.Shape {
		if buf.Strides[i] < 0 {
			return nil, fmt.Errorf("%w: negative stride %d on axis %d", ErrBadBuffer, buf.Strides[i], i)
		}
		span += (extent - 1) * buf.Strides[i]
	}
	if span*elemSize > len(buf.Data) {
		return nil, fmt.Errorf("%w: shape %v with strides %v spans %d bytes, have %d",
			ErrBadBuffer, buf.Shape, buf.Strides, span*elemSize, len(buf.Data))
	}

	if policy == BufferCopy {
		packed := buf.Shape.PackedStrides()
		dst := make([]byte, buf.Shape.NumElements()*elemSize)
		copyStrided(dst, buf.Data, buf.Shape, packed, buf.Strides, elemSize)
		return &Array{
			buffer:  newArrayBuffer(dst, nil),
			shape:   buf.Shape.Clone(),
			strides: packed,
			dtype:   buf.DType,
			contig:  true,
		}, nil
	}

	return &Array{
		buffer:  newArrayBuffer(buf.Data, owner),
		shape:   buf.Shape.Clone(),
		strides: append([]int(nil), buf.Strides...),
		dtype:   buf.DType,
		contig:  IsPacked(buf.Shape, buf.Strides),
	}, nil
}

// AsBuffer exposes an array as a buffer descriptor. Pure read: the
// returned descriptor aliases the array's storage.
func AsBuffer(a *Array) (Buffer, error) {
	if a == nil || a.buffer == nil || a.buffer.data == nil {
		return Buffer{}, fmt.Errorf("%w: released or nil array", ErrBadBuffer)
	}
	return Buffer{
		Data:       a.buffer.data,
		DType:      a.dtype,
		Shape:      a.shape,
		Strides:    a.strides,
		Contiguous: a.contig,
	}, nil
}

// FromSlice builds a fresh packed array by copying a typed slice.
// Mostly a convenience for tests and host-side setup.
func FromSlice[T Scalar](data []T, shape Shape) (*Array, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: %d elements for shape %v", ErrBadBuffer, len(data), shape)
	}
	return FromBuffer(Buffer{
		Data:    BytesOf(data),
		DType:   TypeOf[T](),
		Shape:   shape,
		Strides: shape.PackedStrides(),
	}, nil, BufferCopy)
}

// copyStrided copies elements between two equally-shaped layouts,
// one element at a time. Both stride sets are in elements.
func copyStrided(dst, src []byte, shape Shape, dstStrides, srcStrides []int, elemSize int) {
	switch len(shape) {
	case 1:
		for i := 0; i < shape[0]; i++ {
			copy(dst[i*dstStrides[0]*elemSize:(i*dstStrides[0]+1)*elemSize],
				src[i*srcStrides[0]*elemSize:(i*srcStrides[0]+1)*elemSize])
		}
	case 2:
		for i := 0; i < shape[0]; i++ {
			for j := 0; j < shape[1]; j++ {
				d := (i*dstStrides[0] + j*dstStrides[1]) * elemSize
				s := (i*srcStrides[0] + j*srcStrides[1]) * elemSize
				copy(dst[d:d+elemSize], src[s:s+elemSize])
			}
		}
	}
}
