package array

import "fmt"

// Shape represents the extents of an array, one entry per axis.
type Shape []int

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every extent is positive and the rank is 1 or 2.
// The bridge only deals in vectors and matrices.
func (s Shape) Validate() error {
	if len(s) < 1 || len(s) > 2 {
		return fmt.Errorf("unsupported rank %d (want 1 or 2)", len(s))
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid extent at axis %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// PackedStrides calculates row-major element strides for the shape:
// stride[i] = product of all extents after i.
func (s Shape) PackedStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// IsPacked reports whether the given strides describe a densely packed
// layout for the shape, in either row-major or column-major order.
func IsPacked(shape Shape, strides []int) bool {
	if len(shape) != len(strides) {
		return false
	}
	return packedIn(shape, strides, true) || packedIn(shape, strides, false)
}

func packedIn(shape Shape, strides []int, rowMajor bool) bool {
	acc := 1
	if rowMajor {
		for i := len(shape) - 1; i >= 0; i-- {
			if strides[i] != acc {
				return false
			}
			acc *= shape[i]
		}
	} else {
		for i := 0; i < len(shape); i++ {
			if strides[i] != acc {
				return false
			}
			acc *= shape[i]
		}
	}
	return true
}
