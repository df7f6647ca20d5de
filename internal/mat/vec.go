package mat

import (
	"fmt"

	"github.com/matcast-go/matcast/internal/array"
)

// Vec is a concrete, owning vector with contiguous storage.
type Vec[T array.Scalar] struct {
	data  []T
	fixed bool
}

// NewVec creates a zeroed vector of n elements.
// Panics if n is not positive.
func NewVec[T array.Scalar](n int) *Vec[T] {
	if n <= 0 {
		panic(fmt.Sprintf("mat: invalid vector length %d", n))
	}
	return &Vec[T]{data: make([]T, n)}
}

// NewVecFixed creates a zeroed vector whose length cannot change.
func NewVecFixed[T array.Scalar](n int) *Vec[T] {
	v := NewVec[T](n)
	v.fixed = true
	return v
}

// VecOf wraps an existing element slice, taking ownership of it.
func VecOf[T array.Scalar](data []T) *Vec[T] {
	if len(data) == 0 {
		panic("mat: empty vector")
	}
	return &Vec[T]{data: data}
}

// Len returns the element count.
func (v *Vec[T]) Len() int { return len(v.data) }

// Fixed reports whether the length is immutable.
func (v *Vec[T]) Fixed() bool { return v.fixed }

// Stride returns the inner stride, always 1 for an owning vector.
func (v *Vec[T]) Stride() int { return 1 }

// Data returns the backing element slice.
func (v *Vec[T]) Data() []T { return v.data }

// At returns element i.
func (v *Vec[T]) At(i int) T { return v.data[i] }

// Set stores x at index i.
func (v *Vec[T]) Set(i int, x T) { v.data[i] = x }

// Resize changes the length, reallocating when it differs. Element
// values are unspecified afterwards. Returns ErrFixedSize for
// fixed-length values.
func (v *Vec[T]) Resize(n int) error {
	if v.fixed && n != len(v.data) {
		return fmt.Errorf("%w: cannot resize %d to %d", ErrFixedSize, len(v.data), n)
	}
	if n <= 0 {
		panic(fmt.Sprintf("mat: invalid vector length %d", n))
	}
	if n != len(v.data) {
		v.data = make([]T, n)
	}
	return nil
}

// Clone returns a deep copy.
func (v *Vec[T]) Clone() *Vec[T] {
	return &Vec[T]{data: append([]T(nil), v.data...), fixed: v.fixed}
}

// Move steals the backing storage into a fresh heap value and leaves
// the receiver empty.
func (v *Vec[T]) Move() *Vec[T] {
	moved := &Vec[T]{data: v.data}
	v.data = nil
	return moved
}

// Reset drops the backing storage. Used by capsule release callbacks.
func (v *Vec[T]) Reset() {
	v.data = nil
}
