// Package mat provides the strongly-typed native matrix, vector, view,
// and lazy expression types that the cast layer bridges to host arrays.
package mat

import (
	"errors"
	"fmt"

	"github.com/matcast-go/matcast/internal/array"
)

// ErrFixedSize is returned when resizing a value whose extents were
// fixed at construction.
var ErrFixedSize = errors.New("mat: value has fixed extents")

// Order is the element storage order of a Dense matrix.
type Order int

const (
	// RowMajor stores rows contiguously (C order).
	RowMajor Order = iota
	// ColMajor stores columns contiguously (Fortran order).
	ColMajor
)

// String returns "row-major" or "col-major".
func (o Order) String() string {
	if o == ColMajor {
		return "col-major"
	}
	return "row-major"
}

// Dense is a concrete, owning matrix. Extents are dynamic unless the
// value was built with NewDenseFixed, in which case they are immutable
// and the ownership resolver treats the footprint as statically known.
type Dense[T array.Scalar] struct {
	data  []T
	rows  int
	cols  int
	order Order
	fixed bool
}

// NewDense creates a zeroed rows×cols matrix.
// Panics if an extent is not positive.
func NewDense[T array.Scalar](rows, cols int, order Order) *Dense[T] {
	checkExtents(rows, cols)
	return &Dense[T]{
		data:  make([]T, rows*cols),
		rows:  rows,
		cols:  cols,
		order: order,
	}
}

// NewDenseFixed creates a zeroed matrix whose extents cannot change.
func NewDenseFixed[T array.Scalar](rows, cols int, order Order) *Dense[T] {
	m := NewDense[T](rows, cols, order)
	m.fixed = true
	return m
}

// DenseOf wraps an existing element slice as a rows×cols matrix,
// taking ownership of the slice. Panics if the length does not match.
func DenseOf[T array.Scalar](rows, cols int, order Order, data []T) *Dense[T] {
	checkExtents(rows, cols)
	if len(data) != rows*cols {
		panic(fmt.Sprintf("mat: %d elements for %d×%d matrix", len(data), rows, cols))
	}
	return &Dense[T]{data: data, rows: rows, cols: cols, order: order}
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.cols }

// Len returns the total element count.
func (m *Dense[T]) Len() int { return len(m.data) }

// Order returns the storage order.
func (m *Dense[T]) Order() Order { return m.order }

// Fixed reports whether the extents are immutable.
func (m *Dense[T]) Fixed() bool { return m.fixed }

// Data returns the backing element slice in storage order.
func (m *Dense[T]) Data() []T { return m.data }

// RowStride returns the element distance between vertically adjacent
// elements.
func (m *Dense[T]) RowStride() int {
	if m.order == RowMajor {
		return m.cols
	}
	return 1
}

// ColStride returns the element distance between horizontally adjacent
// elements.
func (m *Dense[T]) ColStride() int {
	if m.order == RowMajor {
		return 1
	}
	return m.rows
}

// At returns the element at (i, j).
func (m *Dense[T]) At(i, j int) T {
	return m.data[i*m.RowStride()+j*m.ColStride()]
}

// Set stores v at (i, j).
func (m *Dense[T]) Set(i, j int, v T) {
	m.data[i*m.RowStride()+j*m.ColStride()] = v
}

// Resize changes the extents, reallocating when the element count
// changes. Element values are unspecified afterwards. Returns
// ErrFixedSize for fixed-extent values.
func (m *Dense[T]) Resize(rows, cols int) error {
	if m.fixed && (rows != m.rows || cols != m.cols) {
		return fmt.Errorf("%w: cannot resize %d×%d to %d×%d", ErrFixedSize, m.rows, m.cols, rows, cols)
	}
	checkExtents(rows, cols)
	if rows*cols != len(m.data) {
		m.data = make([]T, rows*cols)
	}
	m.rows, m.cols = rows, cols
	return nil
}

// Clone returns a deep copy.
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{
		data:  append([]T(nil), m.data...),
		rows:  m.rows,
		cols:  m.cols,
		order: m.order,
		fixed: m.fixed,
	}
}

// Move steals the backing storage into a fresh heap value and leaves
// the receiver empty (0×0, no storage). The returned value is what an
// ownership-transferring conversion boxes into its capsule.
func (m *Dense[T]) Move() *Dense[T] {
	moved := &Dense[T]{data: m.data, rows: m.rows, cols: m.cols, order: m.order}
	m.data = nil
	m.rows, m.cols = 0, 0
	return moved
}

// Reset drops the backing storage. Used by capsule release callbacks.
func (m *Dense[T]) Reset() {
	m.data = nil
	m.rows, m.cols = 0, 0
}

func checkExtents(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("mat: invalid extents %d×%d", rows, cols))
	}
}
