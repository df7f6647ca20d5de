package mat

import (
	"errors"
	"fmt"

	"github.com/matcast-go/matcast/internal/array"
)

// ErrBadView is returned when a view cannot be laid over the given
// storage with the requested extents and strides.
var ErrBadView = errors.New("mat: view does not fit its storage")

// Map is a non-owning matrix view over externally-held storage with
// explicit per-axis element strides. It never allocates and never
// frees; the storage outlives the view by the caller's arrangement.
type Map[T array.Scalar] struct {
	data      []T
	rows      int
	cols      int
	rowStride int
	colStride int
}

// NewMap lays a rows×cols view with the given element strides over
// data. Strides must be positive; the addressed span must fit.
func NewMap[T array.Scalar](data []T, rows, cols, rowStride, colStride int) (*Map[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: extents %d×%d", ErrBadView, rows, cols)
	}
	if rowStride < 1 || colStride < 1 {
		return nil, fmt.Errorf("%w: strides (%d, %d)", ErrBadView, rowStride, colStride)
	}
	if span := (rows-1)*rowStride + (cols-1)*colStride + 1; span > len(data) {
		return nil, fmt.Errorf("%w: span %d over %d elements", ErrBadView, span, len(data))
	}
	return &Map[T]{data: data, rows: rows, cols: cols, rowStride: rowStride, colStride: colStride}, nil
}

// MapOf views the full extent of a Dense matrix.
func MapOf[T array.Scalar](m *Dense[T]) *Map[T] {
	return &Map[T]{
		data:      m.Data(),
		rows:      m.Rows(),
		cols:      m.Cols(),
		rowStride: m.RowStride(),
		colStride: m.ColStride(),
	}
}

// Rows returns the row count.
func (m *Map[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Map[T]) Cols() int { return m.cols }

// RowStride returns the element distance between vertically adjacent
// elements.
func (m *Map[T]) RowStride() int { return m.rowStride }

// ColStride returns the element distance between horizontally adjacent
// elements.
func (m *Map[T]) ColStride() int { return m.colStride }

// Data returns the viewed storage, starting at the view's origin.
func (m *Map[T]) Data() []T { return m.data }

// At returns the element at (i, j).
func (m *Map[T]) At(i, j int) T {
	return m.data[i*m.rowStride+j*m.colStride]
}

// Set stores v at (i, j). The write lands in the viewed storage.
func (m *Map[T]) Set(i, j int, v T) {
	m.data[i*m.rowStride+j*m.colStride] = v
}

// VecMap is a non-owning vector view with an explicit inner stride.
type VecMap[T array.Scalar] struct {
	data []T
	n    int
	inc  int
}

// NewVecMap lays an n-element view with inner stride inc over data.
func NewVecMap[T array.Scalar](data []T, n, inc int) (*VecMap[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: length %d", ErrBadView, n)
	}
	if inc < 1 {
		return nil, fmt.Errorf("%w: stride %d", ErrBadView, inc)
	}
	if span := (n-1)*inc + 1; span > len(data) {
		return nil, fmt.Errorf("%w: span %d over %d elements", ErrBadView, span, len(data))
	}
	return &VecMap[T]{data: data, n: n, inc: inc}, nil
}

// VecMapOf views the full extent of a Vec.
func VecMapOf[T array.Scalar](v *Vec[T]) *VecMap[T] {
	return &VecMap[T]{data: v.Data(), n: v.Len(), inc: 1}
}

// Len returns the element count.
func (v *VecMap[T]) Len() int { return v.n }

// Stride returns the inner stride.
func (v *VecMap[T]) Stride() int { return v.inc }

// Data returns the viewed storage, starting at the view's origin.
func (v *VecMap[T]) Data() []T { return v.data }

// At returns element i.
func (v *VecMap[T]) At(i int) T { return v.data[i*v.inc] }

// Set stores x at index i.
func (v *VecMap[T]) Set(i int, x T) { v.data[i*v.inc] = x }
