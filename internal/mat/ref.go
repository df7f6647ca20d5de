package mat

import (
	"fmt"

	"github.com/matcast-go/matcast/internal/array"
)

// Ref is a restricted non-owning view: like Map, but the inner
// (column) stride must be exactly 1, so each row is packed. A Ref is
// only ever produced on the native side; there is no outbound
// conversion for it.
type Ref[T array.Scalar] struct {
	view Map[T]
}

// NewRef wraps a Map whose inner stride is 1.
func NewRef[T array.Scalar](m *Map[T]) (*Ref[T], error) {
	if m.ColStride() != 1 {
		return nil, fmt.Errorf("%w: inner stride %d, need 1", ErrBadView, m.ColStride())
	}
	return &Ref[T]{view: *m}, nil
}

// RefOf views a row-major Dense matrix. Panics for column-major
// storage, whose inner stride cannot satisfy the Ref contract.
func RefOf[T array.Scalar](m *Dense[T]) *Ref[T] {
	r, err := NewRef(MapOf(m))
	if err != nil {
		panic(err)
	}
	return r
}

// Rows returns the row count.
func (r *Ref[T]) Rows() int { return r.view.Rows() }

// Cols returns the column count.
func (r *Ref[T]) Cols() int { return r.view.Cols() }

// RowStride returns the element distance between consecutive rows.
func (r *Ref[T]) RowStride() int { return r.view.RowStride() }

// Data returns the viewed storage, starting at the view's origin.
func (r *Ref[T]) Data() []T { return r.view.Data() }

// At returns the element at (i, j).
func (r *Ref[T]) At(i, j int) T { return r.view.At(i, j) }

// Set stores v at (i, j).
func (r *Ref[T]) Set(i, j int, v T) { r.view.Set(i, j, v) }

// View returns the underlying Map.
func (r *Ref[T]) View() *Map[T] { return &r.view }
