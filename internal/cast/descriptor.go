package cast

import (
	"github.com/matcast-go/matcast/internal/array"
	"github.com/matcast-go/matcast/internal/mat"
)

// Descriptor pairs a native value's axis count with its extents and
// per-axis element strides, plus a flag for whether the layout is
// row-major packed on its contiguous axis. Derived fresh from the
// value's current layout on every outbound conversion, never stored.
type Descriptor struct {
	Axes           int
	Extents        [2]int
	Strides        [2]int
	RowMajorPacked bool
}

// Shape returns the descriptor's extents as an array shape.
func (d Descriptor) Shape() array.Shape {
	return array.Shape(d.Extents[:d.Axes]).Clone()
}

// ElemStrides returns the descriptor's strides as a slice.
func (d Descriptor) ElemStrides() []int {
	return append([]int(nil), d.Strides[:d.Axes]...)
}

// DescribeDense derives the descriptor for an owning matrix.
func DescribeDense[T array.Scalar](m *mat.Dense[T]) Descriptor {
	return describe2(m.Rows(), m.Cols(), m.RowStride(), m.ColStride())
}

// DescribeVec derives the descriptor for an owning vector.
func DescribeVec[T array.Scalar](v *mat.Vec[T]) Descriptor {
	return describe1(v.Len(), v.Stride())
}

// DescribeMap derives the descriptor for a strided matrix view.
func DescribeMap[T array.Scalar](m *mat.Map[T]) Descriptor {
	return describe2(m.Rows(), m.Cols(), m.RowStride(), m.ColStride())
}

// DescribeVecMap derives the descriptor for a strided vector view.
func DescribeVecMap[T array.Scalar](v *mat.VecMap[T]) Descriptor {
	return describe1(v.Len(), v.Stride())
}

func describe1(n, inc int) Descriptor {
	return Descriptor{
		Axes:           1,
		Extents:        [2]int{n, 0},
		Strides:        [2]int{inc, 0},
		RowMajorPacked: inc == 1,
	}
}

func describe2(rows, cols, rowStride, colStride int) Descriptor {
	return Descriptor{
		Axes:           2,
		Extents:        [2]int{rows, cols},
		Strides:        [2]int{rowStride, colStride},
		RowMajorPacked: colStride == 1,
	}
}
