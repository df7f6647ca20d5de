package mat

import (
	"fmt"

	"github.com/matcast-go/matcast/internal/array"
)

// Expr is a lazy algebraic value over matrices. It holds no storage of
// its own: elements are computed on access and the whole expression is
// forced into a Dense by Materialize. Dense and Map are leaf
// expressions; Add, Sub, Scale, MulElem, and Transpose compose them.
//
// Expression arithmetic uses the machine arithmetic of T, so it is not
// meaningful for storage-only scalars such as float16.Float16.
type Expr[T array.Scalar] interface {
	Rows() int
	Cols() int
	At(i, j int) T
}

type binaryExpr[T array.Scalar] struct {
	a, b Expr[T]
	op   func(x, y T) T
}

func (e *binaryExpr[T]) Rows() int     { return e.a.Rows() }
func (e *binaryExpr[T]) Cols() int     { return e.a.Cols() }
func (e *binaryExpr[T]) At(i, j int) T { return e.op(e.a.At(i, j), e.b.At(i, j)) }

type scaleExpr[T array.Scalar] struct {
	a Expr[T]
	s T
}

func (e *scaleExpr[T]) Rows() int     { return e.a.Rows() }
func (e *scaleExpr[T]) Cols() int     { return e.a.Cols() }
func (e *scaleExpr[T]) At(i, j int) T { return e.a.At(i, j) * e.s }

type transposeExpr[T array.Scalar] struct {
	a Expr[T]
}

func (e *transposeExpr[T]) Rows() int     { return e.a.Cols() }
func (e *transposeExpr[T]) Cols() int     { return e.a.Rows() }
func (e *transposeExpr[T]) At(i, j int) T { return e.a.At(j, i) }

// Add returns the lazy element-wise sum a + b.
// Panics if the shapes differ.
func Add[T array.Scalar](a, b Expr[T]) Expr[T] {
	checkSameShape(a, b)
	return &binaryExpr[T]{a: a, b: b, op: func(x, y T) T { return x + y }}
}

// Sub returns the lazy element-wise difference a - b.
// Panics if the shapes differ.
func Sub[T array.Scalar](a, b Expr[T]) Expr[T] {
	checkSameShape(a, b)
	return &binaryExpr[T]{a: a, b: b, op: func(x, y T) T { return x - y }}
}

// MulElem returns the lazy element-wise product a ⊙ b.
// Panics if the shapes differ.
func MulElem[T array.Scalar](a, b Expr[T]) Expr[T] {
	checkSameShape(a, b)
	return &binaryExpr[T]{a: a, b: b, op: func(x, y T) T { return x * y }}
}

// Scale returns the lazy scalar product a * s.
func Scale[T array.Scalar](a Expr[T], s T) Expr[T] {
	return &scaleExpr[T]{a: a, s: s}
}

// Transpose returns the lazy transpose of a.
func Transpose[T array.Scalar](a Expr[T]) Expr[T] {
	return &transposeExpr[T]{a: a}
}

// Materialize forces an expression into a freshly allocated Dense with
// the given storage order.
func Materialize[T array.Scalar](e Expr[T], order Order) *Dense[T] {
	out := NewDense[T](e.Rows(), e.Cols(), order)
	for i := 0; i < out.Rows(); i++ {
		for j := 0; j < out.Cols(); j++ {
			out.Set(i, j, e.At(i, j))
		}
	}
	return out
}

func checkSameShape[T array.Scalar](a, b Expr[T]) {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		panic(fmt.Sprintf("mat: shape mismatch %d×%d vs %d×%d",
			a.Rows(), a.Cols(), b.Rows(), b.Cols()))
	}
}
