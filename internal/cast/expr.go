package cast

import (
	"github.com/matcast-go/matcast/internal/array"
	"github.com/matcast-go/matcast/internal/mat"
)

// ExprToHost adapts a lazy expression to the host by first forcing it
// into a freshly allocated concrete matrix, then delegating to the
// plain outbound path as an owned value. The materialized temporary is
// nobody else's, so Automatic upgrades to Move and large results
// transfer without a second copy.
//
// There is no inbound counterpart: an expression cannot be built from
// host data, and ExprCaster implements only the outbound half of the
// caster contract, so inbound dispatch cannot select it.
func ExprToHost[T array.Scalar](e mat.Expr[T], policy Policy) (*array.Array, error) {
	tmp := mat.Materialize(e, mat.RowMajor)
	return DenseToHostOwned(tmp, policy)
}

// ExprCaster is the per-type conversion unit for lazy expressions:
// outbound-only.
type ExprCaster[T array.Scalar] struct {
	Value mat.Expr[T]
}

// ToHost materializes Value and converts the result.
func (c *ExprCaster[T]) ToHost(policy Policy) (*array.Array, error) {
	return ExprToHost(c.Value, policy)
}
