package cast

import "errors"

// Conversion failure conditions.
var (
	// ErrTypeMismatch reports a foreign dtype or rank that is
	// incompatible with the requested native type. Recoverable:
	// dispatch layers trying several candidate types catch it and
	// move on.
	ErrTypeMismatch = errors.New("cast: host dtype or rank incompatible with native type")

	// ErrLayoutMismatch reports host strides that violate a view
	// type's layout contract.
	ErrLayoutMismatch = errors.New("cast: host strides violate the view's layout contract")

	// ErrAllocationFailure reports that backing storage for an
	// ownership transfer could not be set up. Fatal for the
	// conversion; no partial object is exposed.
	ErrAllocationFailure = errors.New("cast: cannot allocate storage for ownership transfer")

	// ErrExpressionNotConvertible reports an attempt to construct a
	// lazy expression from host data. Expressions are outbound-only;
	// hitting this is a programming error in the binding layer.
	ErrExpressionNotConvertible = errors.New("cast: expressions cannot be constructed from host data")
)
