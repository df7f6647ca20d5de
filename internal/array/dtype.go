// Package array implements the dynamically-typed N-dimensional array
// object exchanged with the host runtime, together with the buffer
// bridge that moves pointer/shape/stride/dtype metadata in and out of it.
package array

import (
	"github.com/x448/float16"
)

// Scalar is a constraint for element types with a fixed-width scalar
// representation. Types without one (bool, strings, structs) are not
// bridgeable.
type Scalar interface {
	~float32 | ~float64 | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64
}

// DataType is the runtime element-type tag carried by an Array.
type DataType int

// Supported element types.
//
// Float16 and BFloat16 are storage types: their bit patterns travel
// through the bridge untouched, and arithmetic on them is only defined
// after widening to float32.
const (
	Float16 DataType = iota
	BFloat16
	Float32
	Float64
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Float16, BFloat16, Int16, Uint16:
		return 2
	case Float32, Int32, Uint32:
		return 4
	case Float64, Int64, Uint64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float16:
		return "float16"
	case BFloat16:
		return "bfloat16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	default:
		return "unknown"
	}
}

// TypeOf maps a Go scalar type to its DataType tag.
//
// float16.Float16 maps to Float16; a plain uint16 maps to Uint16.
// BFloat16 has no native Go scalar and only appears on the host side.
func TypeOf[T Scalar]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float16.Float16:
		return Float16
	case float32:
		return Float32
	case float64:
		return Float64
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	default:
		panic("unsupported scalar type")
	}
}
