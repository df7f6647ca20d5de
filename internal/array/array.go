package array

import (
	"fmt"
	"strings"
	"sync/atomic"
	"unsafe"

	"github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"
)

// arrayBuffer is the reference-counted element storage behind an Array.
// When the count reaches zero the data slice is dropped and the owner
// capsule, if any, is released. The owner is released at most once.
type arrayBuffer struct {
	data     []byte
	owner    *Capsule
	refCount atomic.Int32
}

// newArrayBuffer creates a buffer with refCount = 1.
func newArrayBuffer(data []byte, owner *Capsule) *arrayBuffer {
	buf := &arrayBuffer{data: data, owner: owner}
	buf.refCount.Store(1)
	return buf
}

func (ab *arrayBuffer) addRef() {
	ab.refCount.Add(1)
}

func (ab *arrayBuffer) release() {
	if ab.refCount.Add(-1) == 0 {
		ab.data = nil
		ab.owner.Release()
		ab.owner = nil
	}
}

// Array is the dynamically-typed N-dimensional array object the host
// runtime holds. It pairs a reference-counted buffer with shape,
// per-axis element strides, an element-type tag, and a contiguity flag.
type Array struct {
	buffer  *arrayBuffer
	shape   Shape
	strides []int
	dtype   DataType
	contig  bool
}

// Shape returns the array's extents.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns the array's per-axis element strides.
func (a *Array) Strides() []int {
	return a.strides
}

// DType returns the array's element type tag.
func (a *Array) DType() DataType {
	return a.dtype
}

// Contiguous reports whether the array is densely packed.
func (a *Array) Contiguous() bool {
	return a.contig
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	return len(a.shape)
}

// NumElements returns the total number of addressed elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// Bytes returns the raw backing storage.
// WARNING: direct access to shared memory. Use with caution.
func (a *Array) Bytes() []byte {
	return a.buffer.data
}

// Owner returns the owner capsule keeping the storage alive, or nil if
// the memory belongs to the caller's side.
func (a *Array) Owner() *Capsule {
	return a.buffer.owner
}

// Retain increments the host-side reference count and returns a.
func (a *Array) Retain() *Array {
	a.buffer.addRef()
	return a
}

// Release decrements the host-side reference count. When it reaches
// zero, backing storage is dropped and the owner capsule released.
func (a *Array) Release() {
	a.buffer.release()
}

// Values reinterprets the backing storage as a []T without copying.
// Panics if T does not match the array's dtype.
func Values[T Scalar](a *Array) []T {
	want := TypeOf[T]()
	if a.dtype != want {
		panic(fmt.Sprintf("array dtype is %s, not %s", a.dtype, want))
	}
	return ValuesOf[T](a.buffer.data)
}

// ValuesOf reinterprets a byte slice as a []T without copying.
func ValuesOf[T Scalar](data []byte) []T {
	if len(data) == 0 {
		return nil
	}
	var dummy T
	n := len(data) / int(unsafe.Sizeof(dummy))
	//nolint:gosec // zero-copy reinterpretation, length derived from the byte slice
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n)
}

// BytesOf reinterprets a []T as its backing bytes without copying.
func BytesOf[T Scalar](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var dummy T
	//nolint:gosec // zero-copy reinterpretation, length derived from the element slice
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*int(unsafe.Sizeof(dummy)))
}

const previewElements = 8

// String renders the array header and, for packed arrays, a short
// element preview. Float16 and BFloat16 elements are widened for display.
func (a *Array) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Array(%s, shape=%v, strides=%v, contig=%v",
		a.dtype, []int(a.shape), a.strides, a.contig)
	if a.contig {
		sb.WriteString(", data=[")
		sb.WriteString(a.previewData())
		sb.WriteString("]")
	}
	sb.WriteString(")")
	return sb.String()
}

func (a *Array) previewData() string {
	n := a.NumElements()
	if n > previewElements {
		n = previewElements
	}
	parts := make([]string, 0, n+1)
	switch a.dtype {
	case Float16:
		for _, v := range ValuesOf[float16.Float16](a.buffer.data)[:n] {
			parts = append(parts, fmt.Sprintf("%v", v.Float32()))
		}
	case BFloat16:
		widened := bfloat16.DecodeFloat32(a.buffer.data[:n*a.dtype.Size()])
		for _, v := range widened {
			parts = append(parts, fmt.Sprintf("%v", v))
		}
	case Float32:
		for _, v := range ValuesOf[float32](a.buffer.data)[:n] {
			parts = append(parts, fmt.Sprintf("%v", v))
		}
	case Float64:
		for _, v := range ValuesOf[float64](a.buffer.data)[:n] {
			parts = append(parts, fmt.Sprintf("%v", v))
		}
	case Int8:
		for _, v := range ValuesOf[int8](a.buffer.data)[:n] {
			parts = append(parts, fmt.Sprintf("%d", v))
		}
	case Int16:
		for _, v := range ValuesOf[int16](a.buffer.data)[:n] {
			parts = append(parts, fmt.Sprintf("%d", v))
		}
	case Int32:
		for _, v := range ValuesOf[int32](a.buffer.data)[:n] {
			parts = append(parts, fmt.Sprintf("%d", v))
		}
	case Int64:
		for _, v := range ValuesOf[int64](a.buffer.data)[:n] {
			parts = append(parts, fmt.Sprintf("%d", v))
		}
	case Uint8:
		for _, v := range a.buffer.data[:n] {
			parts = append(parts, fmt.Sprintf("%d", v))
		}
	case Uint16:
		for _, v := range ValuesOf[uint16](a.buffer.data)[:n] {
			parts = append(parts, fmt.Sprintf("%d", v))
		}
	case Uint32:
		for _, v := range ValuesOf[uint32](a.buffer.data)[:n] {
			parts = append(parts, fmt.Sprintf("%d", v))
		}
	case Uint64:
		for _, v := range ValuesOf[uint64](a.buffer.data)[:n] {
			parts = append(parts, fmt.Sprintf("%d", v))
		}
	}
	if a.NumElements() > previewElements {
		parts = append(parts, "...")
	}
	return strings.Join(parts, " ")
}
