package array

import (
	"errors"
	"testing"
)

// DataType tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float16, 2},
		{BFloat16, 2},
		{Float32, 4},
		{Float64, 8},
		{Int8, 1},
		{Int16, 2},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Uint16, 2},
		{Uint32, 4},
		{Uint64, 8},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestTypeOf(t *testing.T) {
	if got := TypeOf[float32](); got != Float32 {
		t.Errorf("TypeOf[float32]() = %s, want float32", got)
	}
	if got := TypeOf[uint16](); got != Uint16 {
		t.Errorf("TypeOf[uint16]() = %s, want uint16", got)
	}
	if got := TypeOf[int64](); got != Int64 {
		t.Errorf("TypeOf[int64]() = %s, want int64", got)
	}
}

// Shape tests

func TestShapePackedStrides(t *testing.T) {
	strides := Shape{3, 4}.PackedStrides()
	if strides[0] != 4 || strides[1] != 1 {
		t.Errorf("PackedStrides({3,4}) = %v, want [4 1]", strides)
	}

	strides = Shape{5}.PackedStrides()
	if strides[0] != 1 {
		t.Errorf("PackedStrides({5}) = %v, want [1]", strides)
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{3, 4}).Validate(); err != nil {
		t.Errorf("Validate({3,4}) = %v, want nil", err)
	}
	if err := (Shape{3, 0}).Validate(); err == nil {
		t.Error("Validate({3,0}) should fail")
	}
	if err := (Shape{1, 2, 3}).Validate(); err == nil {
		t.Error("Validate rank 3 should fail")
	}
	if err := (Shape{}).Validate(); err == nil {
		t.Error("Validate rank 0 should fail")
	}
}

func TestIsPacked(t *testing.T) {
	if !IsPacked(Shape{3, 4}, []int{4, 1}) {
		t.Error("row-major packed strides should be packed")
	}
	if !IsPacked(Shape{3, 4}, []int{1, 3}) {
		t.Error("col-major packed strides should be packed")
	}
	if IsPacked(Shape{3, 4}, []int{8, 2}) {
		t.Error("strided layout should not be packed")
	}
}

// Array tests

func TestFromSliceValuesZeroCopy(t *testing.T) {
	a, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	vals := Values[float32](a)
	if len(vals) != 6 || vals[5] != 6 {
		t.Errorf("Values = %v, want [1 2 3 4 5 6]", vals)
	}

	// Modify and verify zero-copy
	vals[0] = 42
	if Values[float32](a)[0] != 42 {
		t.Error("Values should return a zero-copy slice")
	}
}

func TestValuesDTypeMismatchPanics(t *testing.T) {
	a, _ := FromSlice([]float32{1, 2}, Shape{2})
	defer func() {
		if recover() == nil {
			t.Error("Values[int32] on a float32 array should panic")
		}
	}()
	Values[int32](a)
}

func TestFromBufferReferenceAliases(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	a, err := FromBuffer(Buffer{
		Data:    BytesOf(data),
		DType:   Float64,
		Shape:   Shape{2, 2},
		Strides: []int{2, 1},
	}, nil, BufferReference)
	if err != nil {
		t.Fatalf("FromBuffer failed: %v", err)
	}
	if !a.Contiguous() {
		t.Error("packed reference array should be contiguous")
	}

	// Writing through the array must be visible in the source slice.
	Values[float64](a)[3] = 99
	if data[3] != 99 {
		t.Error("BufferReference should alias the source memory")
	}
}

func TestFromBufferCopyDetaches(t *testing.T) {
	data := []int32{1, 2, 3, 4}
	a, err := FromBuffer(Buffer{
		Data:    BytesOf(data),
		DType:   Int32,
		Shape:   Shape{4},
		Strides: []int{1},
	}, nil, BufferCopy)
	if err != nil {
		t.Fatalf("FromBuffer failed: %v", err)
	}

	data[0] = 77
	if Values[int32](a)[0] != 1 {
		t.Error("BufferCopy should detach from the source memory")
	}
}

func TestFromBufferCopyGathersStrided(t *testing.T) {
	// Every other element of a flat buffer, as a 2x2 matrix.
	data := []int32{0, 9, 1, 9, 2, 9, 3, 9}
	a, err := FromBuffer(Buffer{
		Data:    BytesOf(data),
		DType:   Int32,
		Shape:   Shape{2, 2},
		Strides: []int{4, 2},
	}, nil, BufferCopy)
	if err != nil {
		t.Fatalf("FromBuffer failed: %v", err)
	}

	vals := Values[int32](a)
	want := []int32{0, 1, 2, 3}
	for i := range want {
		if vals[i] != want[i] {
			t.Errorf("vals[%d] = %d, want %d", i, vals[i], want[i])
		}
	}
	if !a.Contiguous() {
		t.Error("copied array should be packed")
	}
}

func TestFromBufferRejectsBadDescriptors(t *testing.T) {
	data := []float32{1, 2, 3}
	badShape := Buffer{Data: BytesOf(data), DType: Float32, Shape: Shape{0}, Strides: []int{1}}
	if _, err := FromBuffer(badShape, nil, BufferReference); !errors.Is(err, ErrBadBuffer) {
		t.Errorf("zero extent: got %v, want ErrBadBuffer", err)
	}

	badSpan := Buffer{Data: BytesOf(data), DType: Float32, Shape: Shape{4}, Strides: []int{1}}
	if _, err := FromBuffer(badSpan, nil, BufferReference); !errors.Is(err, ErrBadBuffer) {
		t.Errorf("oversized span: got %v, want ErrBadBuffer", err)
	}

	badStrides := Buffer{Data: BytesOf(data), DType: Float32, Shape: Shape{3}, Strides: []int{1, 1}}
	if _, err := FromBuffer(badStrides, nil, BufferReference); !errors.Is(err, ErrBadBuffer) {
		t.Errorf("stride count: got %v, want ErrBadBuffer", err)
	}
}

func TestAsBufferAfterRelease(t *testing.T) {
	a, _ := FromSlice([]float32{1, 2}, Shape{2})
	a.Release()
	if _, err := AsBuffer(a); !errors.Is(err, ErrBadBuffer) {
		t.Errorf("AsBuffer on released array: got %v, want ErrBadBuffer", err)
	}
}

// Capsule and refcount tests

func TestCapsuleReleasedExactlyOnce(t *testing.T) {
	releases := 0
	c := NewCapsule(func() { releases++ })

	if c.Released() {
		t.Error("fresh capsule should not be released")
	}
	c.Release()
	c.Release()
	if releases != 1 {
		t.Errorf("release callback ran %d times, want 1", releases)
	}
	if !c.Released() {
		t.Error("Released() should report true after Release()")
	}
}

func TestNilCapsuleReleaseIsInert(_ *testing.T) {
	var c *Capsule
	c.Release() // must not panic
}

func TestOwnerReleasedWhenRefCountDrops(t *testing.T) {
	releases := 0
	owner := NewCapsule(func() { releases++ })
	data := []float32{1, 2, 3, 4}
	a, err := FromBuffer(Buffer{
		Data:    BytesOf(data),
		DType:   Float32,
		Shape:   Shape{4},
		Strides: []int{1},
	}, owner, BufferReference)
	if err != nil {
		t.Fatalf("FromBuffer failed: %v", err)
	}

	a.Retain()
	a.Release()
	if releases != 0 {
		t.Error("owner must survive while references remain")
	}

	a.Release()
	if releases != 1 {
		t.Errorf("owner released %d times after last reference, want 1", releases)
	}
	if a.Bytes() != nil {
		t.Error("storage should be dropped at refcount zero")
	}
}
