package mat

import (
	"errors"
	"testing"
)

func TestDenseRowMajorLayout(t *testing.T) {
	m := NewDense[float32](2, 3, RowMajor)
	if m.RowStride() != 3 || m.ColStride() != 1 {
		t.Errorf("row-major strides = (%d, %d), want (3, 1)", m.RowStride(), m.ColStride())
	}

	m.Set(1, 2, 42)
	if m.Data()[5] != 42 {
		t.Error("row-major (1,2) should land at flat index 5")
	}
	if m.At(1, 2) != 42 {
		t.Error("At should read back the stored value")
	}
}

func TestDenseColMajorLayout(t *testing.T) {
	m := NewDense[float32](2, 3, ColMajor)
	if m.RowStride() != 1 || m.ColStride() != 2 {
		t.Errorf("col-major strides = (%d, %d), want (1, 2)", m.RowStride(), m.ColStride())
	}

	m.Set(1, 2, 42)
	if m.Data()[5] != 42 {
		t.Error("col-major (1,2) should land at flat index 5")
	}
}

func TestDenseResize(t *testing.T) {
	m := NewDense[int32](2, 2, RowMajor)
	if err := m.Resize(3, 5); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if m.Rows() != 3 || m.Cols() != 5 || m.Len() != 15 {
		t.Errorf("after Resize: %d×%d len %d", m.Rows(), m.Cols(), m.Len())
	}
}

func TestDenseFixedResizeFails(t *testing.T) {
	m := NewDenseFixed[int32](4, 4, RowMajor)
	if !m.Fixed() {
		t.Error("NewDenseFixed should mark the value fixed")
	}
	if err := m.Resize(2, 2); !errors.Is(err, ErrFixedSize) {
		t.Errorf("Resize on fixed value: got %v, want ErrFixedSize", err)
	}
	// Resizing to the same extents is a no-op, not an error.
	if err := m.Resize(4, 4); err != nil {
		t.Errorf("same-extents Resize on fixed value failed: %v", err)
	}
}

func TestDenseMove(t *testing.T) {
	m := NewDense[float64](2, 2, RowMajor)
	m.Set(0, 0, 7)
	ptr := &m.Data()[0]

	moved := m.Move()
	if m.Data() != nil || m.Rows() != 0 {
		t.Error("moved-from value should be empty")
	}
	if &moved.Data()[0] != ptr {
		t.Error("Move should steal the storage, not copy it")
	}
	if moved.At(0, 0) != 7 {
		t.Error("moved value should keep its elements")
	}

	moved.Reset()
	if moved.Data() != nil {
		t.Error("Reset should drop the storage")
	}
}

func TestVecFixedResizeFails(t *testing.T) {
	v := NewVecFixed[float32](8)
	if err := v.Resize(4); !errors.Is(err, ErrFixedSize) {
		t.Errorf("Resize on fixed vector: got %v, want ErrFixedSize", err)
	}
}

func TestMapStridedAccess(t *testing.T) {
	// View every other column of a 3x4 row-major matrix.
	backing := make([]float32, 12)
	for i := range backing {
		backing[i] = float32(i)
	}
	view, err := NewMap(backing, 3, 2, 4, 2)
	if err != nil {
		t.Fatalf("NewMap failed: %v", err)
	}

	if view.At(1, 1) != 6 {
		t.Errorf("view(1,1) = %v, want 6", view.At(1, 1))
	}

	view.Set(2, 0, -1)
	if backing[8] != -1 {
		t.Error("writes through the view must land in the backing storage")
	}
}

func TestMapRejectsBadLayouts(t *testing.T) {
	backing := make([]float32, 4)
	if _, err := NewMap(backing, 2, 4, 4, 1); !errors.Is(err, ErrBadView) {
		t.Errorf("oversized span: got %v, want ErrBadView", err)
	}
	if _, err := NewMap(backing, 2, 2, 0, 1); !errors.Is(err, ErrBadView) {
		t.Errorf("zero stride: got %v, want ErrBadView", err)
	}
}

func TestVecMapStridedAccess(t *testing.T) {
	backing := []int64{0, 10, 20, 30, 40, 50}
	view, err := NewVecMap(backing, 3, 2)
	if err != nil {
		t.Fatalf("NewVecMap failed: %v", err)
	}
	if view.At(2) != 40 {
		t.Errorf("view(2) = %d, want 40", view.At(2))
	}
}

func TestRefRequiresPackedInnerAxis(t *testing.T) {
	rm := NewDense[float32](3, 3, RowMajor)
	if _, err := NewRef(MapOf(rm)); err != nil {
		t.Errorf("row-major dense should satisfy the Ref contract: %v", err)
	}

	cm := NewDense[float32](3, 3, ColMajor)
	if _, err := NewRef(MapOf(cm)); !errors.Is(err, ErrBadView) {
		t.Error("col-major dense must not satisfy the Ref contract")
	}
}
