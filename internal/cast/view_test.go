package cast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matcast-go/matcast/internal/array"
	"github.com/matcast-go/matcast/internal/mat"
)

func TestMapToHostIsZeroCopy(t *testing.T) {
	backing := make([]float32, 12)
	for i := range backing {
		backing[i] = float32(i)
	}
	view, err := mat.NewMap(backing, 3, 2, 4, 2)
	require.NoError(t, err)

	a, err := MapToHost(view)
	require.NoError(t, err)
	defer a.Release()

	assert.Nil(t, a.Owner(), "views never transfer ownership")
	assert.Equal(t, array.Shape{3, 2}, a.Shape())
	assert.Equal(t, []int{4, 2}, a.Strides())
	assert.False(t, a.Contiguous())
	assert.Same(t, &backing[0], &array.Values[float32](a)[0], "no copy on the view path")

	// Mutation through the host array is visible through the view.
	array.Values[float32](a)[4] = -5
	assert.EqualValues(t, -5, view.At(1, 0))
}

func TestMapFromHostBorrows(t *testing.T) {
	a, err := array.FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
	require.NoError(t, err)
	defer a.Release()

	view, err := MapFromHost[float64](a, FlagNone)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Rows())
	assert.Equal(t, 3, view.Cols())
	assert.Equal(t, 5.0, view.At(1, 1))

	// Writes through the view land in the host array.
	view.Set(0, 0, -1)
	assert.Equal(t, -1.0, array.Values[float64](a)[0])
}

func TestMapFromHostRejectsRankMismatch(t *testing.T) {
	flat, err := array.FromSlice([]float32{1, 2, 3, 4}, array.Shape{4})
	require.NoError(t, err)
	defer flat.Release()

	_, err = MapFromHost[float32](flat, FlagNone)
	assert.ErrorIs(t, err, ErrLayoutMismatch)

	square, err := array.FromSlice([]float32{1, 2, 3, 4}, array.Shape{2, 2})
	require.NoError(t, err)
	defer square.Release()

	_, err = VecMapFromHost[float32](square, FlagNone)
	assert.ErrorIs(t, err, ErrLayoutMismatch)
}

func TestMapFromHostRejectsDTypeMismatch(t *testing.T) {
	a, err := array.FromSlice([]float32{1, 2, 3, 4}, array.Shape{2, 2})
	require.NoError(t, err)
	defer a.Release()

	_, err = MapFromHost[float64](a, FlagNone)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestVecMapRoundTrip(t *testing.T) {
	backing := []int32{0, 7, 14, 21, 28, 35}
	view, err := mat.NewVecMap(backing, 3, 2)
	require.NoError(t, err)

	a, err := VecMapToHost(view)
	require.NoError(t, err)
	defer a.Release()
	assert.Equal(t, []int{2}, a.Strides())

	back, err := VecMapFromHost[int32](a, FlagNone)
	require.NoError(t, err)
	assert.Equal(t, 3, back.Len())
	assert.EqualValues(t, 28, back.At(2))

	back.Set(0, -9)
	assert.EqualValues(t, -9, backing[0], "borrowed view aliases the original storage")
}

func TestRefFromHostRequiresPackedInnerAxis(t *testing.T) {
	// Column-major host array: inner stride is the row count.
	data := []float32{1, 4, 2, 5, 3, 6}
	colMajor, err := array.FromBuffer(array.Buffer{
		Data:    array.BytesOf(data),
		DType:   array.Float32,
		Shape:   array.Shape{2, 3},
		Strides: []int{1, 2},
	}, nil, array.BufferReference)
	require.NoError(t, err)
	defer colMajor.Release()

	_, err = RefFromHost[float32](colMajor, FlagNone)
	assert.ErrorIs(t, err, ErrLayoutMismatch)

	// A plain Map accepts the same layout.
	view, err := MapFromHost[float32](colMajor, FlagNone)
	require.NoError(t, err)
	assert.Equal(t, float32(5), view.At(1, 1))
}

func TestRefFromHostBorrows(t *testing.T) {
	a, err := array.FromSlice([]float32{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
	require.NoError(t, err)
	defer a.Release()

	ref, err := RefFromHost[float32](a, FlagNone)
	require.NoError(t, err)
	assert.Equal(t, 2, ref.Rows())
	assert.Equal(t, float32(6), ref.At(1, 2))

	ref.Set(1, 2, 60)
	assert.EqualValues(t, 60, array.Values[float32](a)[5])
}

func TestViewCastersHonorContract(t *testing.T) {
	a, err := array.FromSlice([]int64{1, 2, 3, 4}, array.Shape{2, 2})
	require.NoError(t, err)
	defer a.Release()

	mc := &MapCaster[int64]{}
	require.True(t, mc.TryFromHost(a, FlagNone))

	// The outbound half ignores the requested policy: always Reference.
	out, err := mc.ToHost(Move)
	require.NoError(t, err)
	defer out.Release()
	assert.Nil(t, out.Owner())
	assert.Same(t, &array.Values[int64](a)[0], &array.Values[int64](out)[0])

	rc := &RefCaster[int64]{}
	require.True(t, rc.TryFromHost(a, FlagNone))
	assert.Equal(t, int64(4), rc.Value.At(1, 1))

	// RefCaster has no outbound half.
	var ic InboundCaster = rc
	_, outbound := ic.(OutboundCaster)
	assert.False(t, outbound, "restricted views must not convert outbound")
}

func TestMapCasterFailureLeavesNoValue(t *testing.T) {
	flat, err := array.FromSlice([]float32{1, 2, 3}, array.Shape{3})
	require.NoError(t, err)
	defer flat.Release()

	mc := &MapCaster[float32]{}
	assert.False(t, mc.TryFromHost(flat, FlagNone))
	assert.Nil(t, mc.Value)
}
