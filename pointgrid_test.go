package pointgrid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pointgrid/dtype"
	"github.com/hupe1980/pointgrid/projection"
)

func TestProcess_Int8MaxTuple(t *testing.T) {
	// bytes(127,127,127) -> point (1,1,1), color (1,1,1).
	buf := []byte{127, 127, 127}

	res, err := Process(buf, dtype.Int8)
	require.NoError(t, err)

	assert.Equal(t, 1, res.NumPoints)
	assert.Equal(t, []float64{1, 1, 1}, res.Points)
	assert.Equal(t, []float64{1, 1, 1}, res.Colors)
	assert.Equal(t, 1, res.Scanned)
	assert.Zero(t, res.Duplicates)
}

func TestProcess_DistinctCells(t *testing.T) {
	// Opposite corners stay distinct even on a 4-cell grid.
	buf := []byte{127, 127, 127, 0x80, 0x80, 0x80}

	res, err := Process(buf, dtype.Int8, WithQuantizationBits(2))
	require.NoError(t, err)

	assert.Equal(t, 2, res.NumPoints)
	assert.Equal(t, []float64{1, 1, 1, -1, -1, -1}, res.Points)
}

func TestProcess_DedupKeepsFirst(t *testing.T) {
	// 126 and 127 land in the same cell at 2 bits; the first wins.
	buf := []byte{126, 126, 126, 127, 127, 127, 0x80, 0x80, 0x80}

	res, err := Process(buf, dtype.Int8, WithQuantizationBits(2))
	require.NoError(t, err)

	require.Equal(t, 2, res.NumPoints)
	norm126 := dtype.Normalize(dtype.Int8, 126)
	assert.Equal(t, norm126, res.Points[0])
	assert.Equal(t, 3, res.Scanned)
	assert.Equal(t, 1, res.Duplicates)
}

func TestProcess_OrthographicXY(t *testing.T) {
	// fp32 (0.5, 0.5, 0.5); tanh-normalized, then z dropped.
	buf := make([]byte, 12)
	bits := math.Float32bits(0.5)
	for i := 0; i < 3; i++ {
		buf[4*i] = byte(bits)
		buf[4*i+1] = byte(bits >> 8)
		buf[4*i+2] = byte(bits >> 16)
		buf[4*i+3] = byte(bits >> 24)
	}

	res, err := Process(buf, dtype.Float32, WithMode(projection.OrthographicXY))
	require.NoError(t, err)

	want := math.Tanh(0.5)
	require.Equal(t, 1, res.NumPoints)
	assert.InDelta(t, want, res.Points[0], 1e-12)
	assert.InDelta(t, want, res.Points[1], 1e-12)
	assert.Equal(t, 0.0, res.Points[2])
}

func TestProcess_Validation(t *testing.T) {
	buf := []byte{1, 2, 3}

	_, err := Process(nil, dtype.Int8)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Process(buf, dtype.DataType(99))
	var ut *ErrUnsupportedType
	assert.ErrorAs(t, err, &ut)

	var ip *ErrInvalidParameter
	_, err = Process(buf, dtype.Int8, WithQuantizationBits(1))
	require.ErrorAs(t, err, &ip)
	assert.Equal(t, "quantizationBits", ip.Name)

	_, err = Process(buf, dtype.Int8, WithQuantizationBits(11))
	assert.ErrorAs(t, err, &ip)

	_, err = Process(buf, dtype.Int8, WithTupleArity(4))
	require.ErrorAs(t, err, &ip)
	assert.Equal(t, "tupleArity", ip.Name)

	_, err = Process(buf, dtype.Int8, WithMode(projection.BVHOnly), WithBVHParams(0, 8))
	require.ErrorAs(t, err, &ip)
	assert.Equal(t, "maxDepth", ip.Name)

	_, err = Process(buf, dtype.Int8, WithMode(projection.BVHOnly), WithBVHParams(13, 8))
	assert.ErrorAs(t, err, &ip)

	_, err = Process(buf, dtype.Int8, WithMode(projection.BVHOnly), WithBVHParams(8, 0))
	require.ErrorAs(t, err, &ip)
	assert.Equal(t, "minPoints", ip.Name)

	_, err = Process(buf, dtype.Int8, WithMode(projection.BVHOnly), WithDisplayLevel(-2))
	require.ErrorAs(t, err, &ip)
	assert.Equal(t, "displayLevel", ip.Name)
}

func TestProcess_BufferTooSmall(t *testing.T) {
	// int32 triples need 12 bytes.
	_, err := Process([]byte{1, 2}, dtype.Int32)

	var bts *ErrBufferTooSmall
	require.ErrorAs(t, err, &bts)
	assert.Equal(t, 12, bts.Need)
	assert.Equal(t, 2, bts.Got)
}

func TestProcess_ParallelArrays(t *testing.T) {
	buf := make([]byte, 3*64)
	for i := range buf {
		buf[i] = byte(i * 37)
	}

	for _, arity := range []int{3, 6} {
		res, err := Process(buf, dtype.Uint8, WithTupleArity(arity), WithQuantizationBits(8))
		require.NoError(t, err)

		assert.Equal(t, len(res.Points), len(res.Colors))
		assert.Zero(t, len(res.Points)%3)
		assert.Equal(t, res.NumPoints, len(res.Points)/3)
		for _, c := range res.Colors {
			assert.GreaterOrEqual(t, c, 0.0)
			assert.LessOrEqual(t, c, 1.0)
		}
	}
}

func TestProcess_ExplicitColor(t *testing.T) {
	// Position (127,127,127), color (127,0,-128) -> (1, ~0.5, 0).
	buf := []byte{127, 127, 127, 127, 0, 0x80}

	res, err := Process(buf, dtype.Int8, WithTupleArity(6))
	require.NoError(t, err)

	require.Equal(t, 1, res.NumPoints)
	assert.Equal(t, 1.0, res.Colors[0])
	assert.InDelta(t, 0.5, res.Colors[1], 0.01)
	assert.Equal(t, 0.0, res.Colors[2])
}

func TestProcess_PartialTrailingTuple(t *testing.T) {
	// 7 bytes at arity 3: two full tuples, one trailing byte ignored.
	buf := []byte{10, 20, 30, 110, 120, 125, 99}

	res, err := Process(buf, dtype.Int8, WithQuantizationBits(8))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Scanned)
	assert.Equal(t, 2, res.NumPoints)
}

func TestProcess_BVHModes(t *testing.T) {
	buf := make([]byte, 3*100)
	for i := range buf {
		buf[i] = byte((i*53 + 11) % 251)
	}

	res, err := Process(buf, dtype.Uint8,
		WithMode(projection.BVHWithPoints),
		WithBVHParams(4, 2),
	)
	require.NoError(t, err)
	assert.True(t, res.BVHMode)
	assert.True(t, res.ShowPoints)
	assert.NotEmpty(t, res.Nodes)
	assert.NotZero(t, res.NumPoints)

	res, err = Process(buf, dtype.Uint8,
		WithMode(projection.BVHOnly),
		WithBVHParams(4, 2),
	)
	require.NoError(t, err)
	assert.True(t, res.BVHMode)
	assert.False(t, res.ShowPoints)
}

func TestProcess_Occupancy(t *testing.T) {
	buf := []byte{127, 127, 127, 0x80, 0x80, 0x80, 127, 127, 127}

	res, err := Process(buf, dtype.Int8, WithQuantizationBits(2), WithOccupancy())
	require.NoError(t, err)

	require.NotNil(t, res.Occupancy)
	assert.Equal(t, uint64(2), res.Occupancy.GetCardinality())
	// Cell (0,0,0) for the min corner, (3,3,3) packed for the max.
	assert.True(t, res.Occupancy.Contains(0))
	assert.True(t, res.Occupancy.Contains(3<<4|3<<2|3))

	res, err = Process(buf, dtype.Int8, WithQuantizationBits(2))
	require.NoError(t, err)
	assert.Nil(t, res.Occupancy)
}

func TestProcess_HilbertPath(t *testing.T) {
	buf := make([]byte, 3*200)
	for i := range buf {
		buf[i] = byte((i * 97) % 256)
	}

	res, err := Process(buf, dtype.Uint8, WithMode(projection.HilbertCurve))
	require.NoError(t, err)
	assert.True(t, res.Path)

	res2, err := Process(buf, dtype.Uint8, WithMode(projection.HilbertCurve))
	require.NoError(t, err)
	assert.Equal(t, res.Points, res2.Points)
}
