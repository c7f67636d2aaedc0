package codec

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload() []byte {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i % 7)
	}
	return data
}

func TestDecompress_Raw(t *testing.T) {
	data := payload()
	out, err := Decompress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
	assert.Equal(t, None, Detect(data))
}

func TestDecompress_Zstd(t *testing.T) {
	data := payload()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := enc.EncodeAll(data, nil)
	require.NoError(t, enc.Close())

	assert.Equal(t, Zstd, Detect(compressed))
	out, err := Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDecompress_LZ4(t *testing.T) {
	data := payload()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, LZ4, Detect(buf.Bytes()))
	out, err := Decompress(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDecompress_Gzip(t *testing.T) {
	data := payload()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, Gzip, Detect(buf.Bytes()))
	out, err := Decompress(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDecompress_TruncatedFrame(t *testing.T) {
	data := payload()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := enc.EncodeAll(data, nil)
	require.NoError(t, enc.Close())

	_, err = Decompress(compressed[:len(compressed)/2])
	assert.Error(t, err)
}
