// Package codec detects and decompresses framed point buffers.
//
// Ingested buffers are often stored compressed. Detection is by magic
// bytes, so callers never declare the compression; Decompress is the
// identity for raw buffers.
package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies a buffer's framing.
type Compression uint8

const (
	// None means the buffer is raw.
	None Compression = iota
	// Zstd is a zstandard frame.
	Zstd
	// LZ4 is an lz4 frame.
	LZ4
	// Gzip is a gzip stream.
	Gzip
)

// String returns the name of c.
func (c Compression) String() string {
	switch c {
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	case Gzip:
		return "gzip"
	default:
		return "none"
	}
}

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
	gzipMagic = []byte{0x1F, 0x8B}
)

// Detect inspects the leading bytes of data and reports its framing.
func Detect(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	case bytes.HasPrefix(data, lz4Magic):
		return LZ4
	case bytes.HasPrefix(data, gzipMagic):
		return Gzip
	default:
		return None
	}
}

// Decompress returns the raw payload of data, expanding any detected
// frame. Raw buffers are returned unchanged (no copy).
func Decompress(data []byte) ([]byte, error) {
	switch Detect(data) {
	case Zstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("codec: zstd reader: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("codec: zstd decode: %w", err)
		}
		return out, nil

	case LZ4:
		r := lz4.NewReader(bytes.NewReader(data))
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("codec: lz4 decode: %w", err)
		}
		return out, nil

	case Gzip:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("codec: gzip reader: %w", err)
		}
		defer func() { _ = r.Close() }()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("codec: gzip decode: %w", err)
		}
		return out, nil

	default:
		return data, nil
	}
}
