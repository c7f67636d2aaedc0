// Package blobstore abstracts read-only access to stored point buffers.
//
// Implementations cover in-memory data (testing), local files via mmap,
// and S3/MinIO object storage (subpackages s3 and minio). Buffers are
// immutable once stored; the pipeline never writes back.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// errors.Is(err, ErrNotFound). The default maps to os.ErrNotExist.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for accessing immutable data blobs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.ReaderAt
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Mappable is an optional interface for Blobs that expose their
// underlying bytes without copying.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}

// Fetcher is an optional interface for stores that can download a whole
// blob in one call, more efficiently than ranged reads.
type Fetcher interface {
	// Fetch returns the full contents of the named blob.
	Fetch(ctx context.Context, name string) ([]byte, error)
}
