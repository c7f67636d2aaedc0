package pointgrid

import (
	"errors"
	"fmt"

	"github.com/hupe1980/pointgrid/bvh"
	"github.com/hupe1980/pointgrid/dtype"
)

var (
	// ErrInvalidInput is returned when the input buffer is absent.
	ErrInvalidInput = errors.New("pointgrid: input buffer is empty")

	// ErrEmptyInput is returned when a BVH build is requested over zero
	// points.
	ErrEmptyInput = bvh.ErrNoPoints

	// ErrMalformedNode indicates a broken BVH invariant discovered while
	// flattening a tree. It signals a bug, not bad input.
	ErrMalformedNode = bvh.ErrMalformedNode
)

// ErrUnsupportedType indicates a type tag outside the descriptor table.
type ErrUnsupportedType struct {
	DataType dtype.DataType
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported data type: %s", e.DataType)
}

// ErrInvalidParameter indicates a parameter outside its documented range.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidParameter struct {
	Name  string
	Value int
	cause error
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid parameter %s: %d", e.Name, e.Value)
}

func (e *ErrInvalidParameter) Unwrap() error { return e.cause }

// ErrBufferTooSmall indicates a buffer shorter than one tuple of the
// requested type and arity.
type ErrBufferTooSmall struct {
	Need int
	Got  int
}

func (e *ErrBufferTooSmall) Error() string {
	return fmt.Sprintf("buffer too small: need at least %d bytes for one tuple, got %d", e.Need, e.Got)
}
