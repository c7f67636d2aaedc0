package pointgrid

import (
	"github.com/hupe1980/pointgrid/projection"
)

const (
	// MinQuantizationBits and MaxQuantizationBits bound the dedup grid
	// resolution. The grid needs 2^(3*bits) bits of memory, so the upper
	// bound is a hard memory ceiling (~128 MiB of bits at 10), not a
	// tuning knob.
	MinQuantizationBits = 2
	MaxQuantizationBits = 10

	// DefaultQuantizationBits is the grid resolution used when none is
	// configured.
	DefaultQuantizationBits = 8

	// DefaultMaxDepth and DefaultMinPoints are the BVH build defaults.
	DefaultMaxDepth  = 8
	DefaultMinPoints = 8
)

type options struct {
	littleEndian     bool
	quantizationBits int
	tupleArity       int
	mode             projection.Mode
	maxDepth         int
	minPoints        int
	displayLevel     int
	occupancy        bool
	logger           *Logger
}

func defaultOptions() options {
	return options{
		littleEndian:     true,
		quantizationBits: DefaultQuantizationBits,
		tupleArity:       3,
		mode:             projection.Standard,
		maxDepth:         DefaultMaxDepth,
		minPoints:        DefaultMinPoints,
		displayLevel:     -1,
		logger:           NoopLogger(),
	}
}

// Option configures a Process call.
type Option func(*options)

// WithLittleEndian sets the byte order of multi-byte scalars.
// The default is little-endian.
func WithLittleEndian(littleEndian bool) Option {
	return func(o *options) {
		o.littleEndian = littleEndian
	}
}

// WithQuantizationBits sets the per-axis resolution of the dedup grid.
// Must be in [MinQuantizationBits, MaxQuantizationBits].
func WithQuantizationBits(bits int) Option {
	return func(o *options) {
		o.quantizationBits = bits
	}
}

// WithTupleArity sets the number of scalars per input record: 3 for
// position only, 6 for position plus explicit color.
func WithTupleArity(arity int) Option {
	return func(o *options) {
		o.tupleArity = arity
	}
}

// WithMode sets the projection applied after deduplication.
func WithMode(mode projection.Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithBVHParams configures BVH construction for the BVH modes.
// maxDepth must be in [1, 12], minPoints at least 1.
func WithBVHParams(maxDepth, minPoints int) Option {
	return func(o *options) {
		o.maxDepth = maxDepth
		o.minPoints = minPoints
	}
}

// WithDisplayLevel filters flattened BVH nodes to one exact depth.
// Pass -1 (the default) for all levels.
func WithDisplayLevel(level int) Option {
	return func(o *options) {
		o.displayLevel = level
	}
}

// WithOccupancy records the set of occupied voxel keys on the Result as
// a compressed bitmap. Off by default; it costs one bitmap insert per
// emitted point.
func WithOccupancy() Option {
	return func(o *options) {
		o.occupancy = true
	}
}

// WithLogger sets the logger for diagnostic output. The default
// discards everything.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}
