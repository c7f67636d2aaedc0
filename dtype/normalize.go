package dtype

import (
	"math"
)

// normalizer holds the precomputed affine terms for an integer type:
// normalized = (raw - offset) * multiplier - 1, mapping Min to exactly
// -1 and Max to exactly 1.
type normalizer struct {
	multiplier float64
	offset     float64
}

var normalizers = func() [numTypes]normalizer {
	var n [numTypes]normalizer
	for dt := DataType(0); dt < numTypes; dt++ {
		d := descriptors[dt]
		if d.Float {
			continue
		}
		n[dt] = normalizer{
			multiplier: 2 / (d.Max - d.Min),
			offset:     d.Min,
		}
	}
	return n
}()

// Normalize maps a decoded raw value into [-1, 1].
//
// Integer types use the exact affine map from [Min, Max]. Float types
// use tanh, which saturates large magnitudes into (-1, 1) instead of
// clipping them; NaN maps to 0 and ±Inf to ±1. Consumers depend on the
// tanh curve, so this must not be replaced by min/max clamping.
func Normalize(dt DataType, raw float64) float64 {
	if descriptors[dt].Float {
		switch {
		case math.IsNaN(raw):
			return 0
		case math.IsInf(raw, 1):
			return 1
		case math.IsInf(raw, -1):
			return -1
		default:
			return math.Tanh(raw)
		}
	}
	n := normalizers[dt]
	return (raw-n.offset)*n.multiplier - 1
}
