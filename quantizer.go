package pointgrid

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/pointgrid/dtype"
	"github.com/hupe1980/pointgrid/internal/bitset"
)

// scanResult is the output of one dedup scan over a buffer.
type scanResult struct {
	points     []float64
	colors     []float64
	scanned    int
	duplicates int
	occupied   *roaring.Bitmap
}

// scan walks the buffer tuple-by-tuple, decodes and normalizes each
// coordinate triple, quantizes it onto the voxel grid and keeps the
// first tuple per occupied cell, in encounter order. A mid-stream read
// failure ends the scan early and returns the partial set: trailing
// garbage on large untrusted buffers degrades the output instead of
// discarding it.
func scan(buffer []byte, dt dtype.DataType, o *options) scanResult {
	bits := o.quantizationBits
	typeSize := dt.Size()
	tupleBytes := typeSize * o.tupleArity

	grid := bitset.New(uint64(1) << uint(3*bits))
	halfRange := float64(uint(1) << uint(bits-1))
	maxCell := uint64(1)<<uint(bits) - 1

	res := scanResult{}
	if o.occupancy {
		res.occupied = roaring.New()
	}

	var coords [3]float64
	var cells [3]uint64

	for off := 0; off+tupleBytes <= len(buffer); off += tupleBytes {
		res.scanned++

		readErr := false
		for axis := 0; axis < 3; axis++ {
			raw, err := dtype.Read(buffer, off+axis*typeSize, dt, o.littleEndian)
			if err != nil {
				readErr = true
				break
			}
			coords[axis] = dtype.Normalize(dt, raw)
		}
		if readErr {
			o.logger.Warn("scan stopped on read failure", "offset", off, "emitted", len(res.points)/3)
			break
		}

		for axis := 0; axis < 3; axis++ {
			cell := int64(math.Floor((coords[axis] + 1) * halfRange))
			if cell < 0 {
				cell = 0
			}
			if cell > int64(maxCell) {
				cell = int64(maxCell)
			}
			cells[axis] = uint64(cell)
		}
		key := cells[2]<<uint(2*bits) | cells[1]<<uint(bits) | cells[0]

		if grid.TestAndSet(key) {
			res.duplicates++
			continue
		}
		if res.occupied != nil {
			res.occupied.Add(uint32(key))
		}

		// Emit the unquantized normalized coordinates.
		res.points = append(res.points, coords[0], coords[1], coords[2])

		if o.tupleArity == 6 {
			var rgb [3]float64
			colorOff := off + 3*typeSize
			for c := 0; c < 3; c++ {
				raw, err := dtype.Read(buffer, colorOff+c*typeSize, dt, o.littleEndian)
				if err != nil {
					readErr = true
					break
				}
				rgb[c] = (dtype.Normalize(dt, raw) + 1) / 2
			}
			if readErr {
				// Drop the half-read tuple's point as well.
				res.points = res.points[:len(res.points)-3]
				o.logger.Warn("scan stopped on color read failure", "offset", off, "emitted", len(res.points)/3)
				break
			}
			res.colors = append(res.colors, rgb[0], rgb[1], rgb[2])
		} else {
			// No explicit color: encode the position instead.
			res.colors = append(res.colors,
				(coords[0]+1)/2,
				(coords[1]+1)/2,
				(coords[2]+1)/2,
			)
		}
	}

	return res
}
