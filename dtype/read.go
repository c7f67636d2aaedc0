package dtype

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/pointgrid/internal/minifloat"
)

// Read decodes one scalar of type dt from buf at byte offset off and
// returns it as a float64. Integer values are preserved exactly (all
// supported widths fit a float64 mantissa); float formats dispatch on
// the raw bit pattern. Single-byte formats ignore littleEndian.
func Read(buf []byte, off int, dt DataType, littleEndian bool) (float64, error) {
	if !dt.Valid() {
		return 0, fmt.Errorf("dtype: unknown data type %d", dt)
	}
	size := descriptors[dt].Size
	if off < 0 || off+size > len(buf) {
		return 0, fmt.Errorf("dtype: read of %d bytes at offset %d exceeds buffer length %d", size, off, len(buf))
	}

	var order binary.ByteOrder = binary.BigEndian
	if littleEndian {
		order = binary.LittleEndian
	}

	switch dt {
	case Int8:
		return float64(int8(buf[off])), nil
	case Uint8:
		return float64(buf[off]), nil
	case Int16:
		return float64(int16(order.Uint16(buf[off:]))), nil
	case Uint16:
		return float64(order.Uint16(buf[off:])), nil
	case Int32:
		return float64(int32(order.Uint32(buf[off:]))), nil
	case Uint32:
		return float64(order.Uint32(buf[off:])), nil
	case Float16:
		return minifloat.Half(order.Uint16(buf[off:])), nil
	case BFloat16:
		return minifloat.BFloat16(order.Uint16(buf[off:])), nil
	case Float32:
		return float64(math.Float32frombits(order.Uint32(buf[off:]))), nil
	case Float8E4M3:
		return minifloat.E4M3(buf[off]), nil
	case Float8E5M2:
		return minifloat.E5M2(buf[off]), nil
	default:
		return 0, fmt.Errorf("dtype: unknown data type %d", dt)
	}
}
