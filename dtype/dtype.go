// Package dtype defines the scalar encodings a point buffer may use and
// the operations to decode and normalize them.
//
// Each DataType carries a Descriptor with its byte size, float flag and
// (for integers) value range. The table is closed: adding a type means
// adding an enum value and a table row, not registering a string key.
package dtype

import (
	"fmt"
)

// DataType identifies a scalar encoding in a point buffer.
type DataType uint8

const (
	// Int8 is a signed 8-bit integer.
	Int8 DataType = iota
	// Uint8 is an unsigned 8-bit integer.
	Uint8
	// Int16 is a signed 16-bit integer.
	Int16
	// Uint16 is an unsigned 16-bit integer.
	Uint16
	// Int32 is a signed 32-bit integer.
	Int32
	// Uint32 is an unsigned 32-bit integer.
	Uint32
	// Float16 is IEEE-754 binary16.
	Float16
	// BFloat16 is the 1/8/7 brain float.
	BFloat16
	// Float32 is IEEE-754 binary32.
	Float32
	// Float8E4M3 is the 8-bit 1/4/3 micro float.
	Float8E4M3
	// Float8E5M2 is the 8-bit 1/5/2 micro float.
	Float8E5M2

	numTypes
)

// Descriptor holds the static properties of a DataType.
type Descriptor struct {
	// Size is the encoded width in bytes.
	Size int
	// Float reports whether the encoding is a floating-point format.
	Float bool
	// Min and Max bound the representable values of integer types.
	// They are meaningless when Float is true.
	Min float64
	Max float64
}

var descriptors = [numTypes]Descriptor{
	Int8:       {Size: 1, Min: -128, Max: 127},
	Uint8:      {Size: 1, Min: 0, Max: 255},
	Int16:      {Size: 2, Min: -32768, Max: 32767},
	Uint16:     {Size: 2, Min: 0, Max: 65535},
	Int32:      {Size: 4, Min: -2147483648, Max: 2147483647},
	Uint32:     {Size: 4, Min: 0, Max: 4294967295},
	Float16:    {Size: 2, Float: true},
	BFloat16:   {Size: 2, Float: true},
	Float32:    {Size: 4, Float: true},
	Float8E4M3: {Size: 1, Float: true},
	Float8E5M2: {Size: 1, Float: true},
}

var names = [numTypes]string{
	Int8:       "int8",
	Uint8:      "uint8",
	Int16:      "int16",
	Uint16:     "uint16",
	Int32:      "int32",
	Uint32:     "uint32",
	Float16:    "fp16",
	BFloat16:   "bf16",
	Float32:    "fp32",
	Float8E4M3: "fp8_e4m3",
	Float8E5M2: "fp8_e5m2",
}

// Valid reports whether dt is a known DataType.
func (dt DataType) Valid() bool {
	return dt < numTypes
}

// Descriptor returns the static properties of dt.
// It panics on unknown types; callers validate via Valid first.
func (dt DataType) Descriptor() Descriptor {
	if !dt.Valid() {
		panic(fmt.Sprintf("dtype: unknown data type %d", dt))
	}
	return descriptors[dt]
}

// Size returns the encoded width of dt in bytes.
func (dt DataType) Size() int {
	return dt.Descriptor().Size
}

// String returns the wire name of dt.
func (dt DataType) String() string {
	if !dt.Valid() {
		return fmt.Sprintf("DataType(%d)", uint8(dt))
	}
	return names[dt]
}

// Parse resolves a wire name like "fp16" to its DataType.
func Parse(s string) (DataType, error) {
	for dt, name := range names {
		if name == s {
			return DataType(dt), nil
		}
	}
	return 0, fmt.Errorf("dtype: unknown data type %q", s)
}
