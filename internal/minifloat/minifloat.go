// Package minifloat decodes narrow floating-point bit patterns.
//
// Supported layouts:
//
//	binary16 (half):  1/5/10 sign/exp/frac, bias 15
//	bfloat16 (brain): 1/8/7,  bias 127
//	fp8 E4M3:         1/4/3,  bias 7
//	fp8 E5M2:         1/5/2,  bias 15
//
// This package is internal: it exists to support narrow float formats as
// input encodings while keeping the pipeline in float64. Decoding follows
// the textbook sign/exponent/mantissa decomposition rather than bit
// reassembly, so each format's subnormal and non-finite rules stay
// explicit.
package minifloat

import (
	"math"
)

const (
	halfExpMask  uint16 = 0x1F
	halfFracMask uint16 = 0x03FF

	bf16ExpMask  uint16 = 0xFF
	bf16FracMask uint16 = 0x7F

	e4m3ExpMask  uint8 = 0x0F
	e4m3FracMask uint8 = 0x07

	e5m2ExpMask  uint8 = 0x1F
	e5m2FracMask uint8 = 0x03
)

// Half decodes an IEEE-754 binary16 bit-pattern.
func Half(bits uint16) float64 {
	sign := 1.0
	if bits&0x8000 != 0 {
		sign = -1.0
	}
	exp := (bits >> 10) & halfExpMask
	frac := bits & halfFracMask

	switch exp {
	case 0:
		// Zero or subnormal: exponent -14, no implicit leading 1.
		return sign * (float64(frac) / 1024.0) * math.Ldexp(1, -14)
	case halfExpMask:
		if frac == 0 {
			return sign * math.Inf(1)
		}
		return math.NaN()
	default:
		return sign * (1 + float64(frac)/1024.0) * math.Ldexp(1, int(exp)-15)
	}
}

// BFloat16 decodes a bfloat16 (brain float) bit-pattern.
func BFloat16(bits uint16) float64 {
	sign := 1.0
	if bits&0x8000 != 0 {
		sign = -1.0
	}
	exp := (bits >> 7) & bf16ExpMask
	frac := bits & bf16FracMask

	switch exp {
	case 0:
		return sign * (float64(frac) / 128.0) * math.Ldexp(1, -126)
	case bf16ExpMask:
		if frac == 0 {
			return sign * math.Inf(1)
		}
		return math.NaN()
	default:
		return sign * (1 + float64(frac)/128.0) * math.Ldexp(1, int(exp)-127)
	}
}

// E4M3 decodes an 8-bit fp8 E4M3 bit-pattern.
//
// The all-ones exponent (0xF) is treated as Inf/NaN here, mirroring the
// E5M2 structure, not the OCP variant that reclaims it for finite values.
func E4M3(bits uint8) float64 {
	sign := 1.0
	if bits&0x80 != 0 {
		sign = -1.0
	}
	exp := (bits >> 3) & e4m3ExpMask
	frac := bits & e4m3FracMask

	switch exp {
	case 0:
		return sign * (float64(frac) / 8.0) * math.Ldexp(1, -6)
	case e4m3ExpMask:
		if frac == 0 {
			return sign * math.Inf(1)
		}
		return math.NaN()
	default:
		return sign * (1 + float64(frac)/8.0) * math.Ldexp(1, int(exp)-7)
	}
}

// E5M2 decodes an 8-bit fp8 E5M2 bit-pattern.
func E5M2(bits uint8) float64 {
	sign := 1.0
	if bits&0x80 != 0 {
		sign = -1.0
	}
	exp := (bits >> 2) & e5m2ExpMask
	frac := bits & e5m2FracMask

	switch exp {
	case 0:
		return sign * (float64(frac) / 4.0) * math.Ldexp(1, -14)
	case e5m2ExpMask:
		if frac == 0 {
			return sign * math.Inf(1)
		}
		return math.NaN()
	default:
		return sign * (1 + float64(frac)/4.0) * math.Ldexp(1, int(exp)-15)
	}
}
