// Package quant implements quantization and dequantization of DCT
// coefficients against the standard JPEG luminance/chrominance tables,
// modulated by a scalar quality factor.
package quant

import "math"

// LuminanceTable is the standard JPEG luminance quantization table,
// row-major 8x8.
var LuminanceTable = [64]float64{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	79, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// ChrominanceTable is the standard JPEG chrominance quantization table,
// row-major 8x8.
var ChrominanceTable = [64]float64{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// roundHalfAwayFromZero rounds v to the nearest integer, ties away from
// zero (matching the C library round() the original implementation uses).
func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return math.Floor(v + 0.5)
	}
	return math.Ceil(v - 0.5)
}

// Quantize divides every coefficient of block by table[i]*factor, rounding
// half away from zero, per spec.md §4.4.
func Quantize(block *[64]float64, table *[64]float64, factor float64) [64]int {
	var out [64]int
	for i := range block {
		out[i] = int(roundHalfAwayFromZero(block[i] / (table[i] * factor)))
	}
	return out
}

// Dequantize reverses Quantize: multiplies each quantized coefficient by
// table[i]*factor.
func Dequantize(q *[64]int, table *[64]float64, factor float64) [64]float64 {
	var out [64]float64
	for i := range q {
		out[i] = float64(q[i]) * table[i] * factor
	}
	return out
}

// QualityToFactor maps a conventional 1-100 JPEG quality value to the
// multiplicative factor f consumed by Quantize/Dequantize, using the
// same piecewise scale-factor shape as the classic libjpeg quality
// curve: quality 50 is unscaled (f=1), quality<50 increases the factor
// (coarser quantization), quality>50 decreases it down to a floor of
// f=0.1, reached at quality 95.
func QualityToFactor(quality int) float64 {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	var scale float64
	if quality < 50 {
		scale = 5000.0 / float64(quality)
	} else {
		scale = 200.0 - float64(quality)*2.0
	}
	if scale < 10 {
		// Below f=0.1 the largest AC coefficients quantize past category
		// 10 (|v| > 1023), which the AC prefix table cannot code; quality
		// 100 would otherwise give a zero factor.
		scale = 10
	}
	return scale / 100.0
}
