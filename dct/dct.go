// Package dct implements the forward and inverse two-dimensional 8x8
// Discrete Cosine Transform used by the codec, built from a precomputed
// cosine matrix, plus the level-shift helpers that sit on either side of
// it in the pipeline.
package dct

import "math"

// BlockSize is the side length of a DCT block.
const BlockSize = 8

// Block is a flat row-major 8x8 matrix of float64 samples; index
// (i,j) lives at i*BlockSize+j.
type Block [BlockSize * BlockSize]float64

var cosine Block

func init() {
	for i := 0; i < BlockSize; i++ {
		for j := 0; j < BlockSize; j++ {
			if i == 0 {
				cosine[i*BlockSize+j] = math.Sqrt(1.0 / BlockSize)
			} else {
				cosine[i*BlockSize+j] = math.Cos(float64(2*j+1)*float64(i)*math.Pi/16.0) / 2.0
			}
		}
	}
}

func at(m *Block, i, j int) float64 { return m[i*BlockSize+j] }

// matMul computes a*b into dst, where a, b, dst are BlockSize x BlockSize.
func matMul(dst, a, b *Block) {
	var tmp Block
	for i := 0; i < BlockSize; i++ {
		for j := 0; j < BlockSize; j++ {
			var sum float64
			for k := 0; k < BlockSize; k++ {
				sum += at(a, i, k) * at(b, k, j)
			}
			tmp[i*BlockSize+j] = sum
		}
	}
	*dst = tmp
}

// transpose returns the transpose of m.
func transpose(m *Block) Block {
	var t Block
	for i := 0; i < BlockSize; i++ {
		for j := 0; j < BlockSize; j++ {
			t[j*BlockSize+i] = m[i*BlockSize+j]
		}
	}
	return t
}

// Forward computes Y = C * B * C^T, the 2-D forward DCT of block.
func Forward(block *Block) Block {
	var temp, result Block
	matMul(&temp, &cosine, block)
	ct := transpose(&cosine)
	matMul(&result, &temp, &ct)
	return result
}

// Inverse computes B = C^T * Y * C, the 2-D inverse DCT of coef.
func Inverse(coef *Block) Block {
	ct := transpose(&cosine)
	var temp, result Block
	matMul(&temp, &ct, coef)
	matMul(&result, &temp, &cosine)
	return result
}

// LevelShift subtracts 128 from every sample, centering [0,255] around
// zero before the forward DCT.
func LevelShift(block *Block) Block {
	var out Block
	for i := range block {
		out[i] = block[i] - 128
	}
	return out
}

// UnlevelShiftClamp adds 128 back and clamps to [0,255], the inverse of
// LevelShift applied after the inverse DCT.
func UnlevelShiftClamp(block *Block) Block {
	var out Block
	for i := range block {
		v := block[i] + 128
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		out[i] = v
	}
	return out
}
