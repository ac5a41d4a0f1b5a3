// Package blockpartition splits a padded planar channel into 8x8 blocks
// for transform coding, and merges decoded blocks back into a plane.
package blockpartition

import "github.com/cocosip/stillpic/colortransform"

// BlockSize is the fixed partition edge length.
const BlockSize = 8

// GridDims returns the number of block rows and columns needed to cover
// a plane of the given dimensions, rounding up to whole 8x8 blocks.
func GridDims(rows, cols int) (blockRows, blockCols int) {
	blockRows = (rows + BlockSize - 1) / BlockSize
	blockCols = (cols + BlockSize - 1) / BlockSize
	return
}

// Extract returns the 8x8 block at block-grid coordinates (by, bx) from
// plane, as a flattened row-major [64]float64. Pixels beyond the plane's
// actual extent (when rows/cols are not multiples of 8) are replicated
// from the last valid row/column, matching the edge-replication padding
// used elsewhere in the pipeline.
func Extract(plane *colortransform.Plane, by, bx int) [64]float64 {
	var block [64]float64
	for y := 0; y < BlockSize; y++ {
		srcY := by*BlockSize + y
		if srcY >= plane.Rows {
			srcY = plane.Rows - 1
		}
		for x := 0; x < BlockSize; x++ {
			srcX := bx*BlockSize + x
			if srcX >= plane.Cols {
				srcX = plane.Cols - 1
			}
			block[y*BlockSize+x] = float64(plane.Pix[srcY*plane.Cols+srcX])
		}
	}
	return block
}

// Merge writes a decoded, clamped 8x8 block back into plane at block-grid
// coordinates (by, bx). Pixels that fall outside the plane's actual
// extent are discarded.
func Merge(plane *colortransform.Plane, by, bx int, block *[64]float64) {
	for y := 0; y < BlockSize; y++ {
		dstY := by*BlockSize + y
		if dstY >= plane.Rows {
			continue
		}
		for x := 0; x < BlockSize; x++ {
			dstX := bx*BlockSize + x
			if dstX >= plane.Cols {
				continue
			}
			v := block[y*BlockSize+x]
			plane.Pix[dstY*plane.Cols+dstX] = clampByte(v)
		}
	}
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v + 0.5)
}
