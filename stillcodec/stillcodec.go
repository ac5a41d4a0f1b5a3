// Package stillcodec implements the end-to-end still-image encoder and
// decoder, orchestrating color transform, block partitioning, the DCT,
// quantization, and entropy coding into a single compact bitstream.
package stillcodec

import (
	"bytes"
	"encoding/binary"

	"github.com/cocosip/stillpic/bitstream"
	"github.com/cocosip/stillpic/blockpartition"
	"github.com/cocosip/stillpic/colortransform"
	"github.com/cocosip/stillpic/dct"
	"github.com/cocosip/stillpic/entropy"
	"github.com/cocosip/stillpic/quant"
	"github.com/cocosip/stillpic/zigzag"
)

// headerSize is the fixed number of bytes preceding the entropy-coded
// payload: width (4), height (4), quality (1).
const headerSize = 9

// Image is a planar RGB image, one byte per channel per pixel.
type Image struct {
	Width, Height int
	R, G, B       *colortransform.Plane
}

// Encode compresses img into a self-contained byte stream.
func Encode(img *Image, params *Parameters) ([]byte, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if img.R == nil || img.G == nil || img.B == nil {
		return nil, ErrInvalidDimensions
	}
	if params == nil {
		params = NewParameters()
	}
	params.Validate()
	factor := quant.QualityToFactor(params.Quality)

	y, cb, cr := colortransform.RGBToYCbCr(img.R, img.G, img.B)
	subCb, subCr := colortransform.Subsample420(cb, cr)

	var buf bytes.Buffer
	var header [headerSize]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(img.Width))
	binary.BigEndian.PutUint32(header[4:8], uint32(img.Height))
	header[8] = byte(params.Quality)
	buf.Write(header[:])

	bw := bitstream.NewWriter(&buf)

	if err := encodePlane(bw, y, quant.LuminanceTable, factor); err != nil {
		return nil, err
	}
	if err := encodeChromaPair(bw, subCb, subCr, factor); err != nil {
		return nil, err
	}

	if err := bw.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reconstructs an Image from data produced by Encode.
func Decode(data []byte) (*Image, error) {
	if len(data) < headerSize {
		return nil, ErrFileIO
	}
	width := int(binary.BigEndian.Uint32(data[0:4]))
	height := int(binary.BigEndian.Uint32(data[4:8]))
	quality := int(data[8])
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	factor := quant.QualityToFactor(quality)

	br := bitstream.NewReader(bytes.NewReader(data[headerSize:]))

	y, err := decodePlane(br, width, height, quant.LuminanceTable, factor, "Y")
	if err != nil {
		return nil, err
	}

	halfRows := ceilDiv2(height)
	halfCols := ceilDiv2(width)
	chromaRows := roundUp8(halfRows)
	chromaCols := roundUp8(halfCols)
	subCb, subCr, err := decodeChromaPair(br, chromaRows, chromaCols, factor)
	if err != nil {
		return nil, err
	}

	cb, cr := colortransform.Upsample420(subCb, subCr, height, width)
	r, g, b := colortransform.YCbCrToRGB(y, cb, cr)

	return &Image{Width: width, Height: height, R: r, G: g, B: b}, nil
}

func ceilDiv2(n int) int { return (n + 1) / 2 }
func roundUp8(n int) int { return ((n + 7) / 8) * 8 }

// encodePlane performs the per-channel coding phase: raster-order 8x8
// blocks, one independent DC predictor for the whole phase.
func encodePlane(bw *bitstream.Writer, plane *colortransform.Plane, table [64]float64, factor float64) error {
	blockRows, blockCols := blockpartition.GridDims(plane.Rows, plane.Cols)
	pred := &entropy.Predictor{}
	for by := 0; by < blockRows; by++ {
		for bx := 0; bx < blockCols; bx++ {
			q := quantizeBlock(plane, by, bx, table, factor)
			if err := entropy.EncodeBlock(bw, &q, pred); err != nil {
				return err
			}
		}
	}
	return nil
}

// quantizeBlock extracts, DCTs, and quantizes the 8x8 block at (by,bx) in
// plane, returning the zig-zag-scanned quantized coefficients.
func quantizeBlock(plane *colortransform.Plane, by, bx int, table [64]float64, factor float64) [64]int {
	raw := blockpartition.Extract(plane, by, bx)
	block := dct.Block(raw)
	shifted := dct.LevelShift(&block)
	coeffs := dct.Forward(&shifted)
	coeffsArr := [64]float64(coeffs)
	q := quant.Quantize(&coeffsArr, &table, factor)
	return zigzag.ScanInt(&q)
}

// dequantizeBlock reverses quantizeBlock, reconstructing a clamped spatial
// 8x8 block from zig-zag-scanned quantized coefficients.
func dequantizeBlock(q *[64]int, table [64]float64, factor float64) [64]float64 {
	coeffsQ := zigzag.InverseInt(q)
	deq := quant.Dequantize(&coeffsQ, &table, factor)
	block := dct.Block(deq)
	spatial := dct.Inverse(&block)
	unshifted := dct.UnlevelShiftClamp(&spatial)
	return [64]float64(unshifted)
}

// encodeChromaPair codes Cb and Cr interleaved block-by-block, each with
// its own independent DC predictor for the whole phase.
func encodeChromaPair(bw *bitstream.Writer, cb, cr *colortransform.Plane, factor float64) error {
	blockRows, blockCols := blockpartition.GridDims(cb.Rows, cb.Cols)
	cbPred := &entropy.Predictor{}
	crPred := &entropy.Predictor{}
	for by := 0; by < blockRows; by++ {
		for bx := 0; bx < blockCols; bx++ {
			if err := encodeOneChromaBlock(bw, cb, by, bx, cbPred, factor); err != nil {
				return err
			}
			if err := encodeOneChromaBlock(bw, cr, by, bx, crPred, factor); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeOneChromaBlock(bw *bitstream.Writer, plane *colortransform.Plane, by, bx int, pred *entropy.Predictor, factor float64) error {
	q := quantizeBlock(plane, by, bx, quant.ChrominanceTable, factor)
	return entropy.EncodeBlock(bw, &q, pred)
}

func decodePlane(br *bitstream.Reader, width, height int, table [64]float64, factor float64, phase string) (*colortransform.Plane, error) {
	plane := colortransform.NewPlane(height, width)
	blockRows, blockCols := blockpartition.GridDims(height, width)
	pred := &entropy.Predictor{}
	idx := 0
	for by := 0; by < blockRows; by++ {
		for bx := 0; bx < blockCols; bx++ {
			q, err := entropy.DecodeBlock(br, pred)
			if err != nil {
				return nil, &DecodeError{Kind: classifyKind(err), BitOffset: br.BitOffset(), Phase: phase, Block: idx, Err: err}
			}
			block := dequantizeBlock(q, table, factor)
			blockpartition.Merge(plane, by, bx, &block)
			idx++
		}
	}
	return plane, nil
}

func decodeChromaPair(br *bitstream.Reader, rows, cols int, factor float64) (cb, cr *colortransform.Plane, err error) {
	cb = colortransform.NewPlane(rows, cols)
	cr = colortransform.NewPlane(rows, cols)
	blockRows, blockCols := blockpartition.GridDims(rows, cols)
	cbPred := &entropy.Predictor{}
	crPred := &entropy.Predictor{}
	idx := 0
	for by := 0; by < blockRows; by++ {
		for bx := 0; bx < blockCols; bx++ {
			if err := decodeOneChromaBlock(br, cb, by, bx, cbPred, factor, "Cb", idx); err != nil {
				return nil, nil, err
			}
			if err := decodeOneChromaBlock(br, cr, by, bx, crPred, factor, "Cr", idx); err != nil {
				return nil, nil, err
			}
			idx++
		}
	}
	return cb, cr, nil
}

func decodeOneChromaBlock(br *bitstream.Reader, plane *colortransform.Plane, by, bx int, pred *entropy.Predictor, factor float64, phase string, idx int) error {
	q, err := entropy.DecodeBlock(br, pred)
	if err != nil {
		return &DecodeError{Kind: classifyKind(err), BitOffset: br.BitOffset(), Phase: phase, Block: idx, Err: err}
	}
	block := dequantizeBlock(q, quant.ChrominanceTable, factor)
	blockpartition.Merge(plane, by, bx, &block)
	return nil
}
