// Package entropy implements the coefficient coder: differential DC
// coding and run-length AC coding of a zig-zag-scanned quantized
// 8x8 block, written to and read from a bitstream using the huffman
// package's canonical JPEG tables.
package entropy

import (
	"errors"

	"github.com/cocosip/stillpic/bitstream"
	"github.com/cocosip/stillpic/huffman"
)

// ErrOverflowPosition is returned when a decoded run carries the
// zig-zag position past the 64-coefficient block.
var ErrOverflowPosition = errors.New("entropy: coefficient position overflow")

var acTree = huffman.BuildACTree()

// Predictor tracks the running DC value for one channel's coding phase.
// Each channel phase (Y, Cb, Cr) keeps its own independent predictor,
// reset to zero at the start of that phase.
type Predictor struct {
	value int
}

// EncodeBlock writes the 64 zig-zag-ordered quantized coefficients of
// coef (coef[0] is DC, coef[1..63] are AC in increasing frequency) to bw,
// updating pred with the new DC value.
func EncodeBlock(bw *bitstream.Writer, coef *[64]int, pred *Predictor) error {
	diff := coef[0] - pred.value
	pred.value = coef[0]

	cat := huffman.Category(diff)
	if err := bw.WriteBitsStr(huffman.DCPrefix[cat]); err != nil {
		return err
	}
	if cat > 0 {
		if err := bw.WriteBitsInt(huffman.Mantissa(diff, cat), cat); err != nil {
			return err
		}
	}

	run := 0
	for k := 1; k < 64; k++ {
		val := coef[k]
		if val == 0 {
			run++
			continue
		}
		for run >= 16 {
			if err := bw.WriteBitsStr(huffman.ACPrefix[huffman.ZRL.Run][huffman.ZRL.Category]); err != nil {
				return err
			}
			run -= 16
		}
		acCat := huffman.Category(val)
		if err := bw.WriteBitsStr(huffman.ACPrefix[run][acCat]); err != nil {
			return err
		}
		if err := bw.WriteBitsInt(huffman.Mantissa(val, acCat), acCat); err != nil {
			return err
		}
		run = 0
	}
	if run > 0 {
		if err := bw.WriteBitsStr(huffman.ACPrefix[huffman.EOB.Run][huffman.EOB.Category]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBlock reads one coded block from br, reconstructing the 64
// zig-zag-ordered quantized coefficients and updating pred.
func DecodeBlock(br *bitstream.Reader, pred *Predictor) (*[64]int, error) {
	var coef [64]int

	cat, err := huffman.DecodeDC(br)
	if err != nil {
		return nil, err
	}
	diff := 0
	if cat > 0 {
		mantissa, err := br.ReadBits(cat)
		if err != nil {
			return nil, err
		}
		diff = huffman.DecodeValue(mantissa, cat)
	}
	pred.value += diff
	coef[0] = pred.value

	k := 1
	for k < 64 {
		rc, err := acTree.Decode(br)
		if err != nil {
			return nil, err
		}
		if rc.Category == 0 {
			if rc.Run == 15 {
				k += 16
				continue
			}
			break // EOB
		}
		k += rc.Run
		if k >= 64 {
			return nil, ErrOverflowPosition
		}
		mantissa, err := br.ReadBits(rc.Category)
		if err != nil {
			return nil, err
		}
		coef[k] = huffman.DecodeValue(mantissa, rc.Category)
		k++
	}

	return &coef, nil
}
