package stillcodec

import (
	"errors"
	"fmt"

	"github.com/cocosip/stillpic/bitstream"
	"github.com/cocosip/stillpic/entropy"
	"github.com/cocosip/stillpic/huffman"
)

// Sentinel errors surfaced by Encode and Decode. ErrUnexpectedEOF,
// ErrBadPrefix, and ErrOverflowPosition alias the lower-layer sentinels
// that DecodeError.Kind classifies, so callers can match either the
// specific stream-layer error or the stillcodec-level one with errors.Is.
var (
	// ErrFileIO is returned when the encoded stream is too short to contain
	// a valid header, or another I/O-level read failure occurs.
	ErrFileIO = errors.New("stillcodec: file I/O failure")
	// ErrUnsupportedBitmap is returned by callers that read a bitmap
	// container (see the bmp package) when the source image is compressed
	// or not 24-bit.
	ErrUnsupportedBitmap = errors.New("stillcodec: unsupported bitmap (compressed or non-24-bit)")
	ErrUnexpectedEOF     = bitstream.ErrUnexpectedEOF
	ErrBadPrefix         = huffman.ErrBadPrefix
	ErrOverflowPosition  = entropy.ErrOverflowPosition
	// ErrInvalidDimensions is returned when width or height is non-positive,
	// or an encode is attempted on an image with no backing pixel planes.
	ErrInvalidDimensions = errors.New("stillcodec: invalid image dimensions")
)

// Kind classifies a DecodeError by the underlying failure mode, mirroring
// the three stream-corruption cases the coefficient coder can hit.
type Kind int

const (
	KindUnexpectedEOF Kind = iota
	KindBadPrefix
	KindOverflowPosition
)

func (k Kind) String() string {
	switch k {
	case KindUnexpectedEOF:
		return "UnexpectedEof"
	case KindBadPrefix:
		return "BadPrefix"
	case KindOverflowPosition:
		return "OverflowPosition"
	default:
		return "Unknown"
	}
}

// classifyKind maps an error returned by the entropy coder to the Kind
// DecodeError reports.
func classifyKind(err error) Kind {
	switch {
	case errors.Is(err, huffman.ErrBadPrefix):
		return KindBadPrefix
	case errors.Is(err, entropy.ErrOverflowPosition):
		return KindOverflowPosition
	default:
		return KindUnexpectedEOF
	}
}

// DecodeError reports a decode-time failure with the error kind, the bit
// offset in the stream at which it occurred, and the channel phase ("Y",
// "Cb", or "Cr") being decoded.
type DecodeError struct {
	Kind      Kind
	BitOffset int
	Phase     string // "Y", "Cb", or "Cr"
	Block     int    // raster index of the block within its phase
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("stillcodec: %s at bit offset %d in %s phase, block %d: %v", e.Kind, e.BitOffset, e.Phase, e.Block, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
