package codec

import (
	"fmt"

	"github.com/cocosip/stillpic/colortransform"
	"github.com/cocosip/stillpic/stillcodec"
)

// uid is an arbitrary stable identifier for the stillpic codec; unlike
// the teacher's transfer-syntax UIDs, it has no meaning outside this
// registry.
const uid = "1.3.6.1.4.1.stillpic.1"

// StillpicCodec adapts stillcodec.Encode/Decode to the Codec interface,
// interleaving/de-interleaving the 3-component RGB pixel data that
// EncodeParams/DecodeResult carry.
type StillpicCodec struct {
	quality int
}

var _ Codec = (*StillpicCodec)(nil)

// NewStillpicCodec creates an adapter with the given default quality.
func NewStillpicCodec(quality int) *StillpicCodec {
	if quality < 1 || quality > 100 {
		quality = 85
	}
	return &StillpicCodec{quality: quality}
}

// UID returns this codec's registry identifier.
func (c *StillpicCodec) UID() string { return uid }

// Name returns a human-readable name.
func (c *StillpicCodec) Name() string { return "stillpic" }

// Encode compresses an interleaved RGB frame.
func (c *StillpicCodec) Encode(params EncodeParams) ([]byte, error) {
	if params.Components != 3 {
		return nil, fmt.Errorf("stillpic codec: only 3-component (RGB) images are supported, got %d", params.Components)
	}
	if params.BitDepth != 8 {
		return nil, fmt.Errorf("stillpic codec: only 8-bit samples are supported, got %d", params.BitDepth)
	}
	if len(params.PixelData) != params.Width*params.Height*3 {
		return nil, ErrInvalidParameter
	}

	quality := c.quality
	if base, ok := params.Options.(*BaseOptions); ok && base.Quality > 0 {
		quality = base.Quality
	}

	img := planarFromInterleaved(params.PixelData, params.Width, params.Height)
	return stillcodec.Encode(img, stillcodec.NewParameters().WithQuality(quality))
}

// Decode reconstructs an interleaved RGB frame.
func (c *StillpicCodec) Decode(data []byte) (*DecodeResult, error) {
	img, err := stillcodec.Decode(data)
	if err != nil {
		return nil, err
	}
	return &DecodeResult{
		PixelData:  interleavedFromPlanar(img),
		Width:      img.Width,
		Height:     img.Height,
		Components: 3,
		BitDepth:   8,
	}, nil
}

func planarFromInterleaved(data []byte, width, height int) *stillcodec.Image {
	img := &stillcodec.Image{
		Width:  width,
		Height: height,
		R:      colortransform.NewPlane(height, width),
		G:      colortransform.NewPlane(height, width),
		B:      colortransform.NewPlane(height, width),
	}
	for i := 0; i < width*height; i++ {
		img.R.Pix[i] = data[i*3+0]
		img.G.Pix[i] = data[i*3+1]
		img.B.Pix[i] = data[i*3+2]
	}
	return img
}

func interleavedFromPlanar(img *stillcodec.Image) []byte {
	out := make([]byte, img.Width*img.Height*3)
	for i := 0; i < img.Width*img.Height; i++ {
		out[i*3+0] = img.R.Pix[i]
		out[i*3+1] = img.G.Pix[i]
		out[i*3+2] = img.B.Pix[i]
	}
	return out
}

func init() {
	Register(NewStillpicCodec(85))
}
