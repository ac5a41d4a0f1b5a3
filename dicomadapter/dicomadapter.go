// Package dicomadapter exposes the stillpic codec as a go-dicom
// imaging/codec.Codec, so it can sit in the DICOM transfer-syntax
// registry alongside the library's own codecs.
package dicomadapter

import (
	"fmt"

	"github.com/cocosip/go-dicom/pkg/dicom/transfer"
	"github.com/cocosip/go-dicom/pkg/imaging/codec"
	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"

	"github.com/cocosip/stillpic/colortransform"
	"github.com/cocosip/stillpic/stillcodec"
)

var _ codec.Codec = (*Codec)(nil)

// Codec adapts stillcodec.Encode/Decode to the go-dicom codec.Codec
// interface. It is registered against the JPEG Baseline transfer syntax
// slot, since stillpic's bitstream is a still-image codec in the same
// family (lossy, DCT-based, 4:2:0 chroma) rather than a bit-exact JFIF
// encoder.
type Codec struct {
	transferSyntax *transfer.Syntax
	quality        int
}

// NewCodec creates an adapter with the given default quality (1-100).
func NewCodec(quality int) *Codec {
	if quality < 1 || quality > 100 {
		quality = 85
	}
	return &Codec{
		transferSyntax: transfer.JPEGBaseline8Bit,
		quality:        quality,
	}
}

// Name returns the codec name.
func (c *Codec) Name() string {
	return fmt.Sprintf("stillpic (Quality %d)", c.quality)
}

// TransferSyntax returns the transfer syntax this codec is registered
// under.
func (c *Codec) TransferSyntax() *transfer.Syntax {
	return c.transferSyntax
}

// GetDefaultParameters returns the default codec parameters.
func (c *Codec) GetDefaultParameters() codec.Parameters {
	return (&stillcodecParameters{Parameters: *stillcodec.NewParameters()}).WithQuality(c.quality)
}

// Encode compresses every frame of oldPixelData into newPixelData using
// stillcodec.
func (c *Codec) Encode(oldPixelData imagetypes.PixelData, newPixelData imagetypes.PixelData, parameters codec.Parameters) error {
	if oldPixelData == nil || newPixelData == nil {
		return fmt.Errorf("dicomadapter: source and destination PixelData cannot be nil")
	}

	frameInfo := oldPixelData.GetFrameInfo()
	if frameInfo == nil {
		return fmt.Errorf("dicomadapter: failed to get frame info from source pixel data")
	}
	if frameInfo.BitsStored > 8 {
		return fmt.Errorf("dicomadapter: only 8-bit samples are supported, got %d bits", frameInfo.BitsStored)
	}
	if frameInfo.SamplesPerPixel != 3 {
		return fmt.Errorf("dicomadapter: only 3-channel (RGB) frames are supported, got %d samples per pixel", frameInfo.SamplesPerPixel)
	}

	params := stillcodec.NewParameters().WithQuality(c.quality)
	if sp, ok := parameters.(*stillcodecParameters); ok {
		params = &sp.Parameters
	} else if parameters != nil {
		if q := parameters.GetParameter("quality"); q != nil {
			if qInt, ok := q.(int); ok {
				params = params.WithQuality(qInt)
			}
		}
	}
	params.Validate()

	width := int(frameInfo.Width)
	height := int(frameInfo.Height)

	frameCount := oldPixelData.FrameCount()
	for frameIndex := 0; frameIndex < frameCount; frameIndex++ {
		frameData, err := oldPixelData.GetFrame(frameIndex)
		if err != nil {
			return fmt.Errorf("dicomadapter: failed to get frame %d: %w", frameIndex, err)
		}
		if len(frameData) != width*height*3 {
			return fmt.Errorf("dicomadapter: frame %d has unexpected length %d", frameIndex, len(frameData))
		}

		img := planarFromInterleaved(frameData, width, height)
		encoded, err := stillcodec.Encode(img, params)
		if err != nil {
			return fmt.Errorf("dicomadapter: encode failed for frame %d: %w", frameIndex, err)
		}
		if err := newPixelData.AddFrame(encoded); err != nil {
			return fmt.Errorf("dicomadapter: failed to add encoded frame %d: %w", frameIndex, err)
		}
	}
	return nil
}

// Decode reconstructs every frame of oldPixelData into newPixelData
// using stillcodec.
func (c *Codec) Decode(oldPixelData imagetypes.PixelData, newPixelData imagetypes.PixelData, parameters codec.Parameters) error {
	if oldPixelData == nil || newPixelData == nil {
		return fmt.Errorf("dicomadapter: source and destination PixelData cannot be nil")
	}

	frameInfo := oldPixelData.GetFrameInfo()
	if frameInfo == nil {
		return fmt.Errorf("dicomadapter: failed to get frame info from source pixel data")
	}

	frameCount := oldPixelData.FrameCount()
	for frameIndex := 0; frameIndex < frameCount; frameIndex++ {
		frameData, err := oldPixelData.GetFrame(frameIndex)
		if err != nil {
			return fmt.Errorf("dicomadapter: failed to get frame %d: %w", frameIndex, err)
		}

		img, err := stillcodec.Decode(frameData)
		if err != nil {
			return fmt.Errorf("dicomadapter: decode failed for frame %d: %w", frameIndex, err)
		}

		if frameInfo.Width > 0 && img.Width != int(frameInfo.Width) {
			return fmt.Errorf("dicomadapter: decoded width (%d) doesn't match expected (%d)", img.Width, frameInfo.Width)
		}
		if frameInfo.Height > 0 && img.Height != int(frameInfo.Height) {
			return fmt.Errorf("dicomadapter: decoded height (%d) doesn't match expected (%d)", img.Height, frameInfo.Height)
		}

		if err := newPixelData.AddFrame(interleavedFromPlanar(img)); err != nil {
			return fmt.Errorf("dicomadapter: failed to add decoded frame %d: %w", frameIndex, err)
		}
	}
	return nil
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

// RegisterCodec registers the stillpic adapter with the global codec
// registry under the JPEG Baseline transfer syntax.
func RegisterCodec(quality int) {
	registry := codec.GetGlobalRegistry()
	registry.RegisterCodec(transfer.JPEGBaseline8Bit, NewCodec(quality))
}

func init() {
	RegisterCodec(85)
}
