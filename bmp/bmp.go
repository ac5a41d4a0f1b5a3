// Package bmp reads and writes uncompressed 24-bit BMP files, the
// container format the codec's reference test images are stored in.
package bmp

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/cocosip/stillpic/colortransform"
	"github.com/cocosip/stillpic/stillcodec"
)

// Errors returned by Decode when the file does not describe a plain
// 24-bit uncompressed bitmap. ErrUnsupportedFormat and ErrTruncated alias
// the stillcodec sentinels so callers can match either name with
// errors.Is once a bitmap flows into the codec.
var (
	ErrNotBMP            = errors.New("bmp: not a bitmap file")
	ErrUnsupportedFormat = stillcodec.ErrUnsupportedBitmap
	ErrTruncated         = stillcodec.ErrFileIO
)

const (
	bfTypeBM     = 0x4D42
	fileHeaderSz = 14
	infoHeaderSz = 40
)

// Image holds a decoded 24-bit bitmap as three planar byte channels.
type Image struct {
	Width, Height int
	R, G, B       *colortransform.Plane
}

// Decode reads a 24-bit uncompressed BMP from r.
func Decode(r io.Reader) (*Image, error) {
	header := make([]byte, fileHeaderSz+infoHeaderSz)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, ErrTruncated
	}

	fileType := binary.LittleEndian.Uint16(header[0:2])
	if fileType != bfTypeBM {
		return nil, ErrNotBMP
	}
	offBits := binary.LittleEndian.Uint32(header[10:14])

	width := int(int32(binary.LittleEndian.Uint32(header[18:22])))
	heightRaw := int32(binary.LittleEndian.Uint32(header[22:26]))
	bitCount := binary.LittleEndian.Uint16(header[28:30])
	compression := binary.LittleEndian.Uint32(header[30:34])

	if bitCount != 24 || compression != 0 {
		return nil, ErrUnsupportedFormat
	}

	topDown := heightRaw < 0
	height := int(heightRaw)
	if topDown {
		height = -height
	}
	if width <= 0 || height <= 0 {
		return nil, ErrUnsupportedFormat
	}

	// Skip any gap between the headers and the pixel data.
	if skip := int(offBits) - len(header); skip > 0 {
		if _, err := io.CopyN(io.Discard, r, int64(skip)); err != nil {
			return nil, ErrTruncated
		}
	}

	rowBytes := width * 3
	padding := (4 - rowBytes%4) % 4
	row := make([]byte, rowBytes+padding)

	img := &Image{
		Width:  width,
		Height: height,
		R:      colortransform.NewPlane(height, width),
		G:      colortransform.NewPlane(height, width),
		B:      colortransform.NewPlane(height, width),
	}

	// BMP rows are stored bottom-to-top unless the height is negative.
	for fileRow := 0; fileRow < height; fileRow++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, ErrTruncated
		}
		dstRow := fileRow
		if !topDown {
			dstRow = height - 1 - fileRow
		}
		for x := 0; x < width; x++ {
			b := row[x*3+0]
			g := row[x*3+1]
			rr := row[x*3+2]
			idx := dstRow*width + x
			img.R.Pix[idx] = rr
			img.G.Pix[idx] = g
			img.B.Pix[idx] = b
		}
	}

	return img, nil
}

// Encode writes img as a bottom-up, uncompressed 24-bit BMP to w.
func Encode(w io.Writer, img *Image) error {
	rowBytes := img.Width * 3
	padding := (4 - rowBytes%4) % 4
	paddedRowBytes := rowBytes + padding
	imageSize := paddedRowBytes * img.Height
	fileSize := fileHeaderSz + infoHeaderSz + imageSize

	header := make([]byte, fileHeaderSz+infoHeaderSz)
	binary.LittleEndian.PutUint16(header[0:2], bfTypeBM)
	binary.LittleEndian.PutUint32(header[2:6], uint32(fileSize))
	binary.LittleEndian.PutUint32(header[10:14], uint32(fileHeaderSz+infoHeaderSz))

	binary.LittleEndian.PutUint32(header[14:18], uint32(infoHeaderSz))
	binary.LittleEndian.PutUint32(header[18:22], uint32(img.Width))
	binary.LittleEndian.PutUint32(header[22:26], uint32(img.Height)) // bottom-up
	binary.LittleEndian.PutUint16(header[26:28], 1)                 // planes
	binary.LittleEndian.PutUint16(header[28:30], 24)                // bit count
	binary.LittleEndian.PutUint32(header[30:34], 0)                 // no compression
	binary.LittleEndian.PutUint32(header[34:38], uint32(imageSize))

	if _, err := w.Write(header); err != nil {
		return err
	}

	row := make([]byte, paddedRowBytes)
	for fileRow := 0; fileRow < img.Height; fileRow++ {
		srcRow := img.Height - 1 - fileRow
		for x := 0; x < img.Width; x++ {
			idx := srcRow*img.Width + x
			row[x*3+0] = img.B.Pix[idx]
			row[x*3+1] = img.G.Pix[idx]
			row[x*3+2] = img.R.Pix[idx]
		}
		for i := rowBytes; i < paddedRowBytes; i++ {
			row[i] = 0
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
