// Command stillpic compresses and decompresses 24-bit BMP images using
// the stillpic codec, dispatched through the codec registry the same way
// go-dicom looks up the DICOM adapter by transfer syntax.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cocosip/stillpic/bmp"
	"github.com/cocosip/stillpic/codec"
	"github.com/cocosip/stillpic/colortransform"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "stillpic: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: stillpic encode -in in.bmp -out out.sp [-quality 85]")
	fmt.Fprintln(os.Stderr, "       stillpic decode -in in.sp -out out.bmp")
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	inPath := fs.String("in", "", "input BMP file")
	outPath := fs.String("out", "", "output compressed file")
	quality := fs.Int("quality", 85, "quality factor (1-100)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return fmt.Errorf("both -in and -out are required")
	}

	in, err := os.Open(*inPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	img, err := bmp.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding bmp: %w", err)
	}

	c, err := codec.Get("stillpic")
	if err != nil {
		return fmt.Errorf("looking up codec: %w", err)
	}

	encoded, err := c.Encode(codec.EncodeParams{
		PixelData:  interleave(img),
		Width:      img.Width,
		Height:     img.Height,
		Components: 3,
		BitDepth:   8,
		Options:    &codec.BaseOptions{Quality: *quality},
	})
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if err := os.WriteFile(*outPath, encoded, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("encoded %dx%d image: %d bytes -> %d bytes\n", img.Width, img.Height, img.Width*img.Height*3, len(encoded))
	return nil
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	inPath := fs.String("in", "", "input compressed file")
	outPath := fs.String("out", "", "output BMP file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return fmt.Errorf("both -in and -out are required")
	}

	data, err := os.ReadFile(*inPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	c, err := codec.Get("stillpic")
	if err != nil {
		return fmt.Errorf("looking up codec: %w", err)
	}

	result, err := c.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	out, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	if err := bmp.Encode(out, deinterleave(result)); err != nil {
		return fmt.Errorf("writing bmp: %w", err)
	}

	fmt.Printf("decoded %dx%d image\n", result.Width, result.Height)
	return nil
}

// interleave converts a bmp.Image's planar R/G/B channels into the
// interleaved byte layout codec.EncodeParams expects.
func interleave(img *bmp.Image) []byte {
	out := make([]byte, img.Width*img.Height*3)
	for i := 0; i < img.Width*img.Height; i++ {
		out[i*3+0] = img.R.Pix[i]
		out[i*3+1] = img.G.Pix[i]
		out[i*3+2] = img.B.Pix[i]
	}
	return out
}

// deinterleave converts a codec.DecodeResult's interleaved pixel data back
// into a planar bmp.Image.
func deinterleave(result *codec.DecodeResult) *bmp.Image {
	img := &bmp.Image{
		Width:  result.Width,
		Height: result.Height,
		R:      colortransform.NewPlane(result.Height, result.Width),
		G:      colortransform.NewPlane(result.Height, result.Width),
		B:      colortransform.NewPlane(result.Height, result.Width),
	}
	for i := 0; i < result.Width*result.Height; i++ {
		img.R.Pix[i] = result.PixelData[i*3+0]
		img.G.Pix[i] = result.PixelData[i*3+1]
		img.B.Pix[i] = result.PixelData[i*3+2]
	}
	return img
}
