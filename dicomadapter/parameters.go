package dicomadapter

import (
	"github.com/cocosip/go-dicom/pkg/imaging/codec"

	"github.com/cocosip/stillpic/stillcodec"
)

var _ codec.Parameters = (*stillcodecParameters)(nil)

// stillcodecParameters adapts stillcodec.Parameters to the go-dicom
// codec.Parameters interface.
type stillcodecParameters struct {
	stillcodec.Parameters
}

// WithQuality sets Quality and returns p for chaining.
func (p *stillcodecParameters) WithQuality(quality int) *stillcodecParameters {
	p.Quality = quality
	return p
}
