package blockpartition

import (
	"testing"

	"github.com/cocosip/stillpic/colortransform"
)

func TestGridDimsRoundsUpToWholeBlocks(t *testing.T) {
	cases := []struct {
		rows, cols         int
		wantRows, wantCols int
	}{
		{8, 8, 1, 1},
		{9, 8, 2, 1},
		{16, 18, 2, 3},
		{18, 18, 3, 3},
	}
	for _, tc := range cases {
		br, bc := GridDims(tc.rows, tc.cols)
		if br != tc.wantRows || bc != tc.wantCols {
			t.Fatalf("GridDims(%d,%d) = (%d,%d), want (%d,%d)", tc.rows, tc.cols, br, bc, tc.wantRows, tc.wantCols)
		}
	}
}

func TestExtractReplicatesEdgesBeyondPlane(t *testing.T) {
	p := colortransform.NewPlane(10, 10)
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			p.Pix[i*10+j] = byte(i*10 + j)
		}
	}
	block := Extract(p, 1, 1)
	// Block at (by=1,bx=1) covers rows/cols 8..15, but plane only has 8,9.
	// Rows/cols 10..15 should replicate from row/col 9.
	lastRowLastCol := p.Pix[9*10+9]
	if byte(block[7*8+7]) != lastRowLastCol {
		t.Fatalf("bottom-right of padded block = %v, want replication of %v", block[7*8+7], lastRowLastCol)
	}
}

func TestExtractMergeRoundTrip(t *testing.T) {
	p := colortransform.NewPlane(8, 8)
	for i := range p.Pix {
		p.Pix[i] = byte(i * 2)
	}
	block := Extract(p, 0, 0)

	out := colortransform.NewPlane(8, 8)
	Merge(out, 0, 0, &block)

	for i := range p.Pix {
		if out.Pix[i] != p.Pix[i] {
			t.Fatalf("index %d: got %d, want %d", i, out.Pix[i], p.Pix[i])
		}
	}
}

func TestMergeClampsOutOfRangeValues(t *testing.T) {
	out := colortransform.NewPlane(8, 8)
	var block [64]float64
	block[0] = -10
	block[1] = 300
	Merge(out, 0, 0, &block)
	if out.Pix[0] != 0 {
		t.Fatalf("clamped low = %d, want 0", out.Pix[0])
	}
	if out.Pix[1] != 255 {
		t.Fatalf("clamped high = %d, want 255", out.Pix[1])
	}
}

func TestMergeIgnoresOutOfPlaneCoordinates(t *testing.T) {
	out := colortransform.NewPlane(4, 4)
	var block [64]float64
	for i := range block {
		block[i] = 99
	}
	// Should not panic even though this block extends beyond the 4x4 plane.
	Merge(out, 0, 0, &block)
	if out.Pix[3*4+3] != 99 {
		t.Fatalf("in-range corner not written")
	}
}
