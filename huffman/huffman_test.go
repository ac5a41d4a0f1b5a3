package huffman

import (
	"bytes"
	"testing"

	"github.com/cocosip/stillpic/bitstream"
)

func TestCategory(t *testing.T) {
	cases := []struct {
		v   int
		cat int
	}{
		{0, 0}, {1, 1}, {-1, 1}, {2, 2}, {3, 2}, {4, 3}, {7, 3},
		{2047, 11}, {-2047, 11},
	}
	for _, tc := range cases {
		if got := Category(tc.v); got != tc.cat {
			t.Errorf("Category(%d) = %d, want %d", tc.v, got, tc.cat)
		}
	}
}

func TestCategoryBounds(t *testing.T) {
	for v := -2047; v <= 2047; v++ {
		cat := Category(v)
		if v == 0 {
			if cat != 0 {
				t.Fatalf("Category(0) = %d, want 0", cat)
			}
			continue
		}
		av := v
		if av < 0 {
			av = -av
		}
		lo := 1 << uint(cat-1)
		hi := (1 << uint(cat)) - 1
		if av < lo || av > hi {
			t.Fatalf("Category(%d)=%d but %d not in [%d,%d]", v, cat, av, lo, hi)
		}
	}
}

func TestMantissaDecodeValueRoundTrip(t *testing.T) {
	for v := -2047; v <= 2047; v++ {
		cat := Category(v)
		m := Mantissa(v, cat)
		got := DecodeValue(m, cat)
		if got != v {
			t.Fatalf("v=%d cat=%d mantissa=%d: DecodeValue = %d", v, cat, m, got)
		}
	}
}

func TestMantissaMinusOne(t *testing.T) {
	if got := Mantissa(-1, 1); got != 0 {
		t.Fatalf("Mantissa(-1,1) = %d, want 0", got)
	}
	if got := DecodeValue(0, 1); got != -1 {
		t.Fatalf("DecodeValue(0,1) = %d, want -1", got)
	}
}

func TestDCPrefixRoundTrip(t *testing.T) {
	for cat := 0; cat < MaxCategory; cat++ {
		var buf bytes.Buffer
		w := bitstream.NewWriter(&buf)
		if err := w.WriteBitsStr(DCPrefix[cat]); err != nil {
			t.Fatal(err)
		}
		if err := w.Flush(); err != nil {
			t.Fatal(err)
		}
		r := bitstream.NewReader(bytes.NewReader(buf.Bytes()))
		got, err := DecodeDC(r)
		if err != nil {
			t.Fatalf("cat=%d: DecodeDC error: %v", cat, err)
		}
		if got != cat {
			t.Fatalf("cat=%d: decoded %d", cat, got)
		}
	}
}

func TestACTreeRoundTrip(t *testing.T) {
	tree := BuildACTree()
	for run := 0; run < MaxRun; run++ {
		for cat := 0; cat < MaxCategory; cat++ {
			code := ACPrefix[run][cat]
			if code == "" {
				continue
			}
			var buf bytes.Buffer
			w := bitstream.NewWriter(&buf)
			if err := w.WriteBitsStr(code); err != nil {
				t.Fatal(err)
			}
			if err := w.Flush(); err != nil {
				t.Fatal(err)
			}
			r := bitstream.NewReader(bytes.NewReader(buf.Bytes()))
			rc, err := tree.Decode(r)
			if err != nil {
				t.Fatalf("run=%d cat=%d: Decode error: %v", run, cat, err)
			}
			if rc.Run != run || rc.Category != cat {
				t.Fatalf("run=%d cat=%d: decoded (%d,%d)", run, cat, rc.Run, rc.Category)
			}
		}
	}
}

func TestEOBAndZRLCodes(t *testing.T) {
	if ACPrefix[EOB.Run][EOB.Category] != "1010" {
		t.Fatalf("EOB code mismatch: %q", ACPrefix[EOB.Run][EOB.Category])
	}
	if ACPrefix[ZRL.Run][ZRL.Category] != "111111110111" {
		t.Fatalf("ZRL code mismatch: %q", ACPrefix[ZRL.Run][ZRL.Category])
	}
}
