package quant

import "testing"

func TestQuantizeDequantizeInvariant(t *testing.T) {
	var block [64]float64
	for i := range block {
		block[i] = float64(i*13 - 400)
	}
	factor := 1.0
	q := Quantize(&block, &LuminanceTable, factor)
	d := Dequantize(&q, &LuminanceTable, factor)

	for i := range block {
		want := roundHalfAwayFromZero(block[i]/(LuminanceTable[i]*factor)) * LuminanceTable[i] * factor
		if d[i] != want {
			t.Fatalf("index %d: got %v, want %v", i, d[i], want)
		}
	}
}

func TestQuantizeZeroBlockIsAllZero(t *testing.T) {
	var block [64]float64
	q := Quantize(&block, &ChrominanceTable, 1.0)
	for i, v := range q {
		if v != 0 {
			t.Fatalf("index %d: got %d, want 0", i, v)
		}
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0.5, 1}, {-0.5, -1}, {1.5, 2}, {-1.5, -2}, {2.4, 2}, {-2.4, -2},
	}
	for _, tc := range cases {
		if got := roundHalfAwayFromZero(tc.in); got != tc.want {
			t.Errorf("roundHalfAwayFromZero(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestQualityToFactorMonotonicAndUnityAtFifty(t *testing.T) {
	if f := QualityToFactor(50); f != 1.0 {
		t.Fatalf("QualityToFactor(50) = %v, want 1.0", f)
	}
	prev := QualityToFactor(1)
	for q := 2; q <= 100; q++ {
		f := QualityToFactor(q)
		if f > prev {
			t.Fatalf("QualityToFactor not monotonically non-increasing at q=%d: prev=%v f=%v", q, prev, f)
		}
		prev = f
	}
}
