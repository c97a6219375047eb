package calculator

import (
	"math"
	"testing"

	"SignalSentinel/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateSMA_Basic(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5}
	sma := CalculateSMA(prices, 3)
	if len(sma) != len(prices) {
		t.Fatalf("expected %d values, got %d", len(prices), len(sma))
	}
	if sma[0].Valid || sma[1].Valid {
		t.Error("warm-up positions should be undefined")
	}
	want := []float64{2, 3, 4}
	for i, w := range want {
		got := sma[i+2]
		if !got.Valid || !almostEqual(got.V, w) {
			t.Errorf("sma[%d]: expected %v, got %+v", i+2, w, got)
		}
	}
}

func TestCalculateSMA_ShortInput(t *testing.T) {
	sma := CalculateSMA([]float64{1, 2}, 5)
	if len(sma) != 2 {
		t.Fatalf("expected 2 values, got %d", len(sma))
	}
	for i, v := range sma {
		if v.Valid {
			t.Errorf("sma[%d] should be undefined for input shorter than period", i)
		}
	}
}

func TestCalculateEMA_SeedAndRecurrence(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5}
	ema := CalculateEMA(prices, 3)
	if ema[0].Valid || ema[1].Valid {
		t.Error("positions before the seed should be undefined")
	}
	// Seed at index period-1 is the SMA of the first period prices.
	if !ema[2].Valid || !almostEqual(ema[2].V, 2) {
		t.Errorf("seed: expected 2, got %+v", ema[2])
	}
	// multiplier = 2/(3+1) = 0.5
	if !almostEqual(ema[3].V, 3) {
		t.Errorf("ema[3]: expected 3, got %v", ema[3].V)
	}
	if !almostEqual(ema[4].V, 4) {
		t.Errorf("ema[4]: expected 4, got %v", ema[4].V)
	}
}

func TestCalculateEMA_ShortInput(t *testing.T) {
	ema := CalculateEMA([]float64{1, 2, 3}, 5)
	for i, v := range ema {
		if v.Valid {
			t.Errorf("ema[%d] should be undefined for input shorter than period", i)
		}
	}
}

func TestCalculateEMA_FlatSeries(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 42
	}
	ema := CalculateEMA(prices, 10)
	for i := 9; i < len(ema); i++ {
		if !ema[i].Valid || !almostEqual(ema[i].V, 42) {
			t.Fatalf("ema[%d]: expected 42, got %+v", i, ema[i])
		}
	}
}

func TestWilderSmooth_Recurrence(t *testing.T) {
	// Running averages up to the period, then s[i] = s[i-1] - s[i-1]/period + x.
	// Hand-computed: the smoothed series grows like a decayed sum, not a mean.
	data := []float64{1, 2, 3, 4, 5, 6}
	got := WilderSmooth(data, 3)
	want := []float64{1, 1.5, 2, 2 - 2.0/3 + 4, 0, 0}
	want[4] = want[3] - want[3]/3 + 5
	want[5] = want[4] - want[4]/3 + 6
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("wilder[%d]: expected %.6f, got %.6f", i, want[i], got[i])
		}
	}
	if got[5] < data[5] {
		t.Errorf("smoothed value should exceed the raw input once past the period, got %.4f", got[5])
	}
}

func TestWilderSmooth_Empty(t *testing.T) {
	if got := WilderSmooth(nil, 5); len(got) != 0 {
		t.Errorf("expected empty output, got %v", got)
	}
}

func TestDefinedValueHelpers(t *testing.T) {
	v := model.Defined(3.5)
	if !v.Valid || v.V != 3.5 {
		t.Errorf("Defined: got %+v", v)
	}
	var zero model.Value
	if zero.Or(7) != 7 {
		t.Error("Or should return the fallback for an undefined value")
	}
	if v.Or(7) != 3.5 {
		t.Error("Or should return the value when defined")
	}
}
