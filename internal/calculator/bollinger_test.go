package calculator

import (
	"testing"

	"SignalSentinel/internal/model"
)

func TestCalculateBollinger_ConstantSeries(t *testing.T) {
	prices := make([]float64, 25)
	for i := range prices {
		prices[i] = 50
	}
	result := CalculateBollinger(prices, 20, 2, 0.8, 20)

	cur := result.Current
	if !cur.Middle.Valid || cur.Middle.V != 50 {
		t.Errorf("middle: expected 50, got %+v", cur.Middle)
	}
	if cur.Upper.V != 50 || cur.Lower.V != 50 {
		t.Errorf("zero deviation should collapse the bands, got upper=%v lower=%v", cur.Upper.V, cur.Lower.V)
	}
	if !almostEqual(cur.PercentB.V, 0.5) {
		t.Errorf("zero band range should place %%B at 0.5, got %v", cur.PercentB.V)
	}
	if cur.Bandwidth.V != 0 {
		t.Errorf("expected zero bandwidth, got %v", cur.Bandwidth.V)
	}
	if result.IsSqueeze {
		t.Error("uniformly zero bandwidth is not a squeeze")
	}
	if result.Status.Type != model.StatusNormal {
		t.Errorf("expected normal status, got %s", result.Status.Type)
	}
}

func TestCalculateBollinger_Alignment(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	result := CalculateBollinger(prices, 20, 2, 0.8, 20)
	for _, s := range [][]model.Value{result.Upper, result.Middle, result.Lower, result.Bandwidth, result.PercentB} {
		if len(s) != 30 {
			t.Fatalf("series must stay aligned with the input, got len %d", len(s))
		}
		if s[18].Valid {
			t.Error("warm-up positions should be undefined")
		}
		if !s[19].Valid {
			t.Error("index period-1 should be the first defined value")
		}
	}
}

func TestCalculateBollinger_Squeeze(t *testing.T) {
	// Wide alternation, then a long flat stretch: the latest bandwidth
	// collapses well below the recent average.
	prices := make([]float64, 0, 65)
	for i := 0; i < 40; i++ {
		if i%2 == 0 {
			prices = append(prices, 60)
		} else {
			prices = append(prices, 40)
		}
	}
	for i := 0; i < 25; i++ {
		prices = append(prices, 50)
	}
	result := CalculateBollinger(prices, 20, 2, 0.8, 20)
	if !result.IsSqueeze {
		t.Fatal("expected a squeeze after volatility collapse")
	}
	if result.Status.Type != model.StatusSqueeze {
		t.Errorf("expected squeeze status, got %s", result.Status.Type)
	}
	if result.Status.Label != "Volatility Squeeze" {
		t.Errorf("unexpected label: %q", result.Status.Label)
	}
}

func TestCalculateBollinger_BreakoutAboveUpper(t *testing.T) {
	prices := make([]float64, 24)
	for i := range prices {
		prices[i] = 50
	}
	prices = append(prices, 80)
	result := CalculateBollinger(prices, 20, 2, 0.8, 20)
	if !result.Current.PercentB.Valid || result.Current.PercentB.V <= 1 {
		t.Fatalf("spike should push %%B above 1, got %+v", result.Current.PercentB)
	}
	if result.Status.Type != model.StatusOverbought {
		t.Errorf("expected overbought status, got %s", result.Status.Type)
	}
	if result.Status.Label != "Above Upper Band" {
		t.Errorf("unexpected label: %q", result.Status.Label)
	}
}

func TestCalculateBollinger_BreakoutBelowLower(t *testing.T) {
	prices := make([]float64, 24)
	for i := range prices {
		prices[i] = 50
	}
	prices = append(prices, 20)
	result := CalculateBollinger(prices, 20, 2, 0.8, 20)
	if !result.Current.PercentB.Valid || result.Current.PercentB.V >= 0 {
		t.Fatalf("drop should push %%B below 0, got %+v", result.Current.PercentB)
	}
	if result.Status.Type != model.StatusOversold {
		t.Errorf("expected oversold status, got %s", result.Status.Type)
	}
}

func TestCalculateBollinger_InsufficientHistory(t *testing.T) {
	result := CalculateBollinger([]float64{1, 2, 3}, 20, 2, 0.8, 20)
	if result.Current.Middle.Valid {
		t.Error("current middle should be undefined")
	}
	if result.IsSqueeze {
		t.Error("no squeeze without a defined bandwidth")
	}
	if result.Status.Type != model.StatusNormal {
		t.Errorf("expected normal status fallthrough, got %s", result.Status.Type)
	}
}
