package calculator

import (
	"testing"

	"SignalSentinel/internal/model"
)

func TestCalculateRSI_InsufficientHistory(t *testing.T) {
	prices := make([]float64, 14)
	for i := range prices {
		prices[i] = float64(i)
	}
	result := CalculateRSI(prices, 14)
	if len(result.Values) != 14 {
		t.Fatalf("expected aligned empty values, got len %d", len(result.Values))
	}
	for i, v := range result.Values {
		if v.Valid {
			t.Errorf("values[%d] should be undefined", i)
		}
	}
	if result.Current.Valid {
		t.Error("current should be undefined")
	}
	if result.Status.Type != model.StatusUnknown {
		t.Errorf("expected unknown status, got %s", result.Status.Type)
	}
}

func TestCalculateRSI_Alignment(t *testing.T) {
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = 100 + float64(i%5)
	}
	result := CalculateRSI(prices, 14)
	if len(result.Values) != 20 {
		t.Fatalf("expected 20 values, got %d", len(result.Values))
	}
	// The change series is one shorter than the prices, so the first
	// defined output sits one past the period.
	if result.Values[14].Valid {
		t.Error("values[14] should still be undefined")
	}
	if !result.Values[15].Valid {
		t.Error("values[15] should be the first defined RSI")
	}
	if !result.Values[19].Valid {
		t.Error("last value should be defined")
	}
}

func TestCalculateRSI_MonotonicIncrease(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = float64(i + 1)
	}
	result := CalculateRSI(prices, 14)
	if !result.Current.Valid || result.Current.V != 100 {
		t.Errorf("all-gain series should pin RSI at 100, got %+v", result.Current)
	}
	if result.Status.Type != model.StatusOverbought {
		t.Errorf("expected overbought status, got %s", result.Status.Type)
	}
	if result.Status.Label != "Overbought Zone" {
		t.Errorf("unexpected label: %q", result.Status.Label)
	}
}

func TestCalculateRSI_MonotonicDecrease(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = float64(100 - i)
	}
	result := CalculateRSI(prices, 14)
	if !result.Current.Valid || result.Current.V != 0 {
		t.Errorf("all-loss series should pin RSI at 0, got %+v", result.Current)
	}
	if result.Status.Type != model.StatusOversold {
		t.Errorf("expected oversold status, got %s", result.Status.Type)
	}
}

func TestCalculateRSI_Bounded(t *testing.T) {
	prices := []float64{44, 47, 45, 50, 48, 52, 49, 53, 51, 55, 52, 56, 54, 58, 55, 59, 57, 61, 58, 62}
	result := CalculateRSI(prices, 14)
	for i, v := range result.Values {
		if v.Valid && (v.V < 0 || v.V > 100) {
			t.Errorf("values[%d] out of range: %v", i, v.V)
		}
	}
	if !result.Current.Valid {
		t.Fatal("current should be defined")
	}
	if result.Current.V <= 50 {
		t.Errorf("uptrend should bias RSI above 50, got %.2f", result.Current.V)
	}
}
