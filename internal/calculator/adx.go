package calculator

import "SignalSentinel/internal/model"

// trueRanges returns the per-bar true range series, one entry per bar from
// index 1 onward (the first bar has no previous close).
func trueRanges(candles []model.Candle) []float64 {
	if len(candles) < 2 {
		return nil
	}
	tr := make([]float64, len(candles)-1)
	for i := 1; i < len(candles); i++ {
		hl := candles[i].High - candles[i].Low
		hc := abs(candles[i].High - candles[i-1].Close)
		lc := abs(candles[i].Low - candles[i-1].Close)
		tr[i-1] = max3(hl, hc, lc)
	}
	return tr
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// alignToCandles re-expands a series derived from bar-to-bar differences
// (length n-1) back to candle alignment by prepending one undefined slot.
func alignToCandles(data []float64, n int) []model.Value {
	values := make([]model.Value, n)
	for i, v := range data {
		values[i+1] = model.Defined(v)
	}
	return values
}

// CalculateADX computes the Average Directional Index with +DI and -DI.
// Requires at least 2*period candles; with less history it returns an
// empty result with an unknown status. True range and directional movement
// are smoothed with Wilder's recurrence, DX is derived from the DI spread,
// and ADX is the Wilder-smoothed DX.
func CalculateADX(candles []model.Candle, period int) *model.ADXResult {
	n := len(candles)
	if period <= 0 || n < period*2 {
		return &model.ADXResult{
			Values:  make([]model.Value, n),
			PlusDI:  make([]model.Value, n),
			MinusDI: make([]model.Value, n),
			Status:  model.UnknownStatus(),
		}
	}

	tr := trueRanges(candles)
	plusDM := make([]float64, n-1)
	minusDM := make([]float64, n-1)
	for i := 1; i < n; i++ {
		upMove := candles[i].High - candles[i-1].High
		downMove := candles[i-1].Low - candles[i].Low
		if upMove > downMove && upMove > 0 {
			plusDM[i-1] = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM[i-1] = downMove
		}
	}

	smoothTR := WilderSmooth(tr, period)
	smoothPlusDM := WilderSmooth(plusDM, period)
	smoothMinusDM := WilderSmooth(minusDM, period)

	plusDI := make([]float64, len(smoothTR))
	minusDI := make([]float64, len(smoothTR))
	dx := make([]float64, len(smoothTR))
	for i := range smoothTR {
		if smoothTR[i] != 0 {
			plusDI[i] = smoothPlusDM[i] / smoothTR[i] * 100
			minusDI[i] = smoothMinusDM[i] / smoothTR[i] * 100
		}
		if diSum := plusDI[i] + minusDI[i]; diSum != 0 {
			dx[i] = abs(plusDI[i]-minusDI[i]) / diSum * 100
		}
	}

	adx := WilderSmooth(dx, period)
	values := alignToCandles(adx, n)
	current := values[n-1]

	return &model.ADXResult{
		Values:  values,
		PlusDI:  alignToCandles(plusDI, n),
		MinusDI: alignToCandles(minusDI, n),
		Current: current,
		Status:  adxStatus(current),
	}
}

func adxStatus(current model.Value) model.Status {
	switch {
	case current.Valid && current.V >= 25:
		return model.NewStatusValue(model.StatusStrong, "Strong Trend", current)
	case current.Valid && current.V >= 20:
		return model.NewStatusValue(model.StatusModerate, "Developing Trend", current)
	default:
		return model.NewStatusValue(model.StatusWeak, "Ranging (Weak Trend)", current)
	}
}
