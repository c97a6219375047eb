package calculator

import "SignalSentinel/internal/model"

// CalculateATR computes the Average True Range: Wilder-smoothed true range.
// Requires more than period candles; with less history it returns an empty
// result with an unknown status. Percent relates the latest ATR to the
// latest close.
func CalculateATR(candles []model.Candle, period int) *model.ATRResult {
	n := len(candles)
	if period <= 0 || n < period+1 {
		return &model.ATRResult{
			Values: make([]model.Value, n),
			Status: model.UnknownStatus(),
		}
	}

	atr := WilderSmooth(trueRanges(candles), period)
	values := alignToCandles(atr, n)
	current := values[n-1]

	var percent model.Value
	if lastClose := candles[n-1].Close; current.Valid && lastClose != 0 {
		percent = model.Defined(current.V / lastClose * 100)
	}

	return &model.ATRResult{
		Values:  values,
		Current: current,
		Percent: percent,
		Status:  atrStatus(percent),
	}
}

func atrStatus(percent model.Value) model.Status {
	switch {
	case percent.Valid && percent.V > 3:
		return model.NewStatusValue(model.StatusHigh, "High Volatility", percent)
	case percent.Valid && percent.V < 1.5:
		return model.NewStatusValue(model.StatusLow, "Low Volatility", percent)
	default:
		return model.NewStatusValue(model.StatusNormal, "Normal Volatility", percent)
	}
}
