package calculator

import "SignalSentinel/internal/model"

// CalculateRSI computes the Relative Strength Index over the given period.
// Requires at least period+1 prices; with less history it returns an
// empty result with an unknown status. The seed averages are simple means
// of the first period changes; later steps use the Wilder-style update
// avg = (avg*(period-1) + new) / period. RSI is 100 when the average loss
// is zero. Output is aligned 1:1 with the input prices.
func CalculateRSI(prices []float64, period int) *model.RSIResult {
	n := len(prices)
	if period <= 0 || n < period+1 {
		return &model.RSIResult{
			Values: make([]model.Value, n),
			Status: model.UnknownStatus(),
		}
	}

	gains := make([]float64, n-1)
	losses := make([]float64, n-1)
	for i := 1; i < n; i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			gains[i-1] = change
		} else {
			losses[i-1] = -change
		}
	}

	var avgGain, avgLoss float64
	for i := 0; i < period; i++ {
		avgGain += gains[i]
		avgLoss += losses[i]
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	// One extra leading undefined keeps the output aligned with the prices;
	// the change series is one shorter than the price series.
	values := make([]model.Value, n)
	for i := period; i < n-1; i++ {
		if i > period {
			avgGain = (avgGain*float64(period-1) + gains[i]) / float64(period)
			avgLoss = (avgLoss*float64(period-1) + losses[i]) / float64(period)
		}
		rsi := 100.0
		if avgLoss != 0 {
			rs := avgGain / avgLoss
			rsi = 100.0 - 100.0/(1.0+rs)
		}
		values[i+1] = model.Defined(rsi)
	}

	current := values[n-1]
	return &model.RSIResult{
		Values:  values,
		Current: current,
		Status:  rsiStatus(current),
	}
}

func rsiStatus(current model.Value) model.Status {
	if !current.Valid {
		return model.NewStatus(model.StatusNeutral, "Neutral")
	}
	switch {
	case current.V >= 70:
		return model.NewStatusValue(model.StatusOverbought, "Overbought Zone", current)
	case current.V <= 30:
		return model.NewStatusValue(model.StatusOversold, "Oversold Zone", current)
	case current.V > 50:
		return model.NewStatusValue(model.StatusBullish, "Bullish Bias", current)
	default:
		return model.NewStatusValue(model.StatusBearish, "Bearish Bias", current)
	}
}
