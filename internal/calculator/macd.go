package calculator

import "SignalSentinel/internal/model"

// CalculateMACD computes the MACD line, signal line, and histogram.
// The MACD line is EMA(fast) - EMA(slow), undefined where either operand
// is undefined. The signal line is an EMA over the compacted MACD line,
// mapped back onto the defined MACD positions so every output series stays
// aligned with the input prices.
func CalculateMACD(prices []float64, fast, slow, signal int) *model.MACDResult {
	n := len(prices)
	emaFast := CalculateEMA(prices, fast)
	emaSlow := CalculateEMA(prices, slow)

	macdLine := make([]model.Value, n)
	compact := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if emaFast[i].Valid && emaSlow[i].Valid {
			macdLine[i] = model.Defined(emaFast[i].V - emaSlow[i].V)
			compact = append(compact, macdLine[i].V)
		}
	}

	signalCompact := CalculateEMA(compact, signal)
	signalLine := make([]model.Value, n)
	k := 0
	for i := 0; i < n; i++ {
		if macdLine[i].Valid {
			signalLine[i] = signalCompact[k]
			k++
		}
	}

	histogram := make([]model.Value, n)
	for i := 0; i < n; i++ {
		if macdLine[i].Valid && signalLine[i].Valid {
			histogram[i] = model.Defined(macdLine[i].V - signalLine[i].V)
		}
	}

	result := &model.MACDResult{
		MACDLine:   macdLine,
		SignalLine: signalLine,
		Histogram:  histogram,
	}
	if n > 0 {
		result.Current = model.MACDSnapshot{
			MACD:      macdLine[n-1],
			Signal:    signalLine[n-1],
			Histogram: histogram[n-1],
		}
	}
	result.Status = macdStatus(result.Current, prevHistogram(histogram))
	return result
}

func prevHistogram(histogram []model.Value) model.Value {
	if len(histogram) < 2 {
		return model.Value{}
	}
	return histogram[len(histogram)-2]
}

// macdStatus classifies the MACD state from the latest two histogram values.
// A histogram sign flip marks momentum strengthening or weakening; otherwise
// the MACD line's side of the zero line decides.
func macdStatus(cur model.MACDSnapshot, prevHist model.Value) model.Status {
	if !cur.MACD.Valid || !cur.Signal.Valid {
		return model.NewStatus(model.StatusNeutral, "Neutral")
	}
	switch {
	case prevHist.Valid && prevHist.V <= 0 && cur.Histogram.Valid && cur.Histogram.V > 0:
		return model.NewStatus(model.StatusBullish, "Momentum Strengthening")
	case prevHist.Valid && prevHist.V >= 0 && cur.Histogram.Valid && cur.Histogram.V < 0:
		return model.NewStatus(model.StatusBearish, "Momentum Weakening")
	case cur.MACD.V > 0:
		return model.NewStatus(model.StatusBullish, "Above Zero (Bullish)")
	default:
		return model.NewStatus(model.StatusBearish, "Below Zero (Bearish)")
	}
}
