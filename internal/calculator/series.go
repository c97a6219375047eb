package calculator

import "SignalSentinel/internal/model"

// CalculateSMA computes the simple moving average of the given prices.
// The output is aligned 1:1 with the input; positions before the warm-up
// period are undefined. Uses a sliding window sum, O(n).
func CalculateSMA(prices []float64, period int) []model.Value {
	result := make([]model.Value, len(prices))
	if period <= 0 {
		return result
	}
	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= period {
			sum -= prices[i-period]
		}
		if i >= period-1 {
			result[i] = model.Defined(sum / float64(period))
		}
	}
	return result
}

// CalculateEMA computes the exponential moving average of the given prices.
// The seed value at index period-1 is the SMA of the first period prices;
// the multiplier is 2/(period+1). If the input is shorter than the period,
// every position is undefined.
func CalculateEMA(prices []float64, period int) []model.Value {
	result := make([]model.Value, len(prices))
	if period <= 0 || len(prices) < period {
		return result
	}

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += prices[i]
	}
	seed /= float64(period)
	result[period-1] = model.Defined(seed)

	multiplier := 2.0 / float64(period+1)
	prev := seed
	for i := period; i < len(prices); i++ {
		ema := (prices[i]-prev)*multiplier + prev
		result[i] = model.Defined(ema)
		prev = ema
	}
	return result
}

// WilderSmooth applies Wilder's smoothing to the data. For i < period the
// output is the running average of data[0..i]; afterwards it follows
// s[i] = s[i-1] - s[i-1]/period + data[i]. This is not an EMA; ADX and ATR
// depend on this exact recurrence.
func WilderSmooth(data []float64, period int) []float64 {
	result := make([]float64, len(data))
	total := 0.0
	for i, v := range data {
		if i < period {
			total += v
			result[i] = total / float64(i+1)
		} else {
			result[i] = result[i-1] - result[i-1]/float64(period) + v
		}
	}
	return result
}
