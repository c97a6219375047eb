package calculator

import (
	"math"

	"SignalSentinel/internal/model"
)

// CalculateBollinger computes Bollinger Bands: middle = SMA(period), upper
// and lower = middle +/- stdDevMult * sigma, where sigma is the population
// standard deviation of the trailing window. Bandwidth is the band range as
// a percentage of the middle; %B places the price inside the band range and
// defaults to 0.5 when the range is zero. The squeeze flag fires when the
// latest bandwidth is below squeezeRatio times the mean of the last
// squeezeLookback defined bandwidth values.
func CalculateBollinger(prices []float64, period int, stdDevMult, squeezeRatio float64, squeezeLookback int) *model.BollingerResult {
	n := len(prices)
	middle := CalculateSMA(prices, period)
	upper := make([]model.Value, n)
	lower := make([]model.Value, n)
	bandwidth := make([]model.Value, n)
	percentB := make([]model.Value, n)

	for i := 0; i < n; i++ {
		if !middle[i].Valid {
			continue
		}
		mean := middle[i].V
		variance := 0.0
		for j := i - period + 1; j <= i; j++ {
			d := prices[j] - mean
			variance += d * d
		}
		variance /= float64(period)
		sigma := math.Sqrt(variance)

		up := mean + stdDevMult*sigma
		lo := mean - stdDevMult*sigma
		upper[i] = model.Defined(up)
		lower[i] = model.Defined(lo)

		bw := 0.0
		if mean != 0 {
			bw = (up - lo) / mean * 100
		}
		bandwidth[i] = model.Defined(bw)

		pb := 0.5
		if bandRange := up - lo; bandRange != 0 {
			pb = (prices[i] - lo) / bandRange
		}
		percentB[i] = model.Defined(pb)
	}

	result := &model.BollingerResult{
		Upper:     upper,
		Middle:    middle,
		Lower:     lower,
		Bandwidth: bandwidth,
		PercentB:  percentB,
	}
	if n > 0 {
		result.Current = model.BollingerSnapshot{
			Upper:     upper[n-1],
			Middle:    middle[n-1],
			Lower:     lower[n-1],
			PercentB:  percentB[n-1],
			Bandwidth: bandwidth[n-1],
		}
	}
	result.IsSqueeze = isSqueeze(bandwidth, squeezeRatio, squeezeLookback)
	result.Status = bollingerStatus(result.Current.PercentB, result.IsSqueeze)
	return result
}

func isSqueeze(bandwidth []model.Value, ratio float64, lookback int) bool {
	n := len(bandwidth)
	if n == 0 || !bandwidth[n-1].Valid {
		return false
	}
	start := n - lookback
	if start < 0 {
		start = 0
	}
	sum, count := 0.0, 0
	for _, bw := range bandwidth[start:] {
		if bw.Valid {
			sum += bw.V
			count++
		}
	}
	if count == 0 {
		return false
	}
	return bandwidth[n-1].V < sum/float64(count)*ratio
}

// bollingerStatus applies the priority chain: squeeze, band breakouts, band
// proximity, then normal. First match wins.
func bollingerStatus(pb model.Value, squeeze bool) model.Status {
	switch {
	case squeeze:
		return model.NewStatus(model.StatusSqueeze, "Volatility Squeeze")
	case pb.Valid && pb.V > 1:
		return model.NewStatus(model.StatusOverbought, "Above Upper Band")
	case pb.Valid && pb.V < 0:
		return model.NewStatus(model.StatusOversold, "Below Lower Band")
	case pb.Valid && pb.V > 0.8:
		return model.NewStatus(model.StatusElevated, "Near Upper Band")
	case pb.Valid && pb.V < 0.2:
		return model.NewStatus(model.StatusLow, "Near Lower Band")
	default:
		return model.NewStatus(model.StatusNormal, "Normal")
	}
}
