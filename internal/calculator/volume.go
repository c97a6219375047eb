package calculator

import "SignalSentinel/internal/model"

// AnalyzeVolume compares the latest volume against the trailing-window
// average. Ratio defaults to 1 when the average is zero so flat or missing
// volume never divides by zero.
func AnalyzeVolume(volumes []int64, window int) *model.VolumeResult {
	if len(volumes) == 0 {
		return &model.VolumeResult{Ratio: 1, Status: model.NewStatus(model.StatusNormal, "Normal")}
	}

	start := len(volumes) - window
	if start < 0 {
		start = 0
	}
	sum := int64(0)
	for _, v := range volumes[start:] {
		sum += v
	}
	avg := float64(sum) / float64(len(volumes)-start)

	current := volumes[len(volumes)-1]
	ratio := 1.0
	if avg > 0 {
		ratio = float64(current) / avg
	}

	status := model.NewStatus(model.StatusNormal, "Normal")
	if ratio > 1.5 {
		status = model.NewStatus(model.StatusIncrease, "Volume Increase")
	} else if ratio < 0.5 {
		status = model.NewStatus(model.StatusDecrease, "Volume Decrease")
	}

	return &model.VolumeResult{
		Current: current,
		Average: avg,
		Ratio:   ratio,
		Status:  status,
	}
}
