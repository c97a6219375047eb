package calculator

import "SignalSentinel/internal/model"

// DetectCross scans two aligned MA series for golden and dead crosses.
// A golden cross fires when the short MA was at or below the long MA and
// moves strictly above it; a dead cross is the mirror. Indexes where either
// series is undefined at i or i-1 are skipped entirely: no event, no counter
// reset. DaysSinceCross counts valid comparisons since the last cross.
func DetectCross(short, long []model.Value) *model.MACrossResult {
	result := &model.MACrossResult{
		Crosses:         []model.CrossEvent{},
		CurrentPosition: model.PositionBelow,
	}

	n := len(short)
	if len(long) < n {
		n = len(long)
	}

	for i := 1; i < n; i++ {
		if !short[i].Valid || !long[i].Valid || !short[i-1].Valid || !long[i-1].Valid {
			continue
		}

		wasAtOrBelow := short[i-1].V <= long[i-1].V
		wasAtOrAbove := short[i-1].V >= long[i-1].V
		isAbove := short[i].V > long[i].V
		isBelow := short[i].V < long[i].V

		switch {
		case wasAtOrBelow && isAbove:
			ev := model.CrossEvent{Type: model.CrossGolden, Label: "Bullish (Golden Cross)", Index: i}
			result.Crosses = append(result.Crosses, ev)
			result.LastCross = &result.Crosses[len(result.Crosses)-1]
			result.DaysSinceCross = 0
		case wasAtOrAbove && isBelow:
			ev := model.CrossEvent{Type: model.CrossDead, Label: "Bearish (Dead Cross)", Index: i}
			result.Crosses = append(result.Crosses, ev)
			result.LastCross = &result.Crosses[len(result.Crosses)-1]
			result.DaysSinceCross = 0
		default:
			result.DaysSinceCross++
		}

		if isAbove {
			result.DaysAboveLong++
			result.DaysBelowLong = 0
		} else {
			result.DaysBelowLong++
			result.DaysAboveLong = 0
		}
	}

	if n > 0 && short[n-1].Valid && long[n-1].Valid && short[n-1].V > long[n-1].V {
		result.CurrentPosition = model.PositionAbove
	}
	return result
}
