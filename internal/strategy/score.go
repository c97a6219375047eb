package strategy

import (
	"fmt"
	"math"

	"SignalSentinel/internal/model"
)

// DefaultRecentCrossDays is how recent a cross must be to still move the
// composite score.
const DefaultRecentCrossDays = 30

// Score combines indicator statuses into a composite 0-100 signal score.
// Each indicator family present in the set contributes an independent,
// capped adjustment to the neutral baseline of 50 and counts once toward
// the fulfillment total. Signals are appended in evaluation order: MA
// position, recent cross, RSI, MACD, Bollinger, ADX. That order is part of
// the contract; downstream rendering depends on it.
func Score(set *model.IndicatorSet, recentCrossDays int) *model.CompositeScore {
	if recentCrossDays <= 0 {
		recentCrossDays = DefaultRecentCrossDays
	}

	score := 50
	fulfilled, total := 0, 0
	signals := []model.Signal{}

	// MA position and recent cross: one family, counted once.
	if mc := set.MACross; mc != nil {
		total++
		familyFulfilled := false
		if mc.CurrentPosition == model.PositionAbove {
			score += 10
			familyFulfilled = true
			signals = append(signals, model.Signal{
				Name: "MA Position", Description: "above long-term MA", Polarity: model.PolarityPositive,
			})
		} else {
			score -= 10
			signals = append(signals, model.Signal{
				Name: "MA Position", Description: "below long-term MA", Polarity: model.PolarityNegative,
			})
		}

		if mc.LastCross != nil && mc.DaysSinceCross < recentCrossDays {
			switch mc.LastCross.Type {
			case model.CrossGolden:
				score += 10
				familyFulfilled = true
				signals = append(signals, model.Signal{
					Name:        "Golden Cross",
					Description: fmt.Sprintf("%d days ago", mc.DaysSinceCross),
					Polarity:    model.PolarityPositive,
				})
			case model.CrossDead:
				score -= 10
				signals = append(signals, model.Signal{
					Name:        "Dead Cross",
					Description: fmt.Sprintf("%d days ago", mc.DaysSinceCross),
					Polarity:    model.PolarityNegative,
				})
			}
		}
		if familyFulfilled {
			fulfilled++
		}
	}

	if rsi := set.RSI; rsi != nil {
		total++
		if rsi.Current.Valid {
			v := rsi.Current.V
			switch {
			case v <= 30:
				score += 5
				fulfilled++
				signals = append(signals, model.Signal{
					Name: "RSI", Description: fmt.Sprintf("%.1f (oversold)", v), Polarity: model.PolarityPositive,
				})
			case v >= 70:
				score -= 5
				signals = append(signals, model.Signal{
					Name: "RSI", Description: fmt.Sprintf("%.1f (overbought)", v), Polarity: model.PolarityNegative,
				})
			case v > 50:
				score += 3
				fulfilled++
				signals = append(signals, model.Signal{
					Name: "RSI", Description: fmt.Sprintf("%.1f (bullish bias)", v), Polarity: model.PolarityPositive,
				})
			default:
				score -= 3
				signals = append(signals, model.Signal{
					Name: "RSI", Description: fmt.Sprintf("%.1f (bearish bias)", v), Polarity: model.PolarityNegative,
				})
			}
		}
	}

	if macd := set.MACD; macd != nil {
		total++
		switch macd.Status.Type {
		case model.StatusBullish:
			score += 10
			fulfilled++
			signals = append(signals, model.Signal{
				Name: "MACD", Description: macd.Status.Label, Polarity: model.PolarityPositive,
			})
		case model.StatusBearish:
			score -= 10
			signals = append(signals, model.Signal{
				Name: "MACD", Description: macd.Status.Label, Polarity: model.PolarityNegative,
			})
		}
	}

	if boll := set.Bollinger; boll != nil {
		total++
		switch {
		case boll.Status.Type == model.StatusOversold:
			score += 5
			fulfilled++
			signals = append(signals, model.Signal{
				Name: "Bollinger", Description: "below lower band (rebound possible)", Polarity: model.PolarityPositive,
			})
		case boll.Status.Type == model.StatusOverbought:
			score -= 5
			signals = append(signals, model.Signal{
				Name: "Bollinger", Description: "above upper band (pullback possible)", Polarity: model.PolarityNegative,
			})
		case boll.IsSqueeze:
			signals = append(signals, model.Signal{
				Name: "Bollinger", Description: "squeeze (volatility contraction)", Polarity: model.PolarityNeutral,
			})
		}
	}

	if adx := set.ADX; adx != nil {
		total++
		switch adx.Status.Type {
		case model.StatusStrong:
			score += 5
			fulfilled++
			signals = append(signals, model.Signal{
				Name:        "ADX",
				Description: fmt.Sprintf("%.1f (strong trend)", adx.Current.Or(0)),
				Polarity:    model.PolarityPositive,
			})
		case model.StatusWeak:
			signals = append(signals, model.Signal{
				Name:        "ADX",
				Description: fmt.Sprintf("%.1f (ranging)", adx.Current.Or(0)),
				Polarity:    model.PolarityNeutral,
			})
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	rate := 0
	if total > 0 {
		rate = int(math.Round(float64(fulfilled) / float64(total) * 100))
	}

	return &model.CompositeScore{
		Score:           score,
		FulfillmentRate: rate,
		Fulfilled:       fulfilled,
		Total:           total,
		Status:          scoreStatus(score),
		Signals:         signals,
	}
}

// scoreStatus maps the clamped score to its outlook label.
func scoreStatus(score int) model.Status {
	switch {
	case score >= 75:
		return model.NewStatus(model.StatusBullish, "Favorable")
	case score >= 60:
		return model.NewStatus(model.StatusPositive, "Positive")
	case score <= 25:
		return model.NewStatus(model.StatusBearish, "Warning")
	case score <= 40:
		return model.NewStatus(model.StatusNegative, "Caution")
	default:
		return model.NewStatus(model.StatusNeutral, "Observe")
	}
}
