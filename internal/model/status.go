package model

// StatusType is the machine-readable classification of an indicator reading.
type StatusType string

const (
	StatusUnknown    StatusType = "unknown"
	StatusNeutral    StatusType = "neutral"
	StatusBullish    StatusType = "bullish"
	StatusBearish    StatusType = "bearish"
	StatusOverbought StatusType = "overbought"
	StatusOversold   StatusType = "oversold"
	StatusSqueeze    StatusType = "squeeze"
	StatusNormal     StatusType = "normal"
	StatusElevated   StatusType = "elevated"
	StatusLow        StatusType = "low"
	StatusHigh       StatusType = "high"
	StatusStrong     StatusType = "strong"
	StatusModerate   StatusType = "moderate"
	StatusWeak       StatusType = "weak"
	StatusPositive   StatusType = "positive"
	StatusNegative   StatusType = "negative"
	StatusIncrease   StatusType = "increase"
	StatusDecrease   StatusType = "decrease"
)

// Status classifies the latest reading of an indicator.
type Status struct {
	Type  StatusType `json:"type"`
	Label string     `json:"label"`
	Value Value      `json:"value"`
}

// NewStatus builds a status without a numeric reading.
func NewStatus(t StatusType, label string) Status {
	return Status{Type: t, Label: label}
}

// NewStatusValue builds a status carrying the numeric reading it was derived from.
func NewStatusValue(t StatusType, label string, v Value) Status {
	return Status{Type: t, Label: label, Value: v}
}

// UnknownStatus is the classification used when an indicator could not be
// computed from the available history.
func UnknownStatus() Status {
	return NewStatus(StatusUnknown, "Insufficient Data")
}
