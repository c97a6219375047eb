package model

// Polarity marks whether a signal argues for, against, or neither.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
	PolarityNeutral  Polarity = "neutral"
)

// Signal is one line of the composite-score explanation. Order matters:
// downstream rendering shows signals in evaluation order.
type Signal struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Polarity    Polarity `json:"polarity"`
}

// CompositeScore is the weighted 0-100 summary of all indicator statuses.
type CompositeScore struct {
	Score           int      `json:"score"`
	FulfillmentRate int      `json:"fulfillmentRate"`
	Fulfilled       int      `json:"fulfilled"`
	Total           int      `json:"total"`
	Status          Status   `json:"status"`
	Signals         []Signal `json:"signals"`
}
