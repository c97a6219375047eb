package model

import "time"

// CrossType distinguishes golden from dead crosses.
type CrossType string

const (
	CrossGolden CrossType = "golden"
	CrossDead   CrossType = "dead"
)

// Position describes where the short MA sits relative to the long MA.
type Position string

const (
	PositionAbove Position = "above"
	PositionBelow Position = "below"
)

// CrossEvent marks an index in the aligned series where the short MA
// crossed the long MA.
type CrossEvent struct {
	Type  CrossType `json:"type"`
	Label string    `json:"label"`
	Index int       `json:"index"`
}

// MACrossResult holds the full cross-detection state for one MA pair.
type MACrossResult struct {
	Crosses         []CrossEvent `json:"crosses"`
	LastCross       *CrossEvent  `json:"lastCross"`
	DaysSinceCross  int          `json:"daysSinceCross"`
	DaysAboveLong   int          `json:"daysAboveLong"`
	DaysBelowLong   int          `json:"daysBelowLong"`
	CurrentPosition Position     `json:"currentPosition"`
}

// MACDSnapshot is the latest MACD reading.
type MACDSnapshot struct {
	MACD      Value `json:"macd"`
	Signal    Value `json:"signal"`
	Histogram Value `json:"histogram"`
}

// MACDResult holds the MACD line, signal line, and histogram, all aligned
// with the input price series.
type MACDResult struct {
	MACDLine   []Value      `json:"macdLine"`
	SignalLine []Value      `json:"signalLine"`
	Histogram  []Value      `json:"histogram"`
	Current    MACDSnapshot `json:"current"`
	Status     Status       `json:"status"`
}

// RSIResult holds the RSI series aligned with the input price series.
type RSIResult struct {
	Values  []Value `json:"values"`
	Current Value   `json:"current"`
	Status  Status  `json:"status"`
}

// BollingerSnapshot is the latest Bollinger Band reading.
type BollingerSnapshot struct {
	Upper     Value `json:"upper"`
	Middle    Value `json:"middle"`
	Lower     Value `json:"lower"`
	PercentB  Value `json:"percentB"`
	Bandwidth Value `json:"bandwidth"`
}

// BollingerResult holds the band series aligned with the input price series.
type BollingerResult struct {
	Upper     []Value           `json:"upper"`
	Middle    []Value           `json:"middle"`
	Lower     []Value           `json:"lower"`
	Bandwidth []Value           `json:"bandwidth"`
	PercentB  []Value           `json:"percentB"`
	Current   BollingerSnapshot `json:"current"`
	IsSqueeze bool              `json:"isSqueeze"`
	Status    Status            `json:"status"`
}

// ADXResult holds the ADX and directional-indicator series aligned with the
// input candle series.
type ADXResult struct {
	Values  []Value `json:"values"`
	PlusDI  []Value `json:"plusDI"`
	MinusDI []Value `json:"minusDI"`
	Current Value   `json:"current"`
	Status  Status  `json:"status"`
}

// ATRResult holds the ATR series aligned with the input candle series.
type ATRResult struct {
	Values  []Value `json:"values"`
	Current Value   `json:"current"`
	Percent Value   `json:"percent"`
	Status  Status  `json:"status"`
}

// VolumeResult compares the latest volume against its trailing average.
type VolumeResult struct {
	Current int64   `json:"current"`
	Average float64 `json:"avg20"`
	Ratio   float64 `json:"ratio"`
	Status  Status  `json:"status"`
}

// IndicatorSet groups all indicator results for one instrument.
type IndicatorSet struct {
	MACross   *MACrossResult   `json:"maCross"`
	RSI       *RSIResult       `json:"rsi"`
	MACD      *MACDResult      `json:"macd"`
	Bollinger *BollingerResult `json:"bollinger"`
	ADX       *ADXResult       `json:"adx"`
	ATR       *ATRResult       `json:"atr"`
	Volume    *VolumeResult    `json:"volume"`
}

// Analysis is the full per-instrument result tree.
type Analysis struct {
	IndicatorSet
	SignalScore *CompositeScore `json:"signalScore"`
	LastUpdate  time.Time       `json:"lastUpdate"`
}
