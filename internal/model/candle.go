package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Candle represents a single daily price bar.
type Candle struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// Closes extracts the close prices from a candle series.
func Closes(candles []Candle) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	return closes
}

// Volumes extracts the volumes from a candle series.
func Volumes(candles []Candle) []int64 {
	volumes := make([]int64, len(candles))
	for i, c := range candles {
		volumes[i] = c.Volume
	}
	return volumes
}

// Value is an optional float64. Indicator series use the zero Value to mark
// warm-up positions as undefined. NaN is never used: the cross detector
// relies on ordinary ordering comparisons.
type Value struct {
	V     float64
	Valid bool
}

// Defined wraps a float64 in a valid Value.
func Defined(v float64) Value {
	return Value{V: v, Valid: true}
}

// Or returns the value if defined, otherwise the fallback.
func (v Value) Or(fallback float64) float64 {
	if v.Valid {
		return v.V
	}
	return fallback
}

var nullJSON = []byte("null")

// MarshalJSON encodes the value as a number, or null when undefined.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return nullJSON, nil
	}
	return json.Marshal(v.V)
}

// UnmarshalJSON decodes a number or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullJSON) {
		*v = Value{}
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*v = Defined(f)
	return nil
}
