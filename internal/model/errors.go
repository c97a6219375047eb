package model

import (
	"errors"
	"fmt"
)

// ErrorKind identifies a category of analysis failure.
type ErrorKind string

const (
	// ErrKindInsufficientHistory means the whole candle series was too short
	// to compute anything meaningful. This is the one failure that aborts
	// the pipeline instead of degrading individual indicators.
	ErrKindInsufficientHistory ErrorKind = "insufficient_history"
)

// AnalysisError is a typed, serializable analysis failure.
type AnalysisError struct {
	Kind    ErrorKind `json:"error"`
	Message string    `json:"message"`
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewInsufficientHistoryError reports a candle series shorter than the
// pipeline minimum.
func NewInsufficientHistoryError(got, minimum int) *AnalysisError {
	return &AnalysisError{
		Kind:    ErrKindInsufficientHistory,
		Message: fmt.Sprintf("insufficient data: %d candles, minimum %d required", got, minimum),
	}
}

// AsAnalysisError unwraps err into an AnalysisError if it is one.
func AsAnalysisError(err error) (*AnalysisError, bool) {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
