package recorder

import "SignalSentinel/internal/model"

// NoopRecorder discards everything. Used when no database is configured.
type NoopRecorder struct{}

// NewNoopRecorder creates a recorder that drops all records.
func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (*NoopRecorder) RecordSignals(string, *model.Analysis) error { return nil }
func (*NoopRecorder) Close() error                                { return nil }
