package recorder

import "SignalSentinel/internal/model"

// Recorder persists signal history for later analysis (e.g. Grafana on top
// of the SQLite file).
type Recorder interface {
	// RecordSignals stores one instrument's analysis from a batch run.
	RecordSignals(symbol string, a *model.Analysis) error
	Close() error
}
