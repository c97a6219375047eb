package collector

import "SignalSentinel/internal/model"

// Fetcher is the opaque upstream provider of raw daily candle series.
// Implementations must return candles in ascending date order with no
// duplicate dates; the pipeline does not re-sort.
type Fetcher interface {
	FetchDailyCandles(symbol string, days int) ([]model.Candle, error)
	Name() string
}
