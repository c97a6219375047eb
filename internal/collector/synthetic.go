package collector

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"SignalSentinel/internal/model"
)

// SyntheticFetcher fabricates plausible candle series for demos and tests.
// It is a fixture generator, nothing more: it never participates in the
// indicator math, and real deployments should configure a real provider.
type SyntheticFetcher struct {
	BasePrice float64
	Seed      int64
}

// NewSyntheticFetcher creates a generator around the given base price.
// The seed keeps runs reproducible; the symbol is mixed in so different
// symbols get different but stable series.
func NewSyntheticFetcher(basePrice float64, seed int64) *SyntheticFetcher {
	if basePrice <= 0 {
		basePrice = 100
	}
	return &SyntheticFetcher{BasePrice: basePrice, Seed: seed}
}

func (f *SyntheticFetcher) Name() string { return "synthetic" }

// FetchDailyCandles generates a random-walk candle series ending today.
func (f *SyntheticFetcher) FetchDailyCandles(symbol string, days int) ([]model.Candle, error) {
	if days <= 0 {
		return nil, fmt.Errorf("synthetic: days must be positive, got %d", days)
	}

	h := fnv.New64a()
	h.Write([]byte(symbol))
	rng := rand.New(rand.NewSource(f.Seed ^ int64(h.Sum64())))

	candles := make([]model.Candle, days)
	price := f.BasePrice
	start := time.Now().AddDate(0, 0, -days)
	for i := 0; i < days; i++ {
		drift := (rng.Float64() - 0.48) * 0.02 // slight upward bias
		price *= 1 + drift
		span := price * (0.002 + rng.Float64()*0.01)
		open := price * (1 + (rng.Float64()-0.5)*0.004)
		high := maxf(open, price) + span
		low := minf(open, price) - span
		candles[i] = model.Candle{
			Date:   start.AddDate(0, 0, i+1).Format("2006-01-02"),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  price,
			Volume: 500000 + rng.Int63n(1500000),
		}
	}
	return candles, nil
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
