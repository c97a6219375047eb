package collector

import (
	"fmt"
	"log"
	"sync"

	"SignalSentinel/internal/analyzer"
	"SignalSentinel/internal/model"
)

// Result is the outcome of one instrument's collection and analysis.
// Exactly one of Analysis and Err is set.
type Result struct {
	Symbol   string
	Analysis *model.Analysis
	Err      error
}

// Collector fetches candle history and runs the indicator pipeline over a
// universe of instruments.
type Collector struct {
	Fetcher     Fetcher
	Analyzer    *analyzer.Analyzer
	HistoryDays int
}

// NewCollector creates a Collector. historyDays controls how much history
// is requested from the provider; the long MA needs the most.
func NewCollector(fetcher Fetcher, a *analyzer.Analyzer, historyDays int) *Collector {
	if historyDays <= 0 {
		historyDays = 300
	}
	return &Collector{Fetcher: fetcher, Analyzer: a, HistoryDays: historyDays}
}

// CollectOne fetches and analyzes a single instrument.
func (c *Collector) CollectOne(symbol string) Result {
	candles, err := c.Fetcher.FetchDailyCandles(symbol, c.HistoryDays)
	if err != nil {
		return Result{Symbol: symbol, Err: fmt.Errorf("fetch %s: %w", symbol, err)}
	}
	a, err := c.Analyzer.Analyze(candles)
	if err != nil {
		return Result{Symbol: symbol, Err: err}
	}
	return Result{Symbol: symbol, Analysis: a}
}

// CollectAll processes every symbol, one goroutine per instrument. Each
// computation only reads its own input and writes its own slot, so no
// locking is needed.
func (c *Collector) CollectAll(symbols []string) []Result {
	results := make([]Result, len(symbols))
	var wg sync.WaitGroup
	for i, symbol := range symbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			results[i] = c.CollectOne(symbol)
		}(i, symbol)
	}
	wg.Wait()

	for _, r := range results {
		if r.Err != nil {
			log.Printf("[WARN] collect %s: %v", r.Symbol, r.Err)
		}
	}
	return results
}
