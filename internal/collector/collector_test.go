package collector

import (
	"errors"
	"testing"

	"SignalSentinel/internal/analyzer"
	"SignalSentinel/internal/model"
)

type stubFetcher struct {
	candles map[string][]model.Candle
	err     error
}

func (s *stubFetcher) Name() string { return "stub" }

func (s *stubFetcher) FetchDailyCandles(symbol string, days int) ([]model.Candle, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.candles[symbol], nil
}

func TestCollectOne_FetchError(t *testing.T) {
	c := NewCollector(&stubFetcher{err: errors.New("network down")}, analyzer.New(analyzer.Params{}), 300)
	result := c.CollectOne("SPX500")
	if result.Err == nil {
		t.Fatal("expected a fetch error")
	}
	if result.Analysis != nil {
		t.Error("no analysis should be attached to a failed result")
	}
	if result.Symbol != "SPX500" {
		t.Errorf("result must carry its symbol, got %q", result.Symbol)
	}
}

func TestCollectOne_InsufficientHistory(t *testing.T) {
	few := make([]model.Candle, 5)
	for i := range few {
		few[i] = model.Candle{Date: "2026-01-01", Close: 100, High: 101, Low: 99, Volume: 1000}
	}
	c := NewCollector(&stubFetcher{candles: map[string][]model.Candle{"THIN": few}}, analyzer.New(analyzer.Params{}), 300)
	result := c.CollectOne("THIN")
	ae, ok := model.AsAnalysisError(result.Err)
	if !ok {
		t.Fatalf("expected a typed analysis error, got %v", result.Err)
	}
	if ae.Kind != model.ErrKindInsufficientHistory {
		t.Errorf("expected insufficient_history, got %s", ae.Kind)
	}
}

func TestCollectOne_Success(t *testing.T) {
	c := NewCollector(NewSyntheticFetcher(100, 7), analyzer.New(analyzer.Params{}), 300)
	result := c.CollectOne("SPX500")
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Analysis == nil || result.Analysis.SignalScore == nil {
		t.Fatal("expected a full analysis with a composite score")
	}
}

func TestCollectAll_MixedOutcomes(t *testing.T) {
	good := NewSyntheticFetcher(100, 7)
	okCandles, err := good.FetchDailyCandles("OK", 300)
	if err != nil {
		t.Fatal(err)
	}
	fetcher := &stubFetcher{candles: map[string][]model.Candle{
		"OK":   okCandles,
		"THIN": okCandles[:10],
	}}
	c := NewCollector(fetcher, analyzer.New(analyzer.Params{}), 300)

	results := c.CollectAll([]string{"OK", "THIN", "MISSING"})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	// Results keep the input order regardless of goroutine scheduling.
	if results[0].Symbol != "OK" || results[1].Symbol != "THIN" || results[2].Symbol != "MISSING" {
		t.Errorf("results out of order: %s %s %s", results[0].Symbol, results[1].Symbol, results[2].Symbol)
	}
	if results[0].Err != nil {
		t.Errorf("OK should succeed, got %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Error("THIN should fail with insufficient history")
	}
	if results[2].Err == nil {
		t.Error("MISSING should fail with insufficient history")
	}
}

func TestNewCollector_DefaultHistoryDays(t *testing.T) {
	c := NewCollector(&stubFetcher{}, analyzer.New(analyzer.Params{}), 0)
	if c.HistoryDays != 300 {
		t.Errorf("expected default 300, got %d", c.HistoryDays)
	}
}

func TestSyntheticFetcher_Reproducible(t *testing.T) {
	f := NewSyntheticFetcher(100, 42)
	a, err := f.FetchDailyCandles("SPX500", 50)
	if err != nil {
		t.Fatal(err)
	}
	b, err := f.FetchDailyCandles("SPX500", 50)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i].Close != b[i].Close || a[i].Volume != b[i].Volume {
			t.Fatalf("runs diverged at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
	other, err := f.FetchDailyCandles("NDX100", 50)
	if err != nil {
		t.Fatal(err)
	}
	if other[49].Close == a[49].Close {
		t.Error("different symbols should produce different series")
	}
}
