package collector

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"SignalSentinel/internal/model"
)

// FileFetcher implements Fetcher over previously collected candle files.
// Each symbol lives in <dir>/<symbol>.json, either as a bare array of
// candles or as an object with a "candles" field.
type FileFetcher struct {
	Dir string
}

// NewFileFetcher creates a fetcher reading candle JSON files from dir.
func NewFileFetcher(dir string) *FileFetcher {
	return &FileFetcher{Dir: dir}
}

func (f *FileFetcher) Name() string { return "file" }

type candleDocument struct {
	Candles []model.Candle `json:"candles"`
}

// FetchDailyCandles reads the symbol's candle file and returns the most
// recent days entries in ascending date order.
func (f *FileFetcher) FetchDailyCandles(symbol string, days int) ([]model.Candle, error) {
	path := filepath.Join(f.Dir, symbol+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candle file: %w", err)
	}

	var candles []model.Candle
	if err := json.Unmarshal(data, &candles); err != nil {
		var doc candleDocument
		if docErr := json.Unmarshal(data, &doc); docErr != nil {
			return nil, fmt.Errorf("decode candle file %s: %w", path, err)
		}
		candles = doc.Candles
	}

	sort.Slice(candles, func(i, j int) bool { return candles[i].Date < candles[j].Date })
	if len(candles) > days {
		candles = candles[len(candles)-days:]
	}
	return candles, nil
}
