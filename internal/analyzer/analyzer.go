package analyzer

import (
	"time"

	"SignalSentinel/internal/calculator"
	"SignalSentinel/internal/model"
	"SignalSentinel/internal/strategy"
)

// Params holds every policy constant of the pipeline. The defaults are
// compatibility-critical; change them only deliberately.
type Params struct {
	ShortMAPeriod   int     `yaml:"short_ma_period"`
	LongMAPeriod    int     `yaml:"long_ma_period"`
	MACDFast        int     `yaml:"macd_fast"`
	MACDSlow        int     `yaml:"macd_slow"`
	MACDSignal      int     `yaml:"macd_signal"`
	RSIPeriod       int     `yaml:"rsi_period"`
	BollingerPeriod int     `yaml:"bollinger_period"`
	BollingerStdDev float64 `yaml:"bollinger_std_dev"`
	SqueezeRatio    float64 `yaml:"squeeze_ratio"`
	SqueezeLookback int     `yaml:"squeeze_lookback"`
	ADXPeriod       int     `yaml:"adx_period"`
	ATRPeriod       int     `yaml:"atr_period"`
	VolumeWindow    int     `yaml:"volume_window"`
	MinHistory      int     `yaml:"min_history"`
	RecentCrossDays int     `yaml:"recent_cross_days"`
}

// DefaultParams returns the documented default parameter set.
func DefaultParams() Params {
	return Params{
		ShortMAPeriod:   50,
		LongMAPeriod:    200,
		MACDFast:        12,
		MACDSlow:        26,
		MACDSignal:      9,
		RSIPeriod:       14,
		BollingerPeriod: 20,
		BollingerStdDev: 2,
		SqueezeRatio:    0.8,
		SqueezeLookback: 20,
		ADXPeriod:       14,
		ATRPeriod:       14,
		VolumeWindow:    20,
		MinHistory:      30,
		RecentCrossDays: 30,
	}
}

// withDefaults fills any zero field from the default parameter set.
func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.ShortMAPeriod <= 0 {
		p.ShortMAPeriod = d.ShortMAPeriod
	}
	if p.LongMAPeriod <= 0 {
		p.LongMAPeriod = d.LongMAPeriod
	}
	if p.MACDFast <= 0 {
		p.MACDFast = d.MACDFast
	}
	if p.MACDSlow <= 0 {
		p.MACDSlow = d.MACDSlow
	}
	if p.MACDSignal <= 0 {
		p.MACDSignal = d.MACDSignal
	}
	if p.RSIPeriod <= 0 {
		p.RSIPeriod = d.RSIPeriod
	}
	if p.BollingerPeriod <= 0 {
		p.BollingerPeriod = d.BollingerPeriod
	}
	if p.BollingerStdDev <= 0 {
		p.BollingerStdDev = d.BollingerStdDev
	}
	if p.SqueezeRatio <= 0 {
		p.SqueezeRatio = d.SqueezeRatio
	}
	if p.SqueezeLookback <= 0 {
		p.SqueezeLookback = d.SqueezeLookback
	}
	if p.ADXPeriod <= 0 {
		p.ADXPeriod = d.ADXPeriod
	}
	if p.ATRPeriod <= 0 {
		p.ATRPeriod = d.ATRPeriod
	}
	if p.VolumeWindow <= 0 {
		p.VolumeWindow = d.VolumeWindow
	}
	if p.MinHistory <= 0 {
		p.MinHistory = d.MinHistory
	}
	if p.RecentCrossDays <= 0 {
		p.RecentCrossDays = d.RecentCrossDays
	}
	return p
}

// Analyzer runs the full indicator pipeline for one instrument at a time.
// It holds no mutable state: Analyze may be called concurrently from
// multiple goroutines.
type Analyzer struct {
	params Params
}

// New creates an Analyzer, filling zero params with defaults.
func New(params Params) *Analyzer {
	return &Analyzer{params: params.withDefaults()}
}

// Params returns the effective parameter set.
func (a *Analyzer) Params() Params {
	return a.params
}

// Analyze computes every indicator and the composite score for one candle
// series. Series shorter than MinHistory fail fast with a typed
// insufficient-history error; individual indicators that lack history for
// their own warm-up degrade to unknown-status sub-results instead.
func (a *Analyzer) Analyze(candles []model.Candle) (*model.Analysis, error) {
	p := a.params
	if len(candles) < p.MinHistory {
		return nil, model.NewInsufficientHistoryError(len(candles), p.MinHistory)
	}

	closes := model.Closes(candles)

	shortMA := calculator.CalculateSMA(closes, p.ShortMAPeriod)
	longMA := calculator.CalculateSMA(closes, p.LongMAPeriod)

	set := model.IndicatorSet{
		MACross:   calculator.DetectCross(shortMA, longMA),
		RSI:       calculator.CalculateRSI(closes, p.RSIPeriod),
		MACD:      calculator.CalculateMACD(closes, p.MACDFast, p.MACDSlow, p.MACDSignal),
		Bollinger: calculator.CalculateBollinger(closes, p.BollingerPeriod, p.BollingerStdDev, p.SqueezeRatio, p.SqueezeLookback),
		ADX:       calculator.CalculateADX(candles, p.ADXPeriod),
		ATR:       calculator.CalculateATR(candles, p.ATRPeriod),
		Volume:    calculator.AnalyzeVolume(model.Volumes(candles), p.VolumeWindow),
	}

	return &model.Analysis{
		IndicatorSet: set,
		SignalScore:  strategy.Score(&set, p.RecentCrossDays),
		LastUpdate:   time.Now(),
	}, nil
}
