package strategy

import (
	"github.com/raosahab3333/1000cr/internal/model"
)

// Params holds the tunable knobs of the V20 detection.
type Params struct {
	ThresholdPercent float64 // minimum streak range, percent of streak low
	MAWindow         int     // trailing moving-average window in bars
}

// DefaultParams mirrors the production configuration.
func DefaultParams() Params {
	return Params{ThresholdPercent: 20, MAWindow: 200}
}

// streak accumulates the running low/high of a maximal run of up-candles.
type streak struct {
	low    float64
	high   float64
	active bool
}

func (s *streak) extend(b model.OHLCV) {
	if !s.active {
		s.low, s.high, s.active = b.Low, b.High, true
		return
	}
	if b.Low < s.low {
		s.low = b.Low
	}
	if b.High > s.high {
		s.high = b.High
	}
}

func (s *streak) reset() {
	s.active = false
}

// FindSignals scans an annotated series front to back and returns every
// confirmed V20 occurrence. A run of up-candles is evaluated the moment a
// non-up candle closes it: the streak range must clear the threshold and the
// streak low must sit below the confirming bar's MA200 (+Inf while the
// average is undefined, so early bars are never blocked). A streak still
// open when the series ends is discarded unevaluated.
func FindSignals(series *model.PriceSeries, p Params) []model.Signal {
	if len(series.Bars) < 2 {
		return nil
	}

	var signals []model.Signal
	latestClose := series.LatestClose()
	var run streak

	for _, bar := range series.Bars {
		if bar.IsUp() {
			run.extend(bar)
			continue
		}
		if run.active {
			if sig, ok := evaluate(run, bar, series.Symbol, latestClose, p); ok {
				signals = append(signals, sig)
			}
			run.reset()
		}
	}
	return signals
}

// evaluate applies the threshold and moving-average checks to a closed
// streak. confirmBar is the non-up candle that ended the run.
func evaluate(run streak, confirmBar model.OHLCV, symbol string, latestClose float64, p Params) (model.Signal, bool) {
	pctMove := (run.high - run.low) / run.low * 100
	if pctMove < p.ThresholdPercent {
		return model.Signal{}, false
	}
	if run.low >= confirmBar.MA200 {
		return model.Signal{}, false
	}
	proximity := abs(latestClose-run.low) / run.low * 100
	return model.Signal{
		SignalDate:  confirmBar.Date.Format("2006-01-02"),
		Symbol:      symbol,
		BuyAt:       model.Round2(run.low),
		SellAt:      model.Round2(run.high),
		PercentMove: model.Round2(pctMove),
		Close:       model.Round2(latestClose),
		Proximity:   model.Round2(proximity),
	}, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
