package model

import (
	"math"
	"time"
)

// OHLCV represents a single daily candlestick bar.
// MA200 is the trailing simple moving average of closes; it stays at +Inf
// until enough history exists, so "price below average" never blocks early bars.
type OHLCV struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
	MA200  float64
}

// NewBar creates a bar with the moving average marked undefined.
func NewBar(date time.Time, open, high, low, close, volume float64) OHLCV {
	return OHLCV{
		Date:   date,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  close,
		Volume: volume,
		MA200:  math.Inf(1),
	}
}

// IsUp reports whether the bar is an up-candle. A doji (close == open) counts as non-up.
func (b OHLCV) IsUp() bool {
	return b.Close > b.Open
}

// HasMA reports whether the moving average is defined for this bar.
func (b OHLCV) HasMA() bool {
	return !math.IsInf(b.MA200, 1)
}

// PriceSeries holds the dense, date-ascending bar history for one symbol.
// Bars with missing fields are dropped by the provider before analysis.
type PriceSeries struct {
	Symbol    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// LatestClose returns the most recent close in the series, or 0 if empty.
func (s *PriceSeries) LatestClose() float64 {
	if len(s.Bars) == 0 {
		return 0
	}
	return s.Bars[len(s.Bars)-1].Close
}
