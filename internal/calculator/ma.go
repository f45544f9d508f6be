package calculator

import (
	"errors"
	"fmt"

	"github.com/raosahab3333/1000cr/internal/model"
)

var (
	// ErrEmptySeries is returned when a series has no bars.
	ErrEmptySeries = errors.New("empty price series")
	// ErrNonMonotonic is returned when bar dates are not strictly increasing.
	ErrNonMonotonic = errors.New("bar dates not strictly increasing")
)

// ValidateSeries checks that bars are date-ascending with no duplicates and
// carry positive prices. Malformed series are skipped by the caller, never
// analyzed.
func ValidateSeries(bars []model.OHLCV) error {
	if len(bars) == 0 {
		return ErrEmptySeries
	}
	for i, b := range bars {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return fmt.Errorf("bar %d (%s): non-positive price", i, b.Date.Format("2006-01-02"))
		}
		if i > 0 && !bars[i-1].Date.Before(b.Date) {
			return fmt.Errorf("%w: bar %d", ErrNonMonotonic, i)
		}
	}
	return nil
}

// AnnotateMA sets the trailing simple moving average of closes on each bar,
// window inclusive of the current bar. Bars with fewer than window closes
// available keep the +Inf "undefined" sentinel. The input slice is modified
// in place and returned.
func AnnotateMA(bars []model.OHLCV, window int) ([]model.OHLCV, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	if err := ValidateSeries(bars); err != nil {
		return nil, err
	}
	sum := 0.0
	for i := range bars {
		sum += bars[i].Close
		if i >= window {
			sum -= bars[i-window].Close
		}
		if i >= window-1 {
			bars[i].MA200 = sum / float64(window)
		}
	}
	return bars, nil
}
