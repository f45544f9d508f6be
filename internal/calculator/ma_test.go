package calculator

import (
	"errors"
	"testing"
	"time"

	"github.com/raosahab3333/1000cr/internal/model"
)

func flatBars(n int, close float64) []model.OHLCV {
	bars := make([]model.OHLCV, n)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		bars[i] = model.NewBar(day.AddDate(0, 0, i), close, close, close, close, 1000)
	}
	return bars
}

func TestAnnotateMA_WindowBoundary(t *testing.T) {
	bars := flatBars(10, 0)
	for i := range bars {
		p := float64(i + 1)
		bars[i].Open, bars[i].High, bars[i].Low, bars[i].Close = p, p, p, p
	}
	out, err := AnnotateMA(bars, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 4; i++ {
		if out[i].HasMA() {
			t.Errorf("bar %d: expected undefined MA, got %.2f", i, out[i].MA200)
		}
	}
	// closes 1..5 -> mean 3
	if !out[4].HasMA() || out[4].MA200 != 3.0 {
		t.Errorf("bar 4: expected MA 3.0, got %.2f", out[4].MA200)
	}
	// closes 6..10 -> mean 8
	if out[9].MA200 != 8.0 {
		t.Errorf("bar 9: expected MA 8.0, got %.2f", out[9].MA200)
	}
}

func TestAnnotateMA_ShortSeriesStaysUndefined(t *testing.T) {
	out, err := AnnotateMA(flatBars(50, 100), 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, b := range out {
		if b.HasMA() {
			t.Fatalf("bar %d: MA should be undefined below the window", i)
		}
	}
}

func TestAnnotateMA_Errors(t *testing.T) {
	if _, err := AnnotateMA(nil, 200); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("expected ErrEmptySeries, got %v", err)
	}

	bars := flatBars(3, 100)
	bars[2].Date = bars[1].Date // duplicate date
	if _, err := AnnotateMA(bars, 2); !errors.Is(err, ErrNonMonotonic) {
		t.Errorf("expected ErrNonMonotonic, got %v", err)
	}

	if _, err := AnnotateMA(flatBars(3, 100), 0); err == nil {
		t.Error("expected error for zero window")
	}
}
