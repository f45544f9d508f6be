package strategy

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/raosahab3333/1000cr/internal/calculator"
	"github.com/raosahab3333/1000cr/internal/model"
)

// SeriesProvider supplies the price history for one symbol.
type SeriesProvider interface {
	Get(symbol string) (*model.PriceSeries, error)
}

// Engine runs the V20 detection across the configured symbol universe.
type Engine struct {
	Provider SeriesProvider
	Symbols  []string
	Params   Params
	Workers  int
}

// NewEngine creates an Engine. workers <= 0 falls back to 8.
func NewEngine(provider SeriesProvider, symbols []string, params Params, workers int) *Engine {
	if workers <= 0 {
		workers = 8
	}
	return &Engine{Provider: provider, Symbols: symbols, Params: params, Workers: workers}
}

// Result is the outcome of one full scan.
type Result struct {
	Signals []model.Signal
	Scanned int
	Skipped int
}

// Scan detects signals for every symbol independently and returns the
// concatenated list sorted newest-date first, ties broken by descending
// proximity. A per-symbol failure is logged and skipped, never fatal.
func (e *Engine) Scan(ctx context.Context) (*Result, error) {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		res Result
		sem = make(chan struct{}, e.Workers)
	)

	for _, symbol := range e.Symbols {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(symbol string) {
			defer wg.Done()
			defer func() { <-sem }()

			signals, err := e.scanSymbol(symbol)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("[WARN] skipping %s: %v", symbol, err)
				res.Skipped++
				return
			}
			res.Scanned++
			res.Signals = append(res.Signals, signals...)
		}(symbol)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	SortSignals(res.Signals)
	return &res, nil
}

func (e *Engine) scanSymbol(symbol string) ([]model.Signal, error) {
	series, err := e.Provider.Get(symbol)
	if err != nil {
		return nil, err
	}
	bars, err := calculator.AnnotateMA(series.Bars, e.Params.MAWindow)
	if err != nil {
		return nil, err
	}
	series.Bars = bars
	return FindSignals(series, e.Params), nil
}

// SortSignals orders signals descending by date, then descending by
// proximity within the same date. The proximity direction (furthest from
// entry first) is deliberate and matches the production ranking.
func SortSignals(signals []model.Signal) {
	sort.SliceStable(signals, func(i, j int) bool {
		if signals[i].SignalDate != signals[j].SignalDate {
			return signals[i].SignalDate > signals[j].SignalDate
		}
		if signals[i].Proximity != signals[j].Proximity {
			return signals[i].Proximity > signals[j].Proximity
		}
		// Symbol tiebreak keeps the order deterministic under concurrent fan-in.
		return signals[i].Symbol < signals[j].Symbol
	})
}
