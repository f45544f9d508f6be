package collector

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/raosahab3333/1000cr/internal/model"
)

// ErrNoData marks a symbol with no usable price history. Callers treat it
// the same as any other per-symbol failure: skip and continue.
var ErrNoData = errors.New("no price data available")

// Provider memoizes per-symbol price series fetched over the configured
// lookback. It replaces an implicit process-wide bulk cache with an explicit
// object carrying its own invalidation, so the analysis core only ever sees
// already-materialized series. Safe for concurrent use.
type Provider struct {
	Fetcher  Fetcher
	Lookback time.Duration

	mu    sync.RWMutex
	cache map[string]*model.PriceSeries
}

// NewProvider creates a Provider fetching lookbackYears of daily history.
func NewProvider(fetcher Fetcher, lookbackYears int) *Provider {
	if lookbackYears <= 0 {
		lookbackYears = 3
	}
	return &Provider{
		Fetcher:  fetcher,
		Lookback: time.Duration(lookbackYears) * 365 * 24 * time.Hour,
		cache:    make(map[string]*model.PriceSeries),
	}
}

// Get returns the cached series for symbol, fetching it on first use.
// Symbols the source knows nothing about surface as ErrNoData.
func (p *Provider) Get(symbol string) (*model.PriceSeries, error) {
	p.mu.RLock()
	cached, ok := p.cache[symbol]
	p.mu.RUnlock()
	if ok {
		return copySeries(cached), nil
	}

	end := time.Now()
	start := end.Add(-p.Lookback)
	bars, err := p.Fetcher.FetchDailyBars(symbol, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNoData)
	}

	series := &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}
	p.mu.Lock()
	p.cache[symbol] = series
	p.mu.Unlock()
	return copySeries(series), nil
}

// Warm bulk-loads the cache for the given symbols. Failures are logged and
// left out; Get will retry them on demand.
func (p *Provider) Warm(symbols []string) {
	for _, symbol := range symbols {
		if _, err := p.Get(symbol); err != nil {
			log.Printf("[WARN] warm %s: %v", symbol, err)
		}
	}
}

// Reset invalidates every cached series. The next Get refetches.
func (p *Provider) Reset() {
	p.mu.Lock()
	p.cache = make(map[string]*model.PriceSeries)
	p.mu.Unlock()
}

// Cached reports how many symbols currently have a materialized series.
func (p *Provider) Cached() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.cache)
}

// copySeries hands callers their own bar slice; the cached one stays pristine
// while downstream annotation mutates in place.
func copySeries(s *model.PriceSeries) *model.PriceSeries {
	bars := make([]model.OHLCV, len(s.Bars))
	copy(bars, s.Bars)
	return &model.PriceSeries{Symbol: s.Symbol, Bars: bars, FetchedAt: s.FetchedAt}
}
