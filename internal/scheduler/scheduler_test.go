package scheduler

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/raosahab3333/1000cr/internal/collector"
	"github.com/raosahab3333/1000cr/internal/model"
	"github.com/raosahab3333/1000cr/internal/notifier"
	"github.com/raosahab3333/1000cr/internal/recorder"
	"github.com/raosahab3333/1000cr/internal/strategy"
	"github.com/raosahab3333/1000cr/internal/tracker"
)

func rallyBars() []model.OHLCV {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mk := func(n int, o, h, l, c float64) model.OHLCV {
		return model.NewBar(day.AddDate(0, 0, n), o, h, l, c, 1000)
	}
	return []model.OHLCV{
		mk(0, 10, 11, 9, 10.5),
		mk(1, 10.5, 13, 10.3, 12.8),
		mk(2, 12.5, 12.6, 10, 10.2),
	}
}

func newTestScheduler(t *testing.T, fetcher *collector.MockFetcher) *Scheduler {
	t.Helper()
	provider := collector.NewProvider(fetcher, 3)
	eng := strategy.NewEngine(provider, []string{"INFY"}, strategy.DefaultParams(), 2)
	tr, err := tracker.New(filepath.Join(t.TempDir(), "seen.json"))
	if err != nil {
		t.Fatal(err)
	}
	tn := notifier.NewTelegramNotifier("", "", "") // disabled
	return NewScheduler(context.Background(), eng, provider, tn, recorder.NewNoopRecorder(), tr)
}

func TestRunScan_PopulatesLatest(t *testing.T) {
	fetcher := &collector.MockFetcher{Series: map[string][]model.OHLCV{"INFY": rallyBars()}}
	s := newTestScheduler(t, fetcher)

	if s.Latest() != nil {
		t.Fatal("expected no result before the first scan")
	}
	run, err := s.RunScan("STARTUP", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(run.Signals) != 1 {
		t.Fatalf("expected 1 signal, got %d", len(run.Signals))
	}
	if s.Latest() != run {
		t.Error("latest must point at the run just completed")
	}
}

func TestLatestSignals_ScansLazilyOnce(t *testing.T) {
	fetcher := &collector.MockFetcher{Series: map[string][]model.OHLCV{"INFY": rallyBars()}}
	s := newTestScheduler(t, fetcher)

	signals, err := s.LatestSignals()
	if err != nil {
		t.Fatal(err)
	}
	if len(signals) != 1 {
		t.Fatalf("expected 1 signal from lazy scan, got %d", len(signals))
	}
	if _, err := s.LatestSignals(); err != nil {
		t.Fatal(err)
	}
	if fetcher.Calls != 1 {
		t.Errorf("second LatestSignals must reuse the first scan, got %d fetches", fetcher.Calls)
	}
}

func TestLatestSignals_ConcurrentFirstUseSharesOneScan(t *testing.T) {
	fetcher := &collector.MockFetcher{Series: map[string][]model.OHLCV{"INFY": rallyBars()}}
	s := newTestScheduler(t, fetcher)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.LatestSignals()
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
	}
	if fetcher.Calls != 1 {
		t.Errorf("concurrent first requests must share one scan, got %d fetches", fetcher.Calls)
	}
}

func TestRunScan_RefreshRefetches(t *testing.T) {
	fetcher := &collector.MockFetcher{Series: map[string][]model.OHLCV{"INFY": rallyBars()}}
	s := newTestScheduler(t, fetcher)

	if _, err := s.RunScan("STARTUP", false); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RunScan("CRON", true); err != nil {
		t.Fatal(err)
	}
	if fetcher.Calls != 2 {
		t.Errorf("refresh scan must drop the cache and refetch, got %d fetches", fetcher.Calls)
	}
}
