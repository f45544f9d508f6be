package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/raosahab3333/1000cr/internal/collector"
	"github.com/raosahab3333/1000cr/internal/model"
	"github.com/raosahab3333/1000cr/internal/notifier"
	"github.com/raosahab3333/1000cr/internal/recorder"
	"github.com/raosahab3333/1000cr/internal/strategy"
	"github.com/raosahab3333/1000cr/internal/tracker"

	"github.com/robfig/cron/v3"
)

// Scheduler runs scans on a cron, on demand, and on Telegram command, and
// keeps the most recent result for the web layer.
type Scheduler struct {
	Cron     *cron.Cron
	Engine   *strategy.Engine
	Provider *collector.Provider
	Notifier *notifier.TelegramNotifier
	Recorder recorder.Recorder
	Tracker  *tracker.Tracker
	Ctx      context.Context

	mu     sync.RWMutex
	latest *recorder.ScanRun

	firstScan sync.Mutex // serializes the lazy initial scan
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, eng *strategy.Engine, prov *collector.Provider,
	tn *notifier.TelegramNotifier, rec recorder.Recorder, tr *tracker.Tracker) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Engine:   eng,
		Provider: prov,
		Notifier: tn,
		Recorder: rec,
		Tracker:  tr,
		Ctx:      ctx,
	}
}

// Register adds the scheduled rescan task.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, func() {
		if _, err := s.RunScan("CRON", true); err != nil {
			log.Printf("[ERROR] scheduled scan: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScan performs a full scan. refresh drops the cached price series first
// so the scan sees current data; trigger labels the run in the history.
func (s *Scheduler) RunScan(trigger string, refresh bool) (*recorder.ScanRun, error) {
	log.Printf("[INFO] running scan (trigger=%s, refresh=%v)", trigger, refresh)
	if refresh {
		s.Provider.Reset()
	}

	started := time.Now()
	res, err := s.Engine.Scan(s.Ctx)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	run := &recorder.ScanRun{
		StartedAt: started,
		Duration:  time.Since(started),
		Trigger:   trigger,
		Scanned:   res.Scanned,
		Skipped:   res.Skipped,
		Signals:   res.Signals,
	}

	s.mu.Lock()
	s.latest = run
	s.mu.Unlock()

	log.Printf("[INFO] scan done: %d signals from %d symbols (%d skipped) in %s",
		len(run.Signals), run.Scanned, run.Skipped, run.Duration.Round(time.Millisecond))

	if err := s.Recorder.RecordScan(run); err != nil {
		log.Printf("[ERROR] record scan: %v", err)
	}
	s.notifyFresh(run.Signals)

	return run, nil
}

// Latest returns the most recent scan run, or nil before the first scan.
func (s *Scheduler) Latest() *recorder.ScanRun {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// LatestSignals returns the most recent result, scanning lazily on first
// use. Concurrent first requests share a single scan.
func (s *Scheduler) LatestSignals() ([]model.Signal, error) {
	if run := s.Latest(); run != nil {
		return run.Signals, nil
	}
	s.firstScan.Lock()
	defer s.firstScan.Unlock()
	if run := s.Latest(); run != nil {
		return run.Signals, nil
	}
	run, err := s.RunScan("WEB", false)
	if err != nil {
		return nil, err
	}
	return run.Signals, nil
}

// notifyFresh pushes signals never announced before to Telegram.
func (s *Scheduler) notifyFresh(signals []model.Signal) {
	if !s.Notifier.Enabled() || len(signals) == 0 {
		return
	}
	fresh, err := s.Tracker.FilterNew(signals)
	if err != nil {
		log.Printf("[ERROR] persist seen signals: %v", err)
	}
	if len(fresh) == 0 {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, notifier.FormatNewSignals(fresh), 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}

// HandleCommand processes a Telegram command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/scan":
		run, err := s.RunScan("TELEGRAM", true)
		if err != nil {
			return fmt.Sprintf("scan failed: %v", err)
		}
		return notifier.FormatScanSummary(run)
	case "/top":
		signals, err := s.LatestSignals()
		if err != nil {
			return fmt.Sprintf("scan failed: %v", err)
		}
		return notifier.FormatTopSignals(signals, 10)
	case "/status":
		run := s.Latest()
		if run == nil {
			return "No scan has run yet. Use /scan."
		}
		return notifier.FormatScanSummary(run)
	case "/reset":
		if err := s.Tracker.Reset(); err != nil {
			return fmt.Sprintf("reset failed: %v", err)
		}
		return "Seen-signal history cleared; the next scan re-announces everything."
	default:
		return "Available commands:\n• /scan — rescan now\n• /top — top signals\n• /status — last scan summary\n• /reset — forget announced signals"
	}
}
