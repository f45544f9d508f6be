package recorder

import (
	"time"

	"github.com/raosahab3333/1000cr/internal/model"
)

// ScanRun holds the outcome of one full scan across the symbol universe.
type ScanRun struct {
	StartedAt time.Time
	Duration  time.Duration
	Trigger   string // "STARTUP", "CRON", "WEB", "TELEGRAM"
	Scanned   int
	Skipped   int
	Signals   []model.Signal
}

// Recorder persists scan history for later analysis.
type Recorder interface {
	RecordScan(run *ScanRun) error
	Close() error
}
