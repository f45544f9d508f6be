package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raosahab3333/1000cr/internal/collector"
	"github.com/raosahab3333/1000cr/internal/config"
	"github.com/raosahab3333/1000cr/internal/notifier"
	"github.com/raosahab3333/1000cr/internal/recorder"
	"github.com/raosahab3333/1000cr/internal/scheduler"
	"github.com/raosahab3333/1000cr/internal/server"
	"github.com/raosahab3333/1000cr/internal/strategy"
	"github.com/raosahab3333/1000cr/internal/tracker"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] v20 scanner starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	log.Printf("[INFO] %d symbols, threshold %.1f%%, MA window %d, lookback %dy",
		len(cfg.Scanner.Symbols), cfg.Scanner.ThresholdPercent, cfg.Scanner.MAWindow, cfg.Scanner.LookbackYears)

	// Init fetcher and provider
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRestFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Scanner.TickerSuffix, cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())
	provider := collector.NewProvider(fetcher, cfg.Scanner.LookbackYears)

	// Init engine
	params := strategy.Params{
		ThresholdPercent: cfg.Scanner.ThresholdPercent,
		MAWindow:         cfg.Scanner.MAWindow,
	}
	eng := strategy.NewEngine(provider, cfg.Scanner.Symbols, params, cfg.Scanner.Workers)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init Telegram notifier and seen-signal tracker
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	tr, err := tracker.New(cfg.Tracker.StateFile)
	if err != nil {
		log.Fatalf("[FATAL] init tracker: %v", err)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, eng, provider, tn, rec, tr)
	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	if tn.Enabled() {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Optional: prefetch and scan immediately instead of waiting for the
	// first page hit
	if os.Getenv("SCAN_ON_START") == "true" {
		log.Println("[INFO] SCAN_ON_START enabled, warming cache and scanning now")
		go func() {
			provider.Warm(cfg.Scanner.Symbols)
			if _, err := sched.RunScan("STARTUP", false); err != nil {
				log.Printf("[ERROR] startup scan: %v", err)
			}
		}()
	}

	// Start web server
	srv := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: server.New(sched).Handler("web/templates/*"),
	}
	go func() {
		log.Printf("[INFO] web server listening on %s", cfg.Server.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] web server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] web server shutdown: %v", err)
	}
	log.Println("[INFO] v20 scanner stopped")
}
