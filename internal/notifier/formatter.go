package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/raosahab3333/1000cr/internal/model"
	"github.com/raosahab3333/1000cr/internal/recorder"
)

// FormatNewSignals formats freshly detected signals for a Telegram push.
func FormatNewSignals(signals []model.Signal) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📈 <b>New V20 signals</b> | %s\n\n", time.Now().Format("2006-01-02")))
	for _, sig := range signals {
		b.WriteString(fmt.Sprintf("<b>%s</b> (%s)\n", sig.Symbol, sig.SignalDate))
		b.WriteString(fmt.Sprintf("  buy %.2f → sell %.2f (%.2f%% move)\n", sig.BuyAt, sig.SellAt, sig.PercentMove))
		b.WriteString(fmt.Sprintf("  last close %.2f, %.2f%% from entry\n", sig.Close, sig.Proximity))
	}
	return b.String()
}

// FormatScanSummary formats a scan run for the /status reply.
func FormatScanSummary(run *recorder.ScanRun) string {
	var b strings.Builder
	b.WriteString("🔍 <b>Scan summary</b>\n\n")
	b.WriteString(fmt.Sprintf("Started: %s\n", run.StartedAt.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Duration: %s\n", run.Duration.Round(time.Millisecond)))
	b.WriteString(fmt.Sprintf("Symbols scanned: %d (skipped %d)\n", run.Scanned, run.Skipped))
	b.WriteString(fmt.Sprintf("Signals: %d\n", len(run.Signals)))
	return b.String()
}

// FormatTopSignals formats the top n signals in sort order for the /top reply.
func FormatTopSignals(signals []model.Signal, n int) string {
	if len(signals) == 0 {
		return "No signals in the last scan."
	}
	if n > len(signals) {
		n = len(signals)
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🏆 <b>Top %d signals</b>\n\n", n))
	for i := 0; i < n; i++ {
		sig := signals[i]
		b.WriteString(fmt.Sprintf("%d. %s %s | buy %.2f sell %.2f | %.2f%% | prox %.2f%%\n",
			i+1, sig.Symbol, sig.SignalDate, sig.BuyAt, sig.SellAt, sig.PercentMove, sig.Proximity))
	}
	return b.String()
}
