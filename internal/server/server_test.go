package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/raosahab3333/1000cr/internal/model"
	"github.com/raosahab3333/1000cr/internal/recorder"
)

type fakeService struct {
	signals []model.Signal
	err     error
	runs    int
}

func (f *fakeService) LatestSignals() ([]model.Signal, error) {
	return f.signals, f.err
}

func (f *fakeService) RunScan(trigger string, refresh bool) (*recorder.ScanRun, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.runs++
	return &recorder.ScanRun{
		StartedAt: time.Now(),
		Trigger:   trigger,
		Scanned:   5,
		Skipped:   1,
		Signals:   f.signals,
	}, nil
}

func TestHandleSignals(t *testing.T) {
	svc := &fakeService{signals: []model.Signal{
		{SignalDate: "2024-01-10", Symbol: "INFY", BuyAt: 100, SellAt: 125, PercentMove: 25, Close: 110, Proximity: 10},
	}}
	h := New(svc).Handler("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/signals", nil)
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Count   int               `json:"count"`
		Signals []json.RawMessage `json:"signals"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 || len(resp.Signals) != 1 {
		t.Errorf("expected 1 signal, got count=%d len=%d", resp.Count, len(resp.Signals))
	}
	// The presentation field names are part of the contract.
	body := w.Body.String()
	for _, field := range []string{`"SignalDate"`, `"Symbol"`, `"BuyAt"`, `"SellAt"`, `"%Move"`, `"Close"`, `"Proximity%"`} {
		if !strings.Contains(body, field) {
			t.Errorf("response missing field %s: %s", field, body)
		}
	}
}

func TestHandleSignals_ScanFailure(t *testing.T) {
	h := New(&fakeService{err: errors.New("boom")}).Handler("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/signals", nil)
	h.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestHandleRefresh(t *testing.T) {
	svc := &fakeService{}
	h := New(svc).Handler("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.runs != 1 {
		t.Errorf("expected one scan run, got %d", svc.runs)
	}
}

func TestHealthz(t *testing.T) {
	h := New(&fakeService{}).Handler("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
