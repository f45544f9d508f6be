package collector

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func yahooTestFetcher(payload string) (*YahooFetcher, *httptest.Server) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	f := NewYahooFetcher(".NS", "")
	f.BaseURL = srv.URL
	return f, srv
}

func TestYahooFetchDailyBars_ParsesAndDropsNulls(t *testing.T) {
	payload := `{"chart":{"result":[{
		"timestamp":[1704067200,1704153600,1704240000],
		"indicators":{"quote":[{
			"open":[10,null,12],
			"high":[11,null,13],
			"low":[9,null,11],
			"close":[10.5,null,12.8],
			"volume":[1000,null,1200]
		}]}
	}],"error":null}}`
	f, srv := yahooTestFetcher(payload)
	defer srv.Close()

	bars, err := f.FetchDailyBars("INFY", time.Now().AddDate(-3, 0, 0), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars after dropping the null one, got %d", len(bars))
	}
	if bars[0].Close != 10.5 || bars[1].Close != 12.8 {
		t.Errorf("unexpected closes: %.2f, %.2f", bars[0].Close, bars[1].Close)
	}
	if bars[0].HasMA() {
		t.Error("fetched bars must carry an undefined moving average")
	}
}

func TestYahooFetchDailyBars_ShortQuoteArraysRejected(t *testing.T) {
	// Three timestamps but only two entries per quote array: must surface as
	// an error, not an index panic.
	payload := `{"chart":{"result":[{
		"timestamp":[1704067200,1704153600,1704240000],
		"indicators":{"quote":[{
			"open":[10,11],
			"high":[11,12],
			"low":[9,10],
			"close":[10.5,11.5],
			"volume":[1000,1100]
		}]}
	}],"error":null}}`
	f, srv := yahooTestFetcher(payload)
	defer srv.Close()

	_, err := f.FetchDailyBars("INFY", time.Now().AddDate(-3, 0, 0), time.Now())
	if err == nil {
		t.Fatal("expected error for truncated quote arrays")
	}
	if !strings.Contains(err.Error(), "quote arrays") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestYahooFetchDailyBars_APIError(t *testing.T) {
	payload := `{"chart":{"result":[],"error":{"code":"Not Found","description":"No data found"}}}`
	f, srv := yahooTestFetcher(payload)
	defer srv.Close()

	if _, err := f.FetchDailyBars("NOSUCH", time.Now().AddDate(-3, 0, 0), time.Now()); err == nil {
		t.Fatal("expected error from API error payload")
	}
}
