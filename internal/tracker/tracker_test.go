package tracker

import (
	"path/filepath"
	"testing"

	"github.com/raosahab3333/1000cr/internal/model"
)

func TestTracker_FilterNewAndPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	tr, err := New(path)
	if err != nil {
		t.Fatal(err)
	}

	sigs := []model.Signal{
		{SignalDate: "2024-01-10", Symbol: "INFY", BuyAt: 100},
		{SignalDate: "2024-01-11", Symbol: "ITC", BuyAt: 50},
	}
	fresh, err := tr.FilterNew(sigs)
	if err != nil {
		t.Fatal(err)
	}
	if len(fresh) != 2 {
		t.Fatalf("expected both signals fresh, got %d", len(fresh))
	}

	// Same signals again: nothing new.
	fresh, err = tr.FilterNew(sigs)
	if err != nil {
		t.Fatal(err)
	}
	if len(fresh) != 0 {
		t.Errorf("expected no fresh signals on repeat, got %d", len(fresh))
	}

	// Reload from disk: the marks survive the process.
	tr2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	fresh, err = tr2.FilterNew(sigs)
	if err != nil {
		t.Fatal(err)
	}
	if len(fresh) != 0 {
		t.Errorf("expected persisted marks after reload, got %d fresh", len(fresh))
	}
}

func TestTracker_Reset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	tr, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	sigs := []model.Signal{{SignalDate: "2024-01-10", Symbol: "INFY"}}
	if _, err := tr.FilterNew(sigs); err != nil {
		t.Fatal(err)
	}
	if err := tr.Reset(); err != nil {
		t.Fatal(err)
	}
	fresh, err := tr.FilterNew(sigs)
	if err != nil {
		t.Fatal(err)
	}
	if len(fresh) != 1 {
		t.Errorf("expected signal fresh again after reset, got %d", len(fresh))
	}
}

func TestTracker_MissingFileIsEmpty(t *testing.T) {
	tr, err := New(filepath.Join(t.TempDir(), "nope", "seen.json"))
	if err != nil {
		t.Fatalf("missing state file must not error: %v", err)
	}
	fresh, err := tr.FilterNew([]model.Signal{{SignalDate: "2024-01-10", Symbol: "INFY"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(fresh) != 1 {
		t.Errorf("expected fresh signal from empty tracker, got %d", len(fresh))
	}
}
