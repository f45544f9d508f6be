// Package tracker remembers which signals have already been announced, so
// scheduled rescans only notify genuinely new ones.
package tracker

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/raosahab3333/1000cr/internal/model"
)

// state is the on-disk shape of the seen-signal set.
type state struct {
	Seen      map[string]string `json:"seen"` // signal key -> first-seen timestamp
	UpdatedAt time.Time         `json:"updated_at"`
}

// Tracker is a mutex-guarded seen-signal store persisted to a JSON file.
type Tracker struct {
	filePath string
	mu       sync.Mutex
	st       state
}

// New loads the tracker state from filePath. A missing file yields an empty
// tracker, not an error.
func New(filePath string) (*Tracker, error) {
	t := &Tracker{
		filePath: filePath,
		st:       state{Seen: make(map[string]string)},
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &t.st); err != nil {
		return nil, err
	}
	if t.st.Seen == nil {
		t.st.Seen = make(map[string]string)
	}
	return t, nil
}

// FilterNew returns the signals not seen before and marks them seen,
// persisting the updated state. A save failure does not lose the in-memory
// marks; it is returned for the caller to log.
func (t *Tracker) FilterNew(signals []model.Signal) ([]model.Signal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now().Format(time.RFC3339)
	var fresh []model.Signal
	for _, sig := range signals {
		key := sig.Key()
		if _, ok := t.st.Seen[key]; ok {
			continue
		}
		t.st.Seen[key] = now
		fresh = append(fresh, sig)
	}
	if len(fresh) == 0 {
		return nil, nil
	}
	return fresh, t.save()
}

// Reset forgets every seen signal.
func (t *Tracker) Reset() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.st.Seen = make(map[string]string)
	return t.save()
}

func (t *Tracker) save() error {
	t.st.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(&t.st, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(t.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(t.filePath, data, 0644)
}
