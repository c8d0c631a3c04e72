package mocks

import (
	"sync"

	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

// RecordingStore captures strategy saves for assertions in tests.
// Saves happen on a background goroutine, so Saved exposes a channel the
// test can receive from with a timeout.
type RecordingStore struct {
	mu      sync.Mutex
	records []models.StrategyRecord
	saved   chan models.StrategyRecord
	err     error
}

// NewRecordingStore creates a recording store
func NewRecordingStore() *RecordingStore {
	return &RecordingStore{
		saved: make(chan models.StrategyRecord, 16),
	}
}

// FailWith makes subsequent saves return err
func (r *RecordingStore) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *RecordingStore) SaveStrategyState(record models.StrategyRecord) error {
	r.mu.Lock()
	err := r.err
	if err == nil {
		r.records = append(r.records, record)
	}
	r.mu.Unlock()

	if err != nil {
		return err
	}

	select {
	case r.saved <- record:
	default:
	}
	return nil
}

// Saved returns the channel that receives each successful save
func (r *RecordingStore) Saved() <-chan models.StrategyRecord {
	return r.saved
}

// Records returns a copy of every record saved so far
func (r *RecordingStore) Records() []models.StrategyRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.StrategyRecord, len(r.records))
	copy(out, r.records)
	return out
}
