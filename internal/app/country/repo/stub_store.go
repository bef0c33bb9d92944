package repo

import (
	"context"
	"sync"
	"time"

	"github.com/tkoivu/country-edit-service/internal/app/country/contracts"
	"github.com/tkoivu/country-edit-service/internal/app/country/domain"
)

// Fixed record fabricated by the stub for every fetch.
const (
	StubName = "United Kingdom"
	StubCode = "UK"
)

// StubStore is the reference RecordStore: it fabricates one fixed record
// after an artificial delay and never fails on its own. Saved snapshots
// are retained so tests and demos can inspect what was persisted.
type StubStore struct {
	delay time.Duration

	mu    sync.Mutex
	saved []domain.Record
}

// NewStubStore creates a StubStore with the given artificial delay.
func NewStubStore(delay time.Duration) *StubStore {
	return &StubStore{delay: delay}
}

var _ contracts.RecordStore = (*StubStore)(nil)

// Fetch fabricates {uid, "United Kingdom", "UK"} after the configured
// delay. The only failure mode is context cancellation.
func (s *StubStore) Fetch(ctx context.Context, uid string) (domain.Record, error) {
	if err := s.wait(ctx); err != nil {
		return domain.Record{}, err
	}
	return domain.Record{UID: uid, Name: StubName, Code: StubCode}, nil
}

// Save retains the snapshot in memory after the configured delay.
func (s *StubStore) Save(ctx context.Context, rec domain.Record) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, rec)
	return nil
}

// LastSaved returns the most recently saved snapshot, if any.
func (s *StubStore) LastSaved() (domain.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saved) == 0 {
		return domain.Record{}, false
	}
	return s.saved[len(s.saved)-1], true
}

// SaveCount returns how many saves the stub has received.
func (s *StubStore) SaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

func (s *StubStore) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
