package repo

import (
	"context"
	"time"

	"github.com/tkoivu/country-edit-service/internal/app/country/contracts"
	"github.com/tkoivu/country-edit-service/internal/app/country/domain"
	"github.com/tkoivu/country-edit-service/internal/observability/metrics"
)

// InstrumentedStore decorates a RecordStore with Prometheus counters and
// latency histograms per operation.
type InstrumentedStore struct {
	next    contracts.RecordStore
	metrics *metrics.Metrics
}

// NewInstrumentedStore wraps next with instrumentation.
func NewInstrumentedStore(next contracts.RecordStore, m *metrics.Metrics) *InstrumentedStore {
	return &InstrumentedStore{next: next, metrics: m}
}

var _ contracts.RecordStore = (*InstrumentedStore)(nil)

// Fetch delegates and records the outcome.
func (s *InstrumentedStore) Fetch(ctx context.Context, uid string) (domain.Record, error) {
	start := time.Now()
	rec, err := s.next.Fetch(ctx, uid)
	s.metrics.ObserveStoreOp(metrics.OpFetch, resultLabel(err), time.Since(start))
	return rec, err
}

// Save delegates and records the outcome.
func (s *InstrumentedStore) Save(ctx context.Context, rec domain.Record) error {
	start := time.Now()
	err := s.next.Save(ctx, rec)
	s.metrics.ObserveStoreOp(metrics.OpSave, resultLabel(err), time.Since(start))
	return err
}

func resultLabel(err error) string {
	if err != nil {
		return metrics.ResultError
	}
	return metrics.ResultSuccess
}
