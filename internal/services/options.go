// Package services wires application dependencies from configuration.
package services

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/spanner"

	"github.com/tkoivu/country-edit-service/internal/app/country/contracts"
	"github.com/tkoivu/country-edit-service/internal/app/country/domain"
	"github.com/tkoivu/country-edit-service/internal/app/country/repo"
	"github.com/tkoivu/country-edit-service/internal/config"
	"github.com/tkoivu/country-edit-service/internal/observability/metrics"
	"github.com/tkoivu/country-edit-service/internal/pkg/clock"
	httphandler "github.com/tkoivu/country-edit-service/internal/transport/http"
)

// ServiceOptions holds the wired application dependencies.
type ServiceOptions struct {
	Metrics     *metrics.Metrics
	FormHandler *httphandler.FormHandler

	spannerClient *spanner.Client
	sqliteStore   *repo.SQLiteStore
}

// NewServiceOptions builds the store backend selected by the
// configuration and wires the form handler on top of it.
func NewServiceOptions(ctx context.Context, cfg config.Config) (*ServiceOptions, error) {
	opts := &ServiceOptions{Metrics: metrics.New()}

	var (
		store  contracts.RecordStore
		revLog contracts.RevisionLog
	)

	switch cfg.Store.Driver {
	case config.DriverStub:
		store = repo.NewStubStore(cfg.StubDelay())

	case config.DriverSQLite:
		sqliteStore, err := repo.OpenSQLiteStore(cfg.Store.SQLitePath, clock.NewRealClock())
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		seed := domain.Record{UID: cfg.Seed.UID, Name: cfg.Seed.Name, Code: cfg.Seed.Code}
		if !seed.IsEmpty() {
			if err := sqliteStore.Seed(ctx, seed); err != nil {
				sqliteStore.Close()
				return nil, fmt.Errorf("seed sqlite store: %w", err)
			}
		}
		opts.sqliteStore = sqliteStore
		store, revLog = sqliteStore, sqliteStore

	case config.DriverSpanner:
		client, err := spanner.NewClient(ctx, cfg.Store.SpannerDatabase)
		if err != nil {
			return nil, fmt.Errorf("create spanner client: %w", err)
		}
		spannerStore := repo.NewSpannerStore(client, clock.NewRealClock())
		opts.spannerClient = client
		store, revLog = spannerStore, spannerStore

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	log.Printf("record store driver: %s", cfg.Store.Driver)

	instrumented := repo.NewInstrumentedStore(store, opts.Metrics)
	opts.FormHandler = httphandler.NewFormHandler(instrumented, revLog, opts.Metrics)
	return opts, nil
}

// Close releases backend resources.
func (s *ServiceOptions) Close() {
	if s.spannerClient != nil {
		s.spannerClient.Close()
	}
	if s.sqliteStore != nil {
		if err := s.sqliteStore.Close(); err != nil {
			log.Printf("close sqlite store: %v", err)
		}
	}
}
