package contracts

import (
	"context"
	"time"

	"github.com/tkoivu/country-edit-service/internal/app/country/domain"
)

// RecordStore is the data access port for country records. Both
// operations are synchronous from the caller's point of view but may
// block on I/O; implementations must honor context cancellation.
// Any error is treated as a retryable "unavailable" condition by the
// form layer.
type RecordStore interface {
	// Fetch retrieves the record with the given identifier.
	// Returns domain.ErrRecordNotFound when no such record exists.
	Fetch(ctx context.Context, uid string) (domain.Record, error)

	// Save persists the given snapshot, replacing any previous state
	// for the same identifier.
	Save(ctx context.Context, rec domain.Record) error
}

// Revision is one saved snapshot of a record, as kept in the revision
// journal of backends that maintain one.
type Revision struct {
	RevisionID string
	Record     domain.Record
	SavedAt    time.Time
}

// RevisionLog is an optional extension of RecordStore for backends that
// journal every save. The stub store does not implement it.
type RevisionLog interface {
	// Revisions lists saved snapshots for a record, newest first.
	Revisions(ctx context.Context, uid string, limit int64) ([]Revision, error)
}
