package m_revision

import "time"

// Data is the row model for the revisions table.
type Data struct {
	RevisionID string    `spanner:"revision_id"`
	UID        string    `spanner:"uid"`
	Name       string    `spanner:"name"`
	Code       string    `spanner:"code"`
	SavedAt    time.Time `spanner:"saved_at"`
}
