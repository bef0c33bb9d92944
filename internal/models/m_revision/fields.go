package m_revision

// Field name constants for the revisions journal table.
const (
	TableName = "revisions"

	RevisionID = "revision_id"
	UID        = "uid"
	Name       = "name"
	Code       = "code"
	SavedAt    = "saved_at"
)
