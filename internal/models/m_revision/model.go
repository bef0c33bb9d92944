package m_revision

import (
	"cloud.google.com/go/spanner"
)

// Model is a facade for type-safe mutations on the revisions table.
type Model struct{}

// NewModel creates a Model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation appending one journal row. Rows are
// append-only; a revision is never updated after it is written.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{RevisionID, UID, Name, Code, SavedAt},
		[]interface{}{data.RevisionID, data.UID, data.Name, data.Code, data.SavedAt},
	)
}
