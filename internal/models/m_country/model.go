package m_country

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Model is a facade for type-safe mutations on the countries table.
type Model struct{}

// NewModel creates a Model.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut creates a mutation writing the full row, inserting or
// replacing as needed. Saves always carry the complete snapshot.
func (m *Model) UpsertMut(data *Data, updatedAt time.Time) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{UID, Name, Code, UpdatedAt},
		[]interface{}{data.UID, data.Name, data.Code, updatedAt},
	)
}

// DeleteMut creates a mutation removing the row.
func (m *Model) DeleteMut(uid string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{uid})
}
