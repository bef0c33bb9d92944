package m_country

// Field name constants for the countries table.
const (
	TableName = "countries"

	UID       = "uid"
	Name      = "name"
	Code      = "code"
	UpdatedAt = "updated_at"
)
