package m_country

import "time"

// Data is the row model for the countries table.
type Data struct {
	UID       string    `spanner:"uid"`
	Name      string    `spanner:"name"`
	Code      string    `spanner:"code"`
	UpdatedAt time.Time `spanner:"updated_at"`
}
