package domain

// Record is an immutable snapshot of a persisted country record.
// Equality is structural: two records are equal when all fields match.
type Record struct {
	UID  string
	Name string
	Code string
}

// IsEmpty reports whether the record carries no data at all.
// Stores must never hand an empty record to the presenter; the
// presenter rejects one with ErrEmptyRecord.
func (r Record) IsEmpty() bool {
	return r == Record{}
}

// Equal reports structural equality with another record.
func (r Record) Equal(other Record) bool {
	return r == other
}
