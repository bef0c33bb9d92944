package domain

import "errors"

// Domain errors for the country record lifecycle
var (
	// ErrRecordNotFound indicates that no record with the given identifier exists.
	ErrRecordNotFound = errors.New("record not found")

	// ErrEmptyRecord indicates a store returned a record carrying no data.
	ErrEmptyRecord = errors.New("fetched record is empty")

	// ErrRecordMismatch indicates a store returned a record whose identifier
	// does not match the one requested.
	ErrRecordMismatch = errors.New("fetched record identifier does not match request")
)
