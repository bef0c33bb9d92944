package domain

import "unicode/utf8"

// Field names used in violations and by the form surface.
const (
	FieldName = "name"
	FieldCode = "code"
)

// Validation rule identifiers.
const (
	RuleRequired  = "required"
	RuleMaxLength = "max-length"
)

// Field length limits.
const (
	MaxNameLength = 50
	MaxCodeLength = 4
)

// Violation is a single field-scoped validation failure.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Validate evaluates the validation rules against a record snapshot and
// returns zero or more violations. It is pure: no state is read besides
// the snapshot and nothing is mutated. Violations are data for display,
// not errors; callers decide whether to block an action on them.
func Validate(rec Record) []Violation {
	var violations []Violation

	switch {
	case rec.Name == "":
		violations = append(violations, Violation{
			Field:   FieldName,
			Rule:    RuleRequired,
			Message: "name is required",
		})
	case utf8.RuneCountInString(rec.Name) > MaxNameLength:
		violations = append(violations, Violation{
			Field:   FieldName,
			Rule:    RuleMaxLength,
			Message: "name exceeds maximum length of 50 characters",
		})
	}

	switch {
	case rec.Code == "":
		violations = append(violations, Violation{
			Field:   FieldCode,
			Rule:    RuleRequired,
			Message: "code is required",
		})
	case utf8.RuneCountInString(rec.Code) > MaxCodeLength:
		violations = append(violations, Violation{
			Field:   FieldCode,
			Rule:    RuleMaxLength,
			Message: "code exceeds maximum length of 4 characters",
		})
	}

	return violations
}
