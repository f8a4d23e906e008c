package validator

import (
	"itemservice/internal/platform/validation"
)

// Validator checks request DTOs against their declared constraints.
// Failures are returned as *ValidationError.
type Validator interface {
	Validate(objectName string, s interface{}) error
}

// ValidationError carries the sealed violations of a rejected DTO.
type ValidationError struct {
	Violations *validation.Violations
}

func (e *ValidationError) Error() string {
	return "request validation failed: " + e.Violations.String()
}
