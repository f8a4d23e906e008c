package item

import "itemservice/internal/platform/validation"

type ValidatorRegistry interface {
	Validate(target any, violations *validation.Violations) error
}
