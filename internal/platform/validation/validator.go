package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	ErrNilViolations = errors.New("validation: nil violations")
	ErrNilTarget     = errors.New("validation: nil target")
	ErrNoValidator   = errors.New("validation: no validator registered")
)

type Validator[T any] interface {
	Validate(target T, violations *Violations)
}

type ValidatorFunc[T any] func(target T, violations *Violations)

func (f ValidatorFunc[T]) Validate(target T, violations *Violations) {
	f(target, violations)
}

type validateFunc func(target any, violations *Violations)

// Registry maps an entity type to its ordered validators. Registration is
// expected to happen at startup.
type Registry struct {
	validators map[reflect.Type][]validateFunc
	mu         sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		validators: make(map[reflect.Type][]validateFunc),
	}
}

// Register appends validators for T, keeping registration order.
func Register[T any](r *Registry, validators ...Validator[T]) {
	key := reflect.TypeFor[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, validator := range validators {
		validator := validator
		r.validators[key] = append(r.validators[key], func(target any, violations *Violations) {
			validator.Validate(target.(T), violations)
		})
	}
}

func (r *Registry) Supports(target any) bool {
	if target == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.validators[reflect.TypeOf(target)]) > 0
}

// Validate runs every validator registered for the dynamic type of target and
// seals violations afterwards.
func (r *Registry) Validate(target any, violations *Violations) error {
	if violations == nil {
		return ErrNilViolations
	}
	if target == nil {
		return ErrNilTarget
	}

	t := reflect.TypeOf(target)
	r.mu.RLock()
	validators := r.validators[t]
	r.mu.RUnlock()

	if len(validators) == 0 {
		return fmt.Errorf("%w for %s", ErrNoValidator, TypeNameOf(t))
	}

	for _, validate := range validators {
		validate(target, violations)
	}
	violations.Seal()
	return nil
}
