package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")
)

type Entity interface {
	GetID() string
}

// Repository keeps entities in memory, listed in insertion order. With a
// clone function configured, stored values never alias caller values.
type Repository[T Entity] struct {
	mu    sync.RWMutex
	data  map[string]T
	order []string
	clone func(T) T
}

type Option[T Entity] func(*Repository[T])

func WithClone[T Entity](clone func(T) T) Option[T] {
	return func(r *Repository[T]) {
		r.clone = clone
	}
}

func New[T Entity](opts ...Option[T]) *Repository[T] {
	r := &Repository[T]{
		data:  make(map[string]T),
		clone: func(v T) T { return v },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository[T]) Save(ctx context.Context, entity T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.GetID()
	if _, exists := r.data[id]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, id)
	}

	r.data[id] = r.clone(entity)
	r.order = append(r.order, id)
	return nil
}

func (r *Repository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, exists := r.data[id]
	if !exists {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r.clone(entity), nil
}

// Update replaces an entity in place, so its list position is kept.
func (r *Repository[T]) Update(ctx context.Context, entity T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.GetID()
	if _, exists := r.data[id]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	r.data[id] = r.clone(entity)
	return nil
}

func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entities := make([]T, len(r.order))
	for i, id := range r.order {
		entities[i] = r.clone(r.data[id])
	}
	return entities, nil
}

func (r *Repository[T]) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data), nil
}
