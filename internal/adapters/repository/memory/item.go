package memory

import (
	"context"
	"errors"

	"itemservice/internal/core/domain/item"
	"itemservice/internal/core/ports"
	memoryPlatform "itemservice/internal/platform/repository/memory"
)

type ItemRepository struct {
	store *memoryPlatform.Repository[*item.Item]
}

var _ ports.ItemRepository = (*ItemRepository)(nil)

func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		store: memoryPlatform.New(memoryPlatform.WithClone(cloneItem)),
	}
}

func (r *ItemRepository) Save(ctx context.Context, entity *item.Item) error {
	err := r.store.Save(ctx, entity)
	if errors.Is(err, memoryPlatform.ErrAlreadyExists) {
		return &item.AlreadyExistsError{ID: entity.ID}
	}
	return err
}

func (r *ItemRepository) Update(ctx context.Context, entity *item.Item) error {
	return notFound(r.store.Update(ctx, entity))
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*item.Item, error) {
	entity, err := r.store.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return entity, nil
}

func (r *ItemRepository) List(ctx context.Context) ([]*item.Item, error) {
	return r.store.List(ctx)
}

// Count backs the memory storage health check.
func (r *ItemRepository) Count(ctx context.Context) (int, error) {
	return r.store.Count(ctx)
}

func notFound(err error) error {
	if errors.Is(err, memoryPlatform.ErrNotFound) {
		return item.ErrItemNotFound
	}
	return err
}

func cloneItem(src *item.Item) *item.Item {
	dst := *src
	if src.Price != nil {
		dst.Price = item.IntPtr(*src.Price)
	}
	if src.Quantity != nil {
		dst.Quantity = item.IntPtr(*src.Quantity)
	}
	return &dst
}
