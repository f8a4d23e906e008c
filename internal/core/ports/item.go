package ports

import (
	"context"

	"itemservice/internal/core/domain/item"
)

type ItemRepository interface {
	Save(ctx context.Context, entity *item.Item) error
	Update(ctx context.Context, entity *item.Item) error
	GetByID(ctx context.Context, id string) (*item.Item, error)
	List(ctx context.Context) ([]*item.Item, error)
}
