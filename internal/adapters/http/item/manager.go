package item

import (
	"context"

	"itemservice/internal/core/domain/item"
	"itemservice/internal/platform/validation"
)

type Manager interface {
	GetItem(ctx context.Context, id string) (*item.Item, error)
	ListItems(ctx context.Context) ([]*item.Item, error)
	CreateItem(ctx context.Context, draft *item.Item, violations *validation.Violations) (*item.Item, error)
	UpdateItem(ctx context.Context, id string, draft *item.Item, violations *validation.Violations) (*item.Item, error)
	ValidateItem(ctx context.Context, draft *item.Item, violations *validation.Violations) error
}

type ValidationRecorder interface {
	RecordValidation(ctx context.Context, violations *validation.Violations)
	RecordUnresolved(ctx context.Context, code string)
}
