package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"itemservice/internal/core/domain/item"
	"itemservice/internal/core/ports"
	"itemservice/internal/platform/logger"
	"itemservice/internal/platform/validation"
)

type Usecase struct {
	repo       ports.ItemRepository
	validators ValidatorRegistry
	newID      func() string
}

func NewUsecase(repo ports.ItemRepository, validators ValidatorRegistry) *Usecase {
	return &Usecase{
		repo:       repo,
		validators: validators,
		newID:      uuid.NewString,
	}
}

func (uc *Usecase) GetItem(ctx context.Context, id string) (*item.Item, error) {
	log := logger.FromContext(ctx)
	log.Debug("Getting item", logger.String("item_id", id))

	if id == "" {
		return nil, item.ErrInvalidItemID
	}

	return uc.repo.GetByID(ctx, id)
}

func (uc *Usecase) ListItems(ctx context.Context) ([]*item.Item, error) {
	logger.FromContext(ctx).Debug("Listing items")
	return uc.repo.List(ctx)
}

// ValidateItem runs the registered validators against draft without saving
// anything. violations may already hold binding failures.
func (uc *Usecase) ValidateItem(ctx context.Context, draft *item.Item, violations *validation.Violations) error {
	log := logger.FromContext(ctx)

	if err := uc.validators.Validate(draft, violations); err != nil {
		log.Error("Validation could not run", logger.Error(err))
		return fmt.Errorf("validate item: %w", err)
	}

	if violations.HasViolations() {
		log.Warn("Item validation failed",
			logger.String("object", violations.ObjectName()),
			logger.Int("violations", violations.Count()))
		return &item.ValidationError{Violations: violations}
	}

	return nil
}

func (uc *Usecase) CreateItem(ctx context.Context, draft *item.Item, violations *validation.Violations) (*item.Item, error) {
	log := logger.FromContext(ctx)
	log.Debug("Creating item", logger.String("item_name", draft.Name))

	if err := uc.ValidateItem(ctx, draft, violations); err != nil {
		return nil, err
	}

	created := &item.Item{
		ID:       uc.newID(),
		Name:     draft.Name,
		Price:    draft.Price,
		Quantity: draft.Quantity,
	}

	if err := uc.repo.Save(ctx, created); err != nil {
		return nil, err
	}

	log.Info("Item created", logger.String("item_id", created.ID))
	return created, nil
}

func (uc *Usecase) UpdateItem(ctx context.Context, id string, draft *item.Item, violations *validation.Violations) (*item.Item, error) {
	log := logger.FromContext(ctx)
	log.Debug("Updating item", logger.String("item_id", id))

	if id == "" {
		return nil, item.ErrInvalidItemID
	}

	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := uc.ValidateItem(ctx, draft, violations); err != nil {
		return nil, err
	}

	updated := &item.Item{
		ID:       id,
		Name:     draft.Name,
		Price:    draft.Price,
		Quantity: draft.Quantity,
	}

	if err := uc.repo.Update(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}
