// Package pantry provides the application layer for a user's pantry
package pantry

import (
	"context"
	stderrors "errors"

	"github.com/culinaryos/kitchen/internal/domain/pantry"
	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/culinaryos/kitchen/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PantryService implements the pantry use cases
type PantryService struct {
	pantryRepo outbound.PantryRepository
	logger     *zap.Logger
}

var _ inbound.PantryService = (*PantryService)(nil)

// NewPantryService creates a new pantry service
func NewPantryService(pantryRepo outbound.PantryRepository, logger *zap.Logger) *PantryService {
	return &PantryService{
		pantryRepo: pantryRepo,
		logger:     logger.Named("pantry-service"),
	}
}

// ListItems returns the user's pantry in insertion order
func (s *PantryService) ListItems(ctx context.Context, userID uuid.UUID) ([]inbound.PantryItemDTO, error) {
	return s.snapshot(ctx, userID)
}

// AddItem adds an item and returns the full pantry
func (s *PantryService) AddItem(ctx context.Context, userID uuid.UUID, cmd inbound.PantryItemCommand) ([]inbound.PantryItemDTO, error) {
	item, err := pantry.NewItem(userID, cmd.Name, cmd.Category, cmd.Quantity, cmd.Expiry, cmd.Color)
	if err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.pantryRepo.Create(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("add pantry item", err)
	}

	s.logger.Info("Pantry item added",
		zap.String("user_id", userID.String()),
		zap.String("item_id", item.ID().String()),
		zap.String("category", string(item.Category())),
	)
	return s.snapshot(ctx, userID)
}

// UpdateItem merges the non-empty fields of cmd into the item and returns the full pantry
func (s *PantryService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, cmd inbound.PantryItemCommand) ([]inbound.PantryItemDTO, error) {
	item, err := s.pantryRepo.FindByID(ctx, userID, itemID)
	if err != nil {
		return nil, s.translate(err, itemID, "find pantry item")
	}

	if err := item.Apply(pantry.Patch{
		Name:     cmd.Name,
		Category: cmd.Category,
		Quantity: cmd.Quantity,
		Expiry:   cmd.Expiry,
		ColorTag: cmd.Color,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.pantryRepo.Update(ctx, item); err != nil {
		return nil, s.translate(err, itemID, "update pantry item")
	}

	return s.snapshot(ctx, userID)
}

// RemoveItem deletes an item and returns the full pantry
func (s *PantryService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) ([]inbound.PantryItemDTO, error) {
	if err := s.pantryRepo.Delete(ctx, userID, itemID); err != nil {
		return nil, s.translate(err, itemID, "remove pantry item")
	}

	s.logger.Info("Pantry item removed",
		zap.String("user_id", userID.String()),
		zap.String("item_id", itemID.String()),
	)
	return s.snapshot(ctx, userID)
}

func (s *PantryService) snapshot(ctx context.Context, userID uuid.UUID) ([]inbound.PantryItemDTO, error) {
	items, err := s.pantryRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list pantry items", err)
	}
	return ItemsToDTOs(items), nil
}

func (s *PantryService) translate(err error, itemID uuid.UUID, operation string) error {
	if stderrors.Is(err, pantry.ErrItemNotFound) {
		return errors.NewPantryItemNotFoundError(itemID.String())
	}
	return errors.NewDatabaseError(operation, err)
}

// ItemToDTO converts a pantry item to its API representation
func ItemToDTO(item *pantry.Item) inbound.PantryItemDTO {
	return inbound.PantryItemDTO{
		ID:       item.ID(),
		Name:     item.Name(),
		Category: string(item.Category()),
		Quantity: item.Quantity(),
		Expiry:   item.Expiry(),
		Color:    item.ColorTag(),
	}
}

// ItemsToDTOs converts pantry items, never returning nil
func ItemsToDTOs(items []*pantry.Item) []inbound.PantryItemDTO {
	dtos := make([]inbound.PantryItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ItemToDTO(item))
	}
	return dtos
}
