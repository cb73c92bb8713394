package gorm

import (
	"context"
	"errors"

	"github.com/culinaryos/kitchen/internal/domain/pantry"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PantryRepository implements the pantry repository interface using GORM
type PantryRepository struct {
	db *gorm.DB
}

var _ outbound.PantryRepository = (*PantryRepository)(nil)

// NewPantryRepository creates a new pantry repository
func NewPantryRepository(db *gorm.DB) *PantryRepository {
	return &PantryRepository{db: db}
}

// Create creates a new pantry item
func (r *PantryRepository) Create(ctx context.Context, item *pantry.Item) error {
	return r.db.WithContext(ctx).Create(PantryItemToModel(item)).Error
}

// Update updates an item the owner holds
func (r *PantryRepository) Update(ctx context.Context, item *pantry.Item) error {
	model := PantryItemToModel(item)

	result := r.db.WithContext(ctx).
		Model(&PantryItemModel{}).
		Where("id = ? AND owner_id = ?", model.ID, model.OwnerID).
		Select("name", "category", "quantity", "expiry", "color_tag", "updated_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return pantry.ErrItemNotFound
	}

	return nil
}

// Delete removes an item the owner holds
func (r *PantryRepository) Delete(ctx context.Context, ownerID, itemID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&PantryItemModel{}, "id = ? AND owner_id = ?", itemID, ownerID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return pantry.ErrItemNotFound
	}

	return nil
}

// FindByID finds an item the owner holds
func (r *PantryRepository) FindByID(ctx context.Context, ownerID, itemID uuid.UUID) (*pantry.Item, error) {
	var model PantryItemModel

	result := r.db.WithContext(ctx).First(&model, "id = ? AND owner_id = ?", itemID, ownerID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, pantry.ErrItemNotFound
		}
		return nil, result.Error
	}

	return ModelToPantryItem(&model), nil
}

// FindByOwner returns the owner's pantry in the order items were added
func (r *PantryRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*pantry.Item, error) {
	var models []PantryItemModel

	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*pantry.Item, len(models))
	for i := range models {
		items[i] = ModelToPantryItem(&models[i])
	}

	return items, nil
}

// CountByOwner returns the number of items the owner holds
func (r *PantryRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&PantryItemModel{}).Where("owner_id = ?", ownerID).Count(&count)
	return count, result.Error
}

// ReplaceForOwner swaps the owner's whole pantry in one transaction
func (r *PantryRepository) ReplaceForOwner(ctx context.Context, ownerID uuid.UUID, items []*pantry.Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", ownerID).Delete(&PantryItemModel{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}

		models := make([]*PantryItemModel, len(items))
		for i, item := range items {
			models[i] = PantryItemToModel(item)
			models[i].OwnerID = ownerID
		}
		return tx.Create(models).Error
	})
}
