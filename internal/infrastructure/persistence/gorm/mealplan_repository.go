package gorm

import (
	"context"
	"errors"

	"github.com/culinaryos/kitchen/internal/domain/planner"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MealPlanRepository implements the meal plan repository interface using GORM
type MealPlanRepository struct {
	db *gorm.DB
}

var _ outbound.MealPlanRepository = (*MealPlanRepository)(nil)

// NewMealPlanRepository creates a new meal plan repository
func NewMealPlanRepository(db *gorm.DB) *MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// FindByUser loads the user's plan with entries in saved order
func (r *MealPlanRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*planner.WeeklyPlan, error) {
	var model MealPlanModel

	result := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&model, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, planner.ErrPlanNotFound
		}
		return nil, result.Error
	}

	return ModelToMealPlan(&model), nil
}

// Save upserts the plan row and replaces its entries
func (r *MealPlanRepository) Save(ctx context.Context, plan *planner.WeeklyPlan) error {
	model := MealPlanToModel(plan)
	entries := model.Entries
	model.Entries = nil

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"week_start", "updated_at"}),
		}).Create(model).Error
		if err != nil {
			return err
		}

		// The stored id wins when another plan row already existed for the user.
		var stored MealPlanModel
		if err := tx.Select("id").Where("user_id = ?", model.UserID).First(&stored).Error; err != nil {
			return err
		}
		planID := stored.ID

		if err := tx.Where("plan_id = ?", planID).Delete(&MealPlanEntryModel{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}

		for i := range entries {
			entries[i].PlanID = planID
		}
		return tx.Create(&entries).Error
	})
}
