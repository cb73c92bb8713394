package gorm

import (
	"context"
	"errors"
	"strings"

	"github.com/culinaryos/kitchen/internal/domain/user"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository implements the user repository interface using GORM
type UserRepository struct {
	db *gorm.DB
}

var _ outbound.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := UserToModel(u)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return user.ErrEmailAlreadyExists
		}
		return result.Error
	}

	return nil
}

// Update updates an existing user
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := UserToModel(u)

	result := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", model.ID).
		Select("email", "name", "password_hash", "profile_picture", "dietary_preferences", "updated_at").
		Updates(model)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return user.ErrEmailAlreadyExists
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// Delete deletes a user by ID. Pantry items, plans and orders go with it.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", id).Delete(&PantryItemModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&OrderModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("plan_id IN (?)", tx.Model(&MealPlanModel{}).Select("id").Where("user_id = ?", id)).
			Delete(&MealPlanEntryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&MealPlanModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&UserModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return user.ErrUserNotFound
		}
		return nil
	})
}

// FindByID finds a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var model UserModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, result.Error
	}

	return ModelToUser(&model), nil
}

// FindByEmail finds a user by email, case-insensitively
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel

	result := r.db.WithContext(ctx).First(&model, "email = ?", strings.ToLower(strings.TrimSpace(email)))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, result.Error
	}

	return ModelToUser(&model), nil
}

// ExistsByEmail checks if a user exists with the given email
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	result := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key")
}
