// Package gorm provides GORM model definitions and repositories for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the GORM model for users
type UserModel struct {
	ID                 uuid.UUID   `gorm:"type:char(36);primaryKey"`
	Email              string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name               string      `gorm:"type:varchar(255);not null"`
	PasswordHash       string      `gorm:"type:varchar(255);not null"`
	ProfilePicture     string      `gorm:"type:text"`
	DietaryPreferences StringSlice `gorm:"type:json"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Relationships
	PantryItems []PantryItemModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Orders      []OrderModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// PantryItemModel represents the GORM model for pantry items
type PantryItemModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:char(36);not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Category  string    `gorm:"type:varchar(20);not null;index"`
	Quantity  string    `gorm:"type:varchar(100);not null"`
	Expiry    string    `gorm:"type:varchar(50)"`
	ColorTag  string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// RecipeModel represents the GORM model for catalog recipes
type RecipeModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Position    int64     `gorm:"not null;default:0;index"`
	Title       string    `gorm:"type:varchar(255);not null;index"`
	Image       string    `gorm:"type:text"`
	Time        string    `gorm:"type:varchar(50)"`
	Calories    int       `gorm:"default:0"`
	Description string    `gorm:"type:text"`
	Difficulty  string    `gorm:"type:varchar(20);index"`
	Servings    int       `gorm:"default:2"`

	Tags        StringSlice     `gorm:"type:json"`
	Ingredients IngredientSlice `gorm:"type:json"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// MealPlanModel represents the GORM model for a user's weekly plan
type MealPlanModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `gorm:"type:char(36);uniqueIndex;not null"`
	WeekStart time.Time
	UpdatedAt time.Time

	// Relationships
	Entries []MealPlanEntryModel `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// MealPlanEntryModel represents one meal slot of a plan
type MealPlanEntryModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	PlanID      uuid.UUID `gorm:"type:char(36);not null;index"`
	Position    int       `gorm:"not null;default:0"`
	Day         string    `gorm:"type:varchar(3);not null"`
	RecipeRef   string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	ColorTag    string    `gorm:"type:varchar(100)"`
}

// OrderModel represents the GORM model for cooking orders
type OrderModel struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID         uuid.UUID `gorm:"type:char(36);not null;index"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Specifications string    `gorm:"type:text"`
	StartTime      time.Time `gorm:"index"`
	EndTime        time.Time
	Duration       int
	Status         string `gorm:"type:varchar(20);default:'pending';index"`
	CreatedAt      time.Time
}

// AllModels lists every model for auto-migration
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&PantryItemModel{},
		&RecipeModel{},
		&MealPlanModel{},
		&MealPlanEntryModel{},
		&OrderModel{},
	}
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

// IngredientRecord is the stored shape of one ingredient requirement
type IngredientRecord struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// IngredientSlice stores ordered ingredients as a JSON array
type IngredientSlice []IngredientRecord

// Scan implements the sql.Scanner interface
func (s *IngredientSlice) Scan(value interface{}) error {
	if value == nil {
		*s = IngredientSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into IngredientSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s IngredientSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

// BeforeCreate hook for UserModel
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for PantryItemModel
func (p *PantryItemModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeModel
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for MealPlanModel
func (m *MealPlanModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for MealPlanEntryModel
func (m *MealPlanEntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for OrderModel
func (o *OrderModel) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (UserModel) TableName() string {
	return "users"
}

func (PantryItemModel) TableName() string {
	return "pantry_items"
}

func (RecipeModel) TableName() string {
	return "recipes"
}

func (MealPlanModel) TableName() string {
	return "meal_plans"
}

func (MealPlanEntryModel) TableName() string {
	return "meal_plan_entries"
}

func (OrderModel) TableName() string {
	return "orders"
}
