// Package pantry models the ingredients a user currently has on hand
package pantry

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item is a single pantry entry owned by exactly one user
type Item struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	name      string
	category  Category
	quantity  string
	expiry    string
	colorTag  string
	createdAt time.Time
	updatedAt time.Time
}

// Patch describes a partial update. Empty fields keep their current values.
type Patch struct {
	Name     string
	Category string
	Quantity string
	Expiry   string
	ColorTag string
}

// NewItem creates a pantry item with validation
func NewItem(ownerID uuid.UUID, name, category, quantity, expiry, colorTag string) (*Item, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	cat, err := ParseCategory(category)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(quantity) == "" {
		return nil, ErrQuantityRequired
	}

	now := time.Now()
	return &Item{
		id:        uuid.New(),
		ownerID:   ownerID,
		name:      name,
		category:  cat,
		quantity:  strings.TrimSpace(quantity),
		expiry:    strings.TrimSpace(expiry),
		colorTag:  colorTag,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Restore rebuilds an Item from persisted state
func Restore(id, ownerID uuid.UUID, name string, category Category, quantity, expiry, colorTag string, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		category:  category,
		quantity:  quantity,
		expiry:    expiry,
		colorTag:  colorTag,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Apply merges a partial update into the item
func (i *Item) Apply(p Patch) error {
	name := i.name
	if n := strings.TrimSpace(p.Name); n != "" {
		if err := validateName(n); err != nil {
			return err
		}
		name = n
	}

	category := i.category
	if p.Category != "" {
		c, err := ParseCategory(p.Category)
		if err != nil {
			return err
		}
		category = c
	}

	i.name = name
	i.category = category
	if q := strings.TrimSpace(p.Quantity); q != "" {
		i.quantity = q
	}
	if e := strings.TrimSpace(p.Expiry); e != "" {
		i.expiry = e
	}
	if p.ColorTag != "" {
		i.colorTag = p.ColorTag
	}
	i.updatedAt = time.Now()
	return nil
}

func (i *Item) ID() uuid.UUID {
	return i.id
}

func (i *Item) OwnerID() uuid.UUID {
	return i.ownerID
}

// Name returns the display name
func (i *Item) Name() string {
	return i.name
}

func (i *Item) Category() Category {
	return i.category
}

// Quantity returns the free-text quantity, e.g. "500g"
func (i *Item) Quantity() string {
	return i.quantity
}

// Expiry returns the free-text expiry, which may be a date or a duration
func (i *Item) Expiry() string {
	return i.expiry
}

func (i *Item) ColorTag() string {
	return i.colorTag
}

func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

var expiryLayouts = []string{time.RFC3339, time.RFC3339Nano, "2006-01-02"}

// ExpiryDate parses the expiry as a date. Free-text durations such as
// "about a week" report ok=false.
func (i *Item) ExpiryDate() (t time.Time, ok bool) {
	for _, layout := range expiryLayouts {
		if parsed, err := time.Parse(layout, i.expiry); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// ExpiresWithin reports whether the item has a parseable expiry date in
// [now, now+window). Items that already expired are not included.
func (i *Item) ExpiresWithin(now time.Time, window time.Duration) bool {
	t, ok := i.ExpiryDate()
	if !ok {
		return false
	}
	return !t.Before(now) && t.Before(now.Add(window))
}

func validateName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	if len(name) > 100 {
		return ErrNameTooLong
	}
	return nil
}
