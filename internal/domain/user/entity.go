// Package user defines the account that owns a pantry, a meal plan and orders
package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrEmailTooLong       = errors.New("email too long")
	ErrNameRequired       = errors.New("name is required")
	ErrNameTooLong        = errors.New("name too long")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong    = errors.New("password too long")
	ErrPasswordMismatch   = errors.New("password does not match")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Known dietary preference labels. Other labels are stored as given.
const (
	DietDiabetic   = "diabetic"
	DietVegan      = "vegan"
	DietVegetarian = "vegetarian"
	DietGlutenFree = "gluten-free"
	DietDairyFree  = "dairy-free"
	DietKeto       = "keto"
)

// User represents a user in the system
type User struct {
	id                 uuid.UUID
	email              string
	name               string
	passwordHash       string
	profilePicture     string
	dietaryPreferences []string
	createdAt          time.Time
	updatedAt          time.Time
}

// ProfilePatch is a partial profile update. Nil fields are left unchanged.
type ProfilePatch struct {
	Name               *string
	Email              *string
	ProfilePicture     *string
	DietaryPreferences []string
	// ReplacePreferences distinguishes "clear preferences" from "leave unchanged"
	ReplacePreferences bool
}

// NewUser creates a new user with validation. cost selects the bcrypt work factor.
func NewUser(email, name, password string, cost int) (*User, error) {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password, cost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &User{
		id:                 uuid.New(),
		email:              email,
		name:               name,
		passwordHash:       hash,
		dietaryPreferences: []string{},
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// Restore rebuilds a User from persisted state
func Restore(id uuid.UUID, email, name, passwordHash, profilePicture string, prefs []string, createdAt, updatedAt time.Time) *User {
	if prefs == nil {
		prefs = []string{}
	}
	return &User{
		id:                 id,
		email:              email,
		name:               name,
		passwordHash:       passwordHash,
		profilePicture:     profilePicture,
		dietaryPreferences: prefs,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// ID returns the user's ID
func (u *User) ID() uuid.UUID {
	return u.id
}

// Email returns the lower-cased email
func (u *User) Email() string {
	return u.email
}

func (u *User) Name() string {
	return u.name
}

// PasswordHash returns the bcrypt hash for persistence
func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) ProfilePicture() string {
	return u.profilePicture
}

// DietaryPreferences returns labels such as "diabetic" or "vegan"
func (u *User) DietaryPreferences() []string {
	return append([]string{}, u.dietaryPreferences...)
}

// HasDietaryPreference reports whether the label is set, ignoring case
func (u *User) HasDietaryPreference(label string) bool {
	for _, p := range u.dietaryPreferences {
		if strings.EqualFold(p, label) {
			return true
		}
	}
	return false
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// CheckPassword returns ErrPasswordMismatch when password does not match the stored hash
func (u *User) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// ChangePassword verifies the old password and stores a hash of the new one
func (u *User) ChangePassword(oldPassword, newPassword string, cost int) error {
	if err := u.CheckPassword(oldPassword); err != nil {
		return err
	}

	hash, err := hashPassword(newPassword, cost)
	if err != nil {
		return err
	}

	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}

// UpdateProfile applies a partial profile update. On error nothing changes.
func (u *User) UpdateProfile(p ProfilePatch) error {
	name := u.name
	if p.Name != nil {
		name = strings.TrimSpace(*p.Name)
		if err := validateName(name); err != nil {
			return err
		}
	}

	email := u.email
	if p.Email != nil {
		email = normalizeEmail(*p.Email)
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	u.name = name
	u.email = email
	if p.ProfilePicture != nil {
		u.profilePicture = strings.TrimSpace(*p.ProfilePicture)
	}
	if p.ReplacePreferences {
		u.dietaryPreferences = cleanPreferences(p.DietaryPreferences)
	}
	u.updatedAt = time.Now()
	return nil
}

func hashPassword(password string, cost int) (string, error) {
	if err := validatePassword(password); err != nil {
		return "", err
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errors.New("failed to hash password")
	}
	return string(hashed), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cleanPreferences(prefs []string) []string {
	out := make([]string, 0, len(prefs))
	seen := make(map[string]struct{}, len(prefs))
	for _, p := range prefs {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	if len(email) > 255 {
		return ErrEmailTooLong
	}
	return nil
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

func validatePassword(password string) error {
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	if len(password) > 72 {
		return ErrPasswordTooLong
	}
	return nil
}
