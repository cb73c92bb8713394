package inbound

import (
	"context"

	"github.com/google/uuid"
)

// UserService handles registration, login and profile management
type UserService interface {
	Register(ctx context.Context, cmd RegisterCommand) (*AuthResultDTO, error)
	Login(ctx context.Context, cmd LoginCommand) (*AuthResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
	UpdateProfile(ctx context.Context, userID uuid.UUID, cmd UpdateProfileCommand) (*UserDTO, error)
}

// RegisterCommand contains data for registering a user
type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

// LoginCommand contains login credentials
type LoginCommand struct {
	Email    string
	Password string
}

// UpdateProfileCommand is a partial profile update. A nil slice leaves preferences unchanged.
type UpdateProfileCommand struct {
	Name               *string
	Email              *string
	ProfilePicture     *string
	DietaryPreferences *[]string
}

// UserDTO is the public view of a user
type UserDTO struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	ProfilePicture     string    `json:"profilePicture"`
	DietaryPreferences []string  `json:"dietaryPreferences"`
}

// AuthResultDTO is returned by register and login
type AuthResultDTO struct {
	UserDTO
	Token string `json:"token"`
}

// AssistantService fronts the AI and video collaborators and the substitution table
type AssistantService interface {
	Chat(ctx context.Context, message string) (string, error)
	SuggestDish(ctx context.Context) string
	SearchVideos(ctx context.Context, query string) ([]VideoDTO, error)
	Substitute(ctx context.Context, ingredient string) SubstitutionDTO
}

// VideoDTO is a cooking video search hit
type VideoDTO struct {
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	VideoID      string `json:"videoId"`
	ChannelTitle string `json:"channelTitle,omitempty"`
}

// SubstitutionDTO is the result of a diabetic-friendly swap lookup
type SubstitutionDTO struct {
	Found      bool   `json:"found"`
	Original   string `json:"original,omitempty"`
	Substitute string `json:"substitute,omitempty"`
	Message    string `json:"message,omitempty"`
}
