package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation", NewValidationError("bad"), http.StatusBadRequest},
		{"invalid password", NewInvalidPasswordError(), http.StatusBadRequest},
		{"credentials", NewInvalidCredentialsError(), http.StatusUnauthorized},
		{"recipe", NewRecipeNotFoundError("r1"), http.StatusNotFound},
		{"pantry item", NewPantryItemNotFoundError("p1"), http.StatusNotFound},
		{"order", NewOrderNotFoundError("o1"), http.StatusNotFound},
		{"email", NewEmailAlreadyExistsError("a@b.c"), http.StatusConflict},
		{"rate limit", NewTooManyRequestsError(), http.StatusTooManyRequests},
		{"unavailable", NewServiceUnavailableError("gemini"), http.StatusServiceUnavailable},
		{"external", NewExternalServiceError("youtube", fmt.Errorf("boom")), http.StatusBadGateway},
		{"database", NewDatabaseError("load", fmt.Errorf("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestWrapKeepsAppError(t *testing.T) {
	original := NewRecipeNotFoundError("r1")
	wrapped := fmt.Errorf("loading: %w", original)

	assert.Same(t, original, Wrap(wrapped, "ignored"))
	assert.True(t, Is(wrapped, CodeRecipeNotFound))
	assert.Equal(t, CodeRecipeNotFound, GetCode(wrapped))
}

func TestWrapPlainError(t *testing.T) {
	cause := stderrors.New("disk on fire")
	appErr := Wrap(cause, "could not save")

	assert.Equal(t, CodeInternal, appErr.Code)
	assert.Equal(t, "could not save", appErr.Message)
	assert.ErrorIs(t, appErr, cause)
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestValidationErrorsMessage(t *testing.T) {
	appErr := NewValidationErrors([]ValidationError{
		{Field: "name", Tag: "required", Message: "name is required"},
		{Field: "category", Tag: "oneof", Message: "category is invalid"},
	})

	assert.Equal(t, "name is required; category is invalid", appErr.Details)
	assert.Contains(t, appErr.Metadata, "validation_errors")
}
