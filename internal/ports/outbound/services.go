package outbound

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrProviderNotConfigured is returned by external collaborators that lack credentials
var ErrProviderNotConfigured = errors.New("provider not configured")

// ChefAssistant is the generative model behind chef chat and dish suggestions
type ChefAssistant interface {
	Chat(ctx context.Context, message string) (string, error)
	SuggestDish(ctx context.Context) (string, error)
}

// Video is a single video search hit
type Video struct {
	Title        string
	Thumbnail    string
	VideoID      string
	ChannelTitle string
}

// VideoSearcher finds cooking videos for a free-text query
type VideoSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]Video, error)
}

// TokenIssuer issues and revokes bearer tokens for authenticated users
type TokenIssuer interface {
	Issue(userID uuid.UUID, email string) (string, error)
	Revoke(ctx context.Context, token string) error
}

// MetricsRecorder receives business measurements from the application layer
type MetricsRecorder interface {
	// RankingCompleted records one recommendation run. source is "cache" or "store".
	RankingCompleted(source string, pantryNames, catalogSize int, percentages []int, duration time.Duration)
	RecipeEvent(name string)
	UserRegistered()
	CacheOperation(operation, status string)
}
