// Package assistant fronts the chef model, video search and the
// diabetic-friendly substitution table
package assistant

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/culinaryos/kitchen/internal/domain/matching"
	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/culinaryos/kitchen/pkg/errors"
	"go.uber.org/zap"
)

const (
	// OfflineReply is shown when the chef model has no credentials
	OfflineReply = "I'm currently offline (API Key Missing). Please check my settings!"
	// TroubleReply is shown when the chef model fails
	TroubleReply = "I'm having a little trouble thinking right now. The oven might be too hot! Try again in a moment."
	// FallbackSuggestion is served when no dish can be generated
	FallbackSuggestion = "Classic Spaghetti Carbonara"
	// NoSubstituteMessage accompanies a lookup without a known swap
	NoSubstituteMessage = "No specific substitute found, try reducing portion size."

	// ReplyMetadataKey carries the user-facing chat reply on chat errors
	ReplyMetadataKey = "reply"

	defaultMaxVideos = 9
)

var substitutions = map[string]string{
	"sugar":       "Stevia or Erythritol",
	"white rice":  "Cauliflower Rice or Quinoa",
	"white flour": "Almond Flour or Coconut Flour",
	"pasta":       "Zucchini Noodles or Chickpea Pasta",
	"milk":        "Unsweetened Almond Milk",
}

// AssistantService implements the AI helper use cases
type AssistantService struct {
	chef      outbound.ChefAssistant
	videos    outbound.VideoSearcher
	maxVideos int
	logger    *zap.Logger
}

var _ inbound.AssistantService = (*AssistantService)(nil)

// NewAssistantService creates a new assistant service
func NewAssistantService(
	chef outbound.ChefAssistant,
	videos outbound.VideoSearcher,
	maxVideos int,
	logger *zap.Logger,
) *AssistantService {
	if maxVideos <= 0 {
		maxVideos = defaultMaxVideos
	}
	return &AssistantService{
		chef:      chef,
		videos:    videos,
		maxVideos: maxVideos,
		logger:    logger.Named("assistant-service"),
	}
}

// Chat forwards a message to the chef model. Errors carry a reply suitable for display.
func (s *AssistantService) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errors.NewValidationError("message is required")
	}

	reply, err := s.chef.Chat(ctx, message)
	if err != nil {
		if stderrors.Is(err, outbound.ErrProviderNotConfigured) {
			return "", errors.NewServiceUnavailableError("chef assistant").
				WithMetadata(ReplyMetadataKey, OfflineReply)
		}
		s.logger.Error("Chef chat failed", zap.Error(err))
		return "", errors.NewExternalServiceError("chef assistant", err).
			WithMetadata(ReplyMetadataKey, TroubleReply)
	}
	return reply, nil
}

// SuggestDish returns a dish name, falling back to a classic when the model is unavailable
func (s *AssistantService) SuggestDish(ctx context.Context) string {
	suggestion, err := s.chef.SuggestDish(ctx)
	if err != nil || strings.TrimSpace(suggestion) == "" {
		if err != nil && !stderrors.Is(err, outbound.ErrProviderNotConfigured) {
			s.logger.Warn("Dish suggestion failed, using fallback", zap.Error(err))
		}
		return FallbackSuggestion
	}
	return suggestion
}

// SearchVideos returns up to the configured number of cooking videos
func (s *AssistantService) SearchVideos(ctx context.Context, query string) ([]inbound.VideoDTO, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.NewValidationError("query is required")
	}

	videos, err := s.videos.Search(ctx, query, s.maxVideos)
	if err != nil {
		if stderrors.Is(err, outbound.ErrProviderNotConfigured) {
			return nil, errors.NewServiceUnavailableError("video search")
		}
		return nil, errors.NewExternalServiceError("video search", err)
	}

	dtos := make([]inbound.VideoDTO, 0, len(videos))
	for i, v := range videos {
		if i == s.maxVideos {
			break
		}
		dtos = append(dtos, inbound.VideoDTO{
			Title:        v.Title,
			Thumbnail:    v.Thumbnail,
			VideoID:      v.VideoID,
			ChannelTitle: v.ChannelTitle,
		})
	}
	return dtos, nil
}

// Substitute looks up a diabetic-friendly swap for an ingredient
func (s *AssistantService) Substitute(_ context.Context, ingredient string) inbound.SubstitutionDTO {
	if swap, ok := substitutions[strings.TrimSpace(matching.Normalize(ingredient))]; ok {
		return inbound.SubstitutionDTO{Found: true, Original: ingredient, Substitute: swap}
	}
	return inbound.SubstitutionDTO{Found: false, Message: NoSubstituteMessage}
}
