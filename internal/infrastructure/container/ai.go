package container

import (
	"context"
	"errors"

	"github.com/culinaryos/kitchen/internal/infrastructure/ai"
	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	"github.com/culinaryos/kitchen/internal/infrastructure/monitoring"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// AIModule provides the chef assistant and the video searcher.
// Missing API keys leave the collaborator offline instead of failing startup.
var AIModule = fx.Provide(
	NewChefAssistant,
	NewVideoSearcher,
)

// NewChefAssistant creates the Gemini assistant and closes its client on stop
func NewChefAssistant(
	lc fx.Lifecycle,
	cfg *config.Config,
	metrics *monitoring.MetricsCollector,
	tracing *monitoring.TracingProvider,
	log *zap.Logger,
) (outbound.ChefAssistant, error) {
	chef, err := ai.NewGeminiAssistant(context.Background(), cfg.AI, metrics, tracing, log)
	if errors.Is(err, outbound.ErrProviderNotConfigured) {
		log.Warn("Gemini API key not set, chef assistant is offline")
		return ai.Unavailable{}, nil
	}
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return chef.Close()
		},
	})
	return chef, nil
}

// NewVideoSearcher creates the YouTube searcher behind a read-through cache
func NewVideoSearcher(
	cfg *config.Config,
	cache outbound.CacheRepository,
	metrics *monitoring.MetricsCollector,
	tracing *monitoring.TracingProvider,
	log *zap.Logger,
) (outbound.VideoSearcher, error) {
	searcher, err := ai.NewYouTubeSearcher(context.Background(), cfg.AI, metrics, tracing, log)
	if errors.Is(err, outbound.ErrProviderNotConfigured) {
		log.Warn("YouTube API key not set, video search is offline")
		return ai.Unavailable{}, nil
	}
	if err != nil {
		return nil, err
	}

	return ai.NewCachedVideoSearcher(searcher, cache, cfg.AI.CacheTTL, log), nil
}
