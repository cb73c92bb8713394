package ai

import (
	"context"
	"time"

	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/culinaryos/kitchen/pkg/healthcheck"
	"go.uber.org/zap"
)

// HealthChecker reports which AI collaborators are configured. A missing
// provider never makes the service unhealthy since every AI endpoint has a fallback.
type HealthChecker struct {
	chef   outbound.ChefAssistant
	videos outbound.VideoSearcher
	logger *zap.Logger
}

var _ healthcheck.Checker = (*HealthChecker)(nil)

// NewHealthChecker creates a new AI health checker
func NewHealthChecker(chef outbound.ChefAssistant, videos outbound.VideoSearcher, logger *zap.Logger) *HealthChecker {
	return &HealthChecker{
		chef:   chef,
		videos: videos,
		logger: logger.Named("ai-health"),
	}
}

// Providers maps each collaborator to whether it has credentials
func (h *HealthChecker) Providers() map[string]bool {
	return map[string]bool{
		"chef_assistant": configured(h.chef),
		"video_search":   configured(h.videos),
	}
}

// Check implements healthcheck.Checker
func (h *HealthChecker) Check(_ context.Context) healthcheck.Check {
	start := time.Now()
	providers := h.Providers()

	message := "all providers configured"
	for name, ok := range providers {
		if !ok {
			message = "running with offline providers"
			h.logger.Debug("AI provider offline", zap.String("provider", name))
		}
	}

	return healthcheck.Check{
		Name:        "ai",
		Status:      healthcheck.StatusHealthy,
		Message:     message,
		Metadata:    providers,
		LastChecked: start,
		Duration:    time.Since(start),
	}
}

func configured(provider interface{}) bool {
	if provider == nil {
		return false
	}
	_, offline := provider.(Unavailable)
	return !offline
}
