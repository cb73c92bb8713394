package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	"github.com/culinaryos/kitchen/internal/infrastructure/monitoring"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTubeSearcher implements outbound.VideoSearcher on the YouTube Data API
type YouTubeSearcher struct {
	service *youtube.Service
	metrics *monitoring.MetricsCollector
	tracing *monitoring.TracingProvider
	logger  *zap.Logger
}

// NewYouTubeSearcher creates a YouTube client. It returns outbound.ErrProviderNotConfigured without an API key.
func NewYouTubeSearcher(
	ctx context.Context,
	cfg config.AIConfig,
	metrics *monitoring.MetricsCollector,
	tracing *monitoring.TracingProvider,
	logger *zap.Logger,
) (*YouTubeSearcher, error) {
	if cfg.YouTubeAPIKey == "" {
		return nil, outbound.ErrProviderNotConfigured
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(cfg.YouTubeAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube client: %w", err)
	}

	return &YouTubeSearcher{
		service: service,
		metrics: metrics,
		tracing: tracing,
		logger:  logger.Named("youtube"),
	}, nil
}

// Search returns up to maxResults videos for the query
func (y *YouTubeSearcher) Search(ctx context.Context, query string, maxResults int) ([]outbound.Video, error) {
	ctx, span := y.tracing.StartAISpan(ctx, "youtube", "search")
	defer span.End()

	start := time.Now()
	resp, err := y.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		y.record(start, err)
		y.tracing.RecordError(ctx, err)
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}
	y.record(start, nil)

	videos := make([]outbound.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Snippet == nil {
			continue
		}
		video := outbound.Video{
			Title:        item.Snippet.Title,
			VideoID:      item.Id.VideoId,
			ChannelTitle: item.Snippet.ChannelTitle,
		}
		if thumbs := item.Snippet.Thumbnails; thumbs != nil {
			switch {
			case thumbs.High != nil:
				video.Thumbnail = thumbs.High.Url
			case thumbs.Default != nil:
				video.Thumbnail = thumbs.Default.Url
			}
		}
		videos = append(videos, video)
	}

	return videos, nil
}

func (y *YouTubeSearcher) record(start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
		y.logger.Warn("YouTube search failed", zap.Error(err))
	}
	if y.metrics != nil {
		y.metrics.AIRequest("youtube", "search", status, time.Since(start))
	}
}
