// Package ai provides the Gemini chef assistant and YouTube video search adapters
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	"github.com/culinaryos/kitchen/internal/infrastructure/monitoring"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const chefSystemPrompt = `You are an expert AI Chef in the CulinaryOS application.
Help users with cooking, recipes, meal planning, and kitchen advice.

Formatting:
- Always answer in Markdown with bold section headers such as **Ingredients** and **Instructions**.
- Put ingredient lists and comparisons in a Markdown table.
- Use numbered lists for steps and keep paragraphs short.

For a recipe request, give a table of ingredients followed by step-by-step instructions.
For a simple question, answer directly and concisely.
If the question is not about food, cooking, or kitchen management, politely decline and steer back to culinary topics.`

const chefAcknowledgement = "Understood. I am ready to assist as the AI Chef."

const suggestPrompt = "Suggest ONE creative, delicious, specific dish name for a user to cook. " +
	"Just the name, nothing else. Examples: 'Beef Wellington', 'Shrimp Scampi', 'Vegetable Pad Thai'."

// GeminiAssistant implements outbound.ChefAssistant on the Gemini API
type GeminiAssistant struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	name    string
	timeout time.Duration
	metrics *monitoring.MetricsCollector
	tracing *monitoring.TracingProvider
	logger  *zap.Logger
}

// NewGeminiAssistant creates a Gemini client. It returns outbound.ErrProviderNotConfigured without an API key.
func NewGeminiAssistant(
	ctx context.Context,
	cfg config.AIConfig,
	metrics *monitoring.MetricsCollector,
	tracing *monitoring.TracingProvider,
	logger *zap.Logger,
) (*GeminiAssistant, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, outbound.ErrProviderNotConfigured
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAssistant{
		client:  client,
		model:   client.GenerativeModel(cfg.GeminiModel),
		name:    cfg.GeminiModel,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		metrics: metrics,
		tracing: tracing,
		logger:  logger.Named("gemini"),
	}, nil
}

// Chat answers a user message in the chef persona
func (g *GeminiAssistant) Chat(ctx context.Context, message string) (string, error) {
	ctx, span := g.tracing.StartAISpan(ctx, "gemini", "chat")
	defer span.End()
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	session := g.model.StartChat()
	session.History = []*genai.Content{
		{Role: "user", Parts: []genai.Part{genai.Text(chefSystemPrompt)}},
		{Role: "model", Parts: []genai.Part{genai.Text(chefAcknowledgement)}},
	}

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		g.record("chat", start, err)
		g.tracing.RecordError(ctx, err)
		return "", fmt.Errorf("failed to generate chat reply: %w", err)
	}

	reply, err := responseText(resp)
	g.record("chat", start, err)
	return reply, err
}

// SuggestDish asks the model for a single dish name
func (g *GeminiAssistant) SuggestDish(ctx context.Context) (string, error) {
	ctx, span := g.tracing.StartAISpan(ctx, "gemini", "suggest")
	defer span.End()
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	resp, err := g.model.GenerateContent(ctx, genai.Text(suggestPrompt))
	if err != nil {
		g.record("suggest", start, err)
		g.tracing.RecordError(ctx, err)
		return "", fmt.Errorf("failed to generate suggestion: %w", err)
	}

	text, err := responseText(resp)
	g.record("suggest", start, err)
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(text), `"'`), nil
}

// Close closes the underlying Gemini client
func (g *GeminiAssistant) Close() error {
	return g.client.Close()
}

func (g *GeminiAssistant) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *GeminiAssistant) record(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
		g.logger.Warn("Gemini request failed", zap.String("operation", operation), zap.String("model", g.name), zap.Error(err))
	}
	if g.metrics != nil {
		g.metrics.AIRequest("gemini", operation, status, time.Since(start))
	}
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("generated content is not text")
	}
	return b.String(), nil
}

// Unavailable stands in for a collaborator whose credentials are missing
type Unavailable struct{}

var (
	_ outbound.ChefAssistant = Unavailable{}
	_ outbound.VideoSearcher = Unavailable{}
)

// Chat always reports the provider as not configured
func (Unavailable) Chat(context.Context, string) (string, error) {
	return "", outbound.ErrProviderNotConfigured
}

// SuggestDish always reports the provider as not configured
func (Unavailable) SuggestDish(context.Context) (string, error) {
	return "", outbound.ErrProviderNotConfigured
}

// Search always reports the provider as not configured
func (Unavailable) Search(context.Context, string, int) ([]outbound.Video, error) {
	return nil, outbound.ErrProviderNotConfigured
}
