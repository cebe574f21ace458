package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

type GeminiService interface {
	GenerateJSON(ctx context.Context, prompt string, temperature float32) (string, error)
	GenerateJSONWithRetry(ctx context.Context, prompt string, temperature float32) (string, error)
}

type geminiService struct {
	client       *genai.Client
	modelName    string
	maxRetries   int
	initialDelay time.Duration
}

func NewGeminiService(apiKey, modelName string, maxRetries int, initialDelay time.Duration) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:       client,
		modelName:    modelName,
		maxRetries:   maxRetries,
		initialDelay: initialDelay,
	}, nil
}

// GenerateJSON implements GeminiService.
func (g *geminiService) GenerateJSON(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  4096,
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

// GenerateJSONWithRetry implements GeminiService. Transient provider
// failures get bounded exponential backoff; the caller's context cancels
// the wait as well as the outbound request.
func (g *geminiService) GenerateJSONWithRetry(ctx context.Context, prompt string, temperature float32) (string, error) {
	var lastErr error
	delay := g.initialDelay

	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		result, err := g.GenerateJSON(ctx, prompt, temperature)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt < g.maxRetries {
			log.Warn().
				Err(err).
				Int("attempt", attempt).
				Dur("backoff", delay).
				Msg("generation attempt failed, retrying")

			select {
			case <-ctx.Done():
				return "", fmt.Errorf("context cancelled: %w", ctx.Err())
			case <-time.After(delay):
			}
			delay *= 2
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", g.maxRetries, lastErr)
}
