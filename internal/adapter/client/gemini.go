package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"pathwise-core/internal/domain/entity"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClientFromClient(c *genai.Client, model string) *GeminiClient {
	return &GeminiClient{
		client: c,
		model:  model,
	}
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (*entity.AIResponse, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, classifyError(g.model, err)
	}

	text := result.Text()
	if text == "" {
		return nil, fmt.Errorf("model %s returned no text: %w", g.model, entity.ErrUpstreamUnavailable)
	}
	return &entity.AIResponse{
		Content: text,
		Model:   g.model,
	}, nil
}

// classifyError tags HTTP 429 answers with entity.ErrRateLimited and
// everything else with entity.ErrUpstreamUnavailable.
func classifyError(model string, err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return fmt.Errorf("model %s: %w: %v", model, entity.ErrRateLimited, err)
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "429") || strings.Contains(msg, "resource_exhausted") {
		return fmt.Errorf("model %s: %w: %v", model, entity.ErrRateLimited, err)
	}
	return fmt.Errorf("model %s: %w: %v", model, entity.ErrUpstreamUnavailable, err)
}
