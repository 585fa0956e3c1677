package client

import (
	"context"
	"strings"

	"google.golang.org/genai"
)

// GeminiAnalyzer serves the free-form analysis endpoint: one model, one call.
type GeminiAnalyzer struct {
	client *genai.Client
	model  string
}

func NewGeminiAnalyzer(client *genai.Client, model string) *GeminiAnalyzer {
	return &GeminiAnalyzer{client: client, model: model}
}

func (a *GeminiAnalyzer) Analyze(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyError(a.model, err)
	}
	return strings.TrimSpace(resp.Text()), nil
}
