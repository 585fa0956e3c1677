package usecase

import (
	"context"
	"errors"
	"time"

	"pathwise-core/internal/domain/entity"
	"pathwise-core/internal/domain/repository"
	"pathwise-core/internal/logging"
	"pathwise-core/internal/metrics"
)

// EmptyAnswer is returned as content when every model failed. Callers read
// it as "no AI-derived content".
const EmptyAnswer = "[]"

const (
	defaultMaxRetries = 3
	defaultRetryDelay = 2 * time.Second
)

type ResilientProvider struct {
	primary    repository.AIProvider
	fallback   repository.AIProvider // Called once, never retried
	maxRetries int                   // Extra primary attempts after a 429
	retryDelay time.Duration         // Fixed wait between primary attempts
}

type ProviderOption func(*ResilientProvider)

func WithMaxRetries(n int) ProviderOption {
	return func(r *ResilientProvider) { r.maxRetries = n }
}

func WithRetryDelay(d time.Duration) ProviderOption {
	return func(r *ResilientProvider) { r.retryDelay = d }
}

func NewResilientProvider(primary, fallback repository.AIProvider, opts ...ProviderOption) *ResilientProvider {
	r := &ResilientProvider{
		primary:    primary,
		fallback:   fallback,
		maxRetries: defaultMaxRetries, // Total 4 attempts for Primary
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Generate never returns an error. When both tiers fail the content is
// EmptyAnswer and Metadata["degraded"] is true.
func (r *ResilientProvider) Generate(ctx context.Context, prompt string) (*entity.AIResponse, error) {
	log := logging.Ctx(ctx)

	// 1. Primary with 429 retries
	resp, attempts, err := r.executeWithRetry(ctx, r.primary, prompt)
	if err == nil {
		resp.Metadata = withMeta(resp.Metadata, "retry_count", attempts-1)
		return resp, nil
	}

	log.Warn().Err(err).Str("component", "reliability").Int("attempts", attempts).
		Msg("primary exhausted, switching to fallback")

	// 2. Fallback exactly once
	resp, err = r.fallback.Generate(ctx, prompt)
	metrics.RecordGeneration("fallback", err)
	if err == nil {
		resp.Metadata = withMeta(resp.Metadata, "fallback_used", true)
		return resp, nil
	}

	log.Error().Err(err).Str("component", "reliability").Msg("fallback failed, returning empty answer")

	// 3. Degraded
	return &entity.AIResponse{
		Content:  EmptyAnswer,
		Metadata: map[string]any{"degraded": true},
	}, nil
}

func (r *ResilientProvider) executeWithRetry(ctx context.Context, p repository.AIProvider, prompt string) (*entity.AIResponse, int, error) {
	var lastErr error
	attempt := 0
	for attempt <= r.maxRetries {
		resp, err := p.Generate(ctx, prompt)
		attempt++
		metrics.RecordGeneration("primary", err)
		if err == nil {
			return resp, attempt, nil
		}
		lastErr = err

		if !errors.Is(err, entity.ErrRateLimited) || attempt > r.maxRetries {
			break
		}

		select {
		case <-time.After(r.retryDelay):
			continue
		case <-ctx.Done():
			return nil, attempt, ctx.Err()
		}
	}
	return nil, attempt, lastErr
}

func withMeta(m map[string]any, k string, v any) map[string]any {
	if m == nil {
		m = make(map[string]any)
	}
	m[k] = v
	return m
}
