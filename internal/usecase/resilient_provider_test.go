package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(primary, fallback *scriptedAI) *ResilientProvider {
	return NewResilientProvider(primary, fallback, WithRetryDelay(time.Millisecond))
}

func TestResilientProviderPrimarySuccess(t *testing.T) {
	primary := newScriptedAI(aiStep{content: "[1]"})
	fallback := newScriptedAI(aiStep{content: "[2]"})

	resp, err := newTestProvider(primary, fallback).Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "[1]", resp.Content)
	assert.Equal(t, int32(0), fallback.calls.Load())
}

func TestResilientProviderRetriesRateLimitThenSucceeds(t *testing.T) {
	primary := newScriptedAI(
		aiStep{err: fmt.Errorf("wrapped: %w", errRateLimited)},
		aiStep{err: errRateLimited},
		aiStep{content: "ok"},
	)
	fallback := newScriptedAI(aiStep{content: "fallback"})

	resp, err := newTestProvider(primary, fallback).Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.Equal(t, int32(3), primary.calls.Load())
	assert.Equal(t, int32(0), fallback.calls.Load())
	assert.Equal(t, 2, resp.Metadata["retry_count"])
}

func TestResilientProviderExhaustsRetriesThenFallsBack(t *testing.T) {
	primary := newScriptedAI(aiStep{err: errRateLimited})
	fallback := newScriptedAI(aiStep{content: "from fallback"})

	resp, err := newTestProvider(primary, fallback).Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "from fallback", resp.Content)
	assert.Equal(t, int32(4), primary.calls.Load(), "one attempt plus three retries")
	assert.Equal(t, int32(1), fallback.calls.Load())
	assert.Equal(t, true, resp.Metadata["fallback_used"])
}

func TestResilientProviderNonRateLimitSkipsRetry(t *testing.T) {
	primary := newScriptedAI(aiStep{err: errUnavailable})
	fallback := newScriptedAI(aiStep{content: "fb"})

	resp, err := newTestProvider(primary, fallback).Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "fb", resp.Content)
	assert.Equal(t, int32(1), primary.calls.Load())
}

func TestResilientProviderBothFailReturnsEmptyAnswer(t *testing.T) {
	primary := newScriptedAI(aiStep{err: errUnavailable})
	fallback := newScriptedAI(aiStep{err: errRateLimited})

	resp, err := newTestProvider(primary, fallback).Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, EmptyAnswer, resp.Content)
	assert.Equal(t, true, resp.Metadata["degraded"])
	assert.Equal(t, int32(1), fallback.calls.Load(), "fallback is never retried")
}

func TestResilientProviderUsesFixedDelay(t *testing.T) {
	primary := newScriptedAI(aiStep{err: errRateLimited}, aiStep{content: "ok"})
	fallback := newScriptedAI(aiStep{content: "fb"})
	p := NewResilientProvider(primary, fallback, WithRetryDelay(40*time.Millisecond))

	start := time.Now()
	_, err := p.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestResilientProviderCancelledDuringWait(t *testing.T) {
	primary := newScriptedAI(aiStep{err: errRateLimited})
	fallback := newScriptedAI(aiStep{err: errUnavailable})
	p := NewResilientProvider(primary, fallback, WithRetryDelay(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	resp, err := p.Generate(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, EmptyAnswer, resp.Content)
	assert.Equal(t, int32(1), primary.calls.Load())
}

func TestResilientProviderDefaults(t *testing.T) {
	p := NewResilientProvider(nil, nil)
	assert.Equal(t, 3, p.maxRetries)
	assert.Equal(t, 2*time.Second, p.retryDelay)
}
