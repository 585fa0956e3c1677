package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"pathwise-core/internal/domain/entity"
)

func TestClassifyErrorRateLimitedAPIError(t *testing.T) {
	err := classifyError("m", genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED"})
	assert.ErrorIs(t, err, entity.ErrRateLimited)
}

func TestClassifyErrorWrappedRateLimit(t *testing.T) {
	wrapped := errors.Join(errors.New("call failed"), genai.APIError{Code: 429})
	assert.ErrorIs(t, classifyError("m", wrapped), entity.ErrRateLimited)
}

func TestClassifyErrorMessageSniffing(t *testing.T) {
	assert.ErrorIs(t, classifyError("m", errors.New("HTTP 429 Too Many Requests")), entity.ErrRateLimited)
}

func TestClassifyErrorOtherFailures(t *testing.T) {
	err := classifyError("m", genai.APIError{Code: 500, Message: "overloaded"})
	assert.ErrorIs(t, err, entity.ErrUpstreamUnavailable)
	assert.NotErrorIs(t, err, entity.ErrRateLimited)
}
