package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathwise-core/internal/domain/entity"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func sampleResult(title string) *entity.RecommendationResult {
	return &entity.RecommendationResult{Recommendations: []entity.Recommendation{
		{Title: title, URL: "https://example.com/" + title},
	}}
}

func TestResponseCacheRoundTripBeforeTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}
	c := NewResponseCacheWithClock(30*time.Minute, clock.Now)

	want := sampleResult("graphs")
	c.Set("leetcode-practice-graphs", want)
	clock.Advance(29 * time.Minute)

	got, ok := c.Get("leetcode-practice-graphs")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestResponseCacheExpiresAndEvictsOnRead(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}
	c := NewResponseCacheWithClock(30*time.Minute, clock.Now)

	c.Set("k", sampleResult("x"))
	clock.Advance(30*time.Minute + time.Second)
	assert.Equal(t, 1, c.Len(), "eviction is lazy")

	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestResponseCacheExactlyAtTTLIsFresh(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}
	c := NewResponseCacheWithClock(time.Minute, clock.Now)

	c.Set("k", sampleResult("x"))
	clock.Advance(time.Minute)

	_, ok := c.Get("k")
	assert.True(t, ok)
}

func TestResponseCacheMiss(t *testing.T) {
	c := NewResponseCache(0)
	_, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, DefaultResponseTTL, c.ttl)
}

func TestResponseCacheOverwriteRefreshesCreatedAt(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}
	c := NewResponseCacheWithClock(10*time.Minute, clock.Now)

	c.Set("k", sampleResult("old"))
	clock.Advance(8 * time.Minute)
	c.Set("k", sampleResult("new"))
	clock.Advance(8 * time.Minute)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", got.Recommendations[0].Title)
}
