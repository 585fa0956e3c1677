package repository

import (
	"context"

	"pathwise-core/internal/domain/entity"
)

// ProfileStore persists one UserProfile per user id. Load returns a fresh
// empty profile when none exists.
type ProfileStore interface {
	Load(ctx context.Context, userID string) (*entity.UserProfile, error)
	Save(ctx context.Context, profile *entity.UserProfile) error
}

// ResponseCache is a TTL keyed store of computed recommendation sets.
type ResponseCache interface {
	Get(key string) (*entity.RecommendationResult, bool)
	Set(key string, result *entity.RecommendationResult)
}

// InflightGroup collapses concurrent computations sharing a key. joined
// reports whether the caller attached to an already running computation.
type InflightGroup interface {
	Do(key string, fn func() (*entity.RecommendationResult, error)) (res *entity.RecommendationResult, joined bool, err error)
}

type AIProvider interface {
	Generate(ctx context.Context, prompt string) (*entity.AIResponse, error)
}

// Analyzer answers the free-form analysis endpoint with a single model.
type Analyzer interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}

type ProblemProvider interface {
	Search(ctx context.Context, topic string) ([]entity.Candidate, error)
}

// VideoProvider returns an empty slice, not an error, when upstream has no
// results.
type VideoProvider interface {
	Search(ctx context.Context, topic string) ([]entity.Candidate, error)
}

// TopicGraph maps a canonical topic to related terms.
type TopicGraph interface {
	Related(topic string) []string
}
