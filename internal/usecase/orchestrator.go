package usecase

import (
	"context"
	"fmt"

	"pathwise-core/internal/domain/entity"
	"pathwise-core/internal/domain/repository"
	"pathwise-core/internal/logging"
	"pathwise-core/internal/metrics"
)

// RecommendOutcome is a recommendation set plus how it was obtained.
type RecommendOutcome struct {
	Result   *entity.RecommendationResult
	CacheHit bool
	Joined   bool
}

type Orchestrator struct {
	profiles *ProfileEngine
	cache    repository.ResponseCache
	inflight repository.InflightGroup
	ai       repository.AIProvider
	problems repository.ProblemProvider
	videos   repository.VideoProvider
	scorer   *Scorer
}

func NewOrchestrator(
	profiles *ProfileEngine,
	cache repository.ResponseCache,
	inflight repository.InflightGroup,
	ai repository.AIProvider,
	problems repository.ProblemProvider,
	videos repository.VideoProvider,
	scorer *Scorer,
) *Orchestrator {
	return &Orchestrator{
		profiles: profiles,
		cache:    cache,
		inflight: inflight,
		ai:       ai,
		problems: problems,
		videos:   videos,
		scorer:   scorer,
	}
}

func (u *Orchestrator) Execute(ctx context.Context, req entity.RecommendationRequest) (*RecommendOutcome, error) {
	log := logging.Ctx(ctx)

	// 1. Decay and reinforce the profile before anything else
	snap, err := u.profiles.Update(ctx, req.UserID, req.Topic)
	if err != nil {
		return nil, fmt.Errorf("profile update failed: %w", err)
	}

	// 2. Response cache
	key := req.CacheKey()
	if cached, ok := u.cache.Get(key); ok {
		metrics.CacheHits.Inc()
		log.Debug().Str("key", key).Msg("cache hit")
		return &RecommendOutcome{Result: cached, CacheHit: true}, nil
	}
	metrics.CacheMisses.Inc()

	// 3. Join or start the computation for this key. The shared run must
	// not be cancelled by whichever caller happened to start it.
	shared := context.WithoutCancel(ctx)
	hit := false
	res, joined, err := u.inflight.Do(key, func() (*entity.RecommendationResult, error) {
		// A run for this key may have finished between the lookup above and here.
		if cached, ok := u.cache.Get(key); ok {
			hit = true
			return cached, nil
		}
		res, cacheable, err := u.dispatch(shared, req, snap)
		if err != nil {
			return nil, err
		}
		if cacheable {
			u.cache.Set(key, res)
		}
		return res, nil
	})
	if joined {
		metrics.InflightJoins.Inc()
		log.Debug().Str("key", key).Msg("joined in-flight computation")
	}
	if err != nil {
		return nil, err
	}
	return &RecommendOutcome{Result: res, CacheHit: hit, Joined: joined}, nil
}

// dispatch routes to the platform pipeline. The bool reports whether the
// result may be cached.
func (u *Orchestrator) dispatch(ctx context.Context, req entity.RecommendationRequest, snap *ProfileSnapshot) (*entity.RecommendationResult, bool, error) {
	switch req.Platform {
	case entity.PlatformLeetCode, entity.PlatformCodeforces:
		return u.recommendProblems(ctx, req, snap)
	case entity.PlatformCoursera, entity.PlatformUdemy:
		return u.recommendCourses(ctx, req, snap)
	case entity.PlatformYouTube:
		return u.recommendVideos(ctx, req, snap)
	default:
		logging.Ctx(ctx).Info().Str("platform", req.Platform).Msg("unknown platform, returning no recommendations")
		return entity.EmptyResult(), false, nil
	}
}
