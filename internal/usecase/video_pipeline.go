package usecase

import (
	"context"
	"fmt"
	"strings"

	"pathwise-core/internal/domain/entity"
	"pathwise-core/internal/logging"
	"pathwise-core/internal/metrics"
)

const videoFallbackLimit = 3

func (u *Orchestrator) recommendVideos(ctx context.Context, req entity.RecommendationRequest, snap *ProfileSnapshot) (*entity.RecommendationResult, bool, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, false, fmt.Errorf("%s needs a topic: %w", req.Platform, entity.ErrInvalidRequest)
	}
	log := logging.Ctx(ctx)

	videos, err := u.videos.Search(ctx, req.Topic)
	if err != nil {
		log.Warn().Err(err).Str("platform", req.Platform).Msg("video search failed")
		videos = nil
	}
	if len(videos) == 0 {
		metrics.RecordRecommendation(req.Platform, "empty")
		return entity.EmptyResult(), false, nil
	}

	res, fellBack := withFallback(
		func() (*entity.RecommendationResult, error) {
			return u.rankVideos(ctx, req.Topic, snap.Summary, videos)
		},
		func(err error) *entity.RecommendationResult {
			log.Warn().Err(err).Str("platform", req.Platform).Msg("video ranking unusable, using raw candidates")
			return entity.FromCandidates(videos, videoFallbackLimit)
		},
	)
	if fellBack {
		metrics.RecordRecommendation(req.Platform, "fallback")
	} else {
		metrics.RecordRecommendation(req.Platform, "ranked")
	}
	return res, true, nil
}

func (u *Orchestrator) rankVideos(ctx context.Context, topic, summary string, videos []entity.Candidate) (*entity.RecommendationResult, error) {
	resp, err := u.ai.Generate(ctx, videoRankingPrompt(topic, summary, videos))
	if err != nil {
		return nil, err
	}

	var items []rankedItem
	if err := ExtractArray(resp.Content, &items); err != nil {
		return nil, err
	}

	recs := make([]entity.Recommendation, 0, len(items))
	for _, it := range items {
		if it.Title == "" || it.URL == "" {
			continue
		}
		recs = append(recs, entity.Recommendation{Title: it.Title, URL: it.URL, Description: it.Reason})
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: ranking contained no usable videos", entity.ErrMalformedAnswer)
	}
	return &entity.RecommendationResult{Recommendations: recs}, nil
}
