package usecase

import (
	"context"
	"fmt"
	"strings"

	"pathwise-core/internal/domain/entity"
	"pathwise-core/internal/logging"
	"pathwise-core/internal/metrics"
)

const (
	problemFallbackLimit = 5
	hintsTitle           = "Hints"
	solutionTitle        = "Solution Outline"
)

type problemAnswer struct {
	SimilarProblems *[]rankedItem `json:"similarProblems"`
	Hints           *[]string     `json:"hints"`
	SolutionOutline *string       `json:"solutionOutline"`
}

type rankedItem struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// cachesProblemFallback lists the practice platforms whose raw-candidate
// fallback is written to the response cache. Codeforces deliberately is not.
var cachesProblemFallback = map[string]bool{
	entity.PlatformLeetCode: true,
}

func (u *Orchestrator) recommendProblems(ctx context.Context, req entity.RecommendationRequest, snap *ProfileSnapshot) (*entity.RecommendationResult, bool, error) {
	if strings.TrimSpace(req.Topic) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, false, fmt.Errorf("%s needs topic and description: %w", req.Platform, entity.ErrInvalidRequest)
	}
	log := logging.Ctx(ctx)

	cands, err := u.problems.Search(ctx, req.Topic)
	if err != nil {
		log.Warn().Err(err).Str("platform", req.Platform).Msg("problem search failed, continuing without candidates")
		cands = nil
	}

	res, fellBack := withFallback(
		func() (*entity.RecommendationResult, error) {
			return u.rankProblems(ctx, req, snap, cands)
		},
		func(err error) *entity.RecommendationResult {
			log.Warn().Err(err).Str("platform", req.Platform).Msg("problem ranking failed, using raw candidates")
			return entity.FromCandidates(cands, problemFallbackLimit)
		},
	)
	if fellBack {
		metrics.RecordRecommendation(req.Platform, "fallback")
		return res, cachesProblemFallback[req.Platform], nil
	}
	metrics.RecordRecommendation(req.Platform, "ranked")
	return res, true, nil
}

func (u *Orchestrator) rankProblems(ctx context.Context, req entity.RecommendationRequest, snap *ProfileSnapshot, cands []entity.Candidate) (*entity.RecommendationResult, error) {
	resp, err := u.ai.Generate(ctx, problemPrompt(req, snap.Summary, cands))
	if err != nil {
		return nil, err
	}

	var ans problemAnswer
	if err := ExtractObject(resp.Content, &ans); err != nil {
		return nil, err
	}
	if ans.SimilarProblems == nil || ans.Hints == nil || ans.SolutionOutline == nil {
		return nil, fmt.Errorf("%w: answer is missing similarProblems, hints or solutionOutline", entity.ErrMalformedAnswer)
	}

	recs := make([]entity.Recommendation, 0, len(*ans.SimilarProblems)+2)
	for _, p := range *ans.SimilarProblems {
		recs = append(recs, entity.Recommendation{Title: p.Title, URL: p.URL, Description: p.Reason})
	}
	recs = append(recs,
		entity.Recommendation{Title: hintsTitle, Description: strings.Join(*ans.Hints, "\n\n")},
		entity.Recommendation{Title: solutionTitle, Description: *ans.SolutionOutline},
	)
	return &entity.RecommendationResult{Recommendations: recs}, nil
}
