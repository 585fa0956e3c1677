package usecase

import (
	"context"
	"fmt"

	"pathwise-core/internal/domain/entity"
	"pathwise-core/internal/domain/repository"
)

// AnalysisService forwards an arbitrary learner context to a single model.
// No cache, retry or fallback.
type AnalysisService struct {
	analyzer repository.Analyzer
}

func NewAnalysisService(a repository.Analyzer) *AnalysisService {
	return &AnalysisService{analyzer: a}
}

func (s *AnalysisService) Analyze(ctx context.Context, payload map[string]any) (*entity.AnalysisResponse, error) {
	text, err := s.analyzer.Analyze(ctx, analysisPrompt(payload))
	if err != nil {
		return nil, fmt.Errorf("analysis generation failed: %w", err)
	}
	return &entity.AnalysisResponse{Recommendation: text}, nil
}
