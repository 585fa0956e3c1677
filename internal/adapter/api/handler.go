package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pathwise-core/internal/domain/entity"
	"pathwise-core/internal/logging"
	"pathwise-core/internal/usecase"
)

type RecommendationHandler struct {
	orchestrator *usecase.Orchestrator
	analysis     *usecase.AnalysisService
	validate     *validator.Validate
}

func NewRecommendationHandler(orch *usecase.Orchestrator, analysis *usecase.AnalysisService) *RecommendationHandler {
	return &RecommendationHandler{
		orchestrator: orch,
		analysis:     analysis,
		validate:     validator.New(),
	}
}

func (h *RecommendationHandler) HandleRecommend(c *fiber.Ctx) error {
	var req entity.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request parameters"})
	}

	ctx := c.UserContext()
	out, err := h.orchestrator.Execute(ctx, req)
	if err != nil {
		// The Delivery layer maps the business error to HTTP status codes
		if errors.Is(err, entity.ErrInvalidRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		logging.Ctx(ctx).Error().Err(err).Str("platform", req.Platform).Msg("recommendation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": entity.ErrInternalServer.Error()})
	}

	c.Set("X-Cache-Hit", "false")
	if out.CacheHit {
		c.Set("X-Cache-Hit", "true")
	}
	return c.Status(fiber.StatusOK).JSON(out.Result)
}

func (h *RecommendationHandler) HandleAnalyze(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	ctx := c.UserContext()
	resp, err := h.analysis.Analyze(ctx, payload)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("analysis failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": entity.ErrInternalServer.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
