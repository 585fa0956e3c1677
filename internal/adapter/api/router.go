package api

import (
	"errors"
	"os"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pathwise-core/internal/domain/entity"
	"pathwise-core/internal/logging"
)

const requestIDHeader = "X-Request-ID"

func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "Pathwise Recommendation Core",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	})
}

// errorHandler passes client errors through and hides everything else
// behind a generic 500.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	logging.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": entity.ErrInternalServer.Error()})
}

func SetupRouter(app *fiber.App, handler *RecommendationHandler) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestID)
	app.Use(accessLog)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"version": os.Getenv("APP_VERSION"),
			"env":     os.Getenv("ENV"),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API Versioning
	v1 := app.Group("/v1")
	// Endpoints
	v1.Post("/recommendations", handler.HandleRecommend)
	v1.Post("/analyze", handler.HandleAnalyze)
}

func requestID(c *fiber.Ctx) error {
	id := c.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDHeader, id)
	c.SetUserContext(logging.WithRequestID(c.UserContext(), id))
	return c.Next()
}

func accessLog(c *fiber.Ctx) error {
	err := c.Next()
	logging.Ctx(c.UserContext()).Info().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Msg("request")
	return err
}
