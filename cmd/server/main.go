package main

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"google.golang.org/genai"

	"pathwise-core/internal/adapter/api"
	"pathwise-core/internal/adapter/client"
	"pathwise-core/internal/adapter/store"
	"pathwise-core/internal/config"
	"pathwise-core/internal/domain/repository"
	"pathwise-core/internal/logging"
	"pathwise-core/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Error().Err(err).Msg("failed to load config")
		os.Exit(1)
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	ctx := context.Background()

	profileStore, closeStore, err := openProfileStore(ctx, cfg)
	if err != nil {
		logging.Error().Err(err).Str("backend", cfg.ProfileStore).Msg("failed to open profile store")
		os.Exit(1)
	}
	defer closeStore()

	genaiCfg := &genai.ClientConfig{APIKey: cfg.GeminiAPIKey, Backend: genai.BackendGeminiAPI}
	if cfg.GoogleCloudProject != "" {
		genaiCfg = &genai.ClientConfig{
			Project:  cfg.GoogleCloudProject,
			Location: cfg.GoogleCloudLocation,
			Backend:  genai.BackendVertexAI,
		}
	}
	genaiClient, err := genai.NewClient(ctx, genaiCfg)
	if err != nil {
		logging.Error().Err(err).Msg("failed to init genai client")
		os.Exit(1)
	}

	primaryModel := client.NewGeminiClientFromClient(genaiClient, cfg.PrimaryModel)
	fallbackModel := client.NewGeminiClientFromClient(genaiClient, cfg.FallbackModel)
	gateway := usecase.NewResilientProvider(primaryModel, fallbackModel,
		usecase.WithMaxRetries(cfg.MaxRetries),
		usecase.WithRetryDelay(cfg.RetryDelay),
	)
	analyzer := client.NewGeminiAnalyzer(genaiClient, cfg.AnalysisModel)

	// Inject the adapters into the Orchestration Layer
	orchestrator := usecase.NewOrchestrator(
		usecase.NewProfileEngine(profileStore),
		store.NewResponseCache(cfg.CacheTTL),
		store.NewInflightGroup(),
		gateway,
		client.NewLeetCodeSearch(cfg.LeetCodeURL),
		client.NewYouTubeSearch(cfg.YouTubeURL, cfg.YouTubeAPIKey),
		usecase.NewScorer(store.NewStaticTopicGraph(store.DefaultTopicRelations)),
	)

	go func() {
		warmCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Wakes up the primary model instance
		resp, _ := gateway.Generate(warmCtx, ".")
		if resp.Content == usecase.EmptyAnswer {
			logging.Warn().Str("component", "warmer").Msg("generation warm-up degraded")
			return
		}
		logging.Info().Str("component", "warmer").Str("model", resp.Model).Msg("pre-warm complete")
	}()

	// Initialize API Layer (Delivery Layer)
	app := api.NewApp()
	handler := api.NewRecommendationHandler(orchestrator, usecase.NewAnalysisService(analyzer))
	api.SetupRouter(app, handler)

	logging.Info().Str("addr", cfg.Addr()).Str("profile_store", cfg.ProfileStore).Msg("pathwise core listening")
	if err := app.Listen(cfg.Addr()); err != nil {
		logging.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func openProfileStore(ctx context.Context, cfg *config.Config) (repository.ProfileStore, func(), error) {
	switch cfg.ProfileStore {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		s := store.NewPostgresProfileStore(pool)
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return s, pool.Close, nil
	default:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		s := store.NewRedisProfileStore(rdb)
		if err := s.Ping(ctx); err != nil {
			logging.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis not reachable yet")
		}
		return s, func() { _ = rdb.Close() }, nil
	}
}
