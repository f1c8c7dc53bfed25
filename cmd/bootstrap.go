package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"smart-task-planner.com/smart-task-planner/internal/ai"
	config "smart-task-planner.com/smart-task-planner/internal/configs"
	"smart-task-planner.com/smart-task-planner/internal/planner"
)

func loadConfig() (config.Config, *zap.Logger, error) {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}

	if envErr != nil {
		logger.Info(".env file not found, using environment variables")
	}
	return cfg, logger, nil
}

// newPlanner builds the plan pipeline. Without an API key every plan is the
// fallback plan.
func newPlanner(ctx context.Context, cfg config.Config, logger *zap.Logger) (*planner.Service, error) {
	client, err := ai.NewGeminiClient(ctx, ai.GeminiConfig{
		APIKey:          cfg.GeminiAPIKey,
		Model:           cfg.GeminiModel,
		BaseURL:         cfg.GeminiBaseURL,
		MaxOutputTokens: cfg.GeminiMaxTokens,
		Temperature:     cfg.GeminiTemperature,
	})
	switch {
	case errors.Is(err, ai.ErrMissingAPIKey):
		logger.Warn("GEMINI_API_KEY is not set, plans will use sample data")
		return planner.NewService(nil, nil, logger), nil
	case err != nil:
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	logger.Info("gemini client ready", zap.String("model", client.Model()))
	return planner.NewService(client, nil, logger), nil
}
