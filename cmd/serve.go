package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "smart-task-planner.com/smart-task-planner/internal/configs"
	httpapi "smart-task-planner.com/smart-task-planner/internal/http"
	"smart-task-planner.com/smart-task-planner/internal/locks"
	repository "smart-task-planner.com/smart-task-planner/internal/repositories"
	"smart-task-planner.com/smart-task-planner/internal/services"
)

const goalLockWait = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the goal planning HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		database, err := config.NewDatabaseClient(cfg.DatabaseDSN)
		if err != nil {
			return err
		}

		locker, closeLocker, err := newGoalLocker(cfg, logger)
		if err != nil {
			return err
		}
		defer closeLocker()

		plans, err := newPlanner(ctx, cfg, logger)
		if err != nil {
			return err
		}

		goalService := services.NewGoalService(plans, repository.NewUnitOfWork(database), locker, logger)

		e := echo.New()
		e.HideBanner = true
		httpapi.Register(e, httpapi.NewHandler(goalService, logger), cfg.RateLimit)

		go func() {
			logger.Info("HTTP server listening", zap.String("addr", cfg.AppURL))
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server stopped", zap.Error(err))
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP server shutdown", zap.Error(err))
		}

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func newGoalLocker(cfg config.Config, logger *zap.Logger) (locks.GoalLocker, func(), error) {
	if cfg.LockBackend != config.LockBackendRedis {
		return locks.NewMemoryGoalLocker(goalLockWait), func() {}, nil
	}

	redisClient, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}

	ttl := time.Duration(cfg.GoalLockTTLSeconds) * time.Second
	logger.Info("using redis goal locks", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", ttl))
	return locks.NewRedisGoalLocker(redisClient, ttl, goalLockWait, logger), redisClient.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
