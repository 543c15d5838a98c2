// Package server implements the HTTP server command.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	routineuc "glowtrack/internal/application/routine/usecases"
	trackeruc "glowtrack/internal/application/tracker/usecases"
	"glowtrack/internal/infrastructure/auth"
	"glowtrack/internal/infrastructure/config"
	"glowtrack/internal/infrastructure/database"
	"glowtrack/internal/infrastructure/pubsub"
	"glowtrack/internal/infrastructure/repository"
	httpRouter "glowtrack/internal/interfaces/http"
	"glowtrack/internal/interfaces/http/handlers"
	"glowtrack/internal/interfaces/http/middleware"
	"glowtrack/internal/shared/biztime"
	"glowtrack/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the glowtrack HTTP server with the configured database and push provider.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env)

	if err := biztime.Init(cfg.Scheduler.TimezoneOffsetHours); err != nil {
		return fmt.Errorf("failed to initialize business offset: %w", err)
	}

	gin.SetMode(mapEnvToGinMode(env))
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}

	routineRepo := repository.NewRoutineRepository(database.Get(), log)
	trackerRepo := repository.NewTrackerRepository(database.Get())
	userRepo := repository.NewUserRepository(database.Get())

	clock := biztime.SystemClock{}
	eventBus := pubsub.NewRedisTrackerEventBus(redisClient, log)

	streakUpdate := trackeruc.NewUpdateUserStreakUseCase(trackerRepo, userRepo, clock)
	recordTracker := trackeruc.NewRecordTrackerUseCase(trackerRepo, streakUpdate, eventBus, clock, log)

	routineHandler := handlers.NewRoutineHandler(
		routineuc.NewCreateRoutineUseCase(routineRepo, log),
		routineuc.NewGetRoutineUseCase(routineRepo),
		routineuc.NewGetTodayDayUseCase(routineRepo, clock),
		routineuc.NewUpdateDayUseCase(routineRepo, clock, log),
		routineuc.NewMarkSessionDoneUseCase(routineRepo, clock, cfg.Routine, log),
		routineuc.NewUpdatePushTokenUseCase(routineRepo, userRepo, log),
		routineuc.NewUpdateRoutineNameUseCase(routineRepo),
		routineuc.NewPatchRoutineUseCase(routineRepo, userRepo, log),
		log,
	)
	trackerHandler := handlers.NewTrackerHandler(recordTracker, log)

	authMiddleware := middleware.NewAuthMiddleware(auth.NewJWTService(cfg.Auth.JWTSecret), log)

	router := httpRouter.NewRouter(routineHandler, trackerHandler, authMiddleware, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func mapEnvToGinMode(env string) string {
	switch env {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
