// Package worker implements the batch worker command: the per-minute
// reminder and expiry sweeps and the midnight rollover.
package worker

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	routineuc "glowtrack/internal/application/routine/usecases"
	trackeruc "glowtrack/internal/application/tracker/usecases"
	"glowtrack/internal/domain/notification"
	"glowtrack/internal/infrastructure/config"
	"glowtrack/internal/infrastructure/database"
	"glowtrack/internal/infrastructure/push"
	"glowtrack/internal/infrastructure/pubsub"
	"glowtrack/internal/infrastructure/repository"
	"glowtrack/internal/infrastructure/scheduler"
	"glowtrack/internal/shared/biztime"
	"glowtrack/internal/shared/goroutine"
	"glowtrack/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Start the batch worker",
		Long:  `Start the scheduled batch worker: session reminders, missed-session expiry, and the midnight reset and streak recompute.`,
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
	log.Infow("starting batch worker", "environment", env)

	if err := biztime.Init(cfg.Scheduler.TimezoneOffsetHours); err != nil {
		return fmt.Errorf("failed to initialize business offset: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	// Connect eagerly so misconfiguration surfaces at startup.
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

	var dispatcher notification.Dispatcher
	if cfg.Push.Provider == "expo" {
		dispatcher = push.NewExpoDispatcher(&cfg.Push, log)
	} else {
		dispatcher = push.NewLogDispatcher(log)
	}

	streakUpdate := trackeruc.NewUpdateUserStreakUseCase(trackerRepo, userRepo, clock)

	// Consume tracker recorded events published by the API instances.
	subCtx, cancelSub := context.WithCancel(context.Background())
	defer cancelSub()
	eventBus := pubsub.NewRedisTrackerEventBus(redisClient, log)
	streakNotifier := trackeruc.NewStreakNotifier(userRepo, dispatcher, log)
	goroutine.SafeGo(log, "tracker-event-subscriber", func() {
		if err := eventBus.Subscribe(subCtx, streakNotifier.Handle); err != nil && subCtx.Err() == nil {
			log.Errorw("tracker event subscriber exited", "error", err)
		}
	})

	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	batchSize := cfg.Routine.BatchSize

	if err := manager.RegisterMinuteJobs(
		routineuc.NewNotifySessionsJob(routineRepo, dispatcher, clock, batchSize, log),
		routineuc.NewMarkNotDoneJob(routineRepo, clock, batchSize, log),
	); err != nil {
		return fmt.Errorf("failed to register minute jobs: %w", err)
	}

	if err := manager.RegisterMidnightJobs(
		routineuc.NewResetSessionsJob(routineRepo, batchSize, log),
		trackeruc.NewUpdateAllStreaksJob(userRepo, streakUpdate, batchSize, log),
	); err != nil {
		return fmt.Errorf("failed to register midnight jobs: %w", err)
	}

	manager.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down batch worker")
	if err := manager.Stop(); err != nil {
		return err
	}

	log.Infow("batch worker stopped")
	return nil
}
