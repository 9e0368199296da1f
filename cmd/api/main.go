package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/grievance-service/internal/api/http"
	"github.com/spec-kit/grievance-service/internal/api/http/handlers"
	"github.com/spec-kit/grievance-service/internal/completion"
	"github.com/spec-kit/grievance-service/internal/config"
	"github.com/spec-kit/grievance-service/internal/events"
	"github.com/spec-kit/grievance-service/internal/faq"
	"github.com/spec-kit/grievance-service/internal/observability"
	"github.com/spec-kit/grievance-service/internal/persistence"
	"github.com/spec-kit/grievance-service/internal/repository"
	"github.com/spec-kit/grievance-service/internal/service"
	"github.com/spec-kit/grievance-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	var redis *persistence.Redis
	if cfg.Completion.CacheTTL() > 0 {
		redis = persistence.NewRedis(ctx, cfg.Redis, logger)
		defer redis.Close()
	}

	if cfg.Completion.APIKey == "" {
		logger.Warn("OPENAI_API_KEY not set; FAQ fallback will report an invalid key")
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(dispatcher, logger, cfg.Notification)

	grievanceService := service.NewGrievanceService(service.GrievanceDependencies{
		GrievanceRepo: repository.NewGrievanceRepository(pg.PoolHandle()),
		Dispatcher:    dispatcher,
		Logger:        logger.Named("grievances"),
	})
	faqService := service.NewFAQService(service.FAQDependencies{
		Resolver: faq.NewResolver(faq.DefaultEntries()),
		Gateway:  completion.NewClient(cfg.Completion),
		Cache:    repository.NewRedisAnswerCache(redis.Client, cfg.Completion.CacheTTL()),
		Logger:   logger.Named("faq"),
	})

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, readinessDependencies(pg, redis)),
		Grievances: handlers.NewGrievancesHandler(grievanceService),
		FAQ:        handlers.NewFAQHandler(faqService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
	snap := metrics.Snapshot()
	logger.Info("stopped", zap.Int("request_keys", len(snap.Requests)), zap.Int("error_keys", len(snap.Errors)))
}

// answerCache is nil unless a positive FAQ_CACHE_TTL_SECONDS connected Redis.
func answerCache(redis *persistence.Redis, cfg config.CompletionConfig) repository.AnswerCache {
	if redis == nil {
		return nil
	}
	return repository.NewRedisAnswerCache(redis.Client, cfg.CacheTTL())
}

// readinessDependencies lists what /health/ready pings. Redis only counts when the
// answer cache is switched on.
func readinessDependencies(pg handlers.Pinger, redis *persistence.Redis) map[string]handlers.Pinger {
	deps := map[string]handlers.Pinger{"postgres": pg}
	if redis != nil {
		deps["redis"] = redis
	}
	return deps
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
