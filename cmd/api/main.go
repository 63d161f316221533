package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hrdesk/internal/api/http"
	"github.com/spec-kit/hrdesk/internal/api/http/handlers"
	"github.com/spec-kit/hrdesk/internal/auth"
	"github.com/spec-kit/hrdesk/internal/chat"
	"github.com/spec-kit/hrdesk/internal/config"
	"github.com/spec-kit/hrdesk/internal/events"
	"github.com/spec-kit/hrdesk/internal/knowledge"
	"github.com/spec-kit/hrdesk/internal/llm"
	"github.com/spec-kit/hrdesk/internal/observability"
	"github.com/spec-kit/hrdesk/internal/persistence"
	"github.com/spec-kit/hrdesk/internal/repository"
	"github.com/spec-kit/hrdesk/internal/roster"
	"github.com/spec-kit/hrdesk/internal/service"
	"github.com/spec-kit/hrdesk/internal/session"
	"github.com/spec-kit/hrdesk/internal/sink"
	"github.com/spec-kit/hrdesk/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()

	identity, err := roster.Load(cfg.Roster, cfg.Auth.BcryptCost, logger)
	if err != nil {
		logger.Fatal("failed to load roster", zap.Error(err))
	}

	docs := knowledge.NewLoader(cfg.Knowledge, nil, logger)
	docs.Load()

	var redis *persistence.Redis
	var sessions session.Store
	if cfg.Session.Backend == "redis" {
		redis = persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		sessions = session.NewRedisStore(redis.Client, cfg.Session.SessionTTL())
	} else {
		sessions = session.NewMemoryStore(cfg.Session.SessionTTL())
	}

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	var archive repository.TicketRecordRepository
	if pg.Enabled() {
		archive = repository.NewTicketRecordRepository(pg.PoolHandle())
	}

	dispatcher := events.NewInMemoryDispatcher()
	sinkService := service.NewSinkService(logger, service.SinkDependencies{
		Dispatcher: dispatcher,
		Sheet:      sink.NewSheetClient(cfg.Sheet),
		Messenger:  sink.NewMessenger(cfg.Messenger),
		Archive:    archive,
		Metrics:    metrics,
	})
	worker.StartSinkWorker(sinkService)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		Roster:   identity,
		Sessions: sessions,
	})
	chatService := chat.NewService(cfg.Chat, logger, chat.Dependencies{
		Completer:  llm.NewClient(cfg.LLM),
		Knowledge:  docs,
		Sessions:   sessions,
		Dispatcher: dispatcher,
		Metrics:    metrics,
	})

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), sessions)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:           handlers.NewAuthHandler(authService, cfg.Chat.Greeting),
		Chat:           handlers.NewChatHandler(chatService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
