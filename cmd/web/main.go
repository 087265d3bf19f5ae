package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/artisanfinder/web/internal/api/http"
	"github.com/artisanfinder/web/internal/api/http/handlers"
	"github.com/artisanfinder/web/internal/apiclient"
	"github.com/artisanfinder/web/internal/config"
	"github.com/artisanfinder/web/internal/events"
	"github.com/artisanfinder/web/internal/observability"
	"github.com/artisanfinder/web/internal/persistence"
	"github.com/artisanfinder/web/internal/service"
	"github.com/artisanfinder/web/internal/session"
	"github.com/artisanfinder/web/internal/worker"
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

	metrics := observability.NewMetrics()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var tokens session.TokenStore
	var readiness handlers.Pinger
	if redis != nil {
		tokens = session.NewRedisTokenStore(redis.Client, cfg.Redis.KeyPrefix)
		readiness = redis
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartActivityWorker(service.NewActivityService(dispatcher, logger, metrics))

	client := apiclient.New(cfg.Backend, logger, metrics)
	sessions := session.NewManager(client, tokens, dispatcher, logger, session.Options{
		IdleTTL:         cfg.Session.IdleTTL(),
		DefaultTokenTTL: cfg.Session.TokenTTL(),
	})
	sweeperDone := worker.RunSessionSweeper(ctx, sessions, cfg.Session.SweepInterval(), logger)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(),
		session.NewMiddleware(sessions, cfg.Session.CookieName, cfg.App.Env == "production"))

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, readiness),
		Metrics: handlers.NewMetricsHandler(metrics),
		Home:    handlers.NewHomeHandler(sessions),
		Search:  handlers.NewSearchHandler(sessions),
		Profile: handlers.NewProfileHandler(sessions),
		Admin:   handlers.NewAdminHandler(sessions),
		Account: handlers.NewAccountHandler(sessions),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("backend", cfg.Backend.BaseURL))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	<-sweeperDone
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
