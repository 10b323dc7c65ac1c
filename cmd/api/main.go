// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ussr-leaders/backend/internal/admin"
	"github.com/ussr-leaders/backend/internal/analytics"
	"github.com/ussr-leaders/backend/internal/auth"
	"github.com/ussr-leaders/backend/internal/comment"
	"github.com/ussr-leaders/backend/internal/config"
	"github.com/ussr-leaders/backend/internal/core"
	"github.com/ussr-leaders/backend/internal/health"
	"github.com/ussr-leaders/backend/internal/interaction"
	"github.com/ussr-leaders/backend/internal/leader"
	"github.com/ussr-leaders/backend/internal/leader/facts"
	"github.com/ussr-leaders/backend/internal/middleware"
	"github.com/ussr-leaders/backend/internal/migrations"
	"github.com/ussr-leaders/backend/internal/server"
	"github.com/ussr-leaders/backend/internal/user"
	"github.com/ussr-leaders/backend/internal/video"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if err := migrations.Run(db.DB); err != nil {
		return err
	}
	logger.Info("migrations applied")

	// Redis is optional. Without it the leader cache is a no-op, rate
	// limiting falls back to the local limiter, and the access-token
	// blacklist is disabled.
	var (
		rdb          *core.Redis
		redisClient  *goredis.Client
		redisChecker health.Checker
	)
	if cfg.HasRedis() {
		rdb, err = core.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		redisClient = rdb.Client
		redisChecker = rdb
		logger.Info("redis connected",
			"pool_size", cfg.Redis.PoolSize,
		)
	} else {
		logger.Warn("redis not configured, running without cache and token blacklist")
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	authRepo := auth.NewRepository(db.DB)
	authSvc := auth.NewService(authRepo, jwtManager, userSvc, redisClient)
	authHandler := auth.NewHandler(authSvc)

	var leaderCache leader.Cache = leader.NewNoopCache()
	if redisClient != nil {
		leaderCache = leader.NewRedisCache(redisClient, cfg.Cache.TTL)
	}

	var generator facts.Generator = facts.NewStatic()
	if cfg.OpenAI.APIKey != "" {
		generator = facts.NewOpenAI(cfg.OpenAI)
		logger.Info("fact generator initialized", "model", cfg.OpenAI.Model)
	} else {
		logger.Warn("no OpenAI key configured, serving static facts")
	}

	leaderRepo := leader.NewRepository(db.DB)
	leaderSvc := leader.NewService(
		leaderRepo,
		leaderCache,
		generator,
		facts.NewStatic(),
		cfg.OpenAI.FactCount,
		logger,
	)
	leaderHandler := leader.NewHandler(leaderSvc)

	interactionSvc := interaction.NewService(interaction.NewRepository(db.DB))
	interactionHandler := interaction.NewHandler(interactionSvc)

	commentSvc := comment.NewService(comment.NewRepository(db.DB))
	commentHandler := comment.NewHandler(commentSvc)

	analyticsSvc := analytics.NewService(analytics.NewRepository(db.DB))
	analyticsHandler := analytics.NewHandler(analyticsSvc)

	videoHandler := video.NewHandler(cfg.Videos.Dir)

	healthHandler := health.NewHandler(db, redisChecker)

	adminCfg := admin.HandlerConfig{
		DBStats: db.Stats,
		DBPing:  db.Ping,
		Counter: admin.NewRepository(db.DB),
	}
	if rdb != nil {
		adminCfg.RedisStats = rdb.PoolStats
		adminCfg.RedisPing = rdb.Ping
	}
	adminHandler := admin.NewHandler(adminCfg)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	videoHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(authSvc)
	optionalAuth := middleware.OptionalAuth(authSvc)
	editorOnly := middleware.RequireEditor
	adminOnly := middleware.RequireAdmin

	router.Route("/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator)

		userHandler.RegisterRoutes(r, authenticator)
		userHandler.RegisterAdminRoutes(r, authenticator, adminOnly)

		leaderHandler.RegisterRoutes(r, authenticator, editorOnly, adminOnly)
		interactionHandler.RegisterRoutes(r, optionalAuth, authenticator, adminOnly)
		commentHandler.RegisterRoutes(r, authenticator)
		analyticsHandler.RegisterRoutes(r, authenticator, adminOnly)

		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
