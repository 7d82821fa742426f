package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/nexai/hub/internal/auth"
	"github.com/nexai/hub/internal/catalog"
	"github.com/nexai/hub/internal/config"
	"github.com/nexai/hub/internal/httpserver"
	"github.com/nexai/hub/internal/httpserver/deps"
	"github.com/nexai/hub/internal/logger"
	"github.com/nexai/hub/internal/redis"
	"github.com/nexai/hub/internal/sources/seed"
	"github.com/nexai/hub/internal/store"
	"github.com/nexai/hub/internal/store/memstore"
	"github.com/nexai/hub/internal/store/redisstore"
	"github.com/nexai/hub/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	seeder      *seed.Seeder
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Pick the store backend. Redis is the durable production store; the
	// in-memory store serves local development.
	var (
		portals     store.PortalStore
		redisClient *goredis.Client
	)
	switch cfg.StoreBackend {
	case config.StoreRedis:
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("Redis initialized successfully")
		redisClient = client
		portals = redisstore.New(client)
	case config.StoreMemory:
		loggerClient.Warn("using in-memory store, the catalog will not survive restarts")
		portals = memstore.New()
	}

	gate := auth.NewGate(cfg.AdminToken)
	catalogService := catalog.New(portals, gate, loggerClient)

	// Seed an empty catalog from file, if configured.
	var seeder *seed.Seeder
	if cfg.SeedFile != "" {
		loggerClient.Info("seed file configured",
			logger.String("file", cfg.SeedFile))
		seeder = seed.NewSeeder(cfg.SeedFile, portals, loggerClient)
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		Catalog:         catalogService,
		Store:           portals,
		StoreBackend:    cfg.StoreBackend,
		TagOrder:        cfg.TagOrder,
		AllowedHosts:    cfg.AllowedHosts,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		seeder:      seeder,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Hub v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Hub %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// One-shot seed of an empty catalog before accepting traffic.
	if a.seeder != nil {
		if err := a.seeder.Run(ctx); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Hub stopped cleanly")
	return nil
}
