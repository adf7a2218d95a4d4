package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/pali/internal/config"
	"github.com/MrSnakeDoc/pali/internal/httpserver"
	"github.com/MrSnakeDoc/pali/internal/httpserver/deps"
	"github.com/MrSnakeDoc/pali/internal/httpserver/render"
	"github.com/MrSnakeDoc/pali/internal/logger"
	"github.com/MrSnakeDoc/pali/internal/profile"
	"github.com/MrSnakeDoc/pali/internal/redis"
	"github.com/MrSnakeDoc/pali/internal/scheduler"
	"github.com/MrSnakeDoc/pali/internal/session"
	"github.com/MrSnakeDoc/pali/internal/state"
	"github.com/MrSnakeDoc/pali/internal/store"
	redisstore "github.com/MrSnakeDoc/pali/internal/store/redis"
	"github.com/MrSnakeDoc/pali/internal/utils"
	"github.com/MrSnakeDoc/pali/internal/version"
	"github.com/MrSnakeDoc/pali/internal/view"
)

type App struct {
	cfg          *config.Config
	logger       logger.Logger
	server       *httpserver.Server
	redisClient  *goredis.Client
	profiles     *profile.Registry
	evictor      *scheduler.ProfileEvictor
	seedReloader *scheduler.SeedReloader
}

func New() (*App, error) {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	backend, redisClient, err := openBackend(cfg, loggerClient)
	if err != nil {
		return nil, err
	}

	mode := "memory"
	var counter deps.ProfileCounter
	if redisClient != nil {
		mode = "redis"
		counter = backend.(*redisstore.Backend)
	}
	loggerClient.Info("state backend ready", logger.String("backend", mode))

	profiles := profile.NewRegistry(backend, state.Options{
		NotifyAfter: cfg.NotifyAfter,
		Logger:      loggerClient,
	}, loggerClient)

	evictor := scheduler.NewProfileEvictor(
		profiles,
		loggerClient,
		cfg.ProfileSweepInterval,
		cfg.ProfileIdleTTL,
	)

	// Seed reloader only exists when a seed file is configured
	var seedReloader *scheduler.SeedReloader
	var reloadTrigger chan struct{}
	if cfg.SeedFile != "" {
		loggerClient.Info("seed file configured", logger.String("file", cfg.SeedFile))
		reloadTrigger = make(chan struct{}, 1)
		seedReloader = scheduler.NewSeedReloader(
			cfg.SeedFile,
			profiles,
			loggerClient,
			cfg.SeedReload,
			reloadTrigger,
		)
	} else {
		loggerClient.Info("no seed file configured, using built-in content")
	}

	renderer, err := render.New()
	if err != nil {
		if redisClient != nil {
			utils.Close(redisClient)
		}
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		TimeNow:        time.Now,
		AllowedHosts:   cfg.AllowedHosts,
		AllowedCIDRS:   cfg.AllowedCIDRS,
		TrustProxy:     cfg.TrustProxy,
		CORSOrigins:    cfg.CORSOrigins,
		TrustedOrigins: cfg.TrustedOrigins,
		APIRateLimit:   cfg.APIRateLimit,
		CookieSecure:   cfg.CookieSecure,
		Profiles:       profiles,
		Backend:        backend,
		Counter:        counter,
		Mode:           mode,
		Auth:           session.NewAuth(cfg.AdminPassphrase, loggerClient),
		Selector:       view.NewSelector(view.NewRichText(cfg.RawHTML)),
		Renderer:       renderer,
		SeedFile:       cfg.SeedFile,
		ReloadTrigger:  reloadTrigger,
	}

	return &App{
		cfg:          cfg,
		logger:       loggerClient,
		server:       httpserver.New(cfg, loggerClient, d),
		redisClient:  redisClient,
		profiles:     profiles,
		evictor:      evictor,
		seedReloader: seedReloader,
	}, nil
}

// openBackend connects to Redis when an address is configured and falls
// back to process memory otherwise.
func openBackend(cfg *config.Config, log logger.Logger) (store.Backend, *goredis.Client, error) {
	if !cfg.UseRedis() {
		log.Warn("PALI_REDIS_ADDR not set, profile state will not survive a restart")
		return store.NewMemoryBackend(), nil, nil
	}

	client, err := redis.Connect(context.Background(), redis.ConnectOptions{
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
	}, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return redisstore.NewBackend(client), client, nil
}

func (a *App) Run() error {
	a.logger.Infof("Starting pali v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Info(version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Seed must be in place before the first profile opens
	if a.seedReloader != nil {
		if err := a.seedReloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start seed reloader: %w", err)
		}
		a.logger.Info("seed reloader started",
			logger.Duration("interval", a.cfg.SeedReload))
	}

	if err := a.evictor.Start(ctx); err != nil {
		return fmt.Errorf("failed to start profile evictor: %w", err)
	}
	a.logger.Info("profile evictor started",
		logger.Duration("interval", a.cfg.ProfileSweepInterval),
		logger.Duration("idle_ttl", a.cfg.ProfileIdleTTL))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.seedReloader != nil {
		a.seedReloader.Stop()
	}
	a.evictor.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	// Stop notifier timers of every open profile
	a.profiles.EvictIdle(time.Now(), 0)

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("Redis closed cleanly")
		}
	}

	_ = a.logger.Sync()
	a.logger.Info("pali stopped cleanly")
	return nil
}
