package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	domrepo "VibeFinance/internal/domain/repository"
	"VibeFinance/internal/service/ratelimit"
	"VibeFinance/pkg/cache"
	"VibeFinance/pkg/config"
	xhttp "VibeFinance/pkg/http"
	applogger "VibeFinance/pkg/logger"
)

const pruneInterval = time.Minute

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	httpServer *xhttp.Server
	journal    domrepo.Journal
	cache      cache.Service
	limiter    *ratelimit.Limiter
}

// New creates a new App instance with all dependencies. limiter may be nil.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	httpServer *xhttp.Server,
	journal domrepo.Journal,
	c cache.Service,
	limiter *ratelimit.Limiter,
) *App {
	return &App{
		cfg:        cfg,
		log:        log,
		httpServer: httpServer,
		journal:    journal,
		cache:      c,
		limiter:    limiter,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("dashboard started",
		applogger.String("env", a.cfg.Environment),
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("news", a.cfg.News.Source),
		applogger.String("session_store", a.cfg.Session.Store),
		applogger.String("journal", a.cfg.Journal.Backend),
	)

	if a.limiter != nil {
		go a.pruneLimiter(ctx)
	}

	<-ctx.Done()
	a.log.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) pruneLimiter(ctx context.Context) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := a.limiter.Prune(); n > 0 {
				a.log.Debug("rate limiter pruned", applogger.Int("buckets", n))
			}
		}
	}
}

// shutdown stops accepting requests, then flushes and closes infrastructure.
func (a *App) shutdown() error {
	a.log.Info("shutting down...")

	if err := a.httpServer.Stop(context.Background()); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	// flush aggregated error logs before the journal closes the shared producer
	a.log.RemoveCollector()

	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			a.log.Warn("journal close error", applogger.Error(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.log.Warn("cache close error", applogger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
