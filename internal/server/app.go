// Package server initializes and runs the exchange server.
// It opens the configured key-value backend, wires the exchange engine,
// starts the gRPC endpoint and the optional metrics endpoint, and handles
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/vaccx/internal/logging"
	"github.com/dmitrijs2005/vaccx/internal/server/config"
	"github.com/dmitrijs2005/vaccx/internal/server/kv"
	"github.com/dmitrijs2005/vaccx/internal/server/metrics"
	"github.com/dmitrijs2005/vaccx/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/vaccx/internal/server/services"

	gs "github.com/dmitrijs2005/vaccx/internal/server/grpc"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	store     kv.Store
	collector *metrics.Collector
	exchange  *services.ExchangeService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.NewJSONLogger(logOut, c.LogLevel)

	store, err := kv.Open(ctx, c.StorageDSN)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	collector := metrics.NewCollector()
	exchange := services.NewExchangeService(store, repomanager.NewKVRepositoryManager(), c, logger,
		services.WithTradeObserver(collector))

	return &App{
		config:    c,
		logger:    logger,
		store:     store,
		collector: collector,
		exchange:  exchange,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.exchange,
		gs.WithRPCObserver(app.collector),
		gs.WithRateLimit(app.config.RateLimitRPS, app.config.RateLimitBurst),
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := metrics.NewServer(app.config.MetricsAddr, app.collector, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a signal arrives or a listener fails,
// then closes the storage backend.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", kv.Redact(app.config.StorageDSN))

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "failed to close storage", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
