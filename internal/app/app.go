package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/tmcasey/channelflow/internal/controllers/restserver"
	"github.com/tmcasey/channelflow/internal/log"
	"github.com/tmcasey/channelflow/internal/managers"
	"github.com/tmcasey/channelflow/internal/storage"
	"github.com/tmcasey/channelflow/pkg/config"
)

// App represents the main application
type App struct {
	cfg    *config.ConfigData
	logger *zap.SugaredLogger
}

// New creates a new application instance
func New(cfg *config.ConfigData, logger *zap.SugaredLogger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Open the calculation store
	store, err := storage.New(a.cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	// Initialize the calculation manager
	manager, err := managers.NewCalculationManager(a.cfg.Workers.PoolSize, a.cfg.CalcTimeout(), store, a.logger)
	if err != nil {
		return err
	}
	defer manager.Close()

	// Initialize and start the REST server
	ctrl, err := restserver.NewController(ctx, &wg, a.cfg.HTTP, manager, a.logger)
	if err != nil {
		return err
	}
	if err := ctrl.StartController(); err != nil {
		return err
	}

	log.Info("Application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	// Cancel context to signal all goroutines to stop
	cancel()

	// Wait for all workers to terminate
	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}
