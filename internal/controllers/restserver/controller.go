// Package restserver exposes the calculation engine over HTTP. It is the
// service's only interface: parameters in, a computed or stored profile out,
// plus export rendering of stored results.
package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/tmcasey/channelflow/internal/managers"
	"github.com/tmcasey/channelflow/pkg/config"
)

// Controller represents the REST server controller
type Controller struct {
	ctx     context.Context
	wg      *sync.WaitGroup
	cfg     config.HTTPData
	manager *managers.CalculationManager
	Server  http.Server
	logger  *zap.SugaredLogger
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, cfg config.HTTPData, manager *managers.CalculationManager, logger *zap.SugaredLogger) (*Controller, error) {
	if cfg.Port == 0 {
		return nil, fmt.Errorf("REST server requires a listen port")
	}

	ctrl := &Controller{
		ctx:     ctx,
		wg:      wg,
		cfg:     cfg,
		manager: manager,
		logger:  logger,
	}

	router := mux.NewRouter()
	router.Use(ctrl.requestLogger)

	handlers := NewHandlers(ctrl)
	router.HandleFunc("/api/calculate", handlers.Calculate).Methods(http.MethodPost)
	router.HandleFunc("/api/calculations", handlers.List).Methods(http.MethodGet)
	router.HandleFunc("/api/calculations/{id}", handlers.Get).Methods(http.MethodGet)
	router.HandleFunc("/api/calculations/{id}/export", handlers.Export).Methods(http.MethodGet)
	router.HandleFunc("/api/health", handlers.Health).Methods(http.MethodGet)

	ctrl.Server = http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ListenAddr, cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return ctrl, nil
}

// StartController starts the HTTP listener and arranges graceful shutdown
// when the controller context is cancelled.
func (c *Controller) StartController() error {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.logger.Infof("REST server listening on %s", c.Server.Addr)
		if err := c.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			c.logger.Errorf("REST server error: %v", err)
		}
	}()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		<-c.ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Server.Shutdown(shutdownCtx); err != nil {
			c.logger.Errorf("REST server shutdown error: %v", err)
		}
	}()

	return nil
}

// requestLogger logs each request with its status and duration.
func (c *Controller) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, req)
		c.logger.Infow("http request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", recorder.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", req.RemoteAddr,
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
