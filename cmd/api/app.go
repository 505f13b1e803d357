package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "geo-weather/docs" // Ensure docs are imported
	"geo-weather/internal/config"
	"geo-weather/internal/location"
	"geo-weather/internal/providers/googlemaps"
	"geo-weather/internal/session"
	"geo-weather/internal/weather"
)

const shutdownTimeout = 10 * time.Second

// App encapsulates application dependencies
type App struct {
	router  *gin.Engine
	logger  *slog.Logger
	session *session.Session
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	source, err := location.NewSourceFromConfig(cfg.Location, logger)
	if err != nil {
		return nil, err
	}

	// Initialize weather service
	weatherSvc, err := weather.NewWeatherService(cfg, logger)
	if err != nil {
		return nil, err
	}

	maps := googlemaps.NewEmbedder(cfg.Map.APIKey, cfg.Map.BaseURL, cfg.Map.Zoom, cfg.Map.MapType)
	if !maps.Enabled() {
		logger.Warn("map.apikey not set, map embed disabled")
	}

	sess := session.New(location.NewLocationService(source, logger), weatherSvc, maps, logger)

	return newApp(sess, logger), nil
}

func newApp(sess *session.Session, logger *slog.Logger) *App {
	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery(), requestID(), requestLogger(logger))

	app := &App{
		router:  router,
		logger:  logger,
		session: sess,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server and shuts it down on SIGINT or SIGTERM
func (app *App) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
