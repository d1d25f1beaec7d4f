package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sonavox/voiceguard/configs"
	"github.com/sonavox/voiceguard/internal/api/handlers"
	"github.com/sonavox/voiceguard/internal/api/middleware"
	"github.com/sonavox/voiceguard/internal/logging"
	audioconfig "github.com/sonavox/voiceguard/pkg/audio/config"
	"github.com/sonavox/voiceguard/pkg/audio/detector"
	"github.com/sonavox/voiceguard/pkg/audio/loader"
)

// Server hosts the voice detection HTTP API.
type Server struct {
	config *configs.Config
	engine *gin.Engine
	logger logging.Logger
}

// NewServer builds the HTTP server and its detection pipeline from the
// application configuration.
func NewServer(cfg *configs.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.WithFields(logging.Fields{
		"component": "api_server",
	})

	d := detector.New(loaderConfig(cfg), featureConfig(cfg))

	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))

	health := handlers.NewHealthHandler(cfg.Languages)
	detection := handlers.NewDetectionHandler(d, cfg.Languages, cfg.Server.MaxConcurrent)
	registerRoutes(engine, health, detection, cfg.Server.APIKey)

	return &Server{
		config: cfg,
		engine: engine,
		logger: logger,
	}, nil
}

// Run serves until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", logging.Fields{"addr": addr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()

	s.logger.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// Engine exposes the router, used by tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.config.Server.ShutdownTimeout > 0 {
		return s.config.Server.ShutdownTimeout
	}
	return 10 * time.Second
}

// loaderConfig maps application config to loader settings.
func loaderConfig(cfg *configs.Config) loader.Config {
	return loader.Config{
		TargetSampleRate: cfg.Audio.TargetSampleRate,
		AnalysisDuration: cfg.Audio.AnalysisDuration,
		MaxDuration:      cfg.Audio.MaxDuration,
		MaxSizeBytes:     int64(cfg.Audio.MaxSizeMB) << 20,
	}
}

// featureConfig maps application config to analysis parameters.
func featureConfig(cfg *configs.Config) *audioconfig.FeatureConfig {
	fc := audioconfig.DefaultFeatureConfig()
	if cfg.Audio.WindowSize > 0 {
		fc.WindowSize = cfg.Audio.WindowSize
	}
	if cfg.Audio.HopSize > 0 {
		fc.HopSize = cfg.Audio.HopSize
	}
	if cfg.Audio.MelBands > 0 {
		fc.MelBands = cfg.Audio.MelBands
	}
	if cfg.Audio.MFCCCoefficients > 0 {
		fc.MFCCCoefficients = cfg.Audio.MFCCCoefficients
	}
	if cfg.Audio.ContrastBands > 0 {
		fc.ContrastBands = cfg.Audio.ContrastBands
	}
	if cfg.Audio.RolloffPercent > 0 {
		fc.RolloffPercent = cfg.Audio.RolloffPercent
	}
	return fc
}
