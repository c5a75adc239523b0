package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"trendscore-go/internal/config"
	"trendscore-go/internal/handler"
	"trendscore-go/pkg/logger"
	"trendscore-go/pkg/scoring"
	"trendscore-go/pkg/suggest"
)

func main() {
	var (
		configPath = flag.String("config", "", "Configuration file path (optional, env: TREND_* overrides)")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	manager := config.NewManager()
	cfg, err := manager.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logLevel := cfg.Logger.Level
	if *debug {
		logLevel = "debug"
	}
	log := logger.New(logger.Config{
		Level:      logLevel,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	logger.SetLogger(log)
	logger.SetGlobalLogger(log)

	log.WithFields(map[string]interface{}{
		"batch_size":        cfg.Scoring.BatchSize,
		"batch_delay_ms":    cfg.Scoring.BatchDelayMs,
		"cache_ttl_minutes": cfg.Scoring.CacheTTLMin,
		"cache_size":        cfg.Scoring.CacheSize,
	}).Info("Configuration loaded")

	provider := suggest.NewClient(
		suggest.WithEndpoint(cfg.Suggest.Endpoint),
		suggest.WithTimeout(cfg.Suggest.Timeout()),
	)

	service := scoring.NewService(scoring.NewScorer(provider), scoring.ServiceConfig{
		CacheTTL:   cfg.Scoring.CacheTTL(),
		CacheSize:  cfg.Scoring.CacheSize,
		BatchSize:  cfg.Scoring.BatchSize,
		BatchDelay: cfg.Scoring.BatchDelay(),
	})

	app := handler.NewApp(service)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Shutdown signal received")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Warn("Server shutdown was not clean")
		}
	}()

	log.WithField("addr", addr).Info("Starting trendscore server")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("Server failed")
	}

	log.Info("Server stopped")
}
