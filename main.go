package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"surveyapi/bootstrap"
	"surveyapi/config"
	"surveyapi/pkg/logger"
	"surveyapi/routes"
	"surveyapi/services/cache"
)

// @title           surveyapi
// @version         1.0
// @description     Survey questions, categories and agree/disagree statistics

// @BasePath  /

func main() {
	// 1) Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}

	// 2) Init structured logger with config
	if err := logger.Init(logger.Options{
		File:       cfg.LogFile,
		Level:      logger.ParseLogLevel(cfg.LogLevel),
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("Logger init error: %v", err)
	}
	logger.Infof("Starting survey API (env=%s, log level=%s)", cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg)
	stop()
	if err != nil {
		logger.Fatalf("%v", err)
	}
	logger.Infof("Application shutdown complete")
}

// run serves the API until ctx is cancelled or the listener fails. Everything
// it opens is closed before it returns.
func run(ctx context.Context, cfg *config.AppConfig) error {
	// 3) Connect DB (GORM) and migrate
	database, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("ConnectDB error: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Errorf("Database close: %v", err)
		}
	}()

	if err := bootstrap.LoadData(ctx, database.DB); err != nil {
		return fmt.Errorf("load data error: %w", err)
	}

	// 4) Optional statistics cache
	statsCache, closeCache := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.StatsCacheTTL)
	defer func() {
		if err := closeCache(); err != nil {
			logger.Errorf("Statistics cache close: %v", err)
		}
	}()

	// 5) Setup Gin
	router := routes.SetupRouter(routes.Deps{
		Config:     cfg,
		DB:         database.DB,
		StatsCache: statsCache,
	})

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// 6) Run
	serveErr := make(chan error, 1)
	go func() {
		logger.Infof("Starting server at port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// 7) Graceful shutdown
	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Infof("Received shutdown signal, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown: %v", err)
	}
	return nil
}
