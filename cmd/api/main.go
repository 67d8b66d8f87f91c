package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/justsurfingit/jobby-board/internal/config"
	"github.com/justsurfingit/jobby-board/internal/handlers"
	"github.com/justsurfingit/jobby-board/internal/listing"
	"github.com/justsurfingit/jobby-board/internal/services"
)

func main() {
	// 1. Load Environment Variables (.env is optional)
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// 2. Remote job API client and the services on top of it
	svcCfg := cfg.ServicesConfig()
	svcCfg.Logger = logger.Named("upstream")
	client := services.NewAPIClient(svcCfg)
	authService := services.NewAuthService(client)
	jobService := services.NewJobService(client)

	// 3. Handlers and routes
	router := handlers.NewRouter(handlers.RouterDependencies{
		AuthHandler:        handlers.NewAuthHandler(authService, logger.Named("auth")),
		JobHandler:         handlers.NewJobHandler(jobService, listing.Options{DropStale: cfg.DropStaleResults}),
		Logger:             logger.Named("http"),
		Cookie:             cfg.CookieOptions(),
		LoginRatePerMinute: cfg.LoginRatePerMinute,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// 4. Serve until SIGINT/SIGTERM, then drain
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			zap.String("addr", server.Addr),
			zap.String("jobs_api", client.BaseURL),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("server shutting down")
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
