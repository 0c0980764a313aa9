package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanRulev/quizmeon/internal/api"
	"github.com/DanRulev/quizmeon/internal/client"
	"github.com/DanRulev/quizmeon/internal/config"
	"github.com/DanRulev/quizmeon/internal/repository"
	"github.com/DanRulev/quizmeon/internal/service"
	"github.com/DanRulev/quizmeon/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn := db.NewConnector(cfg.DB, logger)
	defer conn.Close()

	repos := repository.NewRepository(repository.FromSQLX(conn))

	clients, err := client.InitClients(ctx, cfg.Gemini)
	if err != nil {
		logger.Fatal("failed init clients", zap.Error(err))
	}
	defer clients.Close()

	services := service.InitServices(clients, repos, cfg.App, logger)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewRouter(services, cfg.HTTP, logger),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("http server started", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return
	}
	logger.Info("http server stopped")
}
