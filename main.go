package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/webasoo/swagger-aggregate/aggregate"
	"github.com/webasoo/swagger-aggregate/internal/config"
	"github.com/webasoo/swagger-aggregate/metrics"
	"github.com/webasoo/swagger-aggregate/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	logger := cfg.Logger(os.Stdout)

	root, err := aggregate.ResolveRoot(cfg.DocsRoot)
	if err != nil {
		log.Fatalf("resolve docs root: %v", err)
	}
	logger.Info("scanning documentation", "root", root, "version", config.Version)

	agg, err := server.New(os.DirFS(root), server.Config{
		DocsPrefix: cfg.DocsPrefix,
		UIPath:     cfg.UIPath,
		SelfDocs:   cfg.SelfDocs,
		Version:    config.Version,
		Logger:     logger,
		Metrics:    metrics.New(),
	})
	if err != nil {
		log.Fatalf("build aggregator: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           agg,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr, "ui", cfg.UIPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server start error: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed, forcing close", "error", err)
		if cerr := srv.Close(); cerr != nil {
			logger.Error("close failed", "error", cerr)
		}
		return
	}
	logger.Info("server stopped gracefully")
}
