package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"biliticket/tickethub/internal/config"
	"biliticket/tickethub/internal/handler"
	"biliticket/tickethub/internal/store"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	var logger *zap.Logger
	if cfg.Log.Format == "json" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// 3. Initialize ticket store (actor worker or shared lock)
	var ticketStore store.TicketStore
	var closeStore func()
	switch cfg.Store.Backend {
	case "actor":
		actorStore := store.NewActorStore(cfg.Store.QueueSize)
		ticketStore = actorStore
		closeStore = actorStore.Close
		logger.Info("using actor ticket store", zap.Int("queue_size", cfg.Store.QueueSize))
	case "shared":
		ticketStore = store.NewSharedStore()
		closeStore = func() {}
		logger.Info("using shared ticket store")
	default:
		logger.Fatal("unknown store backend", zap.String("backend", cfg.Store.Backend))
	}

	// 4. Initialize metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 5. Initialize handlers and router
	ticketHandler := handler.NewTicketHandler(ticketStore)
	router := handler.SetupRouter(cfg, logger, registry, ticketHandler)

	// 6. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 7. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 8. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	// 9. Stop the store worker after in-flight requests drain
	closeStore()
	logger.Info("server exited gracefully")
}
