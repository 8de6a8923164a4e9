package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timestamp_api_go/config"
	"timestamp_api_go/handlers"
	"timestamp_api_go/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := services.NewMetrics(registry)
	if err := metrics.Register(); err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	resolver := services.NewResolver(cfg.Debug, metrics)
	if cfg.Debug {
		log.Println("[INFO] Debug logging of invalid dates enabled")
	}

	e := handlers.NewRouter(cfg, resolver, metrics, registry)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server
	go func() {
		log.Printf("Server listening at %s", cfg.Port)
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[INFO] Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARNING] Graceful shutdown failed: %v", err)
	}
}
