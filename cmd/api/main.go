package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"digiraksha/cmd/app"
	"digiraksha/internal/config"
	handlers "digiraksha/internal/handler"
	"digiraksha/internal/logger"
	"digiraksha/internal/middleware"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// setting up config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Default().Fatalf("Failed to load configuration: %v", err)
	}

	logger.InitLogger(cfg.LogLevel)
	log := logger.Default()

	if cfg.JWTSecretKey == "" {
		log.Fatal("SECRET_KEY is not set")
	}

	db, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	limit, err := middleware.NewRateLimit(cfg.AuthRateLimit)
	if err != nil {
		log.Fatalf("Invalid AUTH_RATE_LIMIT: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	router := mux.NewRouter()
	router.Use(metrics.Middleware)
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// setting up routes
	handler.Routes(router, middleware.Authenticate(services.Auth), limit)

	handlerChain := middleware.Chain(
		router,
		middleware.Recovery(),
		middleware.CORS(),
		middleware.Compress,
		middleware.RequestLogger,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           handlerChain,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("Server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Graceful shutdown failed: %v", err)
	}
}
