package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdf-extract-service/internal/config"
	"pdf-extract-service/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container := config.NewContainer()
	cfg := container.GetConfig()

	// Handlers
	extractionHandler := handler.NewExtractionHandler(
		container.ExtractionService,
		cfg.GetMaxRequestSize(),
		container.Logger,
	)

	requestMiddleware := handler.NewRequestMiddleware(container.Logger)

	// Router
	router := handler.NewRouter(
		extractionHandler,
		requestMiddleware,
		cfg.GetAllowedOrigins(),
	)

	// start server
	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr, "pdf_backend", container.Parser.Name())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.Logger.Info("Server exited")
	if syncer, ok := container.Logger.(interface{ Sync() error }); ok {
		_ = syncer.Sync()
	}
}
