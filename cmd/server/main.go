package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/cors"

	"local-llm-chat/api/router"
	"local-llm-chat/config"
	"local-llm-chat/logger"
)

// @title           Local LLM Chat API
// @version         1.0
// @description     Bridges the browser chat UI to local model servers (Ollama or any OpenAI-compatible endpoint) and stores conversation transcripts
// @BasePath        /api
func main() {
	config.InitApp()
	cfg := config.GetConfig()

	// LOG_LEVEL overrides the config file so a one-off debug run needs no
	// config edit.
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = cfg.Logging.Level
	}
	logger.Log = logger.NewLogger(level)

	var shutdownOnce sync.Once
	shutdownCh := make(chan struct{})
	requestShutdown := func() {
		shutdownOnce.Do(func() { close(shutdownCh) })
	}

	engine := router.New(requestShutdown)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr: addr,
		// The chat UI may be opened from another device on the LAN, so CORS
		// stays permissive here.
		Handler: cors.Default().Handler(engine),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infof("listening on http://%s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Log.Errorf("server failed: %v", err)
		os.Exit(1)
	case <-sigCh:
		logger.Log.Info("received signal, shutting down")
	case <-shutdownCh:
		logger.Log.Info("shutdown requested via API")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Errorf("graceful shutdown failed: %v", err)
		os.Exit(1)
	}
}
