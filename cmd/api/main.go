package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nikhilbhutani/groqtts/internal/api"
	"github.com/nikhilbhutani/groqtts/internal/config"
	"github.com/nikhilbhutani/groqtts/internal/logging"
	"github.com/nikhilbhutani/groqtts/internal/speech"
	"github.com/nikhilbhutani/groqtts/internal/tts"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	factory := tts.NewGroqFactory(tts.GroqTTSConfig{
		BaseURL: cfg.TTS.BaseURL,
		Timeout: cfg.TTS.ProviderTimeout,
	})

	svc := speech.NewService(factory, speech.Options{
		DefaultModel:  cfg.TTS.DefaultModel,
		DefaultVoice:  cfg.TTS.DefaultVoice,
		MaxTextLength: cfg.TTS.MaxTextLength,
		MaxConcurrent: cfg.TTS.MaxConcurrent,
		QueueTimeout:  cfg.TTS.QueueTimeout,
		TempDir:       cfg.TTS.TempDir,
	}, logger)

	router := api.NewRouter(cfg, svc, logger)
	handler := router.Setup()

	// Writes cover the slot wait, a full provider round trip and the audio transfer.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.TTS.QueueTimeout + cfg.TTS.ProviderTimeout + 30*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("starting Groq TTS server",
			"addr", cfg.Addr(),
			"provider", cfg.TTS.BaseURL,
			"cors_origins", strings.Join(cfg.Server.AllowedOrigins, ","),
			"max_concurrent", cfg.TTS.MaxConcurrent,
			"metrics", cfg.Metrics.Enabled,
		)
		slog.Info("callers supply their own API key per request; none is read from the environment")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
	}
	slog.Info("server stopped")
}
