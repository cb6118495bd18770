package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lexhaven/lexidoc/internal/api"
	"github.com/lexhaven/lexidoc/internal/assistant"
	"github.com/lexhaven/lexidoc/internal/config"
	"github.com/lexhaven/lexidoc/internal/docstore"
	"github.com/lexhaven/lexidoc/internal/provider"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Build the provider chain in cost-ascending order. Providers with
	// no credential are skipped entirely.
	var adapters []provider.Adapter
	if cfg.GeminiAPIKey != "" {
		adapters = append(adapters, provider.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel))
	}
	if cfg.OpenAIAPIKey != "" {
		adapters = append(adapters, provider.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel))
	}
	if cfg.AnthropicAPIKey != "" {
		adapters = append(adapters, provider.NewClaude(cfg.AnthropicAPIKey, cfg.AnthropicModel))
	}
	if !cfg.HasProvider() {
		log.Warn("no provider credentials configured; running in degraded local-only mode")
	}

	stats := provider.NewStats(cfg.StatsWindow)
	chain := provider.NewChain(adapters, cfg.ProviderTimeout, stats, log.With("component", "provider"))
	svc := assistant.NewService(chain, cfg.PromptCharBudget, cfg.TopKPassages, log.With("component", "assistant"))

	store := docstore.New(cfg.DocumentTTL)
	store.Start(ctx)

	srv := api.NewServer(svc, store, stats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		store.Stop()
	}()

	log.Info("starting lexidoc", "port", cfg.Port, "providers", chain.Len())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
