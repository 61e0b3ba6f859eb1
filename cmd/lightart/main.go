package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lightart/lightart/internal/adapter"
	"github.com/lightart/lightart/internal/config"
	"github.com/lightart/lightart/internal/generate"
	"github.com/lightart/lightart/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	useMock := flag.Bool("mock", false, "use mock adapter instead of real LLM backends")
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	backend := pickBackend(cfg, *useMock)
	if backend == nil {
		log.Println("warning: no text backend configured, requests will fail with 503")
	}
	svc := generate.NewService(backend)

	handler := server.SetupMux(svc, server.Options{
		CORSOrigin:    cfg.CORSOrigin,
		APIKey:        cfg.APIKey,
		RatePerMinute: cfg.RatePerMinute,
	})

	if cfg.APIKey != "" {
		log.Println("auth: API key required (X-API-Key header)")
	} else {
		log.Println("auth: disabled (no api_key configured)")
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("lightart api listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	<-done
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Println("server stopped")
}

// pickBackend selects one text backend at startup. The service carries a
// single long-lived handle; priority is local llama-server, then Ollama,
// then Claude.
func pickBackend(cfg config.Config, useMock bool) adapter.TextCompleter {
	if useMock {
		log.Println("mode: mock adapter enabled")
		return &adapter.MockAdapter{Response: "with a warm amber glow", Delay: 300 * time.Millisecond}
	}

	if cfg.LlamaCppURL != "" {
		log.Printf("mode: llama.cpp at %s (model: %s)", cfg.LlamaCppURL, cfg.LlamaCppModel)
		return &adapter.LlamaCppAdapter{
			BaseURL: cfg.LlamaCppURL,
			Model:   cfg.LlamaCppModel,
			Client:  &http.Client{Timeout: 120 * time.Second},
		}
	}

	if cfg.OllamaURL != "" {
		log.Printf("mode: ollama at %s (model: %s)", cfg.OllamaURL, cfg.OllamaModel)
		return &adapter.OllamaAdapter{
			BaseURL: cfg.OllamaURL,
			Model:   cfg.OllamaModel,
			Client:  &http.Client{Timeout: 60 * time.Second},
		}
	}

	if cfg.AnthropicAPIKey != "" {
		log.Printf("mode: claude enabled (model: %s)", cfg.AnthropicModel)
		return adapter.NewAnthropicAdapter(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	}

	return nil
}
