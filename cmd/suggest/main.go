// Command suggest runs the image pipeline offline: it sends a photo to a
// cloud vision model and prints the fixed-shape suggestion bundle.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/lightart/lightart/internal/adapter"
	"github.com/lightart/lightart/internal/config"
	"github.com/lightart/lightart/internal/suggest"
)

func main() {
	imagePath := flag.String("image", "", "path to the photo to analyze (jpeg or png)")
	configPath := flag.String("config", "", "path to config.yaml")
	useMock := flag.Bool("mock", false, "use mock adapter instead of a real vision backend")
	timeout := flag.Duration("timeout", 120*time.Second, "overall request timeout")
	flag.Parse()

	if *imagePath == "" {
		log.Fatal("usage: suggest -image <path> [-config <path>]")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	f, err := os.Open(*imagePath)
	if err != nil {
		log.Fatalf("image: %v", err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		log.Fatalf("image: decode %s: %v", *imagePath, err)
	}

	backend := pickVisionBackend(cfg, *useMock)
	if backend == nil {
		log.Fatal("no vision backend configured (set GOOGLE_API_KEY or ANTHROPIC_API_KEY)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	bundle, err := suggest.NewSuggester(backend).FromImage(ctx, img)
	if err != nil {
		log.Fatalf("suggest: %v", err)
	}

	out, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	fmt.Println(string(out))
	fmt.Printf("\nTotal suggestions generated: %d (4 Main + %d Normal)\n", bundle.Total(), len(bundle.Normal))
}

// pickVisionBackend prefers Gemini, falling back to Claude.
func pickVisionBackend(cfg config.Config, useMock bool) adapter.VisionCompleter {
	if useMock {
		log.Println("mode: mock adapter enabled")
		return &adapter.MockAdapter{Response: mockBundleJSON}
	}

	if cfg.GeminiAPIKey != "" {
		log.Printf("mode: gemini (model: %s)", cfg.GeminiModel)
		return &adapter.GeminiAdapter{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
			Client: &http.Client{Timeout: 120 * time.Second},
		}
	}

	if cfg.AnthropicAPIKey != "" {
		log.Printf("mode: claude (model: %s)", cfg.AnthropicModel)
		return adapter.NewAnthropicAdapter(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	}

	return nil
}
