// Package config loads service configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Port       int    `yaml:"port"`
	CORSOrigin string `yaml:"cors_origin"`

	LlamaCppURL   string `yaml:"llamacpp_url"`
	LlamaCppModel string `yaml:"llamacpp_model"`
	OllamaURL     string `yaml:"ollama_url"`
	OllamaModel   string `yaml:"ollama_model"`

	GeminiAPIKey    string `yaml:"gemini_api_key"`
	GeminiModel     string `yaml:"gemini_model"`
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	AnthropicModel  string `yaml:"anthropic_model"`

	APIKey        string `yaml:"api_key"`
	RatePerMinute int    `yaml:"rate_per_minute"`
}

func defaults() Config {
	return Config{
		Port:           8000,
		CORSOrigin:     "*",
		LlamaCppModel:  "llama-3.2-3b-instruct-q4_k_m",
		OllamaModel:    "llama3.2:3b",
		GeminiModel:    "gemini-2.5-pro",
		AnthropicModel: "claude-sonnet-4-5-20250929",
		RatePerMinute:  30,
	}
}

// Load reads configuration from a YAML file (if path is non-empty), then
// applies environment variable overrides. An empty path returns defaults
// plus env overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if v := os.Getenv("LIGHTART_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid LIGHTART_PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("LIGHTART_CORS_ORIGIN"); v != "" {
		cfg.CORSOrigin = v
	}
	if v := os.Getenv("LIGHTART_LLAMACPP_URL"); v != "" {
		cfg.LlamaCppURL = v
	}
	if v := os.Getenv("LIGHTART_LLAMACPP_MODEL"); v != "" {
		cfg.LlamaCppModel = v
	}
	if v := os.Getenv("LIGHTART_OLLAMA_URL"); v != "" {
		cfg.OllamaURL = v
	}
	if v := os.Getenv("LIGHTART_OLLAMA_MODEL"); v != "" {
		cfg.OllamaModel = v
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("LIGHTART_GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.AnthropicAPIKey = v
	}
	if v := os.Getenv("LIGHTART_ANTHROPIC_MODEL"); v != "" {
		cfg.AnthropicModel = v
	}
	if v := os.Getenv("LIGHTART_API_KEY"); v != "" {
		cfg.APIKey = v
	}

	return cfg, nil
}
