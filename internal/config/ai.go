package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	ModeChat       = "chat"
	ModeCompletion = "completion"
)

type AIConfig struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Mode        string
	Model       string
	MaxTokens   int
	Temperature float64
	// Timeout bounds a single completion call. Zero means no bound.
	Timeout time.Duration
}

func LoadAIConfig() (AIConfig, error) {
	provider := strings.ToLower(getEnv("AI_PROVIDER", ProviderOpenAI))
	cfg := AIConfig{
		Provider:    provider,
		APIKey:      firstEnv("AI_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY"),
		BaseURL:     strings.TrimRight(getEnv("AI_BASE_URL", defaultBaseURL(provider)), "/"),
		Mode:        strings.ToLower(getEnv("AI_API_MODE", ModeChat)),
		Model:       getEnv("AI_MODEL", defaultModel(provider)),
		MaxTokens:   getEnvAsInt("AI_MAX_TOKENS", 1000),
		Temperature: getEnvAsFloat("AI_TEMPERATURE", 0.3),
		Timeout:     getEnvAsDuration("AI_TIMEOUT", "60s"),
	}
	return cfg, cfg.validate()
}

func (c AIConfig) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("missing required environment variables: AI_API_KEY")
	}
	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q", c.Provider)
	}
	if c.Mode != ModeChat && c.Mode != ModeCompletion {
		return fmt.Errorf("unsupported AI_API_MODE %q", c.Mode)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("AI_MAX_TOKENS must be positive, got %d", c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("AI_TEMPERATURE must be within [0, 2], got %v", c.Temperature)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("AI_TIMEOUT must not be negative")
	}
	return nil
}

// defaultBaseURL is empty for Gemini so the SDK endpoint is used.
func defaultBaseURL(provider string) string {
	if provider == ProviderGemini {
		return ""
	}
	return "https://api.openai.com/v1"
}

func defaultModel(provider string) string {
	if provider == ProviderGemini {
		return "gemini-2.5-flash"
	}
	return "gpt-4o-mini"
}
