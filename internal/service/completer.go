package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/cv-analysis-api/internal/config"
	"github.com/fadilmartias/cv-analysis-api/internal/model"
)

// Completer sends one prompt to a text-completion service and returns the
// generated text.
type Completer interface {
	Complete(ctx context.Context, prompt string, params model.ModelParams) (string, error)
}

// NewCompleter builds the backend selected by cfg.Provider.
func NewCompleter(ctx context.Context, cfg config.AIConfig) (Completer, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIService(cfg), nil
	case config.ProviderGemini:
		return NewGeminiService(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported AI provider %q", cfg.Provider)
	}
}
