package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/cv-analysis-api/internal/config"
	"github.com/fadilmartias/cv-analysis-api/internal/model"
	"github.com/fadilmartias/cv-analysis-api/internal/util"
	"google.golang.org/genai"
)

type GeminiService struct {
	Client         *genai.Client
	RequestTimeout time.Duration
}

func NewGeminiService(ctx context.Context, cfg config.AIConfig) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key not set")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiService{
		Client:         client,
		RequestTimeout: cfg.Timeout,
	}, nil
}

func (s *GeminiService) Complete(ctx context.Context, prompt string, params model.ModelParams) (string, error) {
	if params.Model == "" {
		return "", fmt.Errorf("model name cannot be empty")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	if s.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.RequestTimeout)
		defer cancel()
	}

	result, err := s.Client.Models.GenerateContent(
		ctx,
		params.Model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(float32(params.Temperature)),
			MaxOutputTokens: int32(params.MaxTokens),
		},
	)
	if err != nil {
		return "", util.NewUpstreamError("completion", "generate content failed", err)
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", util.NewUpstreamError("completion", "invalid response", err)
	}
	return result.Text(), nil
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
