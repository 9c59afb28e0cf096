package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadilmartias/cv-analysis-api/internal/config"
	"github.com/fadilmartias/cv-analysis-api/internal/model"
	"github.com/fadilmartias/cv-analysis-api/internal/util"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// OpenAIService talks to any OpenAI-compatible API (OpenAI, OpenRouter, local
// gateways). Mode selects between the chat and the legacy completions endpoint.
type OpenAIService struct {
	client *resty.Client
	mode   string
}

func NewOpenAIService(cfg config.AIConfig) *OpenAIService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return &OpenAIService{client: client, mode: cfg.Mode}
}

func (s *OpenAIService) Complete(ctx context.Context, prompt string, params model.ModelParams) (string, error) {
	path, body, textPath := s.request(prompt, params)

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return "", util.NewUpstreamError("completion", "request failed", err)
	}
	if resp.IsError() {
		msg := gjson.GetBytes(resp.Body(), "error.message").String()
		if msg == "" {
			msg = resp.String()
		}
		return "", util.NewUpstreamError("completion", fmt.Sprintf("status %d", resp.StatusCode()), errors.New(msg))
	}

	text := gjson.GetBytes(resp.Body(), textPath)
	if !text.Exists() {
		return "", util.NewUpstreamError("completion", "no choices in response", nil)
	}
	return text.String(), nil
}

func (s *OpenAIService) request(prompt string, params model.ModelParams) (string, map[string]any, string) {
	if s.mode == config.ModeCompletion {
		return "/completions", map[string]any{
			"model":       params.Model,
			"prompt":      prompt,
			"max_tokens":  params.MaxTokens,
			"temperature": params.Temperature,
		}, "choices.0.text"
	}
	return "/chat/completions", map[string]any{
		"model": params.Model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"max_tokens":  params.MaxTokens,
		"temperature": params.Temperature,
	}, "choices.0.message.content"
}
