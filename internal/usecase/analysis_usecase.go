package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/cv-analysis-api/internal/config"
	"github.com/fadilmartias/cv-analysis-api/internal/dto"
	"github.com/fadilmartias/cv-analysis-api/internal/logger"
	"github.com/fadilmartias/cv-analysis-api/internal/model"
	"github.com/fadilmartias/cv-analysis-api/internal/service"
	"github.com/fadilmartias/cv-analysis-api/internal/util"
	"golang.org/x/sync/errgroup"
)

type AnalysisUsecase struct {
	extractor util.TextExtractor
	completer service.Completer
	ai        config.AIConfig
}

func NewAnalysisUsecase(extractor util.TextExtractor, completer service.Completer, ai config.AIConfig) *AnalysisUsecase {
	return &AnalysisUsecase{extractor: extractor, completer: completer, ai: ai}
}

// Analyze runs the whole pipeline for one uploaded CV. The four mandatory
// analyses (and the optional summary) run concurrently; the first failure
// cancels the others and fails the request. Qualification matching runs
// afterwards, only when job requirements were given.
func (uc *AnalysisUsecase) Analyze(ctx context.Context, req model.AnalysisRequest) (*dto.AnalysisReport, error) {
	text, err := uc.extractor.Extract(ctx, req.Document)
	if err != nil {
		return nil, err
	}

	report := &dto.AnalysisReport{
		BasicInfo: util.ExtractBasicInfo(text, req.Elements),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		report.SkillsAnalysis, err = uc.ExtractSkills(gctx, text)
		return err
	})
	g.Go(func() (err error) {
		report.ExperienceAnalysis, err = uc.AnalyzeExperience(gctx, text)
		return err
	})
	g.Go(func() (err error) {
		report.SentimentAnalysis, err = uc.AnalyzeSentiment(gctx, text)
		return err
	})
	g.Go(func() (err error) {
		report.ExperienceValidation, err = uc.ValidateExperience(gctx, text)
		return err
	})
	if req.IncludeSummary {
		g.Go(func() (err error) {
			report.CVSummary, err = uc.AnalyzeCV(gctx, text)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.JobRequirements) != "" {
		match, err := uc.MatchQualifications(ctx, text, req.JobRequirements)
		if err != nil {
			return nil, err
		}
		report.QualificationMatch = &match
	}

	report.OverallAssessment, err = BuildOverallAssessment(
		report.SkillsAnalysis,
		report.SentimentAnalysis,
		report.ExperienceValidation,
	)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (uc *AnalysisUsecase) ExtractSkills(ctx context.Context, text string) (json.RawMessage, error) {
	return uc.completeJSON(ctx, "skills", SkillsPrompt(text), uc.defaultParams())
}

func (uc *AnalysisUsecase) AnalyzeExperience(ctx context.Context, text string) (json.RawMessage, error) {
	return uc.completeJSON(ctx, "experience", ExperiencePrompt(text), uc.defaultParams())
}

func (uc *AnalysisUsecase) AnalyzeSentiment(ctx context.Context, text string) (json.RawMessage, error) {
	return uc.completeJSON(ctx, "sentiment", SentimentPrompt(text), uc.defaultParams())
}

func (uc *AnalysisUsecase) ValidateExperience(ctx context.Context, text string) (json.RawMessage, error) {
	return uc.completeJSON(ctx, "validation", ValidationPrompt(text), uc.defaultParams())
}

func (uc *AnalysisUsecase) MatchQualifications(ctx context.Context, text, requirements string) (string, error) {
	return uc.complete(ctx, "qualification match", QualificationMatchPrompt(text, requirements), model.ModelParams{
		Model:       uc.ai.Model,
		MaxTokens:   800,
		Temperature: 0.7,
	})
}

func (uc *AnalysisUsecase) AnalyzeCV(ctx context.Context, text string) (string, error) {
	return uc.complete(ctx, "cv summary", CVSummaryPrompt(text), model.ModelParams{
		Model:       uc.ai.Model,
		MaxTokens:   1000,
		Temperature: 0.7,
	})
}

func (uc *AnalysisUsecase) defaultParams() model.ModelParams {
	return model.ModelParams{
		Model:       uc.ai.Model,
		MaxTokens:   uc.ai.MaxTokens,
		Temperature: uc.ai.Temperature,
	}
}

func (uc *AnalysisUsecase) completeJSON(ctx context.Context, op, prompt string, params model.ModelParams) (json.RawMessage, error) {
	text, err := uc.complete(ctx, op, prompt, params)
	if err != nil {
		return nil, err
	}
	return util.ParseModelJSON(op, text)
}

func (uc *AnalysisUsecase) complete(ctx context.Context, op, prompt string, params model.ModelParams) (string, error) {
	log := logger.Ctx(ctx)
	start := time.Now()

	text, err := uc.completer.Complete(ctx, prompt, params)
	if err != nil {
		log.Error().Err(err).Str("analysis", op).Msg("completion failed")
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Debug().
		Str("analysis", op).
		Str("model", params.Model).
		Int("chars", len(text)).
		Dur("took", time.Since(start)).
		Msg("completion received")
	return strings.TrimSpace(text), nil
}
