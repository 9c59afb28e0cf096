package handler

import (
	"context"
	"errors"
	"time"

	"github.com/fadilmartias/cv-analysis-api/internal/dto"
	"github.com/fadilmartias/cv-analysis-api/internal/logger"
	"github.com/fadilmartias/cv-analysis-api/internal/middleware"
	"github.com/fadilmartias/cv-analysis-api/internal/model"
	"github.com/fadilmartias/cv-analysis-api/internal/util"
	"github.com/gofiber/fiber/v2"
)

const (
	WelcomeMessage       = "Welcome to the Professional CV Analysis API! Use the /upload endpoint to upload a CV."
	MsgProcessingFailed  = "An error occurred during CV processing"
	processingTimeLayout = "2006-01-02T15:04:05.000Z"
)

// Analyzer runs the analysis pipeline for one request.
type Analyzer interface {
	Analyze(ctx context.Context, req model.AnalysisRequest) (*dto.AnalysisReport, error)
}

type AnalyzeHandler struct {
	analyzer Analyzer
	guard    *UploadGuard
	version  string
}

func NewAnalyzeHandler(analyzer Analyzer, guard *UploadGuard, version string) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer, guard: guard, version: version}
}

func (h *AnalyzeHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Welcome)
	app.Post("/upload", h.Upload)
}

func (h *AnalyzeHandler) Welcome(c *fiber.Ctx) error {
	return c.SendString(WelcomeMessage)
}

func (h *AnalyzeHandler) Upload(c *fiber.Ctx) error {
	log := logger.Ctx(c.UserContext())

	form, err := c.MultipartForm()
	if err != nil {
		log.Warn().Err(err).Msg("unreadable multipart form")
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: MsgMissingFile,
		}, err)
	}

	req, err := h.guard.ReadRequest(form)
	if err != nil {
		log.Warn().Err(err).Msg("upload rejected")
		msg := MsgInvalidFile
		if errors.Is(err, errMissingFile) {
			msg = MsgMissingFile
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    util.StatusCode(err),
			Message: msg,
		}, err)
	}

	report, err := h.analyzer.Analyze(c.UserContext(), req)
	if err != nil {
		log.Error().Err(err).Str("filename", req.Document.Filename).Msg("cv processing failed")
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    util.StatusCode(err),
			Message: MsgProcessingFailed,
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: report,
		Meta: dto.ResponseMetadata{
			ProcessingTime: time.Now().UTC().Format(processingTimeLayout),
			Version:        h.version,
			RequestID:      middleware.GetRequestID(c),
		},
	})
}
