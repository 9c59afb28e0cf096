package handler

import (
	"github.com/fadilmartias/cv-analysis-api/internal/logger"
	"github.com/fadilmartias/cv-analysis-api/internal/util"
	"github.com/gofiber/fiber/v2"
)

const MsgUnhandled = "Something broke!"

// ErrorHandler renders anything a route or middleware returned unhandled,
// including recovered panics, with the status from util.HTTPStatus.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := util.HTTPStatus(err)

	logger.Ctx(c.UserContext()).Error().Err(err).Int("status", code).Msg("unhandled error")
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    code,
		Message: MsgUnhandled,
	}, err)
}
