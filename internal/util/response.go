package util

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type SuccessResponseFormat struct {
	Code int
	Data any
	Meta any
}

type OrderedSuccessResponse struct {
	Success  bool `json:"success"`
	Data     any  `json:"data"`
	Metadata any  `json:"metadata,omitempty"`
}

type ErrorResponseFormat struct {
	Code    int
	Message string
	Details string
}

type OrderedErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse writes the standard success envelope.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(OrderedSuccessResponse{
		Success:  true,
		Data:     params.Data,
		Metadata: params.Meta,
	})
}

// ErrorResponse writes the standard failure envelope. When Details is empty
// the message of the first non-nil err is used.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	response := OrderedErrorResponse{
		Success: false,
		Error:   params.Message,
		Details: params.Details,
	}
	if response.Details == "" && len(errs) > 0 && errs[0] != nil {
		response.Details = errs[0].Error()
	}

	code := params.Code
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(response)
}

// HTTPStatus is the status an error returned by a route is rendered with.
// Fiber client errors keep their code; an oversized body counts as a bad
// upload. Other errors go through StatusCode.
func HTTPStatus(err error) int {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		return StatusCode(err)
	}
	switch fe.Code {
	case fiber.StatusRequestEntityTooLarge:
		return fiber.StatusBadRequest
	case fiber.StatusBadRequest, fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
