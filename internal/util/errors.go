package util

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidUpload       = errors.New("invalid upload")
	ErrExtractionFailed    = errors.New("text extraction failed")
	ErrMalformedAIResponse = errors.New("malformed AI response")
	ErrUpstreamService     = errors.New("completion service error")
	// ErrUnexpectedAnalysis is returned when well-formed model JSON lacks
	// the fields the overall assessment is computed from.
	ErrUnexpectedAnalysis = errors.New("unexpected analysis shape")
)

// AnalysisError carries the failing operation next to its error kind.
type AnalysisError struct {
	Op     string
	Kind   error
	Detail string
	Err    error
}

func (e *AnalysisError) Error() string {
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *AnalysisError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NewInvalidUpload(detail string) error {
	return &AnalysisError{Op: "upload", Kind: ErrInvalidUpload, Detail: detail}
}

func NewExtractionError(detail string, err error) error {
	return &AnalysisError{Op: "extract", Kind: ErrExtractionFailed, Detail: detail, Err: err}
}

func NewMalformedResponse(op string, err error) error {
	return &AnalysisError{Op: op, Kind: ErrMalformedAIResponse, Err: err}
}

func NewUpstreamError(op, detail string, err error) error {
	return &AnalysisError{Op: op, Kind: ErrUpstreamService, Detail: detail, Err: err}
}

func NewUnexpectedAnalysis(op, detail string) error {
	return &AnalysisError{Op: op, Kind: ErrUnexpectedAnalysis, Detail: detail}
}

// StatusCode maps an error to the HTTP status it is reported with.
func StatusCode(err error) int {
	if errors.Is(err, ErrInvalidUpload) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
