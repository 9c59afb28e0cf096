package model

import "encoding/json"

// UploadedDocument is the file received with one request. It lives only
// for the duration of that request.
type UploadedDocument struct {
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
}

// AnalysisRequest is everything the upload endpoint hands to the analysis pipeline.
type AnalysisRequest struct {
	Document        UploadedDocument
	Elements        []string
	Qualifications  []json.RawMessage
	JobRequirements string
	IncludeSummary  bool
}

// NotFound marks a requested basic-info field that had no match.
const NotFound = "Not found"

// BasicInfo maps a requested field name to its matched value or NotFound.
type BasicInfo map[string]string

// ModelParams are the per-call parameters sent to the completion service.
type ModelParams struct {
	Model       string
	MaxTokens   int
	Temperature float64
}
