package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"strings"

	"github.com/fadilmartias/cv-analysis-api/internal/config"
	"github.com/fadilmartias/cv-analysis-api/internal/model"
	"github.com/fadilmartias/cv-analysis-api/internal/util"
	"github.com/gabriel-vasile/mimetype"
)

const (
	FieldCV              = "cv"
	FieldElements        = "elements"
	FieldQualifications  = "qualifications"
	FieldJobRequirements = "jobRequirements"
	FieldSummary         = "summary"

	MsgMissingFile = "Please upload a PDF file."
	MsgInvalidFile = "Invalid upload"
)

var errMissingFile = util.NewInvalidUpload(MsgMissingFile)

// UploadGuard validates the multipart form before any extraction happens.
type UploadGuard struct {
	cfg config.UploadConfig
}

func NewUploadGuard(cfg config.UploadConfig) *UploadGuard {
	return &UploadGuard{cfg: cfg}
}

// ReadRequest checks the uploaded file against the size and type limits and
// decodes the optional form fields. Every violation is util.ErrInvalidUpload.
func (g *UploadGuard) ReadRequest(form *multipart.Form) (model.AnalysisRequest, error) {
	var req model.AnalysisRequest
	if form == nil {
		return req, errMissingFile
	}

	files := 0
	for _, headers := range form.File {
		files += len(headers)
	}
	headers := form.File[FieldCV]
	switch {
	case len(headers) == 0:
		return req, errMissingFile
	case files > 1:
		return req, util.NewInvalidUpload("only one file may be uploaded")
	}

	doc, err := g.readDocument(headers[0])
	if err != nil {
		return req, err
	}
	req.Document = doc

	if req.Elements, err = stringList(form, FieldElements); err != nil {
		return req, err
	}
	if req.Qualifications, err = rawList(form, FieldQualifications); err != nil {
		return req, err
	}
	req.JobRequirements = formValue(form, FieldJobRequirements)
	req.IncludeSummary = truthy(formValue(form, FieldSummary))
	return req, nil
}

func (g *UploadGuard) readDocument(fh *multipart.FileHeader) (model.UploadedDocument, error) {
	var doc model.UploadedDocument
	if fh.Size > g.cfg.MaxSize {
		return doc, util.NewInvalidUpload(fmt.Sprintf("file exceeds the %d byte limit", g.cfg.MaxSize))
	}

	contentType := fh.Header.Get("Content-Type")
	if !g.cfg.IsAllowed(contentType) {
		return doc, util.NewInvalidUpload(fmt.Sprintf("file type %q is not allowed", contentType))
	}

	f, err := fh.Open()
	if err != nil {
		return doc, util.NewInvalidUpload("cannot read uploaded file")
	}
	defer f.Close()
	content, err := io.ReadAll(io.LimitReader(f, g.cfg.MaxSize+1))
	if err != nil {
		return doc, util.NewInvalidUpload("cannot read uploaded file")
	}
	if int64(len(content)) > g.cfg.MaxSize {
		return doc, util.NewInvalidUpload(fmt.Sprintf("file exceeds the %d byte limit", g.cfg.MaxSize))
	}

	if g.cfg.SniffContent && !matchesContent(content, contentType) {
		return doc, util.NewInvalidUpload(fmt.Sprintf("file content does not match %q", contentType))
	}

	return model.UploadedDocument{
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        int64(len(content)),
		Content:     content,
	}, nil
}

// matchesContent reports whether the sniffed type of content is the declared
// type or one of its descendants (docx is detected as a child of zip).
func matchesContent(content []byte, declared string) bool {
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return false
	}
	for m := mimetype.Detect(content); m != nil; m = m.Parent() {
		if m.Is(mediaType) {
			return true
		}
	}
	return false
}

func stringList(form *multipart.Form, field string) ([]string, error) {
	raw := formValue(form, field)
	if raw == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, util.NewInvalidUpload(fmt.Sprintf("%s must be a JSON array of strings", field))
	}
	return list, nil
}

// rawList accepts a JSON array with elements of any type.
func rawList(form *multipart.Form, field string) ([]json.RawMessage, error) {
	raw := formValue(form, field)
	if raw == "" {
		return nil, nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, util.NewInvalidUpload(fmt.Sprintf("%s must be a JSON array", field))
	}
	return list, nil
}

func formValue(form *multipart.Form, field string) string {
	if values := form.Value[field]; len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true
	}
	return false
}
