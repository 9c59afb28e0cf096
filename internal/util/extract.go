package util

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"image"
	"image/png"
	"mime"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/fadilmartias/cv-analysis-api/internal/config"
	"github.com/fadilmartias/cv-analysis-api/internal/logger"
	"github.com/fadilmartias/cv-analysis-api/internal/model"
	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

type TextExtractor interface {
	Extract(ctx context.Context, doc model.UploadedDocument) (string, error)
}

// ExtractorRegistry picks a TextExtractor by the document's declared type.
type ExtractorRegistry struct {
	byType map[string]TextExtractor
}

func NewExtractorRegistry(cfg config.UploadConfig) *ExtractorRegistry {
	var pdfExtractor TextExtractor = &FitzExtractor{OCRFallback: cfg.OCRFallback}
	if cfg.PDFExtractor == config.PDFExtractorPure {
		pdfExtractor = PureExtractor{}
	}
	return &ExtractorRegistry{byType: map[string]TextExtractor{
		MimePDF:  pdfExtractor,
		MimeDOCX: DocxExtractor{},
		MimeText: PlainTextExtractor{},
	}}
}

func (r *ExtractorRegistry) Extract(ctx context.Context, doc model.UploadedDocument) (string, error) {
	mediaType, _, err := mime.ParseMediaType(doc.ContentType)
	if err != nil {
		return "", NewExtractionError("unreadable content type "+doc.ContentType, err)
	}
	extractor, ok := r.byType[strings.ToLower(mediaType)]
	if !ok {
		return "", NewExtractionError("no extractor for "+mediaType, nil)
	}

	text, err := extractor.Extract(ctx, doc)
	if err != nil {
		var ae *AnalysisError
		if errors.As(err, &ae) {
			return "", err
		}
		return "", NewExtractionError(doc.Filename, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", NewExtractionError("no text content found in "+doc.Filename, nil)
	}

	logger.Ctx(ctx).Debug().
		Str("content_type", mediaType).
		Int("chars", len(text)).
		Msg("text extracted")
	return text, nil
}

// FitzExtractor reads the text layer with MuPDF. Pages without a text layer
// are run through tesseract when OCRFallback is set.
type FitzExtractor struct {
	OCRFallback bool
}

func (e *FitzExtractor) Extract(ctx context.Context, doc model.UploadedDocument) (string, error) {
	f, err := fitz.NewFromMemory(doc.Content)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var fullText strings.Builder
	for n := 0; n < f.NumPage(); n++ {
		pageText, err := f.Text(n)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", n+1, err)
		}
		if strings.TrimSpace(pageText) == "" && e.OCRFallback {
			pageText, err = ocrPage(ctx, f, n)
			if err != nil {
				logger.Ctx(ctx).Warn().Err(err).Int("page", n+1).Msg("ocr failed")
				continue
			}
		}
		fullText.WriteString(pageText)
		fullText.WriteString("\n\n")
	}
	return fullText.String(), nil
}

func ocrPage(ctx context.Context, f *fitz.Document, n int) (string, error) {
	img, err := f.Image(n)
	if err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}

	tmpFile, err := os.CreateTemp("", "page-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	err = savePNG(tmpFile, img)
	tmpFile.Close()
	if err != nil {
		return "", err
	}

	out, err := exec.CommandContext(ctx, "tesseract", tmpPath, "stdout", "-l", "eng").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("tesseract error: %w, output: %s", err, truncate(string(out), 200))
	}
	return strings.TrimSpace(string(out)), nil
}

func savePNG(f *os.File, img image.Image) error {
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// PureExtractor reads PDFs without cgo.
type PureExtractor struct{}

func (PureExtractor) Extract(_ context.Context, doc model.UploadedDocument) (text string, err error) {
	// the parser panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(doc.Content), int64(len(doc.Content)))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}

type DocxExtractor struct{}

func (DocxExtractor) Extract(_ context.Context, doc model.UploadedDocument) (string, error) {
	d, err := docx.ReadDocxFromMemory(bytes.NewReader(doc.Content), int64(len(doc.Content)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer d.Close()

	return docxXMLToText(d.Editable().GetContent()), nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:tab\s*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]*>`)
)

func docxXMLToText(content string) string {
	content = docxParagraphEnd.ReplaceAllStringFunc(content, func(tag string) string {
		if strings.HasPrefix(tag, "<w:tab") {
			return "\t"
		}
		return "\n"
	})
	return html.UnescapeString(xmlTag.ReplaceAllString(content, ""))
}

type PlainTextExtractor struct{}

func (PlainTextExtractor) Extract(_ context.Context, doc model.UploadedDocument) (string, error) {
	return strings.ToValidUTF8(string(doc.Content), "�"), nil
}
