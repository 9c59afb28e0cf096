package config

import (
	"fmt"
	"mime"
	"slices"
	"strings"
)

const (
	PDFExtractorFitz = "fitz"
	PDFExtractorPure = "pure"
)

type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
	// SniffContent requires the detected type of the bytes to match the declared one.
	SniffContent bool
	PDFExtractor string
	OCRFallback  bool
}

func LoadUploadConfig() (UploadConfig, error) {
	cfg := UploadConfig{
		MaxSize:      getEnvAsInt64("UPLOAD_MAX_SIZE", 5*1024*1024),
		AllowedTypes: getEnvAsList("UPLOAD_ALLOWED_TYPES", []string{"application/pdf"}),
		SniffContent: getEnvAsBool("UPLOAD_SNIFF_CONTENT", true),
		PDFExtractor: strings.ToLower(getEnv("PDF_EXTRACTOR", PDFExtractorFitz)),
		OCRFallback:  getEnvAsBool("PDF_OCR_FALLBACK", false),
	}
	for i, t := range cfg.AllowedTypes {
		cfg.AllowedTypes[i] = strings.ToLower(t)
	}

	if cfg.MaxSize <= 0 {
		return cfg, fmt.Errorf("UPLOAD_MAX_SIZE must be positive, got %d", cfg.MaxSize)
	}
	if len(cfg.AllowedTypes) == 0 {
		return cfg, fmt.Errorf("UPLOAD_ALLOWED_TYPES must not be empty")
	}
	if cfg.PDFExtractor != PDFExtractorFitz && cfg.PDFExtractor != PDFExtractorPure {
		return cfg, fmt.Errorf("unsupported PDF_EXTRACTOR %q", cfg.PDFExtractor)
	}
	return cfg, nil
}

// IsAllowed reports whether the declared content type is in the allow-list.
// Parameters such as charset are ignored.
func (c UploadConfig) IsAllowed(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return slices.Contains(c.AllowedTypes, strings.ToLower(mediaType))
}
