package util

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fadilmartias/cv-analysis-api/internal/config"
	"github.com/fadilmartias/cv-analysis-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) Extract(context.Context, model.UploadedDocument) (string, error) {
	return s.text, s.err
}

func TestRegistryPlainText(t *testing.T) {
	r := NewExtractorRegistry(config.UploadConfig{PDFExtractor: config.PDFExtractorPure})

	text, err := r.Extract(context.Background(), model.UploadedDocument{
		ContentType: "text/plain; charset=utf-8",
		Content:     []byte("  Name: Jane\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Name: Jane", text)
}

func TestRegistryUnsupportedType(t *testing.T) {
	r := NewExtractorRegistry(config.UploadConfig{})

	_, err := r.Extract(context.Background(), model.UploadedDocument{ContentType: "image/png"})
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestRegistryEmptyTextFails(t *testing.T) {
	r := &ExtractorRegistry{byType: map[string]TextExtractor{MimePDF: stubExtractor{text: " \n\n "}}}

	_, err := r.Extract(context.Background(), model.UploadedDocument{ContentType: MimePDF})
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestRegistryWrapsExtractorErrors(t *testing.T) {
	cause := errors.New("xref table broken")
	r := &ExtractorRegistry{byType: map[string]TextExtractor{MimePDF: stubExtractor{err: cause}}}

	_, err := r.Extract(context.Background(), model.UploadedDocument{Filename: "cv.pdf", ContentType: MimePDF})
	assert.ErrorIs(t, err, ErrExtractionFailed)
	assert.ErrorIs(t, err, cause)
}

// onePagePDF writes a minimal single-page PDF showing each line with Helvetica.
func onePagePDF(lines ...string) []byte {
	var content bytes.Buffer
	content.WriteString("BT /F1 12 Tf 14 TL 72 720 Td\n")
	for _, line := range lines {
		fmt.Fprintf(&content, "(%s) Tj T*\n", line)
	}
	content.WriteString("ET")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestRegistryPDFBackends(t *testing.T) {
	fixture := onePagePDF("Name: Jane Doe", "Email: jane@example.com")

	for _, backend := range []string{config.PDFExtractorFitz, config.PDFExtractorPure} {
		t.Run(backend, func(t *testing.T) {
			r := NewExtractorRegistry(config.UploadConfig{PDFExtractor: backend})

			text, err := r.Extract(context.Background(), model.UploadedDocument{
				Filename:    "cv.pdf",
				ContentType: MimePDF,
				Content:     fixture,
			})
			require.NoError(t, err)
			assert.Contains(t, text, "Email: jane@example.com")
			assert.Equal(t, "jane@example.com", ExtractBasicInfo(text, []string{"email"})["email"])
		})
	}
}

func TestRegistryCorruptPDF(t *testing.T) {
	for _, backend := range []string{config.PDFExtractorFitz, config.PDFExtractorPure} {
		t.Run(backend, func(t *testing.T) {
			r := NewExtractorRegistry(config.UploadConfig{PDFExtractor: backend})

			_, err := r.Extract(context.Background(), model.UploadedDocument{
				Filename:    "broken.pdf",
				ContentType: MimePDF,
				Content:     []byte("%PDF-1.4\nthis is not really a pdf"),
			})
			assert.ErrorIs(t, err, ErrExtractionFailed)
		})
	}
}

func TestDocxXMLToText(t *testing.T) {
	content := `<w:document><w:body><w:p><w:r><w:t>Name: Jane &amp; Co</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Email:</w:t><w:tab/><w:t>jane@example.com</w:t></w:r></w:p></w:body></w:document>`

	assert.Equal(t, "Name: Jane & Co\nEmail:\tjane@example.com\n", docxXMLToText(content))
}
