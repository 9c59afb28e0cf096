package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/fadilmartias/cv-analysis-api/internal/model"
	"github.com/fadilmartias/cv-analysis-api/internal/usecase"
	"github.com/stretchr/testify/require"
)

const (
	skillsJSON     = `{"technical":["Go"],"soft":["Mentoring"]}`
	experienceJSON = `{"totalYearsOfExperience":4}`
	sentimentJSON  = `{"overallTone":"professional","confidenceLevel":8,"keyPositiveAspects":["Concise"],"areasForImprovement":[]}`
	validationJSON = `{"validationResults":{},"confidenceScore":6,"redFlags":[]}`
)

func firstLine(s string) string {
	return strings.SplitN(s, "\n", 2)[0]
}

type fakeCompleter struct {
	mu        sync.Mutex
	responses map[string]string
	calls     map[string]int
}

func newFakeCompleter() *fakeCompleter {
	return &fakeCompleter{
		responses: map[string]string{
			firstLine(usecase.SkillsPrompt("")):                 skillsJSON,
			firstLine(usecase.ExperiencePrompt("")):             experienceJSON,
			firstLine(usecase.SentimentPrompt("")):              sentimentJSON,
			firstLine(usecase.ValidationPrompt("")):             validationJSON,
			firstLine(usecase.QualificationMatchPrompt("", "")): "Match: 75%",
			firstLine(usecase.CVSummaryPrompt("")):              "Summary",
		},
		calls: map[string]int{},
	}
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string, _ model.ModelParams) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := firstLine(prompt)
	f.calls[key]++
	resp, ok := f.responses[key]
	if !ok {
		return "", errors.New("unexpected prompt")
	}
	return resp, nil
}

func (f *fakeCompleter) set(prompt, response string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[firstLine(prompt)] = response
}

func (f *fakeCompleter) count(prompt string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[firstLine(prompt)]
}

func (f *fakeCompleter) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

type spyExtractor struct {
	mu    sync.Mutex
	text  string
	err   error
	calls int
}

func (s *spyExtractor) Extract(context.Context, model.UploadedDocument) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.text, s.err
}

func (s *spyExtractor) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type filePart struct {
	field       string
	filename    string
	contentType string
	content     []byte
}

func pdfPart(content string) filePart {
	return filePart{field: FieldCV, filename: "cv.pdf", contentType: "application/pdf", content: []byte(content)}
}

// multipartBody builds a form body with explicit per-file Content-Type headers.
func multipartBody(t *testing.T, files []filePart, values map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.filename))
		h.Set("Content-Type", f.contentType)
		w, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = w.Write(f.content)
		require.NoError(t, err)
	}
	for k, v := range values {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}
