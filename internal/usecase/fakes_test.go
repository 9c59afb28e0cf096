package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/fadilmartias/cv-analysis-api/internal/model"
)

const (
	skillsJSON     = `{"technical":["Go","SQL"],"soft":["Teamwork"]}`
	experienceJSON = `{"totalYearsOfExperience":5,"careerProgression":"steady","keyAchievements":[],"industryExpertise":["fintech"]}`
	sentimentJSON  = `{"overallTone":"professional","confidenceLevel":8,"keyPositiveAspects":["Clear"],"areasForImprovement":["Brevity"]}`
	validationJSON = `{"validationResults":{},"confidenceScore":6,"redFlags":["Gap 2019"]}`
)

// fakeCompleter answers by recognising which prompt builder produced the prompt.
type fakeCompleter struct {
	mu        sync.Mutex
	responses map[string]string
	failures  map[string]error
	calls     map[string]int
	params    map[string]model.ModelParams
}

func newFakeCompleter() *fakeCompleter {
	return &fakeCompleter{
		responses: map[string]string{
			"skills":        skillsJSON,
			"experience":    experienceJSON,
			"sentiment":     sentimentJSON,
			"validation":    validationJSON,
			"qualification": "Overall match: 80%",
			"summary":       "  Key skills: Go  ",
		},
		failures: map[string]error{},
		calls:    map[string]int{},
		params:   map[string]model.ModelParams{},
	}
}

func promptKind(prompt string) string {
	switch {
	case strings.HasPrefix(prompt, "Extract and categorize technical and soft skills"):
		return "skills"
	case strings.HasPrefix(prompt, "Analyze the work experience"):
		return "experience"
	case strings.HasPrefix(prompt, "Analyze the tone and professionalism"):
		return "sentiment"
	case strings.HasPrefix(prompt, "Analyze the following CV content for potential inconsistencies"):
		return "validation"
	case strings.HasPrefix(prompt, "Compare the following CV content with the job requirements"):
		return "qualification"
	case strings.HasPrefix(prompt, "Analyze the following CV content and provide a structured analysis"):
		return "summary"
	}
	return "unknown"
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string, params model.ModelParams) (string, error) {
	kind := promptKind(prompt)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[kind]++
	f.params[kind] = params
	if err := f.failures[kind]; err != nil {
		return "", err
	}
	resp, ok := f.responses[kind]
	if !ok {
		return "", errors.New("unexpected prompt")
	}
	return resp, nil
}

func (f *fakeCompleter) count(kind string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[kind]
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
	text  string
	err   error
	calls int
}

func (s *spyExtractor) Extract(context.Context, model.UploadedDocument) (string, error) {
	s.calls++
	return s.text, s.err
}
