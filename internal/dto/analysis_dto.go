package dto

import (
	"encoding/json"

	"github.com/fadilmartias/cv-analysis-api/internal/model"
)

type AnalysisReport struct {
	BasicInfo            model.BasicInfo   `json:"basicInfo"`
	SkillsAnalysis       json.RawMessage   `json:"skillsAnalysis"`
	ExperienceAnalysis   json.RawMessage   `json:"experienceAnalysis"`
	SentimentAnalysis    json.RawMessage   `json:"sentimentAnalysis"`
	ExperienceValidation json.RawMessage   `json:"experienceValidation"`
	QualificationMatch   *string           `json:"qualificationMatch"`
	OverallAssessment    OverallAssessment `json:"overallAssessment"`
	CVSummary            string            `json:"cvSummary,omitempty"`
}

type OverallAssessment struct {
	ConfidenceScore     float64 `json:"confidenceScore"`
	Strengths           []any   `json:"strengths"`
	AreasForImprovement []any   `json:"areasForImprovement"`
	Recommendation      string  `json:"recommendation"`
}

type ResponseMetadata struct {
	ProcessingTime string `json:"processingTime"`
	Version        string `json:"version"`
	RequestID      string `json:"requestId,omitempty"`
}
