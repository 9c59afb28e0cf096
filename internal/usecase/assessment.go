package usecase

import (
	"encoding/json"

	"github.com/fadilmartias/cv-analysis-api/internal/dto"
	"github.com/fadilmartias/cv-analysis-api/internal/util"
	"github.com/tidwall/gjson"
)

const (
	RecommendationStrong = "Strong Candidate"
	RecommendationReview = "Needs Review"
)

// BuildOverallAssessment derives the summary block from the skills,
// sentiment and validation analyses. A missing or mistyped input field is
// reported as util.ErrUnexpectedAnalysis.
func BuildOverallAssessment(skills, sentiment, validation json.RawMessage) (dto.OverallAssessment, error) {
	var out dto.OverallAssessment

	confidenceLevel, err := numberField(sentiment, "sentiment", "confidenceLevel")
	if err != nil {
		return out, err
	}
	confidenceScore, err := numberField(validation, "validation", "confidenceScore")
	if err != nil {
		return out, err
	}
	technical, err := arrayField(skills, "skills", "technical")
	if err != nil {
		return out, err
	}
	positives, err := arrayField(sentiment, "sentiment", "keyPositiveAspects")
	if err != nil {
		return out, err
	}
	improvements, err := arrayField(sentiment, "sentiment", "areasForImprovement")
	if err != nil {
		return out, err
	}
	redFlags, err := arrayField(validation, "validation", "redFlags")
	if err != nil {
		return out, err
	}

	out.ConfidenceScore = (confidenceLevel + confidenceScore) / 2
	out.Strengths = append(technical, positives...)
	out.AreasForImprovement = append(improvements, redFlags...)
	out.Recommendation = RecommendationReview
	if tone := gjson.GetBytes(sentiment, "overallTone"); tone.Type == gjson.String && tone.Str == "professional" {
		out.Recommendation = RecommendationStrong
	}
	return out, nil
}

func numberField(doc json.RawMessage, op, path string) (float64, error) {
	v := gjson.GetBytes(doc, path)
	if v.Type != gjson.Number {
		return 0, util.NewUnexpectedAnalysis(op, path+" is not a number")
	}
	return v.Num, nil
}

func arrayField(doc json.RawMessage, op, path string) ([]any, error) {
	v := gjson.GetBytes(doc, path)
	if !v.IsArray() {
		return nil, util.NewUnexpectedAnalysis(op, path+" is not an array")
	}
	items := make([]any, 0, len(v.Array()))
	for _, item := range v.Array() {
		items = append(items, item.Value())
	}
	return items, nil
}
