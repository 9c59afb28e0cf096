package util

import (
	"testing"

	"github.com/fadilmartias/cv-analysis-api/internal/model"
	"github.com/stretchr/testify/assert"
)

const sampleCV = `Jane Doe
Name: Jane Doe
EMAIL:   jane@example.com
Phone: +1 555 0100
Email: second@example.com
`

func TestExtractBasicInfo(t *testing.T) {
	info := ExtractBasicInfo(sampleCV, []string{"name", "email", "phone"})

	assert.Equal(t, model.BasicInfo{
		"name":  "Jane Doe",
		"email": "jane@example.com",
		"phone": "+1 555 0100",
	}, info)
}

func TestExtractBasicInfoOnlyRequestedFields(t *testing.T) {
	info := ExtractBasicInfo("Email: jane@example.com\nPhone: 123", []string{"email"})

	assert.Equal(t, model.BasicInfo{"email": "jane@example.com"}, info)
}

func TestExtractBasicInfoNotFound(t *testing.T) {
	info := ExtractBasicInfo("Contact me at jane@example.com", []string{"email", " ", "email"})

	assert.Equal(t, model.BasicInfo{"email": model.NotFound}, info)
}

func TestExtractBasicInfoNoElements(t *testing.T) {
	assert.Empty(t, ExtractBasicInfo(sampleCV, nil))
}

func TestExtractBasicInfoQuotesLabel(t *testing.T) {
	info := ExtractBasicInfo("Web (personal): jane.dev\n", []string{"web (personal)", "a.b"})

	assert.Equal(t, "jane.dev", info["web (personal)"])
	assert.Equal(t, model.NotFound, info["a.b"])
}

func TestMatchLabelConventionalLabelsPrecompiled(t *testing.T) {
	for _, label := range []string{"name", "email", "phone"} {
		assert.NotNil(t, labelPatterns[label], label)
	}
	assert.Equal(t, "jane@example.com", matchLabel(sampleCV, "EMAIL"))
	assert.Equal(t, "+1 555 0100", matchLabel(sampleCV, "Phone"))
	assert.Equal(t, model.NotFound, matchLabel(sampleCV, "linkedin"))
}
