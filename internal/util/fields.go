package util

import (
	"regexp"
	"strings"

	"github.com/fadilmartias/cv-analysis-api/internal/model"
)

// ExtractBasicInfo looks up each requested field as a "Label: value" line,
// case-insensitively, and keeps the first match. Fields without a match are
// set to model.NotFound. Nothing is returned for fields that were not requested.
func ExtractBasicInfo(text string, elements []string) model.BasicInfo {
	info := model.BasicInfo{}
	for _, element := range elements {
		field := strings.TrimSpace(element)
		if field == "" {
			continue
		}
		if _, seen := info[field]; seen {
			continue
		}
		info[field] = matchLabel(text, field)
	}
	return info
}

// labelPatterns holds the conventional labels; others are compiled per request.
var labelPatterns = map[string]*regexp.Regexp{
	"name":  labelPattern("name"),
	"email": labelPattern("email"),
	"phone": labelPattern("phone"),
}

func labelPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `:\s*(.*)`)
}

func matchLabel(text, label string) string {
	re, ok := labelPatterns[strings.ToLower(label)]
	if !ok {
		re = labelPattern(label)
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return model.NotFound
	}
	return strings.TrimSpace(m[1])
}
