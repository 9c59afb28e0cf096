package util

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseModelJSON validates model output that was asked to be JSON.
// A surrounding markdown code fence is tolerated; anything else that is not
// valid JSON fails with ErrMalformedAIResponse.
func ParseModelJSON(op, text string) (json.RawMessage, error) {
	cleaned := CleanJSON(text)
	if cleaned == "" {
		return nil, NewMalformedResponse(op, errors.New("empty response"))
	}
	if !gjson.Valid(cleaned) {
		return nil, NewMalformedResponse(op, errors.New("response is not valid JSON: "+truncate(cleaned, 120)))
	}
	return json.RawMessage(cleaned), nil
}

// CleanJSON trims whitespace and an optional ```json fence.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```json")
		clean = strings.TrimPrefix(clean, "```")
		clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	}
	return strings.TrimSpace(clean)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
