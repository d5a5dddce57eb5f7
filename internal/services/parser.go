package services

import (
	"encoding/json"
	"strings"
)

// requiredReplyFields are the keys every model reply must contain. The order
// is fixed so a reply missing several fields always reports the same one.
var requiredReplyFields = []string{
	"atsScore",
	"strengths",
	"improvements",
	"missingKeywords",
	"suggestions",
}

// ResponseParser turns a raw model reply into its JSON fields. It checks
// shape only; value constraints are enforced when the AnalysisResult is
// built, so a structurally complete but out-of-range reply fails there with
// a distinct error.
type ResponseParser struct{}

func NewResponseParser() *ResponseParser {
	return &ResponseParser{}
}

// Parse trims the reply, strips any markdown fencing around the JSON object
// and verifies the required field set.
func (p *ResponseParser) Parse(raw string) (map[string]json.RawMessage, error) {
	content := strings.TrimSpace(raw)

	// Models occasionally wrap the object in a code fence despite the
	// instructions. Slice out the outermost brace pair when they do; if no
	// pair exists the content is left as-is and fails to parse below.
	if strings.HasPrefix(content, "```") {
		start := strings.Index(content, "{")
		end := strings.LastIndex(content, "}")
		if start != -1 && end > start {
			content = content[start : end+1]
		}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &fields); err != nil {
		return nil, &ParseError{Reason: ParseReasonInvalidJSON, Err: err}
	}

	for _, field := range requiredReplyFields {
		if _, ok := fields[field]; !ok {
			return nil, &ParseError{Reason: ParseReasonMissingField, Field: field}
		}
	}

	return fields, nil
}
