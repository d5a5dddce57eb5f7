package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReply = `{"atsScore":75,"strengths":["a"],"improvements":["b"],"missingKeywords":[],"suggestions":["c"]}`

func TestParse_PlainJSON(t *testing.T) {
	parser := NewResponseParser()

	fields, err := parser.Parse(validReply)

	require.NoError(t, err)
	assert.Len(t, fields, 5)

	var score int
	require.NoError(t, json.Unmarshal(fields["atsScore"], &score))
	assert.Equal(t, 75, score)
}

func TestParse_MarkdownFenceIsStripped(t *testing.T) {
	parser := NewResponseParser()
	raw := "```json\n" + validReply + "\n```"

	fields, err := parser.Parse(raw)

	require.NoError(t, err)

	var strengths []string
	require.NoError(t, json.Unmarshal(fields["strengths"], &strengths))
	assert.Equal(t, []string{"a"}, strengths)
}

func TestParse_FenceWithSurroundingProse(t *testing.T) {
	parser := NewResponseParser()
	raw := "```\nHere is the analysis you asked for:\n" + validReply + "\nHope this helps!\n```"

	_, err := parser.Parse(raw)

	require.NoError(t, err)
}

func TestParse_NotJSONAtAll(t *testing.T) {
	parser := NewResponseParser()

	_, err := parser.Parse("not json at all")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ParseReasonInvalidJSON, parseErr.Reason)
	assert.Error(t, parseErr.Err)
}

func TestParse_FenceWithoutBracesFailsAsInvalidJSON(t *testing.T) {
	parser := NewResponseParser()

	_, err := parser.Parse("```\nno object here\n```")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ParseReasonInvalidJSON, parseErr.Reason)
}

func TestParse_MissingSuggestionsNamesTheField(t *testing.T) {
	parser := NewResponseParser()
	raw := `{"atsScore":75,"strengths":["a"],"improvements":["b"],"missingKeywords":[]}`

	_, err := parser.Parse(raw)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ParseReasonMissingField, parseErr.Reason)
	assert.Equal(t, "suggestions", parseErr.Field)
	assert.Contains(t, parseErr.Error(), "suggestions")
}

func TestParse_NoValueLevelChecks(t *testing.T) {
	// Out-of-range score is a shape-complete reply; the parser accepts it and
	// leaves the constraint to result construction.
	parser := NewResponseParser()
	raw := `{"atsScore":150,"strengths":[],"improvements":["b"],"missingKeywords":[],"suggestions":["c"]}`

	_, err := parser.Parse(raw)

	assert.NoError(t, err)
}
