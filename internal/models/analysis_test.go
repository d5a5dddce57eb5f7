package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsFrom(t *testing.T, raw string) map[string]json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &fields))
	return fields
}

func TestNewAnalysisResultFromFields_Valid(t *testing.T) {
	fields := fieldsFrom(t, `{"atsScore":75,"strengths":["a"],"improvements":["b"],"missingKeywords":[],"suggestions":["c"]}`)

	result, err := NewAnalysisResultFromFields(fields)

	require.NoError(t, err)
	assert.Equal(t, 75, result.AtsScore)
	assert.NotNil(t, result.MissingKeywords)
	assert.Empty(t, result.MissingKeywords)
}

func TestNewAnalysisResultFromFields_NullKeywordsBecomeEmptyList(t *testing.T) {
	fields := fieldsFrom(t, `{"atsScore":10,"strengths":["a"],"improvements":["b"],"missingKeywords":null,"suggestions":["c"]}`)

	result, err := NewAnalysisResultFromFields(fields)

	require.NoError(t, err)
	assert.Equal(t, []string{}, result.MissingKeywords)
}

func TestNewAnalysisResultFromFields_ScoreOutOfRange(t *testing.T) {
	fields := fieldsFrom(t, `{"atsScore":150,"strengths":["a"],"improvements":["b"],"missingKeywords":[],"suggestions":["c"]}`)

	_, err := NewAnalysisResultFromFields(fields)

	assert.Error(t, err)
}

func TestNewAnalysisResultFromFields_NegativeScore(t *testing.T) {
	fields := fieldsFrom(t, `{"atsScore":-1,"strengths":["a"],"improvements":["b"],"missingKeywords":[],"suggestions":["c"]}`)

	_, err := NewAnalysisResultFromFields(fields)

	assert.Error(t, err)
}

func TestNewAnalysisResultFromFields_EmptyRequiredList(t *testing.T) {
	fields := fieldsFrom(t, `{"atsScore":75,"strengths":[],"improvements":["b"],"missingKeywords":[],"suggestions":["c"]}`)

	_, err := NewAnalysisResultFromFields(fields)

	assert.Error(t, err)
}

func TestNewAnalysisResultFromFields_WrongFieldType(t *testing.T) {
	fields := fieldsFrom(t, `{"atsScore":"high","strengths":["a"],"improvements":["b"],"missingKeywords":[],"suggestions":["c"]}`)

	_, err := NewAnalysisResultFromFields(fields)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "atsScore")
}

func TestAnalysisResult_Validate(t *testing.T) {
	result := AnalysisResult{
		AtsScore:        100,
		Strengths:       []string{"a"},
		Improvements:    []string{"b"},
		MissingKeywords: []string{},
		Suggestions:     []string{"c"},
	}
	assert.NoError(t, result.Validate())

	result.AtsScore = 101
	assert.Error(t, result.Validate())

	result.AtsScore = 50
	result.Suggestions = nil
	assert.Error(t, result.Validate())
}
