package models

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// AnalysisResult is the validated outcome of a resume analysis. Strengths,
// improvements and suggestions must carry at least one entry each;
// missingKeywords may be empty. The score is bounded to [0,100]. A result
// that violates these constraints is never returned to a caller.
type AnalysisResult struct {
	AtsScore        int      `json:"atsScore" validate:"min=0,max=100"`
	Strengths       []string `json:"strengths" validate:"required,min=1"`
	Improvements    []string `json:"improvements" validate:"required,min=1"`
	MissingKeywords []string `json:"missingKeywords"`
	Suggestions     []string `json:"suggestions" validate:"required,min=1"`
}

// Validate enforces the value constraints on an already-populated result.
func (r *AnalysisResult) Validate() error {
	return validate.Struct(r)
}

// NewAnalysisResultFromFields builds an AnalysisResult from parsed reply
// fields, enforcing the score range and the non-empty list constraints.
// Field presence has already been checked by the parser; anything that goes
// wrong here is a value-level violation, not a shape problem.
func NewAnalysisResultFromFields(fields map[string]json.RawMessage) (*AnalysisResult, error) {
	var result AnalysisResult

	decode := func(name string, target any) error {
		if err := json.Unmarshal(fields[name], target); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		return nil
	}

	if err := decode("atsScore", &result.AtsScore); err != nil {
		return nil, err
	}
	if err := decode("strengths", &result.Strengths); err != nil {
		return nil, err
	}
	if err := decode("improvements", &result.Improvements); err != nil {
		return nil, err
	}
	if err := decode("missingKeywords", &result.MissingKeywords); err != nil {
		return nil, err
	}
	if err := decode("suggestions", &result.Suggestions); err != nil {
		return nil, err
	}

	// JSON null is a legal empty keyword list; keep the output shape stable.
	if result.MissingKeywords == nil {
		result.MissingKeywords = []string{}
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}

	return &result, nil
}
