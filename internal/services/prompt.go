package services

import (
	"fmt"

	"resume-analyzer/internal/models"
)

const analysisSystemInstruction = "You are an expert resume analyzer and ATS optimization specialist. " +
	"Return ONLY valid JSON. No markdown. No explanations."

// PromptBuilder renders the system instruction and user message for a resume
// analysis request. Rendering is deterministic: the same inputs always
// produce the same payload.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Build creates the analysis prompt. When a job description is present the
// prompt biases the missing keywords toward it and asks for an alignment
// critique; when absent those clauses are omitted entirely.
func (pb *PromptBuilder) Build(resumeText, jobDescription string) models.PromptPayload {
	var jobSection, keywordNote, alignmentNote string
	if jobDescription != "" {
		jobSection = fmt.Sprintf("\nJob Description:\n%s\n", jobDescription)
		keywordNote = " from the job description"
		alignmentNote = "\n- Alignment with the provided job description"
	}

	user := fmt.Sprintf(`Analyze the following resume and provide detailed feedback in JSON format.

Resume:
%s
%s
Provide your analysis in the following JSON structure (IMPORTANT: Return ONLY valid JSON, no markdown, no explanations):

{
    "atsScore": <number between 0-100>,
    "strengths": [<array of 3-5 key strengths as strings>],
    "improvements": [<array of 3-5 areas to improve as strings>],
    "missingKeywords": [<array of 3-5 important missing keywords as strings%s>],
    "suggestions": [<array of 3-5 actionable suggestions as strings>]
}

Focus on:
- ATS compatibility and formatting
- Keyword optimization
- Content quality and impact
- Achievement quantification
- Professional presentation%s

CRITICAL: Return ONLY the JSON object. No markdown code blocks, no explanations.`,
		resumeText, jobSection, keywordNote, alignmentNote)

	return models.PromptPayload{
		System: analysisSystemInstruction,
		User:   user,
	}
}
