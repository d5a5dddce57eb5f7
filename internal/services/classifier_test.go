package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-analyzer/internal/models"
)

// filler is neutral padding: no resume keywords, no email, no 10-digit runs.
const filler = "the quick brown fox jumps over a lazy dog and keeps on running through the field. "

func padText(text string, minLength int) string {
	var b strings.Builder
	b.WriteString(text)
	for b.Len() < minLength {
		b.WriteString(filler)
	}
	return b.String()
}

func classify(t *testing.T, text string) models.ClassificationVerdict {
	t.Helper()
	classifier := NewResumeClassifierService(500, 3)
	return classifier.Classify(&models.ExtractedText{Text: text, PageCount: 1})
}

func TestClassify_ShortTextIsNeverAResume(t *testing.T) {
	// Keyword-rich but under the length gate.
	verdict := classify(t, "resume education experience skills projects john@example.com 9876543210")

	assert.False(t, verdict.IsResume)
	assert.Equal(t, 0, verdict.Score)
}

func TestClassify_ThreeSignalsPass(t *testing.T) {
	text := padText("Education at some university. Experience in several roles. Skills in many tools. ", 600)

	verdict := classify(t, text)

	assert.True(t, verdict.IsResume)
	assert.Equal(t, 3, verdict.Score)
}

func TestClassify_TwoSignalsFail(t *testing.T) {
	text := padText("Education at some university. Experience in several roles. ", 600)

	verdict := classify(t, text)

	assert.False(t, verdict.IsResume)
	assert.Equal(t, 2, verdict.Score)
}

func TestClassify_EmailAndPhoneCountAsSignals(t *testing.T) {
	text := padText("Summary of a career. Reach me at jane.doe@example.com or 9876543210. ", 600)

	verdict := classify(t, text)

	assert.True(t, verdict.IsResume)
	assert.Equal(t, 3, verdict.Score)
}

func TestClassify_RepeatedKeywordCountsOnce(t *testing.T) {
	text := padText(strings.Repeat("skills ", 50)+"contact: jane@example.com ", 600)

	verdict := classify(t, text)

	assert.False(t, verdict.IsResume)
	assert.Equal(t, 2, verdict.Score)
}

func TestClassify_CaseInsensitiveKeywords(t *testing.T) {
	text := padText("EDUCATION and EXPERIENCE and SKILLS sections. ", 600)

	verdict := classify(t, text)

	assert.True(t, verdict.IsResume)
	assert.Equal(t, 3, verdict.Score)
}
