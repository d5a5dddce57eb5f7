package services

import (
	"regexp"
	"strings"

	"resume-analyzer/internal/models"
)

// resumeKeywords are the section and document markers a resume is expected to
// carry. Each distinct keyword counts once regardless of how often it repeats.
var resumeKeywords = []string{
	"resume", "curriculum vitae", "education", "experience",
	"skills", "projects", "internship", "certification",
	"objective", "summary",
}

var (
	emailPattern = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w{2,4}\b`)
	phonePattern = regexp.MustCompile(`\b\d{10}\b`)
)

// ClassifierService decides whether extracted text plausibly is a resume.
// It is a coarse gate against obviously unrelated uploads, not a quality
// classifier, and it keeps a non-resume from ever reaching the model.
type ClassifierService interface {
	Classify(text *models.ExtractedText) models.ClassificationVerdict
}

type resumeClassifierService struct {
	minLength int
	minScore  int
}

func NewResumeClassifierService(minLength, minScore int) ClassifierService {
	return &resumeClassifierService{
		minLength: minLength,
		minScore:  minScore,
	}
}

// Classify implements ClassifierService.
func (s *resumeClassifierService) Classify(text *models.ExtractedText) models.ClassificationVerdict {
	// Too short to be a credible resume regardless of keyword hits.
	if len(text.Text) < s.minLength {
		return models.ClassificationVerdict{IsResume: false, Score: 0}
	}

	lower := strings.ToLower(text.Text)

	score := 0
	for _, keyword := range resumeKeywords {
		if strings.Contains(lower, keyword) {
			score++
		}
	}
	if emailPattern.MatchString(text.Text) {
		score++
	}
	if phonePattern.MatchString(text.Text) {
		score++
	}

	return models.ClassificationVerdict{
		IsResume: score >= s.minScore,
		Score:    score,
	}
}
