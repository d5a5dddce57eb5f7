package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resume-analyzer/internal/models"
	"resume-analyzer/internal/utils"
)

// AnalyzerService runs the full analysis pipeline for one uploaded document:
// extract, classify, prompt, complete, parse, validate. Each run is a strict
// left-to-right transform chain over its own values; nothing is shared
// between concurrent runs and every external call is attempted exactly once.
type AnalyzerService interface {
	Analyze(ctx context.Context, document models.RawDocument, jobDescription string) (*models.AnalysisResult, error)
}

type analyzerService struct {
	extractor     ExtractorService
	classifier    ClassifierService
	promptBuilder *PromptBuilder
	parser        *ResponseParser
	llm           ChatCompleter
	llmTimeout    time.Duration
	logger        *utils.Logger
}

func NewAnalyzerService(
	extractor ExtractorService,
	classifier ClassifierService,
	llm ChatCompleter,
	llmTimeout time.Duration,
	logger *utils.Logger,
) AnalyzerService {
	return &analyzerService{
		extractor:     extractor,
		classifier:    classifier,
		promptBuilder: NewPromptBuilder(),
		parser:        NewResponseParser(),
		llm:           llm,
		llmTimeout:    llmTimeout,
		logger:        logger,
	}
}

// Analyze implements AnalyzerService. Every failure mode maps onto exactly
// one ErrorKind; anything uncategorized becomes unexpected with the original
// message as diagnostic detail, never a stack trace.
func (s *analyzerService) Analyze(ctx context.Context, document models.RawDocument, jobDescription string) (result *models.AnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &AnalysisError{
				Kind:    ErrKindUnexpected,
				Message: "unexpected error during analysis",
				Details: fmt.Sprintf("%v", r),
			}
		}
	}()

	s.logger.Info("starting analysis",
		"file", document.Filename,
		"size", len(document.Content),
		"has_job_description", jobDescription != "",
	)

	extracted, extractErr := s.extractor.Extract(document)
	if extractErr != nil {
		var exErr *ExtractionError
		if errors.As(extractErr, &exErr) {
			return nil, &AnalysisError{
				Kind:    ErrKindExtraction,
				Message: "could not extract text from the document",
				Details: exErr.Error(),
				Err:     exErr,
			}
		}
		return nil, s.unexpected(extractErr)
	}
	s.logger.Info("text extracted",
		"file", document.Filename,
		"pages", extracted.PageCount,
		"chars", len(extracted.Text),
	)

	verdict := s.classifier.Classify(extracted)
	if !verdict.IsResume {
		// Hard rejection: the model is never invoked for content that does
		// not look like a resume.
		return nil, &AnalysisError{
			Kind:    ErrKindNotAResume,
			Message: "uploaded file is not a resume",
			Details: fmt.Sprintf("resume-likeness score %d", verdict.Score),
		}
	}

	payload := s.promptBuilder.Build(extracted.Text, jobDescription)

	llmCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	reply, llmErr := s.llm.Complete(llmCtx, payload.System, payload.User)
	if llmErr != nil {
		return nil, &AnalysisError{
			Kind:    ErrKindLLMUnavailable,
			Message: "AI analysis is temporarily unavailable",
			Details: llmErr.Error(),
			Err:     llmErr,
		}
	}

	fields, parseErr := s.parser.Parse(reply)
	if parseErr != nil {
		var pErr *ParseError
		if errors.As(parseErr, &pErr) {
			return nil, &AnalysisError{
				Kind:    ErrKindMalformedReply,
				Message: "model reply was not in the expected format",
				Details: pErr.Error(),
				Err:     pErr,
			}
		}
		return nil, s.unexpected(parseErr)
	}

	result, validateErr := models.NewAnalysisResultFromFields(fields)
	if validateErr != nil {
		return nil, &AnalysisError{
			Kind:    ErrKindInvalidContent,
			Message: "model reply violated the result constraints",
			Details: validateErr.Error(),
			Err:     validateErr,
		}
	}

	s.logger.Info("analysis completed",
		"file", document.Filename,
		"ats_score", result.AtsScore,
	)
	return result, nil
}

func (s *analyzerService) unexpected(err error) *AnalysisError {
	return &AnalysisError{
		Kind:    ErrKindUnexpected,
		Message: "unexpected error during analysis",
		Details: err.Error(),
		Err:     err,
	}
}
