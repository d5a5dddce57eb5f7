package services

import "fmt"

// ErrorKind partitions every pipeline failure into one of a fixed set of
// categories. Handlers map kinds onto HTTP statuses; the pipeline itself only
// guarantees that each failure path is reachable and distinguishable by kind.
type ErrorKind string

const (
	ErrKindExtraction     ErrorKind = "extraction"
	ErrKindNotAResume     ErrorKind = "not_a_resume"
	ErrKindLLMUnavailable ErrorKind = "llm_unavailable"
	ErrKindMalformedReply ErrorKind = "malformed_reply"
	ErrKindInvalidContent ErrorKind = "invalid_content"
	ErrKindUnexpected     ErrorKind = "unexpected"
)

// AnalysisError is the single error type that crosses the analyzer boundary.
// Message is safe to show to a user; Details carries diagnostics.
type AnalysisError struct {
	Kind    ErrorKind
	Message string
	Details string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// Retryable reports whether the failure is server-side and safe to retry, as
// opposed to a problem with the uploaded content.
func (e *AnalysisError) Retryable() bool {
	return e.Kind == ErrKindLLMUnavailable || e.Kind == ErrKindUnexpected
}

// ExtractionReason narrows an extraction failure.
type ExtractionReason string

const (
	ReasonEncrypted        ExtractionReason = "encrypted"
	ReasonEmpty            ExtractionReason = "empty"
	ReasonInsufficientText ExtractionReason = "insufficient_text"
	ReasonUnreadable       ExtractionReason = "unreadable"
)

// ExtractionError reports that a document could not yield usable text.
type ExtractionError struct {
	Reason  ExtractionReason
	Details string
}

func (e *ExtractionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Details)
	}
	return string(e.Reason)
}

// ParseReason narrows a reply-parsing failure.
type ParseReason string

const (
	ParseReasonInvalidJSON  ParseReason = "invalid_json"
	ParseReasonMissingField ParseReason = "missing_field"
)

// ParseError reports that a model reply was not parseable JSON or omitted a
// required field. Field is set only for missing_field.
type ParseError struct {
	Reason ParseReason
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Reason == ParseReasonMissingField {
		return fmt.Sprintf("missing required field: %s", e.Field)
	}
	return fmt.Sprintf("invalid JSON in model reply: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
