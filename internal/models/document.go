package models

// RawDocument is an uploaded resume as received from the client: the raw
// file bytes plus the declared filename. It is consumed by the extractor
// and never mutated.
type RawDocument struct {
	Content  []byte
	Filename string
}

// PageResult records the extraction outcome for a single page.
type PageResult struct {
	Number    int
	Extracted bool
}

// ExtractedText is the normalized text of a document together with the page
// count and per-page extraction outcomes.
type ExtractedText struct {
	Text      string
	PageCount int
	Pages     []PageResult
}

// ClassificationVerdict is the resume-likeness decision for a piece of
// extracted text. Score counts the matched evidence signals; IsResume is
// derived from it, never set independently.
type ClassificationVerdict struct {
	IsResume bool
	Score    int
}

// PromptPayload holds the rendered system instruction and user message for
// one model call.
type PromptPayload struct {
	System string
	User   string
}
