package services

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"resume-analyzer/internal/models"
	"resume-analyzer/internal/utils"
)

// ExtractorService turns an uploaded document into normalized plain text.
type ExtractorService interface {
	Extract(document models.RawDocument) (*models.ExtractedText, error)
}

type pdfExtractorService struct {
	minTextLength int
	logger        *utils.Logger
}

func NewPDFExtractorService(minTextLength int, logger *utils.Logger) ExtractorService {
	return &pdfExtractorService{
		minTextLength: minTextLength,
		logger:        logger,
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func (s *pdfExtractorService) Extract(document models.RawDocument) (result *models.ExtractedText, err error) {
	// The pdf reader panics on some malformed cross-reference tables; a
	// corrupted upload must surface as an unreadable document, not a crash.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &ExtractionError{Reason: ReasonUnreadable, Details: fmt.Sprintf("%v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(document.Content), int64(len(document.Content)))
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) || strings.Contains(err.Error(), "encrypted") {
			return nil, &ExtractionError{Reason: ReasonEncrypted, Details: "cannot extract text from encrypted documents"}
		}
		return nil, &ExtractionError{Reason: ReasonUnreadable, Details: err.Error()}
	}

	pageCount := reader.NumPage()
	if pageCount == 0 {
		return nil, &ExtractionError{Reason: ReasonEmpty, Details: "the document has no pages"}
	}

	var textBuilder strings.Builder
	pages := make([]models.PageResult, 0, pageCount)

	for pageIndex := 1; pageIndex <= pageCount; pageIndex++ {
		text, pageErr := s.extractPage(reader, pageIndex)
		if pageErr != nil {
			// A single bad page never aborts the whole extraction.
			s.logger.Warn("skipping page",
				"file", document.Filename,
				"page", pageIndex,
				"error", pageErr.Error(),
			)
			pages = append(pages, models.PageResult{Number: pageIndex, Extracted: false})
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
		pages = append(pages, models.PageResult{Number: pageIndex, Extracted: true})
	}

	text := normalizeText(textBuilder.String())
	if len(text) < s.minTextLength {
		return nil, &ExtractionError{
			Reason:  ReasonInsufficientText,
			Details: "the document might be scanned or image-based",
		}
	}

	return &models.ExtractedText{
		Text:      text,
		PageCount: pageCount,
		Pages:     pages,
	}, nil
}

func (s *pdfExtractorService) extractPage(reader *pdf.Reader, pageIndex int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page extraction panicked: %v", r)
		}
	}()

	page := reader.Page(pageIndex)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d has no content", pageIndex)
	}

	return page.GetPlainText(nil)
}

// normalizeText strips null bytes, unifies line endings, collapses whitespace
// runs to single spaces and trims the result.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
