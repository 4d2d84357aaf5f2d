package service

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"strings"
	"time"

	"pdf-extract-service/internal/domain"
	apperrors "pdf-extract-service/pkg/errors"
)

// ExtractionService reads a PDF from the local file system and returns its text
type ExtractionService struct {
	parser domain.DocumentParser
	logger domain.Logger
}

var _ domain.Extractor = (*ExtractionService)(nil)

// NewExtractionService creates a new extraction service instance
func NewExtractionService(parser domain.DocumentParser, logger domain.Logger) *ExtractionService {
	return &ExtractionService{
		parser: parser,
		logger: logger,
	}
}

// Extract opens the file at path, walks its pages in order and joins the text
// of every non-empty page, each followed by a newline.
//
// A missing file yields a not_found AppError; every other failure (unreadable
// file, malformed or encrypted PDF, page extraction fault, parser panic)
// yields an internal AppError whose message describes the fault.
func (s *ExtractionService) Extract(path string) (result *domain.ExtractionResult, err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = apperrors.NewInternalError(fmt.Sprint(r), fmt.Errorf("pdf parser panic: %v", r))
			s.logger.Error("PDF parser panicked", err, "path", path, "backend", s.parser.Name())
		}
	}()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("PDF not found", "path", path)
			return nil, apperrors.NewNotFoundError(apperrors.MessageFileNotFound, domain.ErrFileNotFound)
		}
		s.logger.Warn("Failed to open PDF", "path", path, "error", err)
		return nil, apperrors.NewInternalError(err.Error(), err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, apperrors.NewInternalError(err.Error(), err)
	}
	if info.IsDir() {
		err = fmt.Errorf("%s: is a directory", path)
		return nil, apperrors.NewInternalError(err.Error(), err)
	}

	doc, err := s.parser.Parse(file, info.Size())
	if err != nil {
		s.logger.Warn("Failed to parse PDF", "path", path, "backend", s.parser.Name(), "error", err)
		return nil, apperrors.NewInternalError(err.Error(), err)
	}
	defer doc.Close()

	var text strings.Builder
	pages := 0
	for pageText, pageErr := range Pages(doc) {
		if pageErr != nil {
			s.logger.Warn("Failed to extract text from page", "path", path, "error", pageErr)
			return nil, apperrors.NewInternalError(pageErr.Error(), pageErr)
		}
		pages++
		if pageText == "" {
			continue
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}

	s.logger.Info("PDF text extracted",
		"path", path,
		"backend", s.parser.Name(),
		"pages", pages,
		"chars", text.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &domain.ExtractionResult{
		Filename: path,
		Text:     text.String(),
	}, nil
}

// Pages yields the text of each page of doc in document order.
// Iteration stops after the first page that fails, yielding a *domain.PageError.
func Pages(doc domain.Document) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for i := 0; i < doc.NumPage(); i++ {
			text, err := doc.PageText(i)
			if err != nil {
				yield("", &domain.PageError{Page: i + 1, Err: err})
				return
			}
			if !yield(text, nil) {
				return
			}
		}
	}
}
