package service

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"pdf-extract-service/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// FitzParser parses PDFs with MuPDF through go-fitz
type FitzParser struct{}

// NewFitzParser creates a new MuPDF-backed parser
func NewFitzParser() *FitzParser {
	return &FitzParser{}
}

// Name returns the backend identifier
func (p *FitzParser) Name() domain.PDFBackend {
	return domain.PDFBackendFitz
}

// Parse opens the PDF held by r.
// MuPDF also reads EPUB, XPS and images, so the PDF header is checked first.
func (p *FitzParser) Parse(r io.ReaderAt, size int64) (domain.Document, error) {
	if !hasPDFHeader(r, size) {
		return nil, fmt.Errorf("failed to open PDF: %w: missing %%PDF- header", domain.ErrInvalidPDF)
	}

	doc, err := fitz.NewFromReader(io.NewSectionReader(r, 0, size))
	if err != nil {
		if errors.Is(err, fitz.ErrNeedsPassword) {
			return nil, fmt.Errorf("failed to open PDF: %w", domain.ErrEncryptedPDF)
		}
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	return &fitzDocument{doc: doc}, nil
}

type fitzDocument struct {
	doc *fitz.Document
}

func (d *fitzDocument) NumPage() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) PageText(index int) (string, error) {
	if index < 0 || index >= d.doc.NumPage() {
		return "", domain.ErrPageOutOfRange
	}
	text, err := d.doc.Text(index)
	if err != nil {
		return "", err
	}
	// MuPDF terminates every text block with blank lines; drop them so a
	// page carries only its own content.
	return strings.TrimRight(text, "\n"), nil
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
