package service

import (
	"errors"
	"fmt"
	"io"

	"pdf-extract-service/internal/domain"

	"github.com/ledongthuc/pdf"
)

// NativeParser parses PDFs with the pure-Go ledongthuc/pdf reader.
// Only the embedded text layer is read; image-only pages come back empty.
type NativeParser struct{}

// NewNativeParser creates a new pure-Go parser
func NewNativeParser() *NativeParser {
	return &NativeParser{}
}

// Name returns the backend identifier
func (p *NativeParser) Name() domain.PDFBackend {
	return domain.PDFBackendNative
}

// Parse opens the PDF held by r
func (p *NativeParser) Parse(r io.ReaderAt, size int64) (domain.Document, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, fmt.Errorf("failed to open PDF: %w", domain.ErrEncryptedPDF)
		}
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	return &nativeDocument{reader: reader}, nil
}

type nativeDocument struct {
	reader *pdf.Reader
}

func (d *nativeDocument) NumPage() int {
	return d.reader.NumPage()
}

func (d *nativeDocument) PageText(index int) (string, error) {
	if index < 0 || index >= d.reader.NumPage() {
		return "", domain.ErrPageOutOfRange
	}

	page := d.reader.Page(index + 1)
	if page.V.IsNull() {
		return "", nil
	}

	// Font resource names are page-local, so fonts are resolved per page.
	return page.GetPlainText(nil)
}

func (d *nativeDocument) Close() error {
	return nil
}
