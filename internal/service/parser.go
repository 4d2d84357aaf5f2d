package service

import (
	"bytes"
	"io"

	"pdf-extract-service/internal/domain"
)

// pdfHeaderWindow is how far into a file the %PDF- marker may appear
const pdfHeaderWindow = 1024

// NewParser returns the DocumentParser for the named backend.
// Unknown names fall back to the MuPDF backend.
func NewParser(backend domain.PDFBackend, logger domain.Logger) domain.DocumentParser {
	switch backend {
	case domain.PDFBackendNative:
		return NewNativeParser()
	case domain.PDFBackendFitz:
		return NewFitzParser()
	default:
		logger.Warn("Unknown PDF backend; using fitz", "backend", backend)
		return NewFitzParser()
	}
}

// hasPDFHeader reports whether the %PDF- marker appears near the start of r
func hasPDFHeader(r io.ReaderAt, size int64) bool {
	n := int64(pdfHeaderWindow)
	if size < n {
		n = size
	}
	buf := make([]byte, n)
	read, err := r.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return false
	}
	return bytes.Contains(buf[:read], []byte("%PDF-"))
}
