package domain

// ExtractionRequest is the body of a text extraction call
type ExtractionRequest struct {
	Path string `json:"path" validate:"required"`
}

// ExtractionResult is the outcome of a successful extraction.
// Text holds every non-empty page followed by a single newline, in page order.
type ExtractionResult struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// ErrorResponse is the body written for any failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// PDFBackend names a PDF parsing implementation
type PDFBackend string

const (
	PDFBackendFitz   PDFBackend = "fitz"
	PDFBackendNative PDFBackend = "native"
)
