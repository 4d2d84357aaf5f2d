package domain

import (
	"io"
	"time"
)

// Extractor turns a PDF on disk into its plain text
type Extractor interface {
	Extract(path string) (*ExtractionResult, error)
}

// DocumentParser opens PDF bytes as a page-addressable document
type DocumentParser interface {
	Parse(r io.ReaderAt, size int64) (Document, error)
	Name() PDFBackend
}

// Document is a parsed PDF. Pages are 0-indexed.
type Document interface {
	NumPage() int
	PageText(index int) (string, error)
	Close() error
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetPDFBackend() PDFBackend
	GetMaxRequestSize() int64
	GetAllowedOrigins() []string
	GetShutdownTimeout() time.Duration
}
