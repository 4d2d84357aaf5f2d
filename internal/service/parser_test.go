package service

import (
	"bytes"
	"testing"

	"pdf-extract-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsers() []domain.DocumentParser {
	return []domain.DocumentParser{NewFitzParser(), NewNativeParser()}
}

func TestParsers_ReadPagesInOrder(t *testing.T) {
	data := buildPDF("Hello", "", "World")

	for _, parser := range parsers() {
		t.Run(string(parser.Name()), func(t *testing.T) {
			doc, err := parser.Parse(bytes.NewReader(data), int64(len(data)))
			require.NoError(t, err)
			defer doc.Close()

			require.Equal(t, 3, doc.NumPage())

			var pages []string
			for i := 0; i < doc.NumPage(); i++ {
				text, err := doc.PageText(i)
				require.NoError(t, err)
				pages = append(pages, text)
			}
			assert.Equal(t, []string{"Hello", "", "World"}, pages)

			_, err = doc.PageText(3)
			assert.ErrorIs(t, err, domain.ErrPageOutOfRange)
		})
	}
}

func TestParsers_RejectNonPDF(t *testing.T) {
	data := []byte("PK\x03\x04 definitely a zip archive")

	for _, parser := range parsers() {
		t.Run(string(parser.Name()), func(t *testing.T) {
			doc, err := parser.Parse(bytes.NewReader(data), int64(len(data)))
			assert.Nil(t, doc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to open PDF")
		})
	}
}

func TestParsers_ExtractJoinsPagesWithSingleNewline(t *testing.T) {
	path := writeTempFile(t, "sample.pdf", buildPDF("Hello", "", "World"))

	for _, parser := range parsers() {
		t.Run(string(parser.Name()), func(t *testing.T) {
			result, err := NewExtractionService(parser, NewMockLogger()).Extract(path)

			require.NoError(t, err)
			assert.Equal(t, path, result.Filename)
			assert.Equal(t, "Hello\nWorld\n", result.Text)
		})
	}
}

func TestParsers_ExtractZeroPages(t *testing.T) {
	data := buildPDF()
	path := writeTempFile(t, "empty.pdf", data)

	for _, parser := range parsers() {
		t.Run(string(parser.Name()), func(t *testing.T) {
			doc, err := parser.Parse(bytes.NewReader(data), int64(len(data)))
			require.NoError(t, err)
			assert.Equal(t, 0, doc.NumPage())
			require.NoError(t, doc.Close())

			result, err := NewExtractionService(parser, NewMockLogger()).Extract(path)

			require.NoError(t, err)
			assert.Equal(t, "", result.Text)
		})
	}
}

func TestFitzParser_MissingHeader(t *testing.T) {
	data := []byte("not a pdf at all")

	_, err := NewFitzParser().Parse(bytes.NewReader(data), int64(len(data)))

	assert.ErrorIs(t, err, domain.ErrInvalidPDF)
}

func TestHasPDFHeader(t *testing.T) {
	padded := append(bytes.Repeat([]byte{' '}, 100), []byte("%PDF-1.7\n")...)
	late := append(bytes.Repeat([]byte{' '}, pdfHeaderWindow), []byte("%PDF-1.7\n")...)

	assert.True(t, hasPDFHeader(bytes.NewReader(buildPDF("x")), int64(len(buildPDF("x")))))
	assert.True(t, hasPDFHeader(bytes.NewReader(padded), int64(len(padded))))
	assert.False(t, hasPDFHeader(bytes.NewReader(late), int64(len(late))))
	assert.False(t, hasPDFHeader(bytes.NewReader(nil), 0))
}

func TestNewParser(t *testing.T) {
	logger := NewMockLogger()

	assert.Equal(t, domain.PDFBackendFitz, NewParser(domain.PDFBackendFitz, logger).Name())
	assert.Equal(t, domain.PDFBackendNative, NewParser(domain.PDFBackendNative, logger).Name())
	assert.Equal(t, domain.PDFBackendFitz, NewParser("pdfium", logger).Name())
}
