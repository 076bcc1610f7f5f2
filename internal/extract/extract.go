// Package extract turns uploaded documents into plain text. Extractors are
// registered per declared format; adding a format means registering a new
// extractor, not growing a switch on filename suffixes.
package extract

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat: no extractor is registered for the declared format.
	ErrUnsupportedFormat = errors.New("unsupported file type")
	// ErrEmptyDocument: extraction succeeded but produced no text.
	ErrEmptyDocument = errors.New("could not extract text from document")
)

// Extractor produces plain text from one document format.
type Extractor interface {
	Extract(contents []byte) (string, error)
}

// Registry maps declared formats (lowercased extensions, without the dot) to
// their extractor.
type Registry struct {
	byFormat map[string]Extractor
}

// NewRegistry returns a registry with the built-in formats registered:
// pdf, docx, txt and md.
func NewRegistry() *Registry {
	r := &Registry{byFormat: make(map[string]Extractor)}
	r.Register("pdf", pdfExtractor{})
	r.Register("docx", docxExtractor{})
	r.Register("txt", plainExtractor{})
	r.Register("md", plainExtractor{})
	return r
}

func (r *Registry) Register(format string, e Extractor) {
	r.byFormat[strings.ToLower(format)] = e
}

// ExtractFile picks the extractor by the filename's extension and runs it.
func (r *Registry) ExtractFile(filename string, contents []byte) (string, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	return r.Extract(format, contents)
}

// Extract runs the extractor registered for the declared format.
func (r *Registry) Extract(format string, contents []byte) (string, error) {
	extractor, ok := r.byFormat[strings.ToLower(format)]
	if !ok {
		return "", ErrUnsupportedFormat
	}
	text, err := extractor.Extract(contents)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}
