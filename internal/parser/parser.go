// Package parser turns raw document bytes into a reconstructed DocumentTree.
// Every front end normalizes its input to an ordered paragraph record stream
// and hands it to the hierarchy assembler, so the section and list semantics
// are identical across formats.
package parser

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jdalgard/docxtree/internal/docmodel"
)

// Parser converts raw document bytes into a DocumentTree.
type Parser interface {
	Parse(r io.Reader, filename string) (*docmodel.DocumentTree, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".docx": true,
	".md":   true,
	".txt":  true,
	".csv":  true,
	".html": true,
	".htm":  true,
	".pdf":  true,
}

// ForFile returns the appropriate parser for a filename. The logger receives
// degradation warnings; nil falls back to slog.Default.
func ForFile(filename string, log *slog.Logger) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx":
		return &DOCXParser{Log: log}, nil
	case ".md", ".markdown":
		return &MarkdownParser{Log: log}, nil
	case ".txt":
		return &TextParser{Log: log}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{Log: log}, nil
	case ".pdf":
		return &PDFParser{Log: log, FallbackPdftotext: true}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

func logOrDefault(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.Default()
	}
	return log
}

// baseTitle derives the document title from the filename.
func baseTitle(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}
