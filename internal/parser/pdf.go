package parser

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/jdalgard/docxtree/internal/docmodel"
	"github.com/jdalgard/docxtree/internal/hierarchy"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser handles PDF files. It tries the Go library first, then falls
// back to pdftotext if available. Each page becomes a section and the page
// text runs through the same line heuristics as plain text.
type PDFParser struct {
	Log               *slog.Logger
	FallbackPdftotext bool
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*docmodel.DocumentTree, error) {
	log := logOrDefault(p.Log)

	// The pdf library requires a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "docxtree-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	text, err := extractPDFText(tmpPath)
	if err != nil && p.FallbackPdftotext {
		log.Warn("pdf library extraction failed, trying pdftotext", "error", err)
		text, err = extractPdftotext(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	var records []docmodel.ParagraphRecord
	for i, page := range strings.Split(text, "\f") {
		page = strings.TrimSpace(page)
		if page == "" {
			continue
		}
		records = append(records, docmodel.ParagraphRecord{
			StyleName: "Heading 1",
			Text:      fmt.Sprintf("Page %d", i+1),
		})
		pageRecords, err := textRecords(strings.NewReader(page))
		if err != nil {
			return nil, err
		}
		records = append(records, pageRecords...)
	}

	return &docmodel.DocumentTree{
		Title:    baseTitle(filename),
		Sections: hierarchy.Assemble(records, log),
	}, nil
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if i > 1 {
			buf.WriteString("\f") // Form feed as page separator.
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
