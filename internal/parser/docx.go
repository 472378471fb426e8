package parser

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/jdalgard/docxtree/internal/docmodel"
	"github.com/jdalgard/docxtree/internal/docx"
	"github.com/jdalgard/docxtree/internal/hierarchy"
)

// DOCXParser handles .docx files.
type DOCXParser struct {
	Log *slog.Logger
}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*docmodel.DocumentTree, error) {
	log := logOrDefault(p.Log)

	// The archive reader needs random access; uploads are already bounded by
	// the request size limit, so buffering in memory is fine.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)), log)
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	return &docmodel.DocumentTree{
		Title:    baseTitle(filename),
		Sections: hierarchy.Assemble(doc.Records, log),
		Tables:   doc.Tables,
	}, nil
}
