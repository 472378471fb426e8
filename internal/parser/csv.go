package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jdalgard/docxtree/internal/docmodel"
)

// CSVParser handles CSV files. The rows map directly onto a single table;
// there is no paragraph stream to reconstruct.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*docmodel.DocumentTree, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	tree := &docmodel.DocumentTree{Title: baseTitle(filename)}
	if len(rows) > 0 {
		tree.Tables = []docmodel.Table{{Rows: rows}}
	}
	return tree, nil
}
