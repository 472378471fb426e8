// Package docx reads OOXML word-processing documents and flattens them into
// ordered paragraph records for hierarchy reconstruction. It parses the
// document, style and numbering parts directly; rendered list markers are
// recomputed from the numbering definitions since the archive stores only
// per-paragraph numbering references.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jdalgard/docxtree/internal/docmodel"
)

// Document is the extracted content of one docx file: the ordered paragraph
// stream plus flat table grids.
type Document struct {
	Records []docmodel.ParagraphRecord
	Tables  []docmodel.Table
	Skipped int // paragraphs filtered out as revisions or comments
}

// Parse reads a docx archive. Failure to open the archive or locate the main
// document part is fatal; missing style or numbering parts degrade with a
// warning.
func Parse(r io.ReaderAt, size int64, log *slog.Logger) (*Document, error) {
	if log == nil {
		log = slog.Default()
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open docx archive: %w", err)
	}

	var doc documentXML
	if err := unmarshalPart(zr, "word/document.xml", &doc); err != nil {
		return nil, fmt.Errorf("parse word/document.xml: %w", err)
	}

	var styles stylesXML
	if err := unmarshalPart(zr, "word/styles.xml", &styles); err != nil {
		log.Warn("styles part unavailable, using raw style ids", "error", err)
	}

	var numbering *numberingXML
	var nx numberingXML
	if err := unmarshalPart(zr, "word/numbering.xml", &nx); err != nil {
		log.Warn("numbering part unavailable, markers will be empty", "error", err)
	} else {
		numbering = &nx
	}

	return extract(&doc, &styles, numbering, log), nil
}

func unmarshalPart(zr *zip.Reader, name string, v any) error {
	f, err := zr.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %s: %w", name, err)
	}
	return nil
}

// extract walks the body in source order and produces paragraph records.
// Revision- and comment-bearing paragraphs are filtered here, upstream of
// classification.
func extract(doc *documentXML, styles *stylesXML, numbering *numberingXML, log *slog.Logger) *Document {
	names := styleNames(styles)
	markers := newMarkerEngine(numbering, log)
	out := &Document{}

	for _, p := range doc.Body.Paragraphs {
		if isRevisionOrComment(p) {
			out.Skipped++
			continue
		}

		rec := docmodel.ParagraphRecord{
			StyleName: resolveStyle(p.Properties.Style.Val, names),
			Text:      strings.TrimSpace(paragraphText(p)),
		}

		if numID := p.Properties.NumPr.NumID.Val; numID != "" {
			ilvl := 0
			if v := p.Properties.NumPr.ILvl.Val; v != "" {
				if n, err := strconv.Atoi(v); err == nil && n >= 0 {
					ilvl = n
				} else {
					log.Warn("unparseable list level, defaulting to 0", "ilvl", v)
				}
			}
			rec.ListLevel = ilvl + 1
			rec.Marker = markers.marker(numID, ilvl)
		}

		out.Records = append(out.Records, rec)
	}

	for _, tbl := range doc.Body.Tables {
		out.Tables = append(out.Tables, extractTable(tbl))
	}

	if out.Skipped > 0 {
		log.Info("filtered revision/comment paragraphs", "count", out.Skipped)
	}
	return out
}

func isRevisionOrComment(p paragraphXML) bool {
	return len(p.Inserted) > 0 || len(p.Deleted) > 0 || len(p.CommentStarts) > 0
}

// resolveStyle maps a style reference to its display name, falling back to
// the raw id ("Heading1" still classifies as a heading).
func resolveStyle(styleID string, names map[string]string) string {
	if styleID == "" {
		return ""
	}
	if name, ok := names[styleID]; ok {
		return name
	}
	return styleID
}

// paragraphText concatenates the text of all runs, including runs nested in
// hyperlinks. Tabs become single spaces, explicit breaks become newlines.
func paragraphText(p paragraphXML) string {
	var b strings.Builder
	for _, r := range p.Runs {
		writeRunText(&b, r)
	}
	for _, h := range p.Hyperlinks {
		for _, r := range h.Runs {
			writeRunText(&b, r)
		}
	}
	return b.String()
}

func writeRunText(b *strings.Builder, r runXML) {
	for _, t := range r.Text {
		b.WriteString(t.Value)
	}
	for range r.Tabs {
		b.WriteString(" ")
	}
	for range r.Breaks {
		b.WriteString("\n")
	}
}

// extractTable flattens a table to its cell text grid. Cell paragraphs are
// joined with newlines; no hierarchy is reconstructed inside tables.
func extractTable(tbl tableXML) docmodel.Table {
	var t docmodel.Table
	for _, row := range tbl.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			parts := make([]string, 0, len(cell.Paragraphs))
			for _, p := range cell.Paragraphs {
				parts = append(parts, strings.TrimSpace(paragraphText(p)))
			}
			cells = append(cells, strings.Join(parts, "\n"))
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}
