package parser

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jdalgard/docxtree/internal/docmodel"
	"github.com/jdalgard/docxtree/internal/hierarchy"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Headings become
// section headers, list nesting becomes list levels, and everything else is
// retained as plain paragraphs.
type MarkdownParser struct {
	Log *slog.Logger
}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*docmodel.DocumentTree, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var records []docmodel.ParagraphRecord
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			records = append(records, docmodel.ParagraphRecord{
				StyleName: fmt.Sprintf("Heading %d", node.Level),
				Text:      string(node.Text(src)),
			})
		case *ast.List:
			records = collectList(records, node, src, 1)
		default:
			if t := extractText(n, src); t != "" {
				records = append(records, docmodel.ParagraphRecord{Text: t})
			}
		}
	}

	return &docmodel.DocumentTree{
		Title:    baseTitle(filename),
		Sections: hierarchy.Assemble(records, logOrDefault(p.Log)),
	}, nil
}

// collectList flattens a (possibly nested) markdown list into level-tagged
// records. Ordered markers are re-synthesized from the list start; bullet
// markers carry the literal marker byte.
func collectList(records []docmodel.ParagraphRecord, list *ast.List, src []byte, level int) []docmodel.ParagraphRecord {
	ordinal := list.Start
	if ordinal == 0 {
		ordinal = 1
	}
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		var body strings.Builder
		var nested []*ast.List
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			if nl, ok := c.(*ast.List); ok {
				nested = append(nested, nl)
				continue
			}
			if t := extractText(c, src); t != "" {
				if body.Len() > 0 {
					body.WriteString(" ")
				}
				body.WriteString(t)
			}
		}

		marker := string(list.Marker)
		if list.IsOrdered() {
			marker = fmt.Sprintf("%d%c", ordinal, list.Marker)
			ordinal++
		}
		records = append(records, docmodel.ParagraphRecord{
			Text:      body.String(),
			ListLevel: level,
			Marker:    marker,
		})
		for _, nl := range nested {
			records = collectList(records, nl, src, level+1)
		}
	}
	return records
}

// extractText gets the text content of a goldmark AST node. Blocks that own
// source lines are read from those lines; inline children would cover the
// same byte ranges again.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
