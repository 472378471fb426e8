package render

import (
	"strings"

	"github.com/jdalgard/docxtree/internal/docmodel"
)

// Markdown renders the document tree as Markdown. Markers are emitted
// verbatim; items without a marker fall back to a dash bullet.
func Markdown(tree *docmodel.DocumentTree) []byte {
	var b strings.Builder

	for i, sec := range tree.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		if sec.Header != "" {
			level := sec.Level
			if level < 1 {
				level = 1
			}
			if level > 6 {
				level = 6
			}
			b.WriteString(strings.Repeat("#", level))
			b.WriteString(" ")
			b.WriteString(sec.Header)
			b.WriteString("\n\n")
		}
		for _, p := range sec.Paragraphs {
			b.WriteString(p)
			b.WriteString("\n\n")
		}
		for _, item := range sec.Items {
			writeMarkdownItem(&b, item)
		}
	}

	for _, tbl := range tree.Tables {
		b.WriteString("\n")
		writeMarkdownTable(&b, tbl)
	}

	return []byte(b.String())
}

func writeMarkdownItem(b *strings.Builder, node *docmodel.ListItemNode) {
	marker := node.Marker
	if marker == "" {
		marker = "-"
	}
	b.WriteString(strings.Repeat("    ", node.Level))
	b.WriteString(marker)
	b.WriteString(" ")
	b.WriteString(node.Text)
	b.WriteString("\n")
	for _, child := range node.Children {
		writeMarkdownItem(b, child)
	}
}

func writeMarkdownTable(b *strings.Builder, tbl docmodel.Table) {
	for i, row := range tbl.Rows {
		b.WriteString("| ")
		b.WriteString(strings.Join(row, " | "))
		b.WriteString(" |\n")
		if i == 0 {
			b.WriteString("|")
			for range row {
				b.WriteString(" --- |")
			}
			b.WriteString("\n")
		}
	}
}
