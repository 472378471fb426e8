package parser

import (
	"bufio"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/jdalgard/docxtree/internal/docmodel"
	"github.com/jdalgard/docxtree/internal/hierarchy"
)

// TextParser handles plain text files. Without style information the only
// structure it can recover is enumerated list lines; everything else is
// retained as plain paragraphs.
type TextParser struct {
	Log *slog.Logger
}

// textItemRe matches an enumerated list line: optional indentation, a single
// number or letter with a dot or parenthesis, then the item text.
var textItemRe = regexp.MustCompile(`^([\t ]*)((?:\d+|[a-zA-Z])[).])\s+(\S.*)$`)

func (p *TextParser) Parse(r io.Reader, filename string) (*docmodel.DocumentTree, error) {
	records, err := textRecords(r)
	if err != nil {
		return nil, err
	}

	return &docmodel.DocumentTree{
		Title:    baseTitle(filename),
		Sections: hierarchy.Assemble(records, logOrDefault(p.Log)),
	}, nil
}

// textRecords scans lines into paragraph records. Enumerated lines become
// list items with the indentation depth as level; other lines accumulate
// into blank-line-separated paragraphs.
func textRecords(r io.Reader) ([]docmodel.ParagraphRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []docmodel.ParagraphRecord
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			records = append(records, docmodel.ParagraphRecord{Text: current.String()})
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if m := textItemRe.FindStringSubmatch(line); m != nil {
			flush()
			records = append(records, docmodel.ParagraphRecord{
				Text:      m[3],
				ListLevel: indentLevel(m[1]) + 1,
				Marker:    m[2],
			})
			continue
		}

		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// indentLevel counts nesting depth from leading whitespace: a tab or four
// spaces per level.
func indentLevel(indent string) int {
	width := 0
	for _, r := range indent {
		if r == '\t' {
			width += 4
		} else {
			width++
		}
	}
	return width / 4
}
