package parser

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jdalgard/docxtree/internal/docmodel"
	"github.com/jdalgard/docxtree/internal/hierarchy"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files. Heading tags become section headers and
// ol/ul nesting becomes list levels.
type HTMLParser struct {
	Log *slog.Logger
}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*docmodel.DocumentTree, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := baseTitle(filename)
	if t := findTitle(doc); t != "" {
		title = t
	}

	var records []docmodel.ParagraphRecord
	var tables []docmodel.Table

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				records = append(records, docmodel.ParagraphRecord{
					StyleName: fmt.Sprintf("Heading %d", level),
					Text:      textContent(n),
				})
				return
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "ol", "ul":
				records = collectHTMLList(records, n, 1)
				return
			case "table":
				if tbl := extractHTMLTable(n); len(tbl.Rows) > 0 {
					tables = append(tables, tbl)
				}
				return
			case "p", "blockquote":
				if t := textContent(n); t != "" {
					records = append(records, docmodel.ParagraphRecord{Text: t})
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	// Find <body> or use whole document.
	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	return &docmodel.DocumentTree{
		Title:    title,
		Sections: hierarchy.Assemble(records, logOrDefault(p.Log)),
		Tables:   tables,
	}, nil
}

// collectHTMLList flattens a list element into level-tagged records. Ordered
// items get synthesized decimal markers, bullet items a dash.
func collectHTMLList(records []docmodel.ParagraphRecord, list *html.Node, level int) []docmodel.ParagraphRecord {
	ordinal := 1
	for li := list.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.Data != "li" {
			continue
		}

		marker := "-"
		if list.Data == "ol" {
			marker = fmt.Sprintf("%d.", ordinal)
			ordinal++
		}
		records = append(records, docmodel.ParagraphRecord{
			Text:      itemText(li),
			ListLevel: level,
			Marker:    marker,
		})

		for c := li.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "ol" || c.Data == "ul") {
				records = collectHTMLList(records, c, level+1)
			}
		}
	}
	return records
}

// itemText is the text of a list item excluding its nested sublists.
func itemText(li *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && (n.Data == "ol" || n.Data == "ul") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		extract(c)
	}
	return strings.TrimSpace(buf.String())
}

func extractHTMLTable(table *html.Node) docmodel.Table {
	var tbl docmodel.Table
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var row []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					row = append(row, textContent(c))
				}
			}
			if len(row) > 0 {
				tbl.Rows = append(tbl.Rows, row)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(table)
	return tbl
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
