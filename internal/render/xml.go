// Package render serializes a reconstructed document tree. Serialization is
// a pure tree-walk: section and item nesting in the output mirrors the tree
// exactly.
package render

import (
	"encoding/xml"
	"fmt"

	"github.com/jdalgard/docxtree/internal/docmodel"
)

// DefaultIndent matches the two-space pretty-printing of the XML output.
const DefaultIndent = "  "

type xmlDocument struct {
	XMLName  xml.Name    `xml:"Document"`
	Sections []xmlHeader `xml:"Header"`
	Tables   []xmlTable  `xml:"Table"`
}

// xmlHeader carries its level as an attribute and the header text as
// character content, with the section's list items nested inside.
type xmlHeader struct {
	Level      int            `xml:"level,attr"`
	Text       string         `xml:",chardata"`
	Paragraphs []xmlParagraph `xml:"Paragraph"`
	Items      []xmlListItem  `xml:"ListItem"`
}

type xmlParagraph struct {
	Text string `xml:",chardata"`
}

// xmlListItem nests child items inside their parent element, mirroring the
// tree's ownership edges.
type xmlListItem struct {
	Level    int           `xml:"level,attr"`
	Marker   string        `xml:"marker,attr"`
	Text     string        `xml:",chardata"`
	Children []xmlListItem `xml:"ListItem"`
}

type xmlTable struct {
	Rows []xmlRow `xml:"Row"`
}

type xmlRow struct {
	Cells []xmlCell `xml:"Cell"`
}

type xmlCell struct {
	Text string `xml:",chardata"`
}

// XML renders the document tree as pretty-printed XML with the given indent.
func XML(tree *docmodel.DocumentTree, indent string) ([]byte, error) {
	doc := xmlDocument{}
	for _, sec := range tree.Sections {
		h := xmlHeader{
			Level: sec.Level,
			Text:  sec.Header,
		}
		for _, p := range sec.Paragraphs {
			h.Paragraphs = append(h.Paragraphs, xmlParagraph{Text: p})
		}
		for _, item := range sec.Items {
			h.Items = append(h.Items, toXMLItem(item))
		}
		doc.Sections = append(doc.Sections, h)
	}
	for _, tbl := range tree.Tables {
		x := xmlTable{}
		for _, row := range tbl.Rows {
			r := xmlRow{}
			for _, cell := range row {
				r.Cells = append(r.Cells, xmlCell{Text: cell})
			}
			x.Rows = append(x.Rows, r)
		}
		doc.Tables = append(doc.Tables, x)
	}

	out, err := xml.MarshalIndent(doc, "", indent)
	if err != nil {
		return nil, fmt.Errorf("marshal document tree: %w", err)
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

func toXMLItem(node *docmodel.ListItemNode) xmlListItem {
	item := xmlListItem{
		Level:  node.Level,
		Marker: node.Marker,
		Text:   node.Text,
	}
	for _, child := range node.Children {
		item.Children = append(item.Children, toXMLItem(child))
	}
	return item
}
