package docx

import "encoding/xml"

// XML types for word/document.xml. Only the parts the converter consumes are
// mapped; encoding/xml matches on local names, so the w: prefix is omitted.

type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    bodyXML  `xml:"body"`
}

type bodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
	Tables     []tableXML     `xml:"tbl"`
}

// paragraphXML represents <w:p>.
type paragraphXML struct {
	Properties    paraPropsXML       `xml:"pPr"`
	Runs          []runXML           `xml:"r"`
	Hyperlinks    []hyperlinkXML     `xml:"hyperlink"`
	Inserted      []revisionXML      `xml:"ins"`
	Deleted       []revisionXML      `xml:"del"`
	CommentStarts []commentMarkerXML `xml:"commentRangeStart"`
}

// paraPropsXML represents <w:pPr>.
type paraPropsXML struct {
	Style styleRefXML `xml:"pStyle"`
	NumPr numPrXML    `xml:"numPr"`
}

type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// numPrXML represents the list numbering reference <w:numPr>.
type numPrXML struct {
	ILvl  valXML `xml:"ilvl"`
	NumID valXML `xml:"numId"`
}

type valXML struct {
	Val string `xml:"val,attr"`
}

// runXML represents <w:r>.
type runXML struct {
	Text   []textXML  `xml:"t"`
	Tabs   []tabXML   `xml:"tab"`
	Breaks []breakXML `xml:"br"`
}

type textXML struct {
	Space string `xml:"space,attr"`
	Value string `xml:",chardata"`
}

type tabXML struct{}

type breakXML struct {
	Type string `xml:"type,attr"`
}

// hyperlinkXML represents <w:hyperlink>, which wraps its own runs.
type hyperlinkXML struct {
	Runs []runXML `xml:"r"`
}

// revisionXML represents tracked-change wrappers <w:ins> and <w:del>.
type revisionXML struct {
	ID     string `xml:"id,attr"`
	Author string `xml:"author,attr"`
}

// commentMarkerXML represents <w:commentRangeStart>.
type commentMarkerXML struct {
	ID string `xml:"id,attr"`
}

// tableXML represents <w:tbl>. Tables are extracted as flat grids.
type tableXML struct {
	Rows []tableRowXML `xml:"tr"`
}

type tableRowXML struct {
	Cells []tableCellXML `xml:"tc"`
}

type tableCellXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}
