package docx

import "encoding/xml"

// XML types for word/styles.xml. The converter only needs the styleId → name
// mapping so that style references like "Heading1" resolve to the document's
// human style names ("heading 1").

type stylesXML struct {
	XMLName xml.Name   `xml:"styles"`
	Styles  []styleXML `xml:"style"`
}

type styleXML struct {
	Type    string `xml:"type,attr"`
	StyleID string `xml:"styleId,attr"`
	Name    valXML `xml:"name"`
}

// styleNames builds the styleId → display-name lookup.
func styleNames(s *stylesXML) map[string]string {
	names := make(map[string]string)
	if s == nil {
		return names
	}
	for _, st := range s.Styles {
		if st.StyleID != "" && st.Name.Val != "" {
			names[st.StyleID] = st.Name.Val
		}
	}
	return names
}
