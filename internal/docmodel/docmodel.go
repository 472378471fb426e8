package docmodel

// ParagraphRecord is one paragraph descriptor as extracted by a document
// access layer, in source order. Records are immutable once produced.
type ParagraphRecord struct {
	StyleName string // Resolved style name, e.g. "Heading 1" or "List Paragraph"
	Text      string // Trimmed paragraph text
	ListLevel int    // 1-based list nesting level as sourced; 0 = not a list paragraph
	Marker    string // Rendered numbering marker, e.g. "1." or "a)" (empty if none)
}

// IsList reports whether the source paragraph carried explicit list numbering.
func (r ParagraphRecord) IsList() bool {
	return r.ListLevel > 0
}

// ListItemNode is a reconstructed list item. Children are exclusively owned
// by their parent: a node never appears under two parents.
type ListItemNode struct {
	Marker   string          // Enumerator string preserved verbatim
	Text     string          // Item text with the leading enumerator token stripped
	Level    int             // 0-based nesting depth
	Children []*ListItemNode // Deeper items, in source order
}

// Section is the span of paragraphs between one header and the next.
type Section struct {
	Header     string          // Header text (empty for the implicit leading section)
	Level      int             // Heading level, 1 = top
	Items      []*ListItemNode // Top-level list items only
	Paragraphs []string        // Plain (non-list) paragraph text, in source order
}

// Table is a flat table grid. Cell text is extracted mechanically with no
// hierarchy reconstruction.
type Table struct {
	Rows [][]string
}

// DocumentTree is the root of a reconstructed document.
type DocumentTree struct {
	Title    string     // Document title (from metadata or filename)
	Sections []*Section // In source order
	Tables   []Table    // In source order
}

// Walk visits every list item in the tree depth-first, in document order.
// The callback receives the node and its ancestor count within the section.
func (t *DocumentTree) Walk(fn func(node *ListItemNode, depth int)) {
	var visit func(n *ListItemNode, depth int)
	visit = func(n *ListItemNode, depth int) {
		fn(n, depth)
		for _, c := range n.Children {
			visit(c, depth+1)
		}
	}
	for _, sec := range t.Sections {
		for _, item := range sec.Items {
			visit(item, 0)
		}
	}
}

// ItemCount returns the total number of list items across all sections.
func (t *DocumentTree) ItemCount() int {
	n := 0
	t.Walk(func(*ListItemNode, int) { n++ })
	return n
}
