package render

import (
	"bytes"
	"fmt"

	"github.com/jdalgard/docxtree/internal/docmodel"
	"github.com/yuin/goldmark"
)

// HTML renders the document tree as an HTML fragment by passing the Markdown
// rendering through goldmark. Intended for quick previews, not archival
// output; the XML rendering is the authoritative serialization.
func HTML(tree *docmodel.DocumentTree) ([]byte, error) {
	md := Markdown(tree)

	var buf bytes.Buffer
	if err := goldmark.New().Convert(md, &buf); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}
