package hierarchy

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/jdalgard/docxtree/internal/docmodel"
)

// Kind labels what a paragraph record contributes to the document tree.
type Kind int

const (
	KindSkip Kind = iota
	KindHeader
	KindListItem
	KindPlainText
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindListItem:
		return "list-item"
	case KindPlainText:
		return "plain-text"
	default:
		return "skip"
	}
}

// Classification is the result of classifying one ParagraphRecord.
type Classification struct {
	Kind   Kind
	Level  int    // Heading level (1-based) for headers; 0-based list level for list items
	Marker string // Verbatim enumerator string for list items
	Text   string // Header text, cleaned item text, or plain text
}

var (
	headingStyleRe = regexp.MustCompile(`(?i)^heading\s*(\d+)?`)
	enumeratorRe   = regexp.MustCompile(`^\s*(?:\d+|[a-zA-Z])[).]\s*`)
)

// Classifier labels paragraph records. Classification is a pure function of
// the record; the logger only carries non-fatal parse diagnostics.
type Classifier struct {
	log *slog.Logger
}

func NewClassifier(log *slog.Logger) *Classifier {
	if log == nil {
		log = slog.Default()
	}
	return &Classifier{log: log}
}

// Classify labels a single paragraph record. It never fails: malformed style
// names and markers degrade to documented defaults.
func (c *Classifier) Classify(rec docmodel.ParagraphRecord) Classification {
	if m := headingStyleRe.FindStringSubmatch(rec.StyleName); m != nil {
		return Classification{
			Kind:  KindHeader,
			Level: c.headingLevel(rec.StyleName, m[1]),
			Text:  strings.TrimSpace(rec.Text),
		}
	}

	text := strings.TrimSpace(rec.Text)
	if text == "" {
		return Classification{Kind: KindSkip}
	}

	if rec.IsList() {
		level := rec.ListLevel - 1
		if level < 0 {
			level = 0
		}
		return Classification{
			Kind:   KindListItem,
			Level:  level,
			Marker: rec.Marker,
			Text:   stripEnumerator(text),
		}
	}

	return Classification{Kind: KindPlainText, Text: text}
}

// headingLevel parses the numeral captured from a heading style name,
// defaulting to 1 when the style carries no parseable level.
func (c *Classifier) headingLevel(style, numeral string) int {
	if numeral == "" {
		c.log.Warn("heading style without level, defaulting to 1", "style", style)
		return 1
	}
	n, err := strconv.Atoi(numeral)
	if err != nil || n < 1 {
		c.log.Warn("unparseable heading level, defaulting to 1", "style", style)
		return 1
	}
	return n
}

// stripEnumerator removes a leading enumerator token ("1.", "a)", ...) that
// the source duplicated into the paragraph text. The rendered marker itself
// is preserved separately on the classification.
func stripEnumerator(text string) string {
	return enumeratorRe.ReplaceAllString(text, "")
}
