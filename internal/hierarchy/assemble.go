package hierarchy

import (
	"log/slog"

	"github.com/jdalgard/docxtree/internal/docmodel"
)

// Assembler partitions a classified paragraph stream into ordered sections
// and delegates each section's list items to a fresh Builder. Header text is
// not a key: duplicate headers produce distinct sections, and document order
// is the only ordering guarantee.
type Assembler struct {
	log        *slog.Logger
	classifier *Classifier

	sections []*docmodel.Section

	// Current section state. The leading section (before any header) has an
	// empty header and is emitted only if it accumulated content.
	open       bool
	header     string
	level      int
	items      []Classification
	paragraphs []string
}

func NewAssembler(log *slog.Logger) *Assembler {
	if log == nil {
		log = slog.Default()
	}
	return &Assembler{
		log:        log,
		classifier: NewClassifier(log),
		level:      1,
	}
}

// Feed classifies and consumes one paragraph record.
func (a *Assembler) Feed(rec docmodel.ParagraphRecord) {
	a.consume(a.classifier.Classify(rec))
}

func (a *Assembler) consume(cl Classification) {
	switch cl.Kind {
	case KindHeader:
		a.closeSection()
		a.open = true
		a.header = cl.Text
		a.level = cl.Level
	case KindListItem:
		// Content before the first header is buffered under an implicit
		// unheaded leading section.
		a.open = true
		a.items = append(a.items, cl)
	case KindPlainText:
		a.open = true
		a.paragraphs = append(a.paragraphs, cl.Text)
	case KindSkip:
	}
}

// closeSection runs the builder over the accumulated items and appends the
// section. List nesting state never crosses a header boundary.
func (a *Assembler) closeSection() {
	if !a.open {
		return
	}
	sec := &docmodel.Section{
		Header:     a.header,
		Level:      a.level,
		Items:      BuildForest(a.items, a.log),
		Paragraphs: a.paragraphs,
	}
	a.sections = append(a.sections, sec)
	a.log.Debug("closed section", "header", sec.Header, "level", sec.Level, "items", len(sec.Items))

	a.open = false
	a.header = ""
	a.level = 1
	a.items = nil
	a.paragraphs = nil
}

// Finish closes the final open section and returns all sections in order.
func (a *Assembler) Finish() []*docmodel.Section {
	a.closeSection()
	return a.sections
}

// Assemble runs the full classified pass over an ordered record stream.
// It never fails: every recoverable anomaly degrades per the classifier and
// builder fallbacks.
func Assemble(records []docmodel.ParagraphRecord, log *slog.Logger) []*docmodel.Section {
	a := NewAssembler(log)
	for _, rec := range records {
		a.Feed(rec)
	}
	return a.Finish()
}
