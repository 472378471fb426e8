package hierarchy

import (
	"testing"

	"github.com/jdalgard/docxtree/internal/docmodel"
)

func TestClassify_HeadingStyles(t *testing.T) {
	tests := []struct {
		style string
		level int
	}{
		{"Heading 1", 1},
		{"Heading 2", 2},
		{"heading 3", 3},
		{"HEADING 4", 4},
		{"Heading1", 1},
		{"Heading 10", 10},
		{"Heading", 1},      // no numeral: default
		{"Heading X", 1},    // unparseable numeral: default
		{"heading  7", 7},   // extra whitespace
	}
	c := NewClassifier(nil)
	for _, tt := range tests {
		cl := c.Classify(docmodel.ParagraphRecord{StyleName: tt.style, Text: "Title"})
		if cl.Kind != KindHeader {
			t.Errorf("style %q: expected header, got %v", tt.style, cl.Kind)
			continue
		}
		if cl.Level != tt.level {
			t.Errorf("style %q: expected level %d, got %d", tt.style, tt.level, cl.Level)
		}
		if cl.Text != "Title" {
			t.Errorf("style %q: expected text %q, got %q", tt.style, "Title", cl.Text)
		}
	}
}

func TestClassify_NonHeadingStyles(t *testing.T) {
	c := NewClassifier(nil)
	for _, style := range []string{"Normal", "List Paragraph", "Subheading", "Body Text"} {
		cl := c.Classify(docmodel.ParagraphRecord{StyleName: style, Text: "some text"})
		if cl.Kind == KindHeader {
			t.Errorf("style %q: should not classify as header", style)
		}
	}
}

func TestClassify_EmptyTextIsSkip(t *testing.T) {
	c := NewClassifier(nil)
	for _, text := range []string{"", "   ", "\t\n"} {
		cl := c.Classify(docmodel.ParagraphRecord{StyleName: "Normal", Text: text})
		if cl.Kind != KindSkip {
			t.Errorf("text %q: expected skip, got %v", text, cl.Kind)
		}
	}
}

func TestClassify_ListItem(t *testing.T) {
	c := NewClassifier(nil)
	cl := c.Classify(docmodel.ParagraphRecord{
		StyleName: "List Paragraph",
		Text:      "1. First requirement",
		ListLevel: 1,
		Marker:    "1.",
	})
	if cl.Kind != KindListItem {
		t.Fatalf("expected list item, got %v", cl.Kind)
	}
	if cl.Level != 0 {
		t.Errorf("expected 0-based level 0, got %d", cl.Level)
	}
	if cl.Marker != "1." {
		t.Errorf("expected marker %q, got %q", "1.", cl.Marker)
	}
	if cl.Text != "First requirement" {
		t.Errorf("expected enumerator stripped, got %q", cl.Text)
	}
}

func TestClassify_ListLevelConversion(t *testing.T) {
	// Source levels are 1-based; stored levels are 0-based, clamped at 0.
	tests := []struct {
		source int
		want   int
	}{
		{1, 0},
		{2, 1},
		{5, 4},
	}
	c := NewClassifier(nil)
	for _, tt := range tests {
		cl := c.Classify(docmodel.ParagraphRecord{Text: "x", ListLevel: tt.source})
		if cl.Level != tt.want {
			t.Errorf("source level %d: expected %d, got %d", tt.source, tt.want, cl.Level)
		}
	}
}

func TestClassify_EnumeratorStripping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1. Alpha", "Alpha"},
		{"12) Beta", "Beta"},
		{"a. Gamma", "Gamma"},
		{"B) Delta", "Delta"},
		{"  3.  Indented", "Indented"},
		{"No enumerator here", "No enumerator here"},
		{"1.5 is a number", "5 is a number"}, // leading token is greedy by design
	}
	c := NewClassifier(nil)
	for _, tt := range tests {
		cl := c.Classify(docmodel.ParagraphRecord{Text: tt.in, ListLevel: 1})
		if cl.Text != tt.want {
			t.Errorf("text %q: expected %q, got %q", tt.in, tt.want, cl.Text)
		}
	}
}

func TestClassify_MarkerPreservedVerbatim(t *testing.T) {
	c := NewClassifier(nil)
	for _, marker := range []string{"1.", "a)", "(iv)", "•", ""} {
		cl := c.Classify(docmodel.ParagraphRecord{Text: "x", ListLevel: 2, Marker: marker})
		if cl.Marker != marker {
			t.Errorf("expected marker %q preserved, got %q", marker, cl.Marker)
		}
	}
}

func TestClassify_PlainText(t *testing.T) {
	c := NewClassifier(nil)
	cl := c.Classify(docmodel.ParagraphRecord{StyleName: "Normal", Text: "  Body text.  "})
	if cl.Kind != KindPlainText {
		t.Fatalf("expected plain text, got %v", cl.Kind)
	}
	if cl.Text != "Body text." {
		t.Errorf("expected trimmed text, got %q", cl.Text)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	// Classification is a pure function of the record.
	c := NewClassifier(nil)
	rec := docmodel.ParagraphRecord{StyleName: "Heading 2", Text: "Scope", ListLevel: 0}
	first := c.Classify(rec)
	for range 5 {
		if got := c.Classify(rec); got != first {
			t.Fatalf("expected identical classification, got %+v then %+v", first, got)
		}
	}
}

func TestClassify_HeaderWinsOverListLevel(t *testing.T) {
	// A heading-styled paragraph is a header even if numbering leaked onto it.
	c := NewClassifier(nil)
	cl := c.Classify(docmodel.ParagraphRecord{StyleName: "Heading 1", Text: "Intro", ListLevel: 1})
	if cl.Kind != KindHeader {
		t.Errorf("expected header, got %v", cl.Kind)
	}
}
