package docx

import (
	"log/slog"
	"testing"
)

func testNumbering() *numberingXML {
	return &numberingXML{
		AbstractNums: []abstractNumXML{
			{
				ID: "0",
				Levels: []levelXML{
					{ILvl: "0", Start: valXML{"1"}, NumFmt: valXML{"decimal"}, LvlText: valXML{"%1."}},
					{ILvl: "1", Start: valXML{"1"}, NumFmt: valXML{"lowerLetter"}, LvlText: valXML{"%2)"}},
					{ILvl: "2", Start: valXML{"1"}, NumFmt: valXML{"lowerRoman"}, LvlText: valXML{"%3."}},
				},
			},
			{
				ID: "1",
				Levels: []levelXML{
					{ILvl: "0", NumFmt: valXML{"bullet"}, LvlText: valXML{"•"}},
				},
			},
		},
		Nums: []numXML{
			{NumID: "5", AbstractNum: valXML{"0"}},
			{NumID: "6", AbstractNum: valXML{"1"}},
		},
	}
}

func TestMarkerEngine_DecimalSequence(t *testing.T) {
	e := newMarkerEngine(testNumbering(), slog.Default())
	for i, want := range []string{"1.", "2.", "3."} {
		if got := e.marker("5", 0); got != want {
			t.Errorf("item %d: expected marker %q, got %q", i, want, got)
		}
	}
}

func TestMarkerEngine_NestedCountersReset(t *testing.T) {
	e := newMarkerEngine(testNumbering(), slog.Default())

	steps := []struct {
		ilvl int
		want string
	}{
		{0, "1."},
		{1, "a)"},
		{1, "b)"},
		{0, "2."},
		{1, "a)"}, // deeper counter restarted by the level-0 advance
	}
	for i, st := range steps {
		if got := e.marker("5", st.ilvl); got != st.want {
			t.Errorf("step %d (ilvl %d): expected %q, got %q", i, st.ilvl, st.want, got)
		}
	}
}

func TestMarkerEngine_RomanLevels(t *testing.T) {
	e := newMarkerEngine(testNumbering(), slog.Default())
	e.marker("5", 0)
	e.marker("5", 1)

	for _, want := range []string{"i.", "ii.", "iii.", "iv."} {
		if got := e.marker("5", 2); got != want {
			t.Errorf("expected roman marker %q, got %q", want, got)
		}
	}
}

func TestMarkerEngine_Bullet(t *testing.T) {
	e := newMarkerEngine(testNumbering(), slog.Default())
	for range 3 {
		if got := e.marker("6", 0); got != "•" {
			t.Errorf("expected literal bullet marker, got %q", got)
		}
	}
}

func TestMarkerEngine_UnknownNumIDFallsBackToDecimal(t *testing.T) {
	e := newMarkerEngine(testNumbering(), slog.Default())
	if got := e.marker("99", 0); got != "1." {
		t.Errorf("expected decimal fallback %q, got %q", "1.", got)
	}
	if got := e.marker("99", 0); got != "2." {
		t.Errorf("expected decimal fallback %q, got %q", "2.", got)
	}
}

func TestMarkerEngine_NoNumberingPart(t *testing.T) {
	e := newMarkerEngine(nil, slog.Default())
	if got := e.marker("5", 0); got != "" {
		t.Errorf("expected empty marker without numbering part, got %q", got)
	}
}

func TestMarkerEngine_MultiPlaceholderTemplate(t *testing.T) {
	n := &numberingXML{
		AbstractNums: []abstractNumXML{
			{
				ID: "0",
				Levels: []levelXML{
					{ILvl: "0", Start: valXML{"1"}, NumFmt: valXML{"decimal"}, LvlText: valXML{"%1."}},
					{ILvl: "1", Start: valXML{"1"}, NumFmt: valXML{"decimal"}, LvlText: valXML{"%1.%2."}},
				},
			},
		},
		Nums: []numXML{{NumID: "1", AbstractNum: valXML{"0"}}},
	}
	e := newMarkerEngine(n, slog.Default())

	e.marker("1", 0) // 1.
	e.marker("1", 0) // 2.
	if got := e.marker("1", 1); got != "2.1." {
		t.Errorf("expected composite marker %q, got %q", "2.1.", got)
	}
	if got := e.marker("1", 1); got != "2.2." {
		t.Errorf("expected composite marker %q, got %q", "2.2.", got)
	}
}

func TestMarkerEngine_StartOffset(t *testing.T) {
	n := &numberingXML{
		AbstractNums: []abstractNumXML{
			{
				ID:     "0",
				Levels: []levelXML{{ILvl: "0", Start: valXML{"5"}, NumFmt: valXML{"decimal"}, LvlText: valXML{"%1."}}},
			},
		},
		Nums: []numXML{{NumID: "1", AbstractNum: valXML{"0"}}},
	}
	e := newMarkerEngine(n, slog.Default())
	if got := e.marker("1", 0); got != "5." {
		t.Errorf("expected start offset marker %q, got %q", "5.", got)
	}
	if got := e.marker("1", 0); got != "6." {
		t.Errorf("expected %q, got %q", "6.", got)
	}
}

func TestFormatOrdinal(t *testing.T) {
	tests := []struct {
		n      int
		format string
		want   string
	}{
		{1, "decimal", "1"},
		{42, "decimal", "42"},
		{1, "lowerLetter", "a"},
		{26, "lowerLetter", "z"},
		{27, "lowerLetter", "aa"},
		{28, "lowerLetter", "bb"},
		{2, "upperLetter", "B"},
		{4, "lowerRoman", "iv"},
		{9, "upperRoman", "IX"},
		{14, "upperRoman", "XIV"},
		{1949, "upperRoman", "MCMXLIX"},
		{3, "none", ""},
		{7, "mystery", "7"},
	}
	for _, tt := range tests {
		if got := formatOrdinal(tt.n, tt.format); got != tt.want {
			t.Errorf("formatOrdinal(%d, %q): expected %q, got %q", tt.n, tt.format, got, tt.want)
		}
	}
}
