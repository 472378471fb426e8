package docx

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// XML types for word/numbering.xml.

type numberingXML struct {
	XMLName      xml.Name         `xml:"numbering"`
	AbstractNums []abstractNumXML `xml:"abstractNum"`
	Nums         []numXML         `xml:"num"`
}

type abstractNumXML struct {
	ID     string     `xml:"abstractNumId,attr"`
	Levels []levelXML `xml:"lvl"`
}

type levelXML struct {
	ILvl    string `xml:"ilvl,attr"`
	Start   valXML `xml:"start"`
	NumFmt  valXML `xml:"numFmt"`
	LvlText valXML `xml:"lvlText"`
}

type numXML struct {
	NumID       string `xml:"numId,attr"`
	AbstractNum valXML `xml:"abstractNumId"`
}

// maxListDepth is the number of list levels OOXML defines per numbering.
const maxListDepth = 9

type levelDef struct {
	format string // decimal, lowerLetter, upperRoman, bullet, ...
	text   string // lvlText template, e.g. "%1." or a literal bullet char
	start  int
}

// markerEngine renders the enumerator string for each list paragraph, playing
// the role of the word processor's numbering engine: one counter per numId
// and level, deeper counters resetting whenever a shallower level advances.
type markerEngine struct {
	log      *slog.Logger
	defs     map[string][maxListDepth]levelDef // numId -> per-level definitions
	counters map[string]*[maxListDepth]int     // numId -> occurrence counts
	warned   bool
}

func newMarkerEngine(n *numberingXML, log *slog.Logger) *markerEngine {
	e := &markerEngine{
		log:      log,
		defs:     make(map[string][maxListDepth]levelDef),
		counters: make(map[string]*[maxListDepth]int),
	}
	if n == nil {
		return e
	}

	abstract := make(map[string][maxListDepth]levelDef)
	for _, an := range n.AbstractNums {
		var levels [maxListDepth]levelDef
		for _, lvl := range an.Levels {
			i, err := strconv.Atoi(lvl.ILvl)
			if err != nil || i < 0 || i >= maxListDepth {
				continue
			}
			start := 1
			if s, err := strconv.Atoi(lvl.Start.Val); err == nil && s >= 0 {
				start = s
			}
			levels[i] = levelDef{
				format: lvl.NumFmt.Val,
				text:   lvl.LvlText.Val,
				start:  start,
			}
		}
		abstract[an.ID] = levels
	}
	for _, num := range n.Nums {
		if levels, ok := abstract[num.AbstractNum.Val]; ok {
			e.defs[num.NumID] = levels
		}
	}
	return e
}

// marker advances the counter for (numID, ilvl) and renders the enumerator.
// Unknown numbering definitions degrade to plain decimal markers; a missing
// numbering part degrades to empty markers, logged once.
func (e *markerEngine) marker(numID string, ilvl int) string {
	if ilvl < 0 || ilvl >= maxListDepth {
		ilvl = 0
	}

	c, ok := e.counters[numID]
	if !ok {
		c = &[maxListDepth]int{}
		e.counters[numID] = c
	}
	c[ilvl]++
	// A new item at this depth restarts every deeper sequence.
	for i := ilvl + 1; i < maxListDepth; i++ {
		c[i] = 0
	}

	defs, ok := e.defs[numID]
	if !ok {
		if len(e.defs) == 0 {
			if !e.warned {
				e.log.Warn("no numbering definitions available, emitting empty markers")
				e.warned = true
			}
			return ""
		}
		e.log.Warn("unknown numbering id, using decimal marker", "num_id", numID)
		return fmt.Sprintf("%d.", c[ilvl])
	}

	def := defs[ilvl]
	if def.format == "bullet" {
		return def.text
	}
	if def.text == "" {
		return fmt.Sprintf("%d.", levelValue(def, c[ilvl]))
	}

	// lvlText embeds %N placeholders for the (1-based) level counters, e.g.
	// "%1.%2." at ilvl 1 renders "2.3." midway through a nested list.
	out := def.text
	for i := 0; i < maxListDepth; i++ {
		ph := "%" + strconv.Itoa(i+1)
		if !strings.Contains(out, ph) {
			continue
		}
		out = strings.ReplaceAll(out, ph, formatOrdinal(levelValue(defs[i], c[i]), defs[i].format))
	}
	return out
}

// levelValue maps an occurrence count to the sequence value, honoring the
// level's start offset.
func levelValue(def levelDef, occurrences int) int {
	if occurrences < 1 {
		occurrences = 1
	}
	start := def.start
	if start < 1 {
		start = 1
	}
	return start + occurrences - 1
}

// formatOrdinal renders a sequence value in the given OOXML numbering format.
func formatOrdinal(n int, format string) string {
	if n < 1 {
		n = 1
	}
	switch format {
	case "lowerLetter":
		return letterOrdinal(n, 'a')
	case "upperLetter":
		return letterOrdinal(n, 'A')
	case "lowerRoman":
		return strings.ToLower(romanOrdinal(n))
	case "upperRoman":
		return romanOrdinal(n)
	case "none":
		return ""
	default: // decimal and anything unrecognized
		return strconv.Itoa(n)
	}
}

// letterOrdinal renders 1 -> a, 26 -> z, 27 -> aa, matching word-processor
// letter numbering (a repeated digit rather than positional base-26).
func letterOrdinal(n int, base rune) string {
	letter := base + rune((n-1)%26)
	count := (n-1)/26 + 1
	return strings.Repeat(string(letter), count)
}

var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func romanOrdinal(n int) string {
	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			b.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return b.String()
}
