package paragraph

import (
	"github.com/npillmayer/clusters/internal/tracing"
	"github.com/npillmayer/clusters/uniprop"
)

// LineBoundary is the line breaking state at a character position.
type LineBoundary uint8

// Line boundary states, ordered by severity.
const (
	LineNone LineBoundary = iota
	LineSoft             // a break opportunity
	LineHard             // a mandatory break
)

var lineBoundaryNames = [...]string{"None", "Soft", "Hard"}

func (lb LineBoundary) String() string {
	if int(lb) < len(lineBoundaryNames) {
		return lineBoundaryNames[lb]
	}
	return "None"
}

// Boundaries carries the boundary signals of one character position:
// whether a new word begins at the character, and the line breaking
// state the character causes.
type Boundaries struct {
	Word bool
	Line LineBoundary
}

// Bits packs the boundary signals into the 3 bit format consumed by
// uniprop.Properties.WithBoundary: bit 2 is the word flag, bits 0–1
// the line boundary.
func (b Boundaries) Bits() uint8 {
	bits := uint8(b.Line) & 0x3
	if b.Word {
		bits |= 0x4
	}
	return bits
}

// Analyze computes per-character boundary signals for a run of text.
// props must hold the properties of the corresponding runes. The word
// signal marks characters beginning a new word; the line signal marks
// break-causing characters (hard for mandatory break characters, soft
// for break opportunities after spaces and hyphens).
func Analyze(runes []rune, props []uniprop.Properties) []Boundaries {
	if len(runes) != len(props) {
		tracing.P("runes", len(runes)).Errorf("boundary analysis needs one property record per rune")
		return nil
	}
	bounds := make([]Boundaries, len(runes))
	for i := range runes {
		bounds[i].Line = lineBoundaryAt(props, i)
		bounds[i].Word = wordBoundaryAt(runes, props, i)
	}
	return bounds
}

// AnalyzeString is a convenience wrapper over Analyze, resolving
// properties on the fly.
func AnalyzeString(text string) ([]rune, []uniprop.Properties, []Boundaries) {
	runes := []rune(text)
	props := make([]uniprop.Properties, len(runes))
	for i, r := range runes {
		props[i] = uniprop.PropertiesFor(r)
	}
	return runes, props, Analyze(runes, props)
}

// --- Line boundaries ---------------------------------------------------

func lineBoundaryAt(props []uniprop.Properties, i int) LineBoundary {
	switch props[i].LineBreak() {
	case uniprop.LbMandatory, uniprop.LbCarriageReturn, uniprop.LbLineFeed,
		uniprop.LbNextLine:
		return LineHard
	case uniprop.LbSpace, uniprop.LbZeroWidthSpace, uniprop.LbHyphen:
		// No break opportunity if glue or a word joiner follows.
		if i+1 < len(props) {
			switch props[i+1].LineBreak() {
			case uniprop.LbGlue, uniprop.LbWordJoiner:
				return LineNone
			}
		}
		return LineSoft
	}
	return LineNone
}

// --- Word boundaries -----------------------------------------------------

// wordBoundaryAt decides whether a new word begins at position i,
// following a reduced UAX#29 word boundary rule set.
func wordBoundaryAt(runes []rune, props []uniprop.Properties, i int) bool {
	cur := props[i].WordBreak()
	// Extending and formatting characters attach to what precedes them.
	if i > 0 && (cur == uniprop.WbExtend || cur == uniprop.WbFormat || cur == uniprop.WbZWJ) {
		return false
	}
	if i == 0 {
		return true
	}
	j := prevEffective(props, i)
	if j < 0 {
		return true
	}
	prev := props[j].WordBreak()
	switch {
	case prev == uniprop.WbCR && cur == uniprop.WbLF:
		return false // CRLF is one newline
	case isNewlineClass(prev) || isNewlineClass(cur):
		return true
	case prev == uniprop.WbWSegSpace && cur == uniprop.WbWSegSpace:
		return false
	case isAHLetter(prev) && isAHLetter(cur):
		return false
	case isAHLetter(prev) && isMidLetterish(cur):
		// ALetter × MidLetter × ALetter
		if k := nextEffective(props, i); k >= 0 && isAHLetter(props[k].WordBreak()) {
			return false
		}
	case isMidLetterish(prev) && isAHLetter(cur):
		if j2 := prevEffective(props, j); j2 >= 0 && isAHLetter(props[j2].WordBreak()) {
			return false
		}
	case prev == uniprop.WbNumeric && cur == uniprop.WbNumeric:
		return false
	case prev == uniprop.WbNumeric && isMidNumerish(cur):
		if k := nextEffective(props, i); k >= 0 && props[k].WordBreak() == uniprop.WbNumeric {
			return false
		}
	case isMidNumerish(prev) && cur == uniprop.WbNumeric:
		if j2 := prevEffective(props, j); j2 >= 0 && props[j2].WordBreak() == uniprop.WbNumeric {
			return false
		}
	case isAHLetter(prev) && cur == uniprop.WbNumeric,
		prev == uniprop.WbNumeric && isAHLetter(cur):
		return false
	case prev == uniprop.WbKatakana && cur == uniprop.WbKatakana:
		return false
	case prev == uniprop.WbExtendNumLet || cur == uniprop.WbExtendNumLet:
		if isWordGlueable(prev) && isWordGlueable(cur) {
			return false
		}
	case prev == uniprop.WbRegionalIndicator && cur == uniprop.WbRegionalIndicator:
		// Pair regional indicators: no boundary on odd positions of a run.
		run := 0
		for k := j; k >= 0 && props[k].WordBreak() == uniprop.WbRegionalIndicator; k = prevEffective(props, k) {
			run++
		}
		return run%2 == 0
	}
	return true
}

func prevEffective(props []uniprop.Properties, i int) int {
	for j := i - 1; j >= 0; j-- {
		switch props[j].WordBreak() {
		case uniprop.WbExtend, uniprop.WbFormat, uniprop.WbZWJ:
			continue
		}
		return j
	}
	return -1
}

func nextEffective(props []uniprop.Properties, i int) int {
	for k := i + 1; k < len(props); k++ {
		switch props[k].WordBreak() {
		case uniprop.WbExtend, uniprop.WbFormat, uniprop.WbZWJ:
			continue
		}
		return k
	}
	return -1
}

func isNewlineClass(w uniprop.WordBreak) bool {
	return w == uniprop.WbCR || w == uniprop.WbLF || w == uniprop.WbNewline
}

func isAHLetter(w uniprop.WordBreak) bool {
	return w == uniprop.WbALetter || w == uniprop.WbHebrewLetter
}

func isMidLetterish(w uniprop.WordBreak) bool {
	return w == uniprop.WbMidLetter || w == uniprop.WbMidNumLet ||
		w == uniprop.WbSingleQuote
}

func isMidNumerish(w uniprop.WordBreak) bool {
	return w == uniprop.WbMidNum || w == uniprop.WbMidNumLet ||
		w == uniprop.WbSingleQuote
}

func isWordGlueable(w uniprop.WordBreak) bool {
	return isAHLetter(w) || w == uniprop.WbNumeric ||
		w == uniprop.WbKatakana || w == uniprop.WbExtendNumLet
}
