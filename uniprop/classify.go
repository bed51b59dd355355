package uniprop

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/clusters/emoji"
	"github.com/npillmayer/clusters/shaping"
)

// buildRecord resolves all property values for a character. It is
// called at most once per character; results are interned by the
// record store.
func buildRecord(r rune) record {
	cat := categoryFor(r)
	d := norm.NFD.PropertiesString(string(r))
	ccc := d.CCC()
	rec := record{
		category: cat,
		script:   ScriptFor(r),
		ccc:      ccc,
		bidi:     bidiClassFor(r),
		joining:  joiningFor(r, cat),
		cluster:  clusterBreakFor(r, cat, ccc),
		word:     wordBreakFor(r, cat),
		line:     lineBreakFor(r, cat),
	}
	rec.use = useClassFor(r, cat)
	rec.myanmar = myanmarClassFor(r)
	if emoji.IsEmoji(r) {
		rec.flags |= flagEmoji
	}
	if emoji.IsExtendedPictographic(r) {
		rec.flags |= flagExtPictographic
	}
	if bp, _ := bidi.LookupString(string(r)); bp.IsBracket() {
		if bp.IsOpeningBracket() {
			rec.flags |= flagOpenBracket
		} else {
			rec.flags |= flagCloseBracket
		}
	}
	ignorable := unicode.Is(defaultIgnorable, r)
	if ignorable {
		rec.flags |= flagIgnorable
	}
	if unicode.Is(variationSelectors, r) {
		rec.flags |= flagVariationSelector
	}
	if !ignorable && cat != Cc {
		rec.flags |= flagContributes
	}
	if len(d.Decomposition()) > 0 {
		rec.flags |= flagNeedsDecomp
	}
	return rec
}

// --- General category --------------------------------------------------

var categoryOnce sync.Once
var categoryRanges [len(categoryNames)]*unicode.RangeTable

func setupCategories() {
	for c := Lu; int(c) < len(categoryNames); c++ {
		categoryRanges[c] = unicode.Categories[categoryNames[c]]
	}
}

func categoryFor(r rune) Category {
	categoryOnce.Do(setupCategories)
	for c := Lu; int(c) < len(categoryRanges); c++ {
		if categoryRanges[c] != nil && unicode.Is(categoryRanges[c], r) {
			return c
		}
	}
	return Cn
}

// --- Bidi class ---------------------------------------------------------

var bidiClassFromXText = map[bidi.Class]BidiClass{
	bidi.L: L, bidi.R: R, bidi.EN: EN, bidi.ES: ES, bidi.ET: ET,
	bidi.AN: AN, bidi.CS: CS, bidi.B: B, bidi.S: S, bidi.WS: WS,
	bidi.ON: ON, bidi.BN: BN, bidi.NSM: NSM, bidi.AL: AL,
	bidi.LRO: LRO, bidi.RLO: RLO, bidi.LRE: LRE, bidi.RLE: RLE,
	bidi.PDF: PDF, bidi.LRI: LRI, bidi.RLI: RLI, bidi.FSI: FSI,
	bidi.PDI: PDI,
}

func bidiClassFor(r rune) BidiClass {
	p, _ := bidi.LookupString(string(r))
	return bidiClassFromXText[p.Class()]
}

// --- Joining type -------------------------------------------------------

func joiningFor(r rune, cat Category) JoiningType {
	switch shaping.JoiningFor(r) {
	case 'C':
		return JoinC
	case 'D':
		return JoinD
	case 'L':
		return JoinL
	case 'R':
		return JoinR
	}
	// Transparent and non-joining assignments are derived: marks and
	// format controls other than ZWNJ are transparent.
	if (cat == Mn || cat == Me || cat == Cf) && r != 0x200C {
		return JoinT
	}
	return JoinU
}

// --- Grapheme cluster break ----------------------------------------------

func clusterBreakFor(r rune, cat Category, ccc uint8) ClusterBreak {
	if hb := hangulBreakFor(r); hb != CbOther {
		return hb
	}
	switch {
	case r == '\r':
		return CbCR
	case r == '\n':
		return CbLF
	case r == 0x200D:
		return CbZWJ
	case r >= 0x1F1E6 && r <= 0x1F1FF:
		return CbRegionalIndicator
	case unicode.Is(prepend, r):
		return CbPrepend
	case cat == Cc || cat == Zl || cat == Zp:
		return CbControl
	case cat == Cf:
		if r == 0x200C || unicode.Is(variationSelectors, r) {
			return CbExtend
		}
		return CbControl
	case cat == Mn || cat == Me || ccc != 0 ||
		unicode.Is(variationSelectors, r) || emoji.IsModifier(r):
		return CbExtend
	case cat == Mc:
		return CbSpacingMark
	}
	return CbOther
}

// hangulBreakFor computes the Hangul syllable type of a rune, which
// is arithmetic for the precomposed LV/LVT block.
func hangulBreakFor(r rune) ClusterBreak {
	switch {
	case r >= 0x1100 && r <= 0x115F, r >= 0xA960 && r <= 0xA97C:
		return CbHangulL
	case r >= 0x1160 && r <= 0x11A7, r >= 0xD7B0 && r <= 0xD7C6:
		return CbHangulV
	case r >= 0x11A8 && r <= 0x11FF, r >= 0xD7CB && r <= 0xD7FB:
		return CbHangulT
	case r >= 0xAC00 && r <= 0xD7A3:
		if (r-0xAC00)%28 == 0 {
			return CbHangulLV
		}
		return CbHangulLVT
	}
	return CbOther
}

// --- Word break -----------------------------------------------------------

func wordBreakFor(r rune, cat Category) WordBreak {
	switch r {
	case '\r':
		return WbCR
	case '\n':
		return WbLF
	case 0x0B, 0x0C, 0x85, 0x2028, 0x2029:
		return WbNewline
	case 0x200D:
		return WbZWJ
	case '\'':
		return WbSingleQuote
	case '"':
		return WbDoubleQuote
	case '.', 0x2018, 0x2019, 0x2024, 0xFE52, 0xFF07, 0xFF0E:
		return WbMidNumLet
	case ':', 0xB7, 0x387, 0x5F4, 0x2027, 0xFE13, 0xFE55, 0xFF1A:
		return WbMidLetter
	case ',', ';', 0x37E, 0x589, 0x60C, 0x60D, 0x66C, 0x7F8,
		0x2044, 0xFE10, 0xFE14, 0xFE50, 0xFE54, 0xFF0C, 0xFF1B:
		return WbMidNum
	}
	switch {
	case r >= 0x1F1E6 && r <= 0x1F1FF:
		return WbRegionalIndicator
	case cat == Mn || cat == Me || cat == Mc:
		return WbExtend
	case cat == Cf:
		return WbFormat
	case unicode.Is(unicode.Katakana, r), r >= 0x30FC && r <= 0x30FE:
		return WbKatakana
	case unicode.Is(unicode.Hebrew, r) && cat.IsLetter():
		return WbHebrewLetter
	case cat == Nd:
		return WbNumeric
	case cat == Pc, r == 0x202F:
		return WbExtendNumLet
	case cat == Zs:
		if r == 0xA0 || r == 0x2007 || r == 0x202F {
			return WbOther // no-break spaces do not split words either way
		}
		return WbWSegSpace
	case cat.IsLetter() || cat == Nl:
		// Ideographic and some SE Asian letters are not ALetter per
		// UAX#29; they never aggregate into words anyway.
		switch {
		case unicode.Is(unicode.Han, r), unicode.Is(unicode.Hiragana, r),
			unicode.Is(unicode.Thai, r), unicode.Is(unicode.Lao, r),
			unicode.Is(unicode.Khmer, r), unicode.Is(unicode.Myanmar, r):
			return WbOther
		}
		return WbALetter
	}
	return WbOther
}

// --- Line break -------------------------------------------------------------

func lineBreakFor(r rune, cat Category) LineBreak {
	switch r {
	case '\r':
		return LbCarriageReturn
	case '\n':
		return LbLineFeed
	case 0x85:
		return LbNextLine
	case 0x0B, 0x0C, 0x2028, 0x2029:
		return LbMandatory
	case ' ':
		return LbSpace
	case 0x200B:
		return LbZeroWidthSpace
	case 0xA0, 0x2007, 0x202F, 0x34F, 0x2011:
		return LbGlue
	case 0x2060, 0xFEFF:
		return LbWordJoiner
	case '-', 0x58A, 0x2010, 0x2012, 0x2013:
		return LbHyphen
	}
	if cat == Mn || cat == Mc || cat == Me {
		return LbCombining
	}
	if cat == Zs {
		return LbSpace
	}
	return LbOther
}
