package uniprop

import (
	"github.com/npillmayer/clusters/shaping"
)

// UseClass is the auxiliary character class consumed by the generic
// (Use-style) complex cluster engine. It collapses the Indic syllabic
// and positional categories to the roles the engine distinguishes.
type UseClass uint8

// Use classes.
const (
	UseOther UseClass = iota
	UseBase            // consonants, independent vowels, numbers, placeholders
	UseMark            // dependent marks attaching above or after the base
	UseHalant          // viramas, invisible stackers and pure killers
	UseVPre            // left-positioned dependent vowels
	UseVBlw            // bottom-positioned dependent vowels
	UseAnusvara        // bindus
	UseReph            // pre-base repha consonants
	UseVmPre           // left-positioned modifier signs
)

var useClassNames = [...]string{
	"Other", "Base", "Mark", "Halant", "VPre", "VBlw", "Anusvara", "Reph", "VmPre",
}

func (u UseClass) String() string {
	if int(u) < len(useClassNames) {
		return useClassNames[u]
	}
	return "Other"
}

// useClassFor derives the Use class of a character from the Indic
// syllabic and positional category tables, with a general-category
// fallback for scripts the tables do not cover.
func useClassFor(r rune, cat Category) UseClass {
	switch shaping.SyllabicCategoryFor(r) {
	case shaping.SCVirama, shaping.SCInvisibleStacker, shaping.SCPureKiller:
		return UseHalant
	case shaping.SCBindu:
		if shaping.PositionalCategoryFor(r) == shaping.PosLeft {
			return UseVmPre
		}
		return UseAnusvara
	case shaping.SCConsonantPrecedingRepha:
		return UseReph
	case shaping.SCVisarga, shaping.SCSyllableModifier:
		if shaping.PositionalCategoryFor(r) == shaping.PosLeft {
			return UseVmPre
		}
		return UseMark
	case shaping.SCNukta, shaping.SCConsonantSubjoined, shaping.SCConsonantMedial:
		return UseMark
	case shaping.SCVowelDependent:
		switch shaping.PositionalCategoryFor(r) {
		case shaping.PosLeft:
			return UseVPre
		case shaping.PosBottom:
			return UseVBlw
		}
		return UseMark
	case shaping.SCConsonant, shaping.SCVowelIndependent, shaping.SCConsonantDead,
		shaping.SCConsonantPlaceholder, shaping.SCNumber, shaping.SCAvagraha:
		return UseBase
	}
	switch {
	case cat.IsLetter(), cat == Nd, cat == Nl, cat == No:
		return UseBase
	case cat == Mn, cat == Me, cat == Mc:
		return UseMark
	}
	return UseOther
}
