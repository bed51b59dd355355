package shaping

import "unicode"

// JoiningFor returns the ArabicShaping joining type of a rune as its
// UCD letter code ('C', 'D', 'L', 'R'), or 0 if the rune carries no
// entry in the shaping table. Transparent ('T') and non-joining ('U')
// assignments are derived, not listed, per the UCD derivation rules.
func JoiningFor(r rune) byte {
	switch {
	case unicode.Is(ARAB_C, r):
		return 'C'
	case unicode.Is(ARAB_D, r):
		return 'D'
	case unicode.Is(ARAB_L, r):
		return 'L'
	case unicode.Is(ARAB_R, r):
		return 'R'
	}
	return 0
}

// SyllabicCategory is the Indic syllabic category of a character
// (UISC), reduced to the values consumed by the cluster engines.
type SyllabicCategory uint8

// Indic syllabic categories.
const (
	SCOther SyllabicCategory = iota
	SCAvagraha
	SCBindu
	SCConsonant
	SCConsonantDead
	SCConsonantMedial
	SCConsonantPlaceholder
	SCConsonantPrecedingRepha
	SCConsonantSubjoined
	SCInvisibleStacker
	SCNukta
	SCNumber
	SCPureKiller
	SCSyllableModifier
	SCVirama
	SCVisarga
	SCVowelDependent
	SCVowelIndependent
)

var rangeFromSyllabicCategory = []struct {
	cat SyllabicCategory
	rt  *unicode.RangeTable
}{
	{SCAvagraha, UISC_Avagraha},
	{SCBindu, UISC_Bindu},
	{SCConsonantDead, UISC_Consonant_Dead},
	{SCConsonantMedial, UISC_Consonant_Medial},
	{SCConsonantPlaceholder, UISC_Consonant_Placeholder},
	{SCConsonantPrecedingRepha, UISC_Consonant_Preceding_Repha},
	{SCConsonantSubjoined, UISC_Consonant_Subjoined},
	{SCConsonant, UISC_Consonant},
	{SCInvisibleStacker, UISC_Invisible_Stacker},
	{SCNukta, UISC_Nukta},
	{SCNumber, UISC_Number},
	{SCPureKiller, UISC_Pure_Killer},
	{SCSyllableModifier, UISC_Syllable_Modifier},
	{SCVirama, UISC_Virama},
	{SCVisarga, UISC_Visarga},
	{SCVowelDependent, UISC_Vowel_Dependent},
	{SCVowelIndependent, UISC_Vowel_Independent},
}

// SyllabicCategoryFor returns the Indic syllabic category for a rune,
// or SCOther if the rune carries no entry.
func SyllabicCategoryFor(r rune) SyllabicCategory {
	for _, e := range rangeFromSyllabicCategory {
		if unicode.Is(e.rt, r) {
			return e.cat
		}
	}
	return SCOther
}

// PositionalCategory is the Indic positional category of a character
// (UIPC), reduced to the values consumed by the cluster engines.
type PositionalCategory uint8

// Indic positional categories.
const (
	PosNA PositionalCategory = iota
	PosLeft
	PosTop
	PosBottom
	PosRight
	PosLeftAndRight
)

// PositionalCategoryFor returns the Indic positional category for a
// rune, or PosNA if the rune carries no entry.
func PositionalCategoryFor(r rune) PositionalCategory {
	switch {
	case unicode.Is(UIPC_Left, r):
		return PosLeft
	case unicode.Is(UIPC_Top, r):
		return PosTop
	case unicode.Is(UIPC_Bottom, r):
		return PosBottom
	case unicode.Is(UIPC_Right, r):
		return PosRight
	case unicode.Is(UIPC_Left_And_Right, r):
		return PosLeftAndRight
	}
	return PosNA
}
