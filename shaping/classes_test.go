package shaping

import (
	"testing"

	"github.com/npillmayer/clusters/internal/tracing"
)

func TestJoiningFor(t *testing.T) {
	tracing.SetTestingLog(t)
	cases := []struct {
		r    rune
		want byte
	}{
		{0x0628, 'D'}, // Arabic beh
		{0x0627, 'R'}, // Arabic alef
		{0x0640, 'C'}, // tatweel
		{'a', 0},
	}
	for _, c := range cases {
		if got := JoiningFor(c.r); got != c.want {
			t.Errorf("joining type of %U: expected %c, got %c", c.r, c.want, got)
		}
	}
}

func TestSyllabicCategoryFor(t *testing.T) {
	tracing.SetTestingLog(t)
	cases := []struct {
		r    rune
		want SyllabicCategory
	}{
		{0x0915, SCConsonant},      // Devanagari ka
		{0x094D, SCVirama},         // Devanagari virama
		{0x093F, SCVowelDependent}, // Devanagari vowel sign i
		{0x0D4E, SCConsonantPrecedingRepha},
		{0x17D2, SCInvisibleStacker}, // Khmer coeng
		{'a', SCOther},
	}
	for _, c := range cases {
		if got := SyllabicCategoryFor(c.r); got != c.want {
			t.Errorf("syllabic category of %U: expected %d, got %d", c.r, c.want, got)
		}
	}
}

func TestPositionalCategoryFor(t *testing.T) {
	tracing.SetTestingLog(t)
	cases := []struct {
		r    rune
		want PositionalCategory
	}{
		{0x093F, PosLeft},   // Devanagari vowel sign i
		{0x0941, PosBottom}, // Devanagari vowel sign u
		{0x093E, PosRight},  // Devanagari vowel sign aa
		{'a', PosNA},
	}
	for _, c := range cases {
		if got := PositionalCategoryFor(c.r); got != c.want {
			t.Errorf("positional category of %U: expected %d, got %d", c.r, c.want, got)
		}
	}
}
