package uniprop

import (
	"testing"

	"github.com/npillmayer/clusters/internal/tracing"
)

func TestPropertiesLatinLetter(t *testing.T) {
	tracing.SetTestingLog(t)
	p := PropertiesFor('a')
	if p.Category() != Ll {
		t.Errorf("category of 'a' should be Ll, is %s", p.Category())
	}
	if p.Script() != Latin {
		t.Errorf("script of 'a' should be Latin, is %s", p.Script())
	}
	if p.Script().IsComplex() {
		t.Error("Latin should not be flagged as complex script")
	}
	if p.CombiningClass() != 0 {
		t.Errorf("combining class of 'a' should be 0, is %d", p.CombiningClass())
	}
	if !p.ContributesToShaping() {
		t.Error("'a' should contribute to shaping")
	}
}

func TestPropertiesInterning(t *testing.T) {
	tracing.SetTestingLog(t)
	p1 := PropertiesFor('b')
	p2 := PropertiesFor('b')
	if p1 != p2 {
		t.Errorf("repeated lookups of 'b' should return identical handles: %d vs %d", p1, p2)
	}
	if PropertiesFor('x') != PropertiesFor('y') {
		t.Error("'x' and 'y' share all property values and should share a record")
	}
}

func TestPropertiesCombiningMark(t *testing.T) {
	tracing.SetTestingLog(t)
	p := PropertiesFor(0x0301) // combining acute accent
	if p.Category() != Mn {
		t.Errorf("category of U+0301 should be Mn, is %s", p.Category())
	}
	if p.CombiningClass() != 230 {
		t.Errorf("combining class of U+0301 should be 230, is %d", p.CombiningClass())
	}
	if p.ClusterBreak() != CbExtend {
		t.Error("U+0301 should have cluster break class Extend")
	}
	if p.JoiningType() != JoinT {
		t.Errorf("U+0301 should be join-transparent, is %s", p.JoiningType())
	}
}

func TestPropertiesArabicJoining(t *testing.T) {
	tracing.SetTestingLog(t)
	if p := PropertiesFor(0x0628); p.JoiningType() != JoinD { // Beh
		t.Errorf("Arabic Beh should be dual-joining, is %s", p.JoiningType())
	}
	if p := PropertiesFor(0x0627); p.JoiningType() != JoinR { // Alef
		t.Errorf("Arabic Alef should be right-joining, is %s", p.JoiningType())
	}
	if p := PropertiesFor(0x0628); p.BidiClass() != AL {
		t.Errorf("Arabic Beh should have bidi class AL, is %d", p.BidiClass())
	}
	if !PropertiesFor(0x0628).BidiClass().NeedsResolution() {
		t.Error("bidi class AL should require bidi resolution")
	}
	if PropertiesFor('a').BidiClass().NeedsResolution() {
		t.Error("bidi class L should not require bidi resolution")
	}
}

func TestPropertiesEmoji(t *testing.T) {
	tracing.SetTestingLog(t)
	p := PropertiesFor(0x1F600) // grinning face
	if !p.IsEmoji() {
		t.Error("U+1F600 should carry the emoji flag")
	}
	if !p.IsExtendedPictographic() {
		t.Error("U+1F600 should be extended pictographic")
	}
	vs := PropertiesFor(0xFE0F)
	if !vs.IsVariationSelector() {
		t.Error("U+FE0F should be a variation selector")
	}
	if !vs.IsIgnorable() {
		t.Error("U+FE0F should be default-ignorable")
	}
	if vs.ContributesToShaping() {
		t.Error("U+FE0F should not contribute to shaping")
	}
}

func TestPropertiesBoundaryBits(t *testing.T) {
	tracing.SetTestingLog(t)
	p := PropertiesFor('a')
	q := p.WithBoundary(0x5)
	if q.Boundary() != 0x5 {
		t.Errorf("boundary bits should read back as 5, got %d", q.Boundary())
	}
	if q.Category() != p.Category() {
		t.Error("boundary bits must not affect the record lookup")
	}
	q.SetBoundary(0)
	if q != p {
		t.Error("clearing boundary bits should restore the original value")
	}
}

func TestScriptLookup(t *testing.T) {
	tracing.SetTestingLog(t)
	if s := ScriptFor(0x0915); s != Devanagari { // Ka
		t.Errorf("U+0915 should be Devanagari, is %s", s)
	}
	if !Devanagari.IsComplex() {
		t.Error("Devanagari should be a complex script")
	}
	if !Myanmar.IsComplex() || !Myanmar.IsMyanmar() {
		t.Error("Myanmar should be complex and route to the Myanmar engine")
	}
	if Thai.IsComplex() {
		t.Error("Thai should take the simple segmentation path")
	}
	if !Arabic.IsJoined() {
		t.Error("Arabic should be a joined script")
	}
}

func TestScriptOpenTypeTags(t *testing.T) {
	tracing.SetTestingLog(t)
	otTag := Devanagari.ToOpenType()
	if otTag != tag("dev2") {
		t.Errorf("Devanagari should map to OpenType tag dev2, is %08x", otTag)
	}
	back, ok := ScriptFromOpenType(otTag)
	if !ok || back != Devanagari {
		t.Errorf("round trip through OpenType tag should yield Devanagari, is %s", back)
	}
	if _, ok = ScriptFromOpenType(tag("nope")); ok {
		t.Error("unknown OpenType tag should not resolve to a script")
	}
}

func TestUseClasses(t *testing.T) {
	tracing.SetTestingLog(t)
	cases := []struct {
		r    rune
		cls  UseClass
		what string
	}{
		{0x0915, UseBase, "Devanagari Ka"},
		{0x094D, UseHalant, "Devanagari virama"},
		{0x093F, UseVPre, "Devanagari vowel sign I"},
		{0x0941, UseVBlw, "Devanagari vowel sign U"},
		{0x0902, UseAnusvara, "Devanagari anusvara"},
		{0x0940, UseMark, "Devanagari vowel sign II"},
		{0x0D4E, UseReph, "Malayalam dot reph"},
		{0x0966, UseBase, "Devanagari digit zero"},
		{0x1C34, UseVmPre, "Lepcha consonant sign nyin-do"},
		{0x1C35, UseVmPre, "Lepcha consonant sign kang"},
	}
	for _, c := range cases {
		if got := PropertiesFor(c.r).UseClass(); got != c.cls {
			t.Errorf("%s should have Use class %s, is %s", c.what, c.cls, got)
		}
	}
}

func TestMyanmarClasses(t *testing.T) {
	tracing.SetTestingLog(t)
	cases := []struct {
		r    rune
		cls  MyanmarClass
		what string
	}{
		{0x1000, MyBase, "Myanmar Ka"},
		{0x101B, MyKinzi, "Myanmar Ra"},
		{0x1039, MyHalant, "Myanmar virama"},
		{0x103A, MyAsat, "Myanmar asat"},
		{0x103C, MyMedialRa, "Myanmar medial Ra"},
		{0x1031, MyVPre, "Myanmar vowel sign E"},
		{0x102F, MyVBlw, "Myanmar vowel sign U"},
		{0x1036, MyAnusvara, "Myanmar anusvara"},
		{0x1037, MyMark, "Myanmar dot below"},
	}
	for _, c := range cases {
		if got := PropertiesFor(c.r).MyanmarClass(); got != c.cls {
			t.Errorf("%s should have Myanmar class %s, is %s", c.what, c.cls, got)
		}
	}
}
