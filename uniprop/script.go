package uniprop

import (
	"sort"
	"sync"
	"unicode"

	"github.com/npillmayer/clusters/internal/tracing"
)

// Script identifies the Unicode script a character belongs to. The zero
// value is Unknown. The enumeration covers the scripts relevant for
// shaping-cluster analysis; characters of scripts outside the list
// resolve to Unknown and take the simple segmentation path.
type Script uint8

// Scripts. Names match the Unicode script property value aliases (and
// thereby the keys of the unicode.Scripts table).
const (
	Unknown Script = iota
	Common
	Inherited
	Adlam
	Arabic
	Armenian
	Balinese
	Batak
	Bengali
	Bopomofo
	Brahmi
	Buginese
	Buhid
	Chakma
	Cham
	Cherokee
	Cyrillic
	Devanagari
	Ethiopic
	Georgian
	Grantha
	Greek
	Gujarati
	Gurmukhi
	Han
	Hangul
	Hanunoo
	Hebrew
	Hiragana
	Javanese
	Kaithi
	Kannada
	Katakana
	KayahLi
	Kharoshthi
	Khmer
	Khojki
	Lao
	Latin
	Lepcha
	Limbu
	Malayalam
	Mandaic
	Manichaean
	MeeteiMayek
	Modi
	Mongolian
	Myanmar
	NewTaiLue
	Newa
	Nko
	Ogham
	Oriya
	PhagsPa
	PsalterPahlavi
	Rejang
	Runic
	Saurashtra
	Sharada
	Siddham
	Sinhala
	Sundanese
	SylotiNagri
	Syriac
	Tagalog
	Tagbanwa
	TaiLe
	TaiTham
	TaiViet
	Takri
	Tamil
	Telugu
	Thaana
	Thai
	Tibetan
	Tifinagh
	Tirhuta
	Yi
	maxScript
)

// complexity routes a script to a cluster parsing engine.
type complexity uint8

const (
	complexNone complexity = iota
	complexUse
	complexMyanmar
)

var scriptNames = [maxScript]string{
	Unknown: "Unknown", Common: "Common", Inherited: "Inherited",
	Adlam: "Adlam", Arabic: "Arabic", Armenian: "Armenian",
	Balinese: "Balinese", Batak: "Batak", Bengali: "Bengali",
	Bopomofo: "Bopomofo", Brahmi: "Brahmi", Buginese: "Buginese",
	Buhid: "Buhid", Chakma: "Chakma", Cham: "Cham",
	Cherokee: "Cherokee", Cyrillic: "Cyrillic", Devanagari: "Devanagari",
	Ethiopic: "Ethiopic", Georgian: "Georgian", Grantha: "Grantha",
	Greek: "Greek", Gujarati: "Gujarati", Gurmukhi: "Gurmukhi",
	Han: "Han", Hangul: "Hangul", Hanunoo: "Hanunoo",
	Hebrew: "Hebrew", Hiragana: "Hiragana", Javanese: "Javanese",
	Kaithi: "Kaithi", Kannada: "Kannada", Katakana: "Katakana",
	KayahLi: "Kayah_Li", Kharoshthi: "Kharoshthi", Khmer: "Khmer",
	Khojki: "Khojki", Lao: "Lao", Latin: "Latin",
	Lepcha: "Lepcha", Limbu: "Limbu", Malayalam: "Malayalam",
	Mandaic: "Mandaic", Manichaean: "Manichaean", MeeteiMayek: "Meetei_Mayek",
	Modi: "Modi", Mongolian: "Mongolian", Myanmar: "Myanmar",
	NewTaiLue: "New_Tai_Lue", Newa: "Newa", Nko: "Nko",
	Ogham: "Ogham", Oriya: "Oriya", PhagsPa: "Phags_Pa",
	PsalterPahlavi: "Psalter_Pahlavi", Rejang: "Rejang", Runic: "Runic",
	Saurashtra: "Saurashtra", Sharada: "Sharada", Siddham: "Siddham",
	Sinhala: "Sinhala", Sundanese: "Sundanese", SylotiNagri: "Syloti_Nagri",
	Syriac: "Syriac", Tagalog: "Tagalog", Tagbanwa: "Tagbanwa",
	TaiLe: "Tai_Le", TaiTham: "Tai_Tham", TaiViet: "Tai_Viet",
	Takri: "Takri", Tamil: "Tamil", Telugu: "Telugu",
	Thaana: "Thaana", Thai: "Thai", Tibetan: "Tibetan",
	Tifinagh: "Tifinagh", Tirhuta: "Tirhuta", Yi: "Yi",
}

// scriptTags maps a script ordinal to its OpenType script tag.
var scriptTags = [maxScript]uint32{
	Unknown: tag("DFLT"), Common: tag("zyyy"), Inherited: tag("zinh"),
	Adlam: tag("adlm"), Arabic: tag("arab"), Armenian: tag("armn"),
	Balinese: tag("bali"), Batak: tag("batk"), Bengali: tag("bng2"),
	Bopomofo: tag("bopo"), Brahmi: tag("brah"), Buginese: tag("bugi"),
	Buhid: tag("buhd"), Chakma: tag("cakm"), Cham: tag("cham"),
	Cherokee: tag("cher"), Cyrillic: tag("cyrl"), Devanagari: tag("dev2"),
	Ethiopic: tag("ethi"), Georgian: tag("geor"), Grantha: tag("gran"),
	Greek: tag("grek"), Gujarati: tag("gjr2"), Gurmukhi: tag("gur2"),
	Han: tag("hani"), Hangul: tag("hang"), Hanunoo: tag("hano"),
	Hebrew: tag("hebr"), Hiragana: tag("kana"), Javanese: tag("java"),
	Kaithi: tag("kthi"), Kannada: tag("knd2"), Katakana: tag("kana"),
	KayahLi: tag("kali"), Kharoshthi: tag("khar"), Khmer: tag("khmr"),
	Khojki: tag("khoj"), Lao: tag("lao "), Latin: tag("latn"),
	Lepcha: tag("lepc"), Limbu: tag("limb"), Malayalam: tag("mlm2"),
	Mandaic: tag("mand"), Manichaean: tag("mani"), MeeteiMayek: tag("mtei"),
	Modi: tag("modi"), Mongolian: tag("mong"), Myanmar: tag("mym2"),
	NewTaiLue: tag("talu"), Newa: tag("newa"), Nko: tag("nko "),
	Ogham: tag("ogam"), Oriya: tag("ory2"), PhagsPa: tag("phag"),
	PsalterPahlavi: tag("phlp"), Rejang: tag("rjng"), Runic: tag("runr"),
	Saurashtra: tag("saur"), Sharada: tag("shrd"), Siddham: tag("sidd"),
	Sinhala: tag("sinh"), Sundanese: tag("sund"), SylotiNagri: tag("sylo"),
	Syriac: tag("syrc"), Tagalog: tag("tglg"), Tagbanwa: tag("tagb"),
	TaiLe: tag("tale"), TaiTham: tag("lana"), TaiViet: tag("tavt"),
	Takri: tag("takr"), Tamil: tag("tml2"), Telugu: tag("tel2"),
	Thaana: tag("thaa"), Thai: tag("thai"), Tibetan: tag("tibt"),
	Tifinagh: tag("tfng"), Tirhuta: tag("tirh"), Yi: tag("yi  "),
}

// scriptComplexity is the per-script engine routing table. It must stay
// in sync with the Use and Myanmar classifiers: a script routed to a
// complex engine needs class assignments for its characters.
var scriptComplexity = [maxScript]complexity{
	Balinese: complexUse, Batak: complexUse, Bengali: complexUse,
	Brahmi: complexUse, Buginese: complexUse, Buhid: complexUse,
	Chakma: complexUse, Cham: complexUse, Devanagari: complexUse,
	Grantha: complexUse, Gujarati: complexUse, Gurmukhi: complexUse,
	Hanunoo: complexUse, Javanese: complexUse, Kaithi: complexUse,
	Kannada: complexUse, KayahLi: complexUse, Kharoshthi: complexUse,
	Khmer: complexUse, Khojki: complexUse, Lepcha: complexUse,
	Limbu: complexUse, Malayalam: complexUse, MeeteiMayek: complexUse,
	Modi: complexUse, NewTaiLue: complexUse, Newa: complexUse,
	Oriya: complexUse, Rejang: complexUse, Saurashtra: complexUse,
	Sharada: complexUse, Siddham: complexUse, Sinhala: complexUse,
	Sundanese: complexUse, SylotiNagri: complexUse, Tagalog: complexUse,
	Tagbanwa: complexUse, TaiLe: complexUse, TaiTham: complexUse,
	TaiViet: complexUse, Takri: complexUse, Tamil: complexUse,
	Telugu: complexUse, Tibetan: complexUse, Tirhuta: complexUse,
	Myanmar: complexMyanmar,
}

func tag(s string) uint32 {
	return uint32(s[0])<<24 | uint32(s[1])<<16 | uint32(s[2])<<8 | uint32(s[3])
}

// Name returns the Unicode name of the script.
func (s Script) Name() string {
	if s < maxScript {
		return scriptNames[s]
	}
	return scriptNames[Unknown]
}

func (s Script) String() string {
	return s.Name()
}

// IsComplex returns true if the script requires complex shaping, i.e.
// is routed through one of the script-specific cluster engines.
func (s Script) IsComplex() bool {
	return s < maxScript && scriptComplexity[s] != complexNone
}

// IsMyanmar returns true for the Myanmar script, which has its own
// cluster engine.
func (s Script) IsMyanmar() bool {
	return s == Myanmar
}

// IsJoined returns true if the script has cursive joining.
func (s Script) IsJoined() bool {
	switch s {
	case Arabic, Mongolian, Syriac, Nko, PhagsPa, Mandaic,
		Manichaean, PsalterPahlavi, Adlam:
		return true
	}
	return false
}

// ToOpenType returns the script as an OpenType script tag.
func (s Script) ToOpenType() uint32 {
	if s < maxScript {
		return scriptTags[s]
	}
	return scriptTags[Unknown]
}

// --- Script lookup ---------------------------------------------------------

var scriptOnce sync.Once

// scriptRanges pairs each script ordinal with its stdlib range table.
var scriptRanges [maxScript]*unicode.RangeTable

// scriptsByTag is sorted by OpenType tag for binary search.
var scriptsByTag []struct {
	tag    uint32
	script Script
}

func setupScripts() {
	for s := Script(1); s < maxScript; s++ {
		rt, ok := unicode.Scripts[scriptNames[s]]
		if !ok {
			tracing.P("script", scriptNames[s]).Errorf("no range table for script")
			continue
		}
		scriptRanges[s] = rt
	}
	scriptsByTag = make([]struct {
		tag    uint32
		script Script
	}, 0, maxScript)
	for s := Script(1); s < maxScript; s++ {
		scriptsByTag = append(scriptsByTag, struct {
			tag    uint32
			script Script
		}{scriptTags[s], s})
	}
	sort.Slice(scriptsByTag, func(i, j int) bool {
		if scriptsByTag[i].tag != scriptsByTag[j].tag {
			return scriptsByTag[i].tag < scriptsByTag[j].tag
		}
		return scriptsByTag[i].script < scriptsByTag[j].script
	})
}

// ScriptFor returns the script a rune belongs to, or Unknown.
func ScriptFor(r rune) Script {
	scriptOnce.Do(setupScripts)
	for s := Script(1); s < maxScript; s++ {
		if scriptRanges[s] != nil && unicode.Is(scriptRanges[s], r) {
			return s
		}
	}
	return Unknown
}

// ScriptFromOpenType returns the script associated with the specified
// OpenType script tag.
func ScriptFromOpenType(t uint32) (Script, bool) {
	scriptOnce.Do(setupScripts)
	i := sort.Search(len(scriptsByTag), func(i int) bool {
		return scriptsByTag[i].tag >= t
	})
	if i < len(scriptsByTag) && scriptsByTag[i].tag == t {
		return scriptsByTag[i].script, true
	}
	return Unknown, false
}
