package uniprop

// MyanmarClass is the auxiliary character class consumed by the
// Myanmar cluster engine. The assignments follow the Myanmar shaping
// categories of the Universal Shaping Engine specification.
type MyanmarClass uint8

// Myanmar classes.
const (
	MyOther    MyanmarClass = iota
	MyBase                  // consonants, independent vowels, digits, placeholders
	MyKinzi                 // consonants that can form a kinzi prefix (Nga, Ra, Mon Nga)
	MyAsat                  // U+103A
	MyHalant                // U+1039
	MyMedialRa              // U+103C
	MyMedial                // other medial consonants
	MyVPre                  // pre-base vowels
	MyVBlw                  // below-base vowels
	MyVAbv                  // above-base vowels
	MyVPst                  // post-base vowels
	MyAnusvara              // U+1036
	MyMark                  // tones, visarga, dot below
)

var myanmarClassNames = [...]string{
	"Other", "Base", "Kinzi", "Asat", "Halant", "MedialRa", "Medial",
	"VPre", "VBlw", "VAbv", "VPst", "Anusvara", "Mark",
}

func (m MyanmarClass) String() string {
	if int(m) < len(myanmarClassNames) {
		return myanmarClassNames[m]
	}
	return "Other"
}

// myanmarClassFor derives the Myanmar class of a character. Characters
// outside the Myanmar blocks resolve to MyOther.
func myanmarClassFor(r rune) MyanmarClass {
	switch r {
	case 0x1004, 0x101B, 0x105A: // Nga, Ra, Mon Nga form kinzi
		return MyKinzi
	case 0x1039:
		return MyHalant
	case 0x103A:
		return MyAsat
	case 0x103C:
		return MyMedialRa
	case 0x103B, 0x103D, 0x103E, 0x105E, 0x105F, 0x1060, 0x1082:
		return MyMedial
	case 0x1031, 0x1084:
		return MyVPre
	case 0x102F, 0x1030, 0x1058, 0x1059:
		return MyVBlw
	case 0x102D, 0x102E, 0x1032, 0x1033, 0x1034, 0x1035,
		0x1071, 0x1072, 0x1073, 0x1074, 0x1085, 0x1086, 0x109D:
		return MyVAbv
	case 0x102B, 0x102C, 0x1056, 0x1057, 0x1062, 0x1067, 0x1068, 0x1083:
		return MyVPst
	case 0x1036:
		return MyAnusvara
	case 0x1037, 0x1038, 0x1063, 0x1064, 0x1069, 0x106A, 0x106B,
		0x106C, 0x106D, 0x1087, 0x1088, 0x1089, 0x108A, 0x108B,
		0x108C, 0x108D, 0x108F, 0x109A, 0x109B, 0x109C:
		return MyMark
	}
	switch {
	case r >= 0x1000 && r <= 0x102A, r == 0x103F,
		r >= 0x1040 && r <= 0x1049, r >= 0x1050 && r <= 0x1055,
		r >= 0x105B && r <= 0x105D, r == 0x1061, r >= 0x1065 && r <= 0x1066,
		r >= 0x106E && r <= 0x1070, r >= 0x1075 && r <= 0x1081,
		r == 0x108E, r >= 0x1090 && r <= 0x1099:
		return MyBase
	case r >= 0xA9E0 && r <= 0xA9FE, r >= 0xAA60 && r <= 0xAA7A:
		return MyBase
	case r >= 0xAA7B && r <= 0xAA7D:
		return MyMark
	case r == 0x25CC: // dotted circle acts as a placeholder base
		return MyBase
	}
	return MyOther
}
