package uniprop

import "unicode"

// Curated range tables for properties the stdlib does not carry.
// Sources: DerivedCoreProperties.txt (Default_Ignorable_Code_Point),
// GraphemeBreakProperty.txt (Prepend), and the variation selector
// blocks of UnicodeData.txt.

// defaultIgnorable covers Default_Ignorable_Code_Point.
var defaultIgnorable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x00AD, 0x00AD, 1},
		{0x034F, 0x034F, 1},
		{0x061C, 0x061C, 1},
		{0x115F, 0x1160, 1},
		{0x17B4, 0x17B5, 1},
		{0x180B, 0x180E, 1},
		{0x200B, 0x200F, 1},
		{0x202A, 0x202E, 1},
		{0x2060, 0x206F, 1},
		{0x3164, 0x3164, 1},
		{0xFE00, 0xFE0F, 1},
		{0xFEFF, 0xFEFF, 1},
		{0xFFA0, 0xFFA0, 1},
		{0xFFF0, 0xFFF8, 1},
	},
	R32: []unicode.Range32{
		{0x1BCA0, 0x1BCA3, 1},
		{0x1D173, 0x1D17A, 1},
		{0xE0000, 0xE0FFF, 1},
	},
}

// variationSelectors covers the VS1..VS256 selector blocks plus the
// Mongolian free variation selectors.
var variationSelectors = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x180B, 0x180D, 1},
		{0xFE00, 0xFE0F, 1},
	},
	R32: []unicode.Range32{
		{0xE0100, 0xE01EF, 1},
	},
}

// prepend covers the Prepend grapheme cluster break class.
var prepend = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0600, 0x0605, 1},
		{0x06DD, 0x06DD, 1},
		{0x070F, 0x070F, 1},
		{0x08E2, 0x08E2, 1},
		{0x0D4E, 0x0D4E, 1},
	},
	R32: []unicode.Range32{
		{0x110BD, 0x110BD, 1},
		{0x110CD, 0x110CD, 1},
		{0x111C2, 0x111C3, 1},
		{0x1193F, 0x1193F, 1},
		{0x11941, 0x11941, 1},
		{0x11A3A, 0x11A3A, 1},
		{0x11A84, 0x11A89, 1},
		{0x11D46, 0x11D46, 1},
	},
}

// bracketPairList lists the canonical paired brackets of
// BidiBrackets.txt, opening bracket first.
var bracketPairList = [][2]rune{
	{0x0028, 0x0029}, // parentheses
	{0x005B, 0x005D}, // square brackets
	{0x007B, 0x007D}, // curly brackets
	{0x0F3A, 0x0F3B}, // Tibetan gug rtags
	{0x0F3C, 0x0F3D},
	{0x169B, 0x169C}, // Ogham feather marks
	{0x2045, 0x2046},
	{0x207D, 0x207E},
	{0x208D, 0x208E},
	{0x2308, 0x2309}, // ceilings
	{0x230A, 0x230B}, // floors
	{0x2329, 0x232A},
	{0x2768, 0x2769},
	{0x276A, 0x276B},
	{0x276C, 0x276D},
	{0x276E, 0x276F},
	{0x2770, 0x2771},
	{0x2772, 0x2773},
	{0x2774, 0x2775},
	{0x27C5, 0x27C6},
	{0x27E6, 0x27E7},
	{0x27E8, 0x27E9},
	{0x27EA, 0x27EB},
	{0x27EC, 0x27ED},
	{0x27EE, 0x27EF},
	{0x2983, 0x2984},
	{0x2985, 0x2986},
	{0x2987, 0x2988},
	{0x2989, 0x298A},
	{0x298B, 0x298C},
	{0x298D, 0x2990},
	{0x2991, 0x2992},
	{0x2993, 0x2994},
	{0x2995, 0x2996},
	{0x2997, 0x2998},
	{0x29D8, 0x29D9},
	{0x29DA, 0x29DB},
	{0x29FC, 0x29FD},
	{0x2E22, 0x2E23},
	{0x2E24, 0x2E25},
	{0x2E26, 0x2E27},
	{0x2E28, 0x2E29},
	{0x3008, 0x3009}, // CJK angle brackets
	{0x300A, 0x300B},
	{0x300C, 0x300D},
	{0x300E, 0x300F},
	{0x3010, 0x3011},
	{0x3014, 0x3015},
	{0x3016, 0x3017},
	{0x3018, 0x3019},
	{0x301A, 0x301B},
	{0xFE59, 0xFE5A},
	{0xFE5B, 0xFE5C},
	{0xFE5D, 0xFE5E},
	{0xFF08, 0xFF09},
	{0xFF3B, 0xFF3D},
	{0xFF5B, 0xFF5D},
	{0xFF5F, 0xFF60},
	{0xFF62, 0xFF63},
}

// mirrorPairList lists mirrored glyph pairings from
// BidiMirroring.txt that are not paired brackets.
var mirrorPairList = [][2]rune{
	{0x003C, 0x003E}, // less-than / greater-than
	{0x00AB, 0x00BB}, // guillemets
	{0x2039, 0x203A},
	{0x2208, 0x220B}, // element of
	{0x2209, 0x220C},
	{0x220A, 0x220D},
	{0x2215, 0x29F5}, // division slash
	{0x223C, 0x223D}, // tilde operator
	{0x2243, 0x22CD},
	{0x2252, 0x2253},
	{0x2254, 0x2255},
	{0x2264, 0x2265}, // less/greater or equal
	{0x2266, 0x2267},
	{0x226A, 0x226B},
	{0x2276, 0x2277},
	{0x2278, 0x2279},
	{0x227A, 0x227B},
	{0x227C, 0x227D},
	{0x2282, 0x2283}, // subset / superset
	{0x2284, 0x2285},
	{0x2286, 0x2287},
	{0x2288, 0x2289},
	{0x22A2, 0x22A3}, // turnstiles
	{0x22B0, 0x22B1},
	{0x22D6, 0x22D7},
	{0x22DC, 0x22DD},
	{0x29B8, 0x2298},
}
