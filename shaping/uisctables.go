package shaping

// This file has been generated -- you probably should NOT EDIT IT !
//
// tablegen -f 2 -p shaping -o uisctables.go -x UISC
//          -u https://www.unicode.org/Public/13.0.0/ucd/IndicSyllabicCategory.txt
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)

import "unicode"

// UISC_Avagraha is the range table for syllabic category Avagraha.
var UISC_Avagraha = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x093D, 0x093D, 1},
		{0x09BD, 0x09BD, 1},
		{0x0ABD, 0x0ABD, 1},
		{0x0B3D, 0x0B3D, 1},
		{0x0CBD, 0x0CBD, 1},
		{0x0D3D, 0x0D3D, 1},
	},
}

// UISC_Bindu is the range table for syllabic category Bindu.
var UISC_Bindu = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0900, 0x0902, 1},
		{0x0981, 0x0982, 1},
		{0x0A01, 0x0A02, 1},
		{0x0A70, 0x0A70, 1},
		{0x0A81, 0x0A82, 1},
		{0x0B01, 0x0B02, 1},
		{0x0B82, 0x0B82, 1},
		{0x0C00, 0x0C02, 1},
		{0x0C80, 0x0C82, 1},
		{0x0D00, 0x0D02, 1},
		{0x0D81, 0x0D82, 1},
		{0x0F7E, 0x0F7E, 1},
		{0x17C6, 0x17C6, 1},
		{0x1C34, 0x1C35, 1},
	},
}

// UISC_Consonant is the range table for syllabic category Consonant.
var UISC_Consonant = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0915, 0x0939, 1},
		{0x0958, 0x095F, 1},
		{0x0978, 0x097F, 1},
		{0x0995, 0x09A8, 1},
		{0x09AA, 0x09B0, 1},
		{0x09B2, 0x09B2, 1},
		{0x09B6, 0x09B9, 1},
		{0x09DC, 0x09DD, 1},
		{0x09DF, 0x09DF, 1},
		{0x09F0, 0x09F1, 1},
		{0x0A15, 0x0A28, 1},
		{0x0A2A, 0x0A30, 1},
		{0x0A32, 0x0A33, 1},
		{0x0A35, 0x0A36, 1},
		{0x0A38, 0x0A39, 1},
		{0x0A59, 0x0A5C, 1},
		{0x0A5E, 0x0A5E, 1},
		{0x0A95, 0x0AA8, 1},
		{0x0AAA, 0x0AB0, 1},
		{0x0AB2, 0x0AB3, 1},
		{0x0AB5, 0x0AB9, 1},
		{0x0AF9, 0x0AF9, 1},
		{0x0B15, 0x0B28, 1},
		{0x0B2A, 0x0B30, 1},
		{0x0B32, 0x0B33, 1},
		{0x0B35, 0x0B39, 1},
		{0x0B5C, 0x0B5D, 1},
		{0x0B5F, 0x0B5F, 1},
		{0x0B71, 0x0B71, 1},
		{0x0B95, 0x0B95, 1},
		{0x0B99, 0x0B9A, 1},
		{0x0B9C, 0x0B9C, 1},
		{0x0B9E, 0x0B9F, 1},
		{0x0BA3, 0x0BA4, 1},
		{0x0BA8, 0x0BAA, 1},
		{0x0BAE, 0x0BB9, 1},
		{0x0C15, 0x0C28, 1},
		{0x0C2A, 0x0C39, 1},
		{0x0C58, 0x0C5A, 1},
		{0x0C95, 0x0CA8, 1},
		{0x0CAA, 0x0CB3, 1},
		{0x0CB5, 0x0CB9, 1},
		{0x0CDE, 0x0CDE, 1},
		{0x0D15, 0x0D3A, 1},
		{0x0D9A, 0x0DB1, 1},
		{0x0DB3, 0x0DBB, 1},
		{0x0DBD, 0x0DBD, 1},
		{0x0DC0, 0x0DC6, 1},
		{0x0F40, 0x0F6C, 1},
		{0x1780, 0x17A2, 1},
	},
}

// UISC_Consonant_Dead is the range table for syllabic category Consonant_Dead.
var UISC_Consonant_Dead = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x09CE, 0x09CE, 1},
		{0x0D54, 0x0D56, 1},
		{0x0D7A, 0x0D7F, 1},
	},
}

// UISC_Consonant_Medial is the range table for syllabic category Consonant_Medial.
var UISC_Consonant_Medial = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0A75, 0x0A75, 1},
	},
}

// UISC_Consonant_Placeholder is the range table for syllabic category Consonant_Placeholder.
var UISC_Consonant_Placeholder = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0980, 0x0980, 1},
		{0x0A72, 0x0A74, 1},
		{0x25CC, 0x25CC, 1},
	},
}

// UISC_Consonant_Preceding_Repha is the range table for syllabic category Consonant_Preceding_Repha.
var UISC_Consonant_Preceding_Repha = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0D4E, 0x0D4E, 1},
	},
}

// UISC_Consonant_Subjoined is the range table for syllabic category Consonant_Subjoined.
var UISC_Consonant_Subjoined = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0F90, 0x0FBC, 1},
	},
}

// UISC_Invisible_Stacker is the range table for syllabic category Invisible_Stacker.
var UISC_Invisible_Stacker = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x17D2, 0x17D2, 1},
	},
}

// UISC_Nukta is the range table for syllabic category Nukta.
var UISC_Nukta = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x093C, 0x093C, 1},
		{0x09BC, 0x09BC, 1},
		{0x0A3C, 0x0A3C, 1},
		{0x0ABC, 0x0ABC, 1},
		{0x0B3C, 0x0B3C, 1},
		{0x0CBC, 0x0CBC, 1},
		{0x0F39, 0x0F39, 1},
	},
}

// UISC_Number is the range table for syllabic category Number.
var UISC_Number = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0966, 0x096F, 1},
		{0x09E6, 0x09EF, 1},
		{0x0A66, 0x0A6F, 1},
		{0x0AE6, 0x0AEF, 1},
		{0x0B66, 0x0B6F, 1},
		{0x0BE6, 0x0BEF, 1},
		{0x0C66, 0x0C6F, 1},
		{0x0CE6, 0x0CEF, 1},
		{0x0D66, 0x0D6F, 1},
		{0x0DE6, 0x0DEF, 1},
		{0x0F20, 0x0F29, 1},
		{0x17E0, 0x17E9, 1},
	},
}

// UISC_Pure_Killer is the range table for syllabic category Pure_Killer.
var UISC_Pure_Killer = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0D3B, 0x0D3C, 1},
		{0x0DCA, 0x0DCA, 1},
		{0x0F84, 0x0F84, 1},
	},
}

// UISC_Syllable_Modifier is the range table for syllabic category Syllable_Modifier.
var UISC_Syllable_Modifier = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0951, 0x0954, 1},
		{0x0A71, 0x0A71, 1},
		{0x0B55, 0x0B55, 1},
		{0x17C9, 0x17D1, 1},
		{0x17DD, 0x17DD, 1},
	},
}

// UISC_Virama is the range table for syllabic category Virama.
var UISC_Virama = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x094D, 0x094D, 1},
		{0x09CD, 0x09CD, 1},
		{0x0A4D, 0x0A4D, 1},
		{0x0ACD, 0x0ACD, 1},
		{0x0B4D, 0x0B4D, 1},
		{0x0BCD, 0x0BCD, 1},
		{0x0C4D, 0x0C4D, 1},
		{0x0CCD, 0x0CCD, 1},
		{0x0D4D, 0x0D4D, 1},
	},
}

// UISC_Visarga is the range table for syllabic category Visarga.
var UISC_Visarga = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0903, 0x0903, 1},
		{0x0983, 0x0983, 1},
		{0x0A03, 0x0A03, 1},
		{0x0A83, 0x0A83, 1},
		{0x0B03, 0x0B03, 1},
		{0x0B83, 0x0B83, 1},
		{0x0C03, 0x0C03, 1},
		{0x0C83, 0x0C83, 1},
		{0x0D03, 0x0D03, 1},
		{0x0D83, 0x0D83, 1},
		{0x0F7F, 0x0F7F, 1},
		{0x17C7, 0x17C7, 1},
	},
}

// UISC_Vowel_Dependent is the range table for syllabic category Vowel_Dependent.
var UISC_Vowel_Dependent = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x093A, 0x093B, 1},
		{0x093E, 0x094C, 1},
		{0x094E, 0x094F, 1},
		{0x0955, 0x0957, 1},
		{0x0962, 0x0963, 1},
		{0x09BE, 0x09C4, 1},
		{0x09C7, 0x09C8, 1},
		{0x09CB, 0x09CC, 1},
		{0x09D7, 0x09D7, 1},
		{0x09E2, 0x09E3, 1},
		{0x0A3E, 0x0A42, 1},
		{0x0A47, 0x0A48, 1},
		{0x0A4B, 0x0A4C, 1},
		{0x0ABE, 0x0AC5, 1},
		{0x0AC7, 0x0AC9, 1},
		{0x0ACB, 0x0ACC, 1},
		{0x0B3E, 0x0B44, 1},
		{0x0B47, 0x0B48, 1},
		{0x0B4B, 0x0B4C, 1},
		{0x0B56, 0x0B57, 1},
		{0x0B62, 0x0B63, 1},
		{0x0BBE, 0x0BC2, 1},
		{0x0BC6, 0x0BC8, 1},
		{0x0BCA, 0x0BCC, 1},
		{0x0BD7, 0x0BD7, 1},
		{0x0C3E, 0x0C44, 1},
		{0x0C46, 0x0C48, 1},
		{0x0C4A, 0x0C4C, 1},
		{0x0C55, 0x0C56, 1},
		{0x0C62, 0x0C63, 1},
		{0x0CBE, 0x0CC4, 1},
		{0x0CC6, 0x0CC8, 1},
		{0x0CCA, 0x0CCC, 1},
		{0x0CD5, 0x0CD6, 1},
		{0x0CE2, 0x0CE3, 1},
		{0x0D3E, 0x0D44, 1},
		{0x0D46, 0x0D48, 1},
		{0x0D4A, 0x0D4C, 1},
		{0x0D57, 0x0D57, 1},
		{0x0D62, 0x0D63, 1},
		{0x0DCF, 0x0DD4, 1},
		{0x0DD6, 0x0DD6, 1},
		{0x0DD8, 0x0DDF, 1},
		{0x0DF2, 0x0DF3, 1},
		{0x0F71, 0x0F7D, 1},
		{0x0F80, 0x0F81, 1},
		{0x17B6, 0x17C5, 1},
		{0x17C8, 0x17C8, 1},
	},
}

// UISC_Vowel_Independent is the range table for syllabic category Vowel_Independent.
var UISC_Vowel_Independent = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0904, 0x0914, 1},
		{0x0960, 0x0961, 1},
		{0x0972, 0x0977, 1},
		{0x0985, 0x098C, 1},
		{0x098F, 0x0990, 1},
		{0x0993, 0x0994, 1},
		{0x09E0, 0x09E1, 1},
		{0x0A05, 0x0A0A, 1},
		{0x0A0F, 0x0A10, 1},
		{0x0A13, 0x0A14, 1},
		{0x0A85, 0x0A8D, 1},
		{0x0A8F, 0x0A91, 1},
		{0x0A93, 0x0A94, 1},
		{0x0AE0, 0x0AE1, 1},
		{0x0B05, 0x0B0C, 1},
		{0x0B0F, 0x0B10, 1},
		{0x0B13, 0x0B14, 1},
		{0x0B60, 0x0B61, 1},
		{0x0B85, 0x0B8A, 1},
		{0x0B8E, 0x0B90, 1},
		{0x0B92, 0x0B94, 1},
		{0x0C05, 0x0C0C, 1},
		{0x0C0E, 0x0C10, 1},
		{0x0C12, 0x0C14, 1},
		{0x0C60, 0x0C61, 1},
		{0x0C85, 0x0C8C, 1},
		{0x0C8E, 0x0C90, 1},
		{0x0C92, 0x0C94, 1},
		{0x0CE0, 0x0CE1, 1},
		{0x0D05, 0x0D0C, 1},
		{0x0D0E, 0x0D10, 1},
		{0x0D12, 0x0D14, 1},
		{0x0D60, 0x0D61, 1},
		{0x0D85, 0x0D96, 1},
		{0x17A3, 0x17B3, 1},
	},
}
