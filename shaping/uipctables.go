package shaping

// This file has been generated -- you probably should NOT EDIT IT !
//
// tablegen -f 2 -p shaping -o uipctables.go -x UIPC
//          -u https://www.unicode.org/Public/13.0.0/ucd/IndicPositionalCategory.txt
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)

import "unicode"

// UIPC_Left is the range table for positional category Left.
var UIPC_Left = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x093F, 0x093F, 1},
		{0x094E, 0x094E, 1},
		{0x09BF, 0x09BF, 1},
		{0x09C7, 0x09C8, 1},
		{0x0A3F, 0x0A3F, 1},
		{0x0ABF, 0x0ABF, 1},
		{0x0B47, 0x0B47, 1},
		{0x0BC6, 0x0BC8, 1},
		{0x0D46, 0x0D48, 1},
		{0x0DD9, 0x0DDB, 1},
		{0x17C1, 0x17C3, 1},
		{0x1C34, 0x1C35, 1},
	},
}

// UIPC_Top is the range table for positional category Top.
var UIPC_Top = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x093A, 0x093A, 1},
		{0x0945, 0x0948, 1},
		{0x0955, 0x0955, 1},
		{0x0A47, 0x0A48, 1},
		{0x0A4B, 0x0A4C, 1},
		{0x0AC5, 0x0AC5, 1},
		{0x0AC7, 0x0AC8, 1},
		{0x0B3F, 0x0B3F, 1},
		{0x0B48, 0x0B48, 1},
		{0x0B56, 0x0B56, 1},
		{0x0BC0, 0x0BC0, 1},
		{0x0C3E, 0x0C40, 1},
		{0x0C46, 0x0C48, 1},
		{0x0C4A, 0x0C4C, 1},
		{0x0C55, 0x0C55, 1},
		{0x0CBF, 0x0CBF, 1},
		{0x0CC6, 0x0CC6, 1},
		{0x0DD2, 0x0DD3, 1},
		{0x0F72, 0x0F72, 1},
		{0x0F7A, 0x0F7D, 1},
		{0x0F80, 0x0F81, 1},
		{0x17B7, 0x17BA, 1},
	},
}

// UIPC_Bottom is the range table for positional category Bottom.
var UIPC_Bottom = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0941, 0x0944, 1},
		{0x0956, 0x0957, 1},
		{0x0962, 0x0963, 1},
		{0x09C1, 0x09C4, 1},
		{0x09E2, 0x09E3, 1},
		{0x0A41, 0x0A42, 1},
		{0x0AC1, 0x0AC4, 1},
		{0x0B41, 0x0B44, 1},
		{0x0B62, 0x0B63, 1},
		{0x0C56, 0x0C56, 1},
		{0x0C62, 0x0C63, 1},
		{0x0CCC, 0x0CCC, 1},
		{0x0CE2, 0x0CE3, 1},
		{0x0D62, 0x0D63, 1},
		{0x0DD4, 0x0DD4, 1},
		{0x0DD6, 0x0DD6, 1},
		{0x0F71, 0x0F71, 1},
		{0x0F74, 0x0F75, 1},
		{0x0F84, 0x0F84, 1},
		{0x0F90, 0x0FBC, 1},
		{0x17BB, 0x17BD, 1},
	},
}

// UIPC_Right is the range table for positional category Right.
var UIPC_Right = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x093B, 0x093B, 1},
		{0x093E, 0x093E, 1},
		{0x0940, 0x0940, 1},
		{0x0949, 0x094C, 1},
		{0x094F, 0x094F, 1},
		{0x09BE, 0x09BE, 1},
		{0x09C0, 0x09C0, 1},
		{0x09D7, 0x09D7, 1},
		{0x0A3E, 0x0A3E, 1},
		{0x0A40, 0x0A40, 1},
		{0x0ABE, 0x0ABE, 1},
		{0x0AC0, 0x0AC0, 1},
		{0x0AC9, 0x0AC9, 1},
		{0x0ACB, 0x0ACC, 1},
		{0x0B3E, 0x0B3E, 1},
		{0x0B40, 0x0B40, 1},
		{0x0B57, 0x0B57, 1},
		{0x0BBE, 0x0BBF, 1},
		{0x0BC1, 0x0BC2, 1},
		{0x0BD7, 0x0BD7, 1},
		{0x0C41, 0x0C44, 1},
		{0x0CBE, 0x0CBE, 1},
		{0x0CC0, 0x0CC4, 1},
		{0x0CC7, 0x0CC8, 1},
		{0x0CCA, 0x0CCB, 1},
		{0x0CD5, 0x0CD6, 1},
		{0x0D3E, 0x0D44, 1},
		{0x0D57, 0x0D57, 1},
		{0x0DCF, 0x0DD1, 1},
		{0x0DD8, 0x0DD8, 1},
		{0x0DDF, 0x0DDF, 1},
		{0x0DF2, 0x0DF3, 1},
		{0x17B6, 0x17B6, 1},
		{0x17C8, 0x17C8, 1},
	},
}

// UIPC_Left_And_Right is the range table for positional category Left_And_Right.
var UIPC_Left_And_Right = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x09CB, 0x09CC, 1},
		{0x0B4B, 0x0B4C, 1},
		{0x0BCA, 0x0BCC, 1},
		{0x0D4A, 0x0D4C, 1},
		{0x0DDC, 0x0DDE, 1},
		{0x17BE, 0x17C0, 1},
		{0x17C4, 0x17C5, 1},
	},
}
