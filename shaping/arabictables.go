package shaping

// This file has been generated -- you probably should NOT EDIT IT !
//
// tablegen -f 3 -p shaping -o arabictables.go -x ARAB
//          -u https://www.unicode.org/Public/13.0.0/ucd/ArabicShaping.txt
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)

import "unicode"

// ARAB_C is the range table for joining type C (join-causing).
var ARAB_C = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0640, 0x0640, 1},
		{0x07FA, 0x07FA, 1},
		{0x200D, 0x200D, 1},
	},
}

// ARAB_D is the range table for joining type D (dual-joining).
var ARAB_D = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0620, 0x0620, 1},
		{0x0626, 0x0626, 1},
		{0x0628, 0x0628, 1},
		{0x062A, 0x062E, 1},
		{0x0633, 0x063F, 1},
		{0x0641, 0x0647, 1},
		{0x0649, 0x064A, 1},
		{0x066E, 0x066F, 1},
		{0x0678, 0x0687, 1},
		{0x069A, 0x06BF, 1},
		{0x06C1, 0x06C2, 1},
		{0x06CC, 0x06CC, 1},
		{0x06CE, 0x06CE, 1},
		{0x06D0, 0x06D1, 1},
		{0x06FA, 0x06FC, 1},
		{0x06FF, 0x06FF, 1},
		{0x0712, 0x0714, 1},
		{0x0717, 0x071D, 1},
		{0x071F, 0x0727, 1},
		{0x0729, 0x0729, 1},
		{0x072B, 0x072B, 1},
		{0x072D, 0x072F, 1},
		{0x07CA, 0x07EA, 1},
		{0x0841, 0x0858, 1},
		{0x1820, 0x1878, 1},
		{0x1880, 0x18AA, 1},
		{0xA840, 0xA871, 1},
	},
	R32: []unicode.Range32{
		{0x10AC0, 0x10AC4, 1},
		{0x10B80, 0x10B91, 1},
		{0x1E900, 0x1E943, 1},
	},
}

// ARAB_L is the range table for joining type L (left-joining).
var ARAB_L = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0xA872, 0xA872, 1},
	},
}

// ARAB_R is the range table for joining type R (right-joining).
var ARAB_R = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0622, 0x0625, 1},
		{0x0627, 0x0627, 1},
		{0x0629, 0x0629, 1},
		{0x062F, 0x0632, 1},
		{0x0648, 0x0648, 1},
		{0x0671, 0x0673, 1},
		{0x0675, 0x0677, 1},
		{0x0688, 0x0699, 1},
		{0x06C0, 0x06C0, 1},
		{0x06C3, 0x06CB, 1},
		{0x06CD, 0x06CD, 1},
		{0x06CF, 0x06CF, 1},
		{0x06D2, 0x06D3, 1},
		{0x06D5, 0x06D5, 1},
		{0x0710, 0x0710, 1},
		{0x0715, 0x0716, 1},
		{0x071E, 0x071E, 1},
		{0x0728, 0x0728, 1},
		{0x072A, 0x072A, 1},
		{0x072C, 0x072C, 1},
	},
}
