package cluster

import (
	"github.com/npillmayer/clusters/uniprop"
)

// simpleEngine is the default segmentation path for scripts without
// script-specific shaping reordering. It approximates the Unicode
// extended grapheme cluster rule over the cluster break property of
// each character. Output order equals input order and clusters are
// never marked broken.
type simpleEngine struct {
	engineState
}

func (e *simpleEngine) next(src Source, dst *Cluster) bool {
	cur, ok := e.take(src)
	if !ok {
		return false
	}
	props := cur.Info.Properties()
	cb := props.ClusterBreak()
	e.syl.push(cur, simpleShapeClass(cur.Ch, props))
	riRun := 0
	if cb == uniprop.CbRegionalIndicator {
		riRun = 1
	}
	pictLink := props.IsExtendedPictographic()
	zwjAfterPict := false
	for {
		nxt, ok := src.Next()
		if !ok {
			e.syl.emit(dst, false)
			return true
		}
		nprops := nxt.Info.Properties()
		ncb := nprops.ClusterBreak()
		gb11 := cb == uniprop.CbZWJ && zwjAfterPict && nprops.IsExtendedPictographic()
		if e.syl.full() || graphemeBreak(cb, ncb, riRun, gb11) {
			e.stash(nxt)
			e.syl.emit(dst, false)
			return true
		}
		e.syl.push(nxt, simpleShapeClass(nxt.Ch, nprops))
		if ncb == uniprop.CbRegionalIndicator {
			riRun++
		} else {
			riRun = 0
		}
		zwjAfterPict = pictLink && ncb == uniprop.CbZWJ
		switch {
		case nprops.IsExtendedPictographic():
			pictLink = true
		case ncb == uniprop.CbExtend:
			// GB11 allows Extend* between pictograph and ZWJ
		default:
			pictLink = false
		}
		cb = ncb
	}
}

// graphemeBreak decides whether an extended grapheme cluster boundary
// falls between two adjacent characters (rules GB3–GB13 of UAX#29).
// riRun is the length of the regional indicator run ending at the
// first character; gb11 is true if the ZWJ-emoji continuation rule
// applies.
func graphemeBreak(prev, next uniprop.ClusterBreak, riRun int, gb11 bool) bool {
	switch {
	case prev == uniprop.CbCR && next == uniprop.CbLF:
		return false // GB3
	case prev == uniprop.CbControl || prev == uniprop.CbCR || prev == uniprop.CbLF:
		return true // GB4
	case next == uniprop.CbControl || next == uniprop.CbCR || next == uniprop.CbLF:
		return true // GB5
	case prev == uniprop.CbHangulL &&
		(next == uniprop.CbHangulL || next == uniprop.CbHangulV ||
			next == uniprop.CbHangulLV || next == uniprop.CbHangulLVT):
		return false // GB6
	case (prev == uniprop.CbHangulLV || prev == uniprop.CbHangulV) &&
		(next == uniprop.CbHangulV || next == uniprop.CbHangulT):
		return false // GB7
	case (prev == uniprop.CbHangulLVT || prev == uniprop.CbHangulT) &&
		next == uniprop.CbHangulT:
		return false // GB8
	case next == uniprop.CbExtend || next == uniprop.CbZWJ:
		return false // GB9
	case next == uniprop.CbSpacingMark:
		return false // GB9a
	case prev == uniprop.CbPrepend:
		return false // GB9b
	case gb11:
		return false // GB11
	case prev == uniprop.CbRegionalIndicator && next == uniprop.CbRegionalIndicator:
		return riRun%2 == 0 // GB12, GB13
	}
	return true // GB999
}

// simpleShapeClass assigns the shaping role of a character on the
// simple path: Base unless the character is a mark, a variation
// selector, a joiner or a control.
func simpleShapeClass(r rune, props uniprop.Properties) ShapeClass {
	switch r {
	case 0x200D:
		return Zwj
	case 0x200C:
		return Zwnj
	}
	if props.IsVariationSelector() {
		return Vs
	}
	switch props.ClusterBreak() {
	case uniprop.CbControl, uniprop.CbCR, uniprop.CbLF:
		return Control
	}
	if props.CombiningClass() != 0 || props.Category().IsMark() {
		return Mark
	}
	return Base
}
