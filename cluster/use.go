package cluster

import (
	"github.com/npillmayer/clusters/uniprop"
)

// useEngine is the generic complex-script engine, covering the
// Indic-family scripts routed through the Universal Shaping Engine
// model. It accumulates one syllable per cluster, keyed on the Use
// class of each character: an optional repha prefix, exactly one base,
// halant+consonant continuations, dependent vowels split by position,
// and trailing joiners and selectors.
//
// Malformed syllables are recovered, never fatal: a dependent mark
// without a base becomes its own minimal cluster flagged broken.
type useEngine struct {
	engineState
}

func (e *useEngine) next(src Source, dst *Cluster) bool {
	cur, ok := e.take(src)
	if !ok {
		return false
	}
	haveBase := false
	afterHalant := false
	for {
		props := cur.Info.Properties()
		uc := props.UseClass()

		if e.syl.empty() {
			switch uc {
			case uniprop.UseReph:
				e.syl.push(cur, Reph)
			case uniprop.UseBase:
				e.syl.push(cur, Base)
				haveBase = true
			case uniprop.UseHalant, uniprop.UseVPre, uniprop.UseVBlw,
				uniprop.UseMark, uniprop.UseAnusvara, uniprop.UseVmPre:
				// A dependent character with nothing to attach to.
				e.syl.push(cur, useShape(uc))
				e.syl.emit(dst, true)
				return true
			default:
				return e.emitOther(src, cur, dst)
			}
		} else {
			if e.syl.full() {
				e.stash(cur)
				e.syl.emit(dst, !haveBase)
				return true
			}
			switch {
			case cur.Ch == 0x200D:
				e.syl.push(cur, Zwj)
			case cur.Ch == 0x200C:
				e.syl.push(cur, Zwnj)
			case props.IsVariationSelector():
				e.syl.push(cur, Vs)
			default:
				switch uc {
				case uniprop.UseHalant:
					e.syl.push(cur, Halant)
					afterHalant = true
				case uniprop.UseBase:
					switch {
					case !haveBase:
						e.syl.push(cur, Base)
						haveBase = true
						afterHalant = false
					case afterHalant:
						// halant+consonant continues the syllable; the
						// Khmer Ro takes its pre-base form
						shape := Base
						if cur.Ch == 0x179A {
							shape = Pref
						}
						e.syl.push(cur, shape)
						afterHalant = false
					default:
						e.stash(cur)
						e.syl.emit(dst, false)
						return true
					}
				case uniprop.UseVPre, uniprop.UseVBlw, uniprop.UseMark,
					uniprop.UseAnusvara, uniprop.UseVmPre:
					if !haveBase {
						// repha prefix without a base
						e.syl.push(cur, useShape(uc))
						e.syl.emit(dst, true)
						return true
					}
					e.syl.push(cur, useShape(uc))
					afterHalant = false
				default: // UseReph or UseOther end the syllable
					e.stash(cur)
					e.syl.emit(dst, !haveBase)
					return true
				}
			}
		}
		nxt, ok := src.Next()
		if !ok {
			e.syl.emit(dst, !haveBase)
			return true
		}
		cur = nxt
	}
}

func useShape(uc uniprop.UseClass) ShapeClass {
	switch uc {
	case uniprop.UseReph:
		return Reph
	case uniprop.UseBase:
		return Base
	case uniprop.UseHalant:
		return Halant
	case uniprop.UseVPre:
		return VPre
	case uniprop.UseVBlw:
		return VBlw
	case uniprop.UseAnusvara:
		return Anusvara
	case uniprop.UseVmPre:
		return VmPre
	case uniprop.UseMark:
		return Mark
	}
	return Other
}
