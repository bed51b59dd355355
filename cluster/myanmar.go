package cluster

import (
	"github.com/npillmayer/clusters/uniprop"
)

// myanmarEngine implements cluster formation for the Myanmar script,
// which diverges from the generic Indic model in one prominent way:
// the kinzi, a three character prefix (a kinzi-forming consonant,
// asat U+103A and the halant U+1039) that precedes the base consonant
// in logical order and must stay pre-base in the emitted cluster.
//
// A kinzi candidate is only recognized once the following base
// consonant arrives; until then the prefix characters carry their
// plain classifications. This avoids lookahead buffering beyond the
// one pending character the parser allows.
type myanmarEngine struct {
	engineState
}

func (e *myanmarEngine) next(src Source, dst *Cluster) bool {
	cur, ok := e.take(src)
	if !ok {
		return false
	}
	haveBase := false
	afterHalant := false
	kinziCandidate := false
	for {
		props := cur.Info.Properties()
		mc := props.MyanmarClass()

		if e.syl.empty() {
			switch mc {
			case uniprop.MyBase, uniprop.MyKinzi:
				e.syl.push(cur, Base)
				haveBase = true
			case uniprop.MyAsat, uniprop.MyHalant, uniprop.MyMedialRa,
				uniprop.MyMedial, uniprop.MyVPre, uniprop.MyVBlw,
				uniprop.MyVAbv, uniprop.MyVPst, uniprop.MyAnusvara,
				uniprop.MyMark:
				e.syl.push(cur, myanmarShape(mc))
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
				switch mc {
				case uniprop.MyAsat:
					e.syl.push(cur, Halant)
				case uniprop.MyHalant:
					e.syl.push(cur, Halant)
					afterHalant = true
					// A kinzi-capable consonant followed by asat and
					// halant at the start of the syllable may turn out
					// to be a kinzi prefix.
					if e.syl.n == 3 && cur.Ch == 0x1039 &&
						e.syl.chars[0].Info.Properties().MyanmarClass() == uniprop.MyKinzi &&
						e.syl.chars[1].Ch == 0x103A {
						kinziCandidate = true
					}
				case uniprop.MyBase, uniprop.MyKinzi:
					switch {
					case kinziCandidate:
						// the prefix was a kinzi; the base role moves
						// to this consonant
						e.syl.shapes[0] = Kinzi
						e.syl.shapes[1] = Kinzi
						e.syl.shapes[2] = Kinzi
						e.syl.push(cur, Base)
						kinziCandidate = false
						afterHalant = false
					case afterHalant:
						e.syl.push(cur, Base) // stacked consonant
						afterHalant = false
					default:
						e.stash(cur)
						e.syl.emit(dst, !haveBase)
						return true
					}
				case uniprop.MyMedialRa:
					e.syl.push(cur, MedialRa)
					afterHalant, kinziCandidate = false, false
				case uniprop.MyMedial:
					e.syl.push(cur, Mark)
					afterHalant, kinziCandidate = false, false
				case uniprop.MyVPre:
					e.syl.push(cur, VPre)
					afterHalant, kinziCandidate = false, false
				case uniprop.MyVBlw:
					e.syl.push(cur, VBlw)
					afterHalant, kinziCandidate = false, false
				case uniprop.MyVAbv, uniprop.MyVPst, uniprop.MyMark:
					e.syl.push(cur, Mark)
					afterHalant, kinziCandidate = false, false
				case uniprop.MyAnusvara:
					e.syl.push(cur, Anusvara)
					afterHalant, kinziCandidate = false, false
				default:
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

func myanmarShape(mc uniprop.MyanmarClass) ShapeClass {
	switch mc {
	case uniprop.MyBase, uniprop.MyKinzi:
		return Base
	case uniprop.MyAsat, uniprop.MyHalant:
		return Halant
	case uniprop.MyMedialRa:
		return MedialRa
	case uniprop.MyVPre:
		return VPre
	case uniprop.MyVBlw:
		return VBlw
	case uniprop.MyAnusvara:
		return Anusvara
	case uniprop.MyMedial, uniprop.MyVAbv, uniprop.MyVPst, uniprop.MyMark:
		return Mark
	}
	return Other
}
