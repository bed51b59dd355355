package uniprop

import (
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/text/unicode/norm"
)

// BracketType tells whether a character opens or closes a bracket pair.
type BracketType uint8

// Bracket types.
const (
	BracketNone BracketType = iota
	BracketOpen
	BracketClose
)

var pairingOnce sync.Once

// openToClose and closeToOpen hold the paired bracket mapping, mirrors
// holds the full mirrored glyph mapping in both directions.
var openToClose, closeToOpen, mirrors *treemap.Map

func setupPairings() {
	openToClose = treemap.NewWith(utils.Int32Comparator)
	closeToOpen = treemap.NewWith(utils.Int32Comparator)
	mirrors = treemap.NewWith(utils.Int32Comparator)
	for _, pair := range bracketPairList {
		openToClose.Put(int32(pair[0]), int32(pair[1]))
		closeToOpen.Put(int32(pair[1]), int32(pair[0]))
		mirrors.Put(int32(pair[0]), int32(pair[1]))
		mirrors.Put(int32(pair[1]), int32(pair[0]))
	}
	for _, pair := range mirrorPairList {
		mirrors.Put(int32(pair[0]), int32(pair[1]))
		mirrors.Put(int32(pair[1]), int32(pair[0]))
	}
}

// BracketTypeOf checks whether a character is a paired bracket. For
// brackets it returns the bracket type together with the matching
// bracket character; for all other characters it returns BracketNone.
func BracketTypeOf(r rune) (BracketType, rune) {
	pairingOnce.Do(setupPairings)
	if other, ok := openToClose.Get(int32(r)); ok {
		return BracketOpen, rune(other.(int32))
	}
	if other, ok := closeToOpen.Get(int32(r)); ok {
		return BracketClose, rune(other.(int32))
	}
	return BracketNone, 0
}

// Mirror returns the mirrored counterpart of a character, if any.
func Mirror(r rune) (rune, bool) {
	pairingOnce.Do(setupPairings)
	if other, ok := mirrors.Get(int32(r)); ok {
		return rune(other.(int32)), true
	}
	return 0, false
}

// ComposePair composes two characters canonically, returning false if
// no canonical composition exists.
func ComposePair(a, b rune) (rune, bool) {
	composed := []rune(norm.NFC.String(string([]rune{a, b})))
	if len(composed) == 1 && composed[0] != a {
		return composed[0], true
	}
	return 0, false
}

// Decompose returns the canonical decomposition of a character. For
// characters without a decomposition the result is the character
// itself.
func Decompose(r rune) []rune {
	return []rune(norm.NFD.String(string(r)))
}

// DecomposeCompatible returns the compatibility decomposition of a
// character.
func DecomposeCompatible(r rune) []rune {
	return []rune(norm.NFKD.String(string(r)))
}
