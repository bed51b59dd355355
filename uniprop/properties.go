package uniprop

import (
	"sync"

	"github.com/npillmayer/clusters/internal/tracing"
)

// Properties is a compact handle on the Unicode properties of a single
// character: a 13 bit index into an interned record table plus 3 spare
// bits reserved for boundary flags attached by higher layers. It is a
// plain value, cheap to copy and to compare.
//
// A Properties value is only ever produced by PropertiesFor, so the
// record index is always in bounds.
type Properties uint16

const (
	recordMask    = 0x1FFF
	boundaryShift = 13
)

// record holds the resolved properties of a character. Records are
// deduplicated: characters sharing all property values share a record.
type record struct {
	category Category
	script   Script
	ccc      uint8
	bidi     BidiClass
	joining  JoiningType
	cluster  ClusterBreak
	word     WordBreak
	line     LineBreak
	use      UseClass
	myanmar  MyanmarClass
	flags    recordFlags
}

type recordFlags uint16

const (
	flagEmoji recordFlags = 1 << iota
	flagExtPictographic
	flagOpenBracket
	flagCloseBracket
	flagIgnorable
	flagVariationSelector
	flagContributes
	flagNeedsDecomp
)

// recordStore interns property records. records[0] is the default
// record, describing an unassigned codepoint; every Properties value
// with an unknown index degrades to it.
var recordStore struct {
	sync.RWMutex
	records []record
	index   map[record]uint16
	byRune  map[rune]uint16
}

var recordOnce sync.Once

func setupRecords() {
	deflt := record{flags: flagContributes}
	recordStore.records = []record{deflt}
	recordStore.index = map[record]uint16{deflt: 0}
	recordStore.byRune = make(map[rune]uint16)
}

// PropertiesFor looks up the Unicode properties of a character. The
// lookup is total: codepoints outside any assigned range resolve to a
// default record. Repeated lookups of the same character are O(1).
func PropertiesFor(r rune) Properties {
	recordOnce.Do(setupRecords)
	recordStore.RLock()
	inx, ok := recordStore.byRune[r]
	recordStore.RUnlock()
	if ok {
		return Properties(inx)
	}
	rec := buildRecord(r)
	recordStore.Lock()
	defer recordStore.Unlock()
	if inx, ok = recordStore.byRune[r]; ok { // raced with another lookup
		return Properties(inx)
	}
	inx, ok = recordStore.index[rec]
	if !ok {
		if len(recordStore.records) > recordMask {
			tracing.P("char", r).Errorf("property record table full")
			inx = 0
		} else {
			inx = uint16(len(recordStore.records))
			recordStore.records = append(recordStore.records, rec)
			recordStore.index[rec] = inx
		}
	}
	recordStore.byRune[r] = inx
	return Properties(inx)
}

func (p Properties) record() record {
	recordStore.RLock()
	defer recordStore.RUnlock()
	inx := int(p & recordMask)
	if inx >= len(recordStore.records) {
		inx = 0
	}
	return recordStore.records[inx]
}

// Category returns the Unicode general category.
func (p Properties) Category() Category {
	return p.record().category
}

// Script returns the Unicode script.
func (p Properties) Script() Script {
	return p.record().script
}

// CombiningClass returns the canonical combining class.
func (p Properties) CombiningClass() uint8 {
	return p.record().ccc
}

// BidiClass returns the bidirectional type (UAX#9).
func (p Properties) BidiClass() BidiClass {
	return p.record().bidi
}

// JoiningType returns the cursive joining behavior.
func (p Properties) JoiningType() JoiningType {
	return p.record().joining
}

// ClusterBreak returns the grapheme cluster break property.
func (p Properties) ClusterBreak() ClusterBreak {
	return p.record().cluster
}

// WordBreak returns the word break property.
func (p Properties) WordBreak() WordBreak {
	return p.record().word
}

// LineBreak returns the line break property.
func (p Properties) LineBreak() LineBreak {
	return p.record().line
}

// UseClass returns the auxiliary class consumed by the generic complex
// cluster engine.
func (p Properties) UseClass() UseClass {
	return p.record().use
}

// MyanmarClass returns the auxiliary class consumed by the Myanmar
// cluster engine.
func (p Properties) MyanmarClass() MyanmarClass {
	return p.record().myanmar
}

// IsEmoji checks for the UTS#51 Emoji property.
func (p Properties) IsEmoji() bool {
	return p.record().flags&flagEmoji != 0
}

// IsExtendedPictographic checks for the UTS#51 Extended_Pictographic
// property.
func (p Properties) IsExtendedPictographic() bool {
	return p.record().flags&flagExtPictographic != 0
}

// IsOpenBracket checks if the character is an opening paired bracket.
func (p Properties) IsOpenBracket() bool {
	return p.record().flags&flagOpenBracket != 0
}

// IsCloseBracket checks if the character is a closing paired bracket.
func (p Properties) IsCloseBracket() bool {
	return p.record().flags&flagCloseBracket != 0
}

// IsIgnorable checks if the character is default-ignorable.
func (p Properties) IsIgnorable() bool {
	return p.record().flags&flagIgnorable != 0
}

// IsVariationSelector checks if the character is a variation selector.
func (p Properties) IsVariationSelector() bool {
	return p.record().flags&flagVariationSelector != 0
}

// ContributesToShaping is false for characters a glyph mapping step
// should not consider at all (ignorables and controls).
func (p Properties) ContributesToShaping() bool {
	return p.record().flags&flagContributes != 0
}

// NeedsDecomposition is true for characters with a canonical
// decomposition, which should be decomposed before cluster analysis.
func (p Properties) NeedsDecomposition() bool {
	return p.record().flags&flagNeedsDecomp != 0
}

// Boundary returns the 3 boundary bits attached to the property value.
func (p Properties) Boundary() uint8 {
	return uint8(p >> boundaryShift)
}

// WithBoundary returns a copy of the property value with the boundary
// bits set.
func (p Properties) WithBoundary(b uint8) Properties {
	return p&recordMask | Properties(b&0x7)<<boundaryShift
}

// SetBoundary attaches the boundary bits in place.
func (p *Properties) SetBoundary(b uint8) {
	*p = p.WithBoundary(b)
}
