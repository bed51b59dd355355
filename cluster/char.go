package cluster

import (
	"github.com/npillmayer/clusters/uniprop"
)

// UserData is an opaque 32 bit payload callers may attach to each
// input character; it travels unmodified into the output characters
// and is typically used to correlate output back to an external
// buffer.
type UserData = uint32

// ShapeClass is the shaping role of a character inside a cluster, in
// shaping priority order.
type ShapeClass uint8

// Shape classes.
const (
	Reph ShapeClass = iota
	Pref
	Kinzi
	Base
	Mark
	Halant
	MedialRa
	VmPre
	VPre
	VBlw
	Anusvara
	Zwj
	Zwnj
	Control
	Vs
	Other
)

var shapeClassNames = [...]string{
	"Reph", "Pref", "Kinzi", "Base", "Mark", "Halant", "MedialRa",
	"VmPre", "VPre", "VBlw", "Anusvara", "Zwj", "Zwnj", "Control",
	"Vs", "Other",
}

func (s ShapeClass) String() string {
	if int(s) < len(shapeClassNames) {
		return shapeClassNames[s]
	}
	return "Other"
}

// SourceChar is the input unit of the cluster parser: a character
// together with its position in the source text (in code units), its
// resolved properties and boundary flags, and an opaque user payload.
type SourceChar struct {
	Ch     rune
	Offset int
	Len    uint8
	Info   CharInfo
	Data   UserData
}

// Char is the output unit of the cluster parser. GlyphID is a
// placeholder, always 0; resolving it against a font is the job of a
// downstream shaper.
type Char struct {
	Ch                   rune
	Offset               int
	ShapeClass           ShapeClass
	JoiningType          uniprop.JoiningType
	Ignorable            bool
	ContributesToShaping bool
	GlyphID              uint32
	Data                 UserData
}

// DefaultChar returns a Char with the documented defaults: shape class
// Base, non-joining, contributing to shaping.
func DefaultChar() Char {
	return Char{
		ShapeClass:           Base,
		JoiningType:          uniprop.JoinU,
		ContributesToShaping: true,
	}
}

// Source is the input abstraction of the cluster parser: a cursor over
// source characters. Next returns false exactly when the input is
// exhausted.
type Source interface {
	Next() (SourceChar, bool)
}

// sliceSource is a Source over a pre-tagged slice.
type sliceSource struct {
	chars []SourceChar
	pos   int
}

// NewSliceSource wraps a slice of tagged characters as a Source.
func NewSliceSource(chars []SourceChar) Source {
	return &sliceSource{chars: chars}
}

func (s *sliceSource) Next() (SourceChar, bool) {
	if s.pos >= len(s.chars) {
		return SourceChar{}, false
	}
	sc := s.chars[s.pos]
	s.pos++
	return sc, true
}
