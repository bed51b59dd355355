package cluster

import (
	"fmt"
	"strings"

	"github.com/npillmayer/clusters/paragraph"
	"github.com/npillmayer/clusters/uniprop"
)

// CharInfo wraps the Unicode properties of a character together with
// its boundary signals, packed into the 3 spare bits of the property
// value. Boundary bits are set once, when the character is tagged, and
// read-only afterwards.
type CharInfo struct {
	props uniprop.Properties
}

// NewCharInfo combines a property value with boundary signals.
func NewCharInfo(props uniprop.Properties, wordBoundary bool, lb paragraph.LineBoundary) CharInfo {
	bits := uint8(lb) & 0x3
	if wordBoundary {
		bits |= 0x4
	}
	return CharInfo{props: props.WithBoundary(bits)}
}

// Properties returns the wrapped property value.
func (ci CharInfo) Properties() uniprop.Properties {
	return ci.props
}

// IsWordBoundary is true if a new word begins at this character.
func (ci CharInfo) IsWordBoundary() bool {
	return ci.props.Boundary()&0x4 != 0
}

// LineBoundary returns the line breaking state at this character.
func (ci CharInfo) LineBoundary() paragraph.LineBoundary {
	return paragraph.LineBoundary(ci.props.Boundary() & 0x3)
}

// Whitespace is the whitespace kind of a cluster.
type Whitespace uint8

// Whitespace kinds.
const (
	WsNone Whitespace = iota
	WsSpace
	WsNoBreakSpace
	WsTab
	WsNewline
	WsOther
)

var whitespaceNames = [...]string{
	"None", "Space", "NoBreakSpace", "Tab", "Newline", "Other",
}

func (w Whitespace) String() string {
	if int(w) < len(whitespaceNames) {
		return whitespaceNames[w]
	}
	return "None"
}

// IsSpaceOrNbsp is true for the two space kinds.
func (w Whitespace) IsSpaceOrNbsp() bool {
	return w == WsSpace || w == WsNoBreakSpace
}

// Emoji is the emoji presentation of a cluster.
type Emoji uint8

// Emoji presentations.
const (
	EmojiNone Emoji = iota
	EmojiDefault
	EmojiText
	EmojiColor
)

var emojiNames = [...]string{"None", "Default", "Text", "Color"}

func (e Emoji) String() string {
	if int(e) < len(emojiNames) {
		return emojiNames[e]
	}
	return "None"
}

// ClusterInfo is a 16 bit aggregate over one cluster:
//
//	bit  0      broken (no appropriate base character)
//	bits 1–3    whitespace kind
//	bits 8–9    emoji presentation
//	bits 13–15  boundary state (bit 15 word, bits 13–14 line)
//
// The boundary bits are the OR-merge of all constituent characters'
// boundary bits: a cluster is a boundary if any character in it is.
type ClusterInfo uint16

const (
	infoBroken          ClusterInfo = 1
	infoWhitespaceShift             = 1
	infoWhitespaceMask  ClusterInfo = 0x7 << infoWhitespaceShift
	infoEmojiShift                  = 8
	infoEmojiMask       ClusterInfo = 0x3 << infoEmojiShift
	infoBoundaryShift               = 13
)

// IsBroken is true if the cluster lacks a required base character.
func (info ClusterInfo) IsBroken() bool {
	return info&infoBroken != 0
}

// Whitespace returns the whitespace kind of the cluster.
func (info ClusterInfo) Whitespace() Whitespace {
	return Whitespace((info & infoWhitespaceMask) >> infoWhitespaceShift)
}

// IsWhitespace is true if the cluster is any kind of whitespace.
func (info ClusterInfo) IsWhitespace() bool {
	return info.Whitespace() != WsNone
}

// Emoji returns the emoji presentation of the cluster.
func (info ClusterInfo) Emoji() Emoji {
	return Emoji((info & infoEmojiMask) >> infoEmojiShift)
}

// IsEmoji is true if the cluster has any emoji presentation.
func (info ClusterInfo) IsEmoji() bool {
	return info.Emoji() != EmojiNone
}

// IsWordBoundary is true if a word boundary falls on the cluster.
func (info ClusterInfo) IsWordBoundary() bool {
	return info>>infoBoundaryShift&0x4 != 0
}

// LineBoundary returns the merged line breaking state of the cluster.
func (info ClusterInfo) LineBoundary() paragraph.LineBoundary {
	return paragraph.LineBoundary(info >> infoBoundaryShift & 0x3)
}

// IsBoundary is true if any boundary falls on the cluster.
func (info ClusterInfo) IsBoundary() bool {
	return info>>infoBoundaryShift != 0
}

func (info ClusterInfo) setBroken() ClusterInfo {
	return info | infoBroken
}

func (info ClusterInfo) setWhitespace(w Whitespace) ClusterInfo {
	return info&^infoWhitespaceMask | ClusterInfo(w)<<infoWhitespaceShift&infoWhitespaceMask
}

func (info ClusterInfo) setEmoji(e Emoji) ClusterInfo {
	return info&^infoEmojiMask | ClusterInfo(e)<<infoEmojiShift&infoEmojiMask
}

// mergeBoundary folds one character's boundary bits into the cluster:
// the word flag is OR-merged, the line state merged by severity
// (hard > soft > none).
func (info ClusterInfo) mergeBoundary(bits uint8) ClusterInfo {
	have := uint8(info >> infoBoundaryShift)
	word := (have | bits) & 0x4
	line := have & 0x3
	if nl := bits & 0x3; nl > line {
		line = nl
	}
	return info&^(0x7<<infoBoundaryShift) | ClusterInfo(word|line)<<infoBoundaryShift
}

func (info ClusterInfo) String() string {
	var parts []string
	if info.IsBroken() {
		parts = append(parts, "broken")
	}
	if info.IsWhitespace() {
		parts = append(parts, "ws="+info.Whitespace().String())
	}
	if info.IsEmoji() {
		parts = append(parts, "emoji="+info.Emoji().String())
	}
	if info.IsWordBoundary() {
		parts = append(parts, "word")
	}
	if lb := info.LineBoundary(); lb != paragraph.LineNone {
		parts = append(parts, "line="+lb.String())
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, "|"))
}
