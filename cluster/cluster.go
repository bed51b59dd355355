package cluster

import (
	"github.com/npillmayer/clusters/uniprop"
)

// MaxClusterSize is the hard upper bound on characters per cluster.
// Pathological input exceeding it forces the current cluster to be
// finalized at the limit and a new one to be started; no character is
// ever dropped.
const MaxClusterSize = 32

// Cluster is an ordered, bounded sequence of characters a shaping
// engine must treat as indivisible, plus an aggregate info bit-field.
// A Cluster is a self-contained value: once the parser has emitted it,
// the parser holds no reference to it.
type Cluster struct {
	chars [MaxClusterSize]Char
	n     int
	info  ClusterInfo
}

// Chars returns the characters of the cluster, in shaping order.
func (c *Cluster) Chars() []Char {
	return c.chars[:c.n]
}

// Info returns the aggregate cluster flags.
func (c *Cluster) Info() ClusterInfo {
	return c.info
}

func (c *Cluster) reset() {
	c.n = 0
	c.info = 0
}

// syllable is the accumulation buffer of a cluster engine: source
// characters plus their resolved shape classes, bounded by
// MaxClusterSize. Engines fill it incrementally and emit it into an
// output cluster exactly once.
type syllable struct {
	chars  [MaxClusterSize]SourceChar
	shapes [MaxClusterSize]ShapeClass
	n      int
}

func (s *syllable) full() bool {
	return s.n == MaxClusterSize
}

func (s *syllable) empty() bool {
	return s.n == 0
}

func (s *syllable) push(sc SourceChar, shape ShapeClass) {
	s.chars[s.n] = sc
	s.shapes[s.n] = shape
	s.n++
}

func (s *syllable) reset() {
	s.n = 0
}

// emit finalizes the accumulated syllable into dst: characters are
// converted in order, boundary bits merged, and the cluster-level
// whitespace and emoji presentation derived. The buffer is reset
// afterwards.
func (s *syllable) emit(dst *Cluster, broken bool) {
	dst.reset()
	whitespace := WsNone
	emoji := EmojiNone
	for i := 0; i < s.n; i++ {
		sc := s.chars[i]
		props := sc.Info.Properties()
		dst.chars[i] = Char{
			Ch:                   sc.Ch,
			Offset:               sc.Offset,
			ShapeClass:           s.shapes[i],
			JoiningType:          props.JoiningType(),
			Ignorable:            props.IsIgnorable(),
			ContributesToShaping: props.ContributesToShaping(),
			Data:                 sc.Data,
		}
		dst.info = dst.info.mergeBoundary(props.Boundary())
		if whitespace == WsNone {
			whitespace = whitespaceKind(sc.Ch, props.Category())
		}
		if i == 0 && props.IsEmoji() {
			emoji = EmojiDefault
		}
		// An explicit presentation selector overrides the intrinsic
		// emoji presentation.
		if emoji != EmojiNone && i > 0 {
			switch sc.Ch {
			case 0xFE0E:
				emoji = EmojiText
			case 0xFE0F:
				emoji = EmojiColor
			}
		}
	}
	dst.n = s.n
	dst.info = dst.info.setWhitespace(whitespace).setEmoji(emoji)
	if broken {
		dst.info = dst.info.setBroken()
	}
	s.n = 0
}

// whitespaceKind classifies a character's whitespace contribution to
// the cluster flags. Newline kinds cover all mandatory break
// characters; a folded CRLF pair reports as one newline.
func whitespaceKind(r rune, cat uniprop.Category) Whitespace {
	switch r {
	case ' ':
		return WsSpace
	case 0xA0, 0x2007, 0x202F:
		return WsNoBreakSpace
	case '\t':
		return WsTab
	case '\r', '\n', 0x85, 0x0B, 0x0C, 0x2028, 0x2029:
		return WsNewline
	}
	if cat == uniprop.Zs {
		return WsOther
	}
	return WsNone
}
