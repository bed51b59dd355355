package locale

import "strings"

// SubtagKind discriminates the kinds of subtags a locale identifier
// is composed of.
type SubtagKind uint8

// Subtag kinds, in the order they may appear in a well-formed tag.
const (
	Language SubtagKind = iota
	Script
	Region
	Variant
	Extension
	Private
)

var subtagKindNames = [...]string{
	"Language", "Script", "Region", "Variant", "Extension", "Private",
}

func (k SubtagKind) String() string {
	if int(k) < len(subtagKindNames) {
		return subtagKindNames[k]
	}
	return "Language"
}

// Subtag is one component of a locale identifier. Extension and
// private-use subtags span multiple dash-separated parts and are
// returned as one value, singleton included.
type Subtag struct {
	Kind  SubtagKind
	Value string
}

// Subtags iterates over the components of a BCP-47 locale identifier.
// Iteration stops at the first malformed component; Remainder then
// returns the unconsumed rest of the identifier.
type Subtags struct {
	stage  parseStage
	source string
	parts  []string
	idx    int
	pos    int
}

type parseStage uint8

const (
	stageLanguage parseStage = iota
	stageScript
	stageRegion
	stageVariant
	stageExtension
	stagePrivate
)

// NewSubtags returns an iterator over the subtags of the given locale
// identifier.
func NewSubtags(locale string) *Subtags {
	return &Subtags{
		source: locale,
		parts:  strings.Split(locale, "-"),
	}
}

// Remainder returns the not yet consumed rest of the identifier.
func (st *Subtags) Remainder() string {
	if st.pos >= len(st.source) {
		return ""
	}
	return st.source[st.pos:]
}

// Next returns the next subtag, or false when the identifier is
// exhausted or continues with a malformed component.
func (st *Subtags) Next() (Subtag, bool) {
	if st.idx >= len(st.parts) {
		return Subtag{}, false
	}
	part := st.parts[st.idx]
	st.idx++
	n := len(part)
	start := st.pos
	for {
		switch st.stage {
		case stageLanguage:
			st.stage = stageScript
			if n == 2 || n == 3 {
				st.pos += n + 1
				return Subtag{Language, part}, true
			}
			return Subtag{}, false
		case stageScript:
			st.stage = stageRegion
			if n == 4 && isAlpha(part) {
				st.pos += n + 1
				return Subtag{Script, part}, true
			}
		case stageRegion:
			st.stage = stageVariant
			if (n == 2 && isAlpha(part)) || (n == 3 && isDigits(part)) {
				st.pos += n + 1
				return Subtag{Region, part}, true
			}
		case stageVariant:
			switch {
			case n == 4:
				// a 4 character variant must start with a digit, to be
				// distinguishable from a script subtag
				if isDigit(part[0]) && isAlnum(part[1:]) {
					st.pos += n + 1
					return Subtag{Variant, part}, true
				}
				return Subtag{}, false
			case n >= 5 && n <= 8:
				if isAlnum(part) {
					st.pos += n + 1
					return Subtag{Variant, part}, true
				}
				return Subtag{}, false
			case n == 1:
				if part[0] == 'x' {
					st.stage = stagePrivate
				} else {
					st.stage = stageExtension
				}
				// the singleton is re-examined in the new stage
			default:
				return Subtag{}, false
			}
		case stageExtension:
			if n != 1 {
				return Subtag{}, false
			}
			end := start + n + 1
			for st.idx < len(st.parts) {
				sub := st.parts[st.idx]
				sn := len(sub)
				if sn >= 2 && sn <= 8 {
					st.idx++
					end += sn + 1
					continue
				}
				if sn == 1 && sub[0] == 'x' {
					st.stage = stagePrivate
				}
				break
			}
			return st.spanSubtag(Extension, start, end)
		case stagePrivate:
			if n != 1 || part[0] != 'x' {
				return Subtag{}, false
			}
			end := start + n + 1
			for st.idx < len(st.parts) {
				sub := st.parts[st.idx]
				sn := len(sub)
				if sn >= 1 && sn <= 8 && !(sn == 1 && sub[0] == 'x') {
					st.idx++
					end += sn + 1
					continue
				}
				break
			}
			return st.spanSubtag(Private, start, end)
		}
	}
}

// spanSubtag cuts a multi-part subtag out of the source, dropping the
// trailing dash, and advances the consumption position past it.
func (st *Subtags) spanSubtag(kind SubtagKind, start, end int) (Subtag, bool) {
	end--
	if end > len(st.source) {
		end = len(st.source)
	}
	if start > end {
		return Subtag{}, false
	}
	tag := st.source[start:end]
	st.pos = end + 1
	return Subtag{kind, tag}, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || isDigit(c)) {
			return false
		}
	}
	return true
}
