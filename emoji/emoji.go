/*
Package emoji implements Unicode UTS #51 emoji classes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

Contents

Clients get access to the UTS #51 code-point classes (Emoji,
Emoji_Presentation, Emoji_Modifier, Emoji_Modifier_Base, Emoji_Component
and Extended_Pictographic) as unicode.RangeTable variables, plus a small
set of predicates frequently needed during cluster segmentation. The
range tables live in a generated companion file and are ready for use
without further initialization. */
package emoji

import (
	"unicode"
)

//go:generate go run ./internal/generator -v

// Other denotes code-points without any emoji class.
const Other EmojisClass = -1

// ClassForRune is the top-level client function:
// Get the emoji class for a Unicode code-point.
// Will return Other if the code-point has no emoji class.
func ClassForRune(r rune) EmojisClass {
	for class, rt := range rangeFromEmojisClass {
		if unicode.Is(rt, r) {
			return EmojisClass(class)
		}
	}
	return Other
}

// IsEmoji checks if a code-point carries the Emoji property.
func IsEmoji(r rune) bool {
	return unicode.Is(Emoji, r)
}

// IsExtendedPictographic checks if a code-point carries the
// Extended_Pictographic property. The property includes reserved
// ranges set aside for future emoji, as mandated by UTS #51.
func IsExtendedPictographic(r rune) bool {
	return unicode.Is(Extended_Pictographic, r)
}

// HasDefaultPresentation checks if a code-point is presented as emoji
// (rather than as text) in absence of a variation selector.
func HasDefaultPresentation(r rune) bool {
	return unicode.Is(Emoji_Presentation, r)
}

// IsModifier checks if a code-point is an emoji modifier (a skin-tone
// selector).
func IsModifier(r rune) bool {
	return unicode.Is(Emoji_Modifier, r)
}

// IsModifierBase checks if a code-point may carry an emoji modifier.
func IsModifierBase(r rune) bool {
	return unicode.Is(Emoji_Modifier_Base, r)
}

// IsComponent checks if a code-point normally occurs as a constituent
// of emoji sequences only, like regional indicators and skin tones.
func IsComponent(r rune) bool {
	return unicode.Is(Emoji_Component, r)
}
