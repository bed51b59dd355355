package uniprop

// Property class enumerations for Unicode characters. Class values are
// compact and stable; they are stored inside interned property records
// (see properties.go) and must therefore stay small enough for the
// record layout.

// Category is the Unicode general category of a character.
type Category uint8

// General categories, in UCD order. Cn (unassigned) is the zero value,
// so the default record describes an unassigned codepoint.
const (
	Cn Category = iota // Unassigned
	Lu                 // Uppercase_Letter
	Ll                 // Lowercase_Letter
	Lt                 // Titlecase_Letter
	Lm                 // Modifier_Letter
	Lo                 // Other_Letter
	Mn                 // Nonspacing_Mark
	Mc                 // Spacing_Mark
	Me                 // Enclosing_Mark
	Nd                 // Decimal_Number
	Nl                 // Letter_Number
	No                 // Other_Number
	Pc                 // Connector_Punctuation
	Pd                 // Dash_Punctuation
	Ps                 // Open_Punctuation
	Pe                 // Close_Punctuation
	Pi                 // Initial_Punctuation
	Pf                 // Final_Punctuation
	Po                 // Other_Punctuation
	Sm                 // Math_Symbol
	Sc                 // Currency_Symbol
	Sk                 // Modifier_Symbol
	So                 // Other_Symbol
	Zs                 // Space_Separator
	Zl                 // Line_Separator
	Zp                 // Paragraph_Separator
	Cc                 // Control
	Cf                 // Format
	Co                 // Private_Use
	Cs                 // Surrogate
)

var categoryNames = [...]string{
	"Cn", "Lu", "Ll", "Lt", "Lm", "Lo", "Mn", "Mc", "Me", "Nd",
	"Nl", "No", "Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po", "Sm",
	"Sc", "Sk", "So", "Zs", "Zl", "Zp", "Cc", "Cf", "Co", "Cs",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Cn"
}

// IsLetter returns true for the letter categories L*.
func (c Category) IsLetter() bool {
	return c >= Lu && c <= Lo
}

// IsMark returns true for the combining mark categories M*.
func (c Category) IsMark() bool {
	return c >= Mn && c <= Me
}

// BidiClass is the bidirectional type of a character (UAX#9).
type BidiClass uint8

// Bidirectional classes.
const (
	ON BidiClass = iota // Other_Neutral
	L                   // Left_To_Right
	R                   // Right_To_Left
	AL                  // Arabic_Letter
	AN                  // Arabic_Number
	EN                  // European_Number
	ES                  // European_Separator
	ET                  // European_Terminator
	CS                  // Common_Separator
	B                   // Paragraph_Separator
	S                   // Segment_Separator
	WS                  // White_Space
	BN                  // Boundary_Neutral
	NSM                 // Nonspacing_Mark
	LRO                 // Left_To_Right_Override
	RLO                 // Right_To_Left_Override
	LRE                 // Left_To_Right_Embedding
	RLE                 // Right_To_Left_Embedding
	PDF                 // Pop_Directional_Format
	LRI                 // Left_To_Right_Isolate
	RLI                 // Right_To_Left_Isolate
	FSI                 // First_Strong_Isolate
	PDI                 // Pop_Directional_Isolate
)

// Mask returns the bidi class as a 32 bit bitmask.
func (b BidiClass) Mask() uint32 {
	return 1 << uint32(b)
}

// NeedsResolution returns true if the presence of this bidi class in a
// paragraph requires running the bidi algorithm.
func (b BidiClass) NeedsResolution() bool {
	const overrideMask = 1<<RLE | 1<<LRE | 1<<RLO | 1<<LRO
	const isolateMask = 1<<RLI | 1<<LRI | 1<<FSI
	const explicitMask = overrideMask | isolateMask
	const bidiMask = explicitMask | 1<<R | 1<<AL | 1<<AN
	return b.Mask()&bidiMask != 0
}

// JoiningType is the cursive joining behavior of a character (used by
// joined scripts like Arabic).
type JoiningType uint8

// Joining types. U (non-joining) is the zero value and the default for
// characters without an entry in the shaping tables.
const (
	JoinU JoiningType = iota // non-joining
	JoinC                    // join-causing
	JoinD                    // dual-joining
	JoinL                    // left-joining
	JoinR                    // right-joining
	JoinT                    // transparent
)

var joiningNames = [...]string{"U", "C", "D", "L", "R", "T"}

func (j JoiningType) String() string {
	if int(j) < len(joiningNames) {
		return joiningNames[j]
	}
	return "U"
}

// ClusterBreak is the grapheme cluster break property (UAX#29).
type ClusterBreak uint8

// Grapheme cluster break classes.
const (
	CbOther ClusterBreak = iota
	CbControl
	CbCR
	CbLF
	CbExtend
	CbZWJ
	CbPrepend
	CbSpacingMark
	CbRegionalIndicator
	CbHangulL
	CbHangulV
	CbHangulT
	CbHangulLV
	CbHangulLVT
)

// WordBreak is the word break property (UAX#29). The classes carried
// here are the subset needed for boundary analysis.
type WordBreak uint8

// Word break classes.
const (
	WbOther WordBreak = iota
	WbCR
	WbLF
	WbNewline
	WbExtend
	WbZWJ
	WbRegionalIndicator
	WbFormat
	WbKatakana
	WbHebrewLetter
	WbALetter
	WbSingleQuote
	WbDoubleQuote
	WbMidNumLet
	WbMidLetter
	WbMidNum
	WbNumeric
	WbExtendNumLet
	WbWSegSpace
)

// Mask returns the word break class as a 32 bit bitmask.
func (w WordBreak) Mask() uint32 {
	return 1 << uint32(w)
}

// LineBreak is the line break property (UAX#14). The classes carried
// here are the subset needed for boundary analysis; everything else is
// LbOther.
type LineBreak uint8

// Line break classes.
const (
	LbOther LineBreak = iota
	LbMandatory      // BK: vertical tab, form feed, LS, PS
	LbCarriageReturn // CR
	LbLineFeed       // LF
	LbNextLine       // NL (U+0085)
	LbSpace          // SP
	LbZeroWidthSpace // ZW
	LbGlue           // GL: no-break space and friends
	LbWordJoiner     // WJ
	LbHyphen         // HY and breaking hyphens
	LbCombining      // CM
)
