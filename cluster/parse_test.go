package cluster

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/clusters/internal/tracing"
	"github.com/npillmayer/clusters/paragraph"
	"github.com/npillmayer/clusters/uniprop"
)

// tagString prepares test input the way package segment would: one
// tagged source character per rune, with byte offsets and boundary
// signals attached.
func tagString(text string) []SourceChar {
	runes, props, bounds := paragraph.AnalyzeString(text)
	chars := make([]SourceChar, len(runes))
	offset := 0
	for i, r := range runes {
		l := utf8.RuneLen(r)
		chars[i] = SourceChar{
			Ch:     r,
			Offset: offset,
			Len:    uint8(l),
			Info:   NewCharInfo(props[i], bounds[i].Word, bounds[i].Line),
		}
		offset += l
	}
	return chars
}

func parseAll(script uniprop.Script, text string) []Cluster {
	parser := NewParser(script, NewSliceSource(tagString(text)))
	var out []Cluster
	var c Cluster
	for parser.Next(&c) {
		out = append(out, c)
	}
	return out
}

func clusterText(c *Cluster) string {
	var sb strings.Builder
	for _, ch := range c.Chars() {
		sb.WriteRune(ch.Ch)
	}
	return sb.String()
}

func TestSimpleLatin(t *testing.T) {
	tracing.SetTestingLog(t)
	clusters := parseAll(uniprop.Latin, "cat")
	if len(clusters) != 3 {
		t.Fatalf("expected 3 clusters for %q, got %d", "cat", len(clusters))
	}
	for i, c := range clusters {
		if len(c.Chars()) != 1 {
			t.Errorf("cluster #%d: expected a single character, got %d", i, len(c.Chars()))
		}
		if c.Chars()[0].ShapeClass != Base {
			t.Errorf("cluster #%d: expected shape class Base, got %s", i,
				c.Chars()[0].ShapeClass)
		}
		if c.Info().IsBroken() {
			t.Errorf("cluster #%d unexpectedly flagged broken", i)
		}
	}
}

func TestSimpleCombining(t *testing.T) {
	tracing.SetTestingLog(t)
	clusters := parseAll(uniprop.Latin, "éx") // e + acute, then x
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	chars := clusters[0].Chars()
	if len(chars) != 2 {
		t.Fatalf("expected [e,́] in one cluster, got %d characters", len(chars))
	}
	if chars[0].ShapeClass != Base || chars[1].ShapeClass != Mark {
		t.Errorf("expected shapes Base+Mark, got %s+%s",
			chars[0].ShapeClass, chars[1].ShapeClass)
	}
}

func TestCRLFCluster(t *testing.T) {
	tracing.SetTestingLog(t)
	clusters := parseAll(uniprop.Latin, "a\r\nb")
	if len(clusters) != 3 {
		t.Fatalf("expected 3 clusters for a|CRLF|b, got %d", len(clusters))
	}
	nl := clusters[1]
	if len(nl.Chars()) != 2 {
		t.Errorf("expected CRLF folded into one cluster, got %d characters",
			len(nl.Chars()))
	}
	if nl.Info().Whitespace() != WsNewline {
		t.Errorf("expected whitespace kind Newline, got %s", nl.Info().Whitespace())
	}
	if nl.Info().LineBoundary() != paragraph.LineHard {
		t.Errorf("expected a hard line boundary on the newline cluster, got %s",
			nl.Info().LineBoundary())
	}
}

func TestWhitespaceAndWordBoundary(t *testing.T) {
	tracing.SetTestingLog(t)
	clusters := parseAll(uniprop.Latin, "a b")
	if len(clusters) != 3 {
		t.Fatalf("expected 3 clusters, got %d", len(clusters))
	}
	sp := clusters[1]
	if sp.Info().Whitespace() != WsSpace {
		t.Errorf("expected whitespace kind Space, got %s", sp.Info().Whitespace())
	}
	if sp.Info().LineBoundary() != paragraph.LineSoft {
		t.Errorf("expected a soft line break opportunity at the space, got %s",
			sp.Info().LineBoundary())
	}
	if !clusters[2].Info().IsWordBoundary() {
		t.Errorf("expected a word boundary on cluster %q", clusterText(&clusters[2]))
	}
}

func TestEmojiPresentation(t *testing.T) {
	tracing.SetTestingLog(t)
	for _, tc := range []struct {
		text string
		want Emoji
	}{
		{"\U0001F600", EmojiDefault},
		{"\U0001F600️", EmojiColor},
		{"\U0001F600︎", EmojiText},
	} {
		clusters := parseAll(uniprop.Latin, tc.text)
		if len(clusters) != 1 {
			t.Fatalf("expected one cluster for %q, got %d", tc.text, len(clusters))
		}
		if got := clusters[0].Info().Emoji(); got != tc.want {
			t.Errorf("emoji presentation of %q: expected %s, got %s",
				tc.text, tc.want, got)
		}
	}
}

func TestEmojiSelectorIgnorable(t *testing.T) {
	tracing.SetTestingLog(t)
	clusters := parseAll(uniprop.Latin, "\U0001F600️")
	chars := clusters[0].Chars()
	if len(chars) != 2 {
		t.Fatalf("expected 2 characters in cluster, got %d", len(chars))
	}
	vs := chars[1]
	if vs.ShapeClass != Vs {
		t.Errorf("expected shape class Vs for the selector, got %s", vs.ShapeClass)
	}
	if !vs.Ignorable || vs.ContributesToShaping {
		t.Errorf("expected the selector to be ignorable and non-contributing")
	}
}

func TestEmojiZwjSequences(t *testing.T) {
	tracing.SetTestingLog(t)
	for _, tc := range []struct {
		text string
		want int
	}{
		// man ZWJ woman joins into a single cluster
		{"\U0001F468‍\U0001F469", 1},
		// a variation selector between pictograph and ZWJ keeps the link
		{"❤️‍\U0001F525", 1},
		// a doubled joiner breaks the sequence (GB11 allows a single ZWJ)
		{"\U0001F468‍‍\U0001F469", 2},
	} {
		clusters := parseAll(uniprop.Latin, tc.text)
		if len(clusters) != tc.want {
			t.Errorf("expected %d cluster(s) for %q, got %d",
				tc.want, tc.text, len(clusters))
		}
	}
}

func TestRegionalIndicatorPairs(t *testing.T) {
	tracing.SetTestingLog(t)
	clusters := parseAll(uniprop.Latin, "\U0001F1E9\U0001F1EA\U0001F1EB\U0001F1F7")
	if len(clusters) != 2 {
		t.Fatalf("expected 2 flag clusters, got %d", len(clusters))
	}
	for i, c := range clusters {
		if len(c.Chars()) != 2 {
			t.Errorf("flag cluster #%d: expected 2 regional indicators, got %d",
				i, len(c.Chars()))
		}
	}
}

func TestDevanagariSyllable(t *testing.T) {
	tracing.SetTestingLog(t)
	// ka + virama + ssa + vowel sign i
	clusters := parseAll(uniprop.Devanagari, "क्षि")
	if len(clusters) != 1 {
		t.Fatalf("expected one syllable cluster, got %d", len(clusters))
	}
	c := clusters[0]
	if c.Info().IsBroken() {
		t.Errorf("well-formed syllable unexpectedly flagged broken")
	}
	want := []ShapeClass{Base, Halant, Base, VPre}
	chars := c.Chars()
	if len(chars) != len(want) {
		t.Fatalf("expected %d characters, got %d", len(want), len(chars))
	}
	for i, w := range want {
		if chars[i].ShapeClass != w {
			t.Errorf("character #%d: expected shape %s, got %s", i, w,
				chars[i].ShapeClass)
		}
	}
}

func TestDevanagariTwoSyllables(t *testing.T) {
	tracing.SetTestingLog(t)
	// ka + vowel sign aa | ma (a consonant not after halant starts a
	// new syllable)
	clusters := parseAll(uniprop.Devanagari, "काम")
	if len(clusters) != 2 {
		t.Fatalf("expected 2 syllable clusters, got %d", len(clusters))
	}
	if clusterText(&clusters[0]) != "का" {
		t.Errorf("first syllable: expected ka+aa, got %q", clusterText(&clusters[0]))
	}
	if clusterText(&clusters[1]) != "म" {
		t.Errorf("second syllable: expected ma, got %q", clusterText(&clusters[1]))
	}
}

func TestBrokenDependentMark(t *testing.T) {
	tracing.SetTestingLog(t)
	// a dependent vowel with no consonant to attach to
	clusters := parseAll(uniprop.Devanagari, "ि")
	if len(clusters) != 1 {
		t.Fatalf("expected one cluster, got %d", len(clusters))
	}
	if !clusters[0].Info().IsBroken() {
		t.Errorf("dangling dependent vowel not flagged broken")
	}
	if clusters[0].Chars()[0].ShapeClass != VPre {
		t.Errorf("expected shape VPre, got %s", clusters[0].Chars()[0].ShapeClass)
	}
}

func TestLepchaPreBaseModifier(t *testing.T) {
	tracing.SetTestingLog(t)
	// ka + consonant sign nyin-do, a modifier sign rendered left of
	// its base
	clusters := parseAll(uniprop.Lepcha, "ᰀᰴ")
	if len(clusters) != 1 {
		t.Fatalf("expected one cluster, got %d", len(clusters))
	}
	chars := clusters[0].Chars()
	if len(chars) != 2 {
		t.Fatalf("expected 2 characters in cluster, got %d", len(chars))
	}
	if chars[0].ShapeClass != Base {
		t.Errorf("expected shape Base, got %s", chars[0].ShapeClass)
	}
	if chars[1].ShapeClass != VmPre {
		t.Errorf("expected shape VmPre for the modifier sign, got %s",
			chars[1].ShapeClass)
	}
}

func TestMyanmarKinzi(t *testing.T) {
	tracing.SetTestingLog(t)
	// nga + asat + virama + ka + vowel sign i: the first three
	// characters form a kinzi prefix of the following base
	clusters := parseAll(uniprop.Myanmar, "င်္ကိ")
	if len(clusters) != 1 {
		t.Fatalf("expected one kinzi syllable, got %d", len(clusters))
	}
	c := clusters[0]
	if c.Info().IsBroken() {
		t.Errorf("kinzi syllable unexpectedly flagged broken")
	}
	want := []ShapeClass{Kinzi, Kinzi, Kinzi, Base, Mark}
	chars := c.Chars()
	if len(chars) != len(want) {
		t.Fatalf("expected %d characters, got %d", len(want), len(chars))
	}
	for i, w := range want {
		if chars[i].ShapeClass != w {
			t.Errorf("character #%d: expected shape %s, got %s", i, w,
				chars[i].ShapeClass)
		}
	}
}

func TestMyanmarMedialRa(t *testing.T) {
	tracing.SetTestingLog(t)
	// ka + medial ra + vowel sign u
	clusters := parseAll(uniprop.Myanmar, "ကြု")
	if len(clusters) != 1 {
		t.Fatalf("expected one syllable, got %d", len(clusters))
	}
	want := []ShapeClass{Base, MedialRa, VBlw}
	for i, w := range want {
		if got := clusters[0].Chars()[i].ShapeClass; got != w {
			t.Errorf("character #%d: expected shape %s, got %s", i, w, got)
		}
	}
}

func TestCompleteness(t *testing.T) {
	tracing.SetTestingLog(t)
	inputs := []struct {
		script uniprop.Script
		text   string
	}{
		{uniprop.Latin, "The quick\tbrown fox,\r\n\U0001F98A!"},
		{uniprop.Devanagari, "क्षि िक"},
		{uniprop.Myanmar, "င်္ကိကြ"},
	}
	for _, in := range inputs {
		var sb strings.Builder
		for _, c := range parseAll(in.script, in.text) {
			sb.WriteString(clusterText(&c))
		}
		if sb.String() != in.text {
			t.Errorf("clusters of %q do not reassemble the input: %q",
				in.text, sb.String())
		}
	}
}

func TestBoundedClusterSize(t *testing.T) {
	tracing.SetTestingLog(t)
	text := "a" + strings.Repeat("́", 40)
	clusters := parseAll(uniprop.Latin, text)
	if len(clusters) < 2 {
		t.Fatalf("expected a forced split, got %d cluster(s)", len(clusters))
	}
	total := 0
	for i, c := range clusters {
		if len(c.Chars()) > MaxClusterSize {
			t.Errorf("cluster #%d exceeds the size bound: %d", i, len(c.Chars()))
		}
		total += len(c.Chars())
	}
	if total != utf8.RuneCountInString(text) {
		t.Errorf("character count mismatch after forced split: %d", total)
	}
}

func TestBoundedClusterSizeComplex(t *testing.T) {
	tracing.SetTestingLog(t)
	// a base consonant with more dependent vowels than a cluster can hold
	text := "क" + strings.Repeat("ु", 40)
	clusters := parseAll(uniprop.Devanagari, text)
	if len(clusters) < 2 {
		t.Fatalf("expected a forced split, got %d cluster(s)", len(clusters))
	}
	total := 0
	for i, c := range clusters {
		if len(c.Chars()) > MaxClusterSize {
			t.Errorf("cluster #%d exceeds the size bound: %d", i, len(c.Chars()))
		}
		total += len(c.Chars())
	}
	if total != utf8.RuneCountInString(text) {
		t.Errorf("character count mismatch after forced split: %d", total)
	}
	if clusters[0].Info().IsBroken() {
		t.Errorf("syllable prefix with a base unexpectedly flagged broken")
	}
	if !clusters[1].Info().IsBroken() {
		t.Errorf("carried-over dependent marks not flagged broken")
	}
}

func TestBoundaryMerge(t *testing.T) {
	tracing.SetTestingLog(t)
	// construct a two-character grapheme with diverging boundary tags:
	// the merged cluster must OR the word flag and keep the most severe
	// line state
	chars := []SourceChar{
		{Ch: 'e', Offset: 0, Len: 1,
			Info: NewCharInfo(uniprop.PropertiesFor('e'), true, paragraph.LineSoft)},
		{Ch: 0x0301, Offset: 1, Len: 2,
			Info: NewCharInfo(uniprop.PropertiesFor(0x0301), false, paragraph.LineHard)},
	}
	parser := NewParser(uniprop.Latin, NewSliceSource(chars))
	var c Cluster
	if !parser.Next(&c) {
		t.Fatalf("expected one cluster")
	}
	if !c.Info().IsWordBoundary() {
		t.Errorf("expected the word flag to survive the merge")
	}
	if c.Info().LineBoundary() != paragraph.LineHard {
		t.Errorf("expected the hard line state to win the merge, got %s",
			c.Info().LineBoundary())
	}
}

func TestSimplePathIdempotence(t *testing.T) {
	tracing.SetTestingLog(t)
	text := "éx \U0001F600️!"
	for _, c := range parseAll(uniprop.Latin, text) {
		part := clusterText(&c)
		again := parseAll(uniprop.Latin, part)
		if len(again) != 1 {
			t.Errorf("re-segmenting cluster %q split it into %d clusters",
				part, len(again))
			continue
		}
		if clusterText(&again[0]) != part {
			t.Errorf("re-segmenting cluster %q changed it to %q",
				part, clusterText(&again[0]))
		}
	}
}

func TestParserExhaustion(t *testing.T) {
	tracing.SetTestingLog(t)
	parser := NewParser(uniprop.Latin, NewSliceSource(tagString("a")))
	var c Cluster
	if !parser.Next(&c) {
		t.Fatalf("expected one cluster before exhaustion")
	}
	if parser.Next(&c) || parser.Next(&c) {
		t.Errorf("exhausted parser yielded another cluster")
	}
}
