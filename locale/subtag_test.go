package locale

import (
	"testing"

	"github.com/npillmayer/clusters/internal/tracing"
)

func collect(locale string) []Subtag {
	it := NewSubtags(locale)
	var tags []Subtag
	for tag, ok := it.Next(); ok; tag, ok = it.Next() {
		tags = append(tags, tag)
	}
	return tags
}

func TestSubtagsLanguageOnly(t *testing.T) {
	tracing.SetTestingLog(t)
	tags := collect("en")
	if len(tags) != 1 || tags[0] != (Subtag{Language, "en"}) {
		t.Errorf("expected [Language en], got %v", tags)
	}
}

func TestSubtagsFullTag(t *testing.T) {
	tracing.SetTestingLog(t)
	tags := collect("zh-Hant-TW")
	want := []Subtag{
		{Language, "zh"},
		{Script, "Hant"},
		{Region, "TW"},
	}
	if len(tags) != len(want) {
		t.Fatalf("expected %d subtags, got %v", len(want), tags)
	}
	for i, w := range want {
		if tags[i] != w {
			t.Errorf("subtag #%d: expected %v, got %v", i, w, tags[i])
		}
	}
}

func TestSubtagsVariant(t *testing.T) {
	tracing.SetTestingLog(t)
	tags := collect("de-DE-1996")
	want := []Subtag{
		{Language, "de"},
		{Region, "DE"},
		{Variant, "1996"},
	}
	if len(tags) != len(want) {
		t.Fatalf("expected %d subtags, got %v", len(want), tags)
	}
	for i, w := range want {
		if tags[i] != w {
			t.Errorf("subtag #%d: expected %v, got %v", i, w, tags[i])
		}
	}
}

func TestSubtagsNumericRegion(t *testing.T) {
	tracing.SetTestingLog(t)
	tags := collect("es-419")
	if len(tags) != 2 || tags[1] != (Subtag{Region, "419"}) {
		t.Errorf("expected a numeric region subtag, got %v", tags)
	}
}

func TestSubtagsExtensionAndPrivate(t *testing.T) {
	tracing.SetTestingLog(t)
	tags := collect("en-a-bbb-x-a-ccc")
	want := []Subtag{
		{Language, "en"},
		{Extension, "a-bbb"},
		{Private, "x-a-ccc"},
	}
	if len(tags) != len(want) {
		t.Fatalf("expected %d subtags, got %v", len(want), tags)
	}
	for i, w := range want {
		if tags[i] != w {
			t.Errorf("subtag #%d: expected %v, got %v", i, w, tags[i])
		}
	}
}

func TestSubtagsPrivateOnlySuffix(t *testing.T) {
	tracing.SetTestingLog(t)
	tags := collect("en-x-priv")
	want := []Subtag{
		{Language, "en"},
		{Private, "x-priv"},
	}
	if len(tags) != len(want) {
		t.Fatalf("expected %d subtags, got %v", len(want), tags)
	}
	for i, w := range want {
		if tags[i] != w {
			t.Errorf("subtag #%d: expected %v, got %v", i, w, tags[i])
		}
	}
}

func TestSubtagsMalformed(t *testing.T) {
	tracing.SetTestingLog(t)
	if tags := collect("verylonglanguage"); tags != nil {
		t.Errorf("expected no subtags for a malformed tag, got %v", tags)
	}
}

func TestSubtagsRemainder(t *testing.T) {
	tracing.SetTestingLog(t)
	it := NewSubtags("en-verylongsubtagxx-US")
	tag, ok := it.Next()
	if !ok || tag != (Subtag{Language, "en"}) {
		t.Fatalf("expected the language subtag, got %v", tag)
	}
	if _, ok := it.Next(); ok {
		t.Errorf("expected iteration to stop at the malformed component")
	}
	if it.Remainder() != "verylongsubtagxx-US" {
		t.Errorf("unexpected remainder %q", it.Remainder())
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tracing.SetTestingLog(t)
	if _, err := Parse("en-US"); err != nil {
		t.Errorf("unexpected error for a well-formed tag: %v", err)
	}
	for _, bad := range []string{"verylonglanguage", "en-verylongsubtagxx-US", ""} {
		if _, err := Parse(bad); err != ErrMalformedTag {
			t.Errorf("expected ErrMalformedTag for %q, got %v", bad, err)
		}
	}
}

func TestMakeLocale(t *testing.T) {
	tracing.SetTestingLog(t)
	loc := Make("zh-Hant-TW")
	if loc.Language() != "zh" {
		t.Errorf("expected primary language zh, got %s", loc.Language())
	}
	if loc.Script.String() != "Hant" {
		t.Errorf("expected script Hant, got %s", loc.Script)
	}
}
