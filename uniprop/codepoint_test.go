package uniprop

import (
	"testing"

	"github.com/npillmayer/clusters/internal/tracing"
)

func TestBracketLookup(t *testing.T) {
	tracing.SetTestingLog(t)
	bt, other := BracketTypeOf('(')
	if bt != BracketOpen || other != ')' {
		t.Errorf("'(' should be an open bracket paired with ')', got %d/%q", bt, other)
	}
	bt, other = BracketTypeOf(']')
	if bt != BracketClose || other != '[' {
		t.Errorf("']' should be a close bracket paired with '[', got %d/%q", bt, other)
	}
	if bt, _ = BracketTypeOf('a'); bt != BracketNone {
		t.Error("'a' should not be a bracket")
	}
	if !PropertiesFor('(').IsOpenBracket() {
		t.Error("'(' should carry the open bracket flag")
	}
	if !PropertiesFor(')').IsCloseBracket() {
		t.Error("')' should carry the close bracket flag")
	}
}

func TestMirrorLookup(t *testing.T) {
	tracing.SetTestingLog(t)
	if m, ok := Mirror('<'); !ok || m != '>' {
		t.Errorf("mirror of '<' should be '>', got %q", m)
	}
	if m, ok := Mirror('}'); !ok || m != '{' {
		t.Errorf("mirror of '}' should be '{', got %q", m)
	}
	if _, ok := Mirror('a'); ok {
		t.Error("'a' should have no mirror")
	}
}

func TestComposeDecompose(t *testing.T) {
	tracing.SetTestingLog(t)
	if c, ok := ComposePair('a', 0x0301); !ok || c != 'á' {
		t.Errorf("'a' + U+0301 should compose to 'á', got %q", c)
	}
	if _, ok := ComposePair('a', 'b'); ok {
		t.Error("'a' + 'b' should not compose")
	}
	d := Decompose('á')
	if len(d) != 2 || d[0] != 'a' || d[1] != 0x0301 {
		t.Errorf("'á' should decompose to 'a' + U+0301, got %v", d)
	}
	if !PropertiesFor('á').NeedsDecomposition() {
		t.Error("'á' should be flagged as needing decomposition")
	}
	k := DecomposeCompatible(0xFB01) // LATIN SMALL LIGATURE FI
	if string(k) != "fi" {
		t.Errorf("U+FB01 should decompose compatibly to 'fi', got %q", string(k))
	}
}
