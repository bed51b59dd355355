package segment

import (
	"strings"
	"testing"

	"github.com/npillmayer/clusters/internal/tracing"
	"github.com/npillmayer/clusters/uniprop"
)

func TestTagOffsets(t *testing.T) {
	tracing.SetTestingLog(t)
	chars := Tag("a€b")
	if len(chars) != 3 {
		t.Fatalf("expected 3 tagged characters, got %d", len(chars))
	}
	wantOffsets := []int{0, 1, 4}
	wantLens := []uint8{1, 3, 1}
	for i, sc := range chars {
		if sc.Offset != wantOffsets[i] {
			t.Errorf("character #%d: expected offset %d, got %d", i,
				wantOffsets[i], sc.Offset)
		}
		if sc.Len != wantLens[i] {
			t.Errorf("character #%d: expected length %d, got %d", i,
				wantLens[i], sc.Len)
		}
	}
}

func TestTagBoundaries(t *testing.T) {
	tracing.SetTestingLog(t)
	chars := Tag("ab cd")
	if !chars[3].Info.IsWordBoundary() {
		t.Errorf("expected a word boundary at 'c'")
	}
	if chars[1].Info.IsWordBoundary() {
		t.Errorf("unexpected word boundary inside a word")
	}
}

func TestScriptRunsMixed(t *testing.T) {
	tracing.SetTestingLog(t)
	runs := ScriptRuns("Hello Привет कि")
	if len(runs) != 3 {
		t.Fatalf("expected 3 script runs, got %d", len(runs))
	}
	want := []uniprop.Script{uniprop.Latin, uniprop.Cyrillic, uniprop.Devanagari}
	for i, w := range want {
		if runs[i].Script != w {
			t.Errorf("run #%d: expected script %s, got %s", i, w, runs[i].Script)
		}
	}
	// weak characters attach to the run in progress
	if !strings.HasSuffix(runs[0].Text, " ") {
		t.Errorf("expected the space to attach to the Latin run, got %q", runs[0].Text)
	}
}

func TestScriptRunsContiguous(t *testing.T) {
	tracing.SetTestingLog(t)
	text := "abc Привет 123 क"
	runs := ScriptRuns(text)
	pos := 0
	var sb strings.Builder
	for i, run := range runs {
		if run.Start != pos {
			t.Errorf("run #%d does not start where the previous ended: %d != %d",
				i, run.Start, pos)
		}
		pos = run.End
		sb.WriteString(run.Text)
	}
	if sb.String() != text {
		t.Errorf("runs do not reassemble the input: %q", sb.String())
	}
}

func TestScriptRunsWeakOnly(t *testing.T) {
	tracing.SetTestingLog(t)
	runs := ScriptRuns("123 + 456")
	if len(runs) != 1 {
		t.Fatalf("expected a single run for weak-only text, got %d", len(runs))
	}
	if runs[0].Script != uniprop.Unknown {
		t.Errorf("expected unknown script for weak-only text, got %s", runs[0].Script)
	}
}

func TestScriptRunsLeadingWeak(t *testing.T) {
	tracing.SetTestingLog(t)
	runs := ScriptRuns("»Привет«")
	if len(runs) != 1 {
		t.Fatalf("expected one run, got %d", len(runs))
	}
	if runs[0].Script != uniprop.Cyrillic {
		t.Errorf("leading punctuation should take the following script, got %s",
			runs[0].Script)
	}
}

func TestClustersEndToEnd(t *testing.T) {
	tracing.SetTestingLog(t)
	text := "ok क्षि!"
	clusters := Clusters(text)
	var sb strings.Builder
	for _, c := range clusters {
		for _, ch := range c.Chars() {
			sb.WriteRune(ch.Ch)
		}
	}
	if sb.String() != text {
		t.Errorf("clusters do not reassemble the input: %q", sb.String())
	}
	// offsets must refer to the original text, across run boundaries
	if first := clusters[0].Chars()[0]; first.Offset != 0 {
		t.Errorf("expected first offset 0, got %d", first.Offset)
	}
	last := clusters[len(clusters)-1].Chars()[0]
	if text[last.Offset] != '!' {
		t.Errorf("expected the last cluster to sit on '!', got offset %d", last.Offset)
	}
}
