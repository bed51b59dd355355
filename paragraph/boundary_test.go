package paragraph

import (
	"testing"

	"github.com/npillmayer/clusters/internal/tracing"
)

func TestWordBoundariesPlainText(t *testing.T) {
	tracing.SetTestingLog(t)
	runes, _, bounds := AnalyzeString("the fox runs")
	wordStarts := []int{0, 4, 8}
	starts := map[int]bool{}
	for _, w := range wordStarts {
		starts[w] = true
	}
	for i := range runes {
		if runes[i] == ' ' {
			continue
		}
		if bounds[i].Word != starts[i] {
			t.Errorf("position %d (%q): expected word=%v, got %v",
				i, runes[i], starts[i], bounds[i].Word)
		}
	}
}

func TestWordBoundariesApostrophe(t *testing.T) {
	tracing.SetTestingLog(t)
	_, _, bounds := AnalyzeString("don't")
	for i := 1; i < len(bounds); i++ {
		if bounds[i].Word {
			t.Errorf("position %d: the apostrophe must not split the word", i)
		}
	}
}

func TestWordBoundariesNumbers(t *testing.T) {
	tracing.SetTestingLog(t)
	_, _, bounds := AnalyzeString("3.14 x")
	for i := 1; i < 4; i++ {
		if bounds[i].Word {
			t.Errorf("position %d: the decimal point must not split the number", i)
		}
	}
	if !bounds[5].Word {
		t.Errorf("expected a word boundary at 'x'")
	}
}

func TestLineBoundariesSoft(t *testing.T) {
	tracing.SetTestingLog(t)
	_, _, bounds := AnalyzeString("a b")
	if bounds[1].Line != LineSoft {
		t.Errorf("expected a soft break opportunity at the space, got %s",
			bounds[1].Line)
	}
	if bounds[0].Line != LineNone || bounds[2].Line != LineNone {
		t.Errorf("unexpected line boundary on a letter")
	}
}

func TestLineBoundariesHard(t *testing.T) {
	tracing.SetTestingLog(t)
	_, _, bounds := AnalyzeString("a\nb")
	if bounds[1].Line != LineHard {
		t.Errorf("expected a mandatory break at the newline, got %s", bounds[1].Line)
	}
}

func TestLineBoundarySuppressedByGlue(t *testing.T) {
	tracing.SetTestingLog(t)
	// space followed by a no-break space offers no break opportunity
	_, _, bounds := AnalyzeString("a  b")
	if bounds[1].Line != LineNone {
		t.Errorf("expected the glue character to suppress the break, got %s",
			bounds[1].Line)
	}
}

func TestBoundaryBits(t *testing.T) {
	tracing.SetTestingLog(t)
	b := Boundaries{Word: true, Line: LineHard}
	if b.Bits() != 0x6 {
		t.Errorf("expected packed bits 0x6, got %#x", b.Bits())
	}
	if (Boundaries{}).Bits() != 0 {
		t.Errorf("expected zero bits for no boundaries")
	}
}
