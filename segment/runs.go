package segment

import (
	xlang "github.com/go-text/typesetting/language"

	"github.com/npillmayer/clusters/internal/tracing"
	"github.com/npillmayer/clusters/uniprop"
)

// Run is a maximal substring of a text written in one script.
type Run struct {
	Script uniprop.Script
	Start  int // byte offset of the first character
	End    int // byte offset just past the last character
	Text   string
}

// ScriptRuns splits text into maximal same-script runs. Characters
// without a strong script of their own (punctuation, digits, combining
// marks) attach to the run in progress; a leading stretch of such
// characters takes the script of the first strong character after it.
// A text without any strong character yields a single run of unknown
// script, which cluster parsing treats as simple.
func ScriptRuns(text string) []Run {
	if text == "" {
		return nil
	}
	var runs []Run
	start := 0
	cur := xlang.Unknown
	strong := rune(-1)
	for i, r := range text {
		sc := xlang.LookupScript(r)
		if sc == xlang.Common || sc == xlang.Inherited || sc == xlang.Unknown {
			continue
		}
		if cur == xlang.Unknown {
			cur, strong = sc, r
			continue
		}
		if sc != cur {
			runs = append(runs, makeRun(text, start, i, strong))
			start = i
			cur, strong = sc, r
		}
	}
	runs = append(runs, makeRun(text, start, len(text), strong))
	tracing.P("text", len(text)).Debugf("split into %d script run(s)", len(runs))
	return runs
}

func makeRun(text string, start, end int, strong rune) Run {
	script := uniprop.Unknown
	if strong >= 0 {
		script = uniprop.ScriptFor(strong)
	}
	return Run{
		Script: script,
		Start:  start,
		End:    end,
		Text:   text[start:end],
	}
}
