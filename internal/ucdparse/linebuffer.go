package ucdparse

import (
	"bufio"
	"io"
	"strings"
)

// lineBuffer abstracts away the properties of line-wise input readers.
// The scanner sees the current line of input through a lineBuffer, together
// with a single rune of lookahead.
type lineBuffer struct {
	input       *bufio.Scanner
	Line        *strings.Reader // reader over the current line of input
	Text        string          // text of the current line
	Lookahead   rune            // lookahead rune; 0 at end of line
	ByteCursor  int             // byte position just past the lookahead
	Cursor      int64           // rune position of the lookahead within the line
	CurrentLine int             // line number, starting with 1
	eof         bool            // no more lines to read
}

// newLineBuffer wraps an input reader and positions the buffer on the first
// line of input, with the lookahead primed.
func newLineBuffer(inputReader io.Reader) *lineBuffer {
	buf := &lineBuffer{input: bufio.NewScanner(inputReader)}
	buf.AdvanceLine()
	return buf
}

// IsEof signals that the input is exhausted.
func (buf *lineBuffer) IsEof() bool {
	return buf.eof
}

// AdvanceLine proceeds to the next line of input and primes the lookahead.
// At the end of input the buffer switches to EOF state.
func (buf *lineBuffer) AdvanceLine() {
	if !buf.input.Scan() {
		buf.eof = true
		buf.Text = ""
		buf.Line = strings.NewReader("")
		buf.Lookahead = 0
		return
	}
	buf.Text = buf.input.Text()
	buf.Line = strings.NewReader(buf.Text)
	buf.CurrentLine++
	buf.Cursor = 0
	buf.ByteCursor = 0
	buf.read()
}

// read fills the lookahead with the next rune of the current line. At the end
// of the line the lookahead is set to 0 and the byte cursor moves past the
// line's end.
func (buf *lineBuffer) read() {
	r, sz, err := buf.Line.ReadRune()
	if err != nil {
		buf.Lookahead = 0
		buf.ByteCursor = len(buf.Text) + 1
		return
	}
	buf.Lookahead = r
	buf.ByteCursor += sz
}

// match consumes the lookahead if m accepts it.
func (buf *lineBuffer) match(m runeMatcher) bool {
	if !m(buf.Lookahead) {
		return false
	}
	buf.Cursor++
	buf.read()
	return true
}

// ReadLineRemainder returns the rest of the current line, starting at the
// lookahead, and advances the buffer to the next line.
func (buf *lineBuffer) ReadLineRemainder() string {
	start := buf.ByteCursor - 1
	var rest string
	if start >= 0 && start < len(buf.Text) {
		rest = buf.Text[start:]
	}
	buf.AdvanceLine()
	return rest
}

// runeMatcher is a predicate on the lookahead rune.
type runeMatcher func(rune) bool

// singleRune returns a matcher accepting exactly rune r.
func singleRune(r rune) runeMatcher {
	return func(la rune) bool { return la == r }
}
