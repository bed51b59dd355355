package ucdparse

import (
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	input := strings.NewReader("000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>")
	sc, err := New(input)
	if err != nil {
		t.Fatal(err)
	}
	if !sc.Next() {
		t.Logf("token = %v", sc.Token)
		t.Fatal(sc.Token.Error)
	}
	if !sc.Next() {
		t.Logf("token = %v", sc.Token)
		t.Fatal(sc.Token.Error)
	}
	t.Logf("token = %v", sc.Token)
	if sc.Token.Field(1) != "CM" {
		t.Errorf("expected field #1 to be 'CM', is %q", sc.Token.Field(1))
	}
	from, to := sc.Token.Range()
	if from != 0x0e || to != 0x1f {
		t.Errorf("expected range to be 0E..1F, is %02X..%02X", from, to)
	}
}

func TestParseFile(t *testing.T) {
	input := strings.NewReader(`# Derived property sample

000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>
0041;LO           # Lu         LATIN CAPITAL LETTER A
`)
	type item struct {
		from, to rune
		value    string
	}
	var items []item
	err := Parse(input, func(token *Token) {
		value := strings.TrimSpace(token.Field(1))
		if value == "" {
			return // comment or blank line
		}
		from, to := token.Range()
		items = append(items, item{from, to, value})
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 data items, have %d", len(items))
	}
	if items[0].from != 0x0e || items[0].to != 0x1f || items[0].value != "CM" {
		t.Errorf("unexpected first data item: %v", items[0])
	}
	if items[1].from != 0x41 || items[1].to != 0x41 || items[1].value != "LO" {
		t.Errorf("unexpected second data item: %v", items[1])
	}
}

func TestLineBufferRemainder(t *testing.T) {
	buf := newLineBuffer(strings.NewReader("0F00;X\n0F01;Y"))
	if buf.CurrentLine != 1 || buf.Lookahead != '0' {
		t.Fatalf("expected buffer on line 1 with lookahead '0', is line %d %#U",
			buf.CurrentLine, buf.Lookahead)
	}
	for isHexDigit(buf.Lookahead) {
		buf.match(singleRune(buf.Lookahead))
	}
	if rest := buf.ReadLineRemainder(); rest != ";X" {
		t.Errorf("expected line remainder to be \";X\", is %q", rest)
	}
	if buf.CurrentLine != 2 || buf.IsEof() {
		t.Errorf("expected buffer on line 2, is line %d, eof=%v", buf.CurrentLine, buf.IsEof())
	}
}
