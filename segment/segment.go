package segment

import (
	"io"
	"unicode/utf8"

	"github.com/npillmayer/clusters/cluster"
	"github.com/npillmayer/clusters/internal/tracing"
	"github.com/npillmayer/clusters/paragraph"
)

// Tag annotates every rune of text with its Unicode properties and the
// word and line boundary signals, yielding the source characters a
// cluster parser consumes. Offsets and lengths are in UTF-8 bytes.
func Tag(text string) []cluster.SourceChar {
	return tagFrom(text, 0)
}

// tagFrom tags text with byte offsets starting at base, so that runs
// cut out of a larger text keep their original offsets.
func tagFrom(text string, base int) []cluster.SourceChar {
	runes, props, bounds := paragraph.AnalyzeString(text)
	chars := make([]cluster.SourceChar, len(runes))
	offset := base
	for i, r := range runes {
		l := utf8.RuneLen(r)
		chars[i] = cluster.SourceChar{
			Ch:     r,
			Offset: offset,
			Len:    uint8(l),
			Info:   cluster.NewCharInfo(props[i], bounds[i].Word, bounds[i].Line),
		}
		offset += l
	}
	return chars
}

// NewSource returns a streaming character source over text, ready to
// be handed to a cluster parser.
func NewSource(text string) cluster.Source {
	return cluster.NewSliceSource(Tag(text))
}

// ReadSource drains r and returns a character source over its content.
func ReadSource(r io.Reader) (cluster.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		tracing.Errorf("reading text source: %v", err)
		return nil, err
	}
	return NewSource(string(data)), nil
}

// Clusters tags text, splits it into same-script runs and parses each
// run with the engine its script calls for, returning all shaping
// clusters in text order. Character offsets refer to text.
func Clusters(text string) []cluster.Cluster {
	var out []cluster.Cluster
	for _, run := range ScriptRuns(text) {
		src := cluster.NewSliceSource(tagFrom(run.Text, run.Start))
		parser := cluster.NewParser(run.Script, src)
		var c cluster.Cluster
		for parser.Next(&c) {
			out = append(out, c)
		}
	}
	return out
}
