/*
Package cluster segments runs of text into shaping clusters, the atomic
units a glyph shaper consumes. A cluster is either an extended grapheme
cluster (on the simple path) or a script-specific syllable (for complex
scripts), with every character annotated with its shaping role.

Clients create a Parser per same-script run and pull clusters from it:

	parser := cluster.NewParser(script, source)
	var c cluster.Cluster
	for parser.Next(&c) {
		shape(c.Chars(), c.Info())
	}

Clusters are complete: concatenating the characters of all emitted
clusters always reproduces the input run, including malformed
sequences, which are emitted as clusters flagged broken.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cluster
