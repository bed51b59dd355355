/*
Package paragraph computes word and line boundary signals for runs of
text, at character granularity.

Content

The cluster parser does not segment words or lines itself; it merely
carries boundary flags through to the emitted clusters. This package is
the collaborator producing those flags: a reduced UAX#29 word boundary
pass and a reduced UAX#14 line breaking pass over the break classes
carried by uniprop.Properties. Results are packed into the 3 spare
boundary bits of a property value.

	runes, props, bounds := paragraph.AnalyzeString("noic jaunt")
	for i := range runes {
		props[i].SetBoundary(bounds[i].Bits())
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package paragraph
