/*
Package uniprop provides a compact Unicode property lookup for
shaping-cluster analysis.

Content

The central type is Properties, a 16 bit value wrapping an interned
property record: general category, script, combining class, bidi class,
joining type, segmentation break classes, emoji and bracket flags, and
the auxiliary classes of the complex cluster engines. Lookup is total
and allocation free after the first sight of a character:

	props := uniprop.PropertiesFor('क')
	if props.Script().IsComplex() {
		…
	}

Three spare bits of each Properties value are reserved for boundary
flags, attached later by the boundary analysis in package paragraph.

The package additionally carries codepoint helpers for paired brackets,
mirrored characters and canonical (de)composition, which cluster
analysis consumes as pure functions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package uniprop
