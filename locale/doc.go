/*
Package locale deals with BCP-47 locale identifiers: decomposing them
into their subtags, and detecting the locale of the user's environment.

Shapers use the locale to select language systems in fonts and to
tailor script-specific behavior; the subtag iterator lets them inspect
an identifier without allocating a parsed representation:

	it := locale.NewSubtags("zh-Hant-TW")
	for tag, ok := it.Next(); ok; tag, ok = it.Next() {
		// tag.Kind, tag.Value
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package locale
