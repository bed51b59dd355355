/*
Package shaping provides tables corresponding to Unicode® Character Data tables
relevant for text shaping.

The tables have been created by a generator CLI (source located in
github.com/npillmayer/clusters/internal/tablegen).
Parameters for calling tablegen are as follows:

▪︎ arabictables.go:

	tablegen -f 3 -p shaping -o arabictables.go -x ARAB
	         -u https://www.unicode.org/Public/13.0.0/ucd/ArabicShaping.txt

▪︎ uipctables.go:

	tablegen -f 2 -p shaping -o uipctables.go -x UIPC
	         -u https://www.unicode.org/Public/13.0.0/ucd/IndicPositionalCategory.txt

▪︎ uisctables.go:

	tablegen -f 2 -p shaping -o uisctables.go -x UISC
	         -u https://www.unicode.org/Public/13.0.0/ucd/IndicSyllabicCategory.txt

Tables are trimmed to the script repertoire supported by the cluster
engines of this module (see package uniprop).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package shaping

//go:generate go run ../internal/tablegen -f 3 -p shaping -o arabictables.go -x ARAB -u https://www.unicode.org/Public/13.0.0/ucd/ArabicShaping.txt
//go:generate go run ../internal/tablegen -f 2 -p shaping -o uipctables.go -x UIPC -u https://www.unicode.org/Public/13.0.0/ucd/IndicPositionalCategory.txt
//go:generate go run ../internal/tablegen -f 2 -p shaping -o uisctables.go -x UISC -u https://www.unicode.org/Public/13.0.0/ucd/IndicSyllabicCategory.txt
