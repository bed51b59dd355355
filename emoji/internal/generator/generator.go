/*
Package for a generator for UTS#51 Emoji character classes.

Content

Generator for Unicode Emoji code-point classes. For more information
see http://www.unicode.org/reports/tr51/#Emoji_Properties_and_Data_Files

Classes are generated from a companion file: "emoji-data.txt".


Usage

The generator has just one option, a "verbose" flag. It should usually
be turned on.

   generator [-v]

This creates a file "emojiclasses.go" in the current directory. It is designed
to be called from the "emoji" directory.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"text/template"
	"time"

	"os"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/clusters/internal/testdata"
	"github.com/npillmayer/clusters/internal/ucdparse"
)

var logger = log.New(os.Stderr, "UTS#51 generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

var emojiClassnames = []string{
	"Emoji",
	"Emoji_Presentation",
	"Emoji_Modifier",
	"Emoji_Modifier_Base",
	"Emoji_Component",
	"Extended_Pictographic",
}

// Load the Unicode UTS#51 definition file: emoji-data.txt
func loadUnicodeEmojiDataFile() (map[string]*arraylist.List, error) {
	if verbose {
		logger.Printf("reading emoji-data.txt")
	}
	defer timeTrack(time.Now(), "loading emoji-data.txt")

	reader, err := testdata.UCDReader("emoji/emoji-data.txt")
	if err != nil {
		return nil, err
	}
	parser, err := ucdparse.New(reader)
	if err != nil {
		return nil, err
	}
	runeranges := make(map[string]*arraylist.List, len(emojiClassnames))
	for parser.Next() {
		from, to := parser.Token.Range()
		clstr := strings.TrimSpace(parser.Token.Field(1))
		list, ok := runeranges[clstr]
		if !ok {
			list = arraylist.New()
			runeranges[clstr] = list
		}
		list.Add(codePointRange{from, to})
	}
	err = parser.Token.Error
	if err != nil {
		log.Fatal(err)
	}
	return runeranges, err
}

// codePointRange is an inclusive range of code-points sharing an emoji class.
type codePointRange struct {
	From, To rune
}

// --- Templates --------------------------------------------------------

var header = `package emoji

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)

import (
    "strconv"
    "unicode"
)
`

var templateClassType = `
// Type for UTS#51 emoji code-point classes.
// Must be convertable to int.
type EmojisClass int
`

var templateClassConsts = `
// These are all the UTS#51 emoji classes.
const ( {{$i:=0}}
{{range  .}}    {{.}}Class EmojisClass = {{$i}}{{$i = inc $i}}
{{end}})
`

var templateClassStringer = `
const _EmojisClass_name = "{{range $c,$name := .}}{{$name}}Class{{end}}"

var _EmojisClass_index = [...]uint16{0{{startinxs .}} }

// Stringer for type EmojisClass
func (c EmojisClass) String() string {
    if c < 0 || c >= EmojisClass(len(_EmojisClass_index)-1) {
        return "EmojisClass(" + strconv.FormatInt(int64(c), 10) + ")"
    }
    return _EmojisClass_name[_EmojisClass_index[c]:_EmojisClass_index[c+1]]
}
`

// Helper functions for templates
var funcMap = template.FuncMap{
	"inc": func(i int) int {
		return i + 1
	},
	"startinxs": func(str []string) string {
		out := ""
		total := 0
		for _, s := range str {
			l := len(s) + 5
			total += l
			if (41+len(out))%80 > 75 {
				out += fmt.Sprintf(",\n    %d", total)
			} else {
				out += fmt.Sprintf(", %d", total)
			}
		}
		return out
	},
}

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	t := template.Must(template.New(name).Funcs(funcMap).Parse(templString))
	return t
}

// --- Main -------------------------------------------------------------

func generateRanges(w *bufio.Writer, codePointLists map[string]*arraylist.List) {
	defer timeTrack(time.Now(), "generate range tables")

	for _, key := range emojiClassnames {
		list := codePointLists[key]
		ranges := make([]codePointRange, 0, list.Size())
		list.Each(func(_ int, value interface{}) {
			ranges = append(ranges, value.(codePointRange))
		})
		sort.Slice(ranges, func(i, j int) bool { return ranges[i].From < ranges[j].From })
		w.WriteString(fmt.Sprintf("\n// Range for Emoji class %s\n", key))
		w.WriteString(fmt.Sprintf("var %s = &unicode.RangeTable{\n", key))
		writeRangeLiterals(w, ranges, false)
		writeRangeLiterals(w, ranges, true)
		w.WriteString("}\n")
	}
	w.WriteString("\n// Lookup table from emoji class to code-point ranges.\n")
	w.WriteString("var rangeFromEmojisClass = []*unicode.RangeTable{\n")
	for _, key := range emojiClassnames {
		w.WriteString(fmt.Sprintf("\t%s,\n", key))
	}
	w.WriteString("}\n")
}

// writeRangeLiterals emits the R16 or R32 member of a range table literal.
func writeRangeLiterals(w *bufio.Writer, ranges []codePointRange, wide bool) {
	member, limit := "R16", rune(0xFFFF)
	if wide {
		member = "R32"
	}
	wrote := false
	for _, rg := range ranges {
		if wide != (rg.From > limit) {
			continue
		}
		if !wrote {
			w.WriteString(fmt.Sprintf("\t%s: []unicode.Range%s{\n", member, member[1:]))
			wrote = true
		}
		w.WriteString(fmt.Sprintf("\t\t{0x%04X, 0x%04X, 1},\n", rg.From, rg.To))
	}
	if wrote {
		w.WriteString("\t},\n")
	}
}

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	flag.Parse()
	verbose = *doVerbose
	codePointLists, err := loadUnicodeEmojiDataFile()
	checkFatal(err)
	if verbose {
		logger.Printf("loaded %d Emoji code-point classes\n", len(codePointLists))
	}
	f, ioerr := os.Create("emojiclasses.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	w.WriteString(header)
	w.WriteString(templateClassType)
	t := makeTemplate("Emoji classes", templateClassConsts)
	checkFatal(t.Execute(w, emojiClassnames))
	t = makeTemplate("Emoji classes stringer", templateClassStringer)
	checkFatal(t.Execute(w, emojiClassnames))
	generateRanges(w, codePointLists)
	w.Flush()
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
