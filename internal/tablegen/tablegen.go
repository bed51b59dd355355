/*
Generator for Unicode property range tables.

tablegen reads a Unicode Character Database file and emits one Go
source file containing a unicode.RangeTable literal per property
value found in a given field of the file. It backs the generated
tables of package shaping.

Usage

	tablegen -f <field> -p <package> -o <outfile> -x <prefix> -u <url>

where field is the UCD field holding the property value, prefix is
prepended to every emitted variable name, and url locates the UCD
file to read.

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
	"net/http"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/npillmayer/clusters/internal/ucdparse"
)

var logger = log.New(os.Stderr, "tablegen: ", log.LstdFlags)

var (
	verbose bool
	field   int
	pkg     string
	outname string
	prefix  string
	url     string
)

// codePointRange is a contiguous range of code points sharing a
// property value.
type codePointRange struct {
	From, To rune
}

// loadPropertyFile fetches and parses a UCD file, collecting the code
// point ranges per property value found in the configured field.
func loadPropertyFile() (map[string][]codePointRange, error) {
	if verbose {
		logger.Printf("fetching %s", url)
	}
	defer timeTrack(time.Now(), "loading UCD file")

	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}
	p, err := ucdparse.New(resp.Body)
	if err != nil {
		return nil, err
	}
	ranges := make(map[string][]codePointRange)
	for p.Next() {
		from, to := p.Token.Range()
		value := strings.TrimSpace(p.Token.Field(field))
		if value == "" {
			continue
		}
		ranges[value] = append(ranges[value], codePointRange{from, to})
	}
	return ranges, p.Token.Error
}

// coalesce sorts ranges and merges adjacent or overlapping ones.
func coalesce(ranges []codePointRange) []codePointRange {
	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].From < ranges[j].From
	})
	out := ranges[:0]
	for _, r := range ranges {
		if n := len(out); n > 0 && r.From <= out[n-1].To+1 {
			if r.To > out[n-1].To {
				out[n-1].To = r.To
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// varName derives the name of the emitted range table variable from a
// property value, e.g. "Consonant_Placeholder" -> "UISC_Consonant_Placeholder".
func varName(value string) string {
	clean := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return '_'
		}
		return r
	}, value)
	return prefix + "_" + clean
}

func writeHeader(w *bufio.Writer) {
	fmt.Fprintf(w, "package %s\n\n", pkg)
	w.WriteString("// This file has been generated -- you probably should NOT EDIT IT !\n")
	w.WriteString("//\n")
	fmt.Fprintf(w, "// tablegen -f %d -p %s -o %s -x %s\n", field, pkg, outname, prefix)
	fmt.Fprintf(w, "//          -u %s\n", url)
	w.WriteString("//\n")
	w.WriteString("// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)\n\n")
	w.WriteString("import \"unicode\"\n")
}

// writeRangeTable emits one unicode.RangeTable literal, split into the
// 16 bit and 32 bit plane entries.
func writeRangeTable(w *bufio.Writer, name string, ranges []codePointRange) {
	fmt.Fprintf(w, "\nvar %s = &unicode.RangeTable{\n", name)
	var r16, r32 []codePointRange
	for _, r := range ranges {
		if r.To <= 0xFFFF {
			r16 = append(r16, r)
		} else if r.From > 0xFFFF {
			r32 = append(r32, r)
		} else {
			r16 = append(r16, codePointRange{r.From, 0xFFFF})
			r32 = append(r32, codePointRange{0x10000, r.To})
		}
	}
	if len(r16) > 0 {
		w.WriteString("\tR16: []unicode.Range16{\n")
		for _, r := range r16 {
			fmt.Fprintf(w, "\t\t{0x%04X, 0x%04X, 1},\n", r.From, r.To)
		}
		w.WriteString("\t},\n")
	}
	if len(r32) > 0 {
		w.WriteString("\tR32: []unicode.Range32{\n")
		for _, r := range r32 {
			fmt.Fprintf(w, "\t\t{0x%X, 0x%X, 1},\n", r.From, r.To)
		}
		w.WriteString("\t},\n")
	}
	w.WriteString("}\n")
}

func main() {
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.IntVar(&field, "f", 1, "UCD field holding the property value")
	flag.StringVar(&pkg, "p", "shaping", "name of the target package")
	flag.StringVar(&outname, "o", "tables.go", "output file name")
	flag.StringVar(&prefix, "x", "T", "prefix for emitted variable names")
	flag.StringVar(&url, "u", "", "URL of the UCD file to read")
	flag.Parse()
	if url == "" {
		logger.Fatal("no UCD file given, use -u")
	}

	ranges, err := loadPropertyFile()
	checkFatal(err)

	f, err := os.Create(outname)
	checkFatal(err)
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	writeHeader(w)
	values := make([]string, 0, len(ranges))
	for value := range ranges {
		values = append(values, value)
	}
	sort.Strings(values)
	for _, value := range values {
		writeRangeTable(w, varName(value), coalesce(ranges[value]))
	}
	if verbose {
		logger.Printf("created %s with %d range tables", outname, len(values))
	}
}

func checkFatal(err error) {
	if err != nil {
		_, file, line, _ := runtime.Caller(1)
		logger.Printf("%s:%d", file, line)
		logger.Fatal(err)
	}
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	if verbose {
		logger.Printf("timing: %s took %s", name, elapsed)
	}
}
