/*
Package clusters segments Unicode text into shaping clusters.

Description

Glyph shaping does not operate on single code points: the atomic unit a
shaper consumes is the cluster, a bounded run of characters that must be
matched to glyphs together. For most scripts a cluster coincides with an
extended grapheme cluster; complex scripts (the Indic family, Khmer,
Tibetan, Myanmar and others) cluster by syllable instead, with every
character carrying a shaping role like base consonant, halant, or
pre-base vowel.

This module provides the pipeline from raw text to such clusters:

▪︎ Package uniprop resolves the Unicode properties shaping cares about
(category, script, combining class, joining type, break classes, emoji
and bracket flags) into compact interned property values.

▪︎ Package paragraph computes word and line boundary signals, which
travel with each character so that shaped clusters keep their layout
information.

▪︎ Package cluster is the core: the pull-based cluster parser with its
simple, Use and Myanmar engines.

▪︎ Package segment drives the pipeline: it tags text and splits it into
same-script runs.

▪︎ Package locale decomposes BCP-47 identifiers and detects the user's
locale.

▪︎ Packages shaping and emoji hold the generated property tables the
pipeline draws from.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package clusters
