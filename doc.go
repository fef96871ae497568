/*
Package textpipe is about preparing Unicode text for shaping and layout.

Description

A string of text carrying markup has to travel a long way before glyphs
can be put on a screen. Markup has to be separated from the characters,
characters have to be classified by writing system and by bidirectional
embedding level, the text has to be split into runs which a shaping engine
is able to process as a unit, and the shaped runs finally have to be broken
into lines and positioned.

Package textpipe and its sub-packages implement this pipeline, leaving
the shaping engine (i.e., a HarfBuzz-like glyph substitution and positioning
engine) and the rendering to external collaborators:

   markup text ─▶ markup.Parser      ─▶ codepoints + attributes
               ─▶ uax24.Analyzer     ─▶ scripts
               ─▶ bidi.Analyzer      ─▶ embedding levels
               ─▶ itemize.Itemizer   ─▶ TextRuns
               ─▶ shaping.Shaper     ─▶ ShapedRuns + Glyphs      (external)
               ─▶ linebreak.Breaker  ─▶ Lines + ordered runs
               ─▶ layout.Layout      ─▶ PositionedGlyphs

Breaking opportunities are calculated by package uax14, which implements the
complete rule set of the Unicode Line Breaking Algorithm. All analysis
components consult Unicode character properties through a ucd.Provider,
which is created once and shared read-only between any number of pipelines.
Package pipeline wires everything together.

Conformance

Unicode publishes test files for most of its algorithms. Package conformance
contains runners for some of these files (LineBreakTest.txt,
GraphemeBreakTest.txt, Scripts.txt), reporting pass/fail counts and a
sample of mismatches.

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

Buffers

Every component of the pipeline owns its scratch buffers. Buffers grow on
demand and are truncated, not freed, at the start of each call. Slices
returned from a component are views into these buffers and stay valid
until the next call to the same component instance. Consequently a
component instance must not be used from more than one goroutine at a time;
clients wanting parallelism create one pipeline per worker or borrow
pipelines from a pipeline.Pool.
*/
package textpipe

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
