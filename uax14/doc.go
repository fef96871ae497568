/*
Package uax14 implements Unicode Annex #14 line breaking.

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

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


Contents

UAX#14 is the Unicode Annex for Line Breaking (Line Wrap).
It defines a bunch of code-point classes and a set of rules
for how to place break points / break inhibitors.
This package implements the complete rule set LB4 to LB31, including the
rules for quotation marks (LB15a to LB15d, LB19a), Brahmic scripts (LB28a)
and unambiguous hyphens (LB20a, LB21a).

Typical Usage

Clients instantiate a UAX#14 line breaker object, giving it a provider for
Unicode character properties:

  linewrap, err := uax14.NewLineWrap(ucd.Default())
  breaks := linewrap.Breaks([]rune("Hello World"))
  // breaks[6] == true: a line may start at 'W'

The result has one entry more than the input: breaks[i] tells if a line
may start at position i. breaks[0] is always false (except for empty input),
breaks[len(input)] is always true.

A LineWrap may also be used as the breaking engine for a segment.Segmenter.

Decisions

Every decision is a pure function of the input buffer and a position.
There is no state carried from one position to the next, which makes
the breaker robust against restarts and lets clients ask for single
positions with CanBreakAt.
Classes are looked up once per call and cached.

Status

Conformance depends on the version of the Unicode data in use, see
package conformance for running LineBreakTest.txt. */
package uax14

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// TC traces to the core-tracer.
func TC() tracing.Trace {
	return gtrace.CoreTracer
}
