/*
Package grapheme implements Unicode Annex #29 grapheme cluster breaking.

UAX#29 is the Unicode Annex for breaking text into graphemes, words
and sentences. This package is about grapheme clusters, i.e. “user
perceived characters”. The pipeline needs them for fixed-pitch shaping
and for conformance testing; the rules themselves are evaluated by the
segmenter of github.com/go-text/typesetting.

Typical Usage

Clients create a Breaker and ask for the break opportunities of a
codepoint buffer, or iterate over the clusters directly:

  var breaker grapheme.Breaker
  breaker.Clusters([]rune("éx"), func(cluster []rune, offset int) {
      …  // called twice, for "é" and "x"
  })

A Breaker may be used as the breaking engine of a segment.Segmenter.

Grapheme Strings

This package provides an additional convenience type `grapheme.String`.
Grapheme strings are a read-only data structure and not intended for large
texts, but rather for small to medium-sized strings.

	s := grapheme.StringFromString("世界")
	fmt.Printf("number of graphemes: %s", s.Len())                      // => 2
	fmt.Printf("number of bytes for 2nd grapheme: %d", len(s.Nth(1)))   // => 3

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grapheme

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
