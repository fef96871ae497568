/*
Package shaping defines the contracts between text itemization and a glyph
shaping engine.

Shaping itself, i.e. glyph substitution and positioning as done by HarfBuzz
and similar engines, is not part of this module. A Shaper receives the
code-points of a paragraph, its text runs and a FontSource, and fills a Buffer
with shaped runs and a flat slice of glyphs. Line breaking and layout then
work on the shaped runs only.

Package shaping provides Monospace, a reference shaper producing one glyph
per grapheme cluster, with advances derived from UAX#11 East Asian Width.
It is useful for terminals, tests and as a fallback.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package shaping

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
