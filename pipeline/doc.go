/*
Package pipeline wires the stages of text preparation together.

A Processor owns one instance of every stage: markup parser, script analyzer,
bidi analyzer, itemizer, line breaker and layouter. Shaping is delegated
to a shaping.Shaper supplied by the client. Calling Process runs a text
through all of the stages:

   proc, err := pipeline.New(ucd.Default(), shaping.NewMonospace(nil), pipeline.MaxWidth(400))
   res, err := proc.Process("Hello <b>World</b>", fonts)
   for _, g := range res.Glyphs() {
       // render glyph g
   }

A Processor re-uses its buffers and is not safe for concurrent use.
Clients processing text in parallel borrow processors from a Pool.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package pipeline

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
