/*
Package ucd provides Unicode character properties for the text pipeline.

All analysis components of package textpipe consult character properties
through a Provider: line break classes (UAX #14), general categories,
scripts (UAX #24), East Asian widths (UAX #11) and a few predicates needed
by the line breaking rules.
A Provider is read-only after construction and may be shared between any
number of goroutines and pipelines.

The default provider is assembled from the tables of github.com/go-text/typesetting
and golang.org/x/text. Line break classes introduced by recent versions of
the Unicode standard (AK, AP, AS, VF, VI, HH) are not covered by these
tables. They are supplied by an overlay table consulted first, which clients
may extend with WithOverlay.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucd

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textpipe.ucd'.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
