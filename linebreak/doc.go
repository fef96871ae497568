/*
Package linebreak breaks shaped text into lines.

Line breaking works on shaped runs. The break opportunities of a paragraph
are calculated once per call by package uax14. Runs are split at break
opportunities into pieces, and pieces are filled into lines greedily: a
line is cut at the last break opportunity before the piece which would make
it overflow. A mandatory break (e.g., a newline) always cuts.

After the lines are determined, the runs of each line are put into visual
order by reversing maximal sequences of runs with an embedding level ≥ k,
for k from the line's highest level down to 1. Glyphs within a run are never
re-ordered; this is left to layout.

Ranges of text may be protected from breaking, e.g. text marked up with
<nobr>. Mandatory breaks are honoured inside protected ranges.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package linebreak

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
