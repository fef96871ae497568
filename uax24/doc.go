/*
Package uax24 resolves the script of every code-point of a text, following
UAX#24 "Unicode Script Property".

Characters of scripts Common and Inherited (punctuation, digits, combining
marks, etc.) do not belong to a specific writing system. For shaping, however,
every code-point needs a concrete script. Analyzer resolves them in three passes:

   1. look up the script property of each code-point
   2. Common and Inherited code-points take the script of the nearest
      preceding code-point with a concrete script
   3. leading Common and Inherited code-points take the script of the
      nearest following code-point with a concrete script

If a text consists of Common and Inherited code-points only, they are left
unresolved.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package uax24

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
