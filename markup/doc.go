/*
Package markup separates rich-text markup from the characters of a text.

A text like

   Hello <color=red>colorful <b>world</b></color>!

is transformed into a flat sequence of code-points ("Hello colorful world!")
plus a list of attributes, each covering a range of code-points:

   color=#FF0000FF  [6,20)
   bold             [15,20)

Tags are looked up in a Registry, which maps case-insensitive tag names to
tag definitions. A tag is either scoped (it covers the text up to its closing
tag), self-closing (it stands for a single character, e.g. <br>), or
<noparse>, which switches off tag recognition up to </noparse>.
Scopes of the same tag may nest, and scopes of different tags may overlap
freely; they are tracked on one stack per tag. Tags not closed at the end
of the input are closed there.

Malformed markup never produces an error. Anything that does not form a
complete, known tag with a well-formed value is kept as literal text.

After parsing, the attributes are condensed into attribute snapshots: runs of
text sharing the same set of covering attributes get the same snapshot id.
Snapshot ids change exactly at the positions where the set changes. Text
itemization uses these ids to split runs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package markup

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
