/*
Package conformance runs the test files published by the Unicode Consortium
against the components of this module.

Supported formats are the break test files LineBreakTest.txt and
GraphemeBreakTest.txt, the property file Scripts.txt and files listing
code-point sequences together with the scripts the script analyzer is expected
to resolve them to:

   0041 0020 05D0 ; Latn Latn Hebr   # comment

Scripts may be given by their ISO 15924 code or by their long Unicode
name. A Runner never stops at the first mismatch. It counts passed, failed and
skipped test cases and keeps a sample of failures for diagnostics:

   runner, _ := conformance.NewRunner(ucd.Default(), conformance.MaxSamples(10))
   f, _ := os.Open("LineBreakTest.txt")
   summary, err := runner.LineBreakTest(f)
   fmt.Println(summary)

Test files are not part of this module. Conformance is expected for
test files matching the Unicode version of the property provider only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package conformance

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
