package conformance

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/textpipe/internal/ucdparse"
)

// Scripts runs a property file in the format of Scripts.txt against the
// Script property of the runner's provider. Of large code-point ranges only
// a sample is checked.
func (r *Runner) Scripts(in io.Reader) (Summary, error) {
	c := r.newCollector()
	tf := ucdparse.NewTestFile(in)
	for tf.Scan() {
		token, err := ucdparse.ParseLine(tf.Text())
		if err != nil {
			c.skip(tf.LineNo(), err)
			continue
		}
		expected, err := r.ParseScript(token.Field(1))
		if err != nil {
			c.skip(tf.LineNo(), err)
			continue
		}
		from, to := token.Range()
		for _, cp := range sampleRange(from, to) {
			if actual := r.props.Script(cp); actual == expected {
				c.pass()
			} else {
				c.fail(Sample{
					LineNo:   tf.LineNo(),
					Position: int(cp),
					Expected: expected.String(),
					Actual:   actual.String(),
					Comment:  fmt.Sprintf("%#U", cp),
				})
			}
		}
	}
	return c.done("scripts"), tf.Err()
}

// ScriptAnalyzerTest runs a file listing code-point sequences and their
// expected resolved scripts against the script analyzer.
func (r *Runner) ScriptAnalyzerTest(in io.Reader) (Summary, error) {
	c := r.newCollector()
	tf := ucdparse.NewTestFile(in)
	expected := make([]language.Script, 0, 32)
	for tf.Scan() {
		token, err := ucdparse.ParseLine(tf.Text())
		if err == nil && token.IsRange {
			err = fmt.Errorf("ranges not allowed in script analyzer tests")
		}
		if err != nil {
			c.skip(tf.LineNo(), err)
			continue
		}
		names := strings.Fields(token.Field(1))
		if len(names) != len(token.Codepoints) {
			c.skip(tf.LineNo(), fmt.Errorf("%d code-points, but %d scripts", len(token.Codepoints), len(names)))
			continue
		}
		expected = expected[:0]
		for _, name := range names {
			sc, e := r.ParseScript(name)
			if e != nil {
				err = e
				break
			}
			expected = append(expected, sc)
		}
		if err != nil {
			c.skip(tf.LineNo(), err)
			continue
		}
		actual := r.scripts.Analyze(token.Codepoints)
		pos := -1
		for i := range expected {
			if actual[i] != expected[i] {
				pos = i
				break
			}
		}
		if pos < 0 {
			c.pass()
			continue
		}
		c.fail(Sample{
			LineNo:   tf.LineNo(),
			Position: pos,
			Expected: expected[pos].String(),
			Actual:   actual[pos].String(),
			Comment:  tf.Comment(),
		})
	}
	return c.done("script analyzer"), tf.Err()
}

// sampleRange returns the code-points of [from…to] to check. Ranges of up to
// 10 code-points are checked completely. Of larger ones the first, second,
// middle, second-to-last and last code-point plus 4 equidistant
// code-points are checked.
func sampleRange(from, to rune) []rune {
	if to < from {
		return nil
	}
	n := to - from + 1
	if n <= 10 {
		cps := make([]rune, 0, n)
		for cp := from; cp <= to; cp++ {
			cps = append(cps, cp)
		}
		return cps
	}
	cps := []rune{from, from + 1, from + n/2, to - 1, to}
	for k := rune(1); k <= 4; k++ {
		cps = append(cps, from+k*n/5)
	}
	return cps
}

// ParseScript finds a script by its long Unicode name, e.g. "Old_Italic", or
// by its ISO 15924 code, e.g. "Ital". Long names are known for the most
// common scripts only, unless aliases have been loaded with ScriptAliases.
func (r *Runner) ParseScript(name string) (language.Script, error) {
	if code, ok := r.aliases[strings.ToLower(name)]; ok {
		name = code
	}
	if len(name) != 4 {
		return 0, fmt.Errorf("conformance: unknown script %q", name)
	}
	return language.ParseScript(name)
}

// ScriptAliases loads script names from a file in the format of
// PropertyValueAliases.txt:
//
//   sc ; Latn                             ; Latin
//
// Lines for properties other than 'sc' are ignored.
func (r *Runner) ScriptAliases(in io.Reader) error {
	tf := ucdparse.NewTestFile(in)
	cnt := 0
	for tf.Scan() {
		fields := strings.Split(tf.Text(), ";")
		if len(fields) < 3 || strings.TrimSpace(fields[0]) != "sc" {
			continue
		}
		code := strings.TrimSpace(fields[1])
		for _, f := range fields[2:] {
			r.aliases[strings.ToLower(strings.TrimSpace(f))] = code
		}
		cnt++
	}
	tracer().Debugf("conformance: loaded %d script aliases", cnt)
	return tf.Err()
}

func builtinScriptAliases() map[string]string {
	aliases := map[string]string{
		"common":     "Zyyy",
		"inherited":  "Zinh",
		"unknown":    "Zzzz",
		"latin":      "Latn",
		"greek":      "Grek",
		"cyrillic":   "Cyrl",
		"armenian":   "Armn",
		"hebrew":     "Hebr",
		"arabic":     "Arab",
		"syriac":     "Syrc",
		"thaana":     "Thaa",
		"nko":        "Nkoo",
		"devanagari": "Deva",
		"bengali":    "Beng",
		"gurmukhi":   "Guru",
		"gujarati":   "Gujr",
		"oriya":      "Orya",
		"tamil":      "Taml",
		"telugu":     "Telu",
		"kannada":    "Knda",
		"malayalam":  "Mlym",
		"sinhala":    "Sinh",
		"thai":       "Thai",
		"lao":        "Laoo",
		"tibetan":    "Tibt",
		"myanmar":    "Mymr",
		"georgian":   "Geor",
		"hangul":     "Hang",
		"ethiopic":   "Ethi",
		"cherokee":   "Cher",
		"khmer":      "Khmr",
		"mongolian":  "Mong",
		"hiragana":   "Hira",
		"katakana":   "Kana",
		"bopomofo":   "Bopo",
		"han":        "Hani",
		"yi":         "Yiii",
		"old_italic": "Ital",
		"gothic":     "Goth",
		"braille":    "Brai",
	}
	return aliases
}
