package ucdparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	propertyLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Field", Pattern: `;[^;#\n]*`},
		{Name: "Dots", Pattern: `\.\.`},
		{Name: "Hex", Pattern: `[0-9A-Fa-f]+`},
	})

	propertyParser = participle.MustBuild[propertyLine](
		participle.Lexer(propertyLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// propertyLine is the grammar of a data line:
//
//   line   = hex ( '..' hex | hex+ )? field+
//   field  = ';' text
//
// The comment is elided.
type propertyLine struct {
	First  string   `parser:"@Hex"`
	Last   string   `parser:"( Dots @Hex"`
	More   []string `parser:"  | @Hex+ )?"`
	Fields []string `parser:"@Field+"`
}

// ErrEmptyLine is returned by ParseLine for lines without data.
var ErrEmptyLine = errors.New("ucdparse: line contains no data")

// ParseLine parses a single data line of a property file, e.g.
//
//   0041..005A    ; Latin # L&  [26] LATIN CAPITAL LETTER A..LATIN CAPITAL LETTER Z
//
// or a line of a script test file, listing code-points and expected values:
//
//   0041 0020 05D0 ; Latin Latin Hebrew
func ParseLine(line string) (*Token, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	if strings.TrimSpace(line) == "" {
		return nil, ErrEmptyLine
	}
	pl, err := parsePropertyLine(line)
	if err != nil {
		return nil, err
	}
	token := &Token{}
	first, err := parseHex(pl.First)
	if err != nil {
		return nil, err
	}
	token.Codepoints = append(token.Codepoints, first)
	if pl.Last != "" {
		last, err := parseHex(pl.Last)
		if err != nil {
			return nil, err
		}
		token.Codepoints = append(token.Codepoints, last)
		token.IsRange = true
	}
	for _, h := range pl.More {
		cp, err := parseHex(h)
		if err != nil {
			return nil, err
		}
		token.Codepoints = append(token.Codepoints, cp)
	}
	for _, f := range pl.Fields {
		token.Fields = append(token.Fields, strings.TrimSpace(f[1:]))
	}
	tracer().Debugf("ucdparse: %v", token)
	return token, nil
}

// parsePropertyLine runs the participle parser, turning a parser panic
// into an error for the line.
func parsePropertyLine(line string) (pl *propertyLine, err error) {
	defer func() {
		if r := recover(); r != nil {
			pl, err = nil, fmt.Errorf("ucdparse: cannot parse %q: %v", line, r)
		}
	}()
	return propertyParser.ParseString("", line)
}

func parseHex(h string) (rune, error) {
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, err
	}
	return rune(n), nil
}
