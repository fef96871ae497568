package markup

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/textpipe"
)

// RGBA is a color with 8 bits per channel, encoded as 0xRRGGBBAA.
type RGBA uint32

func (c RGBA) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// Unit is the unit of a length value.
type Unit uint8

// Lengths are given in points unless a unit suffix is present.
const (
	Points  Unit = iota // no suffix
	Percent             // %
	Em                  // em
	Pixels              // px
)

func (u Unit) String() string {
	switch u {
	case Percent:
		return "%"
	case Em:
		return "em"
	case Pixels:
		return "px"
	}
	return "pt"
}

// Length is a numeric value with a unit.
type Length struct {
	Value float32
	Unit  Unit
}

func (l Length) String() string {
	return strconv.FormatFloat(float64(l.Value), 'f', -1, 32) + l.Unit.String()
}

// Value is the parsed value of a tag. Which field is significant depends on
// the tag's Kind.
type Value struct {
	Color  RGBA               // Color, Underline, Strikethrough, Mark
	Alpha  uint8              // Alpha
	Length Length             // Size, CharSpacing, Indent, LineHeight
	Text   string             // Font, Link
	Align  textpipe.Alignment // Align
}

// ValueParser parses the value string of a tag. It returns false if the
// value is malformed.
type ValueParser func(string) (Value, bool)

var namedColors = map[string]RGBA{
	"red":     0xFF0000FF,
	"green":   0x008000FF,
	"blue":    0x0000FFFF,
	"white":   0xFFFFFFFF,
	"black":   0x000000FF,
	"yellow":  0xFFFF00FF,
	"cyan":    0x00FFFFFF,
	"magenta": 0xFF00FFFF,
	"gray":    0x808080FF,
	"grey":    0x808080FF,
	"orange":  0xFFA500FF,
	"purple":  0x800080FF,
}

// ParseColor parses a color name or a hex color of the form #RRGGBB or
// #RRGGBBAA. Colors without an alpha channel are opaque.
func ParseColor(s string) (RGBA, bool) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, true
	}
	if len(s) == 0 || s[0] != '#' {
		return 0, false
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return 0, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	if len(hex) == 6 {
		return RGBA(n<<8 | 0xFF), true
	}
	return RGBA(n), true
}

// ParseLength parses a finite number with an optional unit suffix (%, em,
// px). Suffixes are case-insensitive.
func ParseLength(s string) (Length, bool) {
	unit := Points
	lower := strings.ToLower(s)
	switch {
	case strings.HasSuffix(lower, "%"):
		unit, s = Percent, s[:len(s)-1]
	case strings.HasSuffix(lower, "em"):
		unit, s = Em, s[:len(s)-2]
	case strings.HasSuffix(lower, "px"):
		unit, s = Pixels, s[:len(s)-2]
	}
	if s == "" {
		return Length{}, false
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Length{}, false
	}
	return Length{Value: float32(f), Unit: unit}, true
}

// ParseAlignment parses one of left, center, right, justified (or justify).
func ParseAlignment(s string) (textpipe.Alignment, bool) {
	switch strings.ToLower(s) {
	case "left":
		return textpipe.Left, true
	case "center":
		return textpipe.Center, true
	case "right":
		return textpipe.Right, true
	case "justified", "justify":
		return textpipe.Justified, true
	}
	return textpipe.Left, false
}

// --- Value parsers for the built-in tags -----------------------------------

func colorValue(s string) (Value, bool) {
	c, ok := ParseColor(s)
	return Value{Color: c}, ok
}

// alphaValue parses AA, #AA or #A. A single digit is doubled.
func alphaValue(s string) (Value, bool) {
	hex, short := s, false
	if strings.HasPrefix(s, "#") {
		hex = s[1:]
		short = len(hex) == 1
	}
	if len(hex) != 2 && !short {
		return Value{}, false
	}
	n, err := strconv.ParseUint(hex, 16, 8)
	if err != nil {
		return Value{}, false
	}
	if short {
		n = n<<4 | n
	}
	return Value{Alpha: uint8(n)}, true
}

func lengthValue(s string) (Value, bool) {
	l, ok := ParseLength(s)
	return Value{Length: l}, ok
}

func textValue(s string) (Value, bool) {
	return Value{Text: s}, s != ""
}

func alignValue(s string) (Value, bool) {
	a, ok := ParseAlignment(s)
	return Value{Align: a}, ok
}
