package markup

import (
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/npillmayer/textpipe"
)

// maxTagLength is the maximum number of code-points between '<' and '>'.
const maxTagLength = 128

// Attribute is a tag's effect on a range of code-points.
type Attribute struct {
	Kind  Kind
	Range textpipe.Range
	Value Value
	Tag   TagID
}

// Parser parses text with markup. A parser re-uses its buffers between calls
// and must not be used concurrently. Any number of parsers may share a registry.
type Parser struct {
	reg    *Registry
	stacks [][]scope // one stack of open scopes per tag
	result Result
}

type scope struct {
	start int
	value Value
}

// Result holds the outcome of parsing. It is owned by the parser and valid
// until the parser's next call.
type Result struct {
	cps   []rune
	attrs []Attribute
	snaps Snapshots
}

// NewParser creates a parser for the tags of reg. If reg is nil,
// DefaultRegistry is used. Creating a parser freezes the registry.
func NewParser(reg *Registry) *Parser {
	if reg == nil {
		reg = DefaultRegistry()
	}
	reg.freeze()
	return &Parser{
		reg:    reg,
		stacks: make([][]scope, reg.Len()),
	}
}

// Parse separates text from markup.
func (p *Parser) Parse(text string) *Result {
	return p.parse([]rune(text))
}

// ParseUTF16 is like Parse for UTF-16 encoded input. Surrogate pairs are
// combined, unpaired surrogates are replaced by U+FFFD.
func (p *Parser) ParseUTF16(text []uint16) *Result {
	return p.parse(utf16.Decode(text))
}

// ParsePlain copies text without interpreting any markup.
func (p *Parser) ParsePlain(text string) *Result {
	p.reset()
	p.result.cps = append(p.result.cps, []rune(text)...)
	p.result.snaps.build(len(p.result.cps), nil)
	return &p.result
}

func (p *Parser) reset() {
	p.result.cps = p.result.cps[:0]
	p.result.attrs = p.result.attrs[:0]
	for i := range p.stacks {
		p.stacks[i] = p.stacks[i][:0]
	}
}

func (p *Parser) parse(in []rune) *Result {
	p.reset()
	i := 0
	for i < len(in) {
		if in[i] != '<' {
			p.result.cps = append(p.result.cps, in[i])
			i++
			continue
		}
		t, ok := p.matchTag(in, i)
		if !ok {
			p.result.cps = append(p.result.cps, '<')
			i++
			continue
		}
		i = t.end
		def := p.reg.Def(t.id)
		switch {
		case def.Behavior == NoParse && !t.closing:
			i = p.noparse(in, i)
		case def.Behavior == NoParse: // </noparse> without <noparse>
		case def.Behavior == SelfClosing:
			p.result.cps = append(p.result.cps, def.Emit)
		case t.closing:
			p.close(t.id)
		default:
			p.stacks[t.id] = append(p.stacks[t.id], scope{start: len(p.result.cps), value: t.value})
		}
	}
	p.closeAll()
	sort.SliceStable(p.result.attrs, func(i, j int) bool {
		return p.result.attrs[i].Range.Start < p.result.attrs[j].Range.Start
	})
	p.result.snaps.build(len(p.result.cps), p.result.attrs)
	tracer().Debugf("markup: %d code-points, %d attributes, %d snapshots",
		len(p.result.cps), len(p.result.attrs), p.result.snaps.Count())
	return &p.result
}

func (p *Parser) close(id TagID) {
	stack := p.stacks[id]
	if len(stack) == 0 {
		tracer().P("tag", p.reg.Def(id).Name).Debugf("markup: ignoring close tag without open tag")
		return
	}
	top := stack[len(stack)-1]
	p.stacks[id] = stack[:len(stack)-1]
	p.emit(id, top)
}

// closeAll closes dangling scopes at the end of input, in registry order
// and innermost first.
func (p *Parser) closeAll() {
	for id := range p.stacks {
		for len(p.stacks[id]) > 0 {
			p.close(TagID(id))
		}
	}
}

func (p *Parser) emit(id TagID, s scope) {
	end := len(p.result.cps)
	if end == s.start {
		return
	}
	p.result.attrs = append(p.result.attrs, Attribute{
		Kind:  p.reg.Def(id).Kind,
		Range: textpipe.RangeFromTo(s.start, end),
		Value: s.value,
		Tag:   id,
	})
}

// noparse copies input starting at i literally, up to a closing </noparse>.
// It returns the position after the closing tag, or len(in).
func (p *Parser) noparse(in []rune, i int) int {
	const closing = "</noparse>"
	for j := i; j < len(in); j++ {
		if in[j] == '<' && j+len(closing) <= len(in) &&
			strings.EqualFold(string(in[j:j+len(closing)]), closing) {
			p.result.cps = append(p.result.cps, in[i:j]...)
			return j + len(closing)
		}
	}
	p.result.cps = append(p.result.cps, in[i:]...)
	return len(in)
}

type tag struct {
	id      TagID
	closing bool
	value   Value
	end     int // position after '>'
}

// matchTag tries to match a complete tag starting at in[i] == '<'.
func (p *Parser) matchTag(in []rune, i int) (tag, bool) {
	t := tag{}
	j := i + 1
	for ; j < len(in) && j-i <= maxTagLength; j++ {
		if in[j] == '>' {
			break
		}
		if in[j] == '<' {
			return t, false
		}
	}
	if j >= len(in) || in[j] != '>' {
		return t, false
	}
	t.end = j + 1
	body := string(in[i+1 : j])
	if strings.HasPrefix(body, "/") {
		t.closing = true
		body = body[1:]
	}
	name, value, hasValue := strings.Cut(body, "=")
	name = strings.TrimSpace(name)
	if hasValue && t.closing {
		return t, false
	}
	if !isTagName(name) {
		return t, false
	}
	id, ok := p.reg.Lookup(name)
	if !ok {
		tracer().P("tag", name).Debugf("markup: unknown tag kept as text")
		return t, false
	}
	t.id = id
	def := p.reg.Def(id)
	if t.closing {
		return t, def.Behavior != SelfClosing
	}
	switch def.Value {
	case NoValue:
		return t, !hasValue
	case RequiredValue:
		if !hasValue {
			tracer().P("tag", name).Debugf("markup: missing value, tag kept as text")
			return t, false
		}
	case OptionalValue:
		if !hasValue {
			t.value = def.Default
			return t, true
		}
	}
	v, ok := def.Parse(unquote(strings.TrimSpace(value)))
	if !ok {
		tracer().P("tag", name).Debugf("markup: malformed value %q, tag kept as text", value)
		return t, false
	}
	t.value = v
	return t, true
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// --- Result ----------------------------------------------------------------

// Codepoints returns the text without markup.
func (r *Result) Codepoints() []rune {
	return r.cps
}

// Attributes returns all attributes, ordered by start position.
func (r *Result) Attributes() []Attribute {
	return r.attrs
}

// AttributesOf returns the attributes of a given kind.
func (r *Result) AttributesOf(kind Kind) []Attribute {
	var attrs []Attribute
	for _, a := range r.attrs {
		if a.Kind == kind {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

// Snapshots returns the attribute snapshots of the text.
func (r *Result) Snapshots() *Snapshots {
	return &r.snaps
}

// Clone returns a copy of r which is independent of the parser.
func (r *Result) Clone() *Result {
	c := &Result{
		cps:   append([]rune(nil), r.cps...),
		attrs: append([]Attribute(nil), r.attrs...),
	}
	c.snaps.starts = append([]int(nil), r.snaps.starts...)
	c.snaps.active = append([][]Attribute(nil), r.snaps.active...)
	return c
}
