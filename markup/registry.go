package markup

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Kind is the kind of an attribute.
type Kind uint8

// Attribute kinds. Render attributes do not influence shaping or layout,
// shaping attributes have to be honoured by a shaper, layout attributes by
// line breaking and layout.
const (
	NoKind Kind = iota
	// render
	Color
	Alpha
	Underline
	Strikethrough
	Mark
	Link
	// shaping
	Size
	Font
	Bold
	Italic
	CharSpacing
	Superscript
	Subscript
	// layout
	Align
	Indent
	LineHeight
	NoBreak
)

var kindNames = [...]string{"none", "color", "alpha", "underline", "strikethrough",
	"mark", "link", "size", "font", "bold", "italic", "cspace", "superscript",
	"subscript", "align", "indent", "line-height", "nobr"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Category groups attribute kinds by the pipeline stage interested in them.
type Category uint8

// Categories of attribute kinds.
const (
	RenderCategory Category = iota
	ShapingCategory
	LayoutCategory
)

// Category returns the category of an attribute kind.
func (k Kind) Category() Category {
	switch {
	case k >= Align:
		return LayoutCategory
	case k >= Size:
		return ShapingCategory
	}
	return RenderCategory
}

// Behavior tells how a tag influences parsing.
type Behavior uint8

// Tags are either scoped, self-closing, or switch off tag recognition.
const (
	Scoped      Behavior = iota // <tag>…</tag>
	SelfClosing                 // <tag>, stands for a single character
	NoParse                     // <noparse>…</noparse>
)

// ValueMode tells if a tag carries a value, as in <color=red>.
type ValueMode uint8

// A tag value may be forbidden, optional or required.
const (
	NoValue ValueMode = iota
	OptionalValue
	RequiredValue
)

// TagID is the interned id of a tag within a registry.
type TagID int

// TagDef defines a tag.
type TagDef struct {
	Name     string      // lower-case name
	Kind     Kind        // kind of attributes produced by scoped tags
	Behavior Behavior    // scoped, self-closing or noparse
	Emit     rune        // character for self-closing tags
	Value    ValueMode   // forbidden, optional or required value
	Parse    ValueParser // parser for values; nil if Value is NoValue
	Default  Value       // value if an optional value is missing
}

// ErrRegistryFrozen is returned when trying to change a registry which is
// already in use by a parser.
var ErrRegistryFrozen = errors.New("markup: tag registry is frozen")

// Registry maps tag names to tag definitions. Tag names are case-insensitive.
// A registry may be changed until the first parser is created for it; from then on
// it is read-only and may be shared between parsers.
type Registry struct {
	mu     sync.Mutex
	frozen bool
	defs   []TagDef
	byName map[string]TagID
}

// NewRegistry creates a registry containing the built-in tags.
func NewRegistry() *Registry {
	reg := &Registry{byName: make(map[string]TagID)}
	for _, def := range builtinTags() {
		reg.add(def)
	}
	if err := reg.alias("s", "strikethrough"); err != nil {
		panic(err) // built-in tags are static
	}
	return reg
}

// NewEmptyRegistry creates a registry without any tags.
func NewEmptyRegistry() *Registry {
	return &Registry{byName: make(map[string]TagID)}
}

var defaultRegistry *Registry
var defaultRegistryOnce sync.Once

// DefaultRegistry returns a shared registry with the built-in tags.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register adds a tag definition. If a tag with the same name exists, it is replaced.
func (reg *Registry) Register(def TagDef) (TagID, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if reg.frozen {
		return -1, ErrRegistryFrozen
	}
	if def.Name == "" || !isTagName(def.Name) {
		return -1, fmt.Errorf("markup: illegal tag name %q", def.Name)
	}
	if def.Value != NoValue && def.Parse == nil {
		return -1, fmt.Errorf("markup: tag %q needs a value parser", def.Name)
	}
	return reg.add(def), nil
}

// Alias makes a tag known under an additional name.
func (reg *Registry) Alias(alias, name string) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if reg.frozen {
		return ErrRegistryFrozen
	}
	if !isTagName(alias) {
		return fmt.Errorf("markup: illegal tag name %q", alias)
	}
	return reg.alias(alias, name)
}

// Lookup finds a tag by name, ignoring case.
func (reg *Registry) Lookup(name string) (TagID, bool) {
	id, ok := reg.byName[strings.ToLower(name)]
	return id, ok
}

// Def returns the definition of a tag.
func (reg *Registry) Def(id TagID) TagDef {
	return reg.defs[id]
}

// Len returns the number of tags (not counting aliases).
func (reg *Registry) Len() int {
	return len(reg.defs)
}

func (reg *Registry) freeze() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if !reg.frozen {
		tracer().Debugf("markup: freezing registry with %d tags", len(reg.defs))
	}
	reg.frozen = true
}

func (reg *Registry) add(def TagDef) TagID {
	def.Name = strings.ToLower(def.Name)
	if id, ok := reg.byName[def.Name]; ok {
		reg.defs[id] = def
		return id
	}
	id := TagID(len(reg.defs))
	reg.defs = append(reg.defs, def)
	reg.byName[def.Name] = id
	return id
}

func (reg *Registry) alias(alias, name string) error {
	id, ok := reg.byName[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("markup: cannot alias unknown tag %q", name)
	}
	reg.byName[strings.ToLower(alias)] = id
	return nil
}

func isTagName(name string) bool {
	for i := 0; i < len(name); i++ {
		if !isTagNameChar(rune(name[i])) {
			return false
		}
	}
	return len(name) > 0
}

func isTagNameChar(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_'
}

func builtinTags() []TagDef {
	optionalColor := func(name string, kind Kind, dflt RGBA) TagDef {
		return TagDef{Name: name, Kind: kind, Value: OptionalValue, Parse: colorValue,
			Default: Value{Color: dflt}}
	}
	required := func(name string, kind Kind, parse ValueParser) TagDef {
		return TagDef{Name: name, Kind: kind, Value: RequiredValue, Parse: parse}
	}
	flag := func(name string, kind Kind) TagDef {
		return TagDef{Name: name, Kind: kind}
	}
	emit := func(name string, r rune) TagDef {
		return TagDef{Name: name, Behavior: SelfClosing, Emit: r}
	}
	return []TagDef{
		required("color", Color, colorValue),
		required("alpha", Alpha, alphaValue),
		optionalColor("u", Underline, 0),
		optionalColor("strikethrough", Strikethrough, 0),
		optionalColor("mark", Mark, 0xFFFF0080),
		{Name: "link", Kind: Link, Value: OptionalValue, Parse: textValue},
		flag("b", Bold),
		flag("i", Italic),
		required("size", Size, lengthValue),
		required("font", Font, textValue),
		required("cspace", CharSpacing, lengthValue),
		flag("sup", Superscript),
		flag("sub", Subscript),
		required("align", Align, alignValue),
		required("indent", Indent, lengthValue),
		required("line-height", LineHeight, lengthValue),
		flag("nobr", NoBreak),
		{Name: "noparse", Behavior: NoParse},
		emit("br", '\n'),
		emit("nbsp", 0x00A0),
		emit("zwsp", 0x200B),
		emit("shy", 0x00AD),
		emit("page", '\f'),
	}
}
