package dsl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3,4})`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)%?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[][,:;]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	presetParser = participle.MustBuild[File](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment"),
	)
)

// File is the root AST node of a preset library.
type File struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Presets []*Preset      `parser:"Newline* ( @@ Newline* )*"`
}

// Preset is a named block of settings.
type Preset struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Name    StringLiteral  `parser:"'preset' @String"`
	Entries []*Entry       `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Entry uses colon syntax (key: value).
type Entry struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident ':'"`
	Value *Value         `parser:"@@"`
}

// Value represents a setting value.
type Value struct {
	Color  *string        `parser:"  @Color"`
	Number *string        `parser:"| @Number"`
	String *StringLiteral `parser:"| @String"`
	List   *List          `parser:"| @@"`
	Ident  *string        `parser:"| @Ident"`
}

// List captures `[a, b, c]`; items may be split across lines.
type List struct {
	Open  string   `parser:"@'['" json:"-"`
	Items []string `parser:"Newline* ( @Ident Newline* ( ',' Newline* @Ident Newline* )* )? ']'"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a preset library from an io.Reader.
func Parse(r io.Reader) (*File, error) {
	return presetParser.Parse("", r)
}

// ParseString parses a preset library from a string.
func ParseString(input string) (*File, error) {
	return presetParser.ParseString("", input)
}

// Lookup returns the value of the last entry named key, or nil. Keys are
// matched case-insensitively and '_' is treated as '-'.
func (p *Preset) Lookup(key string) *Value {
	if p == nil {
		return nil
	}
	want := normalizeKey(key)
	var found *Value
	for _, e := range p.Entries {
		if normalizeKey(e.Key) == want {
			found = e.Value
		}
	}
	return found
}

// Keys lists the entry keys in source order.
func (p *Preset) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		out = append(out, normalizeKey(e.Key))
	}
	return out
}

// Raw returns the source text of a scalar value; lists are joined by ",".
func (v *Value) Raw() string {
	switch {
	case v == nil:
		return ""
	case v.Color != nil:
		return *v.Color
	case v.Number != nil:
		return *v.Number
	case v.String != nil:
		return string(*v.String)
	case v.List != nil:
		return strings.Join(v.List.Items, ",")
	case v.Ident != nil:
		return *v.Ident
	default:
		return ""
	}
}

// Kind returns the human-readable value type.
func (v *Value) Kind() string {
	switch {
	case v == nil:
		return "unknown"
	case v.Color != nil:
		return "color"
	case v.Number != nil:
		return "number"
	case v.String != nil:
		return "string"
	case v.List != nil:
		return "list"
	case v.Ident != nil:
		return "ident"
	default:
		return "unknown"
	}
}

func normalizeKey(k string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(k)), "_", "-")
}
