// Package fact models the knowledge-graph fact surface the converted
// output targets: entities with property maps, citations, and the
// relation vocabulary. The package holds plain value types only; parsing
// converted files into them is the verifier's job, and persistence is an
// external collaborator.
package fact

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the variants of a property value.
type Kind int

// Value kinds. The set is closed: every property value in the corpus is
// one of these.
const (
	String Kind = iota
	Number
	Mapping
	List
	Symbol // bare identifier, usually an entity reference
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Mapping:
		return "mapping"
	case List:
		return "list"
	case Symbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the property-value variants. Exactly the
// fields for the tagged kind are meaningful.
type Value struct {
	Kind  Kind
	Str   string  // String, Symbol
	Num   float64 // Number
	Keys  []string
	Map   map[string]Value // Mapping, keyed and ordered by Keys
	Items []Value          // List
}

// StringValue builds a String value.
func StringValue(s string) Value { return Value{Kind: String, Str: s} }

// NumberValue builds a Number value.
func NumberValue(f float64) Value { return Value{Kind: Number, Num: f} }

// ParseValue parses one converted-notation literal: a quoted string, a
// number, a {k: v, ...} mapping, a {a, b, ...} list, or a bare symbol.
func ParseValue(text string) (Value, error) {
	p := &valueParser{input: strings.TrimSpace(text)}
	v, err := p.parse()
	if err != nil {
		return Value{}, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return Value{}, fmt.Errorf("trailing input at offset %d", p.pos)
	}
	return v, nil
}

type valueParser struct {
	input string
	pos   int
}

func (p *valueParser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *valueParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *valueParser) parse() (Value, error) {
	p.skipSpace()
	switch c := p.peek(); {
	case c == '"' || c == '\'':
		s, err := p.readString(c)
		if err != nil {
			return Value{}, err
		}
		return StringValue(s), nil
	case c == '{':
		return p.readBraced()
	case c == '-' || c == '.' || (c >= '0' && c <= '9'):
		return p.readNumber()
	case c == 0:
		return Value{}, fmt.Errorf("empty value")
	default:
		return p.readSymbol()
	}
}

func (p *valueParser) readString(quote byte) (string, error) {
	p.pos++ // opening quote
	var b strings.Builder
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '\\' && p.pos+1 < len(p.input) {
			next := p.input[p.pos+1]
			switch next {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(next)
			}
			p.pos += 2
			continue
		}
		if c == quote {
			p.pos++
			return b.String(), nil
		}
		b.WriteByte(c)
		p.pos++
	}
	return "", fmt.Errorf("unterminated string at offset %d", p.pos)
}

func (p *valueParser) readNumber() (Value, error) {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' ||
			((c == '+' || c == '-') && (p.input[p.pos-1] == 'e' || p.input[p.pos-1] == 'E')) {
			p.pos++
			continue
		}
		break
	}
	f, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid number %q", p.input[start:p.pos])
	}
	return NumberValue(f), nil
}

func (p *valueParser) readSymbol() (Value, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '_' || c == '$' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return Value{}, fmt.Errorf("unexpected character %q at offset %d", p.input[p.pos], p.pos)
	}
	return Value{Kind: Symbol, Str: p.input[start:p.pos]}, nil
}

// readBraced parses {...} as a mapping when its entries are k: v pairs
// and as a list otherwise.
func (p *valueParser) readBraced() (Value, error) {
	p.pos++ // '{'
	p.skipSpace()
	if p.peek() == '}' {
		p.pos++
		return Value{Kind: Mapping, Map: map[string]Value{}}, nil
	}

	var keys []string
	m := map[string]Value{}
	var items []Value
	isMapping := false
	first := true

	for {
		p.skipSpace()
		v, err := p.parse()
		if err != nil {
			return Value{}, err
		}
		p.skipSpace()

		if p.peek() == ':' {
			if !first && !isMapping {
				return Value{}, fmt.Errorf("mixed list and mapping entries")
			}
			isMapping = true
			if v.Kind != String && v.Kind != Symbol {
				return Value{}, fmt.Errorf("mapping key must be a string, got %s", v.Kind)
			}
			p.pos++ // ':'
			val, err := p.parse()
			if err != nil {
				return Value{}, err
			}
			keys = append(keys, v.Str)
			m[v.Str] = val
			p.skipSpace()
		} else {
			if isMapping {
				return Value{}, fmt.Errorf("mixed list and mapping entries")
			}
			items = append(items, v)
		}
		first = false

		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			p.pos++
			if isMapping {
				return Value{Kind: Mapping, Keys: keys, Map: m}, nil
			}
			return Value{Kind: List, Items: items}, nil
		default:
			return Value{}, fmt.Errorf("expected ',' or '}' at offset %d", p.pos)
		}
	}
}
