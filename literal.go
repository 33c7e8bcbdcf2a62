package htmlayout

import (
	"strconv"
	"strings"
)

// Evaluate converts the textual value of a markup attribute into a Go value.
//
// Only literal syntax is accepted: quoted strings, integers, floats,
// booleans, None/null, sequences ("[...]" or "(...)") and mappings
// ("{...}"). Names, calls and operators are rejected with a
// LiteralSyntaxError, so attribute values can never execute code.
//
// The mapping of literal categories to Go types:
//
//	"text" / 'text'   string
//	42, 0xff          int64
//	1.5, 2e3          float64
//	True / true       bool
//	None / null       nil
//	[...] and (...)   []any
//	{"k": v}          map[string]any
func Evaluate(text string) (any, error) {
	p := &literalParser{src: text}
	p.skipSpace()
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, NewLiteralSyntaxError(p.src, p.pos, "unexpected trailing content")
	}
	return v, nil
}

// NamePrefix marks an attribute value that should be resolved from the
// builder's scope instead of being parsed as a literal.
const NamePrefix = "$"

// ResolveName resolves a prefixed name against a caller-supplied scope.
//
// The name must carry NamePrefix and the remainder must be a key in scope;
// anything else fails with an InvalidNameError. The scope is the only
// source of values, so markup can never reach arbitrary process state.
func ResolveName(name string, scope map[string]any) (any, error) {
	if !strings.HasPrefix(name, NamePrefix) {
		return nil, NewInvalidNameError(name, "missing required prefix "+NamePrefix)
	}
	key := strings.TrimPrefix(name, NamePrefix)
	if key == "" {
		return nil, NewInvalidNameError(name, "empty name after prefix")
	}
	v, ok := scope[key]
	if !ok {
		return nil, NewInvalidNameError(name, "not defined in scope")
	}
	return v, nil
}

// literalParser is a recursive-descent parser over the literal grammar.
type literalParser struct {
	src string
	pos int
}

func (p *literalParser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *literalParser) fail(offset int, message string) error {
	return NewLiteralSyntaxError(p.src, offset, message)
}

func (p *literalParser) value() (any, error) {
	if p.pos >= len(p.src) {
		return nil, p.fail(p.pos, "unexpected end of input")
	}
	switch c := p.src[p.pos]; {
	case c == '\'' || c == '"':
		return p.quotedString()
	case c == '[':
		return p.sequence(']')
	case c == '(':
		return p.sequence(')')
	case c == '{':
		return p.mapping()
	case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
		return p.number()
	case isNameByte(c):
		return p.keyword()
	default:
		return nil, p.fail(p.pos, "unexpected character "+strconv.QuoteRune(rune(c)))
	}
}

func (p *literalParser) quotedString() (string, error) {
	quote := p.src[p.pos]
	p.pos++
	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case quote:
			p.pos++
			return b.String(), nil
		case '\\':
			p.pos++
			if err := p.escape(&b); err != nil {
				return "", err
			}
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", p.fail(len(p.src), "unterminated string")
}

func (p *literalParser) escape(b *strings.Builder) error {
	if p.pos >= len(p.src) {
		return p.fail(p.pos, "unterminated escape sequence")
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case '0':
		b.WriteByte(0)
	case '\\', '\'', '"':
		b.WriteByte(c)
	case 'x':
		return p.hexEscape(b, 2)
	case 'u':
		return p.hexEscape(b, 4)
	default:
		return p.fail(p.pos-1, "unknown escape sequence")
	}
	return nil
}

func (p *literalParser) hexEscape(b *strings.Builder, width int) error {
	if p.pos+width > len(p.src) {
		return p.fail(p.pos, "truncated hex escape")
	}
	n, err := strconv.ParseUint(p.src[p.pos:p.pos+width], 16, 32)
	if err != nil {
		return p.fail(p.pos, "invalid hex escape")
	}
	p.pos += width
	b.WriteRune(rune(n))
	return nil
}

func (p *literalParser) number() (any, error) {
	start := p.pos
	if c := p.src[p.pos]; c == '+' || c == '-' {
		p.pos++
	}
	isFloat := false
	if p.pos+1 < len(p.src) && p.src[p.pos] == '0' &&
		(p.src[p.pos+1] == 'x' || p.src[p.pos+1] == 'X' ||
			p.src[p.pos+1] == 'o' || p.src[p.pos+1] == 'O' ||
			p.src[p.pos+1] == 'b' || p.src[p.pos+1] == 'B') {
		p.pos += 2
		for p.pos < len(p.src) && isBaseDigit(p.src[p.pos]) {
			p.pos++
		}
	} else {
		p.digits()
		if p.pos < len(p.src) && p.src[p.pos] == '.' {
			isFloat = true
			p.pos++
			p.digits()
		}
		if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
			isFloat = true
			p.pos++
			if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
				p.pos++
			}
			p.digits()
		}
	}
	lit := p.src[start:p.pos]
	if isFloat {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, p.fail(start, "invalid number literal")
		}
		return f, nil
	}
	n, err := strconv.ParseInt(lit, 0, 64)
	if err != nil {
		return nil, p.fail(start, "invalid number literal")
	}
	return n, nil
}

func (p *literalParser) digits() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c < '0' || c > '9') && c != '_' {
			return
		}
		p.pos++
	}
}

func (p *literalParser) keyword() (any, error) {
	start := p.pos
	for p.pos < len(p.src) && isNameByte(p.src[p.pos]) {
		p.pos++
	}
	switch p.src[start:p.pos] {
	case "True", "true":
		return true, nil
	case "False", "false":
		return false, nil
	case "None", "null":
		return nil, nil
	}
	return nil, p.fail(start, "names and calls are not evaluated")
}

func (p *literalParser) sequence(closer byte) ([]any, error) {
	p.pos++ // opener
	out := []any{}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.fail(len(p.src), "unterminated sequence")
		}
		if p.src[p.pos] == closer {
			p.pos++
			return out, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
			continue
		}
		if p.pos < len(p.src) && p.src[p.pos] == closer {
			p.pos++
			return out, nil
		}
		return nil, p.fail(p.pos, "expected ',' or sequence end")
	}
}

func (p *literalParser) mapping() (map[string]any, error) {
	p.pos++ // '{'
	out := map[string]any{}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.fail(len(p.src), "unterminated mapping")
		}
		if p.src[p.pos] == '}' {
			p.pos++
			return out, nil
		}
		keyOffset := p.pos
		key, err := p.value()
		if err != nil {
			return nil, err
		}
		ks, ok := key.(string)
		if !ok {
			return nil, p.fail(keyOffset, "mapping keys must be string literals")
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ':' {
			return nil, p.fail(p.pos, "expected ':' after mapping key")
		}
		p.pos++
		p.skipSpace()
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		out[ks] = v
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
			continue
		}
		if p.pos < len(p.src) && p.src[p.pos] == '}' {
			p.pos++
			return out, nil
		}
		return nil, p.fail(p.pos, "expected ',' or '}'")
	}
}

func isNameByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isBaseDigit(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
