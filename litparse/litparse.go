// Package litparse parses source-text literals into values: the input
// language of the REPL and the conformance suites. It covers exactly the
// value forms the engine operates on — undefined, null, booleans, numbers
// (including -0, NaN, Infinity and 0x/0o/0b forms), BigInts with the n
// suffix, quoted strings, Symbol(...), arrays, and object literals whose
// valueOf:/toString: keys become conversion methods returning the given
// literal.
package litparse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rubiojr/coerce/coerce"
	"github.com/rubiojr/coerce/host"
	"github.com/rubiojr/coerce/value"
)

// Error is a positioned parse error.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Parse parses src as a single literal. The engine is needed because
// array literals carry their join-based toString, which stringifies
// elements through the engine.
func Parse(src string, eng *coerce.Engine) (value.Value, error) {
	p := &parser{src: src, eng: eng}
	p.ws()
	v, err := p.literal()
	if err != nil {
		return value.Value{}, err
	}
	p.ws()
	if p.pos != len(p.src) {
		return value.Value{}, p.errorf("unexpected trailing input %q", p.src[p.pos:])
	}
	return v, nil
}

type parser struct {
	src string
	pos int
	eng *coerce.Engine
}

func (p *parser) errorf(format string, args ...any) error {
	return &Error{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) ws() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) literal() (value.Value, error) {
	c, ok := p.peek()
	if !ok {
		return value.Value{}, p.errorf("expected a literal")
	}
	switch {
	case c == '"' || c == '\'':
		return p.stringLit()
	case c == '[':
		return p.arrayLit()
	case c == '{':
		return p.objectLit()
	case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
		return p.numberLit()
	case isIdentStart(c):
		return p.identLit()
	default:
		return value.Value{}, p.errorf("unexpected character %q", c)
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (p *parser) ident() string {
	start := p.pos
	for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) identLit() (value.Value, error) {
	start := p.pos
	switch name := p.ident(); name {
	case "undefined":
		return value.Undefined(), nil
	case "null":
		return value.Null(), nil
	case "true":
		return value.Boolean(true), nil
	case "false":
		return value.Boolean(false), nil
	case "NaN":
		return value.Number(math.NaN()), nil
	case "Infinity":
		return value.Number(math.Inf(1)), nil
	case "Symbol":
		return p.symbolLit()
	default:
		p.pos = start
		return value.Value{}, p.errorf("unknown literal %q", name)
	}
}

func (p *parser) symbolLit() (value.Value, error) {
	if c, ok := p.peek(); !ok || c != '(' {
		return value.Value{}, p.errorf("expected ( after Symbol")
	}
	p.pos++
	p.ws()
	desc := ""
	if c, ok := p.peek(); ok && (c == '"' || c == '\'') {
		v, err := p.stringLit()
		if err != nil {
			return value.Value{}, err
		}
		s, err := v.Str()
		if err != nil {
			return value.Value{}, err
		}
		desc = s
		p.ws()
	}
	if c, ok := p.peek(); !ok || c != ')' {
		return value.Value{}, p.errorf("expected ) after Symbol description")
	}
	p.pos++
	return value.NewSymbol(desc), nil
}

// numberLit scans a signed numeric token and classifies it as a BigInt
// (trailing n) or a Number. The token body is handed to the engine's own
// literal parsers, so the accepted forms match StringToNumber and
// StringToBigInt exactly.
func (p *parser) numberLit() (value.Value, error) {
	start := p.pos
	if c, _ := p.peek(); c == '+' || c == '-' {
		p.pos++
		if rest := p.src[p.pos:]; strings.HasPrefix(rest, "Infinity") {
			p.pos += len("Infinity")
			if p.src[start] == '-' {
				return value.Number(math.Inf(-1)), nil
			}
			return value.Number(math.Inf(1)), nil
		}
	}
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '.' {
			p.pos++
			continue
		}
		// exponent sign
		if (c == '+' || c == '-') && p.pos > start {
			prev := p.src[p.pos-1]
			if prev == 'e' || prev == 'E' {
				p.pos++
				continue
			}
		}
		break
	}
	tok := p.src[start:p.pos]
	if tok == "" || tok == "+" || tok == "-" {
		return value.Value{}, p.errorf("expected a number")
	}

	if strings.HasSuffix(tok, "n") {
		body := strings.TrimSuffix(tok, "n")
		neg := false
		if body != "" && (body[0] == '+' || body[0] == '-') {
			neg = body[0] == '-'
			body = body[1:]
		}
		n, ok := coerce.StringToBigInt(body)
		if !ok || body == "" {
			p.pos = start
			return value.Value{}, p.errorf("malformed BigInt literal %q", tok)
		}
		if neg {
			n.Neg(n)
		}
		return value.BigInt(n), nil
	}

	f := coerce.StringToNumber(tok)
	if math.IsNaN(f) {
		p.pos = start
		return value.Value{}, p.errorf("malformed number literal %q", tok)
	}
	return value.Number(f), nil
}

func (p *parser) stringLit() (value.Value, error) {
	quote := p.src[p.pos]
	p.pos++
	var sb strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case quote:
			p.pos++
			return value.String(sb.String()), nil
		case '\\':
			p.pos++
			if p.pos >= len(p.src) {
				return value.Value{}, p.errorf("unterminated escape")
			}
			esc := p.src[p.pos]
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\', '"', '\'':
				sb.WriteByte(esc)
			case 'u':
				if p.pos+4 >= len(p.src) {
					return value.Value{}, p.errorf("truncated \\u escape")
				}
				n, err := strconv.ParseUint(p.src[p.pos+1:p.pos+5], 16, 32)
				if err != nil {
					return value.Value{}, p.errorf("malformed \\u escape")
				}
				sb.WriteRune(rune(n))
				p.pos += 4
			default:
				return value.Value{}, p.errorf("unknown escape \\%c", esc)
			}
			p.pos++
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return value.Value{}, p.errorf("unterminated string")
}

func (p *parser) arrayLit() (value.Value, error) {
	p.pos++ // [
	var elems []value.Value
	p.ws()
	for {
		c, ok := p.peek()
		if !ok {
			return value.Value{}, p.errorf("unterminated array literal")
		}
		if c == ']' {
			p.pos++
			return host.NewArray(p.eng, elems...), nil
		}
		el, err := p.literal()
		if err != nil {
			return value.Value{}, err
		}
		elems = append(elems, el)
		p.ws()
		if c, ok := p.peek(); ok && c == ',' {
			p.pos++
			p.ws()
		}
	}
}

// objectLit parses {key: literal, ...}. The valueOf and toString keys are
// special: each installs a conversion method that returns the given
// literal, modeling an object whose method yields that value.
func (p *parser) objectLit() (value.Value, error) {
	p.pos++ // {
	obj := value.NewObj()
	p.ws()
	for {
		c, ok := p.peek()
		if !ok {
			return value.Value{}, p.errorf("unterminated object literal")
		}
		if c == '}' {
			p.pos++
			return value.Object(obj), nil
		}

		var key string
		if c == '"' || c == '\'' {
			v, err := p.stringLit()
			if err != nil {
				return value.Value{}, err
			}
			key, _ = v.Str()
		} else if isIdentStart(c) {
			key = p.ident()
		} else {
			return value.Value{}, p.errorf("expected a property key")
		}

		p.ws()
		if c, ok := p.peek(); !ok || c != ':' {
			return value.Value{}, p.errorf("expected : after key %q", key)
		}
		p.pos++
		p.ws()

		val, err := p.literal()
		if err != nil {
			return value.Value{}, err
		}
		switch key {
		case "valueOf":
			obj.NumericConversion = func() (value.Value, error) { return val, nil }
		case "toString":
			obj.StringConversion = func() (value.Value, error) { return val, nil }
		default:
			obj.Set(key, val)
		}

		p.ws()
		if c, ok := p.peek(); ok && c == ',' {
			p.pos++
			p.ws()
		}
	}
}
