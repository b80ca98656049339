// Package parse turns raw bytes into value trees.
//
// The JSON entry points accept a relaxed superset of JSON: line and
// block comments, trailing commas and unquoted identifier keys, as
// layered configuration fragments are commonly written by hand. JSONLax
// never fails; it returns a best-effort tree plus a validity flag so
// callers can keep going with partial data.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/jeyms233/jsontree/debug"
	"github.com/jeyms233/jsontree/ir"
)

var ErrSyntax = errors.New("syntax error")

// JSON parses data as relaxed JSON, failing on the first syntax error.
func JSON(data []byte) (*ir.Node, error) {
	node, errs := parseAll(data)
	if len(errs) > 0 {
		return node, errs[0]
	}
	return node, nil
}

// JSONLax parses data as relaxed JSON, recovering from syntax errors
// where possible. valid reports whether the input parsed cleanly; the
// returned tree is best-effort either way and never nil.
func JSONLax(data []byte) (node *ir.Node, valid bool) {
	node, errs := parseAll(data)
	if debug.Parse() {
		for _, err := range errs {
			debug.Logf("parse: %v\n", err)
		}
	}
	return node, len(errs) == 0
}

// Auto picks a parser from the fragment name: .yaml/.yml fragments go
// through YAML, everything else through relaxed JSON.
func Auto(name string, data []byte) (*ir.Node, error) {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return YAML(data)
	}
	return JSON(data)
}

func parseAll(data []byte) (*ir.Node, []error) {
	p := &parser{data: data}
	p.skipSpace()
	if p.pos >= len(p.data) {
		p.errf("empty document")
		return ir.Null(), p.errs
	}
	node := p.parseValue()
	p.skipSpace()
	if p.pos < len(p.data) {
		p.errf("trailing data after document")
	}
	return node, p.errs
}

type parser struct {
	data []byte
	pos  int
	errs []error
}

func (p *parser) errf(format string, args ...any) {
	line, col := p.lineCol()
	err := fmt.Errorf("%w at %d:%d: %s", ErrSyntax, line, col, fmt.Sprintf(format, args...))
	p.errs = append(p.errs, err)
}

func (p *parser) lineCol() (int, int) {
	line, col := 1, 1
	for i := 0; i < p.pos && i < len(p.data); i++ {
		if p.data[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

func (p *parser) skipSpace() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			p.pos++
		case c == '/' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '/':
			for p.pos < len(p.data) && p.data[p.pos] != '\n' {
				p.pos++
			}
		case c == '/' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '*':
			p.pos += 2
			for p.pos+1 < len(p.data) && !(p.data[p.pos] == '*' && p.data[p.pos+1] == '/') {
				p.pos++
			}
			if p.pos+1 < len(p.data) {
				p.pos += 2
			} else {
				p.pos = len(p.data)
				p.errf("unterminated block comment")
			}
		default:
			return
		}
	}
}

func (p *parser) peek() byte {
	if p.pos < len(p.data) {
		return p.data[p.pos]
	}
	return 0
}

func (p *parser) parseValue() *ir.Node {
	p.skipSpace()
	if p.pos >= len(p.data) {
		p.errf("unexpected end of input")
		return ir.Null()
	}
	switch c := p.data[p.pos]; {
	case c == '{':
		return p.parseStruct()
	case c == '[':
		return p.parseVector()
	case c == '"':
		s, ok := p.parseQuoted()
		if !ok {
			p.errf("unterminated string")
		}
		return ir.StringNode(s)
	case c == '-' || c == '+' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case isIdentByte(c):
		return p.parseIdent()
	case c == '}' || c == ']' || c == ',':
		// structural byte where a value belongs; leave it for the
		// enclosing container's recovery
		p.errf("missing value before %q", c)
		return ir.Null()
	default:
		p.errf("unexpected character %q", c)
		p.pos++
		return ir.Null()
	}
}

func (p *parser) parseStruct() *ir.Node {
	node := ir.StructNode()
	m := node.Struct()
	p.pos++ // '{'
	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			p.errf("unterminated struct")
			return node
		}
		if p.peek() == '}' {
			p.pos++
			return node
		}
		key, ok := p.parseKey()
		if !ok {
			p.recover('}')
			if p.peek() == '}' {
				p.pos++
			}
			return node
		}
		p.skipSpace()
		if p.peek() != ':' {
			p.errf("expected ':' after key %q", key)
			p.recoverElem('}')
			continue
		}
		p.pos++
		m[key] = p.parseValue()
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return node
		default:
			p.errf("expected ',' or '}' in struct")
			p.recoverElem('}')
		}
	}
}

func (p *parser) parseKey() (string, bool) {
	p.skipSpace()
	c := p.peek()
	switch {
	case c == '"':
		s, ok := p.parseQuoted()
		if !ok {
			p.errf("unterminated key string")
			return s, false
		}
		return s, true
	case isIdentByte(c):
		start := p.pos
		for p.pos < len(p.data) && isIdentByte(p.data[p.pos]) {
			p.pos++
		}
		return string(p.data[start:p.pos]), true
	default:
		p.errf("expected struct key")
		return "", false
	}
}

func (p *parser) parseVector() *ir.Node {
	node := ir.VectorNode()
	p.pos++ // '['
	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			p.errf("unterminated vector")
			return node
		}
		if p.peek() == ']' {
			p.pos++
			return node
		}
		node.Append(p.parseValue())
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return node
		default:
			p.errf("expected ',' or ']' in vector")
			p.recoverElem(']')
		}
	}
}

// recoverElem skips ahead to the next element separator or the given
// closing bracket so that later elements still parse.
func (p *parser) recoverElem(close byte) {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == ',' {
			p.pos++
			return
		}
		if c == close {
			return
		}
		p.pos++
	}
}

func (p *parser) recover(close byte) {
	for p.pos < len(p.data) && p.data[p.pos] != close {
		p.pos++
	}
}

func (p *parser) parseQuoted() (string, bool) {
	p.pos++ // '"'
	var sb strings.Builder
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch c {
		case '"':
			p.pos++
			return sb.String(), true
		case '\\':
			p.pos++
			sb.WriteString(p.parseEscape())
		case '\n':
			return sb.String(), false
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return sb.String(), false
}

func (p *parser) parseEscape() string {
	if p.pos >= len(p.data) {
		return ""
	}
	c := p.data[p.pos]
	p.pos++
	switch c {
	case '"', '\\', '/':
		return string(c)
	case 'n':
		return "\n"
	case 'r':
		return "\r"
	case 't':
		return "\t"
	case 'b':
		return "\b"
	case 'f':
		return "\f"
	case 'u':
		return p.parseUnicodeEscape()
	default:
		p.errf("unknown escape %q", c)
		return string(c)
	}
}

func (p *parser) parseUnicodeEscape() string {
	hi, ok := p.hex4()
	if !ok {
		return ""
	}
	r := rune(hi)
	if utf16.IsSurrogate(r) && p.pos+1 < len(p.data) && p.data[p.pos] == '\\' && p.data[p.pos+1] == 'u' {
		p.pos += 2
		lo, ok := p.hex4()
		if !ok {
			return string(utf8.RuneError)
		}
		r = utf16.DecodeRune(r, rune(lo))
	}
	return string(r)
}

func (p *parser) hex4() (uint64, bool) {
	if p.pos+4 > len(p.data) {
		p.errf("truncated \\u escape")
		p.pos = len(p.data)
		return 0, false
	}
	v, err := strconv.ParseUint(string(p.data[p.pos:p.pos+4]), 16, 32)
	if err != nil {
		p.errf("bad \\u escape %q", p.data[p.pos:p.pos+4])
		p.pos += 4
		return 0, false
	}
	p.pos += 4
	return v, true
}

func (p *parser) parseNumber() *ir.Node {
	start := p.pos
	isFloat := false
	if p.peek() == '-' || p.peek() == '+' {
		p.pos++
	}
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		if c == '.' || c == 'e' || c == 'E' || c == '-' || c == '+' {
			isFloat = isFloat || c == '.' || c == 'e' || c == 'E'
			p.pos++
			continue
		}
		break
	}
	text := string(p.data[start:p.pos])
	if !isFloat {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return ir.IntNode(i)
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.errf("malformed number %q", text)
		return ir.Null()
	}
	return ir.FloatNode(f)
}

func (p *parser) parseIdent() *ir.Node {
	start := p.pos
	for p.pos < len(p.data) && isIdentByte(p.data[p.pos]) {
		p.pos++
	}
	switch word := string(p.data[start:p.pos]); word {
	case "null":
		return ir.Null()
	case "true":
		return ir.BoolNode(true)
	case "false":
		return ir.BoolNode(false)
	default:
		p.errf("unknown literal %q", word)
		return ir.StringNode(word)
	}
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '-' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
