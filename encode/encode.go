// Package encode serializes value trees to JSON text, compact or
// indented, optionally colorized for terminal display.
package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jeyms233/jsontree/ir"
)

type EncState struct {
	compact bool
	indent  string
	colors  *Colors
}

// Encode writes node to w as JSON. The default layout is indented;
// pass Compact(true) for whitespace-free output.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "\t"}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	es.encode(buf, node, 0)
	if !es.compact {
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// JSON renders node as a JSON string.
func JSON(node *ir.Node, compact bool) string {
	buf := bytes.NewBuffer(nil)
	es := &EncState{compact: compact, indent: "\t"}
	es.encode(buf, node, 0)
	return buf.String()
}

func (es *EncState) encode(buf *bytes.Buffer, node *ir.Node, depth int) {
	switch node.Type() {
	case ir.NullType:
		buf.WriteString(es.literal("null"))
	case ir.BoolType:
		buf.WriteString(es.literal(strconv.FormatBool(node.Bool())))
	case ir.IntegerType:
		buf.WriteString(es.number(strconv.FormatInt(node.Integer(), 10)))
	case ir.FloatType:
		buf.WriteString(es.number(formatFloat(node.Float())))
	case ir.StringType:
		buf.WriteString(es.str(quote(node.String())))
	case ir.VectorType:
		es.encodeVector(buf, node, depth)
	case ir.StructType:
		es.encodeStruct(buf, node, depth)
	}
}

func (es *EncState) encodeVector(buf *bytes.Buffer, node *ir.Node, depth int) {
	if node.IsCompact() {
		buf.WriteString(es.punct("[]"))
		return
	}
	elems := node.Vector()
	buf.WriteString(es.punct("["))
	for i, elem := range elems {
		if i > 0 {
			buf.WriteString(es.punct(","))
		}
		es.newline(buf, depth+1)
		es.encode(buf, elem, depth+1)
	}
	es.newline(buf, depth)
	buf.WriteString(es.punct("]"))
}

func (es *EncState) encodeStruct(buf *bytes.Buffer, node *ir.Node, depth int) {
	if node.IsCompact() {
		buf.WriteString(es.punct("{}"))
		return
	}
	keys := node.Keys()
	m := node.Struct()
	buf.WriteString(es.punct("{"))
	for i, key := range keys {
		if i > 0 {
			buf.WriteString(es.punct(","))
		}
		es.newline(buf, depth+1)
		buf.WriteString(es.key(quote(key)))
		buf.WriteString(es.punct(":"))
		if !es.compact {
			buf.WriteByte(' ')
		}
		es.encode(buf, m[key], depth+1)
	}
	es.newline(buf, depth)
	buf.WriteString(es.punct("}"))
}

func (es *EncState) newline(buf *bytes.Buffer, depth int) {
	if es.compact {
		return
	}
	buf.WriteByte('\n')
	for range depth {
		buf.WriteString(es.indent)
	}
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		// not representable in JSON, emit null like most encoders
		return "null"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		// keep integral floats recognizable as floats on re-parse
		s += ".0"
	}
	return s
}

// quote produces a JSON string literal, escaping per RFC 8259. UTF-8
// text passes through unescaped.
func quote(s string) string {
	buf := bytes.NewBuffer(make([]byte, 0, len(s)+2))
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}
