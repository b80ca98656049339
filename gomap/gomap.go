// Package gomap converts value trees into native Go containers and
// scalars.
//
// The conversion is keyed on the requested static shape, not on the
// tree's runtime tag: To[map[string]int] iterates a Struct,
// To[[]string] a Vector, To[map[string]struct{}]... a set from a
// Vector, and scalar targets read through the const accessors. A tree
// whose tag cannot support the requested shape is a contract
// violation and panics, mirroring the const accessor family in ir.
//
//	quietBlocks := gomap.To[map[string]bool](node.GetField("quietBlocks"))
//	tags := gomap.To[[]string](node.GetField("tags"))
package gomap

import (
	"fmt"
	"reflect"

	"github.com/jeyms233/jsontree/ir"
)

// To converts node into a value of shape T. T may be a bool, string,
// any numeric type, a slice, a map with string keys, or a set
// (map with struct{} values), nested arbitrarily.
func To[T any](node *ir.Node) T {
	t := reflect.TypeFor[T]()
	return convert(node, t).Interface().(T)
}

func convert(node *ir.Node, t reflect.Type) reflect.Value {
	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Bool:
		v.SetBool(node.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(asInt(node))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(asInt(node)))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(node.Float())
	case reflect.String:
		v.SetString(node.String())
	case reflect.Slice:
		elems := node.Vector()
		v.Set(reflect.MakeSlice(t, 0, len(elems)))
		for _, elem := range elems {
			v.Set(reflect.Append(v, convert(elem, t.Elem())))
		}
	case reflect.Map:
		v.Set(convertMap(node, t))
	default:
		panic(fmt.Sprintf("gomap: unsupported target shape %s", t))
	}
	return v
}

// convertMap handles the two mapping shapes: string-keyed mappings fed
// from a Struct, and sets (struct{}-valued maps) fed from a Vector.
func convertMap(node *ir.Node, t reflect.Type) reflect.Value {
	if isSetType(t) {
		res := reflect.MakeMapWithSize(t, node.Len())
		empty := reflect.New(t.Elem()).Elem()
		for _, elem := range node.Vector() {
			res.SetMapIndex(convert(elem, t.Key()), empty)
		}
		return res
	}
	if t.Key().Kind() != reflect.String {
		panic(fmt.Sprintf("gomap: map target %s must have string keys or struct{} values", t))
	}
	m := node.Struct()
	res := reflect.MakeMapWithSize(t, len(m))
	for key, child := range m {
		res.SetMapIndex(reflect.ValueOf(key).Convert(t.Key()), convert(child, t.Elem()))
	}
	return res
}

func isSetType(t reflect.Type) bool {
	e := t.Elem()
	return e.Kind() == reflect.Struct && e.NumField() == 0
}

// asInt reads a numeric node for an integral target, truncating a
// Float payload.
func asInt(node *ir.Node) int64 {
	if node.Type() == ir.IntegerType {
		return node.Integer()
	}
	return int64(node.Float())
}
